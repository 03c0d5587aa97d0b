// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package provision

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	provisioner "github.com/aerospike/bucket-provisioner"
	"github.com/aerospike/bucket-provisioner/cmd/internal/config"
	"github.com/aerospike/bucket-provisioner/cmd/internal/logging"
	"github.com/aerospike/bucket-provisioner/cmd/internal/storage"
)

const idProvision = "s3provision-cli"

// Service runs a single provision operation and reports its status line.
type Service struct {
	// provisionClient is nil when the storage client could not be created,
	// connectErr holds the reason then.
	provisionClient *provisioner.Client
	connectErr      error

	provisionConfig *provisioner.ConfigProvision

	out    io.Writer
	logger *slog.Logger
}

// NewService validates params and initializes the provision client.
// Invalid params are returned as an error, nothing is provisioned for them.
// A storage client that can't be created is not an error: Run reports it as
// a failed provision.
func NewService(
	ctx context.Context,
	params *config.ProvisionParams,
	out io.Writer,
	logger *slog.Logger,
) (*Service, error) {
	// Validations.
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Initializations.
	provisionConfig := config.NewProvisionConfig(params, logger)

	s := &Service{
		provisionConfig: provisionConfig,
		out:             out,
		logger:          logger,
	}

	s3Client, err := storage.NewS3Client(ctx, params.AwsS3, logger)
	if err != nil {
		s.connectErr = err
		return s, nil
	}

	logger.Info("initializing provision client", slog.String("id", idProvision))

	provisionClient, err := provisioner.NewClient(s3Client,
		provisioner.WithLogger(logger), provisioner.WithID(idProvision))
	if err != nil {
		return nil, fmt.Errorf("failed to create provision client: %w", err)
	}

	s.provisionClient = provisionClient

	return s, nil
}

// Run provisions the bucket and writes the status line to the output.
// A failed provision is not an error, only a failure to report is.
func (s *Service) Run(ctx context.Context) error {
	var result *provisioner.Result

	switch {
	case s.connectErr != nil:
		s.logger.Error("failed to initialize s3 client", slog.Any("error", s.connectErr))
		result = provisioner.NewFailedResult(s.provisionConfig.BucketName, &provisioner.ProvisionError{
			Step: provisioner.StepConnect,
			Kind: provisioner.ErrorKindInvalidConfig,
			Err:  s.connectErr,
		})
		result.Region = s.provisionConfig.Region
	default:
		s.logger.Info("starting provision")
		result = s.provisionClient.Provision(ctx, s.provisionConfig)
	}

	return logging.ReportProvision(result, s.out, s.logger)
}
