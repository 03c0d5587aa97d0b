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

package config

import (
	"fmt"
	"log/slog"
	"time"

	provisioner "github.com/aerospike/bucket-provisioner"
	"github.com/aerospike/bucket-provisioner/cmd/internal/models"
)

// ProvisionParams contains every parameter of a provision run.
type ProvisionParams struct {
	App   *models.App   `yaml:"app,omitempty"`
	AwsS3 *models.AwsS3 `yaml:"aws,omitempty"`
	Cors  *models.Cors  `yaml:"cors,omitempty"`
}

// NewProvisionParams returns params from flags, or from the config file when
// app.Config is set. Values missing from the file keep their defaults.
func NewProvisionParams(
	app *models.App,
	awsS3 *models.AwsS3,
	cors *models.Cors,
) (*ProvisionParams, error) {
	// If we have a config file, load params from it.
	if app.Config != "" {
		appCopy := *app
		params := ProvisionParams{
			App:   &appCopy,
			AwsS3: models.NewDefaultAwsS3(),
			Cors:  models.NewDefaultCors(),
		}

		if err := decodeFromFile(app.Config, &params); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", app.Config, err)
		}

		// File sections can't be set to null.
		if params.App == nil || params.AwsS3 == nil || params.Cors == nil {
			return nil, fmt.Errorf("failed to load config file %s: empty section", app.Config)
		}

		return &params, nil
	}

	return &ProvisionParams{
		App:   app,
		AwsS3: awsS3,
		Cors:  cors,
	}, nil
}

// Validate checks params before any client is created.
func (p *ProvisionParams) Validate() error {
	if err := p.AwsS3.Validate(); err != nil {
		return fmt.Errorf("invalid s3 params: %w", err)
	}

	if err := p.Cors.Validate(); err != nil {
		return fmt.Errorf("invalid cors params: %w", err)
	}

	return nil
}

// NewProvisionConfig maps params to a provision config.
func NewProvisionConfig(params *ProvisionParams, logger *slog.Logger) *provisioner.ConfigProvision {
	logger.Info("initializing provision config")

	c := provisioner.NewDefaultProvisionConfig()
	c.Region = params.AwsS3.Region
	c.BucketName = params.AwsS3.BucketName
	c.CorsPolicy = params.Cors.ToPolicy()
	c.Timeout = time.Duration(params.AwsS3.Timeout) * time.Millisecond

	logProvisionConfig(logger, params, c)

	return c
}

func logProvisionConfig(logger *slog.Logger, params *ProvisionParams, c *provisioner.ConfigProvision) {
	logger.Info("initialized provision config",
		slog.String("bucket", c.BucketName),
		slog.String("region", c.Region),
		slog.String("endpoint", params.AwsS3.Endpoint),
		slog.String("profile", params.AwsS3.Profile),
		slog.Bool("static_credentials", params.AwsS3.AccessKeyID != ""),
		slog.Duration("timeout", c.Timeout),
		slog.Any("cors_methods", params.Cors.AllowedMethods),
		slog.Any("cors_origins", params.Cors.AllowedOrigins),
		slog.Int("cors_max_age", params.Cors.MaxAgeSeconds),
	)
}
