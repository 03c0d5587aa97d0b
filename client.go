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

package provisioner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aerospike/bucket-provisioner/internal/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Client describes the part of *s3.Client used for provisioning, for easy mocking.
//
//go:generate mockery --name S3Client
type S3Client interface {
	// CreateBucket creates a new bucket.
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options),
	) (*s3.CreateBucketOutput, error)
	// PutBucketCors sets the CORS configuration of a bucket.
	PutBucketCors(ctx context.Context, params *s3.PutBucketCorsInput, optFns ...func(*s3.Options),
	) (*s3.PutBucketCorsOutput, error)
}

// Client is the main entry point for the provisioner package.
// It wraps an S3 client and provisions buckets with it.
// Example usage:
//
//	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
//		o.BaseEndpoint = aws.String("http://localhost.localstack.cloud:4566")
//		o.UsePathStyle = true
//	})
//
//	client, err := provisioner.NewClient(s3Client, provisioner.WithID("id"))
//	if err != nil {
//		// handle error
//	}
//
//	result := client.Provision(ctx, provisioner.NewDefaultProvisionConfig())
//	fmt.Println(result.StatusLine())
type Client struct {
	s3Client S3Client
	logger   *slog.Logger
	id       string
}

// ClientOpt is a functional option that allows configuring the [Client].
type ClientOpt func(*Client)

// WithID sets the ID for the [Client].
// This ID is used for logging purposes.
func WithID(id string) ClientOpt {
	return func(c *Client) {
		c.id = id
	}
}

// WithLogger sets the logger for the [Client].
func WithLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new provisioner client.
//   - s3Client is the S3 client used for remote calls.
//
// options:
//   - [WithID] to set an identifier for the client.
//   - [WithLogger] to set a logger that this client will log to.
func NewClient(s3Client S3Client, opts ...ClientOpt) (*Client, error) {
	if s3Client == nil {
		return nil, errors.New("s3 client is nil")
	}

	client := &Client{
		s3Client: s3Client,
		logger:   slog.Default(),
		id:       "provisioner",
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = client.logger.WithGroup("provisioner")
	client.logger = logging.WithClient(client.logger, client.id)

	return client, nil
}

// Provision creates the bucket and attaches the CORS policy to it.
// The steps run in order and the second one only runs if the first succeeds.
// Provision never returns nil, any fault is reported through the result.
// If the bucket is created but the CORS call fails, the bucket stays in place
// and the result is a failure with Created set.
func (c *Client) Provision(ctx context.Context, config *ConfigProvision) *Result {
	id := uuid.NewString()

	if err := config.validate(); err != nil {
		var bucket string
		if config != nil {
			bucket = config.BucketName
		}

		result := NewFailedResult(bucket, &ProvisionError{
			Step: StepValidate,
			Kind: ErrorKindInvalidConfig,
			Err:  err,
		})
		result.ID = id

		c.logger.Error("invalid provision config", slog.String("id", id), slog.Any("error", err))

		return result
	}

	logger := logging.WithProvision(c.logger, id, config.BucketName, config.Region)

	if config.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	result := &Result{
		ID:      id,
		Bucket:  config.BucketName,
		Region:  config.Region,
		Outcome: OutcomeFailure,
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	logger.Debug("creating bucket")

	if err := c.createBucket(ctx, config); err != nil {
		result.Err = newProvisionError(StepCreateBucket, err)
		logger.Error("failed to create bucket",
			slog.String("kind", string(result.Err.Kind)),
			slog.String("code", result.Err.Code),
			slog.Any("error", err),
		)

		return result
	}

	result.Created = true

	logger.Debug("bucket created, attaching cors policy")

	if err := c.putBucketCors(ctx, config); err != nil {
		result.Err = newProvisionError(StepPutBucketCors, err)
		logger.Error("failed to attach cors policy, bucket is left without it",
			slog.String("kind", string(result.Err.Kind)),
			slog.String("code", result.Err.Code),
			slog.Any("error", err),
		)

		return result
	}

	result.CorsApplied = true
	result.Outcome = OutcomeSuccess

	logger.Info("bucket provisioned", slog.Int("cors_rules", len(config.CorsPolicy.Rules)))

	return result
}

func (c *Client) createBucket(ctx context.Context, config *ConfigProvision) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(config.BucketName),
	}

	if lc := config.locationConstraint(); lc != "" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(lc),
		}
	}

	_, err := c.s3Client.CreateBucket(ctx, input)

	return err
}

func (c *Client) putBucketCors(ctx context.Context, config *ConfigProvision) error {
	_, err := c.s3Client.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(config.BucketName),
		CORSConfiguration: config.CorsPolicy.toS3(),
	})

	return err
}
