//go:build integration

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

package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	provisioner "github.com/aerospike/bucket-provisioner"
	"github.com/aerospike/bucket-provisioner/internal/testutils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	defaultLocalstackEndpoint = "http://localhost:4566"
	envLocalstackEndpoint     = "LOCALSTACK_ENDPOINT"
	testRegion                = "ap-southeast-1"
	testTimeout               = 30 * time.Second
)

type provisionTestSuite struct {
	suite.Suite
	s3Client *s3.Client
	client   *provisioner.Client
}

func TestProvision(t *testing.T) {
	testSuite := provisionTestSuite{}

	suite.Run(t, &testSuite)
}

func (s *provisionTestSuite) SetupSuite() {
	endpoint := os.Getenv(envLocalstackEndpoint)
	if endpoint == "" {
		endpoint = defaultLocalstackEndpoint
	}

	s.s3Client = testutils.NewS3Client(s.T(), endpoint, testRegion)

	client, err := provisioner.NewClient(s.s3Client, provisioner.WithLogger(slog.Default()))
	s.Require().NoError(err)

	s.client = client
}

func (s *provisionTestSuite) newConfig() *provisioner.ConfigProvision {
	c := provisioner.NewDefaultProvisionConfig()
	c.BucketName = "it-" + uuid.NewString()
	c.Timeout = testTimeout

	return c
}

func (s *provisionTestSuite) TestProvisionFreshBucket() {
	ctx := context.Background()
	c := s.newConfig()

	result := s.client.Provision(ctx, c)
	s.Require().True(result.IsSuccess(), result.Err)
	s.Equal("Create Localstack S3 bucket `"+c.BucketName+"` - SUCCESS", result.StatusLine())

	location, err := s.s3Client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(c.BucketName)})
	s.Require().NoError(err)
	s.Equal(testRegion, string(location.LocationConstraint))

	cors, err := s.s3Client.GetBucketCors(ctx, &s3.GetBucketCorsInput{Bucket: aws.String(c.BucketName)})
	s.Require().NoError(err)
	s.Require().Len(cors.CORSRules, 1)

	rule := cors.CORSRules[0]
	s.Equal([]string{"*"}, rule.AllowedHeaders)
	s.Equal([]string{"HEAD", "GET", "POST", "PUT", "DELETE"}, rule.AllowedMethods)
	s.Equal([]string{"*"}, rule.AllowedOrigins)
	s.Equal([]string{"ETag"}, rule.ExposeHeaders)
	s.Equal(int32(86400), aws.ToInt32(rule.MaxAgeSeconds))
}

func (s *provisionTestSuite) TestProvisionTwice() {
	ctx := context.Background()
	c := s.newConfig()

	s.Require().True(s.client.Provision(ctx, c).IsSuccess())

	result := s.client.Provision(ctx, c)
	s.False(result.IsSuccess())
	s.False(result.Created)
	s.Equal(provisioner.StepCreateBucket, result.Err.Step)
	s.Equal("Create Localstack S3 bucket `"+c.BucketName+"` - FAILURE", result.StatusLine())
}

func (s *provisionTestSuite) TestProvisionUnreachable() {
	client, err := provisioner.NewClient(testutils.NewS3Client(s.T(), "http://127.0.0.1:1", testRegion))
	s.Require().NoError(err)

	result := client.Provision(context.Background(), s.newConfig())
	s.False(result.IsSuccess())
	s.False(result.Created)
	s.Equal(provisioner.ErrorKindNetwork, result.Err.Kind)
}
