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
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aerospike/bucket-provisioner/cmd/internal/config"
	"github.com/aerospike/bucket-provisioner/cmd/internal/models"
	"github.com/aerospike/bucket-provisioner/internal/testutils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBucket = "next-mongo"
	testRegion = "ap-southeast-1"

	successLine = "Create Localstack S3 bucket `next-mongo` - SUCCESS\n"
	failureLine = "Create Localstack S3 bucket `next-mongo` - FAILURE\n"
)

func testParams(endpoint string) *config.ProvisionParams {
	awsS3 := models.NewDefaultAwsS3()
	awsS3.Endpoint = endpoint
	awsS3.AccessKeyID = testutils.TestAccessKeyID
	awsS3.SecretAccessKey = testutils.TestSecretAccessKey

	return &config.ProvisionParams{
		App:   &models.App{},
		AwsS3: awsS3,
		Cors:  models.NewDefaultCors(),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runService(t *testing.T, params *config.ProvisionParams) string {
	t.Helper()

	var out bytes.Buffer

	ctx := context.Background()

	svc, err := NewService(ctx, params, &out, testLogger())
	require.NoError(t, err)
	require.NoError(t, svc.Run(ctx))

	return out.String()
}

func TestService_FreshBucket(t *testing.T) {
	t.Parallel()

	emulator := testutils.NewS3Emulator(t)

	out := runService(t, testParams(emulator.URL()))

	assert.Equal(t, successLine, out)
	assert.True(t, emulator.BucketExists(testBucket))
	assert.Equal(t, testRegion, emulator.Location(testBucket))

	rules := emulator.Cors(testBucket)
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"*"}, rules[0].AllowedHeaders)
	assert.Equal(t, []string{"HEAD", "GET", "POST", "PUT", "DELETE"}, rules[0].AllowedMethods)
	assert.Equal(t, []string{"*"}, rules[0].AllowedOrigins)
	assert.Equal(t, []string{"ETag"}, rules[0].ExposeHeaders)
	assert.Equal(t, int32(86400), aws.ToInt32(rules[0].MaxAgeSeconds))
}

func TestService_SecondRunFails(t *testing.T) {
	t.Parallel()

	emulator := testutils.NewS3Emulator(t)
	params := testParams(emulator.URL())

	assert.Equal(t, successLine, runService(t, params))
	assert.Equal(t, failureLine, runService(t, params))

	assert.Equal(t, []string{"CreateBucket", "PutBucketCors", "CreateBucket"}, emulator.Requests())
}

func TestService_ExistingBucket(t *testing.T) {
	t.Parallel()

	emulator := testutils.NewS3Emulator(t)
	emulator.AddBucket(testBucket, testRegion)

	assert.Equal(t, failureLine, runService(t, testParams(emulator.URL())))
	assert.Empty(t, emulator.Cors(testBucket))
	assert.Equal(t, []string{"CreateBucket"}, emulator.Requests())
}

func TestService_UnreachableEndpoint(t *testing.T) {
	t.Parallel()

	emulator := testutils.NewS3Emulator(t)
	endpoint := emulator.URL()
	emulator.Close()

	assert.Equal(t, failureLine, runService(t, testParams(endpoint)))
	assert.False(t, emulator.BucketExists(testBucket))
}

func TestService_CorsRejected(t *testing.T) {
	t.Parallel()

	emulator := testutils.NewS3Emulator(t)
	emulator.RejectCors(true)

	assert.Equal(t, failureLine, runService(t, testParams(emulator.URL())))
	assert.True(t, emulator.BucketExists(testBucket))
	assert.Empty(t, emulator.Cors(testBucket))
}

func TestService_ClientInitFailure(t *testing.T) {
	t.Parallel()

	params := testParams("http://localhost:4566")
	params.AwsS3.Profile = "not-existing-profile-for-tests"

	assert.Equal(t, failureLine, runService(t, params))
}

func TestService_InvalidParams(t *testing.T) {
	t.Parallel()

	params := testParams("http://localhost:4566")
	params.Cors.AllowedMethods = []string{"PATCH"}

	var out bytes.Buffer

	_, err := NewService(context.Background(), params, &out, testLogger())
	require.ErrorContains(t, err, "invalid cors params")
	assert.Empty(t, out.String())
}
