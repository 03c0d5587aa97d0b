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
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aerospike/bucket-provisioner/cmd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  verbose: true
  log-level: info
aws:
  bucket-name: assets
  region: eu-central-1
  endpoint-override: http://localhost:4566
  access-key-id: test
  secret-access-key: test
  timeout: 3000
cors:
  allowed-methods: [GET, HEAD]
  allowed-origins: ["https://example.com"]
  max-age-seconds: 600
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "provision.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))

	return filename
}

func TestNewProvisionParams_Flags(t *testing.T) {
	t.Parallel()

	app := &models.App{LogLevel: "debug"}
	awsS3 := models.NewDefaultAwsS3()
	cors := models.NewDefaultCors()

	params, err := NewProvisionParams(app, awsS3, cors)
	require.NoError(t, err)

	assert.Same(t, app, params.App)
	assert.Same(t, awsS3, params.AwsS3)
	assert.Same(t, cors, params.Cors)
	require.NoError(t, params.Validate())
}

func TestNewProvisionParams_ConfigFile(t *testing.T) {
	t.Parallel()

	filename := writeConfig(t, testConfig)
	app := &models.App{Config: filename, LogLevel: "debug"}

	// Flag values are ignored when a config file is set.
	flagS3 := &models.AwsS3{BucketName: "ignored", Region: "ignored"}

	params, err := NewProvisionParams(app, flagS3, nil)
	require.NoError(t, err)
	require.NoError(t, params.Validate())

	assert.True(t, params.App.Verbose)
	assert.Equal(t, "info", params.App.LogLevel)
	assert.Equal(t, filename, params.App.Config)

	assert.Equal(t, "assets", params.AwsS3.BucketName)
	assert.Equal(t, "eu-central-1", params.AwsS3.Region)
	assert.Equal(t, "http://localhost:4566", params.AwsS3.Endpoint)
	assert.Equal(t, "test", params.AwsS3.AccessKeyID)
	assert.Equal(t, int64(3000), params.AwsS3.Timeout)

	assert.Equal(t, []string{"GET", "HEAD"}, params.Cors.AllowedMethods)
	assert.Equal(t, []string{"https://example.com"}, params.Cors.AllowedOrigins)
	assert.Equal(t, 600, params.Cors.MaxAgeSeconds)
	// Not set in the file, keeps the default.
	assert.Equal(t, []string{"ETag"}, params.Cors.ExposeHeaders)
}

func TestNewProvisionParams_EmptyConfigFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	filename := writeConfig(t, "")

	params, err := NewProvisionParams(&models.App{Config: filename}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.NewDefaultAwsS3(), params.AwsS3)
	assert.Equal(t, models.NewDefaultCors(), params.Cors)
}

func TestNewProvisionParams_ConfigFileErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown field", content: "aws:\n  bucket: x\n", wantErr: "field bucket not found"},
		{name: "bad yaml", content: "aws: [", wantErr: "failed to decode config file"},
		{name: "null section", content: "aws: null\n", wantErr: "empty section"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filename := writeConfig(t, tc.content)

			_, err := NewProvisionParams(&models.App{Config: filename}, nil, nil)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}

	_, err := NewProvisionParams(&models.App{Config: "/not/existing.yaml"}, nil, nil)
	require.ErrorContains(t, err, "failed to open config file")
}

func TestProvisionParams_Validate(t *testing.T) {
	t.Parallel()

	params := &ProvisionParams{
		App:   &models.App{},
		AwsS3: &models.AwsS3{},
		Cors:  models.NewDefaultCors(),
	}
	require.ErrorContains(t, params.Validate(), "invalid s3 params: region is required")

	params.AwsS3 = models.NewDefaultAwsS3()
	params.Cors.AllowedMethods = []string{"OPTIONS"}
	require.ErrorContains(t, params.Validate(), "invalid cors params")
}

func TestNewProvisionConfig(t *testing.T) {
	t.Parallel()

	awsS3 := models.NewDefaultAwsS3()
	awsS3.Timeout = 1500

	params := &ProvisionParams{
		App:   &models.App{},
		AwsS3: awsS3,
		Cors:  models.NewDefaultCors(),
	}

	c := NewProvisionConfig(params, slog.Default())

	assert.Equal(t, "ap-southeast-1", c.Region)
	assert.Equal(t, "next-mongo", c.BucketName)
	assert.Equal(t, 1500*time.Millisecond, c.Timeout)
	require.Len(t, c.CorsPolicy.Rules, 1)
	assert.Equal(t, 86400, c.CorsPolicy.Rules[0].MaxAgeSeconds)
}
