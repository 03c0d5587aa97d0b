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

package models

import (
	"fmt"
	"net/url"

	provisioner "github.com/aerospike/bucket-provisioner"
)

// AwsS3 contains the target bucket and the parameters of the S3 client.
type AwsS3 struct {
	BucketName      string `yaml:"bucket-name,omitempty"`
	Region          string `yaml:"region,omitempty"`
	Endpoint        string `yaml:"endpoint-override,omitempty"`
	Profile         string `yaml:"profile,omitempty"`
	AccessKeyID     string `yaml:"access-key-id,omitempty"`
	SecretAccessKey string `yaml:"secret-access-key,omitempty"`

	// Timeout in milliseconds for the whole provision operation, 0 - no timeout.
	Timeout int64 `yaml:"timeout,omitempty"`
}

// NewDefaultAwsS3 returns the parameters of the LocalStack deployment.
func NewDefaultAwsS3() *AwsS3 {
	return &AwsS3{
		BucketName: provisioner.DefaultBucketName,
		Region:     provisioner.DefaultRegion,
		Endpoint:   provisioner.DefaultEndpoint,
	}
}

func (a *AwsS3) Validate() error {
	if a == nil {
		return fmt.Errorf("s3 parameters are required")
	}

	// Bucket name rules are checked by the storage service.
	if a.Region == "" {
		return fmt.Errorf("region is required")
	}

	if a.Endpoint != "" {
		u, err := url.Parse(a.Endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", a.Endpoint, err)
		}

		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %q must use http or https scheme", a.Endpoint)
		}
	}

	if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
		return fmt.Errorf("access key id and secret access key must be set together")
	}

	if a.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}
