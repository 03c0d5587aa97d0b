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
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultRegion is the region the bucket is created in when none is set.
	DefaultRegion = "ap-southeast-1"
	// DefaultBucketName is the bucket created when none is set.
	DefaultBucketName = "next-mongo"
	// DefaultEndpoint points to a LocalStack instance on the local machine.
	DefaultEndpoint = "http://localhost.localstack.cloud:4566"

	// regionUSEast1 is the only region S3 refuses as an explicit location constraint.
	regionUSEast1 = "us-east-1"
)

// ConfigProvision contains configuration for a provision operation.
type ConfigProvision struct {
	// Region is used as the location constraint of the bucket.
	Region string
	// BucketName is the name of the bucket to create. It is not validated
	// locally, the storage service decides if the name is acceptable.
	BucketName string
	// CorsPolicy is attached to the bucket after it is created.
	CorsPolicy *CorsPolicy
	// Timeout bounds both remote calls together.
	// 0 means no deadline, calls block until the transport gives up.
	Timeout time.Duration
}

// NewDefaultProvisionConfig returns a new ConfigProvision with default values.
func NewDefaultProvisionConfig() *ConfigProvision {
	return &ConfigProvision{
		Region:     DefaultRegion,
		BucketName: DefaultBucketName,
		CorsPolicy: NewDefaultCorsPolicy(),
	}
}

// validate checks what must hold before any remote call is made.
func (c *ConfigProvision) validate() error {
	if c == nil {
		return errors.New("provision config is nil")
	}

	if c.Region == "" {
		return errors.New("region is required")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s", c.Timeout)
	}

	if c.CorsPolicy == nil {
		return errors.New("cors policy is required")
	}

	return nil
}

// locationConstraint returns the location constraint to send with the create
// request, or an empty string if none must be sent.
func (c *ConfigProvision) locationConstraint() string {
	if c.Region == regionUSEast1 {
		return ""
	}

	return c.Region
}
