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
	provisioner "github.com/aerospike/bucket-provisioner"
)

// Cors contains a single CORS rule attached to the bucket.
type Cors struct {
	AllowedHeaders []string `yaml:"allowed-headers,omitempty"`
	AllowedMethods []string `yaml:"allowed-methods,omitempty"`
	AllowedOrigins []string `yaml:"allowed-origins,omitempty"`
	ExposeHeaders  []string `yaml:"expose-headers,omitempty"`
	MaxAgeSeconds  int      `yaml:"max-age-seconds,omitempty"`
}

// NewDefaultCors returns the rule of provisioner.NewDefaultCorsPolicy.
func NewDefaultCors() *Cors {
	rule := provisioner.NewDefaultCorsPolicy().Rules[0]

	return &Cors{
		AllowedHeaders: rule.AllowedHeaders,
		AllowedMethods: rule.AllowedMethods,
		AllowedOrigins: rule.AllowedOrigins,
		ExposeHeaders:  rule.ExposeHeaders,
		MaxAgeSeconds:  rule.MaxAgeSeconds,
	}
}

// ToPolicy maps parameters to a CORS policy with one rule.
func (c *Cors) ToPolicy() *provisioner.CorsPolicy {
	if c == nil {
		return nil
	}

	return &provisioner.CorsPolicy{
		Rules: []*provisioner.CorsRule{
			{
				AllowedHeaders: c.AllowedHeaders,
				AllowedMethods: c.AllowedMethods,
				AllowedOrigins: c.AllowedOrigins,
				ExposeHeaders:  c.ExposeHeaders,
				MaxAgeSeconds:  c.MaxAgeSeconds,
			},
		},
	}
}

func (c *Cors) Validate() error {
	return c.ToPolicy().Validate()
}
