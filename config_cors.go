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
	"math"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const (
	// MaxCorsRules is the maximum number of rules S3 accepts in one CORS configuration.
	MaxCorsRules = 100
	// defaultCorsMaxAge is how long browsers may cache a preflight response.
	defaultCorsMaxAge = 86400
)

// corsMethods contains the HTTP methods S3 accepts in a CORS rule.
var corsMethods = map[string]struct{}{
	"GET":    {},
	"PUT":    {},
	"POST":   {},
	"DELETE": {},
	"HEAD":   {},
}

// CorsRule describes which cross-origin requests are allowed against a bucket.
type CorsRule struct {
	// ID is an optional identifier of the rule.
	ID string `yaml:"id,omitempty"`
	// AllowedHeaders are headers allowed in a preflight Access-Control-Request-Headers.
	AllowedHeaders []string `yaml:"allowed-headers,omitempty"`
	// AllowedMethods are HTTP methods an origin may execute.
	// Supported values: GET, PUT, POST, DELETE, HEAD.
	AllowedMethods []string `yaml:"allowed-methods"`
	// AllowedOrigins are origins allowed to access the bucket.
	AllowedOrigins []string `yaml:"allowed-origins"`
	// ExposeHeaders are response headers that clients are able to read.
	ExposeHeaders []string `yaml:"expose-headers,omitempty"`
	// MaxAgeSeconds is the time in seconds a browser caches the preflight response.
	// 0 means the value is not sent.
	MaxAgeSeconds int `yaml:"max-age-seconds,omitempty"`
}

// CorsPolicy is a set of CORS rules attached to a bucket.
type CorsPolicy struct {
	Rules []*CorsRule `yaml:"rules"`
}

// NewDefaultCorsPolicy returns a policy that allows any origin to read and
// write objects and to read the ETag response header.
func NewDefaultCorsPolicy() *CorsPolicy {
	return &CorsPolicy{
		Rules: []*CorsRule{
			{
				AllowedHeaders: []string{"*"},
				AllowedMethods: []string{"HEAD", "GET", "POST", "PUT", "DELETE"},
				AllowedOrigins: []string{"*"},
				ExposeHeaders:  []string{"ETag"},
				MaxAgeSeconds:  defaultCorsMaxAge,
			},
		},
	}
}

// Validate checks the policy structure. It does not check anything the
// storage service can check itself beyond the rule shape.
func (p *CorsPolicy) Validate() error {
	if p == nil || len(p.Rules) == 0 {
		return errors.New("cors policy must contain at least one rule")
	}

	if len(p.Rules) > MaxCorsRules {
		return fmt.Errorf("cors policy can't contain more than %d rules, got %d", MaxCorsRules, len(p.Rules))
	}

	for i, r := range p.Rules {
		if r == nil {
			return fmt.Errorf("cors rule %d is empty", i)
		}

		if err := r.validate(); err != nil {
			return fmt.Errorf("invalid cors rule %d: %w", i, err)
		}
	}

	return nil
}

func (r *CorsRule) validate() error {
	if len(r.AllowedMethods) == 0 {
		return errors.New("at least one allowed method is required")
	}

	for _, m := range r.AllowedMethods {
		if _, ok := corsMethods[strings.ToUpper(m)]; !ok {
			return fmt.Errorf("unsupported method %q", m)
		}
	}

	if len(r.AllowedOrigins) == 0 {
		return errors.New("at least one allowed origin is required")
	}

	for _, o := range r.AllowedOrigins {
		if strings.Count(o, "*") > 1 {
			return fmt.Errorf("origin %q can contain at most one wildcard", o)
		}
	}

	if r.MaxAgeSeconds < 0 || r.MaxAgeSeconds > math.MaxInt32 {
		return fmt.Errorf("max age must be in range [0, %d], got %d", math.MaxInt32, r.MaxAgeSeconds)
	}

	return nil
}

// toS3 maps the policy to the S3 wire type. Methods are upper-cased, the rest
// is sent as is.
func (p *CorsPolicy) toS3() *types.CORSConfiguration {
	cfg := &types.CORSConfiguration{}
	if p == nil {
		return cfg
	}

	cfg.CORSRules = make([]types.CORSRule, 0, len(p.Rules))

	for _, r := range p.Rules {
		if r == nil {
			continue
		}

		methods := make([]string, len(r.AllowedMethods))
		for i := range r.AllowedMethods {
			methods[i] = strings.ToUpper(r.AllowedMethods[i])
		}

		rule := types.CORSRule{
			AllowedHeaders: r.AllowedHeaders,
			AllowedMethods: methods,
			AllowedOrigins: r.AllowedOrigins,
			ExposeHeaders:  r.ExposeHeaders,
		}

		if r.ID != "" {
			rule.ID = aws.String(r.ID)
		}

		if r.MaxAgeSeconds > 0 {
			rule.MaxAgeSeconds = aws.Int32(int32(r.MaxAgeSeconds))
		}

		cfg.CORSRules = append(cfg.CORSRules, rule)
	}

	return cfg
}
