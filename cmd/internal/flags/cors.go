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

package flags

import (
	"github.com/aerospike/bucket-provisioner/cmd/internal/models"
	"github.com/spf13/pflag"
)

type Cors struct {
	models.Cors
}

func NewCors() *Cors {
	return &Cors{}
}

func (f *Cors) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	defaults := models.NewDefaultCors()

	flagSet.StringSliceVar(&f.AllowedHeaders, "cors-allowed-headers",
		defaults.AllowedHeaders,
		"Comma separated list of headers allowed in a preflight request.")
	flagSet.StringSliceVar(&f.AllowedMethods, "cors-allowed-methods",
		defaults.AllowedMethods,
		"Comma separated list of HTTP methods an origin may execute.\n"+
			"Supported methods: GET, PUT, POST, DELETE, HEAD.")
	flagSet.StringSliceVar(&f.AllowedOrigins, "cors-allowed-origins",
		defaults.AllowedOrigins,
		"Comma separated list of origins allowed to access the bucket.")
	flagSet.StringSliceVar(&f.ExposeHeaders, "cors-expose-headers",
		defaults.ExposeHeaders,
		"Comma separated list of response headers clients are able to read.")
	flagSet.IntVar(&f.MaxAgeSeconds, "cors-max-age",
		defaults.MaxAgeSeconds,
		"Time in seconds a browser may cache the preflight response. 0 - not set.")

	return flagSet
}

func (f *Cors) GetCors() *models.Cors {
	return &f.Cors
}
