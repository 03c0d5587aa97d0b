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
	provisioner "github.com/aerospike/bucket-provisioner"
	"github.com/aerospike/bucket-provisioner/cmd/internal/models"
	"github.com/spf13/pflag"
)

type AwsS3 struct {
	models.AwsS3
}

func NewAwsS3() *AwsS3 {
	return &AwsS3{}
}

func (f *AwsS3) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVar(&f.BucketName, "s3-bucket-name",
		provisioner.DefaultBucketName,
		"Name of the bucket to create.")
	flagSet.StringVar(&f.Region, "s3-region",
		provisioner.DefaultRegion,
		"The S3 region to create the bucket in. Also sent as the bucket location constraint.")
	flagSet.StringVar(&f.Endpoint, "s3-endpoint-override",
		provisioner.DefaultEndpoint,
		"An alternate url endpoint to send S3 API calls to.")
	flagSet.StringVar(&f.Profile, "s3-profile",
		"",
		"The S3 profile to use for credentials.")
	flagSet.StringVar(&f.AccessKeyID, "s3-access-key-id",
		"",
		"S3 access key id. If not set, the default credentials chain is used.")
	flagSet.StringVar(&f.SecretAccessKey, "s3-secret-access-key",
		"",
		"S3 secret access key. If not set, the default credentials chain is used.")
	flagSet.Int64Var(&f.Timeout, "timeout",
		0,
		"Timeout in milliseconds for creating the bucket and attaching the CORS policy.\n"+
			"0 - no timeout.")

	return flagSet
}

func (f *AwsS3) GetAwsS3() *models.AwsS3 {
	return &f.AwsS3
}
