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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAwsS3_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		modify  func(a *AwsS3)
		wantErr string
	}{
		{name: "defaults", modify: func(*AwsS3) {}},
		{name: "empty bucket is left to the service", modify: func(a *AwsS3) { a.BucketName = "" }},
		{name: "no endpoint", modify: func(a *AwsS3) { a.Endpoint = "" }},
		{name: "static credentials", modify: func(a *AwsS3) {
			a.AccessKeyID = "test"
			a.SecretAccessKey = "test"
		}},
		{name: "empty region", modify: func(a *AwsS3) { a.Region = "" }, wantErr: "region is required"},
		{name: "bad scheme", modify: func(a *AwsS3) { a.Endpoint = "ftp://localhost:4566" }, wantErr: "http or https"},
		{name: "bad url", modify: func(a *AwsS3) { a.Endpoint = "http://[::1" }, wantErr: "invalid endpoint"},
		{name: "half credentials", modify: func(a *AwsS3) { a.AccessKeyID = "test" }, wantErr: "must be set together"},
		{name: "negative timeout", modify: func(a *AwsS3) { a.Timeout = -1 }, wantErr: "timeout must be non-negative"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := NewDefaultAwsS3()
			tc.modify(a)

			err := a.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestAwsS3_Validate_Nil(t *testing.T) {
	t.Parallel()

	var a *AwsS3
	require.Error(t, a.Validate())
}
