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
	"fmt"
	"time"
)

// Outcome is the binary result of a provision operation.
type Outcome string

const (
	// OutcomeSuccess means the bucket was created and the CORS policy attached.
	OutcomeSuccess Outcome = "SUCCESS"
	// OutcomeFailure means at least one of the steps failed.
	OutcomeFailure Outcome = "FAILURE"
)

// statusLineFormat is the single line reported for every provision operation.
const statusLineFormat = "Create Localstack S3 bucket `%s` - %s"

// Result contains the outcome of a provision operation.
// A failed result can still have Created set, when the bucket was created
// but the CORS policy was not attached.
type Result struct {
	// ID of the provision operation, used in logs.
	ID string
	// Bucket is the name of the bucket that was requested.
	Bucket string
	// Region is the requested location of the bucket.
	Region string
	// Outcome is SUCCESS or FAILURE.
	Outcome Outcome
	// Created is true when CreateBucket succeeded.
	Created bool
	// CorsApplied is true when PutBucketCors succeeded.
	CorsApplied bool
	// Err is the fault that made the operation fail, nil on success.
	Err *ProvisionError
	// Duration is the time spent on the remote calls.
	Duration time.Duration
}

// NewFailedResult returns a result for an operation that failed before any
// remote call was made.
func NewFailedResult(bucket string, err *ProvisionError) *Result {
	return &Result{
		Bucket:  bucket,
		Outcome: OutcomeFailure,
		Err:     err,
	}
}

// IsSuccess reports whether both steps succeeded.
func (r *Result) IsSuccess() bool {
	return r != nil && r.Outcome == OutcomeSuccess
}

// StatusLine returns the human-readable status of the operation.
func (r *Result) StatusLine() string {
	outcome := OutcomeFailure
	bucket := ""

	if r != nil {
		outcome = r.Outcome
		bucket = r.Bucket
	}

	if outcome != OutcomeSuccess {
		outcome = OutcomeFailure
	}

	return fmt.Sprintf(statusLineFormat, bucket, outcome)
}
