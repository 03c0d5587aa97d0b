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
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Step is a stage of the provision sequence.
type Step string

const (
	// StepValidate is the local check of the configuration.
	StepValidate Step = "validate"
	// StepConnect is the creation of the storage client.
	StepConnect Step = "connect"
	// StepCreateBucket is the CreateBucket call.
	StepCreateBucket Step = "create-bucket"
	// StepPutBucketCors is the PutBucketCors call.
	StepPutBucketCors Step = "put-bucket-cors"
)

// ErrorKind groups faults by their cause.
type ErrorKind string

const (
	ErrorKindUnknown        ErrorKind = "unknown"
	ErrorKindInvalidConfig  ErrorKind = "invalid-config"
	ErrorKindBucketExists   ErrorKind = "bucket-exists"
	ErrorKindNoSuchBucket   ErrorKind = "no-such-bucket"
	ErrorKindInvalidRequest ErrorKind = "invalid-request"
	ErrorKindAccessDenied   ErrorKind = "access-denied"
	ErrorKindNetwork        ErrorKind = "network"
	ErrorKindCanceled       ErrorKind = "canceled"
	ErrorKindTimeout        ErrorKind = "timeout"
)

// errorCodeKinds maps S3 error codes that CreateBucket and PutBucketCors can
// return, see https://docs.aws.amazon.com/AmazonS3/latest/API/ErrorResponses.html
var errorCodeKinds = map[string]ErrorKind{
	"BucketAlreadyExists":                ErrorKindBucketExists,
	"BucketAlreadyOwnedByYou":            ErrorKindBucketExists,
	"NoSuchBucket":                       ErrorKindNoSuchBucket,
	"InvalidBucketName":                  ErrorKindInvalidRequest,
	"InvalidLocationConstraint":          ErrorKindInvalidRequest,
	"IllegalLocationConstraintException": ErrorKindInvalidRequest,
	"MalformedXML":                       ErrorKindInvalidRequest,
	"InvalidRequest":                     ErrorKindInvalidRequest,
	"InvalidArgument":                    ErrorKindInvalidRequest,
	"InvalidDigest":                      ErrorKindInvalidRequest,
	"TooManyBuckets":                     ErrorKindInvalidRequest,
	"AccessDenied":                       ErrorKindAccessDenied,
	"InvalidAccessKeyId":                 ErrorKindAccessDenied,
	"SignatureDoesNotMatch":              ErrorKindAccessDenied,
	"ExpiredToken":                       ErrorKindAccessDenied,
	"InvalidToken":                       ErrorKindAccessDenied,
	"AuthorizationHeaderMalformed":       ErrorKindAccessDenied,
	"RequestTimeTooSkewed":               ErrorKindAccessDenied,
	"RequestTimeout":                     ErrorKindTimeout,
	"ServiceUnavailable":                 ErrorKindNetwork,
	"SlowDown":                           ErrorKindNetwork,
}

// ProvisionError describes a fault of one provision step.
type ProvisionError struct {
	// Step is where the fault happened.
	Step Step
	// Kind is the cause group of the fault.
	Kind ErrorKind
	// Code is the error code returned by the service, empty for local faults.
	Code string
	// Err is the underlying error.
	Err error
}

func (e *ProvisionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed (%s, %s): %v", e.Step, e.Kind, e.Code, e.Err)
	}

	return fmt.Sprintf("%s failed (%s): %v", e.Step, e.Kind, e.Err)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// newProvisionError wraps err with step and classification details.
func newProvisionError(step Step, err error) *ProvisionError {
	kind, code := classifyError(err)

	return &ProvisionError{
		Step: step,
		Kind: kind,
		Code: code,
		Err:  err,
	}
}

// classifyError returns the kind of err and the service error code if any.
func classifyError(err error) (ErrorKind, string) {
	if err == nil {
		return ErrorKindUnknown, ""
	}

	var code string

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}

	var (
		alreadyExists *types.BucketAlreadyExists
		alreadyOwned  *types.BucketAlreadyOwnedByYou
		noSuchBucket  *types.NoSuchBucket
	)

	switch {
	case errors.As(err, &alreadyExists), errors.As(err, &alreadyOwned):
		return ErrorKindBucketExists, code
	case errors.As(err, &noSuchBucket):
		return ErrorKindNoSuchBucket, code
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorKindTimeout, code
	case errors.Is(err, context.Canceled):
		return ErrorKindCanceled, code
	}

	var canceledErr *aws.RequestCanceledError
	if errors.As(err, &canceledErr) {
		return ErrorKindCanceled, code
	}

	// Request parameters rejected by the SDK before sending.
	var paramsErr smithy.InvalidParamsError
	if errors.As(err, &paramsErr) {
		return ErrorKindInvalidRequest, code
	}

	if code != "" {
		if kind, ok := errorCodeKinds[code]; ok {
			return kind, code
		}

		return ErrorKindUnknown, code
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return ErrorKindNetwork, code
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorKindTimeout, code
		}

		return ErrorKindNetwork, code
	}

	return ErrorKindUnknown, code
}
