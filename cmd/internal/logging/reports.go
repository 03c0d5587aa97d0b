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

package logging

import (
	"fmt"
	"io"
	"log/slog"

	provisioner "github.com/aerospike/bucket-provisioner"
)

// ReportProvision writes the status line of result to w and logs the
// details of the run. The status line is written for every result.
func ReportProvision(result *provisioner.Result, w io.Writer, logger *slog.Logger) error {
	logProvisionReport(result, logger)

	if _, err := fmt.Fprintln(w, result.StatusLine()); err != nil {
		return fmt.Errorf("failed to write status line: %w", err)
	}

	return nil
}

func logProvisionReport(result *provisioner.Result, logger *slog.Logger) {
	if result == nil {
		logger.Error("provision report is empty")
		return
	}

	attrs := []any{
		slog.String("bucket", result.Bucket),
		slog.String("region", result.Region),
		slog.String("outcome", string(result.Outcome)),
		slog.Bool("created", result.Created),
		slog.Bool("cors_applied", result.CorsApplied),
		slog.Duration("duration", result.Duration),
	}

	if result.Err == nil {
		logger.Info("provision report", attrs...)
		return
	}

	attrs = append(attrs,
		slog.String("step", string(result.Err.Step)),
		slog.String("kind", string(result.Err.Kind)),
		slog.String("code", result.Err.Code),
		slog.Any("error", result.Err.Err),
	)

	logger.Error("provision report", attrs...)
}
