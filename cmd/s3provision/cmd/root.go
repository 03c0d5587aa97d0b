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

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aerospike/bucket-provisioner/cmd/internal/config"
	"github.com/aerospike/bucket-provisioner/cmd/internal/flags"
	"github.com/aerospike/bucket-provisioner/cmd/internal/logging"
	"github.com/aerospike/bucket-provisioner/cmd/internal/provision"
	"github.com/spf13/cobra"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp  *flags.App
	flagsAws  *flags.AwsS3
	flagsCors *flags.Cors
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:  flags.NewApp(),
		flagsAws:  flags.NewAwsS3(),
		flagsCors: flags.NewCors(),
	}

	rootCmd := &cobra.Command{
		Use:   "s3provision",
		Short: "S3 bucket provisioning CLI tool",
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	awsFlagSet := c.flagsAws.NewFlagSet()
	corsFlagSet := c.flagsCors.NewFlagSet()

	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)
	rootCmd.Flags().AddFlagSet(awsFlagSet)
	rootCmd.Flags().AddFlagSet(corsFlagSet)

	// Beautify help and usage.
	helpFunc := func(w io.Writer) {
		fmt.Fprintln(w, "Welcome to the S3 bucket provisioning CLI tool!")
		fmt.Fprintln(w, "-----------------------------------------------")
		fmt.Fprintln(w, "\nUsage:")
		fmt.Fprintln(w, "  s3provision [flags]")

		// Print section: App Flags
		fmt.Fprintln(w, "\nGeneral Flags:")
		fmt.Fprint(w, appFlagSet.FlagUsages())

		// Print section: AWS Flags
		fmt.Fprintln(w, "\nAWS Flags:\n"+
			"The bucket is created in --s3-region, which is also sent as the location constraint.\n"+
			"--s3-endpoint-override selects the emulator or service to talk to, path-style addressing is always used.")
		fmt.Fprint(w, awsFlagSet.FlagUsages())

		// Print section: CORS Flags
		fmt.Fprintln(w, "\nCORS Flags:\n"+
			"A single CORS rule is attached to the bucket once it is created.")
		fmt.Fprint(w, corsFlagSet.FlagUsages())
	}

	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		helpFunc(cmd.OutOrStdout())
		return nil
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		helpFunc(cmd.OutOrStdout())
	})

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion(cmd.OutOrStdout())

		return nil
	}

	// Without flags the default target is provisioned.
	params, err := config.NewProvisionParams(
		c.flagsApp.GetApp(),
		c.flagsAws.GetAwsS3(),
		c.flagsCors.GetCors(),
	)
	if err != nil {
		return err
	}

	// Init logger. Stdout is left for the status line.
	logger, err := logging.NewLogger(params.App.LogLevel, params.App.Verbose, params.App.LogJSON, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	svc, err := provision.NewService(cmd.Context(), params, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	if err = svc.Run(cmd.Context()); err != nil {
		logger.Error("provision report failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (c *Cmd) printVersion(w io.Writer) {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Fprintf(w, "version: %s\n", version)
}
