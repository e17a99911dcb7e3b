/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var (
	validateSubmissionFile string
	validateWatch          bool
	validateFormat         string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <verification-type> <form-type>",
	Short: "Check a submission against the required-field rules",
	Long:  "Checks required fields and conditional rules without mapping or archiving. With --watch the file is re-validated on every save until interrupted.",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		vt := cmd.Flags().Arg(0)
		ft := cmd.Flags().Arg(1)

		if validateWatch {
			if validateSubmissionFile == "-" {
				return errors.New("--watch requires a file path, not stdin")
			}
			err := svc.WatchSubmission(cmd.Context(), validateSubmissionFile, vt, ft, func(r verification.WatchResult) {
				printWatchResult(cmd, r)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return errs.Wrap(err, "watch submission")
		}

		submission, err := readSubmission(validateSubmissionFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		result := svc.Engine().Validate(vt, ft, submission)
		if err := writeOutput(cmd.OutOrStdout(), validateFormat, result); err != nil {
			return err
		}
		if !result.Valid {
			return errors.New("submission is missing required fields")
		}
		return nil
	}),
}

func printWatchResult(cmd *cobra.Command, r verification.WatchResult) {
	out := cmd.OutOrStdout()
	if r.Validation.Valid {
		fmt.Fprintf(out, "%s: valid\n", r.Path)
	} else {
		fmt.Fprintf(out, "%s: missing %s\n", r.Path, strings.Join(r.Validation.MissingFields, ", "))
	}
	for _, w := range r.Validation.Warnings {
		fmt.Fprintf(out, "%s: warning: %s\n", r.Path, w)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateSubmissionFile, "file", "f", "-", "Submission JSON file, or - for stdin")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Re-validate the file on every change")
	validateCmd.Flags().StringVar(&validateFormat, "format", "json", "Output format: json or yaml")
}
