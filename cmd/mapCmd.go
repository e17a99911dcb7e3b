/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var (
	mapSubmissionFile string
	mapDryRun         bool
	mapFormat         string
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map <verification-type> <form-type>",
	Short: "Validate, map and archive a submission",
	Long:  "Runs a raw submission through the full storage pipeline: required-field validation, field mapping with coercion, column completion and archival. With --dry-run the archive write is skipped.",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		submission, err := readSubmission(mapSubmissionFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		result, err := svc.ProcessSubmission(cmd.Context(), verification.ProcessInput{
			VerificationType: cmd.Flags().Arg(0),
			FormType:         cmd.Flags().Arg(1),
			Submission:       submission,
			DryRun:           mapDryRun,
		})
		if err != nil {
			return errs.Wrap(err, "process submission")
		}
		return writeOutput(cmd.OutOrStdout(), mapFormat, result)
	}),
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVarP(&mapSubmissionFile, "file", "f", "-", "Submission JSON file, or - for stdin")
	mapCmd.Flags().BoolVar(&mapDryRun, "dry-run", false, "Skip the archive write")
	mapCmd.Flags().StringVar(&mapFormat, "format", "json", "Output format: json or yaml")
}
