/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var (
	previewSubmissionFile string
	previewFormat         string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <verification-type> <form-type>",
	Short: "Render a submission as report display sections",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		submission, err := readSubmission(previewSubmissionFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		sections := svc.PreviewSections(cmd.Flags().Arg(0), cmd.Flags().Arg(1), submission)
		return writeOutput(cmd.OutOrStdout(), previewFormat, sections)
	}),
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewSubmissionFile, "file", "f", "-", "Submission JSON file, or - for stdin")
	previewCmd.Flags().StringVar(&previewFormat, "format", "json", "Output format: json or yaml")
}
