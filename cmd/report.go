/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var (
	reportListType        string
	reportListFormType    string
	reportListOnlyInvalid bool
	reportListLimit       int
	reportFormat          string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Browse the archived verification reports",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		reports, err := svc.ListReports(cmd.Context(), ports.ReportFilter{
			VerificationType: reportListType,
			FormType:         reportListFormType,
			OnlyInvalid:      reportListOnlyInvalid,
			Limit:            reportListLimit,
		})
		if err != nil {
			return errs.Wrap(err, "list reports")
		}
		return writeOutput(cmd.OutOrStdout(), reportFormat, reports)
	}),
}

var reportGetCmd = &cobra.Command{
	Use:   "get <submission-id>",
	Short: "Show one archived report with its record and event trail",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		view, err := svc.GetReport(cmd.Context(), cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "get report")
		}
		return writeOutput(cmd.OutOrStdout(), reportFormat, view)
	}),
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportGetCmd)

	reportCmd.PersistentFlags().StringVar(&reportFormat, "format", "json", "Output format: json or yaml")
	reportListCmd.Flags().StringVar(&reportListType, "type", "", "Filter by verification type")
	reportListCmd.Flags().StringVar(&reportListFormType, "form-type", "", "Filter by form type")
	reportListCmd.Flags().BoolVar(&reportListOnlyInvalid, "only-invalid", false, "Only reports that failed validation")
	reportListCmd.Flags().IntVar(&reportListLimit, "limit", 0, "Maximum number of reports (0 = all)")
}
