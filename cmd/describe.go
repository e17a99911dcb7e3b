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

var describeFormat string

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <verification-type> <form-type>",
	Short: "Show the form schema for a verification type and outcome",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		outline, err := svc.DescribeForm(cmd.Flags().Arg(0), cmd.Flags().Arg(1))
		if err != nil {
			return errs.Wrap(err, "describe form")
		}
		return writeOutput(cmd.OutOrStdout(), describeFormat, outline)
	}),
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVar(&describeFormat, "format", "json", "Output format: json or yaml")
}
