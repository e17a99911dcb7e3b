/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var typesFormat string

type typesOutput struct {
	VerificationTypes []string          `json:"verificationTypes" yaml:"verificationTypes"`
	FormTypes         map[string]string `json:"formTypes" yaml:"formTypes"`
}

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the configured verification types and form types",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		engine := svc.Engine()

		out := typesOutput{
			VerificationTypes: engine.VerificationTypes(),
			FormTypes:         make(map[string]string),
		}
		for _, ft := range engine.FormTypes() {
			out.FormTypes[ft] = engine.FormTypeLabel(ft)
		}
		return writeOutput(cmd.OutOrStdout(), typesFormat, out)
	}),
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().StringVar(&typesFormat, "format", "json", "Output format: json or yaml")
}
