/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema <verification-type> <form-type>",
	Short: "Export a form as a JSON Schema document",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *verification.Service) error {
		schema, err := svc.ExportJSONSchema(cmd.Flags().Arg(0), cmd.Flags().Arg(1))
		if err != nil {
			return errs.Wrap(err, "export json schema")
		}

		raw, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return errs.Wrap(err, "encode json schema")
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(raw)); err != nil {
			return errs.Wrap(err, "write schema output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
