/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

// initDbCmd represents the initDb command
var initDbCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize the report archive schema",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *verification.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
		logging.Info(ctx, "start init-db")

		if err := app.InitSchema(ctx); err != nil {
			logging.Error(ctx, "initialize schema failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "initialize schema")
		}

		logging.Info(ctx, "init-db finished", slog.String("database_dsn", app.Config.Database.DSN))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "report archive schema initialized: %s\n", app.Config.Database.DSN); err != nil {
			return errs.Wrap(err, "write init-db output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(initDbCmd)
}
