package main

import (
	"context"
	"os"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
