package forms

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
)

func TestPopulateAllColumnsCompletesRecord(t *testing.T) {
	e := Default()
	ctx := context.Background()

	record := e.MapToStorage(ctx, "DSA_CONNECTOR", map[string]any{
		"connectorName": "S Patel",
		"finalStatus":   "Approved",
	})
	complete := e.PopulateAllColumns(ctx, "DSA_CONNECTOR", record, "POSITIVE")

	for _, column := range []string{"connector_code", "connector_type", "monthly_business_volume", "hold_reason"} {
		value, ok := complete[column]
		if !ok {
			t.Fatalf("column %q absent after populate", column)
		}
		if value != nil {
			t.Fatalf("defaulted column %q = %#v, want nil", column, value)
		}
	}
	if got := complete["connector_name"]; got != "S Patel" {
		t.Fatalf("connector_name = %#v", got)
	}
}

func TestPopulateAllColumnsDoesNotMutateInput(t *testing.T) {
	e := Default()
	ctx := context.Background()

	record := MappedRecord{"final_status": "Approved"}
	_ = e.PopulateAllColumns(ctx, "RESIDENCE", record, "POSITIVE")
	if len(record) != 1 {
		t.Fatalf("input record mutated: %#v", record)
	}
}

func TestPopulateAllColumnsWarnsOnMissingRelevantColumn(t *testing.T) {
	e := Default()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := logging.WithLogger(context.Background(), logger)

	record := MappedRecord{"final_status": "Approved"}
	_ = e.PopulateAllColumns(ctx, "DSA_CONNECTOR", record, "POSITIVE")

	out := buf.String()
	if !strings.Contains(out, "relevant column missing after mapping") {
		t.Fatalf("expected missing-column warning, log output:\n%s", out)
	}
	if !strings.Contains(out, "connector_name") {
		t.Fatalf("warning should name connector_name, log output:\n%s", out)
	}
}

func TestPopulateAllColumnsUnknownTypeReturnsCopy(t *testing.T) {
	e := Default()
	ctx := context.Background()

	record := MappedRecord{"anything": "stays"}
	complete := e.PopulateAllColumns(ctx, "UNKNOWN_TYPE", record, "POSITIVE")
	if len(complete) != 1 || complete["anything"] != "stays" {
		t.Fatalf("unknown type populate = %#v", complete)
	}
}
