package verification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/model"
	sqliterepo "github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/uow"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

func setupServiceWithDB(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	// Each test gets its own named in-memory database so archive listings
	// are not polluted by sibling tests sharing the process.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.VerificationReport{},
		&model.SubmissionEvent{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	svc := NewService(forms.Default(), sqliterepo.NewReportArchive(db), sqliteuow.NewUnitOfWork(db))
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	seq := 0
	svc.newID = func() string {
		seq++
		return "sub-" + t.Name() + "-" + string(rune('0'+seq))
	}
	return svc, db
}

func connectorSubmission() map[string]any {
	return map[string]any{
		"connectorName":       "Ravi Kumar",
		"connectorType":       "Individual",
		"connectorExperience": "7",
		"finalStatus":         "POSITIVE",
		"addressLocatable":    "Easy to Locate",
	}
}

func TestProcessSubmissionArchivesReportAndEvents(t *testing.T) {
	svc, _ := setupServiceWithDB(t)
	ctx := context.Background()

	result, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "DSA_CONNECTOR",
		FormType:         "POSITIVE",
		Submission:       connectorSubmission(),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !result.Validation.Valid {
		t.Fatalf("expected valid submission, missing=%v", result.Validation.MissingFields)
	}
	if result.TableName != "dsa_connector_verification_reports" {
		t.Fatalf("table = %q", result.TableName)
	}
	if got := result.Record["connector_experience"]; got != int64(7) {
		t.Fatalf("connector_experience = %v (%T)", got, got)
	}

	view, err := svc.GetReport(ctx, result.SubmissionID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if view.Report.VerificationType != "DSA_CONNECTOR" {
		t.Fatalf("archived type = %q", view.Report.VerificationType)
	}
	if !view.Report.Valid {
		t.Fatalf("archived report not marked valid")
	}
	if view.Record["connector_name"] != "Ravi Kumar" {
		t.Fatalf("decoded record connector_name = %v", view.Record["connector_name"])
	}
	if len(view.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(view.Events))
	}
	if view.Events[0].Stage != "processed" {
		t.Fatalf("event stage = %q", view.Events[0].Stage)
	}
}

func TestProcessSubmissionDryRunSkipsArchive(t *testing.T) {
	svc, _ := setupServiceWithDB(t)
	ctx := context.Background()

	result, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "DSA_CONNECTOR",
		FormType:         "POSITIVE",
		Submission:       connectorSubmission(),
		DryRun:           true,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(result.Record) == 0 {
		t.Fatalf("dry run should still produce the record")
	}

	_, err = svc.GetReport(ctx, result.SubmissionID)
	if !errors.Is(err, ports.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestProcessSubmissionInvalidStillArchived(t *testing.T) {
	svc, _ := setupServiceWithDB(t)
	ctx := context.Background()

	result, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "DSA_CONNECTOR",
		FormType:         "POSITIVE",
		Submission:       map[string]any{"connectorName": "Ravi Kumar"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Validation.Valid {
		t.Fatalf("expected invalid submission")
	}

	view, err := svc.GetReport(ctx, result.SubmissionID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if view.Report.Valid {
		t.Fatalf("archived report should be marked invalid")
	}
	if len(view.Events) != 1 || !strings.Contains(view.Events[0].Detail, "missing") {
		t.Fatalf("event detail should list missing fields, got %+v", view.Events)
	}
}

func TestProcessSubmissionRejectsBadInput(t *testing.T) {
	svc, _ := setupServiceWithDB(t)
	ctx := context.Background()

	if _, err := svc.ProcessSubmission(ctx, ProcessInput{FormType: "POSITIVE", Submission: map[string]any{}}); err == nil {
		t.Fatalf("expected error for missing verification type")
	}
	if _, err := svc.ProcessSubmission(ctx, ProcessInput{VerificationType: "RESIDENCE", Submission: map[string]any{}}); err == nil {
		t.Fatalf("expected error for missing form type")
	}
	if _, err := svc.ProcessSubmission(ctx, ProcessInput{VerificationType: "RESIDENCE", FormType: "POSITIVE"}); err == nil {
		t.Fatalf("expected error for nil submission")
	}
}

func TestListReportsFilters(t *testing.T) {
	svc, _ := setupServiceWithDB(t)
	ctx := context.Background()

	if _, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "DSA_CONNECTOR",
		FormType:         "POSITIVE",
		Submission:       connectorSubmission(),
	}); err != nil {
		t.Fatalf("process connector: %v", err)
	}
	if _, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "RESIDENCE",
		FormType:         "UNTRACEABLE",
		Submission:       map[string]any{"contactPerson": "Neighbour"},
	}); err != nil {
		t.Fatalf("process residence: %v", err)
	}

	all, err := svc.ListReports(ctx, ports.ReportFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all reports = %d, want 2", len(all))
	}

	connectors, err := svc.ListReports(ctx, ports.ReportFilter{VerificationType: "dsa_connector"})
	if err != nil {
		t.Fatalf("list connectors: %v", err)
	}
	if len(connectors) != 1 || connectors[0].VerificationType != "DSA_CONNECTOR" {
		t.Fatalf("connector filter returned %+v", connectors)
	}

	invalid, err := svc.ListReports(ctx, ports.ReportFilter{OnlyInvalid: true})
	if err != nil {
		t.Fatalf("list invalid: %v", err)
	}
	if len(invalid) != 1 || invalid[0].VerificationType != "RESIDENCE" {
		t.Fatalf("invalid filter returned %+v", invalid)
	}
}

func TestDescribeForm(t *testing.T) {
	svc, _ := setupServiceWithDB(t)

	outline, err := svc.DescribeForm("dsa-connector", "positive")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if outline.VerificationType != "DSA_CONNECTOR" {
		t.Fatalf("verification type = %q", outline.VerificationType)
	}
	if outline.Table != "dsa_connector_verification_reports" {
		t.Fatalf("table = %q", outline.Table)
	}
	if len(outline.Sections) == 0 {
		t.Fatalf("outline has no sections")
	}
	if outline.Sections[0].Title != "Basic Information" {
		t.Fatalf("first section = %q", outline.Sections[0].Title)
	}

	if _, err := svc.DescribeForm("WAREHOUSE", "POSITIVE"); err == nil {
		t.Fatalf("expected error for unknown verification type")
	}
}

func TestServiceWithoutArchive(t *testing.T) {
	svc := NewService(forms.Default(), nil, nil)
	ctx := context.Background()

	result, err := svc.ProcessSubmission(ctx, ProcessInput{
		VerificationType: "DSA_CONNECTOR",
		FormType:         "POSITIVE",
		Submission:       connectorSubmission(),
	})
	if err != nil {
		t.Fatalf("process without archive: %v", err)
	}
	if result.SubmissionID == "" {
		t.Fatalf("submission id missing")
	}

	if _, err := svc.ListReports(ctx, ports.ReportFilter{}); !errors.Is(err, errNoArchive) {
		t.Fatalf("expected errNoArchive, got %v", err)
	}
	if _, err := svc.GetReport(ctx, "x"); !errors.Is(err, errNoArchive) {
		t.Fatalf("expected errNoArchive, got %v", err)
	}
}
