package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

// ProcessInput carries one raw submission through the storage pipeline.
type ProcessInput struct {
	VerificationType string
	FormType         string
	Submission       map[string]any

	// DryRun skips the archive write; the mapped record is still returned.
	DryRun bool
}

// ProcessResult is everything the persistence collaborator needs: the
// validation outcome, the complete record and the destination table.
type ProcessResult struct {
	SubmissionID string
	TableName    string
	Validation   forms.ValidationResult
	Record       forms.MappedRecord
}

// ProcessSubmission validates, maps, completes and (unless DryRun) archives
// one submission. Validation failure does not stop the pipeline: the record
// is produced and archived either way, and the caller decides whether to
// block on Validation.Valid.
func (s *Service) ProcessSubmission(ctx context.Context, input ProcessInput) (ProcessResult, error) {
	if ctx == nil {
		return ProcessResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ProcessResult{}, errs.Wrap(err, "check context")
	}
	if input.Submission == nil {
		return ProcessResult{}, errors.New("submission is required")
	}

	vt := strings.ToUpper(strings.TrimSpace(input.VerificationType))
	ft := strings.ToUpper(strings.TrimSpace(input.FormType))
	if vt == "" {
		return ProcessResult{}, errors.New("verification type is required")
	}
	if ft == "" {
		return ProcessResult{}, errors.New("form type is required")
	}

	id := s.newID()
	ctx = logging.WithSubmission(ctx, id, vt)

	validation := s.engine.Validate(vt, ft, input.Submission)
	record := s.engine.MapToStorage(ctx, vt, input.Submission)
	record = s.engine.PopulateAllColumns(ctx, vt, record, ft)

	result := ProcessResult{
		SubmissionID: id,
		TableName:    s.engine.TableName(vt),
		Validation:   validation,
		Record:       record,
	}

	if input.DryRun || s.archive == nil {
		return result, nil
	}

	if err := s.archiveResult(ctx, vt, ft, result); err != nil {
		return ProcessResult{}, err
	}

	logging.Info(ctx, "submission processed",
		slog.String("form_type", ft),
		slog.String("table", result.TableName),
		slog.Bool("valid", validation.Valid))
	return result, nil
}

func (s *Service) archiveResult(ctx context.Context, vt, ft string, result ProcessResult) error {
	if s.uow == nil {
		return errors.New("unit of work is required to archive")
	}

	recordJSON, err := json.Marshal(result.Record)
	if err != nil {
		return errs.Wrap(err, "encode mapped record")
	}
	missingJSON, err := json.Marshal(result.Validation.MissingFields)
	if err != nil {
		return errs.Wrap(err, "encode missing fields")
	}
	warningsJSON, err := json.Marshal(result.Validation.Warnings)
	if err != nil {
		return errs.Wrap(err, "encode warnings")
	}

	now := s.timestamp()
	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.archive.SaveReport(txCtx, ports.VerificationReportCreate{
			SubmissionID:     result.SubmissionID,
			VerificationType: vt,
			FormType:         ft,
			TableName:        result.TableName,
			RecordJSON:       string(recordJSON),
			Valid:            result.Validation.Valid,
			MissingJSON:      string(missingJSON),
			WarningsJSON:     string(warningsJSON),
			CreatedAt:        now,
		}); err != nil {
			return err
		}

		detail := fmt.Sprintf("mapped %d columns for %s", len(result.Record), result.TableName)
		if !result.Validation.Valid {
			detail = fmt.Sprintf("%s; missing %s", detail, strings.Join(result.Validation.MissingFields, ", "))
		}
		return s.archive.AppendEvent(txCtx, ports.SubmissionEventCreate{
			SubmissionID: result.SubmissionID,
			Stage:        "processed",
			Detail:       detail,
			CreatedAt:    now,
		})
	})
}
