package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/model"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

// ReportArchive implements ports.ReportArchive on sqlite via gorm.
type ReportArchive struct {
	db *gorm.DB
}

func NewReportArchive(db *gorm.DB) *ReportArchive {
	return &ReportArchive{db: db}
}

func (r *ReportArchive) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *ReportArchive) SaveReport(ctx context.Context, input ports.VerificationReportCreate) (ports.VerificationReport, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.VerificationReport{}, err
	}

	row := model.VerificationReport{
		SubmissionID:     input.SubmissionID,
		VerificationType: input.VerificationType,
		FormType:         input.FormType,
		TableName_:       input.TableName,
		RecordJSON:       input.RecordJSON,
		Valid:            input.Valid,
		MissingJSON:      input.MissingJSON,
		WarningsJSON:     input.WarningsJSON,
		CreatedAt:        input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.VerificationReport{}, errs.Wrap(err, "insert verification report")
	}
	return mapReport(row), nil
}

func (r *ReportArchive) GetReport(ctx context.Context, submissionID string) (ports.VerificationReport, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.VerificationReport{}, err
	}

	var row model.VerificationReport
	if err := db.Where("submission_id = ?", submissionID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.VerificationReport{}, ports.ErrReportNotFound
		}
		return ports.VerificationReport{}, errs.Wrap(err, "query verification report")
	}
	return mapReport(row), nil
}

func (r *ReportArchive) ListReports(ctx context.Context, filter ports.ReportFilter) ([]ports.VerificationReport, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.VerificationReport{})
	if vt := strings.TrimSpace(filter.VerificationType); vt != "" {
		query = query.Where("verification_type = ?", strings.ToUpper(vt))
	}
	if ft := strings.TrimSpace(filter.FormType); ft != "" {
		query = query.Where("form_type = ?", strings.ToUpper(ft))
	}
	if filter.OnlyInvalid {
		query = query.Where("is_valid = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.VerificationReport
	if err := query.Order("report_id desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query verification reports")
	}

	items := make([]ports.VerificationReport, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapReport(row))
	}
	return items, nil
}

func (r *ReportArchive) AppendEvent(ctx context.Context, input ports.SubmissionEventCreate) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	row := model.SubmissionEvent{
		SubmissionID: input.SubmissionID,
		Stage:        input.Stage,
		Detail:       input.Detail,
		CreatedAt:    input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert submission event")
	}
	return nil
}

func (r *ReportArchive) ListEvents(ctx context.Context, submissionID string) ([]ports.SubmissionEvent, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.SubmissionEvent
	if err := db.
		Where("submission_id = ?", submissionID).
		Order("event_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query submission events")
	}

	items := make([]ports.SubmissionEvent, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.SubmissionEvent{
			EventID:      row.EventID,
			SubmissionID: row.SubmissionID,
			Stage:        row.Stage,
			Detail:       row.Detail,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func mapReport(row model.VerificationReport) ports.VerificationReport {
	return ports.VerificationReport{
		ReportID:         row.ReportID,
		SubmissionID:     row.SubmissionID,
		VerificationType: row.VerificationType,
		FormType:         row.FormType,
		TableName:        row.TableName_,
		RecordJSON:       row.RecordJSON,
		Valid:            row.Valid,
		MissingJSON:      row.MissingJSON,
		WarningsJSON:     row.WarningsJSON,
		CreatedAt:        row.CreatedAt,
	}
}
