package verification

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

var errNoArchive = errors.New("report archive is not configured")

// ReportView is an archived report with its record decoded back into
// column form, plus the submission events appended for it.
type ReportView struct {
	Report ports.VerificationReport `json:"report"`
	Record map[string]any           `json:"record"`
	Events []ports.SubmissionEvent  `json:"events,omitempty"`
}

// ListReports returns archived reports matching the filter.
func (s *Service) ListReports(ctx context.Context, filter ports.ReportFilter) ([]ports.VerificationReport, error) {
	if s.archive == nil {
		return nil, errNoArchive
	}
	reports, err := s.archive.ListReports(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "list reports")
	}
	return reports, nil
}

// GetReport loads one archived report by submission id, decodes its stored
// record and attaches the submission event trail.
func (s *Service) GetReport(ctx context.Context, submissionID string) (ReportView, error) {
	if s.archive == nil {
		return ReportView{}, errNoArchive
	}
	report, err := s.archive.GetReport(ctx, submissionID)
	if err != nil {
		return ReportView{}, errs.Wrapf(err, "get report %s", submissionID)
	}

	view := ReportView{Report: report}
	if report.RecordJSON != "" {
		if err := json.Unmarshal([]byte(report.RecordJSON), &view.Record); err != nil {
			return ReportView{}, errs.Wrapf(err, "decode record for %s", submissionID)
		}
	}

	events, err := s.archive.ListEvents(ctx, submissionID)
	if err != nil {
		return ReportView{}, errs.Wrapf(err, "list events for %s", submissionID)
	}
	view.Events = events
	return view, nil
}
