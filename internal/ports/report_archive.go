package ports

import (
	"context"
	"errors"
)

var ErrReportNotFound = errors.New("verification report not found")

// ReportFilter narrows archive listings for queue and review views.
type ReportFilter struct {
	VerificationType string
	FormType         string
	OnlyInvalid      bool
	Limit            int
}

// VerificationReport is the archived outcome of one processed submission:
// the fully populated record as JSON, addressed to the destination table the
// persistence collaborator writes.
type VerificationReport struct {
	ReportID         uint64
	SubmissionID     string
	VerificationType string
	FormType         string
	TableName        string
	RecordJSON       string
	Valid            bool
	MissingJSON      string
	WarningsJSON     string
	CreatedAt        string
}

// VerificationReportCreate is the insert payload for SaveReport.
type VerificationReportCreate struct {
	SubmissionID     string
	VerificationType string
	FormType         string
	TableName        string
	RecordJSON       string
	Valid            bool
	MissingJSON      string
	WarningsJSON     string
	CreatedAt        string
}

// SubmissionEvent is one step of a submission's processing trail.
type SubmissionEvent struct {
	EventID      uint64
	SubmissionID string
	Stage        string
	Detail       string
	CreatedAt    string
}

// SubmissionEventCreate is the insert payload for AppendEvent.
type SubmissionEventCreate struct {
	SubmissionID string
	Stage        string
	Detail       string
	CreatedAt    string
}

// ReportArchive stores processed submissions and their event trails.
type ReportArchive interface {
	SaveReport(ctx context.Context, input VerificationReportCreate) (VerificationReport, error)
	GetReport(ctx context.Context, submissionID string) (VerificationReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]VerificationReport, error)
	AppendEvent(ctx context.Context, input SubmissionEventCreate) error
	ListEvents(ctx context.Context, submissionID string) ([]SubmissionEvent, error)
}
