package forms

import (
	"context"
	"log/slog"
	"strings"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
)

// PopulateAllColumns completes a mapped record: every column in the
// verification type's master list ends up present, defaulting to nil.
// Columns relevant to the form type that were still missing after mapping
// are logged as warnings; that signal means the schema and the submission
// disagree, and it never blocks anything.
func (e *Engine) PopulateAllColumns(ctx context.Context, verificationType string, record MappedRecord, formType string) MappedRecord {
	tc, canonical, known := e.resolve(verificationType)

	out := make(MappedRecord, len(record))
	for column, value := range record {
		out[column] = value
	}
	if !known {
		return out
	}

	for _, column := range e.columns[canonical] {
		if _, ok := out[column]; !ok {
			out[column] = nil
		}
	}

	ft := strings.ToUpper(strings.TrimSpace(formType))
	for _, column := range tc.Relevant[ft] {
		if _, ok := record[column]; ok {
			continue
		}
		logging.Warn(ctx, "relevant column missing after mapping",
			slog.String("column", column),
			slog.String("form_type", ft))
	}
	return out
}
