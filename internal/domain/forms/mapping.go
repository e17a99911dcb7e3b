package forms

import (
	"context"
	"log/slog"
	"sort"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
)

// MappedRecord maps destination column names to coerced values. It is
// produced once per submission and handed to the persistence collaborator;
// the engine never stores it.
type MappedRecord map[string]any

// MapToStorage translates a raw submission into destination columns for the
// verification type's table. Keys with an Ignored rule are dropped, mapped
// keys land under their column, unmapped keys pass through verbatim (forward
// compatibility with fields not yet in the table). Every surviving value is
// coerced on the way in.
//
// Keys are processed in sorted order, which makes the accepted
// last-write-wins between a legacy alias and its canonical key
// deterministic.
func (e *Engine) MapToStorage(ctx context.Context, verificationType string, submission map[string]any) MappedRecord {
	tc, canonical, known := e.resolve(verificationType)
	if !known {
		logging.Warn(ctx, "unknown verification type, mapping fields through verbatim",
			slog.String("verification_type", verificationType))
	}

	keys := make([]string, 0, len(submission))
	for key := range submission {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	record := make(MappedRecord, len(keys))
	for _, key := range keys {
		rule, mapped := tc.Mapping[key]
		if mapped && rule.Ignore {
			continue
		}

		column := key
		if mapped && rule.Column != "" {
			column = rule.Column
		}
		record[column] = e.coerce(canonical, key, submission[key])
	}
	return record
}
