package forms

import "strings"

// ValidationResult reports the minimal required-field check for one
// submission. Warnings are advisory and never affect Valid; the caller
// decides whether missing fields block the submission.
type ValidationResult struct {
	Valid         bool
	MissingFields []string
	Warnings      []string
}

// Validate runs the required-field check for the form type's ordered list
// and, for the positive outcome only, the conditional warning rules.
//
// A field is missing when its value is nil, absent, or the empty string.
// Nothing else counts: numeric zero and boolean false are present values.
func (e *Engine) Validate(verificationType, formType string, submission map[string]any) ValidationResult {
	tc, _, known := e.resolve(verificationType)
	ft := strings.ToUpper(strings.TrimSpace(formType))

	required := e.cfg.BaseRequired[ft]
	if known {
		if list, ok := tc.Required[ft]; ok {
			required = list
		}
	}

	missing := make([]string, 0, len(required))
	for _, key := range required {
		if !present(submission, tc, key) {
			missing = append(missing, key)
		}
	}

	var warnings []string
	if ft == FormTypePositive {
		for _, rule := range tc.Rules {
			if !triggered(submission, tc, rule) {
				continue
			}
			if present(submission, tc, rule.Expect) {
				continue
			}
			warnings = append(warnings, rule.Message)
		}
	}

	return ValidationResult{
		Valid:         len(missing) == 0,
		MissingFields: missing,
		Warnings:      warnings,
	}
}

// lookup applies the two-key lookup when the schema declares the field, so
// a legacy client submitting under the field ID still counts.
func lookup(submission map[string]any, tc TypeConfig, key string) (any, bool) {
	if v, ok := submission[key]; ok {
		return v, true
	}
	for _, f := range tc.Fields {
		if f.Name == key {
			return submissionValue(submission, f)
		}
	}
	return nil, false
}

func present(submission map[string]any, tc TypeConfig, key string) bool {
	value, ok := lookup(submission, tc, key)
	return ok && !isEmptyValue(value)
}

func triggered(submission map[string]any, tc TypeConfig, rule ConditionalRule) bool {
	value, ok := lookup(submission, tc, rule.When)
	if !ok || isEmptyValue(value) {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(stringifyValue(value)), rule.Equals)
}
