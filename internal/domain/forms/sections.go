package forms

import "sort"

// Sections returns the section names for a (verification type, form type)
// pair in first-seen schema order. That order is the schema author's
// intended visual ordering; it is never re-sorted.
func (e *Engine) Sections(verificationType, formType string) []string {
	fields := e.FieldDefinitions(verificationType, formType)
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, 8)
	for _, f := range fields {
		if _, dup := seen[f.Section]; dup {
			continue
		}
		seen[f.Section] = struct{}{}
		out = append(out, f.Section)
	}
	return out
}

// SectionFields returns one section's fields sorted by Order ascending.
// Equal Order values keep their original relative order.
func (e *Engine) SectionFields(verificationType, section, formType string) []FieldDefinition {
	fields := e.FieldDefinitions(verificationType, formType)
	if len(fields) == 0 {
		return nil
	}

	out := make([]FieldDefinition, 0, len(fields))
	for _, f := range fields {
		if f.Section == section {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
