package forms

import "strings"

// notProvided is the display fallback for fields the agent left empty.
// Empty fields are still emitted: absence of data is a visible state, not an
// omission.
const notProvided = "Not provided"

// FieldValidation is the per-field validation stub carried by populated
// fields. The section builder always emits a passing stub; presentation
// collaborators overwrite it when they run their own checks.
type FieldValidation struct {
	Valid  bool
	Errors []string
}

// PopulatedField is one schema field joined with its submitted value.
type PopulatedField struct {
	ID           string
	Name         string
	Label        string
	Type         ValueType
	Value        any
	DisplayValue string
	Required     bool
	Validation   FieldValidation
}

// Section is a displayable group of populated fields. Order is the 1-based
// position among emitted sections, not the schema ordinal, because sections
// with no fields for the form type are dropped.
type Section struct {
	ID              string
	Title           string
	Description     string
	Fields          []PopulatedField
	Order           int
	Required        bool
	DefaultExpanded bool
}

// BuildSections reshapes a raw submission into displayable sections for the
// (verification type, form type) pair. Every applicable field appears
// exactly once, populated or not; sections that end up empty are dropped.
func (e *Engine) BuildSections(verificationType, formType string, submission map[string]any) []Section {
	names := e.Sections(verificationType, formType)
	if len(names) == 0 {
		return nil
	}

	out := make([]Section, 0, len(names))
	for _, name := range names {
		fields := e.SectionFields(verificationType, name, formType)
		if len(fields) == 0 {
			continue
		}

		populated := make([]PopulatedField, 0, len(fields))
		for _, f := range fields {
			populated = append(populated, populateField(f, submission))
		}

		order := len(out) + 1
		out = append(out, Section{
			ID:              slugify(name),
			Title:           name,
			Description:     e.cfg.SectionDescriptions[name],
			Fields:          populated,
			Order:           order,
			Required:        name == sectionBasicInformation,
			DefaultExpanded: order <= 2,
		})
	}
	return out
}

func populateField(f FieldDefinition, submission map[string]any) PopulatedField {
	value, ok := submissionValue(submission, f)
	display := notProvided
	if ok && !isEmptyValue(value) {
		display = stringifyValue(value)
	} else if !ok {
		value = nil
	}

	return PopulatedField{
		ID:           f.ID,
		Name:         f.Name,
		Label:        f.Label,
		Type:         f.Type,
		Value:        value,
		DisplayValue: display,
		Required:     f.Required,
		Validation:   FieldValidation{Valid: true},
	}
}

func slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
