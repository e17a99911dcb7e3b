package forms

import "strings"

// ValueType classifies how a field's raw mobile value is coerced before
// storage and how it is rendered in an exported schema.
type ValueType string

const (
	ValueText        ValueType = "text"
	ValueNumber      ValueType = "number"
	ValueDecimal     ValueType = "decimal"
	ValueSelect      ValueType = "select"
	ValueMultiSelect ValueType = "multiselect"
	ValueDate        ValueType = "date"
	ValueBoolean     ValueType = "boolean"
	ValueTextArea    ValueType = "textarea"
)

// FieldDefinition is the static metadata describing one form field. ID and
// Name are usually equal; older mobile clients may submit under either, so
// value lookups try Name first and fall back to ID. Definitions are built
// once at load time and never mutated.
type FieldDefinition struct {
	ID       string
	Name     string
	Label    string
	Type     ValueType
	Required bool
	Section  string
	Order    int

	// FormTypes restricts the field to specific sub-outcomes. Nil or empty
	// means the field applies to every form type.
	FormTypes []string
}

// AppliesTo reports whether the field is part of the given form type's view.
// The comparison is case-insensitive; an empty form type matches only
// unrestricted fields.
func (f FieldDefinition) AppliesTo(formType string) bool {
	if len(f.FormTypes) == 0 {
		return true
	}
	for _, ft := range f.FormTypes {
		if strings.EqualFold(ft, formType) {
			return true
		}
	}
	return false
}

// submissionValue is the two-key lookup shared by the section builder and
// the validator: Name takes priority, ID is the backward-compatibility
// fallback.
func submissionValue(submission map[string]any, field FieldDefinition) (any, bool) {
	if v, ok := submission[field.Name]; ok {
		return v, true
	}
	if field.ID != field.Name {
		if v, ok := submission[field.ID]; ok {
			return v, true
		}
	}
	return nil, false
}
