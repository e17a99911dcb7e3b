package forms

import (
	"sort"
	"strings"
)

// FieldDefinitions returns the schema fields for a verification type,
// filtered to the given form type's view when one is supplied. Unknown
// verification types yield nil, not an error.
func (e *Engine) FieldDefinitions(verificationType, formType string) []FieldDefinition {
	tc, _, ok := e.resolve(verificationType)
	if !ok {
		return nil
	}
	if formType == "" {
		out := make([]FieldDefinition, len(tc.Fields))
		copy(out, tc.Fields)
		return out
	}

	out := make([]FieldDefinition, 0, len(tc.Fields))
	for _, f := range tc.Fields {
		if f.AppliesTo(formType) {
			out = append(out, f)
		}
	}
	return out
}

// TableName returns the destination storage table for a verification type.
// Unknown types get the configured default table so that callers always
// have somewhere to write.
func (e *Engine) TableName(verificationType string) string {
	tc, _, ok := e.resolve(verificationType)
	if !ok || tc.Table == "" {
		return e.cfg.DefaultTable
	}
	return tc.Table
}

// FormTypeLabel returns the display label for a form type code. Unknown
// codes come back unchanged.
func (e *Engine) FormTypeLabel(formType string) string {
	if label, ok := e.cfg.Labels[strings.ToUpper(strings.TrimSpace(formType))]; ok {
		return label
	}
	return formType
}

// VerificationTypes lists the canonical verification type keys the engine
// knows, in sorted order.
func (e *Engine) VerificationTypes() []string {
	out := make([]string, 0, len(e.cfg.Types))
	for vt := range e.cfg.Types {
		out = append(out, vt)
	}
	sort.Strings(out)
	return out
}

// FormTypes lists the form type codes shared by every verification type.
func (e *Engine) FormTypes() []string {
	out := make([]string, len(knownFormTypes))
	copy(out, knownFormTypes)
	return out
}
