package verification

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
)

// ExportJSONSchema renders the field definitions of a (verification type,
// form type) view as a JSON Schema document, so mobile clients and partner
// integrations can validate payloads before submitting them.
func (s *Service) ExportJSONSchema(verificationType, formType string) (*jsonschema.Schema, error) {
	vt := strings.ToUpper(strings.TrimSpace(verificationType))
	ft := strings.ToUpper(strings.TrimSpace(formType))

	fields := s.engine.FieldDefinitions(vt, ft)
	if len(fields) == 0 {
		return nil, fmt.Errorf("unknown verification type %q or empty form type view %q", verificationType, formType)
	}

	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Type:        "object",
		Title:       fmt.Sprintf("%s %s submission", vt, s.engine.FormTypeLabel(ft)),
		Description: fmt.Sprintf("Field-agent submission payload stored in %s.", s.engine.TableName(vt)),
		Properties:  jsonschema.NewProperties(),
	}

	for _, f := range fields {
		schema.Properties.Set(f.Name, fieldSchema(f))
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema, nil
}

func fieldSchema(f forms.FieldDefinition) *jsonschema.Schema {
	fs := &jsonschema.Schema{Title: f.Label}

	switch f.Type {
	case forms.ValueNumber:
		fs.Type = "integer"
	case forms.ValueDecimal:
		fs.Type = "number"
	case forms.ValueBoolean:
		fs.Type = "boolean"
	case forms.ValueDate:
		fs.Type = "string"
		fs.Format = "date"
	case forms.ValueMultiSelect:
		fs.Type = "array"
		fs.Items = &jsonschema.Schema{Type: "string"}
	default:
		// text, textarea and select all travel as strings.
		fs.Type = "string"
	}
	return fs
}
