package verification

import (
	"fmt"
	"strings"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
)

// FieldOutline is one schema field flattened for describe output.
type FieldOutline struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
}

// SectionOutline is one section of a form outline.
type SectionOutline struct {
	Title  string         `json:"title" yaml:"title"`
	Fields []FieldOutline `json:"fields" yaml:"fields"`
}

// FormOutline describes the full shape of a (verification type, form type)
// form: destination table plus ordered sections and fields.
type FormOutline struct {
	VerificationType string           `json:"verificationType" yaml:"verificationType"`
	FormType         string           `json:"formType" yaml:"formType"`
	FormTypeLabel    string           `json:"formTypeLabel" yaml:"formTypeLabel"`
	Table            string           `json:"table" yaml:"table"`
	Sections         []SectionOutline `json:"sections" yaml:"sections"`
}

// DescribeForm returns the schema outline for a verification type and form
// type. Unknown verification types are an error here, unlike in the engine,
// because a describe caller asked for that type by name.
func (s *Service) DescribeForm(verificationType, formType string) (FormOutline, error) {
	vt := strings.ToUpper(strings.TrimSpace(verificationType))
	ft := strings.ToUpper(strings.TrimSpace(formType))

	sections := s.engine.Sections(vt, ft)
	if len(sections) == 0 {
		return FormOutline{}, fmt.Errorf("unknown verification type %q or empty form type view %q", verificationType, formType)
	}

	outline := FormOutline{
		VerificationType: vt,
		FormType:         ft,
		FormTypeLabel:    s.engine.FormTypeLabel(ft),
		Table:            s.engine.TableName(vt),
		Sections:         make([]SectionOutline, 0, len(sections)),
	}
	for _, title := range sections {
		fields := s.engine.SectionFields(vt, title, ft)
		so := SectionOutline{Title: title, Fields: make([]FieldOutline, 0, len(fields))}
		for _, f := range fields {
			so.Fields = append(so.Fields, FieldOutline{
				Name:     f.Name,
				Label:    f.Label,
				Type:     string(f.Type),
				Required: f.Required,
			})
		}
		outline.Sections = append(outline.Sections, so)
	}
	return outline, nil
}

// PreviewSections renders a submission the way presentation collaborators
// will see it.
func (s *Service) PreviewSections(verificationType, formType string, submission map[string]any) []forms.Section {
	return s.engine.BuildSections(verificationType, formType, submission)
}
