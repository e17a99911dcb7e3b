package forms

import "testing"

func TestSectionsPositiveIncludesDocumentVerification(t *testing.T) {
	e := Default()

	if !containsString(e.Sections("RESIDENCE", "POSITIVE"), "Document Verification") {
		t.Fatalf("Sections(RESIDENCE, POSITIVE) missing Document Verification")
	}
	if containsString(e.Sections("RESIDENCE", "SHIFTED"), "Document Verification") {
		t.Fatalf("Sections(RESIDENCE, SHIFTED) should not include Document Verification")
	}
}

func TestSectionsFirstSeenOrder(t *testing.T) {
	e := Default()

	sections := e.Sections("RESIDENCE", "POSITIVE")
	if len(sections) == 0 {
		t.Fatalf("Sections(RESIDENCE, POSITIVE) returned nothing")
	}
	if sections[0] != "Basic Information" {
		t.Fatalf("first section = %q, want Basic Information", sections[0])
	}

	seen := make(map[string]struct{})
	for _, s := range sections {
		if _, dup := seen[s]; dup {
			t.Fatalf("section %q appears twice", s)
		}
		seen[s] = struct{}{}
	}
}

func TestSectionFieldsSortedByOrder(t *testing.T) {
	e := Default()

	for _, section := range e.Sections("OFFICE", "POSITIVE") {
		fields := e.SectionFields("OFFICE", section, "POSITIVE")
		if len(fields) == 0 {
			t.Fatalf("section %q has no fields", section)
		}
		for i := 1; i < len(fields); i++ {
			if fields[i-1].Order > fields[i].Order {
				t.Fatalf("section %q not sorted: %d before %d", section, fields[i-1].Order, fields[i].Order)
			}
		}
	}
}

func TestSectionFieldsSubsetOfDefinitions(t *testing.T) {
	e := Default()

	byName := make(map[string]struct{})
	for _, f := range e.FieldDefinitions("BUSINESS", "POSITIVE") {
		byName[f.Name] = struct{}{}
	}

	for _, section := range e.Sections("BUSINESS", "POSITIVE") {
		for _, f := range e.SectionFields("BUSINESS", section, "POSITIVE") {
			if _, ok := byName[f.Name]; !ok {
				t.Fatalf("section field %q not in FieldDefinitions output", f.Name)
			}
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
