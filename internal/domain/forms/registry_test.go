package forms

import "testing"

func TestFieldDefinitionsLookupIsCaseInsensitive(t *testing.T) {
	e := Default()

	upper := e.FieldDefinitions("RESIDENCE", "")
	lower := e.FieldDefinitions("residence", "")
	if len(upper) == 0 {
		t.Fatalf("FieldDefinitions(RESIDENCE) returned no fields")
	}
	if len(upper) != len(lower) {
		t.Fatalf("case-insensitive lookup mismatch: %d vs %d", len(upper), len(lower))
	}
}

func TestFieldDefinitionsAliasResolvesIdentically(t *testing.T) {
	e := Default()

	canonical := e.FieldDefinitions("RESIDENCE_CUM_OFFICE", "")
	aliased := e.FieldDefinitions("residence-cum-office", "")
	if len(canonical) == 0 {
		t.Fatalf("FieldDefinitions(RESIDENCE_CUM_OFFICE) returned no fields")
	}
	if len(aliased) != len(canonical) {
		t.Fatalf("alias lookup = %d fields, want %d", len(aliased), len(canonical))
	}
	for i := range canonical {
		if aliased[i].Name != canonical[i].Name {
			t.Fatalf("alias field %d = %q, want %q", i, aliased[i].Name, canonical[i].Name)
		}
	}
}

func TestFieldDefinitionsUnknownTypeIsEmpty(t *testing.T) {
	e := Default()

	if got := e.FieldDefinitions("UNKNOWN_TYPE", ""); got != nil {
		t.Fatalf("FieldDefinitions(UNKNOWN_TYPE) = %d fields, want none", len(got))
	}
}

func TestFieldDefinitionsFormTypeFilter(t *testing.T) {
	e := Default()

	all := e.FieldDefinitions("RESIDENCE", "")
	positive := e.FieldDefinitions("RESIDENCE", "POSITIVE")
	if len(positive) == 0 || len(positive) >= len(all) {
		t.Fatalf("POSITIVE view = %d fields, want a strict non-empty subset of %d", len(positive), len(all))
	}

	for _, f := range e.FieldDefinitions("RESIDENCE", "SHIFTED") {
		if !f.AppliesTo("SHIFTED") {
			t.Fatalf("SHIFTED view contains inapplicable field %q", f.Name)
		}
	}
}

func TestTableNameKnownAndDefault(t *testing.T) {
	e := Default()

	if got := e.TableName("RESIDENCE"); got != "residence_verification_reports" {
		t.Fatalf("TableName(RESIDENCE) = %q", got)
	}
	if got := e.TableName("dsa-connector"); got != "dsa_connector_verification_reports" {
		t.Fatalf("TableName(dsa-connector) = %q", got)
	}
	if got := e.TableName("UNKNOWN_TYPE"); got != "verification_reports" {
		t.Fatalf("TableName(UNKNOWN_TYPE) = %q, want default", got)
	}
}

func TestFormTypeLabel(t *testing.T) {
	e := Default()

	if got := e.FormTypeLabel("ENTRY_RESTRICTED"); got != "Entry Restricted" {
		t.Fatalf("FormTypeLabel(ENTRY_RESTRICTED) = %q", got)
	}
	if got := e.FormTypeLabel("SOMETHING_ELSE"); got != "SOMETHING_ELSE" {
		t.Fatalf("FormTypeLabel(SOMETHING_ELSE) = %q, want code unchanged", got)
	}
}

func TestNewEngineRejectsDuplicateFieldInFormTypeView(t *testing.T) {
	cfg := Config{
		Types: map[string]TypeConfig{
			"BROKEN": {
				Fields: []FieldDefinition{
					field("metPersonStatus", "Met Person Status", ValueSelect, false, "Basic Information", 1),
					field("metPersonStatus", "Met Person Status", ValueSelect, false, "Personal Details", 2),
				},
			},
		},
		DefaultTable: "verification_reports",
	}

	if _, err := NewEngine(cfg); err == nil {
		t.Fatalf("NewEngine() accepted duplicate field in a single form type view")
	}
}

func TestNewEngineRejectsLowercaseAliasKey(t *testing.T) {
	cfg := Config{
		Types: map[string]TypeConfig{
			"OK": {
				Fields: []FieldDefinition{
					field("finalStatus", "Final Status", ValueSelect, true, "Final Status", 1),
				},
			},
		},
		Aliases:      map[string]string{"ok-alias": "OK"},
		DefaultTable: "verification_reports",
	}

	if _, err := NewEngine(cfg); err == nil {
		t.Fatalf("NewEngine() accepted a non-canonical alias key that resolve() could never match")
	}
}

func TestNewEngineAllowsDuplicateAcrossDisjointFormTypes(t *testing.T) {
	cfg := Config{
		Types: map[string]TypeConfig{
			"OK": {
				Fields: []FieldDefinition{
					field("shiftedPeriod", "Shifted Period", ValueText, false, "Shifted Details", 1, FormTypeShifted),
					field("shiftedPeriod", "Shifted Period", ValueText, false, "History", 1, FormTypeNSP),
				},
			},
		},
		DefaultTable: "verification_reports",
	}

	if _, err := NewEngine(cfg); err != nil {
		t.Fatalf("NewEngine() = %v, want nil for disjoint form type views", err)
	}
}
