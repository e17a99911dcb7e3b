package forms

import "testing"

func TestValidateUntraceableBaseRequirements(t *testing.T) {
	e := Default()

	result := e.Validate("", "UNTRACEABLE", map[string]any{})
	if result.Valid {
		t.Fatalf("Validate({}) reported valid")
	}
	for _, want := range []string{"contactPerson", "callRemark", "finalStatus"} {
		if !containsString(result.MissingFields, want) {
			t.Fatalf("MissingFields = %v, want %q included", result.MissingFields, want)
		}
	}
}

func TestValidatePositiveResidence(t *testing.T) {
	e := Default()

	result := e.Validate("RESIDENCE", "POSITIVE", map[string]any{
		"metPersonName":      "A Verma",
		"metPersonRelation":  "Self",
		"stayingStatus":      "Owned",
		"stayingPeriod":      "8 years",
		"totalFamilyMembers": 4,
		"finalStatus":        "Positive",
	})
	if !result.Valid {
		t.Fatalf("Validate() = invalid, missing %v", result.MissingFields)
	}
}

func TestValidateZeroIsPresent(t *testing.T) {
	e := Default()

	result := e.Validate("RESIDENCE", "POSITIVE", map[string]any{
		"totalFamilyMembers": 0,
	})
	if containsString(result.MissingFields, "totalFamilyMembers") {
		t.Fatalf("numeric 0 misreported as missing: %v", result.MissingFields)
	}
}

func TestValidateMissingOrderMatchesRequiredList(t *testing.T) {
	e := Default()

	result := e.Validate("RESIDENCE", "SHIFTED", map[string]any{})
	want := []string{"shiftedPeriod", "currentLocation", "premisesStatus", "finalStatus"}
	if len(result.MissingFields) != len(want) {
		t.Fatalf("MissingFields = %v, want %v", result.MissingFields, want)
	}
	for i := range want {
		if result.MissingFields[i] != want[i] {
			t.Fatalf("MissingFields[%d] = %q, want %q", i, result.MissingFields[i], want[i])
		}
	}
}

func TestValidateConditionalWarningOnlyForPositive(t *testing.T) {
	e := Default()

	submission := map[string]any{
		"metPersonName":       "A Verma",
		"metPersonRelation":   "Self",
		"stayingStatus":       "Owned",
		"stayingPeriod":       "8 years",
		"totalFamilyMembers":  4,
		"finalStatus":         "Positive",
		"documentShownStatus": "Shown",
	}

	result := e.Validate("RESIDENCE", "POSITIVE", submission)
	if !result.Valid {
		t.Fatalf("Validate() invalid: %v", result.MissingFields)
	}
	if len(result.Warnings) == 0 {
		t.Fatalf("expected documentType warning, got none")
	}

	// Same trigger under a non-positive outcome stays silent.
	shifted := e.Validate("RESIDENCE", "SHIFTED", map[string]any{
		"documentShownStatus": "Shown",
		"shiftedPeriod":       "2 years",
		"currentLocation":     "Pune",
		"premisesStatus":      "Vacant",
		"finalStatus":         "Shifted",
	})
	if len(shifted.Warnings) != 0 {
		t.Fatalf("SHIFTED warnings = %v, want none", shifted.Warnings)
	}
}

func TestValidateWarningsNeverAffectValidity(t *testing.T) {
	e := Default()

	result := e.Validate("RESIDENCE", "POSITIVE", map[string]any{
		"metPersonName":       "A Verma",
		"metPersonRelation":   "Self",
		"stayingStatus":       "On Rent",
		"stayingPeriod":       "1 year",
		"totalFamilyMembers":  2,
		"finalStatus":         "Positive",
		"documentShownStatus": "Shown",
	})
	if len(result.Warnings) == 0 {
		t.Fatalf("expected warnings for missing documentType and rentAmount")
	}
	if !result.Valid {
		t.Fatalf("warnings must not invalidate: %v", result.MissingFields)
	}
}
