package forms

import "testing"

func TestCoerceEmptyInputsAlwaysNil(t *testing.T) {
	types := []ValueType{ValueText, ValueNumber, ValueDecimal, ValueSelect, ValueMultiSelect, ValueDate, ValueBoolean, ValueTextArea}
	for _, vt := range types {
		if got := coerceValue(vt, nil); got != nil {
			t.Fatalf("coerceValue(%s, nil) = %v", vt, got)
		}
		if got := coerceValue(vt, ""); got != nil {
			t.Fatalf("coerceValue(%s, \"\") = %v", vt, got)
		}
	}
}

func TestCoerceBooleanUnchanged(t *testing.T) {
	// Booleans must short-circuit before numeric or date classification.
	if got := coerceValue(ValueNumber, true); got != true {
		t.Fatalf("coerceValue(number, true) = %v", got)
	}
	if got := coerceValue(ValueDate, false); got != false {
		t.Fatalf("coerceValue(date, false) = %v", got)
	}
}

func TestCoerceObjectStringified(t *testing.T) {
	wrapper := map[string]any{"value": "POSITIVE"}
	got := coerceValue(ValueDate, wrapper)
	s, ok := got.(string)
	if !ok || s != `{"value":"POSITIVE"}` {
		t.Fatalf("coerceValue(date, wrapper) = %#v", got)
	}
}

func TestCoerceNumberParsing(t *testing.T) {
	if got := coerceValue(ValueNumber, "12"); got != int64(12) {
		t.Fatalf("coerceValue(number, \"12\") = %#v", got)
	}
	if got := coerceValue(ValueNumber, float64(7)); got != int64(7) {
		t.Fatalf("coerceValue(number, 7.0) = %#v", got)
	}
	if got := coerceValue(ValueNumber, "5 years"); got != nil {
		t.Fatalf("coerceValue(number, \"5 years\") = %#v, want nil", got)
	}
}

func TestCoerceDecimalParsing(t *testing.T) {
	if got := coerceValue(ValueDecimal, "1250.50"); got != 1250.50 {
		t.Fatalf("coerceValue(decimal, \"1250.50\") = %#v", got)
	}
	if got := coerceValue(ValueDecimal, "approx 1000"); got != nil {
		t.Fatalf("coerceValue(decimal, \"approx 1000\") = %#v, want nil", got)
	}
}

func TestCoerceDateParsing(t *testing.T) {
	cases := map[string]string{
		"2024-03-15":           "2024-03-15",
		"2024-03-15T10:30:00Z": "2024-03-15",
		"15/03/2024":           "2024-03-15",
	}
	for in, want := range cases {
		if got := coerceValue(ValueDate, in); got != want {
			t.Fatalf("coerceValue(date, %q) = %#v, want %q", in, got, want)
		}
	}
	if got := coerceValue(ValueDate, "not a date"); got != nil {
		t.Fatalf("coerceValue(date, junk) = %#v, want nil", got)
	}
}

func TestCoerceDefaultTrimsStrings(t *testing.T) {
	if got := coerceValue(ValueText, "  hello  "); got != "hello" {
		t.Fatalf("coerceValue(text) = %#v", got)
	}
	if got := coerceValue(ValueText, "   "); got != nil {
		t.Fatalf("coerceValue(text, whitespace) = %#v, want nil", got)
	}
}

func TestCoerceMultiSelectJoins(t *testing.T) {
	got := coerceValue(ValueMultiSelect, []any{"Home Loan", "Auto Loan"})
	if got != "Home Loan,Auto Loan" {
		t.Fatalf("coerceValue(multiselect) = %#v", got)
	}
}

func TestCoerceIsIdempotent(t *testing.T) {
	cases := []struct {
		vt  ValueType
		raw any
	}{
		{ValueNumber, "42"},
		{ValueDecimal, "3.5"},
		{ValueDate, "2024-03-15T10:30:00Z"},
		{ValueText, "  spaced  "},
		{ValueBoolean, true},
		{ValueMultiSelect, []any{"a", "b"}},
	}
	for _, tc := range cases {
		once := coerceValue(tc.vt, tc.raw)
		twice := coerceValue(tc.vt, once)
		if once != twice {
			t.Fatalf("coerceValue(%s) not idempotent: %#v then %#v", tc.vt, once, twice)
		}
	}
}
