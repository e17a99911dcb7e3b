package forms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// coerce turns one raw submitted value into its storage representation. The
// classification for the key comes from the schema's declared value types;
// unknown keys default to trimmed-string handling. Coercion never fails: a
// value that cannot be parsed becomes nil.
//
// The check order matters. Booleans and object wrappers are handled before
// the typed dispatch so that a boolean never turns into a number and an
// object never gets reparsed as a date.
func (e *Engine) coerce(canonicalType, key string, raw any) any {
	classified := ValueText
	if classifier, ok := e.classifiers[canonicalType]; ok {
		if vt, ok := classifier[key]; ok {
			classified = vt
		}
	}
	return coerceValue(classified, raw)
}

func coerceValue(classified ValueType, raw any) any {
	if isEmptyValue(raw) {
		return nil
	}
	if b, ok := raw.(bool); ok {
		return b
	}
	if obj, ok := objectValue(raw); ok {
		return obj
	}

	switch classified {
	case ValueNumber:
		return parseInteger(raw)
	case ValueDecimal:
		return parseDecimal(raw)
	case ValueDate:
		return parseDateOnly(raw)
	default:
		s := strings.TrimSpace(stringifyValue(raw))
		if s == "" {
			return nil
		}
		return s
	}
}

func isEmptyValue(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return s == ""
	}
	return false
}

// objectValue stringifies non-array object values, typically enum wrappers
// like {"value": "POSITIVE", "label": "Positive"}, as their JSON encoding.
func objectValue(raw any) (string, bool) {
	switch raw.(type) {
	case map[string]any, map[string]string:
		if data, err := json.Marshal(raw); err == nil {
			return string(data), true
		}
		return fmt.Sprint(raw), true
	default:
		return "", false
	}
}

func parseInteger(raw any) any {
	switch v := raw.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil
		}
		return n
	default:
		return nil
	}
}

func parseDecimal(raw any) any {
	switch v := raw.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return nil
	}
}

// dateLayouts are tried in order; the first match wins. Output is always the
// calendar-date part only.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

func parseDateOnly(raw any) any {
	switch v := raw.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}
		return nil
	default:
		return nil
	}
}

// stringifyValue renders any raw value for display or string storage.
// Slices join with "," to match how the mobile client's string-cast of
// multiselect values has always behaved.
func stringifyValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
