package forms

import (
	"fmt"
	"strings"
)

// Verification types shipped in the builtin configuration.
const (
	TypeResidence          = "RESIDENCE"
	TypeResidenceCumOffice = "RESIDENCE_CUM_OFFICE"
	TypeOffice             = "OFFICE"
	TypeBusiness           = "BUSINESS"
	TypeBuilder            = "BUILDER"
	TypeNOC                = "NOC"
	TypePropertyAPF        = "PROPERTY_APF"
	TypeDSAConnector       = "DSA_CONNECTOR"
)

// Form types (sub-outcomes) shared by every verification type.
const (
	FormTypePositive        = "POSITIVE"
	FormTypeShifted         = "SHIFTED"
	FormTypeNSP             = "NSP"
	FormTypeEntryRestricted = "ENTRY_RESTRICTED"
	FormTypeUntraceable     = "UNTRACEABLE"
)

// MappingRule says what happens to one incoming submission key. The zero
// value is invalid; build rules with MapTo or use Ignored. Keys with no rule
// at all pass through under their own name.
type MappingRule struct {
	Column string
	Ignore bool
}

// MapTo routes an incoming key to a destination column.
func MapTo(column string) MappingRule {
	return MappingRule{Column: column}
}

// Ignored drops the incoming key entirely. Used for UI-only state: images,
// client ids, timestamps and flags recomputed server-side.
var Ignored = MappingRule{Ignore: true}

// MappingTable maps incoming submission keys to rules for one verification
// type. Legacy alias keys must route to the same column as their canonical
// counterpart; when both arrive in one submission, last-write-wins in sorted
// key order.
type MappingTable map[string]MappingRule

// ConditionalRule is an advisory cross-field check: when the trigger field
// holds the trigger value, the expected field should be present. Evaluated
// only for the positive outcome.
type ConditionalRule struct {
	When    string
	Equals  string
	Expect  string
	Message string
}

// TypeConfig bundles everything the engine knows about one verification
// type: the field schema, the storage mapping, the destination table, the
// per-form-type required lists and relevance lists, and the conditional
// warning rules.
type TypeConfig struct {
	Fields   []FieldDefinition
	Mapping  MappingTable
	Table    string
	Required map[string][]string
	Rules    []ConditionalRule
	Relevant map[string][]string
}

// Config is the immutable configuration an Engine is built from. It is
// assembled once at process start (DefaultConfig plus optional deployment
// overrides) and never mutated afterwards.
type Config struct {
	// Types is keyed by canonical upper-case verification type.
	Types map[string]TypeConfig

	// Aliases maps alternate lookup keys (for example hyphenated display
	// names) to canonical type keys. Both sides are matched
	// case-insensitively.
	Aliases map[string]string

	// DefaultTable is returned by TableName for unknown verification types.
	DefaultTable string

	// BaseRequired holds per-form-type required lists used when a
	// verification type has no list of its own for that form type.
	BaseRequired map[string][]string

	// Labels maps form type codes to display labels.
	Labels map[string]string

	// SectionDescriptions maps section titles to the blurb shown under the
	// section header. Sections without an entry render with no description.
	SectionDescriptions map[string]string
}

// check rejects configurations whose schema tables would silently lose
// fields: a duplicate field name inside the filtered view of a single form
// type overwrites its earlier definition for any consumer that indexes by
// name.
func (c Config) check() error {
	for vt, tc := range c.Types {
		if strings.ToUpper(vt) != vt {
			return fmt.Errorf("verification type key %q is not canonical upper-case", vt)
		}
		for _, ft := range knownFormTypes {
			seen := make(map[string]struct{}, len(tc.Fields))
			for _, f := range tc.Fields {
				if !f.AppliesTo(ft) {
					continue
				}
				if _, dup := seen[f.Name]; dup {
					return fmt.Errorf("%s: duplicate field %q in %s view", vt, f.Name, ft)
				}
				seen[f.Name] = struct{}{}
			}
		}
	}
	for alias, target := range c.Aliases {
		if strings.ToUpper(alias) != alias {
			return fmt.Errorf("alias key %q is not canonical upper-case", alias)
		}
		if _, ok := c.Types[strings.ToUpper(target)]; !ok {
			return fmt.Errorf("alias %q points at unknown type %q", alias, target)
		}
	}
	return nil
}

var knownFormTypes = []string{
	FormTypePositive,
	FormTypeShifted,
	FormTypeNSP,
	FormTypeEntryRestricted,
	FormTypeUntraceable,
}
