// Package forms implements the verification-form schema and field-mapping
// engine: per-verification-type field schemas, section projection over raw
// submissions, mobile-to-storage column mapping with value coercion,
// required-field validation and the destination-completeness pass.
//
// Every operation is a pure function over the immutable configuration and a
// caller-supplied submission; the engine holds no per-submission state and
// is safe for concurrent use.
package forms

import (
	"sort"
	"strings"
)

// Engine answers schema questions and reshapes raw submissions for display
// and for storage. Build one with NewEngine and share it freely.
type Engine struct {
	cfg Config

	// classifiers holds, per canonical verification type, the value-type
	// classification for every field key the schema declares (by Name and,
	// where it differs, by ID).
	classifiers map[string]map[string]ValueType

	// columns holds, per canonical verification type, the ordered master
	// list of every destination column the mapper can produce.
	columns map[string][]string
}

// NewEngine validates the configuration and precomputes the per-type
// coercion classifiers and master column lists.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:         cfg,
		classifiers: make(map[string]map[string]ValueType, len(cfg.Types)),
		columns:     make(map[string][]string, len(cfg.Types)),
	}
	for vt, tc := range cfg.Types {
		e.classifiers[vt] = buildClassifier(tc)
		e.columns[vt] = buildColumns(tc)
	}
	return e, nil
}

// MustEngine is NewEngine for configurations known good at compile time,
// such as the builtin tables.
func MustEngine(cfg Config) *Engine {
	e, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns an engine over the builtin schema tables.
func Default() *Engine {
	return MustEngine(DefaultConfig())
}

// resolve canonicalizes a verification type lookup key: upper-case, then
// alias indirection. ok is false for unknown types; callers fall back to
// empty results or the default table, never an error.
func (e *Engine) resolve(verificationType string) (TypeConfig, string, bool) {
	key := strings.ToUpper(strings.TrimSpace(verificationType))
	if target, ok := e.cfg.Aliases[key]; ok {
		key = strings.ToUpper(target)
	}
	tc, ok := e.cfg.Types[key]
	return tc, key, ok
}

func buildClassifier(tc TypeConfig) map[string]ValueType {
	out := make(map[string]ValueType, len(tc.Fields)+len(tc.Mapping))
	byColumn := make(map[string]ValueType, len(tc.Fields))
	for _, f := range tc.Fields {
		out[f.Name] = f.Type
		if f.ID != "" && f.ID != f.Name {
			out[f.ID] = f.Type
		}

		rule, ok := tc.Mapping[f.Name]
		switch {
		case ok && rule.Ignore:
		case ok:
			byColumn[rule.Column] = f.Type
		default:
			byColumn[f.Name] = f.Type
		}
	}

	// Legacy alias keys share a destination column with a schema field and
	// must coerce the same way that field does, whichever key arrived.
	for key, rule := range tc.Mapping {
		if rule.Ignore || rule.Column == "" {
			continue
		}
		if _, classified := out[key]; classified {
			continue
		}
		if vt, ok := byColumn[rule.Column]; ok {
			out[key] = vt
		}
	}
	return out
}

// buildColumns derives the master destination column list: every schema
// field's resolved column in schema order, then any mapping-only columns
// (legacy aliases, server-side extras) in sorted key order.
func buildColumns(tc TypeConfig) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(tc.Fields))

	add := func(col string) {
		if col == "" {
			return
		}
		if _, dup := seen[col]; dup {
			return
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}

	for _, f := range tc.Fields {
		rule, ok := tc.Mapping[f.Name]
		switch {
		case ok && rule.Ignore:
			// UI-only field, never stored.
		case ok:
			add(rule.Column)
		default:
			add(f.Name)
		}
	}

	rest := make([]string, 0, len(tc.Mapping))
	for key, rule := range tc.Mapping {
		if rule.Ignore {
			continue
		}
		if _, dup := seen[rule.Column]; dup {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		add(tc.Mapping[key].Column)
	}

	return out
}
