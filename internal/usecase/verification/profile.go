package verification

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
)

// MappingProfile is the TOML shape of a deployment override file. Banks and
// back-office tenants rename destination columns or retire incoming keys
// without a rebuild; everything not mentioned keeps the builtin behavior.
type MappingProfile struct {
	Version int                           `toml:"version"`
	Aliases map[string]string             `toml:"aliases"`
	Types   map[string]TypeMappingProfile `toml:"types"`
}

type TypeMappingProfile struct {
	Table  string            `toml:"table"`
	Map    map[string]string `toml:"map"`
	Ignore []string          `toml:"ignore"`
}

// LoadMappingProfile reads and validates a deployment override file.
func LoadMappingProfile(path string) (MappingProfile, error) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return MappingProfile{}, errors.New("mapping profile path is required")
	}

	raw, err := os.ReadFile(clean)
	if err != nil {
		return MappingProfile{}, errs.Wrap(err, "read mapping profile")
	}

	var profile MappingProfile
	if err := toml.Unmarshal(raw, &profile); err != nil {
		return MappingProfile{}, errs.Wrap(err, "parse mapping profile")
	}
	if err := validateMappingProfile(profile); err != nil {
		return MappingProfile{}, err
	}
	return profile, nil
}

func validateMappingProfile(profile MappingProfile) error {
	if profile.Version != 1 {
		return fmt.Errorf("unsupported mapping profile version %d: expected version = 1", profile.Version)
	}

	for name, tp := range profile.Types {
		key := strings.TrimSpace(name)
		if key == "" {
			return errors.New("types table has an empty verification type key")
		}
		for src, col := range tp.Map {
			if strings.TrimSpace(src) == "" {
				return errors.New("types." + key + ".map has an empty source key")
			}
			if strings.TrimSpace(col) == "" {
				return errors.New("types." + key + ".map." + src + " has an empty destination column")
			}
		}
		for _, src := range tp.Ignore {
			if strings.TrimSpace(src) == "" {
				return errors.New("types." + key + ".ignore has an empty source key")
			}
		}
	}
	for alias, target := range profile.Aliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			return errors.New("aliases entries must have non-empty alias and target")
		}
	}
	return nil
}

// ApplyMappingProfile layers the profile's overrides on top of a base
// configuration and returns a new Config; the base is never mutated. Type
// keys in the profile are matched case-insensitively against canonical keys.
func ApplyMappingProfile(base forms.Config, profile MappingProfile) (forms.Config, error) {
	out := base
	out.Types = make(map[string]forms.TypeConfig, len(base.Types))
	for vt, tc := range base.Types {
		out.Types[vt] = tc
	}
	out.Aliases = make(map[string]string, len(base.Aliases)+len(profile.Aliases))
	for alias, target := range base.Aliases {
		out.Aliases[alias] = target
	}
	for alias, target := range profile.Aliases {
		// Lookup keys are canonical upper-case; a lowercase alias in the
		// TOML must still resolve.
		out.Aliases[strings.ToUpper(strings.TrimSpace(alias))] = strings.ToUpper(strings.TrimSpace(target))
	}

	for name, tp := range profile.Types {
		vt := strings.ToUpper(strings.TrimSpace(name))
		tc, ok := out.Types[vt]
		if !ok {
			return forms.Config{}, fmt.Errorf("mapping profile overrides unknown verification type %q", name)
		}

		merged := make(forms.MappingTable, len(tc.Mapping)+len(tp.Map)+len(tp.Ignore))
		for src, rule := range tc.Mapping {
			merged[src] = rule
		}
		for src, col := range tp.Map {
			merged[strings.TrimSpace(src)] = forms.MapTo(strings.TrimSpace(col))
		}
		for _, src := range tp.Ignore {
			merged[strings.TrimSpace(src)] = forms.Ignored
		}
		tc.Mapping = merged

		if table := strings.TrimSpace(tp.Table); table != "" {
			tc.Table = table
		}
		out.Types[vt] = tc
	}
	return out, nil
}

// EngineFromProfile builds an engine from the builtin configuration plus an
// optional override file. An empty path yields the builtin engine.
func EngineFromProfile(path string) (*forms.Engine, error) {
	if strings.TrimSpace(path) == "" {
		return forms.NewEngine(forms.DefaultConfig())
	}

	profile, err := LoadMappingProfile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ApplyMappingProfile(forms.DefaultConfig(), profile)
	if err != nil {
		return nil, err
	}
	return forms.NewEngine(cfg)
}
