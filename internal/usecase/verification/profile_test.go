package verification

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadMappingProfileRejectsWrongVersion(t *testing.T) {
	path := writeProfile(t, "version = 9\n")
	if _, err := LoadMappingProfile(path); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestLoadMappingProfileRejectsEmptyColumn(t *testing.T) {
	path := writeProfile(t, `
version = 1

[types.RESIDENCE.map]
applicantName = ""
`)
	if _, err := LoadMappingProfile(path); err == nil {
		t.Fatalf("expected empty-column error")
	}
}

func TestApplyMappingProfileOverrides(t *testing.T) {
	path := writeProfile(t, `
version = 1

[aliases]
"DSA" = "dsa_connector"

[types.dsa_connector]
table = "partner_connector_reports"
ignore = ["landmark2"]

[types.dsa_connector.map]
connectorCode = "partner_code"
`)
	profile, err := LoadMappingProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}

	base := forms.DefaultConfig()
	cfg, err := ApplyMappingProfile(base, profile)
	if err != nil {
		t.Fatalf("apply profile: %v", err)
	}

	engine, err := forms.NewEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if got := engine.TableName("DSA"); got != "partner_connector_reports" {
		t.Fatalf("aliased table = %q", got)
	}

	record := engine.MapToStorage(context.Background(), "DSA_CONNECTOR", map[string]any{
		"connectorCode": "CC-9",
		"landmark2":     "Near temple",
		"connectorName": "Ravi Kumar",
	})
	if record["partner_code"] != "CC-9" {
		t.Fatalf("overridden column missing: %v", record)
	}
	if _, ok := record["connector_code"]; ok {
		t.Fatalf("old column should no longer receive the value: %v", record)
	}
	if _, ok := record["landmark_2"]; ok {
		t.Fatalf("ignored key still mapped: %v", record)
	}
	if record["connector_name"] != "Ravi Kumar" {
		t.Fatalf("untouched mapping lost: %v", record)
	}
}

func TestApplyMappingProfileLowercaseAliasResolves(t *testing.T) {
	path := writeProfile(t, `
version = 1

[aliases]
"dsa" = "dsa_connector"
`)
	profile, err := LoadMappingProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}

	cfg, err := ApplyMappingProfile(forms.DefaultConfig(), profile)
	if err != nil {
		t.Fatalf("apply profile: %v", err)
	}
	engine, err := forms.NewEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if got := engine.TableName("dsa"); got != "dsa_connector_verification_reports" {
		t.Fatalf("TableName(dsa) = %q, want the connector table", got)
	}
	if got := engine.TableName("DSA"); got != "dsa_connector_verification_reports" {
		t.Fatalf("TableName(DSA) = %q, want the connector table", got)
	}
}

func TestApplyMappingProfileDoesNotMutateBase(t *testing.T) {
	path := writeProfile(t, `
version = 1

[types.RESIDENCE.map]
customerName = "renamed_customer"
`)
	profile, err := LoadMappingProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}

	base := forms.DefaultConfig()
	if _, err := ApplyMappingProfile(base, profile); err != nil {
		t.Fatalf("apply profile: %v", err)
	}

	rule, ok := base.Types["RESIDENCE"].Mapping["customerName"]
	if !ok || rule.Column != "customer_name" {
		t.Fatalf("base config mutated: %+v", rule)
	}
}

func TestApplyMappingProfileUnknownType(t *testing.T) {
	path := writeProfile(t, `
version = 1

[types.WAREHOUSE.map]
somethingElse = "other"
`)
	profile, err := LoadMappingProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if _, err := ApplyMappingProfile(forms.DefaultConfig(), profile); err == nil {
		t.Fatalf("expected unknown-type error")
	}
}

func TestEngineFromProfileEmptyPath(t *testing.T) {
	engine, err := EngineFromProfile("")
	if err != nil {
		t.Fatalf("builtin engine: %v", err)
	}
	if got := engine.TableName("RESIDENCE"); got != "residence_verification_reports" {
		t.Fatalf("builtin residence table = %q", got)
	}
}
