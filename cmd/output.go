package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
)

// writeOutput renders a command result as json (default) or yaml.
func writeOutput(w io.Writer, format string, value any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return errs.Wrap(err, "encode json output")
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return errs.Wrap(err, "encode yaml output")
		}
		return errs.Wrap(enc.Close(), "close yaml encoder")
	default:
		return fmt.Errorf("unsupported output format %q (use json or yaml)", format)
	}
}

// readSubmission loads a submission payload from a JSON file, or stdin when
// the path is "-".
func readSubmission(path string, stdin io.Reader) (map[string]any, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errs.Wrap(err, "read submission")
	}

	var submission map[string]any
	if err := json.Unmarshal(raw, &submission); err != nil {
		return nil, errs.Wrap(err, "parse submission json")
	}
	return submission, nil
}
