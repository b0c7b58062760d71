package cliapp

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// writeValue encodes v to the output in the configured format.
func (a *App) writeValue(v any) error {
	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	default:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	}
}
