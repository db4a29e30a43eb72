package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes Color as its #rrggbbaa text form.
func (Color) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     "^#[0-9a-fA-F]{8}$",
		Description: "RGBA color as #rrggbbaa",
	}
}

// GenerateSchema returns a JSON schema for the resolved AppConfig, as printed by
// "tvmenu config show --format json".
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&AppConfig{})

	schema.ID = "https://github.com/bnema/tvmenu/config.schema.json"
	schema.Title = "tvmenu configuration"
	schema.Description = "Resolved tvmenu layout and color configuration, after defaults are applied"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
