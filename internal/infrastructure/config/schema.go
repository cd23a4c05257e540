package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/datagrid/config.schema.json"
	schema.Title = "datagrid configuration"
	schema.Description = "Configuration schema for datagrid, a terminal grid of plot panels"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file.
func GenerateSchemaFile(dir string) error {
	data, err := Schema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "config.schema.json"), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
