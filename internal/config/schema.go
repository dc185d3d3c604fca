package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decode or schema failure.
var ErrInvalidConfig = errors.New("invalid config")

const schemaURL = "schema://adjacent-config.json"

// schemaDefinition describes a partial config document. Ranges beyond
// basic sanity are left to Normalize.
var schemaDefinition = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"numerator":      map[string]any{"type": "integer", "minimum": 0},
		"denominator":    map[string]any{"type": "integer", "minimum": 1},
		"undirected":     map[string]any{"type": "boolean"},
		"weighted":       map[string]any{"type": "boolean"},
		"firstQuestion":  map[string]any{"type": "integer", "minimum": 0},
		"lastQuestion":   map[string]any{"type": "integer", "minimum": 0},
		"doNotLaunch":    map[string]any{"type": "boolean"},
		"randomizeModes": map[string]any{"type": "boolean"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		defBytes, err := json.Marshal(schemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks a JSON config document against the schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", ErrInvalidConfig, err)
	}
	sch, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Decode validates raw and overlays the fields it sets onto base.
func Decode(raw []byte, base Config) (Config, error) {
	if err := Validate(raw); err != nil {
		return base, err
	}
	cfg := base
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadFile reads a config file over the defaults. Files ending in .yaml or
// .yml are YAML; anything else is JSON.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if raw, err = yamlToJSON(raw); err != nil {
			return Default(), err
		}
	}
	return Decode(raw, Default())
}

// yamlToJSON re-encodes a YAML document so it goes through the same schema.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %w", ErrInvalidConfig, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return out, nil
}
