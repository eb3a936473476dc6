// Package config loads the cubewalk run configuration from YAML.
//
// The document is validated against an embedded JSON schema before it is
// decoded, so unknown keys, negative sizes and unknown trace levels are
// reported with the offending location.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that does not match the schema.
var ErrInvalid = errors.New("config: invalid configuration")

// Trace levels.
const (
	TraceInstruction = "instruction"
	TraceStep        = "step"
)

// Config is a cubewalk run configuration.
type Config struct {
	// Input is the puzzle file.
	Input string `yaml:"input"`
	// FaceSize overrides the derived face size when positive.
	FaceSize int      `yaml:"face_size"`
	Expected Expected `yaml:"expected"`
	Trace    Trace    `yaml:"trace"`
	Ledger   Ledger   `yaml:"ledger"`
	Verbose  bool     `yaml:"verbose"`
}

// Expected holds known answers; nil means unknown.
type Expected struct {
	Flat *int `yaml:"flat"`
	Cube *int `yaml:"cube"`
}

// Trace configures the walk trace. An empty Path disables it.
type Trace struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Ledger configures the answer ledger. An empty Path disables it.
type Ledger struct {
	Path string `yaml:"path"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		Trace: Trace{Level: TraceInstruction},
	}
}

const schemaURL = "cubewalk.schema.json"

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "input":     {"type": "string"},
    "face_size": {"type": "integer", "minimum": 0},
    "verbose":   {"type": "boolean"},
    "expected": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "flat": {"type": "integer", "minimum": 0},
        "cube": {"type": "integer", "minimum": 0}
      }
    },
    "trace": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "path":  {"type": "string"},
        "level": {"enum": ["instruction", "step"]}
      }
    },
    "ledger": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "path": {"type": "string"}
      }
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Parse validates and decodes a YAML document over Defaults().
func Parse(data []byte) (Config, error) {
	// 1. Decode generically and validate the JSON form.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validate(doc); err != nil {
		return Config{}, err
	}

	// 2. Decode into the typed config.
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.Trace.Level == "" {
		cfg.Trace.Level = TraceInstruction
	}
	return cfg, nil
}

// validate checks doc against the schema. doc is round-tripped through JSON
// so YAML scalars take the types the validator expects.
func validate(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Load reads the file at path and resolves relative paths in it against
// the file's directory.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize(filepath.Dir(path))
	return cfg, nil
}

// Normalize resolves every relative file path against base.
func (c *Config) Normalize(base string) {
	for _, p := range []*string{&c.Input, &c.Trace.Path, &c.Ledger.Path} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
