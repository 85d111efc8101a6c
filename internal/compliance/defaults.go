package compliance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Expected is the default value for one directive.
type Expected struct {
	Directive string
	Value     string
	// IsString is false for numbers, booleans and null. The legacy
	// checker compares those by type as well as text, so they never match.
	IsString bool
}

// Defaults lists expected directive values in file order.
type Defaults []Expected

// LoadDefaults reads expected values from path. The format follows the
// extension: .yaml/.yml, .toml, anything else is JSON. The top level must
// be a mapping of directive name to scalar value.
func LoadDefaults(fs afero.Fs, path string) (Defaults, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults: %w", err)
	}

	var defaults Defaults
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		defaults, err = parseYAMLDefaults(data)
	case ".toml":
		defaults, err = parseTOMLDefaults(data)
	default:
		defaults, err = parseJSONDefaults(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse defaults %s: %w", path, err)
	}
	return defaults, nil
}

// parseJSONDefaults walks the token stream so key order survives.
func parseJSONDefaults(data []byte) (Defaults, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}

	var defaults Defaults
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		exp := Expected{Directive: key}
		switch v := valTok.(type) {
		case string:
			exp.Value, exp.IsString = v, true
		case json.Number:
			exp.Value = v.String()
		case bool:
			exp.Value = fmt.Sprint(v)
		case nil:
			exp.Value = ""
		case json.Delim:
			return nil, fmt.Errorf("directive %q: value must be a scalar", key)
		}
		defaults = upsert(defaults, exp)
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}
	return defaults, nil
}

func parseYAMLDefaults(data []byte) (Defaults, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a YAML mapping")
	}

	var defaults Defaults
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("directive %q: value must be a scalar", key.Value)
		}
		exp := Expected{
			Directive: key.Value,
			Value:     val.Value,
			IsString:  val.ShortTag() == "!!str",
		}
		if val.ShortTag() == "!!null" {
			exp.Value = ""
		}
		defaults = upsert(defaults, exp)
	}
	return defaults, nil
}

func parseTOMLDefaults(data []byte) (Defaults, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	var defaults Defaults
	for _, key := range md.Keys() {
		if len(key) != 1 {
			return nil, fmt.Errorf("directive %q: tables are not supported", key.String())
		}
		name := key[0]

		exp := Expected{Directive: name}
		switch v := raw[name].(type) {
		case string:
			exp.Value, exp.IsString = v, true
		case int64, float64, bool:
			exp.Value = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("directive %q: value must be a scalar", name)
		}
		defaults = upsert(defaults, exp)
	}
	return defaults, nil
}

// upsert replaces an existing directive in place (a duplicate JSON key
// keeps its first position but takes the last value) or appends it.
func upsert(defaults Defaults, exp Expected) Defaults {
	for i := range defaults {
		if defaults[i].Directive == exp.Directive {
			defaults[i] = exp
			return defaults
		}
	}
	return append(defaults, exp)
}
