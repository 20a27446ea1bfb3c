package tuning

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"planter/advisor"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads weight overrides from a YAML or TOML file, chosen by extension.
// Fields the file leaves out keep their default value.
func Load(path string) (advisor.Weights, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return advisor.Weights{}, fmt.Errorf("read tuning file: %w", err)
	}
	return Decode(filepath.Ext(path), raw)
}

// Decode applies the overrides in raw on top of advisor.DefaultWeights.
// format is a file extension (".yaml", ".yml", ".toml") or a bare name.
func Decode(format string, raw []byte) (advisor.Weights, error) {
	w := advisor.DefaultWeights()
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		if err := yaml.Unmarshal(raw, &w); err != nil {
			return advisor.Weights{}, fmt.Errorf("tuning yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&w); err != nil {
			return advisor.Weights{}, fmt.Errorf("tuning toml: %w", err)
		}
	default:
		return advisor.Weights{}, fmt.Errorf("unsupported tuning format %q", format)
	}
	if err := Validate(w); err != nil {
		return advisor.Weights{}, err
	}
	return w, nil
}

// Validate rejects weights the scoring functions cannot work with.
func Validate(w advisor.Weights) error {
	if w.EarlyTurns < 0 {
		return fmt.Errorf("early_turns must not be negative, got %d", w.EarlyTurns)
	}
	if w.Token.Penalty < 0 {
		return fmt.Errorf("token.penalty must not be negative, got %v", w.Token.Penalty)
	}
	if w.Building.CostPenalty < 0 {
		return fmt.Errorf("building.cost_penalty must not be negative, got %v", w.Building.CostPenalty)
	}
	if w.PreferenceWeight < 0 {
		return fmt.Errorf("preference_weight must not be negative, got %v", w.PreferenceWeight)
	}
	return nil
}

// Encode renders w in the given format, for writing a starter tuning file.
func Encode(format string, w advisor.Weights) ([]byte, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yaml", "yml":
		return yaml.Marshal(w)
	case "toml":
		return toml.Marshal(w)
	default:
		return nil, fmt.Errorf("unsupported tuning format %q", format)
	}
}
