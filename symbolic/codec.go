package symbolic

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec converts symbolic factors to and from persist payload strings.
// The payload is the scope as a YAML sequence.
type Codec struct{}

// EncodeFactor renders the scope of f.
func (Codec) EncodeFactor(f *Factor) (string, error) {
	out, err := yaml.Marshal(f.keys)
	if err != nil {
		return "", fmt.Errorf("symbolic: encode factor: %w", err)
	}

	return string(out), nil
}

// DecodeFactor parses a scope written by EncodeFactor.
func (Codec) DecodeFactor(payload string) (*Factor, error) {
	var keys []string
	if err := yaml.Unmarshal([]byte(payload), &keys); err != nil {
		return nil, fmt.Errorf("symbolic: decode factor: %w", err)
	}

	return NewFactor(keys...), nil
}
