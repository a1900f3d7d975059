// Package content owns the static portfolio fixture compiled into the binary.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cjdelfin.dev/internal/models"
)

//go:embed portfolio.yaml
var embedded []byte

// Load decodes the embedded fixture. A malformed fixture is a build defect,
// so this panics instead of returning an error.
func Load() *models.Portfolio {
	portfolio, err := Parse(embedded)
	if err != nil {
		panic("Failed to load embedded portfolio.yaml: " + err.Error())
	}
	return portfolio
}

// LoadFile reads an override fixture from disk
func LoadFile(path string) (*models.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	portfolio, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return portfolio, nil
}

// Parse decodes and validates a YAML fixture
func Parse(data []byte) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	if err := portfolio.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}
	return &portfolio, nil
}
