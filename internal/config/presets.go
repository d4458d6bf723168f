package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/fyne-numberinput/internal/model"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// presetsFile is the on-disk shape of a presets document
type presetsFile struct {
	Presets []model.Preset `yaml:"presets"`
}

// DefaultPresets returns the presets embedded in the binary
func DefaultPresets() ([]model.Preset, error) {
	return parsePresets(defaultPresetsYAML)
}

// LoadPresets reads a presets YAML file, falling back to the embedded
// defaults when path is empty.
func LoadPresets(path string) ([]model.Preset, error) {
	if path == "" {
		return DefaultPresets()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}
	return parsePresets(data)
}

// parsePresets decodes and validates a presets document
func parsePresets(data []byte) ([]model.Preset, error) {
	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("presets document contains no presets")
	}

	for i := range file.Presets {
		if err := file.Presets[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Presets, nil
}
