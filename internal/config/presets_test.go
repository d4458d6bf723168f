package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/fyne-numberinput/numberinput"
)

func TestDefaultPresets(t *testing.T) {
	presets, err := DefaultPresets()
	if err != nil {
		t.Fatalf("DefaultPresets() failed: %v", err)
	}

	if len(presets) == 0 {
		t.Fatal("Embedded presets should not be empty")
	}

	for _, p := range presets {
		if p.Name == "" {
			t.Error("Every embedded preset should have a name")
		}
		if p.Step == 0 {
			t.Errorf("Preset %q should have a non-zero step after validation", p.Name)
		}
		if !p.InputSize(numberinput.SizeMedium).IsValid() {
			t.Errorf("Preset %q has invalid size %q", p.Name, p.Size)
		}
	}
}

func TestLoadPresets_EmptyPathUsesDefaults(t *testing.T) {
	fromFile, err := LoadPresets("")
	if err != nil {
		t.Fatalf("LoadPresets(\"\") failed: %v", err)
	}

	embedded, err := DefaultPresets()
	if err != nil {
		t.Fatalf("DefaultPresets() failed: %v", err)
	}

	if len(fromFile) != len(embedded) {
		t.Errorf("Expected %d presets, got %d", len(embedded), len(fromFile))
	}
}

func TestLoadPresets_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := []byte("presets:\n  - name: Custom\n    value: \"3\"\n    step: 2\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp presets: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets(%s) failed: %v", path, err)
	}
	if len(presets) != 1 {
		t.Fatalf("Expected 1 preset, got %d", len(presets))
	}
	if presets[0].Name != "Custom" || presets[0].Step != 2 {
		t.Errorf("Unexpected preset: %+v", presets[0])
	}
}

func TestLoadPresets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", ":\tgarbage"},
		{"no presets", "presets: []"},
		{"invalid preset", "presets:\n  - placeholder: nameless\n"},
		{"bad size", "presets:\n  - name: X\n    size: huge\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatalf("%s: write temp presets: %v", tt.name, err)
		}

		if _, err := LoadPresets(path); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestLoadPresets_MissingFile(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
