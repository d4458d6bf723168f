package model

import (
	"testing"

	"github.com/ytget/fyne-numberinput/numberinput"
)

func TestPreset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr bool
	}{
		{"valid", Preset{Name: "Quantity", Step: 1, Size: "small"}, false},
		{"missing name", Preset{Step: 1, Size: "small"}, true},
		{"unknown size", Preset{Name: "Quantity", Step: 1, Size: "huge"}, true},
		{"invalid pattern", Preset{Name: "Quantity", Pattern: "("}, true},
		{"defaults filled", Preset{Name: "Quantity"}, false},
	}

	for _, tt := range tests {
		err := tt.preset.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestPreset_ValidateDefaults(t *testing.T) {
	p := Preset{Name: "Quantity"}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	if p.Step != 1 {
		t.Errorf("Default step = %v, expected 1", p.Step)
	}
}

func TestPreset_InputSize(t *testing.T) {
	pinned := Preset{Name: "Quantity", Size: "small"}
	if got := pinned.InputSize(numberinput.SizeLarge); got != numberinput.SizeSmall {
		t.Errorf("InputSize() = %s, expected small", got)
	}

	unpinned := Preset{Name: "Quantity"}
	if got := unpinned.InputSize(numberinput.SizeLarge); got != numberinput.SizeLarge {
		t.Errorf("InputSize() fallback = %s, expected large", got)
	}
}
