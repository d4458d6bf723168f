package model

import (
	"fmt"
	"regexp"

	"github.com/ytget/fyne-numberinput/numberinput"
)

// Preset describes one number input row in the demo gallery
type Preset struct {
	Name        string  `yaml:"name"`
	Placeholder string  `yaml:"placeholder"`
	Value       string  `yaml:"value"`
	Step        float64 `yaml:"step"`
	Size        string  `yaml:"size"`
	Pattern     string  `yaml:"pattern"`
	Disabled    bool    `yaml:"disabled"`
}

// Validate checks the preset fields and fills defaults for optional ones
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if p.Step == 0 {
		p.Step = 1
	}
	if p.Size != "" && !numberinput.Size(p.Size).IsValid() {
		return fmt.Errorf("preset %q: unknown size %q", p.Name, p.Size)
	}
	if p.Pattern != "" {
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("preset %q: invalid pattern: %w", p.Name, err)
		}
	}
	return nil
}

// InputSize returns the preset size as a widget size tier, or fallback when
// the preset does not pin one.
func (p *Preset) InputSize(fallback numberinput.Size) numberinput.Size {
	if p.Size == "" {
		return fallback
	}
	return numberinput.Size(p.Size)
}
