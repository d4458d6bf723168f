package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/fyne-numberinput/numberinput"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyDefaultSize  = "default_input_size"
	KeyRememberLast = "remember_last_values"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultSize         = numberinput.SizeMedium
	DefaultRememberLast = true
)

// Prefix for per-preset persisted values
const lastValueKeyPrefix = "last_value_"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultSize returns the default display size for demo inputs
func (s *Settings) GetDefaultSize() numberinput.Size {
	size := numberinput.Size(s.app.Preferences().String(KeyDefaultSize))
	if !size.IsValid() {
		s.SetDefaultSize(DefaultSize)
		return DefaultSize
	}
	return size
}

// SetDefaultSize sets the default display size for demo inputs
func (s *Settings) SetDefaultSize(size numberinput.Size) {
	if !size.IsValid() {
		size = DefaultSize
	}
	s.app.Preferences().SetString(KeyDefaultSize, size.String())
}

// GetRememberLastValues returns whether entered values survive restarts
func (s *Settings) GetRememberLastValues() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberLast, DefaultRememberLast)
}

// SetRememberLastValues sets whether entered values survive restarts
func (s *Settings) SetRememberLastValues(remember bool) {
	s.app.Preferences().SetBool(KeyRememberLast, remember)
}

// GetLastValue returns the persisted value for a preset, or the fallback
func (s *Settings) GetLastValue(presetName, fallback string) string {
	if !s.GetRememberLastValues() {
		return fallback
	}
	return s.app.Preferences().StringWithFallback(lastValueKeyPrefix+presetName, fallback)
}

// SetLastValue persists the value entered for a preset
func (s *Settings) SetLastValue(presetName, value string) {
	if !s.GetRememberLastValues() {
		return
	}
	s.app.Preferences().SetString(lastValueKeyPrefix+presetName, value)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
