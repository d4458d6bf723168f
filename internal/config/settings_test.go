package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/fyne-numberinput/numberinput"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestDefaultSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetDefaultSize()
	if size != DefaultSize {
		t.Errorf("Expected default size %s, got %s", DefaultSize, size)
	}

	// Test setting custom value
	settings.SetDefaultSize(numberinput.SizeSmall)
	if settings.GetDefaultSize() != numberinput.SizeSmall {
		t.Errorf("Expected size %s, got %s", numberinput.SizeSmall, settings.GetDefaultSize())
	}

	// Invalid sizes fall back to the default
	settings.SetDefaultSize(numberinput.Size("huge"))
	if settings.GetDefaultSize() != DefaultSize {
		t.Errorf("Invalid size should fall back to %s, got %s", DefaultSize, settings.GetDefaultSize())
	}
}

func TestRememberLastValues(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetRememberLastValues() {
		t.Error("Remember last values should default to true")
	}

	settings.SetLastValue("Quantity", "7")
	if got := settings.GetLastValue("Quantity", "1"); got != "7" {
		t.Errorf("Expected persisted value 7, got %s", got)
	}

	// Disabling persistence returns the fallback and stops writes
	settings.SetRememberLastValues(false)
	if got := settings.GetLastValue("Quantity", "1"); got != "1" {
		t.Errorf("Expected fallback value 1, got %s", got)
	}

	settings.SetLastValue("Quantity", "9")
	settings.SetRememberLastValues(true)
	if got := settings.GetLastValue("Quantity", "1"); got != "7" {
		t.Errorf("Write while disabled should be dropped, got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
