package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fyne-numberinput/internal/config"
	"github.com/ytget/fyne-numberinput/numberinput"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	sizeSelect     *widget.Select
	rememberCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default input size selection
	sizeOptions := []string{
		numberinput.SizeXSmall.String(),
		numberinput.SizeSmall.String(),
		numberinput.SizeMedium.String(),
		numberinput.SizeLarge.String(),
	}
	sd.sizeSelect = widget.NewSelect(sizeOptions, nil)

	// Value persistence
	sd.rememberCheck = widget.NewCheck(sd.localization.GetText(KeyRememberValues), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultSize)+":"),
		sd.sizeSelect,

		widget.NewSeparator(),
		sd.rememberCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.sizeSelect.SetSelected(sd.settings.GetDefaultSize().String())
	sd.rememberCheck.SetChecked(sd.settings.GetRememberLastValues())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if sd.sizeSelect.Selected != "" {
		sd.settings.SetDefaultSize(numberinput.Size(sd.sizeSelect.Selected))
	}
	sd.settings.SetRememberLastValues(sd.rememberCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
