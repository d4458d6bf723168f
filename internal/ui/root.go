package ui

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"regexp"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/fyne-numberinput/internal/config"
	"github.com/ytget/fyne-numberinput/internal/model"
	"github.com/ytget/fyne-numberinput/numberinput"
)

// galleryRow couples one preset with its widget. The row owns the numeric
// value: the widget only reports steps, the row does the arithmetic and
// writes the result back.
type galleryRow struct {
	preset model.Preset
	input  *numberinput.NumberInput
	name   *widget.Label
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	rows []*galleryRow

	// UI components
	enabledCheck   *widget.Check
	settingsBtn    *widget.Button
	resetBtn       *widget.Button
	lastEventLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
	}

	presets, err := config.DefaultPresets()
	if err != nil {
		// Embedded presets are validated at build time; this is programmer error
		log.Printf("failed to load embedded presets: %v", err)
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(presets)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(presets []model.Preset) {
	rowsBox := container.NewVBox()
	for _, preset := range presets {
		row := ui.createRow(preset)
		ui.rows = append(ui.rows, row)
		rowsBox.Add(ui.layoutRow(row))
	}

	ui.enabledCheck = widget.NewCheck(ui.localization.GetText(KeyEnabled), ui.onEnabledToggle)
	ui.enabledCheck.SetChecked(true)

	ui.settingsBtn = widget.NewButton(ui.localization.GetText(KeySettings), ui.onShowSettings)
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onReset)

	header := container.NewHBox(
		ui.enabledCheck,
		widget.NewSeparator(),
		ui.resetBtn,
		ui.settingsBtn,
	)

	ui.lastEventLabel = widget.NewLabel(ui.localization.GetText(KeyNoEventsYet))
	ui.lastEventLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.lastEventLabel.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(
		header,                // top
		ui.lastEventLabel,     // bottom - last event status line
		nil,                   // left
		nil,                   // right
		container.NewVScroll(rowsBox), // center - gallery rows
	)

	ui.window.SetContent(content)
}

// createRow builds the widget for one preset and wires its observer
func (ui *RootUI) createRow(preset model.Preset) *galleryRow {
	row := &galleryRow{preset: preset}

	row.input = numberinput.New(func(event numberinput.Event) {
		ui.onInputEvent(row, event)
	})
	row.input.
		WithPlaceholder(preset.Placeholder).
		WithSize(preset.InputSize(ui.settings.GetDefaultSize())).
		WithValue(ui.settings.GetLastValue(preset.Name, preset.Value))

	if preset.Pattern != "" {
		// Validated when the presets were loaded
		row.input.SetPattern(regexp.MustCompile(preset.Pattern))
	}
	if preset.Disabled {
		row.input.Disable()
	}

	row.name = widget.NewLabel(preset.Name)
	row.name.TextStyle = fyne.TextStyle{Bold: true}

	log.Printf("Gallery row %q ready, widget %s", preset.Name, row.input.ID())
	return row
}

// layoutRow arranges the name label and the input horizontally
func (ui *RootUI) layoutRow(row *galleryRow) fyne.CanvasObject {
	// Fix label width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	return container.NewBorder(nil, nil, fixedWidth(NameLabelWidth, row.name), nil, row.input)
}

// onInputEvent is the observer for a single row. Input changes are persisted,
// step requests are turned into arithmetic on the displayed value.
func (ui *RootUI) onInputEvent(row *galleryRow, event numberinput.Event) {
	switch event.Kind {
	case numberinput.EventKindInput:
		ui.settings.SetLastValue(row.preset.Name, event.Text)
		ui.showLastEvent(fmt.Sprintf("%s%s%s %q", row.preset.Name, MiddleDotSeparator, event.Kind, event.Text))
	case numberinput.EventKindStep:
		ui.applyStep(row, event.Step)
	default:
		log.Printf("Unknown event kind %q from widget %s", event.Kind, row.input.ID())
	}
}

// applyStep performs the arithmetic the widget itself never does
func (ui *RootUI) applyStep(row *galleryRow, action numberinput.StepAction) {
	value, ok := parseValue(row.input.Value())
	if !ok {
		log.Printf("Row %q: cannot step on non-numeric text %q", row.preset.Name, row.input.Value())
		return
	}

	switch action {
	case numberinput.StepIncrement:
		value += row.preset.Step
	case numberinput.StepDecrement:
		value -= row.preset.Step
	}

	row.input.SetValue(formatValue(value))
	ui.showLastEvent(fmt.Sprintf("%s%s%s", row.preset.Name, MiddleDotSeparator, action))
}

// onEnabledToggle enables or disables every gallery row
func (ui *RootUI) onEnabledToggle(enabled bool) {
	for _, row := range ui.rows {
		if enabled && !row.preset.Disabled {
			row.input.Enable()
		} else if !enabled {
			row.input.Disable()
		}
	}
}

// onReset restores every row to its preset value
func (ui *RootUI) onReset() {
	for _, row := range ui.rows {
		row.input.SetValue(row.preset.Value)
	}
	ui.showLastEvent(ui.localization.GetText(KeyReset))
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()

	// Apply the default size to rows that do not pin their own
	size := ui.settings.GetDefaultSize()
	for _, row := range ui.rows {
		if row.preset.Size == "" {
			row.input.SetSize(size)
		}
	}

	ui.showLastEvent(ui.localization.GetText(KeySettingsSaved))
}

// refreshUITexts updates all visible texts after a language change
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.enabledCheck.Text = ui.localization.GetText(KeyEnabled)
	ui.enabledCheck.Refresh()
	ui.settingsBtn.SetText(ui.localization.GetText(KeySettings))
	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
}

// showLastEvent updates the status line at the bottom of the window
func (ui *RootUI) showLastEvent(text string) {
	ui.lastEventLabel.SetText(ui.localization.GetText(KeyLastEvent) + ": " + text)
}

// parseValue interprets the displayed text as a number. Empty and
// partially-typed texts count as zero so stepping still works.
func parseValue(text string) (float64, bool) {
	switch text {
	case "", "-", ".", "-.":
		return 0, true
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// formatValue renders a stepped value without float noise
func formatValue(value float64) string {
	shift := math.Pow10(StepDecimals)
	value = math.Round(value*shift) / shift
	return strconv.FormatFloat(value, 'f', -1, 64)
}
