package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (gallery rows)
const (
	NameLabelWidth  float32 = 110
	InputFieldWidth float32 = 220

	RowMinWidth float32 = 400
)

// Window sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 420

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)

// Value formatting
const (
	// StepDecimals bounds the precision used when the observer applies a step
	StepDecimals = 6
)
