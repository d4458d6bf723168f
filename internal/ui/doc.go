package ui

// Package ui contains the Fyne-based demo shell for the number input widget.
// It builds a gallery of inputs from presets, owns the numeric values the
// widgets display, and reacts to widget events. All UI strings are localized
// via Localization.
