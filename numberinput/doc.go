package numberinput

// Package numberinput provides a number-stepper input widget for Fyne: a
// text entry constrained to numeric text by a validation pattern, flanked by
// increment/decrement buttons. The widget emits events and never does the
// arithmetic itself; the owner of the displayed value reacts to step events
// and writes the new text back via SetValue.
