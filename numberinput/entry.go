package numberinput

import (
	"regexp"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DefaultPattern accepts an optional leading minus sign, an optional integer
// part and an optional fractional part, e.g. "-12.5", "12", ".5", "-.5".
const DefaultPattern = `^-?(\d+)?\.?(\d+)?$`

// patternEntry is the wrapped text entry. It rejects any keystroke or paste
// whose resulting text would not match the validation pattern, and routes
// up/down keys to step actions instead of cursor movement.
type patternEntry struct {
	widget.Entry

	pattern *regexp.Regexp
	size    Size

	// sizeSyncs counts size propagations from the parent widget
	sizeSyncs int

	onStep         func(StepAction)
	onFocusChanged func(focused bool)

	focused bool
}

// newPatternEntry creates the inner entry with the default validation pattern
func newPatternEntry() *patternEntry {
	e := &patternEntry{
		pattern: regexp.MustCompile(DefaultPattern),
		size:    SizeMedium,
	}
	e.ExtendBaseWidget(e)
	return e
}

// setPattern replaces the validation pattern for subsequent input
func (e *patternEntry) setPattern(pattern *regexp.Regexp) {
	e.pattern = pattern
}

// setSize records the display size propagated from the parent widget
func (e *patternEntry) setSize(size Size) {
	e.size = size
	e.sizeSyncs++
	e.Refresh()
}

// accepts reports whether the candidate text matches the validation pattern
func (e *patternEntry) accepts(candidate string) bool {
	if e.pattern == nil {
		return true
	}
	return e.pattern.MatchString(candidate)
}

// candidateWith builds the text that would result from inserting s at the cursor
func (e *patternEntry) candidateWith(s string) string {
	runes := []rune(e.Entry.Text)
	col := e.CursorColumn
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	return string(runes[:col]) + s + string(runes[col:])
}

// TypedRune filters character input through the validation pattern
func (e *patternEntry) TypedRune(r rune) {
	if !e.accepts(e.candidateWith(string(r))) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedKey routes up/down to step actions; everything else behaves as a
// normal single-line entry.
func (e *patternEntry) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyUp:
		if e.onStep != nil {
			e.onStep(StepIncrement)
		}
		return
	case fyne.KeyDown:
		if e.onStep != nil {
			e.onStep(StepDecrement)
		}
		return
	}
	e.Entry.TypedKey(event)
}

// TypedShortcut filters paste content through the validation pattern
func (e *patternEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	if !e.accepts(e.candidateWith(paste.Clipboard.Content())) {
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// FocusGained tracks focus for the parent's outline styling
func (e *patternEntry) FocusGained() {
	e.Entry.FocusGained()
	e.focused = true
	if e.onFocusChanged != nil {
		e.onFocusChanged(true)
	}
}

// FocusLost tracks focus for the parent's outline styling
func (e *patternEntry) FocusLost() {
	e.Entry.FocusLost()
	e.focused = false
	if e.onFocusChanged != nil {
		e.onFocusChanged(false)
	}
}

// MinSize grows the entry to the height of its size tier
func (e *patternEntry) MinSize() fyne.Size {
	min := e.Entry.MinSize()
	if h := e.size.entryHeight(); min.Height < h {
		min.Height = h
	}
	return min
}
