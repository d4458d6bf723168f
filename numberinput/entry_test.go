package numberinput

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestPatternEntry_InsertAtCursor(t *testing.T) {
	test.NewApp()

	e := newPatternEntry()
	e.SetText("15")
	e.CursorColumn = 1

	e.TypedRune('.')
	if e.Text != "1.5" {
		t.Errorf("Text after mid-cursor insert = %q, expected %q", e.Text, "1.5")
	}

	// A second dot is invalid wherever it lands
	e.CursorColumn = 3
	e.TypedRune('.')
	if e.Text != "1.5" {
		t.Errorf("Text after rejected insert = %q, expected %q", e.Text, "1.5")
	}
}

func TestPatternEntry_PasteFiltered(t *testing.T) {
	app := test.NewApp()

	tests := []struct {
		clipboard string
		expected  string
	}{
		{"-7.25", "-7.25"},
		{"not a number", ""},
	}

	for _, tt := range tests {
		e := newPatternEntry()
		app.Clipboard().SetContent(tt.clipboard)

		e.TypedShortcut(&fyne.ShortcutPaste{Clipboard: app.Clipboard()})
		if e.Text != tt.expected {
			t.Errorf("Paste %q left text %q, expected %q", tt.clipboard, e.Text, tt.expected)
		}
	}
}

func TestPatternEntry_FocusTracking(t *testing.T) {
	test.NewApp()

	e := newPatternEntry()
	var gained, lost int
	e.onFocusChanged = func(focused bool) {
		if focused {
			gained++
		} else {
			lost++
		}
	}

	e.FocusGained()
	if !e.focused || gained != 1 {
		t.Errorf("FocusGained: focused=%v gained=%d, expected true/1", e.focused, gained)
	}

	e.FocusLost()
	if e.focused || lost != 1 {
		t.Errorf("FocusLost: focused=%v lost=%d, expected false/1", e.focused, lost)
	}
}

func TestPatternEntry_NilPatternAcceptsEverything(t *testing.T) {
	test.NewApp()

	e := newPatternEntry()
	e.setPattern(nil)

	test.Type(e, "abc")
	if e.Text != "abc" {
		t.Errorf("Nil pattern rejected input, text = %q", e.Text)
	}
}
