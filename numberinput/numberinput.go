package numberinput

import (
	"log"
	"regexp"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// NumberInput is a number-stepper input widget: a pattern-constrained text
// entry flanked by decrement/increment buttons. Steps are also reachable via
// the up/down keys while the entry is focused. The widget emits events only;
// the observer owns the numeric value and writes it back via SetValue.
type NumberInput struct {
	widget.BaseWidget

	id   string
	size Size

	// UI components
	entry    *patternEntry
	minusBtn *widget.Button
	plusBtn  *widget.Button

	// Callback registered at construction
	onEvent func(Event)
}

// New creates a number input delivering its events to onEvent. The default
// validation pattern is DefaultPattern and the default size is SizeMedium.
func New(onEvent func(Event)) *NumberInput {
	n := &NumberInput{
		id:      uuid.NewString(),
		size:    SizeMedium,
		onEvent: onEvent,
	}
	if onEvent == nil {
		log.Printf("Warning: NumberInput %s created with nil event handler", n.id)
	}

	n.ExtendBaseWidget(n)
	n.createUI()

	// Propagate the initial size to the child once, at construction
	n.entry.setSize(n.size)
	return n
}

// createUI creates the child entry and the step buttons
func (n *NumberInput) createUI() {
	n.entry = newPatternEntry()
	n.entry.onStep = n.step
	n.entry.onFocusChanged = func(bool) {
		n.Refresh()
	}
	n.entry.OnChanged = func(text string) {
		n.emit(Event{Kind: EventKindInput, Text: text})
	}

	n.minusBtn = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		n.step(StepDecrement)
	})
	n.minusBtn.Importance = widget.LowImportance

	n.plusBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		n.step(StepIncrement)
	})
	n.plusBtn.Importance = widget.LowImportance
}

// ID returns the stable instance identifier, used in log lines
func (n *NumberInput) ID() string {
	return n.id
}

// WithPlaceholder sets the placeholder text and returns the widget
func (n *NumberInput) WithPlaceholder(text string) *NumberInput {
	n.SetPlaceholder(text)
	return n
}

// WithPattern replaces the validation pattern and returns the widget
func (n *NumberInput) WithPattern(pattern *regexp.Regexp) *NumberInput {
	n.SetPattern(pattern)
	return n
}

// WithValue sets the current text and returns the widget
func (n *NumberInput) WithValue(text string) *NumberInput {
	n.SetValue(text)
	return n
}

// WithSize sets the display size and returns the widget
func (n *NumberInput) WithSize(size Size) *NumberInput {
	n.SetSize(size)
	return n
}

// SetPlaceholder sets the placeholder text shown while the entry is empty
func (n *NumberInput) SetPlaceholder(text string) {
	n.entry.SetPlaceHolder(text)
}

// SetPattern replaces the validation pattern applied to subsequent input.
// Text already displayed is left untouched.
func (n *NumberInput) SetPattern(pattern *regexp.Regexp) {
	n.entry.setPattern(pattern)
}

// SetValue replaces the displayed text. The change is forwarded to the event
// handler like any other input change.
func (n *NumberInput) SetValue(text string) {
	n.entry.SetText(text)
}

// Value returns the currently displayed text
func (n *NumberInput) Value() string {
	return n.entry.Text
}

// SetSize sets the display size and propagates it to the child entry
func (n *NumberInput) SetSize(size Size) {
	n.size = size
	n.entry.setSize(size)
	n.Refresh()
}

// Disable disables the entry and both step buttons
func (n *NumberInput) Disable() {
	n.entry.Disable()
	n.minusBtn.Disable()
	n.plusBtn.Disable()
	n.Refresh()
}

// Enable enables the entry and both step buttons
func (n *NumberInput) Enable() {
	n.entry.Enable()
	n.minusBtn.Enable()
	n.plusBtn.Enable()
	n.Refresh()
}

// Disabled returns true if the widget is disabled
func (n *NumberInput) Disabled() bool {
	return n.entry.Disabled()
}

// Increment requests a one-unit increase. No-op while disabled.
func (n *NumberInput) Increment() {
	n.step(StepIncrement)
}

// Decrement requests a one-unit decrease. No-op while disabled.
func (n *NumberInput) Decrement() {
	n.step(StepDecrement)
}

// step emits a step event unless the entry is disabled
func (n *NumberInput) step(action StepAction) {
	if n.entry.Disabled() {
		return
	}
	n.emit(Event{Kind: EventKindStep, Step: action})
}

// emit delivers an event to the handler registered at construction
func (n *NumberInput) emit(event Event) {
	if n.onEvent == nil {
		log.Printf("Warning: NumberInput %s dropped %s event, no handler registered", n.id, event.Kind)
		return
	}
	n.onEvent(event)
}

// FocusEntry moves keyboard focus to the wrapped entry
func (n *NumberInput) FocusEntry() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(n); c != nil {
		c.Focus(n.entry)
	}
}

// CreateRenderer creates the widget renderer
func (n *NumberInput) CreateRenderer() fyne.WidgetRenderer {
	frame := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	frame.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	frame.StrokeWidth = 1
	frame.CornerRadius = theme.InputRadiusSize()

	r := &numberInputRenderer{
		input: n,
		frame: frame,
	}
	r.Refresh()
	return r
}

// numberInputRenderer renders the number input widget
type numberInputRenderer struct {
	input *NumberInput
	frame *canvas.Rectangle
}

// Layout arranges minus button, entry and plus button horizontally
func (r *numberInputRenderer) Layout(size fyne.Size) {
	r.frame.Resize(size)
	r.frame.Move(fyne.NewPos(0, 0))

	btn := r.input.size.ButtonSide()
	pad := theme.Padding()

	r.input.minusBtn.Resize(fyne.NewSize(btn, btn))
	r.input.minusBtn.Move(fyne.NewPos(ButtonInset, (size.Height-btn)/2))

	r.input.plusBtn.Resize(fyne.NewSize(btn, btn))
	r.input.plusBtn.Move(fyne.NewPos(size.Width-ButtonInset-btn, (size.Height-btn)/2))

	left := ButtonInset + btn + pad
	right := size.Width - ButtonInset - btn - pad
	if right < left {
		right = left
	}
	r.input.entry.Resize(fyne.NewSize(right-left, size.Height))
	r.input.entry.Move(fyne.NewPos(left, 0))
}

// MinSize returns the minimum size needed for the entry plus both buttons
func (r *numberInputRenderer) MinSize() fyne.Size {
	btn := r.input.size.ButtonSide()
	pad := theme.Padding()
	entryMin := r.input.entry.MinSize()

	width := entryMin.Width + 2*(ButtonInset+btn+pad)
	height := entryMin.Height
	if btn+2*ButtonInset > height {
		height = btn + 2*ButtonInset
	}
	return fyne.NewSize(width, height)
}

// Refresh updates the focus-dependent outline and repaints the children
func (r *numberInputRenderer) Refresh() {
	if r.input.entry.focused {
		r.frame.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.frame.StrokeWidth = 2
	} else {
		r.frame.StrokeColor = theme.Color(theme.ColorNameInputBorder)
		r.frame.StrokeWidth = 1
	}
	r.frame.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.frame.Refresh()

	r.input.minusBtn.Refresh()
	r.input.plusBtn.Refresh()
	r.input.entry.Refresh()
}

// Objects returns the rendered objects
func (r *numberInputRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.frame, r.input.minusBtn, r.input.entry, r.input.plusBtn}
}

// Destroy cleans up the renderer
func (r *numberInputRenderer) Destroy() {}
