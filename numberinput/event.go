package numberinput

// StepAction represents a user-triggered request to change the value by one unit
type StepAction string

const (
	// StepIncrement means the value should be increased by one unit
	StepIncrement StepAction = "Increment"

	// StepDecrement means the value should be decreased by one unit
	StepDecrement StepAction = "Decrement"
)

// String returns the string representation of StepAction
func (a StepAction) String() string {
	return string(a)
}

// IsValid returns true if the action is one of the known step actions
func (a StepAction) IsValid() bool {
	return a == StepIncrement || a == StepDecrement
}

// EventKind discriminates the two event variants emitted by NumberInput
type EventKind string

const (
	// EventKindInput means the child entry text changed; Text carries the new text
	EventKindInput EventKind = "Input"

	// EventKindStep means a step was requested; Step carries the direction
	EventKindStep EventKind = "Step"
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	return string(k)
}

// Event is delivered to the handler registered at construction. Exactly one
// payload field is meaningful, selected by Kind.
type Event struct {
	Kind EventKind

	// Text is the entry text after the change (EventKindInput only)
	Text string

	// Step is the requested direction (EventKindStep only)
	Step StepAction
}
