package numberinput

import "testing"

func TestStepAction_IsValid(t *testing.T) {
	tests := []struct {
		action   StepAction
		expected bool
	}{
		{StepIncrement, true},
		{StepDecrement, true},
		{StepAction(""), false},
		{StepAction("Sideways"), false},
	}

	for _, tt := range tests {
		if got := tt.action.IsValid(); got != tt.expected {
			t.Errorf("StepAction(%s).IsValid() = %v, expected %v", tt.action, got, tt.expected)
		}
	}
}

func TestStepAction_String(t *testing.T) {
	if StepIncrement.String() != "Increment" {
		t.Errorf("StepIncrement.String() = %s, expected Increment", StepIncrement.String())
	}
	if StepDecrement.String() != "Decrement" {
		t.Errorf("StepDecrement.String() = %s, expected Decrement", StepDecrement.String())
	}
}

func TestEventKind_String(t *testing.T) {
	if EventKindInput.String() != "Input" {
		t.Errorf("EventKindInput.String() = %s, expected Input", EventKindInput.String())
	}
	if EventKindStep.String() != "Step" {
		t.Errorf("EventKindStep.String() = %s, expected Step", EventKindStep.String())
	}
}
