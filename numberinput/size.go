package numberinput

// Size represents the display size of a NumberInput
type Size string

const (
	SizeXSmall Size = "xsmall"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Control sizing per tier. The four sizes collapse to two button tiers.
const (
	ButtonSideXSmall float32 = 20
	ButtonSideSmall  float32 = 26

	EntryHeightXSmall float32 = 28
	EntryHeightSmall  float32 = 32
	EntryHeightMedium float32 = 36
	EntryHeightLarge  float32 = 44

	// Buttons overlap the frame slightly so they sit flush with the border
	ButtonInset float32 = 3
)

// String returns the string representation of Size
func (s Size) String() string {
	return string(s)
}

// IsValid returns true if the size is one of the known tiers
func (s Size) IsValid() bool {
	switch s {
	case SizeXSmall, SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ButtonSide returns the square side length for the step buttons. The two
// small tiers share the extra-small buttons, everything else gets small ones.
func (s Size) ButtonSide() float32 {
	switch s {
	case SizeXSmall, SizeSmall:
		return ButtonSideXSmall
	default:
		return ButtonSideSmall
	}
}

// entryHeight returns the minimum height the wrapped entry should occupy
func (s Size) entryHeight() float32 {
	switch s {
	case SizeXSmall:
		return EntryHeightXSmall
	case SizeSmall:
		return EntryHeightSmall
	case SizeLarge:
		return EntryHeightLarge
	default:
		return EntryHeightMedium
	}
}
