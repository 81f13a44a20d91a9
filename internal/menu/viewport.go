package menu

// Breakpoint is the width, in CSS pixels, below which the viewport counts as narrow.
const Breakpoint = 1024

// IsNarrow classifies a measured viewport width. Zero and negative widths
// mean "not measured yet" and classify as wide.
func IsNarrow(width int) bool {
	return width > 0 && width < Breakpoint
}
