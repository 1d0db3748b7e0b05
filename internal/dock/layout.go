package dock

// Fixed spacing constants. Entry order is literal screen position: the
// entry at index i sits i slot advances from the padding edge along the
// active orientation axis.
const (
	// PadTop is the inset from the background's top edge.
	PadTop = 12
	// PadLeft is the inset from the background's left edge.
	PadLeft = 12
	// VGap is the spacing between entries in a vertical dock.
	VGap = 8
	// HGap is the spacing between entries in a horizontal dock.
	HGap = 8
)

// Offset returns the X/Y position of the entry at index i under the
// given settings. Vertical docks advance Y, horizontal docks advance X;
// the cross axis stays at its padding inset.
func Offset(s Settings, i int) (x, y int) {
	if s.Orientation == Horizontal {
		return PadLeft + i*(s.IconSize+HGap), PadTop
	}
	return PadLeft, PadTop + i*(s.IconSize+VGap)
}

// BackgroundSize returns the width and height of the dock background box
// for n entries. An empty dock keeps a single-slot box so the background
// shape stays well-formed after the last entry is removed.
func BackgroundSize(s Settings, n int) (w, h int) {
	if n < 1 {
		n = 1
	}
	if s.Orientation == Horizontal {
		span := n*s.IconSize + (n-1)*HGap
		return 2*PadLeft + span, 2*PadTop + s.IconSize
	}
	span := n*s.IconSize + (n-1)*VGap
	return 2*PadLeft + s.IconSize, 2*PadTop + span
}
