package core

// Color represents a foreground color for a screen cell.
// The platform maps it to a terminal color; piece slots are resolved
// through the configured palette.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray

	// Piece slots, one per piece kind color index (0..6).
	ColorPiece0
	ColorPiece1
	ColorPiece2
	ColorPiece3
	ColorPiece4
	ColorPiece5
	ColorPiece6
)

// PieceSlots is the number of palette-driven piece colors.
const PieceSlots = 7

// PieceColor returns the palette slot for a piece color index.
// Out-of-range indices fall back to ColorDefault.
func PieceColor(index int) Color {
	if index < 0 || index >= PieceSlots {
		return ColorDefault
	}
	return ColorPiece0 + Color(index)
}

// IsPiece reports whether c is one of the palette-driven piece slots.
func (c Color) IsPiece() bool {
	return c >= ColorPiece0 && c <= ColorPiece6
}

// PieceIndex returns the color index of a piece slot, or -1.
func (c Color) PieceIndex() int {
	if !c.IsPiece() {
		return -1
	}
	return int(c - ColorPiece0)
}
