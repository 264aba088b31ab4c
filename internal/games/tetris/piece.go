package tetris

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Piece is a shape mask positioned on the grid by its bounding box top-left.
type Piece struct {
	Kind  Kind
	Shape Mask
	X     int
	Y     int
}

// Spawn creates a piece of kind k horizontally centered on the top row.
// The position is not validated; callers check for a collision.
func Spawn(k Kind) *Piece {
	shape := ShapeOf(k)
	return &Piece{
		Kind:  k,
		Shape: shape,
		X:     Cols/2 - shape.Cols()/2,
		Y:     0,
	}
}

// Rotated returns the clockwise rotation of the piece's mask.
// The piece itself is left untouched.
func (p *Piece) Rotated() Mask {
	return p.Shape.Rotate()
}

// Cells returns the absolute grid coordinates of every occupied mask cell.
func (p *Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for r, row := range p.Shape {
		for c, v := range row {
			if v != 0 {
				cells = append(cells, Point{X: p.X + c, Y: p.Y + r})
			}
		}
	}
	return cells
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Shape = p.Shape.Clone()
	return &cp
}
