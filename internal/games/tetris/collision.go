package tetris

// Collides reports whether any occupied cell of p overlaps a settled block
// or lies outside the board. A piece whose mask has no occupied cells never
// collides.
func Collides(p *Piece, g *Grid) bool {
	for r, row := range p.Shape {
		for c, v := range row {
			if v != 0 && g.IsOccupied(p.Y+r, p.X+c) {
				return true
			}
		}
	}
	return false
}
