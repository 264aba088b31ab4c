package tetris

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Cells is the raw grid storage: 0 is empty, 1..7 a settled color index + 1.
type Cells [Rows][Cols]uint8

// Grid is the fixed-size playfield of settled blocks.
type Grid struct {
	cells Cells
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// inBounds reports whether (row, col) lies on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// IsOccupied reports whether (row, col) blocks a piece: any coordinate
// outside the board counts as occupied, as does a non-empty cell.
func (g *Grid) IsOccupied(row, col int) bool {
	if !inBounds(row, col) {
		return true
	}
	return g.cells[row][col] != 0
}

// Cell returns the value at (row, col), or 0 outside the board.
func (g *Grid) Cell(row, col int) uint8 {
	if !inBounds(row, col) {
		return 0
	}
	return g.cells[row][col]
}

// Set writes v at (row, col). Values above KindCount and coordinates
// outside the board are ignored.
func (g *Grid) Set(row, col int, v uint8) {
	if !inBounds(row, col) || v > KindCount {
		return
	}
	g.cells[row][col] = v
}

// Place merges the piece into the grid, writing ColorIndex()+1 under every
// occupied mask cell. It does not check for collisions: overlapping cells
// are overwritten. Mask cells that fall outside the board are dropped.
func (g *Grid) Place(p *Piece) {
	v := uint8(p.Kind.ColorIndex() + 1)
	for _, pt := range p.Cells() {
		if inBounds(pt.Y, pt.X) {
			g.cells[pt.Y][pt.X] = v
		}
	}
}

// IsRowFull reports whether every cell of the row is non-zero.
func (g *Grid) IsRowFull(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, v := range g.cells[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom to top.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := Rows - 1; row >= 0; row-- {
		if g.IsRowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFullRows removes every full row and returns how many were removed.
// Full rows are identified before anything moves; the remaining rows are
// then compacted downward in one pass and the top is refilled with empty
// rows, so adjacent full rows are all cleared.
func (g *Grid) ClearFullRows() int {
	full := g.FullRows()
	if len(full) == 0 {
		return 0
	}

	dst := Rows - 1
	for src := Rows - 1; src >= 0; src-- {
		if g.IsRowFull(src) {
			continue
		}
		g.cells[dst] = g.cells[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		g.cells[dst] = [Cols]uint8{}
	}

	return len(full)
}

// Snapshot returns a copy of the raw cells.
func (g *Grid) Snapshot() Cells {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// Empty reports whether no cell is occupied.
func (g *Grid) Empty() bool {
	return g.cells == Cells{}
}
