package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

const kindLetters = "IJLOSTZ"

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return string(kindLetters[k])
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// ColorIndex returns the palette index of the kind (0..6).
// Settled cells store ColorIndex()+1 so that zero stays "empty".
func (k Kind) ColorIndex() int {
	return int(k)
}

// ParseKind converts a letter (case-insensitive) to a Kind.
func ParseKind(r rune) (Kind, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	for i, l := range kindLetters {
		if l == r {
			return Kind(i), true
		}
	}
	return 0, false
}

// AllKinds returns every kind in catalog order.
func AllKinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Mask is a rectangular binary occupancy matrix, indexed [row][col].
type Mask [][]uint8

// catalog holds the rotation-0 masks. Never handed out directly.
var catalog = [KindCount]Mask{
	KindI: {
		{1, 1, 1, 1},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
}

// ShapeOf returns a fresh copy of the canonical mask for k.
func ShapeOf(k Kind) Mask {
	if !k.Valid() {
		return nil
	}
	return catalog[k].Clone()
}

// Rows returns the mask height.
func (m Mask) Rows() int {
	return len(m)
}

// Cols returns the mask width (0 for an empty mask).
func (m Mask) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of the mask.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	for r := range m {
		out[r] = append([]uint8(nil), m[r]...)
	}
	return out
}

// Rotate returns the mask turned 90° clockwise:
// new[row][col] = old[rows-1-col][row]. The receiver is not modified.
func (m Mask) Rotate() Mask {
	rows, cols := m.Rows(), m.Cols()
	out := make(Mask, cols)
	for r := range cols {
		out[r] = make([]uint8, rows)
		for c := range rows {
			out[r][c] = m[rows-1-c][r]
		}
	}
	return out
}

// Equal reports whether two masks have the same dimensions and cells.
func (m Mask) Equal(o Mask) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for r := range m {
		for _, v := range m[r] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
