package canvas

// Mask is a grid-shaped set of selected cells.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask returns an all-false mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, bits: make([]bool, width*height)}
}

// Width returns the number of columns the mask was built for.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows the mask was built for.
func (m *Mask) Height() int { return m.height }

// Has reports whether (x, y) is selected.
func (m *Mask) Has(x, y int) bool { return m.bits[y*m.width+x] }

// Add selects (x, y).
func (m *Mask) Add(x, y int) { m.bits[y*m.width+x] = true }

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	c := *m
	c.bits = append([]bool(nil), m.bits...)
	return &c
}

// Count returns the number of selected cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same size and selection.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every selected cell in row-major order.
func (m *Mask) Each(fn func(x, y int)) {
	for i, b := range m.bits {
		if b {
			fn(i%m.width, i/m.width)
		}
	}
}

type point struct{ x, y int }

// FloodFill returns the cells 4-connected to (x, y) through cells equal to
// the seed cell. Two empty cells are equal. The traversal uses an explicit
// stack so its depth does not depend on the grid size.
func FloodFill(g *Grid, x, y int) *Mask {
	mask := NewMask(g.width, g.height)
	target := g.Get(x, y)

	stack := make([]point, 0, 64)
	stack = append(stack, point{x, y})
	mask.Add(x, y)

	push := func(nx, ny int) {
		if mask.Has(nx, ny) || g.Get(nx, ny) != target {
			return
		}
		mask.Add(nx, ny)
		stack = append(stack, point{nx, ny})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x > 0 {
			push(p.x-1, p.y)
		}
		if p.x < g.width-1 {
			push(p.x+1, p.y)
		}
		if p.y > 0 {
			push(p.x, p.y-1)
		}
		if p.y < g.height-1 {
			push(p.x, p.y+1)
		}
	}
	return mask
}
