package game

// WorldCell holds the counts of each object class present on a tile, plus
// the number of players and eggs currently occupying it. Counts are
// non-negative; they are only ever mutated by command execution or by
// tick-driven resource spawning, never directly by a handler goroutine.
type WorldCell struct {
	Counts      [len(AllObjectClasses)]uint32
	PlayerCount uint32
	EggCount    uint32
}

// Get returns the count of the given object class on this cell.
func (c *WorldCell) Get(obj ObjectClass) uint32 {
	return c.Counts[obj]
}

// World is a width x height grid of cells, fixed for the lifetime of the
// process. Coordinates wrap on a torus: CellAt always returns a valid cell
// regardless of how far out of range x/y are.
type World struct {
	Width  int
	Height int
	cells  []WorldCell
}

// NewWorld creates a world of the given dimensions, all cells empty.
// Both width and height must be >= 1.
func NewWorld(width, height int) *World {
	return &World{
		Width:  width,
		Height: height,
		cells:  make([]WorldCell, width*height),
	}
}

// index computes the row-major storage index for (x, y), wrapping both
// coordinates onto the torus first.
func (w *World) index(x, y int) int {
	x = wrap(x, w.Width)
	y = wrap(y, w.Height)
	return y*w.Width + x
}

// wrap reduces v into [0, n) the way Go's % operator does not for negative
// v (Go's % can return a negative result).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// CellAt returns a pointer to the cell at (x, y), wrapping coordinates onto
// the torus. There is no failure mode: every (x, y) maps to a valid cell.
func (w *World) CellAt(x, y int) *WorldCell {
	return &w.cells[w.index(x, y)]
}

// Dimensions returns the width and height of the world.
func (w *World) Dimensions() (width, height int) {
	return w.Width, w.Height
}

// Wrap normalizes a coordinate pair onto the torus, returning values in
// [0, Width) x [0, Height).
func (w *World) Wrap(x, y int) (int, int) {
	return wrap(x, w.Width), wrap(y, w.Height)
}
