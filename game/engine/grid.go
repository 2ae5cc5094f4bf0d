package engine

// Neighbour offsets for the shifted-row hex layout. Which set applies
// depends on the parity of the row.
var (
	evenRowOffsets = [6][2]int{{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {1, 1}}
	oddRowOffsets  = [6][2]int{{-1, -1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}}
)

// Grid is the hex field. Hexes are stored in row-major order with x as the
// outer index. A grid with zero dimensions is the empty placeholder used
// before a game starts.
type Grid struct {
	NumX  int   `json:"num_x"`
	NumY  int   `json:"num_y"`
	Hexes []Hex `json:"hexes"`
}

// NewGrid creates a grid of empty hexes for every (x, y) in range.
func NewGrid(numX, numY int) *Grid {
	hexes := make([]Hex, 0, numX*numY)
	for x := 0; x < numX; x++ {
		for y := 0; y < numY; y++ {
			hexes = append(hexes, Hex{X: x, Y: y})
		}
	}

	return &Grid{
		NumX:  numX,
		NumY:  numY,
		Hexes: hexes,
	}
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.NumX && y >= 0 && y < g.NumY
}

// Hex returns a copy of the hex at (x, y). Out-of-range coordinates are a
// miss, not a failure.
func (g *Grid) Hex(x, y int) (Hex, bool) {
	if !g.contains(x, y) {
		return Hex{}, false
	}
	return g.Hexes[x*g.NumY+y], true
}

// HexMut returns the hex at (x, y) for in-place mutation, or nil when out
// of range.
func (g *Grid) HexMut(x, y int) *Hex {
	if !g.contains(x, y) {
		return nil
	}
	return &g.Hexes[x*g.NumY+y]
}

// HexMutByPoint is HexMut keyed by point.
func (g *Grid) HexMutByPoint(p Point) *Hex {
	return g.HexMut(p.X, p.Y)
}

// NeighboursOf returns copies of the up to six in-range neighbours of p.
// Corners yield 2 or 3, edges 4, interior hexes 6.
func (g *Grid) NeighboursOf(p Point) []Hex {
	offsets := evenRowOffsets
	if p.Y%2 != 0 {
		offsets = oddRowOffsets
	}

	neighbours := make([]Hex, 0, 6)
	for _, off := range offsets {
		if hex, ok := g.Hex(p.X+off[0], p.Y+off[1]); ok {
			neighbours = append(neighbours, hex)
		}
	}

	return neighbours
}

// PlayersAlive returns the set of players that still have a unit on the
// field.
func (g *Grid) PlayersAlive() map[int]bool {
	players := make(map[int]bool)
	for i := range g.Hexes {
		if unit := g.Hexes[i].Unit; unit != nil {
			players[unit.Player] = true
		}
	}
	return players
}
