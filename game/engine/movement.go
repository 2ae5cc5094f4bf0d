package engine

import "fmt"

// reachableFrom computes the minimum travel distance to every hex the unit
// on origin can reach within budget. Hexes carrying a unit (other than the
// origin) or content are impassable. The origin is always in the map at
// distance zero.
func (g *Game) reachableFrom(origin Point, budget int) map[Point]int {
	distances := map[Point]int{origin: 0}

	var visit func(p Point, dist int)
	visit = func(p Point, dist int) {
		if dist >= budget {
			return
		}
		for _, n := range g.Field.NeighboursOf(p) {
			if n.Unit != nil || n.Content != nil {
				continue
			}
			np := n.ToPoint()
			next := dist + 1
			if known, ok := distances[np]; ok && known <= next {
				continue
			}
			distances[np] = next
			visit(np, next)
		}
	}
	visit(origin, 0)

	return distances
}

// restorePath walks the reachability map backwards from to and returns the
// path from from to to, inclusive on both ends.
func (g *Game) restorePath(distances map[Point]int, from, to Point) ([]Point, error) {
	dist, ok := distances[to]
	if !ok {
		return nil, fmt.Errorf("no finish hex in hexmap: %w", ErrNoHex)
	}
	if _, ok := distances[from]; !ok {
		return nil, fmt.Errorf("no start hex in hexmap: %w", ErrNoHex)
	}

	path := make([]Point, 0, dist+1)
	path = append(path, to)

	current := to
	for d := dist; d > 0; d-- {
		found := false
		for _, n := range g.Field.NeighboursOf(current) {
			np := n.ToPoint()
			if known, ok := distances[np]; ok && known == d-1 {
				path = append(path, np)
				current = np
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("discontinuous path at %v: %w", current, ErrNoHex)
		}
	}

	// The walk went finish to start; flip it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// MoveUnit moves the selected unit to to along a shortest free path,
// spending one movement per step, and returns the path travelled.
func (g *Game) MoveUnit(to Point) ([]Point, error) {
	if g.selected == nil {
		return nil, ErrNoHex
	}
	origin := g.selected.ToPoint()

	fromHex := g.Field.HexMutByPoint(origin)
	if fromHex == nil {
		return nil, ErrNoHex
	}
	unit := fromHex.Unit
	if unit == nil {
		return nil, ErrNoUnit
	}
	if unit.HasNoMoves() {
		return nil, ErrNoMoves
	}

	distances := g.reachableFrom(origin, unit.Movements)
	path, err := g.restorePath(distances, origin, to)
	if err != nil {
		return nil, err
	}

	fromHex.Unit = nil
	unit.ChangeMovements(len(path) - 1)
	g.Field.HexMutByPoint(to).Unit = unit

	return path, nil
}
