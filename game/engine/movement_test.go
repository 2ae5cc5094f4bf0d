package engine

import (
	"errors"
	"testing"
)

func TestReachableRing(t *testing.T) {
	game := NewGame(8, 12)
	game.SetContent(2, 5, NewWall())

	unit := mustUnit(t, 0, 5, [2]int{1, 1}, 2)
	unit.ChangeMovements(1)
	game.SetUnit(2, 9, unit)

	reachable := game.reachableFrom(Point{X: 2, Y: 9}, unit.Movements)

	want := map[Point]int{
		{X: 2, Y: 9}:  0,
		{X: 1, Y: 8}:  1,
		{X: 2, Y: 8}:  1,
		{X: 1, Y: 9}:  1,
		{X: 3, Y: 9}:  1,
		{X: 1, Y: 10}: 1,
		{X: 2, Y: 10}: 1,
	}

	if len(reachable) != len(want) {
		t.Fatalf("Expected %d reachable points, got %d: %v", len(want), len(reachable), reachable)
	}
	for p, dist := range want {
		if got, ok := reachable[p]; !ok || got != dist {
			t.Errorf("Point %+v: expected distance %d, got %d (present: %v)", p, dist, got, ok)
		}
	}
}

func TestReachableRespectsObstacles(t *testing.T) {
	// A wall ring around the unit leaves only the origin reachable.
	game := NewGame(8, 12)
	origin := Point{X: 3, Y: 5}
	for _, n := range game.Field.NeighboursOf(origin) {
		game.SetContent(n.X, n.Y, NewWall())
	}
	game.SetUnit(origin.X, origin.Y, mustUnit(t, 0, 5, [2]int{1, 1}, 5))

	reachable := game.reachableFrom(origin, 5)
	if len(reachable) != 1 {
		t.Fatalf("Expected only the origin, got %v", reachable)
	}

	// Units block like walls; walls and units are never entered.
	game2 := NewGame(8, 12)
	game2.SetUnit(origin.X, origin.Y, mustUnit(t, 0, 5, [2]int{1, 1}, 5))
	for i, n := range game2.Field.NeighboursOf(origin) {
		if i%2 == 0 {
			game2.SetUnit(n.X, n.Y, mustUnit(t, 1, 5, [2]int{1, 1}, 1))
		} else {
			game2.SetContent(n.X, n.Y, NewWall())
		}
	}

	reachable = game2.reachableFrom(origin, 5)
	for p := range reachable {
		hex, _ := game2.Field.Hex(p.X, p.Y)
		if p != origin && (hex.Unit != nil || hex.Content != nil) {
			t.Errorf("Occupied hex %+v reported reachable", p)
		}
	}
	if len(reachable) != 1 {
		t.Fatalf("Expected only the origin inside the ring, got %v", reachable)
	}
}

func TestReachableNoMovesBudget(t *testing.T) {
	game := NewGame(5, 5)
	game.SetUnit(2, 2, mustUnit(t, 0, 5, [2]int{1, 1}, 3))

	// A unit with no budget can only stand where it is.
	reachable := game.reachableFrom(Point{X: 2, Y: 2}, 0)
	if len(reachable) != 1 {
		t.Fatalf("Expected only the origin, got %v", reachable)
	}
	if dist, ok := reachable[Point{X: 2, Y: 2}]; !ok || dist != 0 {
		t.Errorf("Expected origin at distance 0, got %d", dist)
	}
}

func TestRestorePath(t *testing.T) {
	game := NewGame(8, 12)

	// A hand-built chain from (0,4) to (3,4) at distance 5.
	distances := map[Point]int{
		{X: 0, Y: 4}: 0,
		{X: 1, Y: 4}: 1,
		{X: 2, Y: 4}: 2,
		{X: 2, Y: 5}: 3,
		{X: 3, Y: 5}: 4,
		{X: 3, Y: 4}: 5,
	}

	path, err := game.restorePath(distances, Point{X: 0, Y: 4}, Point{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("restorePath failed: %v", err)
	}

	if len(path) != 6 {
		t.Fatalf("Expected path of length 6, got %d: %v", len(path), path)
	}
	if path[0] != (Point{X: 0, Y: 4}) || path[len(path)-1] != (Point{X: 3, Y: 4}) {
		t.Fatalf("Path endpoints wrong: %v", path)
	}
	for i := 0; i+1 < len(path); i++ {
		adjacent := false
		for _, n := range game.Field.NeighboursOf(path[i]) {
			if n.ToPoint() == path[i+1] {
				adjacent = true
				break
			}
		}
		if !adjacent {
			t.Errorf("Consecutive path points not neighbours: %+v -> %+v", path[i], path[i+1])
		}
	}
}

func TestRestorePathErrors(t *testing.T) {
	game := NewGame(5, 5)

	distances := map[Point]int{
		{X: 0, Y: 0}: 0,
		{X: 0, Y: 1}: 1,
	}

	if _, err := game.restorePath(distances, Point{X: 0, Y: 0}, Point{X: 4, Y: 4}); !errors.Is(err, ErrNoHex) {
		t.Errorf("Expected ErrNoHex for missing finish, got %v", err)
	}
	if _, err := game.restorePath(distances, Point{X: 4, Y: 4}, Point{X: 0, Y: 1}); !errors.Is(err, ErrNoHex) {
		t.Errorf("Expected ErrNoHex for missing start, got %v", err)
	}

	// A gap in the distances makes the walk discontinuous.
	broken := map[Point]int{
		{X: 0, Y: 0}: 0,
		{X: 3, Y: 3}: 2,
	}
	if _, err := game.restorePath(broken, Point{X: 0, Y: 0}, Point{X: 3, Y: 3}); !errors.Is(err, ErrNoHex) {
		t.Errorf("Expected ErrNoHex for discontinuous path, got %v", err)
	}
}

func TestMoveUnit(t *testing.T) {
	game := NewGame(5, 5)
	unit := mustUnit(t, 0, 5, [2]int{1, 1}, 3)
	game.SetUnit(0, 0, unit)

	if _, _, err := game.SelectUnit(Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("SelectUnit failed: %v", err)
	}

	path, err := game.MoveUnit(Point{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("MoveUnit failed: %v", err)
	}

	travelled := len(path) - 1
	if unit.Movements != unit.Speed-travelled {
		t.Errorf("Expected %d movements left, got %d", unit.Speed-travelled, unit.Movements)
	}

	from, _ := game.Field.Hex(0, 0)
	if from.Unit != nil {
		t.Error("Unit still on origin hex")
	}
	to, _ := game.Field.Hex(2, 1)
	if to.Unit != unit {
		t.Error("Unit not on destination hex")
	}
}

func TestMoveUnitValidation(t *testing.T) {
	game := NewGame(5, 5)
	unit := mustUnit(t, 0, 5, [2]int{1, 1}, 2)
	game.SetUnit(0, 0, unit)

	// Nothing selected.
	if _, err := game.MoveUnit(Point{X: 1, Y: 1}); !errors.Is(err, ErrNoHex) {
		t.Errorf("Expected ErrNoHex without selection, got %v", err)
	}

	game.SelectUnit(Point{X: 0, Y: 0})

	// Destination beyond the movement budget.
	if _, err := game.MoveUnit(Point{X: 4, Y: 4}); !errors.Is(err, ErrNoHex) {
		t.Errorf("Expected ErrNoHex for unreachable target, got %v", err)
	}

	// Selected hex lost its unit.
	game.Field.HexMut(0, 0).Unit = nil
	if _, err := game.MoveUnit(Point{X: 1, Y: 1}); !errors.Is(err, ErrNoUnit) {
		t.Errorf("Expected ErrNoUnit, got %v", err)
	}

	// Spent budget.
	game.Field.HexMut(0, 0).Unit = unit
	unit.ChangeMovements(2)
	game.SelectUnit(Point{X: 0, Y: 0})
	if _, err := game.MoveUnit(Point{X: 1, Y: 1}); !errors.Is(err, ErrNoMoves) {
		t.Errorf("Expected ErrNoMoves, got %v", err)
	}
}

func TestMoveUnitAvoidsObstacles(t *testing.T) {
	// Walls force the path around: direct row is blocked.
	game := NewGame(5, 3)
	unit := mustUnit(t, 0, 5, [2]int{1, 1}, 5)
	game.SetUnit(0, 0, unit)
	game.SetContent(1, 0, NewWall())
	game.SetContent(1, 1, NewWall())

	game.SelectUnit(Point{X: 0, Y: 0})
	path, err := game.MoveUnit(Point{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("MoveUnit failed: %v", err)
	}

	for _, p := range path {
		hex, _ := game.Field.Hex(p.X, p.Y)
		if hex.Content != nil {
			t.Errorf("Path passes through wall at %+v", p)
		}
	}
	if len(path) < 4 {
		t.Errorf("Expected a detour, got path %v", path)
	}
}
