package engine

import (
	"math/rand"
	"sort"
	"time"
)

// Action is what a click resolves to under the current canonical state.
type Action int

const (
	ActionSelect Action = iota
	ActionDeselect
	ActionMove
	ActionAttack
)

// Game is the rules engine: the field plus the active player's selection.
// The selection is a snapshot; it is used for identity and initial unit
// inspection, and every write goes back through the grid.
type Game struct {
	Field *Grid

	selected *Hex
	rng      *rand.Rand
}

// NewGame creates a game over an empty numX by numY field. Zero dimensions
// give the placeholder game used before a match starts.
func NewGame(numX, numY int) *Game {
	return NewGameWithRand(nil, numX, numY)
}

// NewGameWithRand is NewGame with an injected random source. A nil rng
// falls back to a time-seeded one.
func NewGameWithRand(rng *rand.Rand, numX, numY int) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Game{
		Field: NewGrid(numX, numY),
		rng:   rng,
	}
}

// Selected returns the selected hex snapshot, or nil.
func (g *Game) Selected() *Hex {
	return g.selected
}

// SetUnit places a unit on the hex at (x, y). Used by game setup and
// fixtures.
func (g *Game) SetUnit(x, y int, unit *Unit) error {
	hex := g.Field.HexMut(x, y)
	if hex == nil {
		return ErrNoHex
	}
	hex.Unit = unit
	return nil
}

// SetContent places content on the hex at (x, y).
func (g *Game) SetContent(x, y int, content *Content) error {
	hex := g.Field.HexMut(x, y)
	if hex == nil {
		return ErrNoHex
	}
	hex.Content = content
	return nil
}

// CurrentAction decides what a click on target means for the given player.
// It is the single source of truth for click semantics; the session layer
// only dispatches on the result.
func (g *Game) CurrentAction(target Point, player int) (Action, error) {
	hex, ok := g.Field.Hex(target.X, target.Y)
	if !ok {
		return 0, ErrNoHex
	}

	if g.selected == nil {
		switch {
		case hex.Unit == nil:
			return 0, ErrNoSelectedHex
		case !hex.Unit.IsMy(player):
			return 0, ErrSelectEnemy
		default:
			return ActionSelect, nil
		}
	}

	switch {
	case hex.Unit == nil:
		return ActionMove, nil
	case !hex.Unit.IsMy(player):
		return ActionAttack, nil
	case g.selected.ToPoint() == target:
		return ActionDeselect, nil
	case hex.Unit.HasMoved():
		return 0, ErrAlreadyMoved
	default:
		return ActionSelect, nil
	}
}

// SelectUnit selects the unit on target and returns the target hex together
// with the points it can reach on its remaining movement budget.
func (g *Game) SelectUnit(target Point) (Hex, []Point, error) {
	hex, ok := g.Field.Hex(target.X, target.Y)
	if !ok {
		return Hex{}, nil, ErrNoHex
	}
	if hex.Unit == nil {
		return Hex{}, nil, ErrNoUnit
	}

	snapshot := hex
	g.selected = &snapshot

	reachable := g.reachableFrom(target, hex.Unit.Movements)
	highlights := make([]Point, 0, len(reachable))
	for p := range reachable {
		highlights = append(highlights, p)
	}
	sort.Slice(highlights, func(i, j int) bool {
		if highlights[i].X != highlights[j].X {
			return highlights[i].X < highlights[j].X
		}
		return highlights[i].Y < highlights[j].Y
	})

	return hex, highlights, nil
}

// DeselectUnit clears the selection. It never fails.
func (g *Game) DeselectUnit() {
	g.selected = nil
}

// Attack resolves an attack from the selected hex onto to. The target must
// be one of the attacker's six neighbours. The attacked hex comes back in
// die when its unit was destroyed (and removed), in hurt otherwise.
func (g *Game) Attack(to Point) (hurt []Hex, die []Hex, err error) {
	if g.selected == nil {
		return nil, nil, ErrNoHex
	}
	from := g.selected.ToPoint()

	fromHex := g.Field.HexMutByPoint(from)
	if fromHex == nil {
		return nil, nil, ErrNoHex
	}
	attacker := fromHex.Unit
	if attacker == nil {
		return nil, nil, ErrNoUnit
	}

	toHex := g.Field.HexMutByPoint(to)
	if toHex == nil {
		return nil, nil, ErrNoHex
	}

	adjacent := false
	for _, n := range g.Field.NeighboursOf(from) {
		if n.ToPoint() == to {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return nil, nil, ErrWrongHex
	}

	target := toHex.Unit
	if target == nil {
		return nil, nil, ErrNoUnit
	}

	damage := randInclusive(g.rng, attacker.Damage[0], attacker.Damage[1])
	target.ChangeHP(-damage)

	hurt = []Hex{}
	die = []Hex{}
	if target.HP == 0 {
		toHex.Unit = nil
		die = append(die, *toHex)
	} else {
		hurt = append(hurt, *toHex)
	}

	return hurt, die, nil
}

// Ends reports whether at most one player still has units on the field.
func (g *Game) Ends() bool {
	return len(g.Field.PlayersAlive()) <= 1
}

// RestoreMovements refills the movement budget of every unit of the given
// player that moved this turn and returns the updated hexes.
func (g *Game) RestoreMovements(player int) []Hex {
	updated := []Hex{}
	for i := range g.Field.Hexes {
		hex := &g.Field.Hexes[i]
		if hex.Unit != nil && hex.Unit.IsMy(player) && hex.Unit.HasMoved() {
			hex.Unit.RestoreMovements()
			updated = append(updated, *hex)
		}
	}
	return updated
}
