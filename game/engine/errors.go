package engine

import "errors"

// Engine errors. The session layer reports these back to the offending
// player only; they are never broadcast.
var (
	// ErrNoHex means the target coordinates are outside the grid, missing
	// from a reachability map, or a restored path is discontinuous.
	ErrNoHex = errors.New("no hex")

	// ErrNoUnit means there is no unit at a position that requires one.
	ErrNoUnit = errors.New("no unit")

	// ErrNoMoves means the selected unit's movement budget is spent.
	ErrNoMoves = errors.New("no moves")

	// ErrWrongHex means an attack target is not adjacent to the attacker.
	ErrWrongHex = errors.New("wrong hex")

	// ErrNoSelectedHex means the player clicked an empty hex with nothing
	// selected.
	ErrNoSelectedHex = errors.New("no selected hex")

	// ErrSelectEnemy means the player clicked an enemy unit with nothing
	// selected.
	ErrSelectEnemy = errors.New("select enemy")

	// ErrAlreadyMoved means the player tried to reselect an own unit that
	// has already spent movements this turn.
	ErrAlreadyMoved = errors.New("already moved")

	// ErrDamageRange means a unit's minimum damage exceeds its maximum.
	ErrDamageRange = errors.New("min damage exceeds max damage")
)
