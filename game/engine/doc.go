// Package engine provides the core rules for the hex battle game.
//
// The engine package implements the authoritative game mechanics including:
//   - The hex field with its offset coordinate system and neighbour rule
//   - Unit stats, damage and movement budgets
//   - Selection and the click-action decision table
//   - Reachability, path restoration and movement
//   - Adjacent combat, death and end-of-game detection
//   - Random field generation
//
// Core Types:
//
// Game is the rules engine over a Grid of Hexes, each of which may carry a
// Unit and a Content (walls, for now). A Game also tracks the active player's
// selected hex. All engine code is pure and synchronous; the session layer
// is the single writer that drives it.
//
// Usage:
//
//	game := engine.RandomGame(2)
//	action, err := game.CurrentAction(target, player)
//	if err != nil {
//		// illegal click under canonical state
//	}
//	switch action {
//	case engine.ActionSelect:
//		hex, highlights, err := game.SelectUnit(target)
//		...
//	}
//
// Randomness (field generation and damage rolls) comes from a seedable
// *rand.Rand so tests run deterministically.
package engine
