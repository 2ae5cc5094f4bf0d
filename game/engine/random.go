package engine

import "math/rand"

// Stat ranges for randomly generated games.
var (
	randFieldSize    = [2]int{5, 15}
	randWallsPercent = [2]int{0, 40}
	randUnitsCount   = [2]int{2, 6}

	randUnitHP          = [2]int{1, 10}
	randUnitDmgMin      = [2]int{1, 5}
	randUnitDmgInterval = [2]int{1, 5}
	randUnitSpeed       = [2]int{1, 8}
)

// RandomGame generates a field with random dimensions, walls and units for
// the given number of players. The caller keeps numOfPlayers small enough
// that all placements fit.
func RandomGame(numOfPlayers int) *Game {
	return RandomGameWithRand(nil, numOfPlayers)
}

// RandomGameWithRand is RandomGame with an injected random source.
func RandomGameWithRand(rng *rand.Rand, numOfPlayers int) *Game {
	game := NewGameWithRand(rng, 0, 0)
	rng = game.rng

	numX := randInclusive(rng, randFieldSize[0], randFieldSize[1])
	numY := randInclusive(rng, randFieldSize[0], randFieldSize[1])
	game.Field = NewGrid(numX, numY)

	wallsPercent := randInclusive(rng, randWallsPercent[0], randWallsPercent[1])
	numWalls := numX * numY * wallsPercent / 100
	for i := 0; i < numWalls; i++ {
		game.placeOnRandomEmptyHex(func(hex *Hex) {
			hex.Content = NewWall()
		})
	}

	numUnits := randInclusive(rng, randUnitsCount[0], randUnitsCount[1])
	for player := 0; player < numOfPlayers; player++ {
		for i := 0; i < numUnits; i++ {
			unit := RandomUnit(rng, randUnitHP, randUnitDmgMin, randUnitDmgInterval, randUnitSpeed, player)
			game.placeOnRandomEmptyHex(func(hex *Hex) {
				hex.Unit = unit
			})
		}
	}

	return game
}

// placeOnRandomEmptyHex retries uniform random cells until an empty one
// takes the placement. Terminates as long as obstacles stay strictly fewer
// than cells.
func (g *Game) placeOnRandomEmptyHex(place func(hex *Hex)) {
	for {
		hex := g.Field.HexMut(g.rng.Intn(g.Field.NumX), g.rng.Intn(g.Field.NumY))
		if hex.IsEmpty() {
			place(hex)
			return
		}
	}
}

// randInclusive draws uniformly from [lo, hi].
func randInclusive(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// randHalfOpen draws uniformly from [lo, hi).
func randHalfOpen(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
