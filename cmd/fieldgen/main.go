// Command fieldgen generates random battle fields and prints them as JSON,
// the same shape the server broadcasts in its field event. Handy for
// eyeballing generator output and for feeding fixtures to client work.
//
// Usage:
//
//	fieldgen [-players 2] [-seed 0] [-count 1]
//
// A zero seed draws a fresh field every run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Miol-Mor/battle-game/game/engine"
	"github.com/Miol-Mor/battle-game/transport/protocol"
)

var (
	players = flag.Int("players", 2, "number of players to place units for")
	seed    = flag.Int64("seed", 0, "random seed (0 means time-based)")
	count   = flag.Int("count", 1, "how many fields to generate")
)

func main() {
	flag.Parse()

	if *players < 1 {
		log.Fatal("players must be at least 1")
	}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	encoder := json.NewEncoder(os.Stdout)
	for i := 0; i < *count; i++ {
		game := engine.RandomGameWithRand(rng, *players)
		if err := encoder.Encode(protocol.NewField(game.Field)); err != nil {
			log.Fatalf("Failed to encode field: %v", err)
		}

		walls, units := 0, 0
		for _, hex := range game.Field.Hexes {
			if hex.Content != nil {
				walls++
			}
			if hex.Unit != nil {
				units++
			}
		}
		fmt.Fprintf(os.Stderr, "field %d: %dx%d, %d walls, %d units (seed %d)\n",
			i+1, game.Field.NumX, game.Field.NumY, walls, units, seedValue)
	}
}
