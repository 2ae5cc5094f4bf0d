package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Miol-Mor/battle-game/game/engine"
)

// Inbound command discriminators.
const (
	CmdClick     = "click"
	CmdSkipTurn  = "skip_turn"
	CmdStartGame = "start_game"
)

// ErrUnknownCommand marks inbound frames with an unrecognised cmd. The
// session logs and drops them.
var ErrUnknownCommand = errors.New("unknown command")

// Message carries just the discriminator, for the first parse pass.
type Message struct {
	Cmd string `json:"cmd"`
}

// Click asks to apply the click action machine to the target hex.
type Click struct {
	Cmd    string       `json:"cmd"`
	Target engine.Point `json:"target"`
}

// SkipTurn asks to end the sender's turn without acting.
type SkipTurn struct {
	Cmd string `json:"cmd"`
}

// StartGame asks to start a match with the currently connected clients.
type StartGame struct {
	Cmd string `json:"cmd"`
}

// Decode parses an inbound frame into its typed request: *Click, *SkipTurn
// or *StartGame.
func Decode(data []byte) (interface{}, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	switch msg.Cmd {
	case CmdClick:
		var click Click
		if err := json.Unmarshal(data, &click); err != nil {
			return nil, fmt.Errorf("decode click: %w", err)
		}
		return &click, nil

	case CmdSkipTurn:
		return &SkipTurn{Cmd: CmdSkipTurn}, nil

	case CmdStartGame:
		return &StartGame{Cmd: CmdStartGame}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, msg.Cmd)
	}
}
