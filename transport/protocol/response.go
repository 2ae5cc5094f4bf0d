package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/Miol-Mor/battle-game/game/engine"
)

// Outbound event discriminators.
const (
	CmdField       = "field"
	CmdSelecting   = "selecting"
	CmdDeselecting = "deselecting"
	CmdMoving      = "moving"
	CmdAttacking   = "attacking"
	CmdHurt        = "hurt"
	CmdDie         = "die"
	CmdUpdate      = "update"
	CmdState       = "state"
	CmdError       = "error"
	CmdEnd         = "end"
	CmdQueue       = "queue"
	CmdTurn        = "turn"
)

// State is what a client should be showing: waiting for its turn, spectating,
// choosing a unit, choosing an action, or choosing an attack target.
type State string

const (
	StateWait   State = "wait"
	StateWatch  State = "watch"
	StateSelect State = "select"
	StateAction State = "action"
	StateAttack State = "attack"
)

// Outcome is how the game ended for a particular client.
type Outcome string

const (
	OutcomeWin          Outcome = "win"
	OutcomeLose         Outcome = "lose"
	OutcomeDisconnected Outcome = "disconnected"
)

// Field is the full grid snapshot broadcast at game start.
type Field struct {
	Cmd   string       `json:"cmd"`
	NumX  int          `json:"num_x"`
	NumY  int          `json:"num_y"`
	Field *engine.Grid `json:"field"`
}

// NewField builds a field snapshot event.
func NewField(grid *engine.Grid) *Field {
	return &Field{
		Cmd:   CmdField,
		NumX:  grid.NumX,
		NumY:  grid.NumY,
		Field: grid,
	}
}

// Selecting tells the active player its selection and reachable hexes.
type Selecting struct {
	Cmd            string         `json:"cmd"`
	Target         engine.Point   `json:"target"`
	HighlightHexes []engine.Point `json:"highlight_hexes"`
}

// NewSelecting builds a selecting event.
func NewSelecting(target engine.Point, highlights []engine.Point) *Selecting {
	if highlights == nil {
		highlights = []engine.Point{}
	}
	return &Selecting{
		Cmd:            CmdSelecting,
		Target:         target,
		HighlightHexes: highlights,
	}
}

// Deselecting tells the active player its selection was dropped.
type Deselecting struct {
	Cmd    string       `json:"cmd"`
	Target engine.Point `json:"target"`
}

// NewDeselecting builds a deselecting event.
func NewDeselecting(target engine.Point) *Deselecting {
	return &Deselecting{
		Cmd:    CmdDeselecting,
		Target: target,
	}
}

// Moving broadcasts the hexes a unit travelled through.
type Moving struct {
	Cmd    string       `json:"cmd"`
	Coords []engine.Hex `json:"coords"`
}

// NewMoving builds a moving event.
func NewMoving(coords []engine.Hex) *Moving {
	if coords == nil {
		coords = []engine.Hex{}
	}
	return &Moving{
		Cmd:    CmdMoving,
		Coords: coords,
	}
}

// Attacking broadcasts an attack between two hexes.
type Attacking struct {
	Cmd  string       `json:"cmd"`
	From engine.Point `json:"from"`
	To   engine.Point `json:"to"`
}

// NewAttacking builds an attacking event.
func NewAttacking(from, to engine.Point) *Attacking {
	return &Attacking{
		Cmd:  CmdAttacking,
		From: from,
		To:   to,
	}
}

// Hexes carries hex snapshots for the hurt, die and update events.
type Hexes struct {
	Cmd   string       `json:"cmd"`
	Hexes []engine.Hex `json:"hexes"`
}

func newHexes(cmd string, hexes []engine.Hex) *Hexes {
	if hexes == nil {
		hexes = []engine.Hex{}
	}
	return &Hexes{
		Cmd:   cmd,
		Hexes: hexes,
	}
}

// NewHurt builds a hurt event with the surviving attacked hexes.
func NewHurt(hexes []engine.Hex) *Hexes {
	return newHexes(CmdHurt, hexes)
}

// NewDie builds a die event with the hexes whose units were destroyed.
func NewDie(hexes []engine.Hex) *Hexes {
	return newHexes(CmdDie, hexes)
}

// NewUpdate builds an update event with hexes whose units changed.
func NewUpdate(hexes []engine.Hex) *Hexes {
	return newHexes(CmdUpdate, hexes)
}

// StateMessage tells a client which interaction state to enter.
type StateMessage struct {
	Cmd   string `json:"cmd"`
	State State  `json:"state"`
}

// NewState builds a state event.
func NewState(state State) *StateMessage {
	return &StateMessage{
		Cmd:   CmdState,
		State: state,
	}
}

// Error reports a rejected request back to the offender only.
type Error struct {
	Cmd     string `json:"cmd"`
	Message string `json:"message"`
}

// NewError builds an error event tagged with the originating request cmd.
func NewError(requestCmd string, err error) *Error {
	return &Error{
		Cmd:     CmdError,
		Message: fmt.Sprintf("%s: %v", requestCmd, err),
	}
}

// End tells a client how the game ended for it.
type End struct {
	Cmd    string  `json:"cmd"`
	YouWin Outcome `json:"you_win"`
}

// NewEnd builds an end event.
func NewEnd(outcome Outcome) *End {
	return &End{
		Cmd:    CmdEnd,
		YouWin: outcome,
	}
}

// Queue tells a client its place in the connection queue.
type Queue struct {
	Cmd           string `json:"cmd"`
	PlayersNumber int    `json:"players_number"`
	YourNumber    int    `json:"your_number"`
	GameStarted   bool   `json:"game_started"`
}

// NewQueue builds a queue event.
func NewQueue(playersNumber, yourNumber int, gameStarted bool) *Queue {
	return &Queue{
		Cmd:           CmdQueue,
		PlayersNumber: playersNumber,
		YourNumber:    yourNumber,
		GameStarted:   gameStarted,
	}
}

// Turn is the legacy next-turn poke. Kept for old clients.
type Turn struct {
	Cmd string `json:"cmd"`
}

// NewTurn builds a turn event.
func NewTurn() *Turn {
	return &Turn{Cmd: CmdTurn}
}

// Encode marshals an outbound event.
func Encode(event interface{}) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return data, nil
}
