package session

import (
	"context"
	"log"
	"math/rand"

	"github.com/Miol-Mor/battle-game/game/engine"
	"github.com/Miol-Mor/battle-game/transport/protocol"
)

// Conn is a connection handle capable of delivering outbound frames. Sends
// are fire-and-forget from the session's perspective. Handles must be
// comparable so a disconnect can remove the right client.
type Conn interface {
	Send(data []byte)
}

// Commands processed by the session loop.
type (
	newClient   struct{ conn Conn }
	looseClient struct{ conn Conn }
	click       struct {
		sender Conn
		target engine.Point
	}
	skipTurn  struct{ sender Conn }
	startGame struct{ sender Conn }
)

// MinPlayers is how many connected clients a match needs to start.
const MinPlayers = 2

// Session is the process-wide authority for one match.
type Session struct {
	commands chan interface{}

	clients       []Conn
	game          *engine.Game
	currentPlayer int
	numOfPlayers  int
	gameStarted   bool

	rng *rand.Rand
}

// New creates a session with an empty placeholder game.
func New() *Session {
	return NewWithRand(nil)
}

// NewWithRand is New with an injected random source for deterministic
// games.
func NewWithRand(rng *rand.Rand) *Session {
	return &Session{
		commands: make(chan interface{}),
		game:     engine.NewGameWithRand(rng, 0, 0),
		rng:      rng,
	}
}

// Run processes commands until the context is cancelled. All session and
// game state is owned by this loop.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-s.commands:
			s.dispatch(cmd)
		}
	}
}

// Join announces a new connection to the session.
func (s *Session) Join(conn Conn) {
	s.commands <- newClient{conn: conn}
}

// Leave announces a closed connection to the session.
func (s *Session) Leave(conn Conn) {
	s.commands <- looseClient{conn: conn}
}

// HandleMessage decodes an inbound frame and posts the intent to the
// session loop. Unknown or malformed frames are logged and dropped.
func (s *Session) HandleMessage(sender Conn, data []byte) {
	request, err := protocol.Decode(data)
	if err != nil {
		log.Printf("Dropping inbound frame: %v", err)
		return
	}

	switch request := request.(type) {
	case *protocol.Click:
		s.commands <- click{sender: sender, target: request.Target}
	case *protocol.SkipTurn:
		s.commands <- skipTurn{sender: sender}
	case *protocol.StartGame:
		s.commands <- startGame{sender: sender}
	}
}

func (s *Session) dispatch(cmd interface{}) {
	switch cmd := cmd.(type) {
	case newClient:
		s.handleNewClient(cmd.conn)
	case looseClient:
		s.handleLooseClient(cmd.conn)
	case click:
		s.handleClick(cmd.sender, cmd.target)
	case skipTurn:
		s.handleSkipTurn(cmd.sender)
	case startGame:
		s.handleStartGame(cmd.sender)
	}
}

// handleNewClient appends the connection to the queue. Clients joining
// mid-game get no field snapshot, only their queue position.
func (s *Session) handleNewClient(conn Conn) {
	s.clients = append(s.clients, conn)
	log.Printf("Client joined (total clients: %d)", len(s.clients))
	s.broadcastQueue()
}

// handleLooseClient removes the connection. A match loses its meaning when
// an active player drops, so the game stops; spectator drops only update
// the queue.
func (s *Session) handleLooseClient(conn Conn) {
	index := -1
	for i, c := range s.clients {
		if c == conn {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	s.clients = append(s.clients[:index], s.clients[index+1:]...)
	log.Printf("Client left (remaining clients: %d)", len(s.clients))

	if s.gameStarted && index < s.numOfPlayers {
		s.stopGame()
		return
	}
	s.broadcastQueue()
}

// handleStartGame starts a match when none is running and enough clients
// are connected.
func (s *Session) handleStartGame(sender Conn) {
	if s.gameStarted {
		log.Printf("Dropping start_game: game already started")
		return
	}
	if len(s.clients) < MinPlayers {
		log.Printf("Dropping start_game: %d of %d required clients", len(s.clients), MinPlayers)
		return
	}

	s.numOfPlayers = len(s.clients)
	s.startGame()
}

// handleClick routes a click through the action decision table. Clicks from
// anyone but the current player are dropped without feedback.
func (s *Session) handleClick(sender Conn, target engine.Point) {
	if !s.isCurrentPlayer(sender) {
		log.Printf("Dropping click from non-current player")
		return
	}

	action, err := s.game.CurrentAction(target, s.currentPlayer)
	if err != nil {
		log.Printf("Click on %+v rejected: %v", target, err)
		s.sendError(protocol.CmdClick, err)
		return
	}

	switch action {
	case engine.ActionDeselect:
		s.deselectUnit()
	case engine.ActionSelect:
		s.deselectUnit()
		s.selectUnit(target)
	case engine.ActionMove:
		s.moveUnit(target)
	case engine.ActionAttack:
		s.attackUnit(target)
	}
}

// handleSkipTurn ends the current player's turn without acting.
func (s *Session) handleSkipTurn(sender Conn) {
	if !s.isCurrentPlayer(sender) {
		log.Printf("Dropping skip_turn from non-current player")
		return
	}
	s.nextTurn()
}

// selectUnit selects target and tells the active player what it can reach.
func (s *Session) selectUnit(target engine.Point) {
	hex, highlights, err := s.game.SelectUnit(target)
	if err != nil {
		log.Printf("Select of %+v rejected: %v", target, err)
		s.sendError(protocol.CmdClick, err)
		return
	}

	s.sendCurrentPlayer(protocol.NewSelecting(hex.ToPoint(), highlights))
	s.sendCurrentPlayer(protocol.NewState(protocol.StateAction))
}

// deselectUnit drops the selection if there is one. Safe to call anytime.
func (s *Session) deselectUnit() {
	selected := s.game.Selected()
	if selected == nil {
		return
	}

	s.sendCurrentPlayer(protocol.NewDeselecting(selected.ToPoint()))
	s.game.DeselectUnit()
	s.sendCurrentPlayer(protocol.NewState(protocol.StateSelect))
}

// moveUnit moves the selected unit and re-selects the destination so the
// player can chain an attack from the new position.
func (s *Session) moveUnit(to engine.Point) {
	path, err := s.game.MoveUnit(to)
	if err != nil {
		log.Printf("Move to %+v rejected: %v", to, err)
		s.sendError(protocol.CmdClick, err)
		return
	}

	coords := make([]engine.Hex, 0, len(path))
	for _, p := range path {
		if hex, ok := s.game.Field.Hex(p.X, p.Y); ok {
			coords = append(coords, hex)
		}
	}
	s.broadcast(protocol.NewMoving(coords))

	// Engine selection skips the already-moved check on purpose here.
	if _, _, err := s.game.SelectUnit(to); err != nil {
		log.Printf("Reselect of %+v after move failed: %v", to, err)
	}
	s.sendCurrentPlayer(protocol.NewState(protocol.StateAttack))
}

// attackUnit resolves an attack from the selected hex, then ends the turn.
func (s *Session) attackUnit(to engine.Point) {
	hurt, die, err := s.game.Attack(to)
	if err != nil {
		log.Printf("Attack on %+v rejected: %v", to, err)
		s.sendError(protocol.CmdClick, err)
		return
	}

	from := s.game.Selected().ToPoint()
	s.deselectUnit()

	s.broadcast(protocol.NewAttacking(from, to))
	s.broadcast(protocol.NewHurt(hurt))
	s.broadcast(protocol.NewDie(die))

	s.nextTurn()
}

// nextTurn restores the outgoing player's movements, detects game end, and
// hands the turn to the next living player.
func (s *Session) nextTurn() {
	updated := s.game.RestoreMovements(s.currentPlayer)
	s.broadcast(protocol.NewUpdate(updated))

	s.deselectUnit()

	if s.game.Ends() {
		s.sendCurrentPlayer(protocol.NewEnd(protocol.OutcomeWin))
		s.sendOtherPlayers(protocol.NewEnd(protocol.OutcomeLose))
		s.gameStarted = false
		s.broadcastQueue()
		return
	}

	s.sendCurrentPlayer(protocol.NewState(protocol.StateWait))
	s.changePlayer()
	s.sendCurrentPlayer(protocol.NewState(protocol.StateAction))
}

// changePlayer advances to the next player that still has units. The game
// is still running only while at least two players live, so this
// terminates.
func (s *Session) changePlayer() {
	alive := s.game.Field.PlayersAlive()
	for {
		s.currentPlayer = (s.currentPlayer + 1) % s.numOfPlayers
		if alive[s.currentPlayer] {
			return
		}
	}
}

// startGame generates a fresh random field and pushes every client into
// its role: players wait, spectators watch, the first player acts.
func (s *Session) startGame() {
	s.game = engine.RandomGameWithRand(s.rng, s.numOfPlayers)
	s.currentPlayer = 0

	s.broadcast(protocol.NewState(protocol.StateWait))
	s.broadcast(protocol.NewField(s.game.Field))
	for i := s.numOfPlayers; i < len(s.clients); i++ {
		s.send(s.clients[i], protocol.NewState(protocol.StateWatch))
	}
	s.sendCurrentPlayer(protocol.NewState(protocol.StateAction))

	s.gameStarted = true
	log.Printf("Game started: %d players, %d clients", s.numOfPlayers, len(s.clients))
}

// stopGame aborts the match after an active player dropped.
func (s *Session) stopGame() {
	s.broadcast(protocol.NewEnd(protocol.OutcomeDisconnected))
	s.gameStarted = false
	s.broadcastQueue()
	log.Printf("Game stopped")
}

func (s *Session) isCurrentPlayer(conn Conn) bool {
	return s.currentPlayer < len(s.clients) && s.clients[s.currentPlayer] == conn
}

// broadcastQueue tells every client its place in the connection queue.
func (s *Session) broadcastQueue() {
	for i, conn := range s.clients {
		s.send(conn, protocol.NewQueue(len(s.clients), i+1, s.gameStarted))
	}
}

// broadcast sends an event to every connected client.
func (s *Session) broadcast(event interface{}) {
	for _, conn := range s.clients {
		s.send(conn, event)
	}
}

// sendCurrentPlayer sends an event to the active player only.
func (s *Session) sendCurrentPlayer(event interface{}) {
	if s.currentPlayer < len(s.clients) {
		s.send(s.clients[s.currentPlayer], event)
	}
}

// sendOtherPlayers sends an event to every active player except the
// current one. Spectators are not included.
func (s *Session) sendOtherPlayers(event interface{}) {
	for i := 0; i < s.numOfPlayers && i < len(s.clients); i++ {
		if i != s.currentPlayer {
			s.send(s.clients[i], event)
		}
	}
}

// sendError reports a rejected request to the current player only.
func (s *Session) sendError(requestCmd string, err error) {
	s.sendCurrentPlayer(protocol.NewError(requestCmd, err))
}

func (s *Session) send(conn Conn, event interface{}) {
	data, err := protocol.Encode(event)
	if err != nil {
		log.Printf("Failed to encode outbound event: %v", err)
		return
	}
	conn.Send(data)
}
