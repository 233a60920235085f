package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/mwaldren/chessmate-backend/internal/display"
	"github.com/mwaldren/chessmate-backend/internal/model"
	"github.com/mwaldren/chessmate-backend/internal/ws"
)

// ErrIllegalMove covers every engine-side rejection: out-of-range
// coordinates, empty source, wrong turn, wrong color, bad geometry.
// The game state is untouched in all of those cases.
var ErrIllegalMove = errors.New("illegal move")

// Coord is a board coordinate as sent by clients: x is the rank index
// (0 = white back rank), y the file index.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MoveRequest is one proposed relocation.
type MoveRequest struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// MoveRecord is one applied move as exposed in the game state.
type MoveRecord struct {
	From     Coord           `json:"from"`
	To       Coord           `json:"to"`
	Piece    model.PieceKind `json:"piece"`
	Captured model.PieceKind `json:"captured,omitempty"`
	Castling bool            `json:"castling"`
}

type SeatInfo struct {
	ID       string            `json:"id"`
	Color    model.PlayerColor `json:"color"`
	TimeLeft int               `json:"timeLeft"`
}

// GameState is the client-facing snapshot of one session.
type GameState struct {
	Board  []string          `json:"board"`
	ToMove model.PlayerColor `json:"toMove,omitempty"`
	Status model.GameStatus  `json:"status"`
	Moves  []MoveRecord      `json:"moves"`
	White  SeatInfo          `json:"white"`
	Black  SeatInfo          `json:"black"`
}

// The connections for a specific session
type sessionConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

// GameSession serializes access to one engine Game. Applying a move
// is a multi-step sequence that must appear atomic to any other
// command touching the same game, so every entry point takes the
// session mutex before reaching the engine.
type GameSession struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	seats       map[string]*model.Player
	white       *model.Player
	black       *model.Player
	whiteClock  *Clock
	blackClock  *Clock
	connections *sessionConnections
}

func NewGameSession(id string, clockTime time.Duration) *GameSession {
	return &GameSession{
		ID:    id,
		game:  model.NewGame(),
		seats: make(map[string]*model.Player),
		connections: &sessionConnections{
			connections: make(map[string]*websocket.Conn),
		},
		whiteClock: NewClock(clockTime),
		blackClock: NewClock(clockTime),
	}
}

// AddPlayer seats a player: first to join takes white, second takes
// black. Seating the second player starts the game and white's clock.
func (s *GameSession) AddPlayer(playerID string) (model.PlayerColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seats[playerID]; ok {
		return "", errors.New("player already in game")
	}

	switch len(s.seats) {
	case 0:
		s.white = &model.Player{ID: playerID, White: true, Human: true}
		s.seats[playerID] = s.white
		return model.PlayerColorWhite, nil
	case 1:
		s.black = &model.Player{ID: playerID, White: false, Human: true}
		s.seats[playerID] = s.black
		if err := s.game.Initialize(s.white, s.black); err != nil {
			delete(s.seats, playerID)
			s.black = nil
			return "", err
		}
		s.whiteClock.Start()
		return model.PlayerColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (s *GameSession) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPlayerInGame(playerID)
}

func (s *GameSession) isPlayerInGame(playerID string) bool {
	_, ok := s.seats[playerID]
	return ok
}

func (s *GameSession) CanSpectate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSpectate()
}

func (s *GameSession) canSpectate() bool {
	return len(s.seats) < 2
}

// MakeMove applies one move for the given player and swaps the
// clocks. The move either fully applies or leaves the game untouched.
func (s *GameSession) MakeMove(playerID string, req MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.seats[playerID]
	if !ok {
		return errors.New("player not in game")
	}

	if !s.game.PlayerMove(player, req.From.X, req.From.Y, req.To.X, req.To.Y) {
		return ErrIllegalMove
	}

	if player.White {
		s.whiteClock.Stop()
		s.blackClock.Start()
	} else {
		s.blackClock.Stop()
		s.whiteClock.Start()
	}
	if s.game.IsEnd() {
		s.whiteClock.Stop()
		s.blackClock.Stop()
	}

	go s.broadcastState()
	return nil
}

// Resign ends the game on behalf of a seated player. The engine never
// fires this transition itself; it is a session-level command.
func (s *GameSession) Resign(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isPlayerInGame(playerID) {
		return errors.New("player not in game")
	}
	if s.game.IsEnd() {
		return errors.New("game already over")
	}

	s.game.SetStatus(model.StatusResignation)
	s.whiteClock.Stop()
	s.blackClock.Stop()

	go s.broadcastState()
	return nil
}

func (s *GameSession) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *GameSession) state() GameState {
	st := GameState{
		Board:  display.Rows(s.game.Board()),
		Status: s.game.GetStatus(),
		Moves:  make([]MoveRecord, 0, len(s.game.MovesPlayed())),
	}
	if turn := s.game.CurrentTurn(); turn != nil {
		st.ToMove = turn.Color()
	}
	for _, mv := range s.game.MovesPlayed() {
		rec := MoveRecord{
			From:     Coord{X: mv.Start.X, Y: mv.Start.Y},
			To:       Coord{X: mv.End.X, Y: mv.End.Y},
			Piece:    mv.PieceMoved.Kind,
			Castling: mv.IsCastlingMove(),
		}
		if mv.PieceKilled != nil {
			rec.Captured = mv.PieceKilled.Kind
		}
		st.Moves = append(st.Moves, rec)
	}
	if s.white != nil {
		st.White = SeatInfo{
			ID:       s.white.ID,
			Color:    model.PlayerColorWhite,
			TimeLeft: int(s.whiteClock.TimeLeft().Milliseconds() / 100),
		}
	}
	if s.black != nil {
		st.Black = SeatInfo{
			ID:       s.black.ID,
			Color:    model.PlayerColorBlack,
			TimeLeft: int(s.blackClock.TimeLeft().Milliseconds() / 100),
		}
	}
	return st
}

// RegisterConnection attaches a websocket to this session. Players
// and, while a seat is open, spectators may connect; one connection
// per player ID is kept.
func (s *GameSession) RegisterConnection(playerID string, conn *websocket.Conn) error {
	s.mu.Lock()
	authorized := s.isPlayerInGame(playerID) || s.canSpectate()
	s.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()

	go s.broadcastState()
	return nil
}

func (s *GameSession) UnregisterConnection(playerID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	delete(s.connections.connections, playerID)
}

func (s *GameSession) broadcastState() {
	state := s.State()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			delete(s.connections.connections, playerID)
		}
	}
}
