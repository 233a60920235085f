package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mwaldren/chessmate-backend/internal/model"
	"github.com/mwaldren/chessmate-backend/internal/service"
)

func seatedSession(t *testing.T) *service.GameSession {
	t.Helper()
	s := service.NewGameSession("test-game", time.Minute)
	if color, err := s.AddPlayer("alice"); err != nil || color != model.PlayerColorWhite {
		t.Fatalf("seat alice: color=%s err=%v", color, err)
	}
	if color, err := s.AddPlayer("bob"); err != nil || color != model.PlayerColorBlack {
		t.Fatalf("seat bob: color=%s err=%v", color, err)
	}
	return s
}

func TestSessionSeating(t *testing.T) {
	s := service.NewGameSession("test-game", time.Minute)

	if _, err := s.AddPlayer("alice"); err != nil {
		t.Fatalf("first seat: %v", err)
	}
	if _, err := s.AddPlayer("alice"); err == nil {
		t.Error("double seating accepted")
	}
	if !s.CanSpectate() {
		t.Error("session with one seat open not spectatable")
	}
	if _, err := s.AddPlayer("bob"); err != nil {
		t.Fatalf("second seat: %v", err)
	}
	if _, err := s.AddPlayer("carol"); err == nil {
		t.Error("third seat accepted")
	}
	if s.CanSpectate() {
		t.Error("full session still spectatable")
	}
	if !s.IsPlayerInGame("bob") || s.IsPlayerInGame("carol") {
		t.Error("seat membership wrong")
	}
}

func TestSessionMoveFlow(t *testing.T) {
	s := seatedSession(t)
	knightMove := service.MoveRequest{
		From: service.Coord{X: 0, Y: 6},
		To:   service.Coord{X: 2, Y: 5},
	}

	if err := s.MakeMove("carol", knightMove); err == nil {
		t.Error("move by unseated player accepted")
	}
	if err := s.MakeMove("bob", knightMove); !errors.Is(err, service.ErrIllegalMove) {
		t.Errorf("move out of turn: err=%v, want ErrIllegalMove", err)
	}

	before := s.State()
	bad := service.MoveRequest{From: service.Coord{X: 1, Y: 4}, To: service.Coord{X: 3, Y: 4}}
	if err := s.MakeMove("alice", bad); !errors.Is(err, service.ErrIllegalMove) {
		t.Errorf("illegal geometry: err=%v, want ErrIllegalMove", err)
	}
	after := s.State()
	if diff := cmp.Diff(before.Board, after.Board); diff != "" {
		t.Errorf("board changed after illegal move (-before +after):\n%s", diff)
	}
	if len(after.Moves) != 0 {
		t.Errorf("history has %d entries after illegal move", len(after.Moves))
	}

	if err := s.MakeMove("alice", knightMove); err != nil {
		t.Fatalf("legal move: %v", err)
	}
	state := s.State()
	if state.ToMove != model.PlayerColorBlack {
		t.Errorf("ToMove = %s, want black", state.ToMove)
	}
	if len(state.Moves) != 1 {
		t.Fatalf("history has %d entries, want 1", len(state.Moves))
	}
	if state.Moves[0].Piece != model.Knight {
		t.Errorf("recorded piece = %s, want knight", state.Moves[0].Piece)
	}
	if state.Status != model.StatusActive {
		t.Errorf("status = %s, want active", state.Status)
	}
}

func TestSessionResign(t *testing.T) {
	s := seatedSession(t)

	if err := s.Resign("carol"); err == nil {
		t.Error("resignation by unseated player accepted")
	}
	if err := s.Resign("bob"); err != nil {
		t.Fatalf("resign: %v", err)
	}
	if got := s.State().Status; got != model.StatusResignation {
		t.Errorf("status = %s, want resignation", got)
	}
	if err := s.Resign("alice"); err == nil {
		t.Error("resignation accepted after game end")
	}
	move := service.MoveRequest{From: service.Coord{X: 0, Y: 6}, To: service.Coord{X: 2, Y: 5}}
	if err := s.MakeMove("alice", move); !errors.Is(err, service.ErrIllegalMove) {
		t.Errorf("move after resignation: err=%v, want ErrIllegalMove", err)
	}
}

func TestSessionStateBeforeStart(t *testing.T) {
	s := service.NewGameSession("test-game", time.Minute)
	state := s.State()

	if state.ToMove != "" {
		t.Errorf("ToMove = %s before both players seated", state.ToMove)
	}
	if state.Status != model.StatusActive {
		t.Errorf("status = %s, want active", state.Status)
	}
	if state.Board[7] != "RNBQKBNR" {
		t.Errorf("rank 1 = %s, want RNBQKBNR", state.Board[7])
	}
}
