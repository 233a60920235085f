package model

import "errors"

// GameStatus classifies a game's outcome. Active is the only
// non-terminal value; once a terminal value is set the game is over.
type GameStatus string

const (
	StatusActive      GameStatus = "active"
	StatusWhiteWin    GameStatus = "white_win"
	StatusBlackWin    GameStatus = "black_win"
	StatusForfeit     GameStatus = "forfeit"
	StatusStalemate   GameStatus = "stalemate"
	StatusResignation GameStatus = "resignation"
)

// Game orchestrates one match: it owns the board, the two player
// roles, the active-turn pointer, the status, and the append-only move
// history. Game is single-threaded; callers serving concurrent clients
// must serialize access per game (see service.GameSession).
type Game struct {
	board       *Board
	players     [2]*Player
	currentTurn *Player
	status      GameStatus
	movesPlayed []*Move
}

func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		status: StatusActive,
	}
}

// Initialize seats both players, resets the board to the starting
// layout, hands the turn to the white player and clears the move
// history. Exactly one of the two players must be white.
func (g *Game) Initialize(p1, p2 *Player) error {
	if p1 == nil || p2 == nil {
		return errors.New("two players are required")
	}
	if p1.White == p2.White {
		return errors.New("players must take opposite sides")
	}

	g.players[0] = p1
	g.players[1] = p2

	g.board.ResetBoard()

	if p1.White {
		g.currentTurn = p1
	} else {
		g.currentTurn = p2
	}
	g.movesPlayed = nil
	return nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) CurrentTurn() *Player {
	return g.currentTurn
}

// MovesPlayed returns the move history in play order. The slice is
// append-only; entries are never mutated or removed.
func (g *Game) MovesPlayed() []*Move {
	return g.movesPlayed
}

func (g *Game) IsEnd() bool {
	return g.status != StatusActive
}

func (g *Game) GetStatus() GameStatus {
	return g.status
}

func (g *Game) SetStatus(status GameStatus) {
	g.status = status
}

// PlayerMove resolves both coordinate pairs through the board and, if
// both are on the board, builds a Move and runs it through MakeMove.
// An out-of-range coordinate fails the move with no other effect.
func (g *Game) PlayerMove(player *Player, startX, startY, endX, endY int) bool {
	start, err := g.board.GetBox(startX, startY)
	if err != nil {
		return false
	}
	end, err := g.board.GetBox(endX, endY)
	if err != nil {
		return false
	}
	return g.MakeMove(NewMove(player, start, end), player)
}

// MakeMove validates and applies one move. Validation runs in order:
// the source spot must hold a piece, the acting player must be on
// turn, the piece must be the player's color, and the piece geometry
// must allow the move. The first failure aborts with the board,
// history, status and turn untouched. No move is accepted once the
// game has ended.
func (g *Game) MakeMove(move *Move, player *Player) bool {
	if g.IsEnd() {
		return false
	}

	piece := move.Start.Piece
	if piece == nil {
		return false
	}
	if player != g.currentTurn {
		return false
	}
	if piece.White != player.White {
		return false
	}
	if !piece.CanMove(g.board, move.Start, move.End) {
		return false
	}

	dest := move.End.Piece
	if dest != nil {
		dest.Killed = true
		move.PieceKilled = dest
	}

	// Flag castling geometry on the record; the board is not touched
	// beyond the king itself (no rook relocation).
	if piece.Kind == King && piece.IsCastlingMove(move.Start, move.End) {
		move.setCastlingMove(true)
	}

	g.movesPlayed = append(g.movesPlayed, move)

	move.End.Piece = piece
	move.Start.Piece = nil

	if dest != nil && dest.Kind == King {
		if player.White {
			g.status = StatusWhiteWin
		} else {
			g.status = StatusBlackWin
		}
	}

	g.switchTurn()
	return true
}

func (g *Game) switchTurn() {
	if g.currentTurn == g.players[0] {
		g.currentTurn = g.players[1]
	} else {
		g.currentTurn = g.players[0]
	}
}
