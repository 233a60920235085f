package model

// PieceKind enumerates the six chess piece variants. The set is
// closed; CanMove matches on it exhaustively.
type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

// Piece is a chess unit placed on at most one spot at a time. Killed
// is bookkeeping set on capture and never consulted by the engine.
// CastlingDone is carried by kings only.
type Piece struct {
	Kind         PieceKind
	White        bool
	Killed       bool
	CastlingDone bool
}

func NewPiece(kind PieceKind, white bool) *Piece {
	return &Piece{Kind: kind, White: white}
}

// CanMove reports whether moving this piece from start to end is
// legal. A destination occupied by a piece of the mover's own color is
// always illegal; beyond that each variant checks pure geometry on the
// absolute coordinate deltas. Sliding pieces do not check for blockers
// in between, pawns are direction-agnostic single-steppers, and the
// king accepts only orthogonal single steps (dx+dy == 1).
func (p *Piece) CanMove(board *Board, start, end *Spot) bool {
	if end.Piece != nil && end.Piece.White == p.White {
		return false
	}

	dx := abs(start.X - end.X)
	dy := abs(start.Y - end.Y)

	switch p.Kind {
	case King:
		if dx+dy == 1 {
			return true
		}
		return p.isValidCastling(board, start, end)
	case Queen:
		return dx == 0 || dy == 0 || dx == dy
	case Rook:
		return dx == 0 || dy == 0
	case Bishop:
		return dx == dy
	case Knight:
		return dx*dy == 2
	case Pawn:
		return dx == 0 && dy == 1
	}
	return false
}

// isValidCastling always denies. Castling geometry is recognizable
// through IsCastlingMove but never legal to play.
func (p *Piece) isValidCastling(board *Board, start, end *Spot) bool {
	if p.CastlingDone {
		return false
	}
	return false
}

// IsCastlingMove reports whether start to end matches the castling
// geometry for a king: same row, two files over. It only detects the
// shape; legality is decided by CanMove.
func (p *Piece) IsCastlingMove(start, end *Spot) bool {
	return start.Y == end.Y && abs(start.X-end.X) == 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
