package model

// Move records one proposed or applied relocation. It snapshots the
// pre-move state at construction and is immutable afterwards, except
// for the castling flag which Game sets once during application.
type Move struct {
	Player       *Player
	Start        *Spot
	End          *Spot
	PieceMoved   *Piece
	PieceKilled  *Piece
	castlingMove bool
}

func NewMove(player *Player, start, end *Spot) *Move {
	return &Move{
		Player:     player,
		Start:      start,
		End:        end,
		PieceMoved:  start.Piece,
		PieceKilled: end.Piece,
	}
}

func (m *Move) IsCastlingMove() bool {
	return m.castlingMove
}

func (m *Move) setCastlingMove(castling bool) {
	m.castlingMove = castling
}
