package model

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by GetBox for any coordinate outside [0,7].
var ErrOutOfRange = errors.New("coordinates out of range")

// Spot is a single board cell. It holds at most one piece; an empty
// cell has a nil Piece. Spots are owned by the Board and addressed by
// their (X, Y) coordinates, X being the rank index (0 = white back
// rank) and Y the file index.
type Spot struct {
	X     int
	Y     int
	Piece *Piece
}

// Board is the 8x8 grid of spots.
type Board struct {
	boxes [8][8]*Spot
}

func NewBoard() *Board {
	b := &Board{}
	b.ResetBoard()
	return b
}

// GetBox returns the spot at (x, y), or ErrOutOfRange when either
// coordinate falls outside the board.
func (b *Board) GetBox(x, y int) (*Spot, error) {
	if x < 0 || x > 7 || y < 0 || y > 7 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	return b.boxes[x][y], nil
}

// ResetBoard rebuilds all 64 spots to the standard starting layout.
// Spots are replaced wholesale, so Spot pointers handed out earlier no
// longer belong to the board. Resetting mid-game orphans the recorded
// move history from the live board; Game only resets from Initialize.
func (b *Board) ResetBoard() {
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for y, kind := range backRank {
		b.boxes[0][y] = &Spot{X: 0, Y: y, Piece: NewPiece(kind, true)}
		b.boxes[7][y] = &Spot{X: 7, Y: y, Piece: NewPiece(kind, false)}
	}
	for y := 0; y < 8; y++ {
		b.boxes[1][y] = &Spot{X: 1, Y: y, Piece: NewPiece(Pawn, true)}
		b.boxes[6][y] = &Spot{X: 6, Y: y, Piece: NewPiece(Pawn, false)}
	}
	for x := 2; x < 6; x++ {
		for y := 0; y < 8; y++ {
			b.boxes[x][y] = &Spot{X: x, Y: y}
		}
	}
}
