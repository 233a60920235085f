package model

// Player is a passive role tag: which side it plays and whether a
// human is behind it. It carries no behavior of its own.
type Player struct {
	ID    string
	White bool
	Human bool
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (p *Player) Color() PlayerColor {
	if p.White {
		return PlayerColorWhite
	}
	return PlayerColorBlack
}
