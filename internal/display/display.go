// Package display renders board state for consoles and state
// payloads. It is a read-only consumer of the engine: uppercase
// glyphs for white pieces, lowercase for black, '.' for empty cells,
// files a-h and ranks 1-8 with rank 8 printed first.
package display

import (
	"strings"
	"unicode"

	"github.com/mwaldren/chessmate-backend/internal/model"
)

// Glyph maps a piece to its single-character board symbol.
func Glyph(p *model.Piece) rune {
	if p == nil {
		return '.'
	}
	var g rune
	switch p.Kind {
	case model.King:
		g = 'K'
	case model.Queen:
		g = 'Q'
	case model.Rook:
		g = 'R'
	case model.Bishop:
		g = 'B'
	case model.Knight:
		g = 'N'
	case model.Pawn:
		g = 'P'
	default:
		g = '?'
	}
	if !p.White {
		g = unicode.ToLower(g)
	}
	return g
}

// Rows returns the board as eight strings of eight glyphs, rank 8
// first. Used by the server state payload.
func Rows(b *model.Board) []string {
	rows := make([]string, 0, 8)
	for x := 7; x >= 0; x-- {
		var sb strings.Builder
		for y := 0; y < 8; y++ {
			spot, err := b.GetBox(x, y)
			if err != nil {
				continue
			}
			sb.WriteRune(Glyph(spot.Piece))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Render formats the full board with file and rank labels.
func Render(b *model.Board) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for i, row := range Rows(b) {
		sb.WriteByte(byte('8' - i))
		for _, g := range row {
			sb.WriteByte(' ')
			sb.WriteRune(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
