// Command demo plays a scripted opening between two local players and
// prints the board after every attempt. Several of the scripted moves
// are rejected by the simplified movement rules; the ok flag shows
// which ones.
package main

import (
	"fmt"
	"log"

	"github.com/mwaldren/chessmate-backend/internal/display"
	"github.com/mwaldren/chessmate-backend/internal/model"
)

func main() {
	white := &model.Player{ID: "white", White: true, Human: true}
	black := &model.Player{ID: "black", White: false, Human: true}

	game := model.NewGame()
	if err := game.Initialize(white, black); err != nil {
		log.Fatal(err)
	}

	script := []struct {
		player *model.Player
		label  string
		coords [4]int
	}{
		{white, "white pawn e2-e4", [4]int{1, 4, 3, 4}},
		{black, "black pawn e7-e5", [4]int{6, 4, 4, 4}},
		{white, "white knight g1-f3", [4]int{0, 6, 2, 5}},
		{black, "black knight g8-f6", [4]int{7, 6, 5, 5}},
		{white, "white bishop f1-e2", [4]int{0, 5, 1, 4}},
		{black, "black knight b8-c6", [4]int{7, 1, 5, 2}},
		{white, "white queen d1-h5", [4]int{0, 3, 4, 7}},
		{black, "black pawn g7-g6", [4]int{6, 6, 5, 6}},
		{white, "white queen h5xg6", [4]int{4, 7, 5, 6}},
	}

	fmt.Println(display.Render(game.Board()))
	for _, step := range script {
		ok := game.PlayerMove(step.player, step.coords[0], step.coords[1], step.coords[2], step.coords[3])
		fmt.Printf("%s: ok=%v\n", step.label, ok)
		fmt.Println(display.Render(game.Board()))
		if game.IsEnd() {
			break
		}
	}
	fmt.Printf("status: %s, moves played: %d\n", game.GetStatus(), len(game.MovesPlayed()))
}
