package main

import (
	"fmt"
	"strconv"

	"github.com/adnope/connect4-engine/internal/boardio"
	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// runBotGame plays the engine against itself to completion, printing the
// board after every move.
func runBotGame(s *solver.Solver) error {
	p := position.New()
	seq := ""

	for {
		if !anyColumnPlayable(p) {
			fmt.Println("Draw!")
			return nil
		}

		move := s.FindBestMove(p)
		if p.IsWinningMove(move) {
			seq += strconv.Itoa(move + 1)
			board, _ := boardio.ToBoard(seq)
			fmt.Println(boardio.Render(board))
			fmt.Printf("Player %d wins!\n", p.Moves()%2+1)
			return nil
		}
		p.PlayCol(move)
		seq += strconv.Itoa(move + 1)

		board, _ := boardio.ToBoard(seq)
		fmt.Println(boardio.Render(board))
		fmt.Printf("Played column %d\n", move+1)
	}
}

func anyColumnPlayable(p position.Position) bool {
	for col := 0; col < position.Width; col++ {
		if p.CanPlay(col) {
			return true
		}
	}
	return false
}
