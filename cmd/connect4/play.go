package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adnope/connect4-engine/internal/boardio"
	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// runPlay runs an interactive game: the human picks a side, then the two
// sides alternate moves until someone wins or the board fills.
func runPlay(s *solver.Solver) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Choose your side:\n[1]: first player\n[2]: second player\nEnter your choice: ")
	choice, err := readInt(reader)
	if err != nil {
		return err
	}

	p := position.New()
	seq := ""
	humanIsFirst := choice != 2
	if !humanIsFirst {
		move := s.FindBestMove(p)
		p.PlayCol(move)
		seq += strconv.Itoa(move + 1)
	}

	fmt.Println("The game has started!")
	for {
		board, _ := boardio.ToBoard(seq)
		fmt.Println(boardio.Render(board))

		fmt.Print("Enter your move: column: ")
		col, err := readInt(reader)
		if err != nil {
			return err
		}
		col--
		if col < 0 || col >= position.Width || !p.CanPlay(col) {
			fmt.Println("Invalid move")
			continue
		}

		if p.IsWinningMove(col) {
			seq += strconv.Itoa(col + 1)
			board, _ := boardio.ToBoard(seq)
			fmt.Println(boardio.Render(board))
			fmt.Println("You win!")
			return nil
		}
		p.PlayCol(col)
		seq += strconv.Itoa(col + 1)

		if p.Moves() == position.Width*position.Height {
			board, _ := boardio.ToBoard(seq)
			fmt.Println(boardio.Render(board))
			fmt.Println("It's a draw!")
			return nil
		}

		aiMove := s.FindBestMove(p)
		if p.IsWinningMove(aiMove) {
			seq += strconv.Itoa(aiMove + 1)
			board, _ := boardio.ToBoard(seq)
			fmt.Println(boardio.Render(board))
			fmt.Println("You lose!")
			return nil
		}
		p.PlayCol(aiMove)
		seq += strconv.Itoa(aiMove + 1)
		fmt.Printf("Bot has played: column %d\n", aiMove+1)

		if p.Moves() == position.Width*position.Height {
			board, _ := boardio.ToBoard(seq)
			fmt.Println(boardio.Render(board))
			fmt.Println("It's a draw!")
			return nil
		}
	}
}

func readInt(r *bufio.Reader) (int, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}
