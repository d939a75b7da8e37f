// Package boardio converts between the three board representations the
// rest of the engine works with: move-sequence strings, JSON board grids
// (rows top-to-bottom, -1/0/1/2 cells), and an ASCII rendering for the CLI.
package boardio

import (
	"fmt"
	"strings"

	"github.com/adnope/connect4-engine/internal/position"
)

// ToBoard replays seq (1-indexed column digits) and renders the resulting
// position as a 6x7 grid: 0 empty, 1/2 the two players, top row first.
// An invalid digit or a move into a full column at index i returns an error
// naming i. Winning moves are not checked, so a sequence ending in the
// winning move renders normally.
func ToBoard(seq string) ([][]int, error) {
	board := make([][]int, position.Height)
	for r := range board {
		board[r] = make([]int, position.Width)
	}

	player := 1
	for i, c := range seq {
		if c < '1' || int(c-'1') >= position.Width {
			return nil, fmt.Errorf("move %d: invalid column %q", i, c)
		}
		col := int(c - '1')

		row := -1
		for r := position.Height - 1; r >= 0; r-- {
			if board[r][col] == 0 {
				row = r
				break
			}
		}
		if row < 0 {
			return nil, fmt.Errorf("move %d: column %d is full", i, col)
		}
		board[row][col] = player
		player = 3 - player
	}
	return board, nil
}

// IsGravityValid reports whether every occupied cell in board has either
// the bottom row or another occupied cell directly beneath it: no piece
// floats above an empty cell.
func IsGravityValid(board [][]int) bool {
	for col := 0; col < position.Width; col++ {
		for row := position.Height - 2; row >= 0; row-- {
			if board[row][col] != 0 && board[row+1][col] == 0 {
				return false
			}
		}
	}
	return true
}

// SequenceFromBoard recovers a move-sequence string that produces board, by
// depth-first search trying both starting players. It returns ok=false if
// board fails gravity validation or no ordering of moves reproduces it
// (e.g. piece counts between the two players differ by more than one).
func SequenceFromBoard(board [][]int) (seq string, ok bool) {
	if !IsGravityValid(board) {
		return "", false
	}

	pieces := 0
	for _, row := range board {
		for _, v := range row {
			if v != 0 {
				pieces++
			}
		}
	}

	for _, first := range []int{1, 2} {
		current := make([][]int, position.Height)
		for r := range current {
			current[r] = make([]int, position.Width)
		}
		var moves []int
		if dfsReplay(board, current, &moves, first, pieces) {
			var b strings.Builder
			for _, col := range moves {
				fmt.Fprintf(&b, "%d", col+1)
			}
			return b.String(), true
		}
	}
	return "", false
}

func dfsReplay(target, current [][]int, moves *[]int, player, remaining int) bool {
	if remaining == 0 {
		return boardsEqual(current, target)
	}
	for col := 0; col < position.Width; col++ {
		row := -1
		for r := position.Height - 1; r >= 0; r-- {
			if current[r][col] == 0 {
				row = r
				break
			}
		}
		if row < 0 || target[row][col] != player {
			continue
		}
		current[row][col] = player
		*moves = append(*moves, col)

		if dfsReplay(target, current, moves, 3-player, remaining-1) {
			return true
		}

		current[row][col] = 0
		*moves = (*moves)[:len(*moves)-1]
	}
	return false
}

func boardsEqual(a, b [][]int) bool {
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

// Render draws board as the CLI's ASCII grid: one '|x|o|.|'-style row per
// board row, top to bottom, followed by a column index footer. 1 renders
// as 'x', 2 as 'o', 0 (and -1, hidden) as '.'.
func Render(board [][]int) string {
	var b strings.Builder
	for _, row := range board {
		b.WriteByte('|')
		for _, v := range row {
			switch v {
			case 1:
				b.WriteByte('x')
			case 2:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	for c := 1; c <= position.Width; c++ {
		fmt.Fprintf(&b, "%d ", c)
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderSequence is a convenience wrapper combining ToBoard and Render for
// the CLI's interactive play mode.
func RenderSequence(seq string) (string, error) {
	board, err := ToBoard(seq)
	if err != nil {
		return "", err
	}
	return Render(board), nil
}
