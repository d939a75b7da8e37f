package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// hardMoveThreshold is the search-time cutoff above which a position is
// logged as a hard move for the warmup generator to later expand.
const hardMoveThreshold = 2 * time.Second

// restartPly is how deep a self-play game runs before it restarts from the
// opening sequence, keeping training focused on the midgame.
const restartPly = 15

// openingSequence seeds every training game, the way the original trainer
// always restarts from five centre-column moves.
const openingSequence = "44444"

// runTrain plays the engine against itself indefinitely, logging any
// position (sequence) whose best-move search took longer than
// hardMoveThreshold to outPath, deduplicated as it goes.
func runTrain(s *solver.Solver, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create hard-move log: %w", err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	seq := openingSequence
	p := position.New()
	if n := p.PlaySequence(seq); n != len(seq) {
		return fmt.Errorf("opening sequence %q is not legal", seq)
	}

	for {
		if p.Moves() >= restartPly {
			seq = openingSequence
			p = position.New()
			p.PlaySequence(seq)
		}

		start := time.Now()
		move := s.FindBestMove(p)
		elapsed := time.Since(start)

		if elapsed >= hardMoveThreshold && !seen[seq] {
			seen[seq] = true
			fmt.Fprintln(f, seq)
			f.Sync()
			log.Info().Str("sequence", seq).Dur("elapsed", elapsed).Msg("hard move found")
		}

		log.Debug().Str("sequence", seq).Int("move", move+1).Dur("elapsed", elapsed).Msg("move played")
		p.PlayCol(move)
		seq += strconv.Itoa(move + 1)
	}
}
