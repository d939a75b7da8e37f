package generator

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// logPeriod is how often CalculateScore reports progress and flushes the
// output file, mirroring the original generator's 10-second checkpoint.
const logPeriod = 10 * time.Second

// CalculateScore reads newline-separated move sequences from inputPath and
// appends "<sequence> <score>" lines to resultPath, one per playable input
// line; an unplayable line is skipped with a warning and writes nothing. It
// is resumable: lines already present in resultPath are counted and that
// many input lines are skipped, so a killed-and-restarted run picks up
// where it left off when every earlier input line was playable. ctx is
// checked between positions; a cancelled context stops the pass early and
// returns the count scored so far together with ctx.Err().
func CalculateScore(ctx context.Context, s *solver.Solver, inputPath, resultPath string) (int, error) {
	done, err := countLines(resultPath)
	if err != nil {
		return 0, err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(resultPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open result: %w", err)
	}
	defer out.Close()

	scanner := bufio.NewScanner(in)
	for i := 0; i < done; i++ {
		if !scanner.Scan() {
			break
		}
	}

	w := bufio.NewWriter(out)
	start := time.Now()
	nextLog := logPeriod
	count := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			w.Flush()
			return count, err
		}

		seq := scanner.Text()
		p := position.New()
		if n := p.PlaySequence(seq); n != len(seq) {
			log.Warn().Str("sequence", seq).Msg("skipping unplayable sequence")
			continue
		}

		score := s.Solve(p)
		if _, err := fmt.Fprintf(w, "%s %d\n", seq, score); err != nil {
			return count, err
		}
		count++

		if elapsed := time.Since(start); elapsed >= nextLog {
			w.Flush()
			log.Info().Dur("elapsed", elapsed).Int("scored", count).Msg("score pass progress")
			nextLog += logPeriod
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	if err := w.Flush(); err != nil {
		return count, err
	}
	log.Info().Int("scored", count).Int("resumed_from", done).Msg("score pass complete")
	return count, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		if scanner.Text() == "" {
			break
		}
		n++
	}
	return n, scanner.Err()
}
