package generator

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// Warmup reads hard-position move sequences from inputPath (one per line,
// deduplicated first), expands each into its legal one-ply children, scores
// every child, and appends "<child sequence> <score>" lines to bookPath. The
// resulting file is deduplicated again before returning, since overlapping
// hard positions produce overlapping children.
func Warmup(s *solver.Solver, inputPath, bookPath string) (int, error) {
	if err := dedupeLines(inputPath); err != nil {
		return 0, err
	}

	lines, err := readLines(inputPath)
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(bookPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open warmup book: %w", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	count := 0
	for i, seq := range lines {
		p := position.New()
		if n := p.PlaySequence(seq); n != len(seq) {
			log.Warn().Str("sequence", seq).Msg("skipping unplayable hard position")
			continue
		}
		for col := 0; col < position.Width; col++ {
			if !p.CanPlay(col) {
				continue
			}
			child := p
			child.PlayCol(col)
			score := s.Solve(child)
			if _, err := fmt.Fprintf(w, "%s%d %d\n", seq, col+1, score); err != nil {
				return count, err
			}
			count++
		}
		if err := w.Flush(); err != nil {
			return count, err
		}
		log.Info().Int("line", i+1).Int("total", len(lines)).Msg("warmup line processed")
	}

	if err := dedupeLines(bookPath); err != nil {
		return count, err
	}
	return count, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// dedupeLines rewrites path keeping only the first occurrence of each line,
// preserving order, using lo.Uniq the way other_examples' collection-heavy
// Go services deduplicate slices instead of hand-rolling a seen-set loop.
func dedupeLines(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if lines == nil {
		return nil
	}

	unique := lo.Uniq(lines)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range unique {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
