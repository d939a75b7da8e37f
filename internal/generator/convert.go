package generator

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/book"
	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/table"
)

// ConvertToBinary reads "<sequence> <score>" lines from inputPath, replays
// each sequence to recover its Key3, and writes the result through
// internal/book's binary encoder to outputPath. Malformed lines are skipped
// with a warning rather than aborting the whole conversion.
func ConvertToBinary(inputPath, outputPath string) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	// ConvertToBinary only ever calls PutOpening/Opening, so the lossy memo
	// array this table also carries is never touched; size it minimally.
	t := table.New(1)
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Warn().Int("line", lineNo).Str("text", line).Msg("skipping malformed line")
			continue
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Warn().Int("line", lineNo).Str("text", line).Msg("skipping unparsable score")
			continue
		}

		p := position.New()
		if n := p.PlaySequence(fields[0]); n != len(fields[0]) {
			log.Warn().Int("line", lineNo).Str("sequence", fields[0]).Msg("skipping unplayable sequence")
			continue
		}
		t.PutOpening(p.Key3(), uint8(score-position.MinScore+1))
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return book.Save(outputPath, t)
}
