// Package book persists and restores the opening book: a set of
// (Key3 -> score-byte) mappings stored as a flat binary file.
package book

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/table"
)

// recordSize is the fixed on-disk record: 7 little-endian key bytes
// followed by 1 value byte. No header, no length, no checksum; EOF
// terminates the file.
const recordSize = 8

// ErrBookUnavailable wraps a non-transient book I/O failure (file missing,
// permission denied). The caller should log it and continue with whatever
// loaded successfully; it must never propagate into the solver.
type ErrBookUnavailable struct {
	Path string
	Err  error
}

func (e ErrBookUnavailable) Error() string {
	return fmt.Sprintf("opening book %q unavailable: %v", e.Path, e.Err)
}

func (e ErrBookUnavailable) Unwrap() error { return e.Err }

// retryableOpen opens path, retrying a handful of times with short backoff
// to ride out a transient failure (e.g. a concurrent writer briefly holding
// an exclusive lock while regenerating the book). A file that simply does
// not exist fails every attempt and is reported as ErrBookUnavailable.
func retryableOpen(path string, flag int, perm os.FileMode) (*os.File, error) {
	var f *os.File
	err := retry.Do(
		func() error {
			var openErr error
			f, openErr = os.OpenFile(path, flag, perm)
			return openErr
		},
		retry.Attempts(3),
		retry.Delay(20*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, ErrBookUnavailable{Path: path, Err: err}
	}
	return f, nil
}

// Load reads 8-byte records from path until EOF and installs each as a
// never-evicted opening entry in t. The format carries no schema: the
// reader trusts the producer agreed on the board dimensions and Key3
// encoding. A load failure is non-fatal: the caller continues with
// whatever was loaded successfully before the error.
func Load(path string, t *table.Table) (int, error) {
	f, err := retryableOpen(path, os.O_RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	buf := make([]byte, recordSize)
	count := 0
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return count, ErrBookUnavailable{Path: path, Err: err}
		}
		var key uint64
		for i := 0; i < 7; i++ {
			key |= uint64(buf[i]) << (8 * i)
		}
		value := buf[7]
		t.PutOpening(key, value)
		count++
	}
	log.Debug().Str("path", path).Int("entries", count).Msg("opening book loaded")
	return count, nil
}

// LoadWarmup reads "<sequence> <score>" text lines from path and installs
// each into t's lossy memoization array via Put, not PutOpening: warmup
// entries pre-seed the volatile search cache with positions a training
// session found expensive, they are not permanent opening-book facts and
// may be evicted by later search writes like any other memo entry.
func LoadWarmup(path string, t *table.Table) (int, error) {
	f, err := retryableOpen(path, os.O_RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	count := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		p := position.New()
		if n := p.PlaySequence(fields[0]); n != len(fields[0]) {
			continue
		}
		t.Put(p.Key3(), uint8(score-position.MinScore+1))
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, ErrBookUnavailable{Path: path, Err: err}
	}
	log.Debug().Str("path", path).Int("entries", count).Msg("warmup book loaded")
	return count, nil
}

// Save iterates the opening entries already installed in t and writes each
// as a 7-byte little-endian key followed by the value byte.
func Save(path string, t *table.Table) (int, error) {
	f, err := retryableOpen(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, recordSize)
	count := 0
	for key, value := range t.Opening() {
		binary.LittleEndian.PutUint64(buf, key) // low 7 bytes are written, byte 7 below is overwritten
		buf[7] = value
		if _, err := w.Write(buf[:recordSize]); err != nil {
			return count, ErrBookUnavailable{Path: path, Err: err}
		}
		count++
	}
	if err := w.Flush(); err != nil {
		return count, ErrBookUnavailable{Path: path, Err: err}
	}
	log.Debug().Str("path", path).Int("entries", count).Msg("opening book saved")
	return count, nil
}
