// Package httpd exposes the solver over a single HTTP endpoint.
package httpd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/position"
	"github.com/adnope/connect4-engine/internal/solver"
)

// DefaultTimeout bounds how long a request waits for a search before
// falling back to a random legal move. The search itself cannot be
// interrupted mid-recursion (spec.md §5), so the worker goroutine is left
// to finish in the background; the handler only stops waiting for it.
const DefaultTimeout = 7 * time.Second

// Handler serves POST /api/connect4-move against a shared Solver.
type Handler struct {
	Solver  *solver.Solver
	Timeout time.Duration
}

// NewHandler returns a Handler with DefaultTimeout.
func NewHandler(s *solver.Solver) *Handler {
	return &Handler{Solver: s, Timeout: DefaultTimeout}
}

// ServeHTTP implements http.Handler. It answers only POST: any other method
// gets 405 here, and paths other than /api/connect4-move get 404 from the
// mux returned by Mux.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	log.Info().
		Ints("valid_moves", req.ValidMoves).
		Int("current_player", req.CurrentPlayer).
		Bool("is_new_game", req.IsNewGame).
		Msg("new move request")

	start := time.Now()
	move, err := h.findMove(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	log.Info().Int("move", move).Dur("elapsed", time.Since(start)).Msg("move found")
	writeJSON(w, http.StatusOK, MoveResponse{Move: move})
}

// findMove returns a 0-indexed column, matching the request's valid_moves
// convention. The opening special-case (empty board, player 1 to move) is
// answered without a search, the way the original handler short-circuits
// before constructing a Position.
func (h *Handler) findMove(ctx context.Context, req MoveRequest) (int, error) {
	if req.IsNewGame && req.CurrentPlayer == 1 {
		return position.Width / 2, nil
	}

	p, err := position.FromBoard(req.Board)
	if err != nil {
		return 0, err
	}

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	searchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := make(chan [][]int, 1)
	go func() {
		result <- h.Solver.AnalyzeWithContext(searchCtx, p)
	}()

	select {
	case groups := <-result:
		return h.pickMove(p, groups, req.ValidMoves)
	case <-searchCtx.Done():
		log.Warn().Msg("search timed out, falling back to random move")
		return h.randomValidMove(p, req.ValidMoves)
	}
}

// pickMove walks groups (best-to-worst, as returned by Solver.Analyze) and
// returns the first column that is both caller-approved and does not land
// on a hidden cell. If none qualifies it falls back to a uniformly random
// caller-approved column, mirroring RequestHandler::GetMoveFromSolver.
func (h *Handler) pickMove(p position.Position, groups [][]int, validMoves []int) (int, error) {
	for _, group := range groups {
		for _, col := range group {
			if isValidMove(col, validMoves) && !p.OverlapsHidden(col) {
				return col, nil
			}
		}
		log.Debug().Msg("best move group invalid, trying next group")
	}
	return h.randomValidMove(p, validMoves)
}

// randomValidMove picks uniformly among the playable caller-approved columns
// (every playable column when validMoves is empty), preferring those whose
// landing cell is not hidden. It draws from math/rand rather than the
// Solver's generator so it never waits on the solver lock held by a search
// still running in the background.
func (h *Handler) randomValidMove(p position.Position, validMoves []int) (int, error) {
	var legal, open []int
	for col := 0; col < position.Width; col++ {
		if p.CanPlay(col) && (len(validMoves) == 0 || isValidMove(col, validMoves)) {
			legal = append(legal, col)
			if !p.OverlapsHidden(col) {
				open = append(open, col)
			}
		}
	}
	if len(open) > 0 {
		legal = open
	}
	if len(legal) == 0 {
		return 0, fmt.Errorf("no legal move available")
	}
	return legal[rand.Intn(len(legal))], nil
}

func isValidMove(col int, validMoves []int) bool {
	for _, v := range validMoves {
		if v == col {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// Mux returns an http.ServeMux with h registered at its route.
func Mux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/connect4-move", h)
	return mux
}
