package httpd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnope/connect4-engine/internal/httpd"
	"github.com/adnope/connect4-engine/internal/solver"
	"github.com/adnope/connect4-engine/internal/table"
)

func emptyBoard() [][]int {
	board := make([][]int, 6)
	for r := range board {
		board[r] = make([]int, 7)
	}
	return board
}

func allColumns() []int {
	return []int{0, 1, 2, 3, 4, 5, 6}
}

func TestServeHTTPNewGamePlayer1PlaysCentreWithoutSearch(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))
	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         emptyBoard(),
		ValidMoves:    allColumns(),
		CurrentPlayer: 1,
		IsNewGame:     true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpd.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Move, "move is 0-indexed: column 4 of 7 is index 3")
}

func TestServeHTTPRejectsMalformedBody(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeHTTPRejectsGetMethod(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))
	req := httptest.NewRequest(http.MethodGet, "/api/connect4-move", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeHTTPRestrictsMoveToValidMovesList(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))

	board := emptyBoard()
	board[5][3] = 1
	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         board,
		ValidMoves:    []int{0},
		CurrentPlayer: 2,
		IsNewGame:     false,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpd.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Move, "the only column in valid_moves must win over the solver's own ranking")
}

func TestServeHTTPSkipsHiddenLandingCell(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))

	board := emptyBoard()
	board[5][3] = 1
	board[5][0] = -1
	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         board,
		ValidMoves:    []int{0, 1},
		CurrentPlayer: 2,
		IsNewGame:     false,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpd.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Move, "column 0's landing cell is hidden, so it must be skipped for column 1")
}

func TestServeHTTPFallsBackToRandomMoveOnTimeout(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))
	h.Timeout = time.Nanosecond

	board := emptyBoard()
	board[5][3] = 1
	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         board,
		ValidMoves:    allColumns(),
		CurrentPlayer: 2,
		IsNewGame:     false,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpd.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Move >= 0 && resp.Move <= 6)
}

func TestMuxRoutesToHandler(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))
	mux := httpd.Mux(h)

	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         emptyBoard(),
		ValidMoves:    allColumns(),
		CurrentPlayer: 1,
		IsNewGame:     true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeHTTPRespectsCancelledRequestContext(t *testing.T) {
	h := httpd.NewHandler(solver.New(table.New(127)))

	board := emptyBoard()
	board[5][3] = 1
	body, _ := json.Marshal(httpd.MoveRequest{
		Board:         board,
		ValidMoves:    allColumns(),
		CurrentPlayer: 2,
		IsNewGame:     false,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/connect4-move", bytes.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpd.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Move >= 0 && resp.Move <= 6)
}
