package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/httpd"
	"github.com/adnope/connect4-engine/internal/solver"
)

// runWeb serves the HTTP move API at addr until the process is killed.
func runWeb(s *solver.Solver, addr string, timeout time.Duration) error {
	h := httpd.NewHandler(s)
	if timeout > 0 {
		h.Timeout = timeout
	}

	log.Info().Str("addr", addr).Msg("server starting")
	return http.ListenAndServe(addr, httpd.Mux(h))
}
