//go:debug httpmuxgo121=0

// Command cubeserver exposes the solver and scramble packages over
// HTTP. Handlers are thin and call only solver, scramble, and facelet;
// no algorithmic logic lives here.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/twophase/cube/facelet"
	"github.com/twophase/cube/scramble"
	"github.com/twophase/cube/solver"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /solve/{facelets}", handleSolve)
	mux.HandleFunc("GET /scramble", handleScramble)

	log.Info().Str("addr", *addr).Msg("cubeserver listening")
	if err := http.ListenAndServe(*addr, withRequestLog(mux)); err != nil {
		log.Fatal().Err(err).Msg("cubeserver exited")
	}
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New()
		logger := log.With().Str("request_id", id.String()).Logger()
		ctx := logger.WithContext(r.Context())
		logger.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("request received")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type solveResponse struct {
	Solution string   `json:"solution"`
	Moves    []string `json:"moves"`
	TimeMs   int64    `json:"time_ms"`
}

func handleSolve(w http.ResponseWriter, r *http.Request) {
	facelets := r.PathValue("facelets")
	logger := zerolog.Ctx(r.Context())

	res, err := solver.Solve(facelets)
	if err != nil {
		logger.Warn().Err(err).Str("facelets", facelets).Msg("solve failed")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	names := make([]string, len(res.Moves))
	for i, m := range res.Moves {
		names[i] = m.String()
	}
	writeJSON(w, http.StatusOK, solveResponse{
		Solution: strings.Join(names, " "),
		Moves:    names,
		TimeMs:   res.SolveTime.Milliseconds(),
	})
}

type scrambleResponse struct {
	Facelets string `json:"facelets"`
	Scramble string `json:"scramble"`
}

func handleScramble(w http.ResponseWriter, r *http.Request) {
	c, moves, err := scramble.Generate(0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	writeJSON(w, http.StatusOK, scrambleResponse{
		Facelets: facelet.FromCubie(&c).String(),
		Scramble: strings.Join(names, " "),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
