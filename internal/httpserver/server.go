// internal/httpserver/server.go
//
// HTTP server wiring for the make10 backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     zerolog access log).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, GET /game/{id}, POST /game/submit,
//     POST /game/hint.
//   - Daily board: mounted under /daily (routes_daily.go).
//   - Formula tools: mounted under /formula (routes_formula.go).
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled.
//   - Submissions go through store.Update, so two requests never regenerate
//     the same board concurrently.
//   - There is no auth: a game ID is the only handle on a session.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/formula"
	"github.com/robalobadob/make10/internal/game"
	"github.com/robalobadob/make10/internal/store"
)

// Server bundles router and in-memory game store.
type Server struct {
	r         *chi.Mux
	store     store.Store
	newSource func() board.DigitSource // board source for /game/new
	now       func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		store:     st,
		newSource: func() board.DigitSource { return board.CryptoSource{} },
		now:       time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"make10-go","endpoints":["/health","POST /game/new","POST /game/submit","POST /game/hint","POST /daily/new","/formula/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Post("/game/submit", s.handleSubmit)
	s.r.Post("/game/hint", s.handleHint)

	// Daily board
	s.mountDaily(s.r)

	// Stateless formula tools
	s.mountFormula(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one structured line per request.
func accessLog(r *http.Request, status, size int, dur time.Duration) {
	lvl := zerolog.InfoLevel
	if status >= http.StatusInternalServerError {
		lvl = zerolog.WarnLevel
	}
	hlog.FromRequest(r).WithLevel(lvl).
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("bytes", size).
		Dur("dur", dur).
		Msg("http")
}

// ------------------------------ GAME ---------------------------------------

// gameRes is the public view of a session.
type gameRes struct {
	GameID      string                      `json:"gameId"`
	Board       [board.Side][board.Side]int `json:"board"`
	Version     int                         `json:"version"`
	Score       int                         `json:"score"`
	Submissions int                         `json:"submissions"`
	Cleared     []string                    `json:"cleared"`
	Date        string                      `json:"date,omitempty"` // daily games only
}

func toGameRes(st game.State) gameRes {
	cleared := st.Cleared
	if cleared == nil {
		cleared = []string{}
	}
	return gameRes{
		GameID:      st.ID,
		Board:       st.Board.Rows(),
		Version:     st.Version,
		Score:       st.Score,
		Submissions: st.Submissions,
		Cleared:     cleared,
	}
}

// handleNewGame creates a new in-memory game with a random board.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := game.New(s.newSource())
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	hlog.FromRequest(r).Debug().Str("gameId", g.ID).Msg("game created")
	writeJSON(w, http.StatusOK, toGameRes(g.Snapshot()))
}

// handleGetGame returns the current board and score.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, toGameRes(g.Snapshot()))
}

// submitReq/Res payloads for POST /game/submit.
type submitReq struct {
	GameID  string `json:"gameId"`
	Formula string `json:"formula"`
}
type submitRes struct {
	Result  formula.Outcome             `json:"result"` // "10" | "Not 10" | "Not an integer" | "Invalid input"
	Input   string                      `json:"input"`  // "" once consumed
	Area    string                      `json:"area,omitempty"`
	Board   [board.Side][board.Side]int `json:"board"`
	Version int                         `json:"version"`
	Score   int                         `json:"score"`
}

// handleSubmit judges a formula and clears a matching area, if any.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res submitRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		sub, err := g.Submit(req.Formula)
		if err != nil {
			return err
		}
		res = submitRes{
			Result:  sub.Outcome,
			Input:   sub.Input,
			Area:    sub.Area,
			Board:   sub.Board.Rows(),
			Version: sub.Version,
			Score:   g.Snapshot().Score,
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", req.GameID).Msg("submit")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// hintReq/Res payloads for POST /game/hint.
type hintReq struct {
	GameID string `json:"gameId"`
}
type hintRes struct {
	Found   bool   `json:"found"`
	Area    string `json:"area,omitempty"`
	Formula string `json:"formula,omitempty"`
}

// handleHint suggests an area that can be cleared and a formula for it.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	h, ok := g.Hint()
	writeJSON(w, http.StatusOK, hintRes{Found: ok, Area: h.Area, Formula: h.Formula})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError sends {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
