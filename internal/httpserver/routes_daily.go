// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Board" mode.
// Exposes one endpoint under /daily:
//   - POST /daily/new → start a game on today's board (or the board of an
//     explicit {"date":"YYYY-MM-DD"})
//
// Every game started for the same date draws the same opening board and,
// as long as players clear areas in the same order, the same regenerated
// digits. Digits are derived from HMAC(DAILY_SALT, date).

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/make10/internal/daily"
	"github.com/robalobadob/make10/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv  *Server
	salt string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:  s,
		salt: getEnv("DAILY_SALT", "local_dev_salt"),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
	})
}

type dailyNewReq struct {
	Date string `json:"date"` // optional, YYYY-MM-DD
}

// handleNew starts a game seeded from the requested (or current) date.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	day := d.srv.now().UTC()
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		day = t
	}

	g := game.New(daily.Source(day, d.salt))
	if err := d.srv.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save daily game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	res := toGameRes(g.Snapshot())
	res.Date = daily.DateKey(day)
	hlog.FromRequest(r).Debug().Str("gameId", g.ID).Str("date", res.Date).Msg("daily game created")
	writeJSON(w, http.StatusOK, res)
}
