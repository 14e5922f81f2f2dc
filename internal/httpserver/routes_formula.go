// internal/httpserver/routes_formula.go
//
// Stateless formula tools mounted under /formula:
//   - POST /formula/check   → judge an infix or postfix formula
//   - POST /formula/convert → infix → postfix (and back), or postfix → infix
//   - POST /formula/solve   → find a formula that makes 10 from four digits

package httpserver

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/make10/internal/formula"
)

// mountFormula registers all /formula routes.
func (s *Server) mountFormula(r chi.Router) {
	r.Route("/formula", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Post("/convert", s.handleConvert)
		r.Post("/solve", s.handleSolve)
	})
}

type checkReq struct {
	Formula string `json:"formula"`
	Form    string `json:"form"` // "infix" (default) | "postfix"
}
type checkRes struct {
	Input   string          `json:"input"`
	Postfix string          `json:"postfix,omitempty"`
	Infix   string          `json:"infix,omitempty"`
	Value   *float64        `json:"value,omitempty"` // omitted when not finite
	Result  formula.Outcome `json:"result"`
	Error   string          `json:"error,omitempty"`
}

// handleCheck runs the full judge pipeline on one formula.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var rep formula.Report
	switch req.Form {
	case "", "infix":
		rep = formula.Analyze(req.Formula)
	case "postfix":
		rep = formula.AnalyzePostfix(req.Formula)
	default:
		writeError(w, http.StatusBadRequest, "bad_form")
		return
	}

	res := checkRes{Input: rep.Input, Postfix: rep.Postfix, Result: rep.Outcome}
	if rep.Postfix != "" {
		res.Infix = formula.ToInfix(rep.Postfix)
	}
	if rep.Err == nil && !math.IsNaN(rep.Value) && !math.IsInf(rep.Value, 0) {
		v := rep.Value
		res.Value = &v
	}
	if rep.Err != nil {
		res.Error = rep.Err.Error()
	}
	writeJSON(w, http.StatusOK, res)
}

type convertReq struct {
	Infix   string `json:"infix"`
	Postfix string `json:"postfix"`
}
type convertRes struct {
	Postfix string `json:"postfix"`
	Infix   string `json:"infix"`
}

// handleConvert translates between notations. With "infix" set the
// response carries the postfix form and its canonical re-printing.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	switch {
	case req.Infix != "":
		p, err := formula.ToPostfix(req.Infix)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parse_error", "detail": err.Error()})
			return
		}
		out := p.String()
		res := convertRes{Postfix: out}
		if len(out) == len(p) {
			// printing re-tokenizes per character, so only single-digit operands survive
			res.Infix = formula.ToInfix(out)
		}
		writeJSON(w, http.StatusOK, res)
	case req.Postfix != "":
		in := formula.ToInfix(req.Postfix)
		if in == "" {
			writeError(w, http.StatusBadRequest, "malformed_postfix")
			return
		}
		writeJSON(w, http.StatusOK, convertRes{Postfix: req.Postfix, Infix: in})
	default:
		writeError(w, http.StatusBadRequest, "empty_formula")
	}
}

type solveReq struct {
	Digits []int `json:"digits"`
}
type solveRes struct {
	Solvable bool   `json:"solvable"`
	Postfix  string `json:"postfix,omitempty"`
	Infix    string `json:"infix,omitempty"`
	Count    int    `json:"count"`
}

// handleSolve brute-forces every formula shape for four digits.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Digits) != formula.Operands {
		writeError(w, http.StatusBadRequest, "need_four_digits")
		return
	}
	var d [formula.Operands]int
	for i, v := range req.Digits {
		if v < 1 || v > 9 {
			writeError(w, http.StatusBadRequest, "digit_out_of_range")
			return
		}
		d[i] = v
	}

	all := formula.Solutions(d)
	res := solveRes{Solvable: len(all) > 0, Count: len(all)}
	if len(all) > 0 {
		res.Postfix = all[0]
		res.Infix = formula.ToInfix(all[0])
	}
	writeJSON(w, http.StatusOK, res)
}
