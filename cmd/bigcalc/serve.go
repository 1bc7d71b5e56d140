package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zephyrtronium/bigcalc"
)

// server answers calculation requests over HTTP.
type server struct {
	log    *zap.Logger
	prec   uint
	origin string
	// max is the longest expression accepted, in bytes. Zero means no limit.
	max int
}

type request struct {
	Expression string `json:"expression"`
}

type response struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/calculate", s.calculate)
	return s.cors(mux)
}

// cors adds cross-origin headers to every response and answers preflight
// requests.
func (s *server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.origin)
		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) calculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		s.reply(w, http.StatusMethodNotAllowed, response{Error: "method " + r.Method + " not allowed"})
		return
	}
	var req request
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		// An empty body is an empty expression.
	default:
		s.log.Debug("bad request body", zap.Error(err))
		s.reply(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}
	if s.max > 0 && len(req.Expression) > s.max {
		s.log.Info("expression too long", zap.Int("len", len(req.Expression)))
		s.reply(w, http.StatusBadRequest, response{Error: "expression longer than " + strconv.Itoa(s.max) + " bytes"})
		return
	}
	res, err := bigcalc.EvalString(req.Expression, bigcalc.Prec(s.prec))
	if err != nil {
		s.log.Info("evaluation failed",
			zap.Int("len", len(req.Expression)),
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		s.reply(w, http.StatusBadRequest, response{Error: err.Error()})
		return
	}
	s.log.Info("evaluated",
		zap.Int("len", len(req.Expression)),
		zap.Int("result_len", len(res)),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.reply(w, http.StatusOK, response{Result: res})
}

func (s *server) reply(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warn("writing response", zap.Error(err))
	}
}
