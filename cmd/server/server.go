package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/napolitain/solver-idle/internal/models"
	"github.com/napolitain/solver-idle/internal/solver"
	"github.com/napolitain/solver-idle/internal/solver/bubba"
	"github.com/napolitain/solver-idle/internal/solver/orion"
)

const maxBodyBytes = 1 << 20

// analyzer turns a raw state payload into a full analysis
type analyzer func(body []byte) (*analyzeResponse, error)

// server answers analysis requests for every economy
type server struct {
	log       *slog.Logger
	group     singleflight.Group
	analyzers map[string]analyzer
}

func newServer(logger *slog.Logger) *server {
	return &server{
		log: logger,
		analyzers: map[string]analyzer{
			bubba.Economy: analyzeBubba,
			orion.Economy: analyzeOrion,
		},
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/{economy}/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/{economy}/next", s.handleNext)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// number encodes non-finite values as null
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type upgradeJSON struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Cost        number `json:"cost"`
	TimeSaved   number `json:"time_saved"`
	Efficiency  number `json:"efficiency"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Excluded    bool   `json:"excluded"`
}

type targetJSON struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Cost  number `json:"cost"`
}

type planJSON struct {
	Steps     []int  `json:"steps"`
	TotalCost number `json:"total_cost"`
}

type analyzeResponse struct {
	Economy      string        `json:"economy"`
	Generation   number        `json:"generation"`
	Target       targetJSON    `json:"target"`
	TimeToTarget number        `json:"time_to_target"`
	Best         int           `json:"best"`
	Upgrades     []upgradeJSON `json:"upgrades"`
	Lookahead    *planJSON     `json:"lookahead,omitempty"`
}

type nextResponse struct {
	Best int    `json:"best"`
	Name string `json:"name,omitempty"`
	Cost number `json:"cost,omitempty"`
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleNext(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.analyze(w, r)
	if !ok {
		return
	}
	next := nextResponse{Best: resp.Best}
	if resp.Best != solver.NoRecommendation {
		next.Name = resp.Upgrades[resp.Best].Name
		next.Cost = resp.Upgrades[resp.Best].Cost
	}
	writeJSON(w, http.StatusOK, next)
}

// analyze runs the economy's analyzer, coalescing identical in-flight
// requests. It writes the error response itself and reports success.
func (s *server) analyze(w http.ResponseWriter, r *http.Request) (*analyzeResponse, bool) {
	economy := r.PathValue("economy")
	run, ok := s.analyzers[economy]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown economy %q", economy))
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return nil, false
	}

	start := time.Now()
	result, err, shared := s.group.Do(economy+":"+string(body), func() (any, error) {
		return run(body)
	})
	if err != nil {
		s.log.Warn("rejected state", "economy", economy, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	resp := result.(*analyzeResponse)
	s.log.Info("analyzed",
		"economy", economy,
		"best", resp.Best,
		"shared", shared,
		"duration", time.Since(start))
	return resp, true
}

func analyzeBubba(body []byte) (*analyzeResponse, error) {
	config, err := models.ParseBubbaConfig(body)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateBubbaConfig(config); err != nil {
		return nil, err
	}

	sess := bubba.NewSession(models.BubbaConfigToState(config))
	return buildResponse(bubba.Economy, sess.Generation(), sess.Target(), sess.TimeToTarget(),
		sess.Analysis(), sess.Best()), nil
}

func analyzeOrion(body []byte) (*analyzeResponse, error) {
	config, err := models.ParseOrionConfig(body)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateOrionConfig(config); err != nil {
		return nil, err
	}

	sess := orion.NewSession(models.OrionConfigToState(config))
	resp := buildResponse(orion.Economy, sess.Generation(), sess.Target(), sess.TimeToTarget(),
		sess.Analysis(), sess.Best())

	plan := sess.Plan()
	resp.Lookahead = &planJSON{Steps: plan.Steps, TotalCost: number(plan.TotalCost)}
	if resp.Lookahead.Steps == nil {
		resp.Lookahead.Steps = []int{}
	}
	return resp, nil
}

func buildResponse(economy string, gen float64, target solver.Target, ttt float64,
	analysis []solver.UpgradeAnalysis, best int) *analyzeResponse {
	resp := &analyzeResponse{
		Economy:      economy,
		Generation:   number(gen),
		Target:       targetJSON{Index: target.Index, Name: target.Name, Cost: number(target.Cost)},
		TimeToTarget: number(ttt),
		Best:         best,
		Upgrades:     make([]upgradeJSON, len(analysis)),
	}
	for i, a := range analysis {
		resp.Upgrades[i] = upgradeJSON{
			Index:       a.Index,
			Name:        a.Name,
			Cost:        number(a.Cost),
			TimeSaved:   number(a.TimeSaved),
			Efficiency:  number(a.Efficiency),
			Icon:        a.Icon,
			Description: a.Description,
			Excluded:    a.Excluded,
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
