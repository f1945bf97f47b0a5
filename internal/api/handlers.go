// v1
// internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/batch"
	"github.com/Takshi07/heat-stress-awareness/internal/compare"
	"github.com/Takshi07/heat-stress-awareness/internal/history"
	"github.com/Takshi07/heat-stress-awareness/internal/observability"
	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

type Handlers struct {
	Log            *slog.Logger
	Store          *history.Store
	Metrics        *observability.Metrics
	MaxUploadBytes int64
}

type scenarioRequest struct {
	TemperatureC  float64 `json:"temperatureC"`
	HumidityPct   float64 `json:"humidityPct"`
	DurationHours float64 `json:"durationHours"`
	Activity      string  `json:"activity"`
}

func (sr scenarioRequest) toInput() (risk.ScenarioInput, error) {
	activity, err := risk.ParseActivity(sr.Activity)
	if err != nil {
		return risk.ScenarioInput{}, err
	}
	return risk.ScenarioInput{
		TemperatureC:  sr.TemperatureC,
		HumidityPct:   sr.HumidityPct,
		DurationHours: sr.DurationHours,
		Activity:      activity,
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "ts": time.Now().UTC()})
}

// Assess evaluates a single scenario and records it into the session history.
func (h *Handlers) Assess(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	in, err := req.toInput()
	if err != nil {
		h.rejectScenario(w, err)
		return
	}
	a, err := risk.Evaluate(in)
	if err != nil {
		h.rejectScenario(w, err)
		return
	}

	h.record(a)
	h.Log.Info("scenario assessed", "score", a.Score, "tier", a.Tier)
	writeJSON(w, http.StatusOK, assessResponse{
		Assessment: a,
		Actions:    risk.Actions(a.Tier),
	})
}

func (h *Handlers) rejectScenario(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, risk.ErrUnknownActivity):
		h.Log.Warn("unknown activity level", "error", err.Error())
		h.badRequest(w, err.Error())
	case errors.Is(err, risk.ErrInvalidInput):
		h.Log.Warn("scenario out of domain", "error", err.Error())
		h.badRequest(w, err.Error())
	default:
		h.Log.Error("assessment failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "assessment failed"})
	}
}

type assessResponse struct {
	Assessment risk.Assessment `json:"assessment"`
	Actions    []string        `json:"actions"`
}

type batchResponse struct {
	Results []risk.Assessment `json:"results"`
	Errors  []batch.RowError  `json:"errors"`
	Summary batch.Summary     `json:"summary"`
}

// Batch evaluates an uploaded CSV. Rows failing validation become row-level
// diagnostics in the response; a missing required column rejects the upload.
func (h *Handlers) Batch(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	defer body.Close()

	results, rowErrs, err := batch.EvaluateReader(body)
	if err != nil {
		if errors.Is(err, batch.ErrMissingColumn) {
			h.Log.Warn("batch upload rejected", "error", err.Error())
			h.badRequest(w, err.Error())
			return
		}
		h.Log.Error("batch read failed", "err", err)
		h.badRequest(w, "unreadable CSV upload")
		return
	}

	for _, a := range results {
		h.record(a)
	}
	h.Metrics.BatchRows(len(results), len(rowErrs))
	h.Log.Info("batch evaluated", "rows", len(results)+len(rowErrs), "assessed", len(results), "skipped", len(rowErrs))

	writeJSON(w, http.StatusOK, batchResponse{
		Results: results,
		Errors:  emptyIfNilRowErrors(rowErrs),
		Summary: batch.Summarize(results, rowErrs),
	})
}

type compareRequest []struct {
	Label    string          `json:"label"`
	Scenario scenarioRequest `json:"scenario"`
}

// Compare evaluates a labeled scenario set and returns it ranked by
// descending score, ties kept in submission order.
func (h *Handlers) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON body")
		return
	}

	scenarios := make([]compare.Scenario, 0, len(req))
	for _, item := range req {
		in, err := item.Scenario.toInput()
		if err != nil {
			h.Log.Warn("comparison scenario rejected", "label", item.Label, "error", err.Error())
			h.badRequest(w, fmt.Sprintf("scenario %q: %s", item.Label, err.Error()))
			return
		}
		scenarios = append(scenarios, compare.Scenario{Label: item.Label, Input: in})
	}

	ranked, err := compare.Compare(scenarios)
	if err != nil {
		h.Log.Warn("comparison rejected", "error", err.Error())
		h.badRequest(w, err.Error())
		return
	}
	for _, entry := range ranked {
		h.record(entry.Assessment)
	}
	h.Log.Info("scenarios compared", "count", len(ranked))
	writeJSON(w, http.StatusOK, ranked)
}

type historyResponse struct {
	Assessments []risk.Assessment `json:"assessments"`
	Summary     history.Summary   `json:"summary"`
}

// HistoryList returns the session history oldest-first, optionally filtered
// by ?tier=.
func (h *Handlers) HistoryList(w http.ResponseWriter, r *http.Request) {
	var assessments []risk.Assessment
	if raw := r.URL.Query().Get("tier"); raw != "" {
		tier, ok := risk.ParseTier(raw)
		if !ok {
			h.badRequest(w, fmt.Sprintf("unknown tier %q", raw))
			return
		}
		assessments = h.Store.FilterByTier(tier)
	} else {
		assessments = h.Store.All()
	}
	if assessments == nil {
		assessments = []risk.Assessment{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Assessments: assessments, Summary: h.Store.Summarize()})
}

// HistoryClear empties the session history. Explicit operation only.
func (h *Handlers) HistoryClear(w http.ResponseWriter, r *http.Request) {
	h.Store.Clear()
	h.Metrics.SetHistorySize(0)
	h.Log.Info("history cleared")
	w.WriteHeader(http.StatusNoContent)
}

// HistoryExport streams the history as a downloadable CSV.
func (h *Handlers) HistoryExport(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("heat_stress_history_%s.csv", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := h.Store.WriteCSV(w); err != nil {
		h.Log.Error("history export failed", "err", err)
	}
}

func (h *Handlers) record(a risk.Assessment) {
	h.Store.Record(a)
	h.Metrics.AssessmentRecorded(string(a.Tier))
	h.Metrics.SetHistorySize(h.Store.Len())
}

func (h *Handlers) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func emptyIfNilRowErrors(errs []batch.RowError) []batch.RowError {
	if errs == nil {
		return []batch.RowError{}
	}
	return errs
}
