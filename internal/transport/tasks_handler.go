// Package transport exposes the maintenance tasks HTTP API.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/service/maintenance"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	processTimeHeader = "X-Process-Time-MS"
	statusNotFound    = "not_found"
	// submitted jobs are reported as accepted, their lifecycle status is served by /status
	statusAccepted    = "in_process"
)

type (
	submitResponse struct {
		UID       string `json:"uid"`
		TableName string `json:"table_name"`
		Status    string `json:"status"`
	}
	statusResponse struct {
		UID        string   `json:"uid"`
		Status     string   `json:"status"`
		ElapsedSec *float64 `json:"elapsed__sec"`
	}
	jobResponse struct {
		UID       string `json:"uid"`
		TableName string `json:"table_name"`
		Status    string `json:"status"`
		Result    *int64 `json:"result"`
		Error     string `json:"error,omitempty"`
		StartMS   int64  `json:"start__ms"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

// TasksHandler serves drop-and-recreate jobs over HTTP.
type TasksHandler struct {
	jobs   JobRegistry
	logger *zap.Logger
	now    func() time.Time
}

// NewTasksHandler returns a TasksHandler instance.
func NewTasksHandler(jobs JobRegistry, logger *zap.Logger) *TasksHandler {
	return &TasksHandler{jobs: jobs, logger: logger, now: time.Now}
}

// Handler returns the routed API with CORS and timing middleware applied.
func (h *TasksHandler) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks/dnp/{tbl}", h.dropAndPop)
	mux.HandleFunc("GET /api/tasks/status/{uid}", h.status)
	mux.HandleFunc("GET /api/tasks/alljobs", h.allJobs)
	mux.HandleFunc("GET /api/ping", h.ping)

	return cors.Default().Handler(h.timed(mux))
}

func (h *TasksHandler) timed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		tw := &timingWriter{ResponseWriter: w, started: started}
		next.ServeHTTP(tw, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("took", time.Since(started)),
		)
	})
}

// timingWriter sets the process time header right before the status line is written.
type timingWriter struct {
	http.ResponseWriter
	started     time.Time
	wroteHeader bool
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		elapsed := float64(time.Since(w.started).Microseconds()) / 1000
		w.Header().Set(processTimeHeader, fmt.Sprintf("%.3f", elapsed))
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (h *TasksHandler) dropAndPop(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue("tbl")
	job, err := h.jobs.Submit(table)
	if err != nil {
		if errors.Is(err, model.ErrInvalidTableName) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("submit job failed", zap.String("table", table), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "submit job failed"})
		return
	}

	h.writeJSON(w, http.StatusAccepted, submitResponse{
		UID:       job.ID.String(),
		TableName: string(job.Table),
		Status:    statusAccepted,
	})
}

func (h *TasksHandler) status(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("uid")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid uid %q", raw)})
		return
	}

	job, ok := h.jobs.Get(id)
	if !ok {
		h.writeJSON(w, http.StatusOK, statusResponse{UID: id.String(), Status: statusNotFound})
		return
	}
	elapsed := float64(h.now().Sub(job.Started).Milliseconds()) / 1000
	h.writeJSON(w, http.StatusOK, statusResponse{
		UID:        id.String(),
		Status:     string(job.Status),
		ElapsedSec: &elapsed,
	})
}

func (h *TasksHandler) allJobs(w http.ResponseWriter, _ *http.Request) {
	all := h.jobs.All()
	out := make(map[string]jobResponse, len(all))
	for _, job := range all {
		resp := jobResponse{
			UID:       job.ID.String(),
			TableName: string(job.Table),
			Status:    string(job.Status),
			Error:     job.Err,
			StartMS:   job.Started.UnixMilli(),
		}
		if job.Status == maintenance.StatusComplete {
			removed := job.Removed
			resp.Result = &removed
		}
		out[resp.UID] = resp
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *TasksHandler) ping(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"hello": "world"})
}

func (h *TasksHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
