package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/modebench/modebench/internal/strategy"
	"github.com/modebench/modebench/internal/workload"
)

// handleSleep runs the simulated blocking operation through the active
// execution strategy and records its latency.
func (s *Server) handleSleep(w http.ResponseWriter, r *http.Request) {
	work := workload.Sleep(time.Duration(s.cfg.Sleep), s.clock, s.registry.Active())

	out, err := s.runner.Timed(work)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, out)
}

func (s *Server) handleGetMode(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "mode=%s\n", s.registry.Active())
}

// handleSetMode switches the active execution strategy. Unknown names are
// rejected and the current mode stays in effect.
func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("m")

	mode, err := s.registry.Set(name)
	if err != nil {
		if errors.Is(err, strategy.ErrUnknownMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.logger.Info("mode switched", "mode", string(mode))
	fmt.Fprintf(w, "mode=%s\n", mode)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, s.collector.Snapshot().String())
}

func (s *Server) handleMetricsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.collector.Snapshot()); err != nil {
		s.logger.Error("encoding snapshot", "error", err)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.collector.Reset()
	s.logger.Info("metrics reset")
	fmt.Fprintln(w, "ok")
}

// handleThreadInfo reports the live goroutine count, the closest analogue
// to a thread count for judging per-task goroutine cost.
func (s *Server) handleThreadInfo(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "goroutines=%d\n", runtime.NumGoroutine())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "healthy")
}
