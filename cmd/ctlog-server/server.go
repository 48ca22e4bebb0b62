package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/ctlog/checkpoint"
	"github.com/forestrie/ctlog/metrics"
	"github.com/forestrie/ctlog/storage"
	"github.com/forestrie/ctlog/transport"
)

// server answers requests for segment checkpoints, addressed by log ID
// and sequence number, backed by an ObjectStore.
type server struct {
	store storage.ObjectStore
	reg   *metrics.Registry
	pool  *transport.Pool
	log   logger.Logger
}

func newServer(store storage.ObjectStore, reg *metrics.Registry, pool *transport.Pool, log logger.Logger) *server {
	return &server{store: store, reg: reg, pool: pool, log: log}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/v1/logs/", s.handleSegmentCheckpoint)
	mux.Handle("/metrics", s.reg.Handler())
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSegmentCheckpoint serves GET /v1/logs/{logID}/segments/{seq} by
// returning the decoded LogSegmentCheckpoint for seq as JSON.
func (s *server) handleSegmentCheckpoint(w http.ResponseWriter, r *http.Request) {
	logID, seq, err := parseSegmentPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := s.store.Get(r.Context(), logID, seq, storage.ObjectSegmentCheckpoint)
	if err != nil {
		s.incResult("segment_checkpoint_fetch", "miss")
		if errors.Is(err, storage.ErrDoesNotExist) {
			http.Error(w, "checkpoint not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cp, err := checkpoint.DeserializeLogSegmentCheckpoint(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.incResult("segment_checkpoint_fetch", "hit")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cp)
}

func (s *server) incResult(metric, result string) {
	if err := s.reg.IncCounter(metric+"_total", "requests for "+metric, []string{"result"}, result); err != nil {
		s.log.Errorf("metrics: %v", err)
	}
}

// parseSegmentPath parses "/v1/logs/{logID}/segments/{seq}".
func parseSegmentPath(path string) (uuid.UUID, uint32, error) {
	const prefix = "/v1/logs/"
	const sep = "/segments/"

	if len(path) <= len(prefix) {
		return uuid.UUID{}, 0, errors.New("missing log id")
	}
	rest := path[len(prefix):]

	idx := indexOf(rest, sep)
	if idx < 0 {
		return uuid.UUID{}, 0, errors.New("expected /segments/{seq} suffix")
	}

	logID, err := uuid.Parse(rest[:idx])
	if err != nil {
		return uuid.UUID{}, 0, errors.New("invalid log id")
	}

	seq, err := strconv.ParseUint(rest[idx+len(sep):], 10, 32)
	if err != nil {
		return uuid.UUID{}, 0, errors.New("invalid sequence number")
	}

	return logID, uint32(seq), nil
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
