package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"

	"go.uber.org/zap"
)

// Draft is one saved in-flight form payload.
type Draft struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DraftService keeps in-flight form values across reloads. Every save writes
// two stores: a process-local cache for fast reads during one session, and
// the durable table that survives restarts. Last writer wins in both.
type DraftService struct {
	queries db.Querier
	logger  *zap.Logger

	mu    sync.RWMutex
	cache map[string]Draft
}

// NewDraftService creates a new draft service.
func NewDraftService(queries db.Querier) *DraftService {
	return &DraftService{
		queries: queries,
		logger:  logger.Log,
		cache:   make(map[string]Draft),
	}
}

// Save stores a draft under a caller-supplied key. The cache is written
// first so the latest value is always what a concurrent read sees, even if
// the durable write lags or fails.
func (s *DraftService) Save(ctx context.Context, key string, payload json.RawMessage) (Draft, error) {
	if key == "" {
		return Draft{}, fmt.Errorf("draft key is required")
	}
	if !json.Valid(payload) {
		return Draft{}, fmt.Errorf("draft payload is not valid JSON")
	}

	draft := Draft{Key: key, Payload: payload, UpdatedAt: time.Now()}

	s.mu.Lock()
	s.cache[key] = draft
	s.mu.Unlock()

	row, err := s.queries.UpsertApplicationDraft(ctx, db.UpsertApplicationDraftParams{
		Key:     key,
		Payload: payload,
	})
	if err != nil {
		// The cached copy still serves this session; only durability is
		// degraded.
		s.logger.Warn("Durable draft write failed",
			zap.String("key", key),
			zap.Error(err))
		return draft, nil
	}

	draft.UpdatedAt = row.UpdatedAt.Time
	return draft, nil
}

// Get returns the freshest copy of a draft, preferring the cache.
func (s *DraftService) Get(ctx context.Context, key string) (Draft, bool) {
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, true
	}

	row, err := s.queries.GetApplicationDraft(ctx, key)
	if err != nil {
		return Draft{}, false
	}

	draft := Draft{Key: row.Key, Payload: row.Payload, UpdatedAt: row.UpdatedAt.Time}

	s.mu.Lock()
	// A save may have landed while we were reading; never clobber it.
	if _, exists := s.cache[key]; !exists {
		s.cache[key] = draft
	} else {
		draft = s.cache[key]
	}
	s.mu.Unlock()

	return draft, true
}

// Delete removes a draft from both stores, typically after a successful
// submission.
func (s *DraftService) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if err := s.queries.DeleteApplicationDraft(ctx, key); err != nil {
		s.logger.Warn("Durable draft delete failed",
			zap.String("key", key),
			zap.Error(err))
		return err
	}
	return nil
}
