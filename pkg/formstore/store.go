package formstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/goliatone/go-brief/pkg/model"
)

// DefaultKey is the storage key the brief draft lives under.
const DefaultKey = "pixelpioneer-brief-form"

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDelay batches writes: a Save schedules the write after d, and later
// saves within the window replace the pending snapshot.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithLogger reports swallowed storage failures at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds background writes.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Store is the FormStateStore: load, save and clear one FormValues draft.
type Store struct {
	storage Storage
	key     string
	delay   time.Duration
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	pending *model.FormValues
	timer   *time.Timer

	// writeMu orders snapshot handoff and the storage write so an older
	// snapshot never lands after a newer one.
	writeMu sync.Mutex
}

// New wraps storage. A nil storage falls back to MemoryStorage.
func New(storage Storage, opts ...Option) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{
		storage: storage,
		key:     DefaultKey,
		timeout: 5 * time.Second,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// Load returns the persisted draft, or defaults when it is absent or
// malformed. A malformed entry is removed.
func (s *Store) Load(ctx context.Context) model.FormValues {
	s.Flush(ctx)

	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Debug("formstore: read failed", "key", s.key, "error", err)
		}
		return model.Defaults()
	}

	values, err := decode(raw)
	if err != nil {
		s.logger.Debug("formstore: discarding malformed draft", "key", s.key, "error", err)
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.logger.Debug("formstore: delete failed", "key", s.key, "error", err)
		}
		return model.Defaults()
	}
	return values
}

// Save records values and schedules the write. It never blocks on storage.
func (s *Store) Save(values model.FormValues) {
	snapshot := values.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.Flush(ctx)
	})
}

// Flush writes the pending snapshot, if any, before returning.
func (s *Store) Flush(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	snapshot := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if snapshot == nil {
		return
	}
	raw, err := json.Marshal(snapshot.Normalize())
	if err != nil {
		s.logger.Debug("formstore: encode failed", "key", s.key, "error", err)
		return
	}
	if err := s.storage.Put(ctx, s.key, raw); err != nil {
		s.logger.Debug("formstore: write failed", "key", s.key, "error", err)
	}
}

// Clear drops any pending write and removes the persisted draft.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.storage.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Debug("formstore: clear failed", "key", s.key, "error", err)
	}
}

// decode accepts a JSON object whose known keys carry the right types.
// Unknown keys are ignored so drafts from another layout still restore.
func decode(raw []byte) (model.FormValues, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.FormValues{}, fmt.Errorf("formstore: draft is not a JSON object")
	}
	values := model.Defaults()
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return model.FormValues{}, fmt.Errorf("formstore: decode draft: %w", err)
	}
	return values.Normalize(), nil
}
