// Package session keeps per-client key/value state behind a session id cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoSession = errors.New("no session in request context")

// Backend stores one flat field/value record per session id.
// Get reports a missing record or field as ok=false with a nil error.
type Backend interface {
	Get(ctx context.Context, id, field string) (value string, ok bool, err error)
	Set(ctx context.Context, id, field, value string) error
	// Touch extends the idle expiry of an existing record and reports
	// whether there was one.
	Touch(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Store exposes the raw-string and JSON paths over a Backend.
type Store struct {
	backend Backend
}

// NewStore returns a Store over b.
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Open returns the handle for session id.
func (s *Store) Open(id string) *Session {
	return &Session{ID: id, store: s}
}

// SetString stores value byte-for-byte.
func (s *Store) SetString(ctx context.Context, id string, key StringKey, value string) error {
	if err := s.backend.Set(ctx, id, key.field(), value); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

// GetString returns the value written by SetString. ok is false if it was never set.
func (s *Store) GetString(ctx context.Context, id string, key StringKey) (string, bool, error) {
	v, ok, err := s.backend.Get(ctx, id, key.field())
	if err != nil {
		return "", false, fmt.Errorf("session get %s: %w", key, err)
	}
	return v, ok, nil
}

// SetObject stores v encoded as JSON.
func (s *Store) SetObject(ctx context.Context, id string, key ObjectKey, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, id, key.field(), string(b)); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

// GetObject returns the JSON written by SetObject; decoding is left to the
// owner of the type.
func (s *Store) GetObject(ctx context.Context, id string, key ObjectKey) ([]byte, bool, error) {
	v, ok, err := s.backend.Get(ctx, id, key.field())
	if err != nil {
		return nil, false, fmt.Errorf("session get %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Touch refreshes the idle expiry of session id. ok is false when no record
// exists for id.
func (s *Store) Touch(ctx context.Context, id string) (bool, error) {
	return s.backend.Touch(ctx, id)
}

// Clear drops every value of session id.
func (s *Store) Clear(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, id)
}

// Session is the store bound to one client.
type Session struct {
	ID    string
	store *Store
}

func (s *Session) SetString(ctx context.Context, key StringKey, value string) error {
	return s.store.SetString(ctx, s.ID, key, value)
}

func (s *Session) GetString(ctx context.Context, key StringKey) (string, bool, error) {
	return s.store.GetString(ctx, s.ID, key)
}

func (s *Session) SetObject(ctx context.Context, key ObjectKey, v any) error {
	return s.store.SetObject(ctx, s.ID, key, v)
}

func (s *Session) GetObject(ctx context.Context, key ObjectKey) ([]byte, bool, error) {
	return s.store.GetObject(ctx, s.ID, key)
}

func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, s.ID)
}
