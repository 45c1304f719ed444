package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is a Store backed by a single JSON file. It survives restarts and is
// the durable analog of browser localStorage for CLI/desktop hosts.
//
// Every Set/Delete rewrites the file via a temp-file rename, so writes are
// atomic but not cheap. Intended for small client-side caches, not bulk data.
type File struct {
	mu   sync.Mutex
	path string
	m    map[string][]byte
}

var _ Store = (*File)(nil)

// OpenFile loads (or creates) the store at path.
// An unreadable or corrupt file starts the store empty rather than failing:
// cached data is always reproducible.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("store: file path is required")
	}
	s := &File{path: path, m: make(map[string][]byte)}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.m); err != nil {
		s.m = make(map[string][]byte)
	}
	return s, nil
}

func (s *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	v, ok := s.m[key]
	s.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *File) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.m[key]
	s.m[key] = cp
	if err := s.flushLocked(); err != nil {
		// Roll back so memory never claims a write the disk rejected.
		if had {
			s.m[key] = prev
		} else {
			delete(s.m, key)
		}
		return err
	}
	return nil
}

func (s *File) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[key]; !ok {
		return nil
	}
	delete(s.m, key)
	return s.flushLocked()
}

func (s *File) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	s.mu.Unlock()
	return out, nil
}

func (s *File) Close(context.Context) error { return nil }

func (s *File) flushLocked() error {
	b, err := json.Marshal(s.m)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("store: write %s: %w", filepath.Base(tmp), err)
	}
	return os.Rename(tmp, s.path)
}
