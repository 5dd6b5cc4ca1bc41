// Package state persists run metadata in a flat JSON file under the build
// root. The file is informational: cache decisions stay presence-based.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunStore = (*Store)(nil)

// Store implements ports.RunStore using a JSON file keyed by target triple.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunInfo
}

// NewStore creates a RunStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read run state")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal run state")
	}

	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run state")
	}

	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write run state")
	}

	return nil
}

// Get retrieves the recorded info for a target.
func (s *Store) Get(target string) (*domain.RunInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the run info and persists the file.
func (s *Store) Put(info domain.RunInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[info.Target] = info
	return s.save()
}
