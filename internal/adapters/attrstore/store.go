// Package attrstore implements the persistent procedure attribute store.
package attrstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AttributeStore = (*Store)(nil)

// record is the on-disk form of domain.ProcedureAttributes.
type record struct {
	Lang      uint8  `msgpack:"lang"`
	Name      string `msgpack:"name"`
	Source    string `msgpack:"source"`
	IsDefined bool   `msgpack:"defined,omitempty"`
	Access    string `msgpack:"access,omitempty"`
	Line      int    `msgpack:"line,omitempty"`
}

// Store implements ports.AttributeStore using a flat msgpack file.
// Capture processes append to the file; Refresh picks their records up.
type Store struct {
	path string
	// writeMu serializes cache replacement and file rewrites so each
	// rename carries every earlier Put.
	writeMu sync.Mutex
	mu      sync.RWMutex
	cache   map[domain.ProcName]record
}

// NewStore creates a new AttributeStore backed by the file at the given path.
// A missing file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[domain.ProcName]record),
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh re-reads the backing file, replacing the in-memory view.
func (s *Store) Refresh() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}

	cache := make(map[domain.ProcName]record, len(records))
	for _, r := range records {
		cache[domain.NewProcName(domain.Language(r.Lang), r.Name)] = r
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

func (s *Store) read() ([]record, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read attribute store"), "path", s.path)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []record
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode attribute store"), "path", s.path)
	}
	return records, nil
}

// save rewrites the backing file from the cache. Callers hold writeMu.
func (s *Store) save() error {
	s.mu.RLock()
	records := make([]record, 0, len(s.cache))
	for _, r := range s.cache {
		records = append(records, r)
	}
	s.mu.RUnlock()

	data, err := msgpack.Marshal(records)
	if err != nil {
		return zerr.Wrap(err, "failed to encode attribute store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for attribute store")
	}

	tmp, err := os.CreateTemp(dir, "attributes-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for attribute store")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write attribute store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write attribute store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to replace attribute store")
	}
	return nil
}

// Lookup retrieves the attributes of a procedure.
// Returns nil, nil if not found.
func (s *Store) Lookup(name domain.ProcName) (*domain.ProcedureAttributes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.cache[name]
	if !ok {
		return nil, nil
	}
	return &domain.ProcedureAttributes{
		Name:      name,
		Source:    domain.NewSourceFile(r.Source),
		IsDefined: r.IsDefined,
		Access:    r.Access,
		Line:      r.Line,
	}, nil
}

// Put stores the attributes of a procedure.
func (s *Store) Put(attrs domain.ProcedureAttributes) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.cache[attrs.Name] = record{
		Lang:      uint8(attrs.Name.Language()),
		Name:      attrs.Name.Name(),
		Source:    attrs.Source.Path(),
		IsDefined: attrs.IsDefined,
		Access:    attrs.Access,
		Line:      attrs.Line,
	}
	s.mu.Unlock()

	return s.save()
}

// Len returns the number of known procedures.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
