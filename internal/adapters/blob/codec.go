// Package blob reads and writes the msgpack-encoded artifact blobs of captured source files.
package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Current schema version - increment when a payload format changes.
const schemaVersion uint16 = 1

const (
	kindTypeEnv = "tenv"
	kindCFG     = "cfg"
)

// envelope wraps every payload with enough information to reject stale or damaged blobs.
type envelope struct {
	Schema  uint16 `msgpack:"schema"`
	Kind    string `msgpack:"kind"`
	Sum     uint64 `msgpack:"sum"`
	Payload []byte `msgpack:"payload"`
}

// writeBlob encodes v and atomically replaces the blob at path.
func writeBlob(path, kind string, v any) error {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode payload"), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create blob directory"), "path", dir)
	}

	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", dir)
	}
	defer os.Remove(f.Name()) //nolint:errcheck // gone after a successful rename

	env := envelope{
		Schema:  schemaVersion,
		Kind:    kind,
		Sum:     xxhash.Sum64(payload),
		Payload: payload,
	}
	if err := msgpack.NewEncoder(f).Encode(&env); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write blob"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close blob"), "path", path)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move blob into place"), "path", path)
	}
	return nil
}

// readBlob verifies the blob at path and decodes its payload into out.
func readBlob(path, kind string, out any) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open blob"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only

	var env envelope
	if err := msgpack.NewDecoder(f).Decode(&env); err != nil {
		return errors.Join(domain.ErrBlobCorrupt, zerr.With(zerr.Wrap(err, "failed to decode envelope"), "path", path))
	}
	if env.Schema != schemaVersion {
		cause := zerr.With(zerr.New(fmt.Sprintf("found schema %d, want %d", env.Schema, schemaVersion)), "path", path)
		return errors.Join(domain.ErrSchemaMismatch, cause)
	}
	if env.Kind != kind {
		cause := zerr.With(zerr.New(fmt.Sprintf("expected %s blob, found %s", kind, env.Kind)), "path", path)
		return errors.Join(domain.ErrBlobCorrupt, cause)
	}
	if xxhash.Sum64(env.Payload) != env.Sum {
		return errors.Join(domain.ErrBlobCorrupt, zerr.With(zerr.New("checksum mismatch"), "path", path))
	}
	if err := msgpack.Unmarshal(env.Payload, out); err != nil {
		return errors.Join(domain.ErrBlobCorrupt, zerr.With(zerr.Wrap(err, "failed to decode payload"), "path", path))
	}
	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
