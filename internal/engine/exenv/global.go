package exenv

import (
	"errors"
	"sync"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/zerr"
)

// GlobalTypeEnv is the compute-once cell holding the type environment shared by
// every procedure of a language with a single global type universe.
type GlobalTypeEnv struct {
	path string
	get  func() (*domain.TypeEnvironment, error)
}

// NewGlobalTypeEnv creates a cell that loads the blob at path on first Get.
func NewGlobalTypeEnv(loader ports.TypeEnvLoader, path string) *GlobalTypeEnv {
	return &GlobalTypeEnv{
		path: path,
		get: sync.OnceValues(func() (*domain.TypeEnvironment, error) {
			tenv, err := loader.Load(path)
			if err == nil && tenv == nil {
				err = zerr.New("loader returned no type environment")
			}
			if err != nil {
				return nil, errors.Join(domain.ErrGlobalTypeEnvironmentMissing, zerr.With(err, "path", path))
			}
			return tenv, nil
		}),
	}
}

// Path returns the location of the global blob.
func (g *GlobalTypeEnv) Path() string {
	return g.path
}

// Get returns the global type environment. The load runs once; later calls
// return the memoized result, including a memoized failure.
func (g *GlobalTypeEnv) Get() (*domain.TypeEnvironment, error) {
	return g.get()
}
