// Package layout maps source files to the well-known locations of their artifact blobs.
package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

var _ ports.PathLayout = (*Layout)(nil)

const (
	globalTypeEnvFile = "global.tenv"
	attributesFile    = "attributes.mp"
	typeEnvDir        = "tenv"
	cfgDir            = "cfg"
)

// Layout describes the directory structure below a results directory:
//
//	<root>/global.tenv
//	<root>/attributes.mp
//	<root>/tenv/<name>-<hash>.tenv
//	<root>/cfg/<name>-<hash>.cfg
type Layout struct {
	root string
}

// New creates a Layout rooted at root.
func New(root string) *Layout {
	return &Layout{root: filepath.Clean(root)}
}

// Root returns the results directory.
func (l *Layout) Root() string {
	return l.root
}

// GlobalTypeEnvPath returns the location of the shared global type environment blob.
func (l *Layout) GlobalTypeEnvPath() string {
	return filepath.Join(l.root, globalTypeEnvFile)
}

// TypeEnvPath returns the location of the per-file type environment blob of source.
func (l *Layout) TypeEnvPath(source domain.SourceFile) string {
	return filepath.Join(l.root, typeEnvDir, blobName(source)+".tenv")
}

// CFGPath returns the location of the control-flow graph blob of source.
func (l *Layout) CFGPath(source domain.SourceFile) string {
	return filepath.Join(l.root, cfgDir, blobName(source)+".cfg")
}

// AttributesPath returns the location of the procedure attribute store.
func (l *Layout) AttributesPath() string {
	return filepath.Join(l.root, attributesFile)
}

// blobName derives a flat, collision-resistant file name from a source path.
// The base name keeps the directory listing readable; the hash keeps files
// with equal base names apart.
func blobName(source domain.SourceFile) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, filepath.Base(source.Path()))
	return fmt.Sprintf("%s-%016x", base, xxhash.Sum64String(source.Path()))
}
