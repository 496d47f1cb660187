package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// SourceFile identifies a single compilation unit.
// It wraps an interned path so that identities are cheap to copy, compare and hash.
type SourceFile struct {
	h unique.Handle[string]
}

// NewSourceFile creates a SourceFile from a project-relative path.
// An empty path yields the zero SourceFile.
func NewSourceFile(path string) SourceFile {
	if path == "" {
		return SourceFile{}
	}
	return SourceFile{h: unique.Make(path)}
}

// IsZero reports whether the identity was never set.
func (s SourceFile) IsZero() bool {
	var zero unique.Handle[string]
	return s.h == zero
}

// Path returns the path of the compilation unit.
func (s SourceFile) Path() string {
	if s.IsZero() {
		return ""
	}
	return s.h.Value()
}

// String implements fmt.Stringer.
func (s SourceFile) String() string {
	return s.Path()
}

// ProcName identifies one procedure of the program under analysis.
// Two ProcNames are equal when both the language and the qualified name match.
type ProcName struct {
	lang Language
	name unique.Handle[string]
}

// NewProcName creates a ProcName for the given language and qualified name.
func NewProcName(lang Language, name string) ProcName {
	return ProcName{lang: lang, name: unique.Make(name)}
}

// ParseProcName parses the "[lang:]qualified.name" form used on the command line.
// Without a language prefix the procedure is assumed to be a clang procedure.
func ParseProcName(s string) (ProcName, error) {
	if s == "" {
		return ProcName{}, zerr.New("empty procedure name")
	}
	prefix, rest, found := strings.Cut(s, ":")
	if !found {
		return NewProcName(LanguageClang, s), nil
	}
	lang, err := ParseLanguage(prefix)
	if err != nil {
		// Not a language tag, e.g. a C++ "ns::fn" name.
		return NewProcName(LanguageClang, s), nil //nolint:nilerr // fallback is intended
	}
	if rest == "" {
		return ProcName{}, zerr.With(zerr.New("empty procedure name"), "input", s)
	}
	return NewProcName(lang, rest), nil
}

// Language returns the source language of the procedure.
func (p ProcName) Language() Language {
	return p.lang
}

// Name returns the qualified name of the procedure.
func (p ProcName) Name() string {
	var zero unique.Handle[string]
	if p.name == zero {
		return ""
	}
	return p.name.Value()
}

// UsesGlobalTypeEnvironment reports whether type information for the procedure
// lives in the single global type environment instead of a per-file one.
func (p ProcName) UsesGlobalTypeEnvironment() bool {
	return p.lang.UsesGlobalTypeEnvironment()
}

// String returns the "lang:name" form accepted by ParseProcName.
func (p ProcName) String() string {
	return p.lang.String() + ":" + p.Name()
}
