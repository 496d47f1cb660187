package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Language tags the source language a procedure was captured from.
type Language uint8

const (
	// LanguageClang covers C, C++ and Objective-C.
	LanguageClang Language = iota
	// LanguageJava covers Java bytecode.
	LanguageJava
	// LanguageCSharp covers .NET assemblies.
	LanguageCSharp
	// LanguageErlang covers Erlang and Elixir.
	LanguageErlang
	// LanguageHack covers Hack.
	LanguageHack
	// LanguagePython covers Python.
	LanguagePython
)

var languageNames = [...]string{
	LanguageClang:  "clang",
	LanguageJava:   "java",
	LanguageCSharp: "csharp",
	LanguageErlang: "erlang",
	LanguageHack:   "hack",
	LanguagePython: "python",
}

// String returns the lower-case language tag.
func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "unknown"
}

// UsesGlobalTypeEnvironment reports whether the language keeps all of its types
// in one program-wide namespace.
func (l Language) UsesGlobalTypeEnvironment() bool {
	return l == LanguageJava || l == LanguageCSharp
}

// ParseLanguage parses a language tag as returned by Language.String.
func ParseLanguage(s string) (Language, error) {
	for i, name := range languageNames {
		if strings.EqualFold(s, name) {
			return Language(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownLanguage, "language", s)
}
