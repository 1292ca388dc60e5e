package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the registry:
// - Extension lookup is case-insensitive and covers all C/C++ variants
// - Unsupported extensions report no language and no adapter
// - Adapters are constructed lazily and reused across lookups

func TestLanguageForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Language
		ok   bool
	}{
		{"main.py", LangPython, true},
		{"lib.rs", LangRust, true},
		{"server.go", LangGo, true},
		{"App.java", LangJava, true},
		{"util.c", LangC, true},
		{"util.h", LangC, true},
		{"engine.cpp", LangCpp, true},
		{"engine.cc", LangCpp, true},
		{"engine.cxx", LangCpp, true},
		{"engine.hpp", LangCpp, true},
		{"engine.hh", LangCpp, true},
		{"engine.hxx", LangCpp, true},
		{"SCRIPT.PY", LangPython, true},
		{"dir/sub/file.RS", LangRust, true},
		{"README.md", "", false},
		{"Makefile", "", false},
		{"archive.tar.gz", "", false},
	}

	for _, tt := range tests {
		lang, ok := LanguageForPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, lang, tt.path)
	}
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	langs := SupportedLanguages()
	assert.ElementsMatch(t,
		[]Language{LangPython, LangRust, LangGo, LangJava, LangC, LangCpp},
		langs)
}

func TestRegistry_AdapterFor(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	adapter, ok := registry.AdapterFor("main.py")
	require.True(t, ok)
	require.NotNil(t, adapter)
	assert.Equal(t, LangPython, adapter.Language())

	// Same language resolves to the same instance; grammar setup happens
	// once.
	again, ok := registry.AdapterFor("other.py")
	require.True(t, ok)
	assert.Same(t, adapter, again)

	missing, ok := registry.AdapterFor("notes.txt")
	assert.False(t, ok)
	assert.Nil(t, missing)
}

func TestRegistry_AllLanguagesConstructible(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	paths := map[string]Language{
		"a.py":   LangPython,
		"a.rs":   LangRust,
		"a.go":   LangGo,
		"A.java": LangJava,
		"a.c":    LangC,
		"a.cpp":  LangCpp,
	}
	for path, want := range paths {
		adapter, ok := registry.AdapterFor(path)
		require.True(t, ok, path)
		assert.Equal(t, want, adapter.Language(), path)
	}
}
