package extractor

import (
	"path/filepath"
	"strings"
)

// extensionLanguages is the fixed extension-to-language table. Lookup is
// case-insensitive on the extension.
var extensionLanguages = map[string]Language{
	".py":   LangPython,
	".rs":   LangRust,
	".go":   LangGo,
	".java": LangJava,
	".c":    LangC,
	".h":    LangC,
	".cpp":  LangCpp,
	".cc":   LangCpp,
	".cxx":  LangCpp,
	".hpp":  LangCpp,
	".hh":   LangCpp,
	".hxx":  LangCpp,
}

// LanguageForPath maps a file path to its language by extension. The second
// result is false for unsupported extensions.
func LanguageForPath(path string) (Language, bool) {
	lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// SupportedLanguages returns the closed set of language tags.
func SupportedLanguages() []Language {
	return []Language{LangPython, LangRust, LangGo, LangJava, LangC, LangCpp}
}

// Registry dispenses one adapter instance per language, constructed lazily
// on first lookup and reused for every subsequent file of that language so
// grammar setup cost is paid once. A Registry, like the adapters it hands
// out, must not be shared across goroutines; create one per worker.
type Registry struct {
	adapters map[Language]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[Language]Adapter),
	}
}

// AdapterFor returns the adapter responsible for a file path. The second
// result is false when no adapter handles the extension, which callers
// treat as "skip this file" rather than an error.
func (r *Registry) AdapterFor(path string) (Adapter, bool) {
	lang, ok := LanguageForPath(path)
	if !ok {
		return nil, false
	}

	adapter, ok := r.adapters[lang]
	if !ok {
		adapter = newAdapter(lang)
		r.adapters[lang] = adapter
	}
	return adapter, true
}

func newAdapter(lang Language) Adapter {
	switch lang {
	case LangPython:
		return NewPythonAdapter()
	case LangRust:
		return NewRustAdapter()
	case LangGo:
		return NewGoAdapter()
	case LangJava:
		return NewJavaAdapter()
	case LangC:
		return NewCAdapter()
	case LangCpp:
		return NewCppAdapter()
	}
	return nil
}
