// Package scanner discovers candidate source files for extraction: it walks
// a root directory, applies gitignore-style exclusion patterns, drops binary
// content, and filters to the supported (or configured) languages.
package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"funcscan/internal/extractor"
)

// binarySniffLen is how many leading bytes are inspected for NUL when
// deciding whether a file is binary.
const binarySniffLen = 8192

// compiledPattern holds both the pattern string and its compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Scanner walks a source tree and returns the files the extraction engine
// should process.
type Scanner struct {
	rootDir        string
	languages      map[extractor.Language]bool // nil means all languages
	ignorePatterns []compiledPattern
}

// Option configures a Scanner.
type Option func(*Scanner) error

// WithLanguages restricts scanning to the given language tags. An empty
// list leaves all supported languages enabled.
func WithLanguages(languages []string) Option {
	return func(s *Scanner) error {
		if len(languages) == 0 {
			return nil
		}
		s.languages = make(map[extractor.Language]bool, len(languages))
		for _, lang := range languages {
			s.languages[extractor.Language(lang)] = true
		}
		return nil
	}
}

// WithIgnoreFile loads exclusion patterns from a file of glob lines
// (one pattern per line, "#" comments allowed) in the scan root. A missing
// file is not an error; there is simply nothing to exclude.
func WithIgnoreFile(name string) Option {
	return func(s *Scanner) error {
		if name == "" {
			return nil
		}
		data, err := os.ReadFile(filepath.Join(s.rootDir, name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if err := s.addIgnorePattern(line); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithIgnorePatterns adds exclusion patterns directly (typically from
// configuration).
func WithIgnorePatterns(patterns []string) Option {
	return func(s *Scanner) error {
		for _, pattern := range patterns {
			if err := s.addIgnorePattern(pattern); err != nil {
				return err
			}
		}
		return nil
	}
}

// New creates a Scanner rooted at rootDir.
func New(rootDir string, opts ...Option) (*Scanner, error) {
	s := &Scanner{rootDir: rootDir}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scanner) addIgnorePattern(pattern string) error {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return err
	}
	s.ignorePatterns = append(s.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	return nil
}

// Scan walks the root directory and returns the candidate files in walk
// order. Ignored paths, binary files, and files of unsupported or filtered
// languages are skipped.
func (s *Scanner) Scan() ([]string, error) {
	files := []string{}

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(s.rootDir, path)
		if relErr != nil {
			return relErr
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if path != s.rootDir && s.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.shouldIgnore(relPath) {
			return nil
		}

		lang, ok := extractor.LanguageForPath(path)
		if !ok {
			return nil
		}
		if s.languages != nil && !s.languages[lang] {
			return nil
		}

		if isBinary(path) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// shouldIgnore checks a relative path against the exclusion patterns. A
// directory also matches patterns written with a "/**" suffix.
func (s *Scanner) shouldIgnore(relPath string) bool {
	if s.matchesAnyPattern(relPath) {
		return true
	}
	return s.matchesAnyPattern(relPath + "/**")
}

func (s *Scanner) matchesAnyPattern(path string) bool {
	for _, cp := range s.ignorePatterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Root-level files should still match "**/"-prefixed patterns, e.g.
	// "**/*_test.go" against "main_test.go".
	if !strings.Contains(path, "/") {
		for _, cp := range s.ignorePatterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}
	return false
}

// isBinary reports whether the file's leading bytes contain a NUL byte.
// Unreadable files are treated as binary and skipped.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binarySniffLen)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
