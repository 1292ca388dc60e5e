package extractor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Engine extracts function records from single files: read, parse,
// traverse, collect. It is purely synchronous; parallelism across files is
// the caller's concern. An Engine must not be shared across goroutines
// because its adapters hold per-instance parser state.
type Engine struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEngine creates an extraction engine. A nil logger falls back to
// slog.Default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		registry: NewRegistry(),
		logger:   logger,
	}
}

// AdapterFor exposes the dispatcher lookup so callers can skip unsupported
// files without reading them.
func (e *Engine) AdapterFor(path string) (Adapter, bool) {
	return e.registry.AdapterFor(path)
}

// ExtractFile parses one source file and returns its function records in
// source order, nested definitions included. The only hard failure is a
// missing file (errors.Is(err, fs.ErrNotExist)). Undecodable bytes and
// files whose tree contains a structural error degrade to an empty result
// with a logged warning; no partial extraction is attempted on malformed
// input. An unsupported extension yields a nil result and no error.
func (e *Engine) ExtractFile(path string) ([]FunctionRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	adapter, ok := e.registry.AdapterFor(path)
	if !ok {
		e.logger.Debug("no adapter for extension, skipping", "path", path)
		return nil, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(source) {
		e.logger.Warn("encoding error, skipping file", "path", path)
		return []FunctionRecord{}, nil
	}

	tree := adapter.Parse(source)
	if tree == nil {
		e.logger.Warn("parse failed, skipping file", "path", path)
		return []FunctionRecord{}, nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		e.logger.Warn("syntax error, skipping file",
			"path", path, "language", adapter.Language())
		return []FunctionRecord{}, nil
	}

	definitionKinds := make(map[string]bool)
	for _, kind := range adapter.DefinitionKinds() {
		definitionKinds[kind] = true
	}

	records := []FunctionRecord{}
	walkTree(root, func(node *sitter.Node) bool {
		if definitionKinds[node.Kind()] {
			rec := adapter.Extract(node, source, path)
			rec.LOC, rec.CommentLines = CountLines(rec.Code)
			rec.Complexity = Complexity(rec.Code)
			records = append(records, rec)
		}
		// Keep walking: nested definitions yield their own records.
		return true
	})

	return records, nil
}
