package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Adapter translates definition nodes of one grammar into normalized
// FunctionRecords. Implementations hold grammar and parser state that is
// allocated once and reused across files; an adapter instance must not be
// used from multiple goroutines at the same time.
type Adapter interface {
	// Language returns the fixed language tag for this adapter.
	Language() Language

	// DefinitionKinds reports the tree node kinds that denote a function,
	// method, or constructor in this grammar.
	DefinitionKinds() []string

	// Extract builds a record from a definition node. Size and complexity
	// metrics are attached by the engine afterwards.
	Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord

	// Parse parses source bytes with this adapter's grammar. The returned
	// tree must be closed by the caller.
	Parse(source []byte) *sitter.Tree
}

// treeAdapter provides the parsing state and record scaffolding shared by
// all language adapters.
type treeAdapter struct {
	language *sitter.Language
	parser   *sitter.Parser
	lang     Language
}

func newTreeAdapter(language *sitter.Language, lang Language) *treeAdapter {
	parser := sitter.NewParser()
	parser.SetLanguage(language)
	return &treeAdapter{
		language: language,
		parser:   parser,
		lang:     lang,
	}
}

func (a *treeAdapter) Language() Language {
	return a.lang
}

func (a *treeAdapter) Parse(source []byte) *sitter.Tree {
	return a.parser.Parse(source, nil)
}

// baseRecord fills the position, span, and language fields common to every
// adapter. Rows and columns come straight from tree-sitter: rows converted
// to 1-based lines, columns kept 0-based.
func (a *treeAdapter) baseRecord(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	return FunctionRecord{
		Code:        nodeText(node, source),
		FilePath:    filePath,
		StartLine:   int(node.StartPosition().Row) + 1,
		EndLine:     int(node.EndPosition().Row) + 1,
		StartColumn: int(node.StartPosition().Column),
		EndColumn:   int(node.EndPosition().Column),
		StartByte:   int(node.StartByte()),
		EndByte:     int(node.EndByte()),
		Language:    a.lang,
	}
}
