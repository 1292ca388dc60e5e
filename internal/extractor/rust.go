package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// rustModifierKeywords are the function modifiers carried over from a
// function_modifiers node.
var rustModifierKeywords = map[string]bool{
	"async":  true,
	"unsafe": true,
	"const":  true,
	"extern": true,
}

// rustAdapter extracts function items from Rust files.
type rustAdapter struct {
	*treeAdapter
}

// NewRustAdapter creates a new Rust adapter.
func NewRustAdapter() Adapter {
	lang := sitter.NewLanguage(rust.Language())
	return &rustAdapter{
		treeAdapter: newTreeAdapter(lang, LangRust),
	}
}

func (a *rustAdapter) DefinitionKinds() []string {
	return []string{"function_item"}
}

func (a *rustAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = nameOrUnknown(node.ChildByFieldName("name"), source)
	rec.Arguments = a.extractArguments(node, source)
	rec.Docstring = lineDocComment(node, source,
		[]string{"line_comment", "block_comment"}, []string{"///", "//!"})
	rec.Modifiers = a.extractModifiers(node, source)

	if findAncestor(node, "impl_item") != nil {
		rec.Scope = ScopeImpl
		rec.FunctionType = TypeMethod
	} else {
		rec.Scope = ScopeGlobal
		rec.FunctionType = TypeFunction
	}
	return rec
}

// extractArguments enumerates parameter patterns, filtering the textual
// self forms. self_parameter nodes are skipped outright since they are not
// "parameter" children.
func (a *rustAdapter) extractArguments(node *sitter.Node, source []byte) []string {
	arguments := []string{}

	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return arguments
	}

	for i := uint(0); i < parameters.ChildCount(); i++ {
		child := parameters.Child(i)
		if child.Kind() != "parameter" {
			continue
		}
		pattern := child.ChildByFieldName("pattern")
		if pattern == nil {
			continue
		}
		name := nodeText(pattern, source)
		if name != "self" && name != "&self" && name != "&mut self" {
			arguments = append(arguments, name)
		}
	}
	return arguments
}

// extractModifiers collects "pub" from a visibility modifier and any of
// async/unsafe/const/extern from a function_modifiers node.
func (a *rustAdapter) extractModifiers(node *sitter.Node, source []byte) []string {
	var modifiers []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "visibility_modifier":
			modifiers = append(modifiers, "pub")
		case "function_modifiers":
			for j := uint(0); j < child.ChildCount(); j++ {
				if text := nodeText(child.Child(j), source); rustModifierKeywords[text] {
					modifiers = append(modifiers, text)
				}
			}
		}
	}
	return modifiers
}
