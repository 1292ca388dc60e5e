package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// javaModifierKeywords is the allow-list applied to a "modifiers" node.
var javaModifierKeywords = map[string]bool{
	"public":       true,
	"private":      true,
	"protected":    true,
	"static":       true,
	"final":        true,
	"abstract":     true,
	"synchronized": true,
	"native":       true,
}

// javaAdapter extracts method and constructor declarations from Java files.
type javaAdapter struct {
	*treeAdapter
}

// NewJavaAdapter creates a new Java adapter.
func NewJavaAdapter() Adapter {
	lang := sitter.NewLanguage(java.Language())
	return &javaAdapter{
		treeAdapter: newTreeAdapter(lang, LangJava),
	}
}

func (a *javaAdapter) DefinitionKinds() []string {
	return []string{"method_declaration", "constructor_declaration"}
}

func (a *javaAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = nameOrUnknown(node.ChildByFieldName("name"), source)
	rec.Arguments = a.extractArguments(node, source)
	rec.Docstring = blockDocComment(node, source, "block_comment")
	rec.Modifiers = a.extractModifiers(node, source)
	rec.Scope, rec.FunctionType = a.classify(node)
	return rec
}

func (a *javaAdapter) classify(node *sitter.Node) (Scope, FunctionType) {
	if node.Kind() == "constructor_declaration" {
		return ScopeClass, TypeConstructor
	}
	if findAncestor(node, "class_declaration") != nil {
		return ScopeClass, TypeMethod
	}
	return ScopeGlobal, TypeMethod
}

func (a *javaAdapter) extractArguments(node *sitter.Node, source []byte) []string {
	arguments := []string{}

	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return arguments
	}

	for i := uint(0); i < parameters.ChildCount(); i++ {
		child := parameters.Child(i)
		if child.Kind() != "formal_parameter" {
			continue
		}
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			arguments = append(arguments, nodeText(nameNode, source))
		}
	}
	return arguments
}

func (a *javaAdapter) extractModifiers(node *sitter.Node, source []byte) []string {
	var modifiers []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "modifiers" {
			continue
		}
		for j := uint(0); j < child.ChildCount(); j++ {
			if text := nodeText(child.Child(j), source); javaModifierKeywords[text] {
				modifiers = append(modifiers, text)
			}
		}
	}
	return modifiers
}
