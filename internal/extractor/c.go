package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// cStorageModifiers is the allow-list for storage_class_specifier nodes,
// shared with the C++ adapter.
var cStorageModifiers = map[string]bool{
	"static": true,
	"extern": true,
	"inline": true,
}

// cAdapter extracts function definitions from C files.
type cAdapter struct {
	*treeAdapter
}

// NewCAdapter creates a new C adapter.
func NewCAdapter() Adapter {
	lang := sitter.NewLanguage(c.Language())
	return &cAdapter{
		treeAdapter: newTreeAdapter(lang, LangC),
	}
}

func (a *cAdapter) DefinitionKinds() []string {
	return []string{"function_definition"}
}

func (a *cAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = a.extractName(node, source)
	rec.Arguments = extractDeclaratorArguments(node, source)
	rec.Docstring = blockDocComment(node, source, "comment")
	rec.Modifiers = extractStorageModifiers(node, source)

	// C has no receiver concept; every definition is a global function.
	rec.Scope = ScopeGlobal
	rec.FunctionType = TypeFunction
	return rec
}

// extractName descends through pointer wrapping to the function declarator
// and pulls out its identifier.
func (a *cAdapter) extractName(node *sitter.Node, source []byte) string {
	declarator := node.ChildByFieldName("declarator")

	for declarator != nil {
		switch declarator.Kind() {
		case "function_declarator":
			inner := declarator.ChildByFieldName("declarator")
			if inner != nil && inner.Kind() == "identifier" {
				return nodeText(inner, source)
			}
			for i := uint(0); i < declarator.ChildCount(); i++ {
				if child := declarator.Child(i); child.Kind() == "identifier" {
					return nodeText(child, source)
				}
			}
			return "unknown"
		case "pointer_declarator":
			declarator = declarator.ChildByFieldName("declarator")
		default:
			return "unknown"
		}
	}
	return "unknown"
}

// extractDeclaratorArguments enumerates parameter declarations below the
// function declarator, resolving each parameter's identifier through any
// pointer/array wrapping. Shared by the C and C++ adapters.
func extractDeclaratorArguments(node *sitter.Node, source []byte) []string {
	arguments := []string{}

	functionDeclarator := findFunctionDeclarator(node.ChildByFieldName("declarator"))
	if functionDeclarator == nil {
		return arguments
	}

	parameters := functionDeclarator.ChildByFieldName("parameters")
	if parameters == nil {
		return arguments
	}

	for i := uint(0); i < parameters.ChildCount(); i++ {
		child := parameters.Child(i)
		switch child.Kind() {
		case "parameter_declaration", "optional_parameter_declaration":
			if declarator := child.ChildByFieldName("declarator"); declarator != nil {
				if name := identifierInDeclarator(declarator, source); name != "" {
					arguments = append(arguments, name)
				}
			}
		}
	}
	return arguments
}

// extractStorageModifiers collects static/extern/inline specifiers from a
// definition node. Shared by the C and C++ adapters.
func extractStorageModifiers(node *sitter.Node, source []byte) []string {
	var modifiers []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "storage_class_specifier" {
			continue
		}
		if text := nodeText(child, source); cStorageModifiers[text] {
			modifiers = append(modifiers, text)
		}
	}
	return modifiers
}
