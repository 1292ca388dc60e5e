package extractor

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonAdapter extracts function and method definitions from Python files.
type pythonAdapter struct {
	*treeAdapter
}

// NewPythonAdapter creates a new Python adapter.
func NewPythonAdapter() Adapter {
	lang := sitter.NewLanguage(python.Language())
	return &pythonAdapter{
		treeAdapter: newTreeAdapter(lang, LangPython),
	}
}

func (a *pythonAdapter) DefinitionKinds() []string {
	return []string{"function_definition"}
}

func (a *pythonAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = nameOrUnknown(node.ChildByFieldName("name"), source)
	rec.Arguments = a.extractArguments(node, source)
	rec.Docstring = a.extractDocstring(node, source)

	// A function nested anywhere inside a class definition is a method.
	if findAncestor(node, "class_definition") != nil {
		rec.Scope = ScopeClass
		rec.FunctionType = TypeMethod
	} else {
		rec.Scope = ScopeGlobal
		rec.FunctionType = TypeFunction
	}
	return rec
}

// extractArguments enumerates the parameter list, excluding any parameter
// named "self" even when it carries a type annotation or default value.
func (a *pythonAdapter) extractArguments(node *sitter.Node, source []byte) []string {
	arguments := []string{}

	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return arguments
	}

	for i := uint(0); i < parameters.ChildCount(); i++ {
		child := parameters.Child(i)
		switch child.Kind() {
		case "identifier":
			if name := nodeText(child, source); name != "self" {
				arguments = append(arguments, name)
			}
		case "typed_parameter":
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)
				if sub.Kind() == "identifier" {
					if name := nodeText(sub, source); name != "self" {
						arguments = append(arguments, name)
					}
					break
				}
			}
		case "default_parameter":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				if name := nodeText(nameNode, source); name != "self" {
					arguments = append(arguments, name)
				}
			}
		}
	}
	return arguments
}

// extractDocstring takes the docstring from the first statement of the
// function body when it is a string literal. Unlike the other languages,
// Python documentation lives inside the definition, not before it.
func (a *pythonAdapter) extractDocstring(node *sitter.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return ""
	}

	// Only the first statement qualifies; a string later in the body is
	// just an expression.
	first := body.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" {
		return ""
	}
	for j := uint(0); j < first.ChildCount(); j++ {
		sub := first.Child(j)
		if sub.Kind() == "string" {
			text := nodeText(sub, source)
			return strings.TrimSpace(strings.Trim(text, `"'`))
		}
	}
	return ""
}
