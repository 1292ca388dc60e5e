package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

// goAdapter extracts function and method declarations from Go files.
type goAdapter struct {
	*treeAdapter
}

// NewGoAdapter creates a new Go adapter.
func NewGoAdapter() Adapter {
	lang := sitter.NewLanguage(golang.Language())
	return &goAdapter{
		treeAdapter: newTreeAdapter(lang, LangGo),
	}
}

func (a *goAdapter) DefinitionKinds() []string {
	return []string{"function_declaration", "method_declaration"}
}

func (a *goAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = nameOrUnknown(node.ChildByFieldName("name"), source)
	rec.Arguments = a.extractArguments(node, source)
	rec.Docstring = lineDocComment(node, source, []string{"comment"}, []string{"//"})

	// The receiver lives in its own field on method_declaration nodes, so
	// kind alone decides the classification. Go has no constructors.
	if node.Kind() == "method_declaration" {
		rec.Scope = ScopeMethod
		rec.FunctionType = TypeMethod
	} else {
		rec.Scope = ScopeGlobal
		rec.FunctionType = TypeFunction
	}
	return rec
}

// extractArguments enumerates the parameter list. Comma-grouped parameters
// sharing one type ("a, b int") yield one entry per bound identifier. The
// receiver is never part of the "parameters" field.
func (a *goAdapter) extractArguments(node *sitter.Node, source []byte) []string {
	arguments := []string{}

	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return arguments
	}

	for i := uint(0); i < parameters.ChildCount(); i++ {
		child := parameters.Child(i)
		if child.Kind() != "parameter_declaration" {
			continue
		}
		for j := uint(0); j < child.ChildCount(); j++ {
			sub := child.Child(j)
			if sub.Kind() == "identifier" {
				arguments = append(arguments, nodeText(sub, source))
			}
		}
	}
	return arguments
}
