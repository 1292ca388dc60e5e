package extractor

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

// cppAdapter extracts function, method, and constructor definitions from
// C++ files.
type cppAdapter struct {
	*treeAdapter
}

// NewCppAdapter creates a new C++ adapter.
func NewCppAdapter() Adapter {
	lang := sitter.NewLanguage(cpp.Language())
	return &cppAdapter{
		treeAdapter: newTreeAdapter(lang, LangCpp),
	}
}

func (a *cppAdapter) DefinitionKinds() []string {
	return []string{"function_definition"}
}

func (a *cppAdapter) Extract(node *sitter.Node, source []byte, filePath string) FunctionRecord {
	rec := a.baseRecord(node, source, filePath)
	rec.Name = a.extractName(node.ChildByFieldName("declarator"), source)
	rec.Arguments = extractDeclaratorArguments(node, source)
	rec.Docstring = blockDocComment(node, source, "comment")
	rec.Modifiers = a.extractModifiers(node, source)
	rec.Scope, rec.FunctionType = a.classify(node, rec.Name, source)
	return rec
}

// extractName resolves the declared identifier through pointer and
// reference wrapping. Inside a function declarator the name may be a plain
// identifier, a field_identifier (in-class definition), or a
// qualified_identifier (out-of-line definition).
func (a *cppAdapter) extractName(declarator *sitter.Node, source []byte) string {
	if declarator == nil {
		return "unknown"
	}

	switch declarator.Kind() {
	case "function_declarator":
		inner := declarator.ChildByFieldName("declarator")
		if inner == nil {
			return "unknown"
		}
		switch inner.Kind() {
		case "identifier", "field_identifier":
			return nodeText(inner, source)
		case "qualified_identifier":
			for i := uint(0); i < inner.ChildCount(); i++ {
				if child := inner.Child(i); child.Kind() == "identifier" {
					return nodeText(child, source)
				}
			}
			return "unknown"
		default:
			return a.extractName(inner, source)
		}
	case "pointer_declarator", "reference_declarator":
		return a.extractName(declarator.ChildByFieldName("declarator"), source)
	}
	return "unknown"
}

// classify walks the ancestry for a class or struct specifier. Inside one,
// a definition whose name matches the enclosing type name is a constructor,
// anything else a method.
func (a *cppAdapter) classify(node *sitter.Node, name string, source []byte) (Scope, FunctionType) {
	enclosing := findAncestor(node, "class_specifier", "struct_specifier")
	if enclosing == nil {
		return ScopeGlobal, TypeFunction
	}

	className := nodeText(enclosing.ChildByFieldName("name"), source)
	if className != "" && className == name {
		return ScopeClass, TypeConstructor
	}
	return ScopeClass, TypeMethod
}

// extractModifiers collects storage specifiers plus "virtual". Depending on
// grammar version the virtual specifier surfaces as its own node kind.
func (a *cppAdapter) extractModifiers(node *sitter.Node, source []byte) []string {
	modifiers := extractStorageModifiers(node, source)

	for i := uint(0); i < node.ChildCount(); i++ {
		switch node.Child(i).Kind() {
		case "virtual_function_specifier", "virtual":
			modifiers = append(modifiers, "virtual")
		}
	}
	return modifiers
}
