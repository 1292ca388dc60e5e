package extractor

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// nameOrUnknown returns the node's text, or "unknown" when the grammar
// yielded no name node for a definition.
func nameOrUnknown(node *sitter.Node, source []byte) string {
	if node == nil {
		return "unknown"
	}
	return nodeText(node, source)
}

// walkTree recursively walks a tree-sitter tree depth-first, pre-order, and
// calls the visitor for each node. Returning false from the visitor prunes
// the subtree.
func walkTree(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visit(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visit)
	}
}

// findAncestor returns the nearest ancestor of node whose kind is one of
// kinds, or nil.
func findAncestor(node *sitter.Node, kinds ...string) *sitter.Node {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		for _, kind := range kinds {
			if parent.Kind() == kind {
				return parent
			}
		}
	}
	return nil
}

// lineDocComment returns the cleaned text of a line comment immediately
// preceding the definition node, provided it starts with one of the given
// prefixes. Non-adjacent comments do not qualify.
func lineDocComment(node *sitter.Node, source []byte, kinds []string, prefixes []string) string {
	prev := node.PrevSibling()
	if prev == nil {
		return ""
	}

	matched := false
	for _, kind := range kinds {
		if prev.Kind() == kind {
			matched = true
			break
		}
	}
	if !matched {
		return ""
	}

	text := nodeText(prev, source)
	for _, prefix := range prefixes {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(text[len(prefix):])
		}
	}
	return ""
}

// blockDocComment returns the cleaned text of a "/** ... */" comment
// immediately preceding the definition node.
func blockDocComment(node *sitter.Node, source []byte, commentKind string) string {
	prev := node.PrevSibling()
	if prev == nil || prev.Kind() != commentKind {
		return ""
	}

	text := nodeText(prev, source)
	if !strings.HasPrefix(text, "/**") || len(text) < 5 {
		return ""
	}
	return cleanBlockComment(text)
}

// cleanBlockComment strips the /** and */ delimiters and the per-line
// leading "*", joining the remaining non-empty lines with a single space.
func cleanBlockComment(text string) string {
	body := text[3 : len(text)-2]

	var cleaned []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(line[1:])
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, " ")
}

// findFunctionDeclarator locates the function_declarator node inside a
// possibly wrapped declarator (pointer, reference, etc.). Shared by the C
// and C++ adapters.
func findFunctionDeclarator(declarator *sitter.Node) *sitter.Node {
	if declarator == nil {
		return nil
	}
	if declarator.Kind() == "function_declarator" {
		return declarator
	}

	for i := uint(0); i < declarator.NamedChildCount(); i++ {
		if found := findFunctionDeclarator(declarator.NamedChild(i)); found != nil {
			return found
		}
	}
	return nil
}

// identifierInDeclarator descends through pointer/reference/array declarator
// wrapping until an identifier is found. Shared by the C and C++ adapters.
func identifierInDeclarator(declarator *sitter.Node, source []byte) string {
	if declarator == nil {
		return ""
	}
	if declarator.Kind() == "identifier" {
		return nodeText(declarator, source)
	}

	for i := uint(0); i < declarator.NamedChildCount(); i++ {
		child := declarator.NamedChild(i)
		if child.Kind() == "identifier" {
			return nodeText(child, source)
		}
		if name := identifierInDeclarator(child, source); name != "" {
			return name
		}
	}
	return ""
}
