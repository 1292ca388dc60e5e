package extractor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Rust adapter:
// - function_item nodes are extracted at module level and inside impl blocks
// - self, &self, and &mut self never appear in arguments
// - "///" doc comments immediately above the item become the docstring
// - impl members get impl scope and method type
// - pub, async, unsafe, and const surface as modifiers

func TestRust_Functions(t *testing.T) {
	t.Parallel()

	records := extractFixture(t, filepath.Join("rust", "sample.rs"))
	require.Equal(t, []string{"greet", "add", "no_args"}, recordNames(records))

	greet := recordByName(t, records, "greet")
	assert.Equal(t, LangRust, greet.Language)
	assert.Equal(t, TypeFunction, greet.FunctionType)
	assert.Equal(t, ScopeGlobal, greet.Scope)
	assert.Equal(t, []string{"name"}, greet.Arguments)
	assert.Equal(t, "Greet a person", greet.Docstring)
	assert.Empty(t, greet.Modifiers)

	add := recordByName(t, records, "add")
	assert.Equal(t, []string{"a", "b"}, add.Arguments)
	assert.Equal(t, []string{"pub"}, add.Modifiers)
	assert.Equal(t, "Add two numbers", add.Docstring)

	noArgs := recordByName(t, records, "no_args")
	assert.Empty(t, noArgs.Arguments)
	assert.Empty(t, noArgs.Docstring)
}

func TestRust_ImplMethods(t *testing.T) {
	t.Parallel()

	records := extractFixture(t, filepath.Join("rust", "with_impl.rs"))
	require.Equal(t,
		[]string{"new", "add", "multiply", "standalone_function"},
		recordNames(records))

	for _, name := range []string{"new", "add", "multiply"} {
		rec := recordByName(t, records, name)
		assert.Equal(t, ScopeImpl, rec.Scope, name)
		assert.Equal(t, TypeMethod, rec.FunctionType, name)
	}

	add := recordByName(t, records, "add")
	assert.Equal(t, []string{"x", "y"}, add.Arguments, "&mut self must be excluded")

	multiply := recordByName(t, records, "multiply")
	assert.Equal(t, []string{"pub"}, multiply.Modifiers)
	assert.Equal(t, "Multiply two numbers", multiply.Docstring)
	assert.Equal(t, 1, multiply.CommentLines)

	standalone := recordByName(t, records, "standalone_function")
	assert.Equal(t, ScopeGlobal, standalone.Scope)
	assert.Equal(t, TypeFunction, standalone.FunctionType)
	assert.Equal(t, "A standalone function", standalone.Docstring)
}

func TestRust_Modifiers(t *testing.T) {
	t.Parallel()

	records := extractFixture(t, filepath.Join("rust", "with_modifiers.rs"))
	require.Len(t, records, 3)

	fetch := recordByName(t, records, "fetch")
	assert.Equal(t, []string{"pub", "async"}, fetch.Modifiers)
	assert.Equal(t, "An async worker", fetch.Docstring)

	poke := recordByName(t, records, "poke")
	assert.Equal(t, []string{"unsafe"}, poke.Modifiers)

	maxSize := recordByName(t, records, "max_size")
	assert.Equal(t, []string{"const"}, maxSize.Modifiers)
	assert.Empty(t, maxSize.Docstring)
}
