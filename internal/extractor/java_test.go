package extractor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Java adapter:
// - Method and constructor declarations are both extracted
// - A constructor is typed "constructor", named after its class
// - Javadoc ("/** ... */") immediately above becomes a one-line docstring
// - Access and storage keywords surface as modifiers, in declaration order
// - Members of a class get class scope

func TestJava_Methods(t *testing.T) {
	t.Parallel()

	records := extractFixture(t, filepath.Join("java", "Sample.java"))
	require.Equal(t, []string{"greet", "add", "noArgs"}, recordNames(records))

	greet := recordByName(t, records, "greet")
	assert.Equal(t, LangJava, greet.Language)
	assert.Equal(t, TypeMethod, greet.FunctionType)
	assert.Equal(t, ScopeClass, greet.Scope)
	assert.Equal(t, []string{"name"}, greet.Arguments)
	assert.Equal(t, "Greet a person by name", greet.Docstring)
	assert.Equal(t, []string{"public"}, greet.Modifiers)

	add := recordByName(t, records, "add")
	assert.Equal(t, []string{"a", "b"}, add.Arguments)
	assert.Equal(t, "Add two numbers", add.Docstring)

	noArgs := recordByName(t, records, "noArgs")
	assert.Equal(t, []string{"private"}, noArgs.Modifiers)
	assert.Empty(t, noArgs.Arguments)
	assert.Empty(t, noArgs.Docstring)
}

func TestJava_ConstructorAndStaticMethod(t *testing.T) {
	t.Parallel()

	records := extractFixture(t, filepath.Join("java", "WithClass.java"))
	require.Equal(t,
		[]string{"Calculator", "add", "multiply", "reset"},
		recordNames(records))

	constructor := recordByName(t, records, "Calculator")
	assert.Equal(t, TypeConstructor, constructor.FunctionType)
	assert.Equal(t, ScopeClass, constructor.Scope)
	assert.Equal(t, []string{"public"}, constructor.Modifiers)
	assert.Equal(t, "Create a new calculator", constructor.Docstring)
	assert.Empty(t, constructor.Arguments)

	multiply := recordByName(t, records, "multiply")
	assert.Equal(t, []string{"public", "static"}, multiply.Modifiers)
	assert.Equal(t, "Multiply two numbers", multiply.Docstring)
	assert.Equal(t, 1, multiply.CommentLines)

	reset := recordByName(t, records, "reset")
	assert.Equal(t, []string{"private"}, reset.Modifiers)
	assert.Equal(t, "A private helper method", reset.Docstring)
}
