package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for metrics:
// - CountLines skips blank lines and separates comment lines from code lines
// - CountLines treats #, //, /* and * prefixes as comments, per line
// - loc + commentLines + blank lines always equals the total line count
// - Complexity is 1 for straight-line code (the floor)
// - Complexity counts each branching keyword occurrence, lexically
// - Complexity grows monotonically as branches are appended

func TestCountLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		code         string
		wantLOC      int
		wantComments int
	}{
		{
			name:         "empty string",
			code:         "",
			wantLOC:      0,
			wantComments: 0,
		},
		{
			name:         "single code line",
			code:         "return 42",
			wantLOC:      1,
			wantComments: 0,
		},
		{
			name:         "blank lines are skipped",
			code:         "a = 1\n\n\nb = 2",
			wantLOC:      2,
			wantComments: 0,
		},
		{
			name:         "hash comment",
			code:         "# setup\nx = 1",
			wantLOC:      1,
			wantComments: 1,
		},
		{
			name:         "slash comments and block comment lines",
			code:         "// sum\nint add() {\n    /* body\n     * continued\n     */\n    return a + b;\n}",
			wantLOC:      3,
			wantComments: 4,
		},
		{
			name:         "indented comment still counts",
			code:         "def f():\n    # inner note\n    return 1",
			wantLOC:      2,
			wantComments: 1,
		},
		{
			name:         "whitespace only lines are blank",
			code:         "x = 1\n   \t\ny = 2",
			wantLOC:      2,
			wantComments: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loc, comments := CountLines(tt.code)
			assert.Equal(t, tt.wantLOC, loc)
			assert.Equal(t, tt.wantComments, comments)
		})
	}
}

func TestCountLines_PartitionsAllLines(t *testing.T) {
	t.Parallel()

	code := "def f(x):\n    # double it\n\n    y = x * 2\n    return y\n\n# trailing note"
	loc, comments := CountLines(code)

	blank := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) == "" {
			blank++
		}
	}
	total := strings.Count(code, "\n") + 1

	assert.Equal(t, total, loc+comments+blank)
}

func TestComplexity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want int
	}{
		{"empty", "", 1},
		{"straight line", "return 42", 1},
		{"single if", "if x > 0:\n    pass", 2},
		{"if with else", "if x:\n    a()\nelse:\n    b()", 3},
		{"loop keywords", "for i in range(3):\n    while ready():\n        pass", 3},
		{"switch with cases", "switch x {\ncase 1:\ncase 2:\n}", 4},
		{"ternary operator", "y = x?1:0", 2},
		{"spaced ternary does not match", "y = x ? 1 : 0", 1},
		{"keyword inside a string still counts", `msg = "if only"`, 2},
		{"identifier containing keyword does not count", "gift = notify()", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Complexity(tt.code))
		})
	}
}

func TestComplexity_MonotonicUnderAddedBranches(t *testing.T) {
	t.Parallel()

	code := "x = 1\n"
	prev := Complexity(code)

	for _, branch := range []string{
		"if a:\n    pass\n",
		"for i in items:\n    pass\n",
		"while running:\n    pass\n",
		"elif b:\n    pass\n",
	} {
		code += branch
		next := Complexity(code)
		assert.Greater(t, next, prev, "appending %q must increase complexity", branch)
		prev = next
	}
}
