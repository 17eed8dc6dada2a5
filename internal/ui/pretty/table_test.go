package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/mdast"
)

func TestFormatTokenTable_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 100)

	content := []byte("# Hi\n")
	tokens := []mdast.Token{
		{Kind: mdast.TokHash, StartOffset: 0, EndOffset: 1},
		{Kind: mdast.TokWhitespace, StartOffset: 1, EndOffset: 2},
		{Kind: mdast.TokPlaintext, StartOffset: 2, EndOffset: 4},
		{Kind: mdast.TokNewline, StartOffset: 4, EndOffset: 5},
	}

	out := formatter.FormatTokenTable(tokens, content)

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "SPAN")
	assert.Contains(t, out, "TEXT")
	assert.Contains(t, out, "hash")
	assert.Contains(t, out, "[0..1)")
	assert.Contains(t, out, `"#"`)
	assert.Contains(t, out, `"Hi"`)
	assert.Contains(t, out, `"\n"`, "newline token text should be escaped")
	assert.Contains(t, out, "4 tokens, 5 bytes")
	assert.Contains(t, out, "coverage ok")
}

func TestFormatTokenTable_BrokenCoverage(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 100)

	content := []byte("abcdef")
	// A gap between the tokens breaks the tiling invariant.
	tokens := []mdast.Token{
		{Kind: mdast.TokPlaintext, StartOffset: 0, EndOffset: 2},
		{Kind: mdast.TokPlaintext, StartOffset: 4, EndOffset: 6},
	}

	out := formatter.FormatTokenTable(tokens, content)

	assert.Contains(t, out, "coverage broken")
}

func TestFormatTokenTable_TruncatesLongText(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 100)

	long := strings.Repeat("x", 200)
	content := []byte(long)
	tokens := []mdast.Token{
		{Kind: mdast.TokPlaintext, StartOffset: 0, EndOffset: len(long)},
	}

	out := formatter.FormatTokenTable(tokens, content)

	require.Contains(t, out, "...")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 100, "no line should exceed the terminal width")
	}
}

func TestNewTableFormatter_DefaultWidth(t *testing.T) {
	styles := pretty.NewStyles(false)

	// Zero or negative width falls back to the default.
	formatter := pretty.NewTableFormatter(styles, 0)
	out := formatter.FormatTokenTable([]mdast.Token{
		{Kind: mdast.TokPlaintext, StartOffset: 0, EndOffset: 1},
	}, []byte("x"))

	assert.Contains(t, out, "1 token, 1 bytes")
}
