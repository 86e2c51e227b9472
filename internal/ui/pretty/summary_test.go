package pretty

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

func compileFixture(t *testing.T, input string) *compile.Result {
	t.Helper()

	c := compile.New(htmlast.DefaultLimits())
	result, err := c.CompileBytes(context.Background(), "page.html", []byte(input))
	require.NoError(t, err)
	return result
}

func TestFormatCompileOneLine(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	result := compileFixture(t, "<html><body></body></html>")

	out := styles.FormatCompileOneLine("page.html", "out/0.html", result)
	assert.Contains(t, out, "page.html")
	assert.Contains(t, out, "out/0.html")
	assert.Contains(t, out, "2 nodes")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormatCompileSummary(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	result := compileFixture(t, `<div class="a"><p></p></div>`)

	out := styles.FormatCompileSummary("page.html", result)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Elements:   2")
	assert.Contains(t, out, "Attributes: 1")
	assert.Contains(t, out, "Compiled")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Truncate("short", 40))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	// Degenerate widths leave the line alone.
	assert.Equal(t, "abcdefgh", Truncate("abcdefgh", 3))
}

func TestTerminalWidth(t *testing.T) {
	t.Parallel()

	var sink strings.Builder
	assert.Equal(t, 80, TerminalWidth(&sink))
	assert.Equal(t, 80, TerminalWidth(nil))
}
