package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/webcc-dev/webcc/pkg/compile"
)

const (
	defaultTermWidth    = 80
	summaryDividerWidth = 40
)

// FormatCompileOneLine formats one successful compilation as a single line.
// Example: "index.html -> out/0.html (3 nodes, 14 tokens, 312µs)".
func (s *Styles) FormatCompileOneLine(path, outPath string, result *compile.Result) string {
	return fmt.Sprintf("%s %s %s %s\n",
		s.FilePath.Render(path),
		s.Dim.Render("->"),
		s.FilePath.Render(outPath),
		s.Dim.Render(fmt.Sprintf("(%d nodes, %d tokens, %s)",
			result.NodeCount(), result.TokenCount(), result.Duration.Round(0))),
	)
}

// FormatCompileSummary formats a compilation result as a summary block.
func (s *Styles) FormatCompileSummary(path string, result *compile.Result) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Input:      " + s.SummaryValue.Render(path) + "\n")
	builder.WriteString("  Tokens:     " + s.SummaryValue.Render(strconv.Itoa(result.TokenCount())) + "\n")
	builder.WriteString("  Elements:   " + s.SummaryValue.Render(strconv.Itoa(result.NodeCount())) + "\n")
	builder.WriteString("  Attributes: " + s.SummaryValue.Render(strconv.Itoa(result.AttrCount())) + "\n")
	builder.WriteString("  Output:     " + s.SummaryValue.Render(fmt.Sprintf("%d bytes", len(result.Output))) + "\n")
	builder.WriteString("\n")
	builder.WriteString(s.Success.Render("Compiled"))
	builder.WriteString("\n")

	return builder.String()
}

// TerminalWidth returns the width of the terminal behind writer, or a
// default when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// Truncate shortens a line to fit within width, appending an ellipsis
// marker when it was cut.
func Truncate(line string, width int) string {
	if width <= 3 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}
