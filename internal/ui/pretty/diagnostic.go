package pretty

import (
	"fmt"
	"strings"

	"github.com/webcc-dev/webcc/pkg/compile"
)

// FormatDiagnostic formats a compile diagnostic for terminal output, with
// the offending source line and a caret when showContext is set.
func (s *Styles) FormatDiagnostic(diag *compile.Diagnostic, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.Path),
		diag.Line,
		diag.Column,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(diag.Message),
		s.Stage.Render("("+string(diag.Stage)+")"),
	))

	if showContext && diag.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(diag.SourceLine, diag.Column, TerminalWidth(nil)))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker. Lines
// wider than width are truncated, and the caret is dropped when it would
// point past the cut.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	shown := Truncate(line, width-len(indent))
	builder.WriteString(indent + s.SourceLine.Render(shown) + "\n")
	if len(shown) < len(line) && column > len([]rune(shown)) {
		return builder.String()
	}

	if column > 0 && column <= len([]rune(line))+1 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
