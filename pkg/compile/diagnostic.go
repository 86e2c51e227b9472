package compile

import (
	"errors"
	"fmt"

	"github.com/webcc-dev/webcc/pkg/codec"
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// Diagnostic is a pipeline failure with its position already converted to
// a 1-based line and column. It wraps the underlying positioned error, so
// errors.Is still matches the category sentinels.
type Diagnostic struct {
	// Path labels the input the diagnostic refers to.
	Path string

	// Stage is the pipeline pass that failed.
	Stage htmlast.Stage

	// Message is the human-readable fault description.
	Message string

	// Line and Column locate the fault, 1-based, counted in code points.
	Line   int
	Column int

	// SourceLine is the text of the offending line, for caret rendering.
	// Empty when the source could not be decoded.
	SourceLine string

	// Err is the underlying positioned error.
	Err error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s on line %d, column %d", d.Stage, d.Message, d.Line, d.Column)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// newDiagnostic converts a positioned pipeline error into a Diagnostic.
// src is the decoded buffer, or nil when decoding itself failed; in that
// case the valid prefix of input is decoded to recover the position.
func newDiagnostic(path string, input []byte, src []rune, err error) error {
	var (
		stage   htmlast.Stage
		offset  int
		message string
	)
	var srcErr *htmlast.SourceError
	var decErr *codec.DecodeError
	switch {
	case errors.As(err, &srcErr):
		stage = srcErr.Stage
		offset = srcErr.Offset
		message = srcErr.Err.Error()
	case errors.As(err, &decErr):
		stage = htmlast.StageDecode
		offset = decErr.Offset
		message = decErr.Err.Error()
	default:
		return err
	}

	if src == nil {
		// Decode failures are located by byte offset and everything
		// before the fault is well-formed.
		src, offset = decodePrefix(input, offset)
	}

	index := htmlast.NewLineIndex(src)
	pos := index.At(offset)

	d := &Diagnostic{
		Path:    path,
		Stage:   stage,
		Message: message,
		Line:    pos.Line,
		Column:  pos.Column,
		Err:     err,
	}
	start, end := index.LineSpan(pos.Line)
	d.SourceLine = string(src[start:end])
	return d
}

// decodePrefix decodes the bytes before byteOffset, which are valid by
// construction, and returns the rune offset of the fault.
func decodePrefix(input []byte, byteOffset int) ([]rune, int) {
	if byteOffset > len(input) {
		byteOffset = len(input)
	}
	src, err := codec.Decode(input[:byteOffset])
	if err != nil {
		src = []rune(string(input[:byteOffset]))
	}
	return src, len(src)
}
