package htmlast

import "fmt"

// Stage identifies the pipeline pass that raised an error.
type Stage string

const (
	StageDecode Stage = "decode"
	StageLex    Stage = "lex"
	StageParse  Stage = "parse"
	StageBuild  Stage = "build"
	StageEncode Stage = "encode"
)

// SourceError is a fatal pipeline error located in the source buffer.
// Offset is a rune index into the code-point buffer (a byte index for
// StageDecode, which fails before decoding completes). Err wraps the
// category sentinel so callers can match with errors.Is.
type SourceError struct {
	Stage  Stage
	Offset int
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v at offset %d", e.Stage, e.Err, e.Offset)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err as a positioned error for the given stage.
func NewSourceError(stage Stage, offset int, err error) *SourceError {
	return &SourceError{Stage: stage, Offset: offset, Err: err}
}
