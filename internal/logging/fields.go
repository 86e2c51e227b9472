// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldOutputDir  = "output_dir"
	FieldWorkingDir = "working_dir"

	// Pipeline fields.
	FieldStage    = "stage"
	FieldLine     = "line"
	FieldColumn   = "column"
	FieldTokens   = "tokens"
	FieldNodes    = "nodes"
	FieldAttrs    = "attrs"
	FieldRunes    = "runes"
	FieldDuration = "duration"

	// Configuration fields.
	FieldMaxTokens = "max_tokens"
	FieldMaxNodes  = "max_nodes"
	FieldMaxAttrs  = "max_attrs"
	FieldMaxOutput = "max_output"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
