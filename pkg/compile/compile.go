// Package compile orchestrates the webcc pipeline end to end: decode the
// input bytes, tokenize, build the tree, re-serialize the skeleton, and
// encode the result. It is the layer CLI commands call; the passes
// themselves live in codec, parser, and builder.
package compile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/webcc-dev/webcc/internal/logging"
	"github.com/webcc-dev/webcc/pkg/builder"
	"github.com/webcc-dev/webcc/pkg/codec"
	"github.com/webcc-dev/webcc/pkg/fsutil"
	"github.com/webcc-dev/webcc/pkg/htmlast"
	"github.com/webcc-dev/webcc/pkg/parser"
)

// OutputFileName is the name of the compiled file inside the output
// directory.
const OutputFileName = "0.html"

// Compiler runs the pipeline with a fixed capacity configuration.
type Compiler struct {
	limits htmlast.Limits
}

// New returns a Compiler using the given capacities. Zero-valued fields
// fall back to the defaults.
func New(limits htmlast.Limits) *Compiler {
	return &Compiler{limits: limits.Normalized()}
}

// Result describes one successful compilation.
type Result struct {
	// Tree is the parsed document.
	Tree *htmlast.Tree

	// Output is the serialized tag skeleton, UTF-8 encoded.
	Output []byte

	// Duration is the wall time of the pipeline passes, excluding I/O.
	Duration time.Duration
}

// TokenCount returns the number of tokens in the parsed document.
func (r *Result) TokenCount() int { return len(r.Tree.Tokens) }

// NodeCount returns the number of elements in the parsed document.
func (r *Result) NodeCount() int { return len(r.Tree.Nodes) }

// AttrCount returns the number of attributes in the parsed document.
func (r *Result) AttrCount() int { return len(r.Tree.Attrs) }

// CompileBytes runs the full pipeline over one in-memory document. A
// failing pass returns a Diagnostic with the position already converted to
// line and column; path is used only to label the diagnostic.
func (c *Compiler) CompileBytes(ctx context.Context, path string, input []byte) (*Result, error) {
	start := time.Now()

	src, err := codec.Decode(input)
	if err != nil {
		return nil, newDiagnostic(path, input, nil, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	tree, err := parser.Parse(src, c.limits)
	if err != nil {
		return nil, newDiagnostic(path, input, src, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	skeleton, err := builder.Build(tree, c.limits)
	if err != nil {
		return nil, newDiagnostic(path, input, src, err)
	}

	output, err := codec.Encode(skeleton)
	if err != nil {
		return nil, newDiagnostic(path, input, src, err)
	}

	return &Result{
		Tree:     tree,
		Output:   output,
		Duration: time.Since(start),
	}, nil
}

// Parse runs only the front half of the pipeline, for callers that want
// the tree without serializing it.
func (c *Compiler) Parse(path string, input []byte) (*htmlast.Tree, error) {
	src, err := codec.Decode(input)
	if err != nil {
		return nil, newDiagnostic(path, input, nil, err)
	}
	tree, err := parser.Parse(src, c.limits)
	if err != nil {
		return nil, newDiagnostic(path, input, src, err)
	}
	return tree, nil
}

// Tokenize runs only the decode and lex passes, returning the token
// stream together with the decoded buffer the spans index into.
func (c *Compiler) Tokenize(path string, input []byte) ([]htmlast.Token, []rune, error) {
	src, err := codec.Decode(input)
	if err != nil {
		return nil, nil, newDiagnostic(path, input, nil, err)
	}
	tokens, err := parser.Lex(src, c.limits)
	if err != nil {
		return nil, nil, newDiagnostic(path, input, src, err)
	}
	return tokens, src, nil
}

// CompileFile reads path, compiles it, and writes the result as
// OutputFileName inside outDir, creating the directory if needed.
// The output path is returned.
func (c *Compiler) CompileFile(ctx context.Context, path, outDir string) (string, *Result, error) {
	logger := logging.FromContext(ctx)

	input, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return "", nil, err
	}
	logger.Debug("read input",
		logging.FieldPath, path,
		"size", info.Size)

	result, err := c.CompileBytes(ctx, path, input)
	if err != nil {
		return "", nil, err
	}

	if err := fsutil.EnsureDir(outDir); err != nil {
		return "", nil, err
	}

	outPath := filepath.Join(outDir, OutputFileName)
	if err := fsutil.WriteAtomic(ctx, outPath, result.Output, 0); err != nil {
		return "", nil, err
	}

	logger.Debug("wrote output",
		logging.FieldOutput, outPath,
		logging.FieldTokens, result.TokenCount(),
		logging.FieldNodes, result.NodeCount(),
		logging.FieldDuration, result.Duration)

	return outPath, result, nil
}
