package htmlast

// Default capacities. The pipeline works over pre-sized buffers; every
// limit is enforced with an explicit "capacity exceeded" error rather than
// silent truncation or unbounded growth.
const (
	DefaultMaxTokens = 2048
	DefaultMaxNodes  = 1024
	DefaultMaxAttrs  = 2048
	DefaultMaxOutput = 65536 // in runes
)

// Limits configures the capacities of one pipeline invocation.
// Zero-valued fields fall back to the defaults.
type Limits struct {
	MaxTokens int
	MaxNodes  int
	MaxAttrs  int
	MaxOutput int
}

// DefaultLimits returns the default capacity configuration.
func DefaultLimits() Limits {
	return Limits{
		MaxTokens: DefaultMaxTokens,
		MaxNodes:  DefaultMaxNodes,
		MaxAttrs:  DefaultMaxAttrs,
		MaxOutput: DefaultMaxOutput,
	}
}

// Normalized returns a copy of l with zero or negative fields replaced by
// the defaults.
func (l Limits) Normalized() Limits {
	d := DefaultLimits()
	if l.MaxTokens > 0 {
		d.MaxTokens = l.MaxTokens
	}
	if l.MaxNodes > 0 {
		d.MaxNodes = l.MaxNodes
	}
	if l.MaxAttrs > 0 {
		d.MaxAttrs = l.MaxAttrs
	}
	if l.MaxOutput > 0 {
		d.MaxOutput = l.MaxOutput
	}
	return d
}
