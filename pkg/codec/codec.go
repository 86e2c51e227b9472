// Package codec converts between UTF-8 byte streams and the code-point
// buffers the webcc pipeline operates on. Decoding validates the input and
// reports the byte offset of the first malformed sequence; it accepts the
// historical 5- and 6-byte encodings for compatibility with older tooling,
// which is why the standard library decoder is not used here.
package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed input, matchable with errors.Is.
var (
	// ErrInvalidLeadingByte indicates a byte that cannot start a sequence
	// (0x80..0xBF or 0xFE/0xFF in leading position).
	ErrInvalidLeadingByte = errors.New("invalid leading byte")

	// ErrTruncatedSequence indicates a multi-byte sequence cut short by the
	// end of input.
	ErrTruncatedSequence = errors.New("truncated multi-byte sequence")

	// ErrInvalidContinuation indicates a continuation byte not of the form
	// 10xxxxxx.
	ErrInvalidContinuation = errors.New("invalid continuation byte")

	// ErrInvalidCodePoint indicates a code point that cannot be encoded.
	ErrInvalidCodePoint = errors.New("invalid code point")
)

// DecodeError reports a malformed UTF-8 sequence at a byte offset.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode interprets data as UTF-8 and returns the decoded code points.
// Sequences of up to 6 bytes are accepted; the first malformed byte fails
// the whole call with a DecodeError.
func Decode(data []byte) ([]rune, error) {
	out := make([]rune, 0, len(data))

	for i := 0; i < len(data); {
		b := data[i]

		if b < 0x80 {
			out = append(out, rune(b))
			i++
			continue
		}

		// Count the leading ones to get the sequence length.
		n := 0
		for mask := byte(0x80); b&mask != 0; mask >>= 1 {
			n++
		}
		if n < 2 || n > 6 {
			return nil, &DecodeError{Offset: i, Err: ErrInvalidLeadingByte}
		}
		if i+n > len(data) {
			return nil, &DecodeError{Offset: i, Err: ErrTruncatedSequence}
		}

		code := rune(b & (0xFF >> (n + 1)))
		for j := 1; j < n; j++ {
			c := data[i+j]
			if c&0xC0 != 0x80 {
				return nil, &DecodeError{Offset: i + j, Err: ErrInvalidContinuation}
			}
			code = code<<6 | rune(c&0x3F)
		}

		out = append(out, code)
		i += n
	}

	return out, nil
}

// Encode emits the UTF-8 encoding of the given code points. A 6-byte
// sequence covers the full non-negative rune range, so only negative
// values are rejected.
func Encode(src []rune) ([]byte, error) {
	// Worst case outside ASCII is 6 bytes per code point; size for the
	// common mostly-ASCII case and let append grow the rest.
	out := make([]byte, 0, len(src)+len(src)/2)

	for i, ch := range src {
		switch {
		case ch < 0:
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidCodePoint, ch, i)
		case ch < 0x80:
			out = append(out, byte(ch))
		default:
			n := seqLen(ch)
			out = append(out, byte(0xFF<<(8-n))|byte(ch>>(6*(n-1))))
			for j := 1; j < n; j++ {
				out = append(out, 0x80|byte(ch>>(6*(n-j-1)))&0x3F)
			}
		}
	}

	return out, nil
}

// seqLen returns the number of bytes needed to encode a non-ASCII code
// point: 2 bytes up to 11 significant bits, then one more per 5 bits.
func seqLen(ch rune) int {
	bits := 0
	for v := ch; v != 0; v >>= 1 {
		bits++
	}
	if bits <= 11 {
		return 2
	}
	return 2 + (bits-11+4)/5
}

// ASCII widens a pure-ASCII literal into the code-point representation
// Decode produces, for building marker tables without a byte round trip.
func ASCII(s string) []rune {
	out := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = rune(s[i])
	}
	return out
}
