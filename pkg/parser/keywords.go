package parser

import "github.com/webcc-dev/webcc/pkg/codec"

// Marker literals the lexer matches against the input. They are widened to
// code points once per process so region scanning compares rune-for-rune
// against the source buffer.
var (
	kwHTML    = codec.ASCII("html")
	kwData    = codec.ASCII("data")
	kwInclude = codec.ASCII("include")

	kwScriptStart  = codec.ASCII("<script")
	kwScriptEnd    = codec.ASCII("</script>")
	kwStyleStart   = codec.ASCII("<style")
	kwStyleEnd     = codec.ASCII("</style>")
	kwCommentStart = codec.ASCII("<!--")
	kwCommentEnd   = codec.ASCII("-->")
)

// hasPrefix reports whether s begins with the marker.
func hasPrefix(s, marker []rune) bool {
	if len(s) < len(marker) {
		return false
	}
	for i, r := range marker {
		if s[i] != r {
			return false
		}
	}
	return true
}

// indexOf returns the rune index of the first occurrence of marker in s,
// or -1 if absent.
func indexOf(s, marker []rune) int {
	if len(marker) == 0 || len(marker) > len(s) {
		return -1
	}
	for i := 0; i <= len(s)-len(marker); i++ {
		if s[i] == marker[0] && hasPrefix(s[i:], marker) {
			return i
		}
	}
	return -1
}

// runesEqual reports whether two spans hold the same text.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
