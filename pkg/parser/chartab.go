package parser

// Character traits for the low 128 code points. Everything above ASCII is
// plain text as far as the lexer is concerned.
const (
	charIdentifier = 1 << 0 // can start and continue an identifier
	charDigit      = 1 << 1 // continues an identifier, starts nothing
	charNotText    = 1 << 2 // structurally special, never part of a text run
	charWhitespace = 1 << 3
)

// charInfo is the static per-character trait table.
var charInfo = buildCharInfo()

func buildCharInfo() [128]uint8 {
	var tab [128]uint8

	tab['\n'] = charWhitespace
	tab['\r'] = charWhitespace
	tab['\t'] = charWhitespace
	tab[' '] = charWhitespace

	// The five HTML special characters, plus the interpolation braces.
	tab['<'] = charNotText
	tab['>'] = charNotText
	tab['&'] = charNotText
	tab['\''] = charNotText
	tab['"'] = charNotText
	tab['{'] = charNotText
	tab['}'] = charNotText

	tab['_'] = charIdentifier
	for c := 'A'; c <= 'Z'; c++ {
		tab[c] = charIdentifier
	}
	for c := 'a'; c <= 'z'; c++ {
		tab[c] = charIdentifier
	}
	for c := '0'; c <= '9'; c++ {
		tab[c] = charDigit
	}

	return tab
}

// hasTrait reports whether ch carries any of the given trait flags.
func hasTrait(ch rune, flags uint8) bool {
	if ch < 0 || ch > 127 {
		return false
	}
	return charInfo[ch]&flags != 0
}
