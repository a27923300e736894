package betacode

import "fmt"

// ErrorKind classifies conversion failures.
type ErrorKind int

const (
	// InvalidAtom indicates a character with no mapping in the active
	// scheme's rule table.
	InvalidAtom ErrorKind = iota
	// InvalidCombination indicates a diacritic atom riding on a base
	// letter that cannot legally carry it.
	InvalidCombination
	// UnmappedGrapheme indicates a Greek codepoint or combining-mark
	// combination without a betacode rendering under the active scheme.
	UnmappedGrapheme
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidAtom:
		return "invalid atom"
	case InvalidCombination:
		return "invalid combination"
	case UnmappedGrapheme:
		return "unmapped grapheme"
	}
	return "unknown"
}

// ConversionError reports the character a conversion stumbled over,
// together with its position in the input. Pos counts bytes for betacode
// input (ToGreek) and runes for Greek input (ToBetacode).
type ConversionError struct {
	Kind ErrorKind
	Char rune
	Pos  int
}

// Error implements the error interface.
func (e ConversionError) Error() string {
	return fmt.Sprintf("%s: %#U at position %d", e.Kind, e.Char, e.Pos)
}
