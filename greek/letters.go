package greek

import "unicode"

// The sigma forms get named constants as they need special treatment in
// both transliteration directions (automatic final form at word
// boundaries, explicit form selectors).
const (
	Sigma              = 'σ'
	FinalSigma         = 'ς'
	CapitalSigma       = 'Σ'
	LunateSigma        = 'ϲ'
	CapitalLunateSigma = 'Ϲ'
)

// Letter classes, keyed by the lowercase letter. Uppercase letters follow
// the rules of their lowercase counterpart.
var (
	vowels       = runeSet("αεηιουω")
	takeBreath   = runeSet("αεηιουωρ") // rho carries breathings, too
	takeCircumfl = runeSet("αηιυω")    // no circumflex on short vowels
	takeIotaSub  = runeSet("αηω")
	takeDiaeres  = runeSet("ιυ")
)

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// IsVowel reports whether r is a Greek vowel, in either case.
func IsVowel(r rune) bool {
	return vowels[unicode.ToLower(r)]
}

// IsSigma reports whether r is a non-final sigma, in either case.
func IsSigma(r rune) bool {
	return r == Sigma || r == CapitalSigma
}
