package betacode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/betacode/greek"
)

// Letter atoms shared by both schemes, keyed by the lowercase atom.
var baseLetters = map[byte]rune{
	'a': 'α', 'b': 'β', 'g': 'γ', 'd': 'δ', 'e': 'ε', 'z': 'ζ',
	'h': 'η', 'q': 'θ', 'i': 'ι', 'k': 'κ', 'l': 'λ', 'm': 'μ',
	'n': 'ν', 'o': 'ο', 'p': 'π', 'r': 'ρ', 's': 'σ', 't': 'τ',
	'u': 'υ', 'f': 'φ', 'y': 'ψ', 'w': 'ω',
}

// Scheme-specific letter atoms. The Default scheme follows the
// Robinson-Pierpont usage where 'v' is a sigma and 'c' is chi; TLG
// reserves 'v' for digamma and writes chi as 'x'. Neither scheme maps
// all 26 ASCII letters, so e.g. 'x' under Default is an invalid atom.
var (
	defaultLetters = map[byte]rune{'v': greek.Sigma, 'j': greek.FinalSigma, 'c': 'χ'}
	tlgLetters     = map[byte]rune{'v': 'ϝ', 'c': 'ξ', 'x': 'χ'}
)

// Diacritic atoms. '^' is accepted as an alias for '='.
var diacriticAtoms = map[byte]greek.MarkSet{
	'/':  greek.Acute,
	'\\': greek.Grave,
	'=':  greek.Circumflex,
	'^':  greek.Circumflex,
	'(':  greek.Rough,
	')':  greek.Smooth,
	'+':  greek.Diaeresis,
	'|':  greek.IotaSubscript,
}

// Punctuation passing through unchanged in both directions. '(' and ')'
// are breathing atoms in betacode, never parentheses.
var passthrough = map[byte]bool{
	'.': true, ',': true, ':': true, ';': true, '!': true,
	'?': true, '-': true, '_': true, '"': true,
}

// elision is emitted for the betacode apostrophe (GREEK KORONIS).
const elision = '᾽'

func letterFor(c byte, scheme Scheme) (rune, bool) {
	lower := c
	capital := c >= 'A' && c <= 'Z'
	if capital {
		lower = c + 'a' - 'A'
	}
	r, ok := baseLetters[lower]
	if !ok {
		switch scheme {
		case Default:
			r, ok = defaultLetters[lower]
		case TLG:
			r, ok = tlgLetters[lower]
		}
	}
	if !ok {
		return 0, false
	}
	// TLG letter atoms are case-insensitive; only '*' capitalizes.
	if scheme == Default && capital {
		r = unicode.ToUpper(r)
	}
	return r, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// wordFinal reports whether byte position i of the betacode input sits at
// a word boundary.
func wordFinal(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	c := s[i]
	return isSpace(c) || passthrough[c] || c == '\''
}

func sigmaForm(base rune, form byte) rune {
	capital := base == greek.CapitalSigma
	switch form {
	case '1':
		return base // medial form; capital sigma has only one form
	case '2':
		if capital {
			return greek.CapitalSigma
		}
		return greek.FinalSigma
	default: // '3'
		if capital {
			return greek.CapitalLunateSigma
		}
		return greek.LunateSigma
	}
}

// ToGreek converts a betacode string into Unicode Greek under the given
// scheme. Whitespace and ordinary punctuation pass through unchanged. The
// conversion is atomic: on error no partial output is returned.
func ToGreek(input string, scheme Scheme) (string, error) {
	tracer().Debugf("to greek: %d bytes of betacode, scheme %s", len(input), scheme)
	var out strings.Builder
	n := len(input)
	for i := 0; i < n; {
		c := input[i]
		if c >= utf8.RuneSelf {
			// Betacode is ASCII-only.
			r, _ := utf8.DecodeRuneInString(input[i:])
			return "", ConversionError{Kind: InvalidAtom, Char: r, Pos: i}
		}
		if isSpace(c) || passthrough[c] {
			out.WriteByte(c)
			i++
			continue
		}
		if c == '\'' {
			out.WriteRune(elision)
			i++
			continue
		}
		pos := i
		capital := false
		if scheme == TLG && c == '*' {
			capital = true
			i++
			if i == n {
				return "", ConversionError{Kind: InvalidAtom, Char: '*', Pos: pos}
			}
			c = input[i]
		}
		base, ok := letterFor(c, scheme)
		if !ok {
			if capital {
				// '*' must be followed by a letter atom
				return "", ConversionError{Kind: InvalidAtom, Char: '*', Pos: pos}
			}
			return "", ConversionError{Kind: InvalidAtom, Char: rune(c), Pos: i}
		}
		if capital {
			base = unicode.ToUpper(base)
		}
		i++

		// greedily consume trailing diacritics and sigma form selectors
		var marks greek.MarkSet
		form := byte(0)
		for i < n {
			d := input[i]
			if m, ok := diacriticAtoms[d]; ok && form == 0 {
				if !greek.Legal(base, marks|m) {
					return "", ConversionError{Kind: InvalidCombination, Char: rune(d), Pos: i}
				}
				marks |= m
				i++
				continue
			}
			if d >= '1' && d <= '3' {
				if !greek.IsSigma(base) || marks != 0 || form != 0 {
					return "", ConversionError{Kind: InvalidCombination, Char: rune(d), Pos: i}
				}
				form = d
				i++
				continue
			}
			break
		}

		if form != 0 {
			out.WriteRune(sigmaForm(base, form))
			continue
		}
		if base == greek.Sigma && marks == 0 && wordFinal(input, i) {
			// a bare sigma at a word boundary takes its final form
			out.WriteRune(greek.FinalSigma)
			continue
		}
		// marks were validated atom by atom, so composition cannot fail
		cluster, _ := greek.Compose(base, marks)
		out.WriteString(cluster)
	}
	return out.String(), nil
}
