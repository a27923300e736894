package betacode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/betacode/greek"
)

// Reverse letter tables: lowercase Greek letter → betacode atom. The
// sigma forms are absent on purpose, they are rendered position-aware.
var greekLetters = map[rune]byte{
	'α': 'a', 'β': 'b', 'γ': 'g', 'δ': 'd', 'ε': 'e', 'ζ': 'z',
	'η': 'h', 'θ': 'q', 'ι': 'i', 'κ': 'k', 'λ': 'l', 'μ': 'm',
	'ν': 'n', 'ο': 'o', 'π': 'p', 'ρ': 'r', 'τ': 't', 'υ': 'u',
	'φ': 'f', 'ψ': 'y', 'ω': 'w',
}

var (
	defaultGreek = map[rune]byte{'χ': 'c'}
	tlgGreek     = map[rune]byte{'χ': 'x', 'ξ': 'c', 'ϝ': 'v'}
)

// Betacode atoms for each mark, in canonical output order: breathing,
// diaeresis, accent, iota subscript.
var markAtoms = []struct {
	mark greek.MarkSet
	atom byte
}{
	{greek.Rough, '('},
	{greek.Smooth, ')'},
	{greek.Diaeresis, '+'},
	{greek.Acute, '/'},
	{greek.Grave, '\\'},
	{greek.Circumflex, '='},
	{greek.IotaSubscript, '|'},
}

func atomFor(lower rune, scheme Scheme) (byte, bool) {
	if a, ok := greekLetters[lower]; ok {
		return a, true
	}
	var a byte
	var ok bool
	switch scheme {
	case Default:
		a, ok = defaultGreek[lower]
	case TLG:
		a, ok = tlgGreek[lower]
	}
	return a, ok
}

func writeLetter(out *strings.Builder, atom byte, capital bool, scheme Scheme) {
	if !capital {
		out.WriteByte(atom)
		return
	}
	if scheme == TLG {
		out.WriteByte('*')
		out.WriteByte(atom)
		return
	}
	out.WriteByte(atom - 'a' + 'A')
}

func greekPassthrough(r rune) bool {
	if r < utf8.RuneSelf {
		return passthrough[byte(r)]
	}
	// ano teleia (and its NFD singleton, the middle dot)
	return r == '·' || r == '·'
}

// wordFinalGreek reports whether rune position i of the NFD rune stream
// sits at a word boundary.
func wordFinalGreek(rs []rune, i int) bool {
	if i >= len(rs) {
		return true
	}
	r := rs[i]
	return unicode.IsSpace(r) || greekPassthrough(r) || r == elision || r == '’'
}

// ToBetacode converts a Unicode Greek string into betacode under the
// given scheme. Input may be precomposed or in combining-sequence form;
// it is NFD-decomposed before scanning, and all error positions refer to
// the decomposed rune stream. The conversion is atomic: on error no
// partial output is returned.
func ToBetacode(input string, scheme Scheme) (string, error) {
	tracer().Debugf("to betacode: %d bytes of Greek, scheme %s", len(input), scheme)
	runes := []rune(norm.NFD.String(input))
	var out strings.Builder
	n := len(runes)
	for i := 0; i < n; {
		r := runes[i]
		pos := i
		if unicode.IsSpace(r) || greekPassthrough(r) {
			out.WriteRune(r)
			i++
			continue
		}
		if r == elision || r == '’' {
			out.WriteByte('\'')
			i++
			continue
		}

		// collect the combining marks following the base letter
		var marks greek.MarkSet
		i++
		for i < n {
			m, ok := greek.MarkFor(runes[i])
			if !ok {
				break
			}
			marks |= m
			i++
		}
		if i < n && unicode.Is(unicode.Mn, runes[i]) {
			// a combining mark outside the polytonic inventory
			return "", ConversionError{Kind: UnmappedGrapheme, Char: runes[i], Pos: i}
		}

		switch r {
		case greek.Sigma, greek.FinalSigma, greek.CapitalSigma,
			greek.LunateSigma, greek.CapitalLunateSigma:
			if marks != 0 {
				return "", ConversionError{Kind: UnmappedGrapheme, Char: r, Pos: pos}
			}
			switch r {
			case greek.Sigma:
				out.WriteByte('s')
				if wordFinalGreek(runes, i) {
					out.WriteByte('1') // medial form despite word-final position
				}
			case greek.FinalSigma:
				out.WriteByte('s')
				if !wordFinalGreek(runes, i) {
					out.WriteByte('2') // final form despite medial position
				}
			case greek.CapitalSigma:
				writeLetter(&out, 's', true, scheme)
			case greek.LunateSigma:
				out.WriteString("s3")
			case greek.CapitalLunateSigma:
				writeLetter(&out, 's', true, scheme)
				out.WriteByte('3')
			}
			continue
		}

		lower := unicode.ToLower(r)
		atom, ok := atomFor(lower, scheme)
		if !ok {
			return "", ConversionError{Kind: UnmappedGrapheme, Char: r, Pos: pos}
		}
		if !greek.Legal(r, marks) {
			return "", ConversionError{Kind: UnmappedGrapheme, Char: r, Pos: pos}
		}
		writeLetter(&out, atom, unicode.IsUpper(r), scheme)
		for _, ma := range markAtoms {
			if marks.Has(ma.mark) {
				out.WriteByte(ma.atom)
			}
		}
	}
	return out.String(), nil
}
