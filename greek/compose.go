package greek

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Legal reports whether the given mark set may sit on the base letter.
// An empty set is legal on any letter.
func Legal(base rune, marks MarkSet) bool {
	if marks == 0 {
		return true
	}
	l := unicode.ToLower(base)
	if marks.Has(Smooth) && marks.Has(Rough) {
		return false
	}
	if marks.Has(Smooth|Rough) && marks.Has(Diaeresis) {
		return false
	}
	accents := 0
	for _, a := range []MarkSet{Acute, Grave, Circumflex} {
		if marks.Has(a) {
			accents++
		}
	}
	if accents > 1 {
		return false
	}
	if marks.Has(Smooth|Rough) && !takeBreath[l] {
		return false
	}
	if marks.Has(Acute|Grave) && !vowels[l] {
		return false
	}
	if marks.Has(Circumflex) && !takeCircumfl[l] {
		return false
	}
	if marks.Has(Diaeresis) && !takeDiaeres[l] {
		return false
	}
	if marks.Has(IotaSubscript) && !takeIotaSub[l] {
		return false
	}
	return true
}

// Compose builds the grapheme cluster for a base letter carrying marks.
// The cluster is NFC-normalized: a single precomposed codepoint where
// Unicode defines one, the base letter followed by combining marks in
// canonical order otherwise. ok is false when the marks are not legal on
// the base letter (see Legal).
func Compose(base rune, marks MarkSet) (cluster string, ok bool) {
	if !Legal(base, marks) {
		tracer().Debugf("illegal mark set [%s] on %#U", marks, base)
		return "", false
	}
	if marks == 0 {
		return string(base), true
	}
	var b strings.Builder
	b.WriteRune(base)
	for _, mo := range markOrder {
		if marks.Has(mo.mark) {
			b.WriteRune(mo.comb)
		}
	}
	return norm.NFC.String(b.String()), true
}
