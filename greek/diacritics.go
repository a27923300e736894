package greek

import "strings"

// MarkSet is a set of combining diacritical marks riding on a single base
// letter. The zero value is the empty set.
type MarkSet uint16

const (
	Smooth        MarkSet = 1 << iota // smooth breathing (psili)
	Rough                             // rough breathing (dasia)
	Acute                             // oxia
	Grave                             // varia
	Circumflex                        // perispomeni
	Diaeresis                         // dialytika
	IotaSubscript                     // ypogegrammeni
)

// Has reports whether the set contains any of the marks in n.
func (m MarkSet) Has(n MarkSet) bool {
	return m&n != 0
}

// String returns a human-readable representation of the mark set.
func (m MarkSet) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, mo := range markOrder {
		if m.Has(mo.mark) {
			parts = append(parts, mo.name)
		}
	}
	return strings.Join(parts, "+")
}

// Combining codepoints for the marks of polytonic Greek.
const (
	combAcute      = '́' // COMBINING ACUTE ACCENT
	combGrave      = '̀' // COMBINING GRAVE ACCENT
	combCircumflex = '͂' // COMBINING GREEK PERISPOMENI
	combSmooth     = '̓' // COMBINING COMMA ABOVE
	combRough      = '̔' // COMBINING REVERSED COMMA ABOVE
	combDiaeresis  = '̈' // COMBINING DIAERESIS
	combIotaSub    = 'ͅ' // COMBINING GREEK YPOGEGRAMMENI
)

// markOrder fixes the canonical order in which marks attach to a base
// letter: breathing or diaeresis bind closest, accents follow, iota
// subscript comes last. This matches the order NFD produces when
// decomposing precomposed polytonic codepoints.
var markOrder = []struct {
	mark MarkSet
	comb rune
	name string
}{
	{Smooth, combSmooth, "smooth"},
	{Rough, combRough, "rough"},
	{Diaeresis, combDiaeresis, "diaeresis"},
	{Acute, combAcute, "acute"},
	{Grave, combGrave, "grave"},
	{Circumflex, combCircumflex, "circumflex"},
	{IotaSubscript, combIotaSub, "iota subscript"},
}

var markForComb = map[rune]MarkSet{
	combAcute:      Acute,
	combGrave:      Grave,
	combCircumflex: Circumflex,
	combSmooth:     Smooth,
	combRough:      Rough,
	combDiaeresis:  Diaeresis,
	combIotaSub:    IotaSubscript,
}

// MarkFor returns the mark corresponding to a combining codepoint.
// ok is false for runes which are not polytonic Greek marks.
func MarkFor(r rune) (MarkSet, bool) {
	m, ok := markForComb[r]
	return m, ok
}
