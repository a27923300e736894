package greek

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestComposePrecomposed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "betacode.greek")
	defer teardown()
	//
	tests := []struct {
		base  rune
		marks MarkSet
		want  string
	}{
		{'α', 0, "α"},
		{'α', Smooth, "ἀ"},                            // ἀ
		{'α', Smooth | Acute, "ἄ"},                    // ἄ
		{'α', Smooth | Acute | IotaSubscript, "ᾄ"},    // ᾄ
		{'ι', Diaeresis | Acute, "ΐ"},                 // ΐ
		{'υ', Diaeresis | Grave, "ῢ"},                 // ῢ
		{'ρ', Rough, "ῥ"},                             // ῥ
		{'Ρ', Rough, "Ῥ"},                             // Ῥ
		{'ω', Rough | Circumflex | IotaSubscript, "ᾧ"}, // ᾧ
		{'η', Circumflex | IotaSubscript, "ῇ"},        // ῇ
		{'Α', Smooth, "Ἀ"},                            // Ἀ
	}
	for _, tt := range tests {
		got, ok := Compose(tt.base, tt.marks)
		if !ok {
			t.Errorf("Compose(%#U, %s) unexpectedly rejected", tt.base, tt.marks)
			continue
		}
		if got != tt.want {
			t.Errorf("Compose(%#U, %s) = %q; want %q", tt.base, tt.marks, got, tt.want)
		}
		if utf8.RuneCountInString(got) != 1 {
			t.Errorf("expected Compose(%#U, %s) to yield a precomposed codepoint, got %d runes",
				tt.base, tt.marks, utf8.RuneCountInString(got))
		}
	}
}

// Combinations without a precomposed codepoint come out as base letter
// plus combining marks.
func TestComposeCombiningFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "betacode.greek")
	defer teardown()
	//
	tests := []struct {
		base  rune
		marks MarkSet
		want  string
	}{
		{'Ρ', Smooth, "Ρ̓"},
		{'Α', Circumflex, "Α͂"},
	}
	for _, tt := range tests {
		got, ok := Compose(tt.base, tt.marks)
		if !ok {
			t.Errorf("Compose(%#U, %s) unexpectedly rejected", tt.base, tt.marks)
			continue
		}
		if got != tt.want {
			t.Errorf("Compose(%#U, %s) = %q; want %q", tt.base, tt.marks, got, tt.want)
		}
	}
}

func TestLegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "betacode.greek")
	defer teardown()
	//
	tests := []struct {
		base  rune
		marks MarkSet
		legal bool
	}{
		{'β', 0, true},
		{'β', Rough, false},          // breathing on a consonant
		{'ε', Circumflex, false},     // short vowel
		{'ο', IotaSubscript, false},
		{'α', Diaeresis, false},
		{'α', Smooth | Rough, false}, // breathings exclude each other
		{'α', Acute | Grave, false},  // accents exclude each other
		{'ι', Diaeresis | Smooth, false},
		{'ς', Acute, false},
		{'α', Rough | Acute | IotaSubscript, true},
		{'Η', Smooth | Circumflex, true},
		{'υ', Diaeresis, true},
	}
	for _, tt := range tests {
		if got := Legal(tt.base, tt.marks); got != tt.legal {
			t.Errorf("Legal(%#U, %s) = %v; want %v", tt.base, tt.marks, got, tt.legal)
		}
	}
}

func TestMarkFor(t *testing.T) {
	if m, ok := MarkFor('́'); !ok || m != Acute {
		t.Errorf("expected U+0301 to map to the acute mark, got %s (ok=%v)", m, ok)
	}
	if m, ok := MarkFor('ͅ'); !ok || m != IotaSubscript {
		t.Errorf("expected U+0345 to map to iota subscript, got %s (ok=%v)", m, ok)
	}
	if _, ok := MarkFor('x'); ok {
		t.Error("expected 'x' not to map to any mark")
	}
}

func TestMarkSetString(t *testing.T) {
	if s := (Smooth | Acute).String(); s != "smooth+acute" {
		t.Errorf("expected mark set string 'smooth+acute', got %q", s)
	}
	if s := MarkSet(0).String(); s != "none" {
		t.Errorf("expected empty mark set string 'none', got %q", s)
	}
}

func TestLetterClasses(t *testing.T) {
	if !IsVowel('α') || !IsVowel('Ω') {
		t.Error("expected α and Ω to be vowels")
	}
	if IsVowel('β') || IsVowel('x') {
		t.Error("expected β and 'x' not to be vowels")
	}
	if !IsSigma('σ') || !IsSigma('Σ') {
		t.Error("expected σ and Σ to be sigmas")
	}
	if IsSigma('ς') {
		t.Error("final sigma is not subject to sigma-form selection")
	}
}
