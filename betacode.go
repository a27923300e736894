/*
Package betacode converts between ASCII betacode and Unicode polytonic
Greek. Betacode is an ASCII-only convention for writing ancient Greek,
widely used by digital corpora. Two flavours are supported:

▪︎ Default: the case of an ASCII letter carries over to the Greek letter
directly, i.e. "Qeo/v" reads as Θεός. This is the convention used by,
among others, the Robinson-Pierpont New Testament texts.

▪︎ TLG: the convention of the Thesaurus Linguae Graecae. Letter atoms are
case-insensitive and read as lowercase Greek; a '*' marker in front of a
letter makes it a capital, i.e. "*qeo/s" reads as Θεός.

Conversion is a pure function of the input text and the scheme. Rule
tables are read-only, so any number of goroutines may convert
concurrently without coordination.

Diacritics follow their base letter: "/" acute, "\" grave, "=" (or "^")
circumflex, "(" rough breathing, ")" smooth breathing, "+" diaeresis,
"|" iota subscript. A letter together with its trailing diacritics forms
one grapheme cluster in the output, NFC-normalized: a precomposed
codepoint where Unicode defines one, base letter plus combining marks
otherwise. The digits "1", "2", "3" directly after a sigma select the
medial, final and lunate form; a bare sigma takes its final form at word
boundaries automatically. An ASCII apostrophe marks elision and becomes
᾽ (U+1FBD).

Malformed input is never repaired: conversion either succeeds for the
whole input or fails with a ConversionError naming the offending
character and its position.

# Status

The letter and diacritic inventory of polytonic Greek is complete,
including digamma under TLG. Betacode sidebearing conventions beyond the
text stream itself (citation markers, font shifts, bracketing) are not
interpreted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package betacode

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'betacode'
func tracer() tracing.Trace {
	return tracing.Select("betacode")
}

// Scheme selects which betacode convention governs a conversion.
type Scheme int

const (
	// Default is the case-carrying convention: ASCII letter case maps
	// directly to Greek letter case.
	Default Scheme = iota
	// TLG is the Thesaurus Linguae Graecae convention: letters read as
	// lowercase Greek unless preceded by the capitalization marker '*'.
	TLG
)

// String returns the name of the scheme.
func (s Scheme) String() string {
	switch s {
	case Default:
		return "Default"
	case TLG:
		return "TLG"
	}
	return "Scheme(unknown)"
}
