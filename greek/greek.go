/*
Package greek provides low-level knowledge about the polytonic Greek
alphabet: which codepoints are vowels, which combining diacritical marks
exist, which marks may legally sit on which base letters, and how a base
letter plus a set of marks combines into a grapheme cluster.

Package `greek` knows nothing about betacode. It deals exclusively in
Unicode runes and is intended as the foundation for transliteration
front-ends (a sister package maps ASCII betacode atoms onto the types
defined here). From this point of view, `greek` is a low-level package.

Grapheme composition is canonical:

▪︎ marks attach to the base letter in a fixed order — breathing or
diaeresis first, then an accent, then iota subscript,

▪︎ the assembled sequence is NFC-normalized, so a precomposed codepoint
is produced wherever Unicode defines one, and the base letter followed
by combining marks everywhere else.

# Status

Covers the letter and mark inventory of polytonic (ancient) Greek,
including breathings, iota subscript and the three sigma forms. Archaic
letters beyond digamma (koppa, sampi) are not modeled.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package greek

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'betacode.greek'
func tracer() tracing.Trace {
	return tracing.Select("betacode.greek")
}
