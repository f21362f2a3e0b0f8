/*
Package automaton compiles Liang hyphenation patterns into a flat,
position-independent byte encoding and walks that encoding directly at
query time.

The compiled form is a trie flattened into one byte string. Node 0 is the
root. Offsets are plain indices into the same string, so a blob is usable
as-is, with no relocation and no decode pass. Layout of one node:

	head     1 byte    bit 7: node carries a weight vector
	                   bits 0-6: transition count (0..126)
	weights  1+n bytes only if bit 7 is set: a length byte followed by
	                   packed entries, one byte each: gap<<4 | value
	labels   2*count   transition labels as big-endian uint16 code units,
	                   strictly ascending (binary search)
	targets  4*count   big-endian uint32 offsets of the child nodes

Weight entries store only nonzero gap values. The gap nibble is the
position of the gap inside the pattern (0 = before the first character),
the value nibble is the Liang digit 0-9. Labels are BMP code units; the
builder rejects anything beyond U+FFFF.

Blobs are immutable and safe for unsynchronized concurrent readers.
*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllab.automaton'
func tracer() tracing.Trace {
	return tracing.Select("syllab.automaton")
}

const (
	maxTransitions = 126  // head byte keeps bit 7 for the weights flag
	maxPatternLen  = 15   // gap index must fit in a nibble
	maxWeight      = 9    // Liang digits
	hasWeights     = 0x80 // head byte flag: weight vector follows
)

// Boundary is the word-edge anchor symbol used in patterns and in padded
// query words.
const Boundary rune = '.'
