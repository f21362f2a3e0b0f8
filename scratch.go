package syllab

// inlineChars is the word length, in characters, up to which hyphenation
// runs entirely on fixed stack buffers.
const inlineChars = 40

// scratch is the per-call working set of the matcher for words of up to
// inlineChars characters: the dotted, lower-cased code units of the word,
// the UTF-8 byte width of every original character, and the gap levels
// accumulated during matching.
type scratch struct {
	chars  [inlineChars + 2]uint16
	widths [inlineChars]uint8
	levels [inlineChars + 3]uint8
}

// buffers returns slices over the scratch arrays sized for a word of n
// characters, or heap buffers when n exceeds inlineChars.
func (sc *scratch) buffers(n int) (chars []uint16, widths, levels []uint8) {
	if n <= inlineChars {
		return sc.chars[:n+2], sc.widths[:n], sc.levels[:n+3]
	}
	return overflowBuffers(n)
}
