package syllab

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/syllab/automaton"
)

// Hyphenate finds the hyphenation opportunities in word according to the
// patterns compiled for lang, using the language's own margins (see
// Bounds). Case is ignored for matching but preserved in the syllables.
//
// Words of up to 40 characters are processed entirely on the stack, and
// the returned Syllables only ever borrows substrings of word.
func Hyphenate(word string, lang Lang) Syllables {
	left, right := lang.Bounds()
	return HyphenateBounded(word, lang, left, right)
}

// HyphenateBounded is Hyphenate with explicit margins: every break keeps
// at least left characters at the start of the word and at least right
// characters at the end. Margins below 1 are raised to 1.
func HyphenateBounded(word string, lang Lang, left, right int) Syllables {
	return hyphenateWord(word, lang.info().data, left, right)
}

// hyphenateWord runs the pattern automaton over word and segments it.
// data is an encoded automaton; the word is padded with the boundary
// marker on both sides and matched from every start offset, folding all
// pattern weights gap-wise with the maximum.
func hyphenateWord(word, data string, left, right int) Syllables {
	left, right = max(left, 1), max(right, 1)
	n := utf8.RuneCountInString(word)
	syl := Syllables{word: word}
	if n > inlineChars {
		syl.overflow = make([]uint32, 0, n)
	}

	var sc scratch
	chars, widths, levels := sc.buffers(n)
	chars[0] = uint16(automaton.Boundary)
	k := 1
	for pos := 0; pos < len(word); {
		r, size := utf8.DecodeRuneInString(word[pos:])
		c := unicode.ToLower(r)
		if c > 0xFFFF {
			c = 0xFFFF // outside every pattern alphabet, keeps offsets aligned
		}
		chars[k] = uint16(c)
		widths[k-1] = uint8(size)
		pos += size
		k++
	}
	chars[n+1] = uint16(automaton.Boundary)

	root := automaton.Root(data)
	for start := 0; start < n+2; start++ {
		st := root
		for i := start; i < n+2; i++ {
			next, ok := st.Transition(chars[i])
			if !ok {
				break
			}
			st = next
			st.Weights(func(gap, val int) {
				if int(levels[start+gap]) < val {
					levels[start+gap] = uint8(val)
				}
			})
		}
	}

	// levels[k+1] belongs to the gap before the word's k-th character
	byteoff := 0
	for k := 1; k < n; k++ {
		byteoff += int(widths[k-1])
		if levels[k+1]%2 == 1 && k >= left && n-k >= right {
			syl.addBreak(uint32(byteoff))
		}
	}
	return syl
}
