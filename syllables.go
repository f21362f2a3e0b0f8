package syllab

import (
	"iter"
	"strings"
)

// Syllables is the result of hyphenating one word: a finite sequence of
// syllables, produced lazily by Next. Every syllable is a substring of
// the original word, so iterating does not allocate.
//
// The zero value is a sequence of one empty syllable. Syllables is a
// value type; copies iterate independently.
type Syllables struct {
	word     string
	count    int                 // number of break positions
	idx      int                 // next break to emit
	cursor   int                 // byte offset of the current syllable
	inline   [inlineChars]uint32 // break byte offsets, ascending
	overflow []uint32            // used instead of inline for long words
}

func (s *Syllables) addBreak(off uint32) {
	if s.overflow != nil {
		s.overflow = append(s.overflow, off)
	} else {
		s.inline[s.count] = off
	}
	s.count++
}

func (s *Syllables) breakAt(i int) int {
	if s.overflow != nil {
		return int(s.overflow[i])
	}
	return int(s.inline[i])
}

// Next returns the next syllable of the word. ok is false once the
// sequence is exhausted; the word itself, even an empty one, always
// yields at least one syllable.
func (s *Syllables) Next() (syllable string, ok bool) {
	if s.idx > s.count {
		return "", false
	}
	end := len(s.word)
	if s.idx < s.count {
		end = s.breakAt(s.idx)
	}
	syllable = s.word[s.cursor:end]
	s.cursor = end
	s.idx++
	return syllable, true
}

// Len returns the number of syllables not yet consumed by Next.
func (s *Syllables) Len() int {
	if s.idx > s.count {
		return 0
	}
	return s.count - s.idx + 1
}

// Join concatenates the remaining syllables, separated by sep. It
// operates on a copy and does not consume the sequence.
//
//	syllab.Hyphenate("extensive", syllab.English).Join("-") // "ex-ten-sive"
func (s Syllables) Join(sep string) string {
	if s.Len() == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s.word) - s.cursor + (s.Len()-1)*len(sep))
	for {
		syl, ok := s.Next()
		if !ok {
			break
		}
		b.WriteString(syl)
		if s.Len() > 0 {
			b.WriteString(sep)
		}
	}
	return b.String()
}

// All returns an iterator over the remaining syllables, suitable for
// range. The iterator is restartable: every range over it starts from
// the same position, and it does not consume the receiver.
func (s Syllables) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := s
		for {
			syl, ok := it.Next()
			if !ok || !yield(syl) {
				return
			}
		}
	}
}
