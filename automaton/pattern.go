package automaton

import (
	"fmt"
	"unicode"
)

// Pattern is a single Liang hyphenation pattern: a run of characters,
// possibly anchored to a word edge with '.', plus the hyphenation weights
// sitting in the gaps between them. Weights always has length
// len(Sequence)+1; Weights[i] is the value of the gap before Sequence[i],
// Weights[len(Sequence)] the one after the final character.
type Pattern struct {
	Sequence []rune
	Weights  []int
}

// ParsePattern decodes the textual form of a Liang pattern, e.g. "x1t" or
// ".ach4". Digits attach to the gap before the following character (or to
// the trailing gap), letters are lower-cased, '.' marks a word boundary.
//
// The textual form is rejected if it is empty, contains two adjacent
// digits, contains a character that is neither letter, digit nor '.', or
// contains a character outside the Basic Multilingual Plane.
func ParsePattern(raw string) (Pattern, error) {
	var seq []rune
	var weights []int
	wasDigit := false
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			if wasDigit {
				return Pattern{}, fmt.Errorf("pattern %q: adjacent digits", raw)
			}
			weights = append(weights, int(c-'0'))
			wasDigit = true
		case c == Boundary || unicode.IsLetter(c) || unicode.IsMark(c):
			if c > 0xFFFF {
				return Pattern{}, fmt.Errorf("pattern %q: character %q outside the BMP", raw, c)
			}
			if len(weights) == len(seq) {
				weights = append(weights, 0)
			}
			seq = append(seq, unicode.ToLower(c))
			wasDigit = false
		default:
			return Pattern{}, fmt.Errorf("pattern %q: illegal character %q", raw, c)
		}
	}
	if len(seq) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q: no characters", raw)
	}
	if len(seq) > maxPatternLen {
		return Pattern{}, fmt.Errorf("pattern %q: longer than %d characters", raw, maxPatternLen)
	}
	// close the trailing gap
	if len(weights) == len(seq) {
		weights = append(weights, 0)
	}
	return Pattern{Sequence: seq, Weights: weights}, nil
}

// String formats p in the textual pattern form, with zero weights elided.
func (p Pattern) String() string {
	s := make([]rune, 0, len(p.Sequence)*2+1)
	for i, c := range p.Sequence {
		if i < len(p.Weights) && p.Weights[i] > 0 {
			s = append(s, rune('0'+p.Weights[i]))
		}
		s = append(s, c)
	}
	if len(p.Weights) == len(p.Sequence)+1 && p.Weights[len(p.Sequence)] > 0 {
		s = append(s, rune('0'+p.Weights[len(p.Sequence)]))
	}
	return string(s)
}

func (p Pattern) check() error {
	if len(p.Sequence) == 0 {
		return fmt.Errorf("empty pattern")
	}
	if len(p.Sequence) > maxPatternLen {
		return fmt.Errorf("pattern %q: longer than %d characters", p.String(), maxPatternLen)
	}
	if len(p.Weights) != len(p.Sequence)+1 {
		return fmt.Errorf("pattern %q: %d weights for %d characters", p.String(),
			len(p.Weights), len(p.Sequence))
	}
	for _, w := range p.Weights {
		if w < 0 || w > maxWeight {
			return fmt.Errorf("pattern %q: weight %d out of range", p.String(), w)
		}
	}
	for _, c := range p.Sequence {
		if c > 0xFFFF {
			return fmt.Errorf("pattern %q: character %q outside the BMP", p.String(), c)
		}
	}
	return nil
}
