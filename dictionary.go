package syllab

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/syllab/automaton"
)

// PatternReader yields hyphenation pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (sequence []rune, weights []int, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// Dictionary is a hyphenation dictionary loaded at run time, as opposed
// to the languages compiled into the package. A dictionary contains
// pattern rules, compiled into the same automaton the embedded languages
// use, plus explicit hyphenation exceptions which take precedence over
// the patterns.
type Dictionary struct {
	exceptions map[string][]int // e.g., "computer" => [0,0,0,1,0,1,0,0] = "com-pu-ter"
	auto       string           // encoded pattern automaton
	left       int
	right      int
	Identifier string // identifies the dictionary
}

// LoadPatternReader compiles a dictionary from a streaming,
// format-agnostic pattern source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package texpatterns to parse concrete formats and feed
// this API. Weight vectors may arrive with one entry per character or
// with the trailing gap included; the shorter form is padded.
//
// The dictionary starts out with margins of 2/2, see SetBounds.
func LoadPatternReader(name string, reader PatternReader) (*Dictionary, error) {
	builder := automaton.NewBuilder()
	for {
		sequence, weights, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(weights) == len(sequence) {
			weights = append(weights, 0)
		}
		p := automaton.Pattern{Sequence: sequence, Weights: weights}
		if err := builder.Insert(p); err != nil {
			return nil, fmt.Errorf("pattern source %s: %w", name, err)
		}
	}
	data, err := builder.Encode()
	if err != nil {
		return nil, fmt.Errorf("pattern source %s: %w", name, err)
	}
	tracer().Infof("dictionary %s: %d patterns, %d automaton bytes", name, builder.Len(), len(data))
	return &Dictionary{
		exceptions: make(map[string][]int),
		auto:       data,
		left:       2,
		right:      2,
		Identifier: fmt.Sprintf("patterns: %s", name),
	}, nil
}

// LoadExceptionReader loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptionReader(reader ExceptionReader) (err error) {
	for {
		var word string
		var positions []int
		word, positions, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			break
		}
		dict.AddException(word, positions)
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) {
	for word, positions := range exceptions {
		dict.AddException(word, positions)
	}
}

// AddException registers one explicit hyphenation exception. positions
// holds one entry per character of word; an odd entry at index i places
// a break before the i-th character.
func (dict *Dictionary) AddException(word string, positions []int) {
	if dict.exceptions == nil {
		dict.exceptions = make(map[string][]int)
	}
	pp := make([]int, len(positions))
	copy(pp, positions)
	dict.exceptions[word] = pp
}

// SetBounds sets the dictionary's hyphenation margins: every break keeps
// at least left characters at the start of a word and right characters
// at the end. Values below 1 are raised to 1.
func (dict *Dictionary) SetBounds(left, right int) {
	dict.left = max(left, 1)
	dict.right = max(right, 1)
}

// Syllables hyphenates word against the dictionary. An exception entry
// for word wins over the patterns.
func (dict *Dictionary) Syllables(word string) Syllables {
	if dict == nil || dict.auto == "" {
		return Syllables{word: word}
	}
	if positions, found := dict.exceptions[word]; found {
		return exceptionSyllables(word, positions)
	}
	return hyphenateWord(word, dict.auto, dict.left, dict.right)
}

// Hyphenate splits word at legal hyphenation positions.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
func (dict *Dictionary) Hyphenate(word string) []string {
	s := dict.Syllables(word)
	pp := make([]string, 0, s.Len())
	for {
		syl, ok := s.Next()
		if !ok {
			break
		}
		pp = append(pp, syl)
	}
	return pp
}

// HyphenationString returns word with discretionary hyphens inserted.
// Example:
//
//	"table" => "ta-ble".
func (dict *Dictionary) HyphenationString(word string) string {
	return dict.Syllables(word).Join("-")
}

// exceptionSyllables turns a per-character position vector into breaks.
// The first character never starts a break, matching pattern matching,
// which has no gap before the word.
func exceptionSyllables(word string, positions []int) Syllables {
	syl := Syllables{word: word}
	if n := utf8.RuneCountInString(word); n > inlineChars {
		syl.overflow = make([]uint32, 0, n)
	}
	k := 0
	for off := range word {
		if k > 0 && k < len(positions) && positions[k] > 0 && positions[k]%2 != 0 {
			syl.addBreak(uint32(off))
		}
		k++
	}
	return syl
}
