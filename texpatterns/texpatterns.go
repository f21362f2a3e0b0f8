package texpatterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/syllab"
	"github.com/npillmayer/syllab/automaton"
	"golang.org/x/text/unicode/norm"
)

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	pending    []string // patterns of the current line, not yet delivered
	line       int
	inPatterns bool
	closed     bool
}

// LoadPatterns parses TeX pattern data and returns a ready-to-use dictionary.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => weights["aban"] = [0,5,0,0,0].
//
// The loader parses TeX input into a streaming PatternReader and compiles
// patterns incrementally.
//
// Exceptions from \hyphenation{...} are intentionally not loaded here, see
// package texexceptions.
func LoadPatterns(name string, reader io.Reader) (*syllab.Dictionary, error) {
	return syllab.LoadPatternReader(name, NewPatternReader(reader))
}

func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{scanner: bufio.NewScanner(reader)}
}

// Identifier returns the name the file announced with \message{...},
// or the empty string if none was (yet) encountered.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern as (sequence, weights). The weight vector
// has one entry per gap, including the gaps at both edges of the sequence.
// Input is normalized to NFC and lower-cased; a malformed pattern stops
// the stream with an error naming the offending line.
//
// Next returns io.EOF once the \patterns block is closed or the input is
// exhausted. Patterns may share a line with the opening or closing brace.
// The returned slices are not reused by subsequent calls.
func (r *PatternReader) Next() ([]rune, []int, error) {
	for {
		if len(r.pending) > 0 {
			raw := r.pending[0]
			r.pending = r.pending[1:]
			p, err := automaton.ParsePattern(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", r.line, err)
			}
			return p.Sequence, p.Weights, nil
		}
		if r.closed {
			return nil, nil, io.EOF
		}
		if !r.scanner.Scan() {
			r.closed = true
			if err := r.scanner.Err(); err != nil {
				return nil, nil, err
			}
			if r.inPatterns {
				return nil, nil, errors.New("unexpected end of file (unclosed \\patterns block)")
			}
			return nil, nil, io.EOF
		}
		r.line++
		line := r.scanner.Text()
		if strings.HasPrefix(line, "%     message: ") {
			r.identifier = strings.TrimSpace(line[15:])
			continue
		}
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(norm.NFC.String(line))
		switch {
		case line == "":
		case strings.HasPrefix(line, "\\message{"):
			r.identifier = strings.TrimSuffix(line[9:], "}")
		case strings.HasPrefix(line, "\\hyphenation{"):
			if !strings.Contains(line, "}") {
				r.skipBlock()
			}
		case strings.HasPrefix(line, "\\patterns{"):
			r.inPatterns = true
			r.pending = r.blockFields(line[10:])
		case strings.HasPrefix(line, "\\"): // \endinput and other commands
		case r.inPatterns:
			r.pending = r.blockFields(line)
		}
	}
}

// blockFields splits a line inside the patterns block into single
// patterns, closing the block at a '}'.
func (r *PatternReader) blockFields(line string) []string {
	if i := strings.IndexByte(line, '}'); i >= 0 {
		r.inPatterns = false
		r.closed = true
		line = line[:i]
	}
	return strings.Fields(line)
}

func (r *PatternReader) skipBlock() {
	for r.scanner.Scan() {
		r.line++
		if strings.HasPrefix(r.scanner.Text(), "}") {
			return
		}
	}
}
