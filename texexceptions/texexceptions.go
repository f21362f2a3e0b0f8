package texexceptions

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/syllab"
	"golang.org/x/text/unicode/norm"
)

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	pending []string // entries of the current line, not yet delivered
	inBlock bool
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to this dictionary.
func LoadExceptions(dict *syllab.Dictionary, reader io.Reader) error {
	return dict.LoadExceptionReader(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next exception as (word, positions), with one position
// entry per character of word; odd entries mark the hyphens. It returns
// io.EOF when exhausted. A file may contain several \hyphenation blocks,
// and entries may share a line with the opening or closing brace.
func (r *Reader) Next() (string, []int, error) {
	for {
		if len(r.pending) > 0 {
			entry := r.pending[0]
			r.pending = r.pending[1:]
			word, positions := decodeEntry(entry)
			return word, positions, nil
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", nil, err
			}
			if r.inBlock {
				return "", nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
			}
			return "", nil, io.EOF
		}
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(norm.NFC.String(line))
		if !r.inBlock {
			if strings.HasPrefix(line, "\\hyphenation{") {
				r.inBlock = true
				r.pending = r.blockFields(line[13:])
			}
			continue
		}
		r.pending = r.blockFields(line)
	}
}

// blockFields splits a line inside a hyphenation block into single
// entries, closing the block at a '}'.
func (r *Reader) blockFields(line string) []string {
	if i := strings.IndexByte(line, '}'); i >= 0 {
		r.inBlock = false
		line = line[:i]
	}
	return strings.Fields(line)
}

// decodeEntry turns "ta-ble" into ("table", [0,0,1,0,0]).
func decodeEntry(entry string) (string, []int) {
	positions := make([]int, 0, len(entry))
	wasHyphen := false
	for _, ch := range entry {
		if ch == '-' {
			positions = append(positions, 1)
			wasHyphen = true
		} else if wasHyphen {
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	word := strings.ReplaceAll(entry, "-", "")
	return word, positions
}
