package tex

import (
	"bytes"
	"io"

	"github.com/npillmayer/syllab"
	"github.com/npillmayer/syllab/texexceptions"
	"github.com/npillmayer/syllab/texpatterns"
)

// LoadDictionary loads a pattern dictionary and an exception list in TeX format.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	dict, err := tex.LoadDictionary("en-us", f)
//
// This will load the patterns and exceptions temporarily into memory
func LoadDictionary(name string, reader io.Reader) (*syllab.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	texreader := texpatterns.NewPatternReader(bytes.NewReader(data))
	dict, err := syllab.LoadPatternReader(name, texreader)
	if err != nil {
		return nil, err
	}
	if id := texreader.Identifier(); id != "" {
		dict.Identifier = id
	}
	err = texexceptions.LoadExceptions(dict, bytes.NewReader(data))
	return dict, err
}
