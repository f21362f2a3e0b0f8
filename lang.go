package syllab

import (
	"sync"

	"golang.org/x/text/language"
)

//go:generate go run ./cmd/syllabgen -config cmd/syllabgen/languages.yaml -out lang_gen.go

// Lang identifies one of the languages compiled into the package. The
// zero value denotes no language; passing it to any function panics.
type Lang uint8

// langInfo describes one compiled language. The table itself is
// generated by cmd/syllabgen and lives in lang_gen.go.
type langInfo struct {
	name  string // English display name
	tag   string // BCP 47 tag of the pattern set
	data  string // encoded automaton, see package automaton
	left  uint8  // minimum characters before the first break
	right uint8  // minimum characters after the last break
}

func (l Lang) info() *langInfo {
	assert(l != 0 && int(l) <= len(langTable), "syllab: unknown language")
	return &langTable[l-1]
}

// String returns the English name of the language.
func (l Lang) String() string {
	return l.info().name
}

// Bounds returns the hyphenation margins of the language's pattern set:
// a break keeps at least left characters at the start of a word and at
// least right characters at the end.
func (l Lang) Bounds() (left, right int) {
	inf := l.info()
	return int(inf.left), int(inf.right)
}

// Tag returns the BCP 47 tag of the language's pattern set.
func (l Lang) Tag() language.Tag {
	l.info()
	return tagIndex().tags[l-1]
}

// Languages lists all compiled languages.
func Languages() []Lang {
	all := make([]Lang, len(langTable))
	for i := range all {
		all[i] = Lang(i + 1)
	}
	return all
}

type langTags struct {
	tags    []language.Tag
	matcher language.Matcher
}

var tagIndex = sync.OnceValue(func() *langTags {
	t := &langTags{tags: make([]language.Tag, len(langTable))}
	for i := range langTable {
		t.tags[i] = language.MustParse(langTable[i].tag)
	}
	t.matcher = language.NewMatcher(t.tags)
	return t
})

// FromTag resolves a BCP 47 tag to the closest compiled language, using
// the standard confidence-based matching of golang.org/x/text/language.
// ok is false when no compiled language is an acceptable match.
func FromTag(tag language.Tag) (lang Lang, ok bool) {
	_, index, conf := tagIndex().matcher.Match(tag)
	if conf == language.No {
		return 0, false
	}
	return Lang(index + 1), true
}
