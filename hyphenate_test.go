package syllab

import (
	"testing"
)

func TestHyphenateEnglish(t *testing.T) {
	words := []struct {
		word string
		want string
	}{
		{"extensive", "ex-ten-sive"},
		{"extension", "ex-ten-sion"},
		{"extra", "ex-tra"},
		{"welcome", "wel-come"},
		{"walking", "walk-ing"},
		{"pursue", "pur-sue"},
		{"hello", "hello"},  // right margin of 3 suppresses hel-lo
		{"king", "king"},    // left margin of 2 suppresses k-ing
		{"hi", "hi"},
	}
	for _, w := range words {
		if h := Hyphenate(w.word, English).Join("-"); h != w.want {
			t.Errorf("%s should hyphenate as %s, is %s", w.word, w.want, h)
		}
	}
}

func TestHyphenateGerman(t *testing.T) {
	words := []struct {
		word string
		want string
	}{
		{"Tomate", "To-ma-te"},
		{"gehen", "ge-hen"},
		{"Apfel", "Ap-fel"},
		{"hübsch", "hübsch"},
	}
	for _, w := range words {
		if h := Hyphenate(w.word, German).Join("-"); h != w.want {
			t.Errorf("%s should hyphenate as %s, is %s", w.word, w.want, h)
		}
	}
}

func TestHyphenateGreek(t *testing.T) {
	words := []struct {
		word string
		want string
	}{
		{"διαμερίσματα", "δια-με-ρί-σμα-τα"},
		{"κάτοικος", "κά-τοι-κος"},
		{"λατρευτός", "λα-τρευ-τός"},
	}
	for _, w := range words {
		if h := Hyphenate(w.word, Greek).Join("-"); h != w.want {
			t.Errorf("%s should hyphenate as %s, is %s", w.word, w.want, h)
		}
	}
}

func TestHyphenateKeepsCase(t *testing.T) {
	if h := Hyphenate("Table", English).Join("-"); h != "Ta-ble" {
		t.Errorf("Table should hyphenate as Ta-ble, is %s", h)
	}
}

func TestHyphenateShortWords(t *testing.T) {
	for _, word := range []string{"", "a", "ä"} {
		syl := Hyphenate(word, English)
		if n := syl.Len(); n != 1 {
			t.Errorf("%q should be a single syllable, got %d", word, n)
		}
		part, ok := syl.Next()
		if !ok || part != word {
			t.Errorf("%q should yield itself, got %q (%v)", word, part, ok)
		}
		if _, ok := syl.Next(); ok {
			t.Errorf("%q should yield exactly one syllable", word)
		}
	}
}

func TestHyphenateForeignRunes(t *testing.T) {
	// Runes outside the automaton's alphabet never match, but the word
	// must still come back intact. The emoji is 4 bytes wide, so this
	// also exercises the byte offset bookkeeping.
	word := "ex😀tensive"
	syl := Hyphenate(word, English)
	if h := syl.Join("-"); h != "ex😀ten-sive" {
		t.Errorf("got %s", h)
	}
	if joined := syl.Join(""); joined != word {
		t.Errorf("syllables should partition the word, got %q", joined)
	}
}

func TestHyphenateBounded(t *testing.T) {
	if h := HyphenateBounded("extensive", English, 3, 1).Join("-"); h != "exten-sive" {
		t.Errorf("margins 3/1 should give exten-sive, got %s", h)
	}
	// Margins below 1 are raised to 1.
	if h := HyphenateBounded("hello", English, 0, 0).Join("-"); h != "hel-lo" {
		t.Errorf("margins 0/0 should behave like 1/1, got %s", h)
	}
}

func TestHyphenatePartitions(t *testing.T) {
	words := []struct {
		word string
		lang Lang
	}{
		{"extensive", English},
		{"Table", English},
		{"don't", English},
		{"ex😀tensive", English},
		{"Tomate", German},
		{"διαμερίσματα", Greek},
	}
	for _, w := range words {
		if joined := Hyphenate(w.word, w.lang).Join(""); joined != w.word {
			t.Errorf("syllables of %q reassemble to %q", w.word, joined)
		}
	}
}

func TestHyphenateDeterministic(t *testing.T) {
	want := Hyphenate("extension", English).Join("-")
	for i := 0; i < 5; i++ {
		if h := Hyphenate("extension", English).Join("-"); h != want {
			t.Fatalf("run %d differs: %s vs %s", i, h, want)
		}
	}
}

func TestHyphenateAllocationFree(t *testing.T) {
	words := []struct {
		word string
		lang Lang
	}{
		{"extensive", English},
		{"Tomate", German},
		{"διαμερίσματα", Greek},
	}
	for _, w := range words {
		allocs := testing.AllocsPerRun(100, func() {
			syl := Hyphenate(w.word, w.lang)
			for {
				if _, ok := syl.Next(); !ok {
					break
				}
			}
		})
		if allocs != 0 {
			t.Errorf("%s: expected zero allocations, got %v", w.word, allocs)
		}
	}
}

func BenchmarkHyphenate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		syl := Hyphenate("extensive", English)
		for {
			if _, ok := syl.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkHyphenateGreek(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		syl := Hyphenate("διαμερίσματα", Greek)
		for {
			if _, ok := syl.Next(); !ok {
				break
			}
		}
	}
}
