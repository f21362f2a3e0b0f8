package automaton

import (
	"strings"
	"testing"
)

func TestParsePattern(t *testing.T) {
	cases := []struct {
		input   string
		seq     string
		weights []int
	}{
		{"x1t", "xt", []int{0, 1, 0}},
		{"n1s", "ns", []int{0, 1, 0}},
		{".ach4", ".ach", []int{0, 0, 0, 0, 4}},
		{"4ab.", "ab.", []int{4, 0, 0, 0}},
		{"hen5at", "henat", []int{0, 0, 0, 5, 0, 0}},
		{"A1B", "ab", []int{0, 1, 0}},
		{"ab", "ab", []int{0, 0, 0}},
		{"1na", "na", []int{1, 0, 0}},
		{"te2", "te", []int{0, 0, 2}},
		{"ι2α", "ια", []int{0, 2, 0}},
		{"2ς.", "ς.", []int{2, 0, 0}},
	}
	for _, c := range cases {
		p, err := ParsePattern(c.input)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", c.input, err)
		}
		if string(p.Sequence) != c.seq {
			t.Errorf("pattern %q: sequence = %q, want %q", c.input, string(p.Sequence), c.seq)
		}
		if len(p.Weights) != len(c.weights) {
			t.Fatalf("pattern %q: %d weights, want %d", c.input, len(p.Weights), len(c.weights))
		}
		for i, w := range c.weights {
			if p.Weights[i] != w {
				t.Errorf("pattern %q: weight[%d] = %d, want %d", c.input, i, p.Weights[i], w)
			}
		}
	}
}

func TestParsePatternErrors(t *testing.T) {
	cases := []struct {
		input string
		msg   string
	}{
		{"", "no characters"},
		{"4", "no characters"},
		{"a11b", "adjacent digits"},
		{"a-b", "illegal character"},
		{"a b", "illegal character"},
		{"fo'c", "illegal character"},
		{"ab\U00010400", "outside the BMP"},
		{strings.Repeat("a", 16), "longer than 15"},
	}
	for _, c := range cases {
		_, err := ParsePattern(c.input)
		if err == nil {
			t.Fatalf("pattern %q: expected an error", c.input)
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("pattern %q: error %q does not mention %q", c.input, err, c.msg)
		}
	}
}

func TestPatternString(t *testing.T) {
	for _, s := range []string{"x1t", ".ach4", "4ab.", "hen5at", "ι2α", "ab"} {
		p, err := ParsePattern(s)
		if err != nil {
			t.Fatalf("pattern %q: %v", s, err)
		}
		if p.String() != s {
			t.Errorf("pattern %q: round trip gave %q", s, p.String())
		}
	}
}

func mustInsert(t *testing.T, b *Builder, patterns ...string) {
	t.Helper()
	for _, s := range patterns {
		p, err := ParsePattern(s)
		if err != nil {
			t.Fatalf("pattern %q: %v", s, err)
		}
		if err := b.Insert(p); err != nil {
			t.Fatalf("insert %q: %v", s, err)
		}
	}
}

func TestInsertMergesByMaximum(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, "a1b", "2ab3", "a1b")
	if b.Len() != 1 {
		t.Fatalf("expected 1 distinct pattern, got %d", b.Len())
	}
	data, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	s, ok := Root(data).Transition('a')
	if !ok {
		t.Fatal("no transition for 'a'")
	}
	s, ok = s.Transition('b')
	if !ok {
		t.Fatal("no transition for 'b'")
	}
	got := map[int]int{}
	s.Weights(func(gap, val int) { got[gap] = val })
	want := map[int]int{0: 2, 1: 1, 2: 3}
	if len(got) != len(want) {
		t.Fatalf("weights = %v, want %v", got, want)
	}
	for gap, val := range want {
		if got[gap] != val {
			t.Errorf("gap %d: value %d, want %d", gap, got[gap], val)
		}
	}
}

func TestInsertValidation(t *testing.T) {
	b := NewBuilder()
	cases := []Pattern{
		{},
		{Sequence: []rune("ab"), Weights: []int{0, 1}},
		{Sequence: []rune("a"), Weights: []int{0, 12}},
		{Sequence: []rune{0x1F600}, Weights: []int{0, 1}},
	}
	for i, p := range cases {
		if err := b.Insert(p); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}

// The single pattern "a1" must encode to exactly two nodes: the root with
// one transition, and a leaf carrying the weight entry 1<<4|1.
func TestEncodeSinglePattern(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, "a1")
	data, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := "\x01\x00\x61\x00\x00\x00\x07" + "\x80\x01\x11"
	if data != want {
		t.Fatalf("encoded % x, want % x", data, want)
	}
}

// Three patterns sharing the gap between 'a' and 'b', anchored and not.
// The layout is fixed by breadth-first order and sorted labels.
func TestEncodeLayout(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, "a1b", "4b.", ".a2")
	data, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := "\x03\x00\x2e\x00\x61\x00\x62\x00\x00\x00\x13\x00\x00\x00\x1a\x00\x00\x00\x21" +
		"\x01\x00\x61\x00\x00\x00\x28" +
		"\x01\x00\x62\x00\x00\x00\x2b" +
		"\x01\x00\x2e\x00\x00\x00\x2e" +
		"\x80\x01\x22" +
		"\x80\x01\x11" +
		"\x80\x01\x04"
	if data != want {
		t.Fatalf("encoded % x,\nwant    % x", data, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	one := NewBuilder()
	mustInsert(t, one, "x1t", "n1s", ".ach4", "hen5at", "ι2α", "te2")
	two := NewBuilder()
	mustInsert(t, two, "te2", "ι2α", "hen5at", ".ach4", "n1s", "x1t")
	a, err := one.Encode()
	if err != nil {
		t.Fatal(err)
	}
	c, err := two.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if a != c {
		t.Fatalf("insertion order changed the encoding:\n% x\n% x", a, c)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data, err := NewBuilder().Encode()
	if err != nil {
		t.Fatal(err)
	}
	if data != "\x00" {
		t.Fatalf("empty automaton = % x, want 00", data)
	}
	if _, ok := Root(data).Transition('a'); ok {
		t.Fatal("empty automaton has a transition")
	}
}

func TestTransitionSearch(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, "a1", "e1", "m1", "z1", "ω1")
	data, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	root := Root(data)
	for _, c := range []uint16{'a', 'e', 'm', 'z', 'ω'} {
		s, ok := root.Transition(c)
		if !ok {
			t.Fatalf("missing transition for %q", rune(c))
		}
		if !s.HasWeights() {
			t.Fatalf("state after %q has no weights", rune(c))
		}
	}
	for _, c := range []uint16{'A', 'b', 'n', '.', 0, 0xFFFF} {
		if _, ok := root.Transition(c); ok {
			t.Fatalf("unexpected transition for %#x", c)
		}
	}
}

// Walking the padded word ".ab." from every start offset must fold the
// weights of all three matching patterns onto the same gap.
func TestWeightFold(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, "a1b", "4b.", ".a2")
	data, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	word := []uint16{'.', 'a', 'b', '.'}
	levels := make([]int, len(word)+1)
	for start := range word {
		s := Root(data)
		for i := start; i < len(word); i++ {
			next, ok := s.Transition(word[i])
			if !ok {
				break
			}
			s = next
			s.Weights(func(gap, val int) {
				if levels[start+gap] < val {
					levels[start+gap] = val
				}
			})
		}
	}
	want := []int{0, 0, 4, 0, 0}
	for i, lv := range want {
		if levels[i] != lv {
			t.Errorf("gap %d: level %d, want %d", i, levels[i], lv)
		}
	}
}

func TestFanOutLimit(t *testing.T) {
	wide := func(n int) *Builder {
		b := NewBuilder()
		for i := 0; i < n; i++ {
			p := Pattern{Sequence: []rune{rune(0x4E00 + i)}, Weights: []int{0, 1}}
			if err := b.Insert(p); err != nil {
				t.Fatalf("insert %d: %v", i, err)
			}
		}
		return b
	}
	if _, err := wide(126).Encode(); err != nil {
		t.Fatalf("126 transitions should encode: %v", err)
	}
	if _, err := wide(127).Encode(); err == nil {
		t.Fatal("127 transitions should not encode")
	}
}

func TestPackWeights(t *testing.T) {
	packed, err := packWeights([]int{0, 1, 0, 9, 0})
	if err != nil {
		t.Fatal(err)
	}
	if string(packed) != "\x11\x39" {
		t.Fatalf("packed % x, want 11 39", packed)
	}
	if _, err := packWeights([]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}); err == nil {
		t.Fatal("gap 16 should not pack")
	}
	if _, err := packWeights([]int{12}); err == nil {
		t.Fatal("weight 12 should not pack")
	}
}
