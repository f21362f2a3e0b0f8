package automaton

import (
	"sort"

	"github.com/derekparker/trie"
)

// Builder accumulates hyphenation patterns in a mutable prefix trie.
// Freezing the builder with Encode produces the flat byte form. The zero
// value is not usable, construct with NewBuilder.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	pats  *trie.Trie
	count int
}

// NewBuilder creates an empty pattern builder.
func NewBuilder() *Builder {
	return &Builder{pats: trie.New()}
}

// Insert adds a pattern to the builder. Inserting the same character
// sequence twice merges the weight vectors gap by gap, keeping the
// maximum of both.
func (b *Builder) Insert(p Pattern) error {
	if err := p.check(); err != nil {
		return err
	}
	key := string(p.Sequence)
	if prev, ok := b.pats.Find(key); ok {
		w := prev.Meta().([]int)
		for gap, v := range p.Weights {
			if v > w[gap] {
				w[gap] = v
			}
		}
		tracer().Debugf("pattern %s merged into existing entry", p)
		return nil
	}
	w := make([]int, len(p.Weights))
	copy(w, p.Weights)
	b.pats.Add(key, w)
	b.count++
	return nil
}

// Len returns the number of distinct patterns inserted so far.
func (b *Builder) Len() int {
	return b.count
}

// edges returns the outgoing transitions of a trie node in ascending
// label order, plus the node's weight vector if a pattern ends here.
// derekparker/trie parks the meta payload on a child keyed by the zero
// rune, which is skipped as a transition.
func edges(n *trie.Node) (labels []rune, targets []*trie.Node, weights []int) {
	children := n.Children()
	labels = make([]rune, 0, len(children))
	for r := range children {
		if r == 0 {
			continue
		}
		labels = append(labels, r)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	targets = make([]*trie.Node, len(labels))
	for i, r := range labels {
		targets[i] = children[r]
	}
	if end, ok := children[0]; ok {
		weights = end.Meta().([]int)
	}
	return labels, targets, weights
}
