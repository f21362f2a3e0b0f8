package automaton

import (
	"fmt"
	"math"

	"github.com/derekparker/trie"
)

// node is the encoder's working copy of one trie node: everything needed
// to lay the node out, with child links as indices into the breadth-first
// node list.
type node struct {
	off     int
	packed  []byte
	labels  []rune
	targets []int
}

func (n *node) size() int {
	s := 1 + 6*len(n.labels)
	if len(n.packed) > 0 {
		s += 1 + len(n.packed)
	}
	return s
}

// Encode freezes the builder into the flat byte form described in the
// package comment. The result is returned as a string: it is immutable,
// position independent, and shared without copying by every matcher that
// walks it.
//
// Nodes are laid out in breadth-first order with transitions sorted by
// label, so encoding a set of patterns always yields the same bytes,
// regardless of insertion order.
func (b *Builder) Encode() (string, error) {
	var (
		nodes []*node
		queue = []*trie.Node{b.pats.Root()}
		size  int
	)
	for head := 0; head < len(queue); head++ {
		labels, targets, weights := edges(queue[head])
		if len(labels) > maxTransitions {
			return "", fmt.Errorf("node fan-out %d exceeds %d transitions", len(labels), maxTransitions)
		}
		n := &node{off: size, labels: labels, targets: make([]int, len(targets))}
		if weights != nil {
			packed, err := packWeights(weights)
			if err != nil {
				return "", err
			}
			n.packed = packed
		}
		for i, child := range targets {
			n.targets[i] = len(queue)
			queue = append(queue, child)
		}
		nodes = append(nodes, n)
		size += n.size()
	}
	if size > math.MaxUint32 {
		return "", fmt.Errorf("automaton of %d bytes exceeds the 4 GiB offset space", size)
	}
	buf := make([]byte, 0, size)
	for _, n := range nodes {
		head := byte(len(n.labels))
		if len(n.packed) > 0 {
			head |= hasWeights
		}
		buf = append(buf, head)
		if len(n.packed) > 0 {
			buf = append(buf, byte(len(n.packed)))
			buf = append(buf, n.packed...)
		}
		for _, r := range n.labels {
			buf = append(buf, byte(r>>8), byte(r))
		}
		for _, t := range n.targets {
			off := nodes[t].off
			buf = append(buf, byte(off>>24), byte(off>>16), byte(off>>8), byte(off))
		}
	}
	tracer().Infof("encoded %d patterns into %d nodes, %d bytes", b.count, len(nodes), len(buf))
	return string(buf), nil
}

// packWeights packs the nonzero entries of a gap weight vector into one
// byte per entry, high nibble the gap index, low nibble the Liang value.
func packWeights(w []int) ([]byte, error) {
	var packed []byte
	for gap, v := range w {
		if v == 0 {
			continue
		}
		if gap > maxPatternLen {
			return nil, fmt.Errorf("gap index %d does not fit in a nibble", gap)
		}
		if v < 0 || v > maxWeight {
			return nil, fmt.Errorf("weight %d out of range", v)
		}
		packed = append(packed, byte(gap<<4|v))
	}
	return packed, nil
}
