package automaton

// State is a cursor into an encoded automaton. It is a plain view, cheap
// to copy, allocation free, and safe for concurrent use: all fields slice
// the shared immutable blob.
type State struct {
	data    string // the whole automaton
	weights string // packed gap weights of this node, may be empty
	labels  string // 2 bytes per transition, big endian, ascending
	targets string // 4 bytes per transition, big endian
}

// Root returns the start state of an encoded automaton.
func Root(data string) State {
	return at(data, 0)
}

// at decodes the node header at off and returns a cursor positioned there.
func at(data string, off uint32) State {
	head := data[off]
	count := int(head &^ hasWeights)
	pos := int(off) + 1
	var weights string
	if head&hasWeights != 0 {
		n := int(data[pos])
		pos++
		weights = data[pos : pos+n]
		pos += n
	}
	labels := data[pos : pos+2*count]
	pos += 2 * count
	return State{
		data:    data,
		weights: weights,
		labels:  labels,
		targets: data[pos : pos+4*count],
	}
}

// Transition follows the edge labeled with the BMP code unit c. The second
// return value reports whether such an edge exists; if it does not, the
// returned state is the zero State.
func (s State) Transition(c uint16) (State, bool) {
	lo, hi := 0, len(s.labels)/2
	for lo < hi {
		mid := (lo + hi) / 2
		label := uint16(s.labels[2*mid])<<8 | uint16(s.labels[2*mid+1])
		switch {
		case label == c:
			off := uint32(s.targets[4*mid])<<24 |
				uint32(s.targets[4*mid+1])<<16 |
				uint32(s.targets[4*mid+2])<<8 |
				uint32(s.targets[4*mid+3])
			return at(s.data, off), true
		case label < c:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return State{}, false
}

// Weights calls f for every nonzero gap weight stored at this state. gap
// is the offset of the gap relative to the first character the match
// started on, val the Liang value 1-9.
func (s State) Weights(f func(gap int, val int)) {
	for i := 0; i < len(s.weights); i++ {
		b := s.weights[i]
		f(int(b>>4), int(b&0x0f))
	}
}

// HasWeights reports whether a pattern ends at this state.
func (s State) HasWeights() bool {
	return len(s.weights) > 0
}
