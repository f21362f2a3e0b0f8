//go:build syllab_noheap

package syllab

import "fmt"

// overflowBuffers refuses words beyond the fixed buffers when the heap
// fallback is compiled out.
func overflowBuffers(n int) (chars []uint16, widths, levels []uint8) {
	panic(fmt.Sprintf("syllab: word of %d characters exceeds the fixed %d-character buffers", n, inlineChars))
}
