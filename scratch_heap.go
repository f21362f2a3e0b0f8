//go:build !syllab_noheap

package syllab

// overflowBuffers allocates matcher buffers for a word of n characters,
// n > inlineChars.
func overflowBuffers(n int) (chars []uint16, widths, levels []uint8) {
	return make([]uint16, n+2), make([]uint8, n), make([]uint8, n+3)
}
