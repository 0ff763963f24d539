package schematic

import "math/bits"

// BitsPerBlock is the index width used by Litematica block state arrays:
// ceil(log2(paletteSize)), never below 2.
func BitsPerBlock(paletteSize int) int {
	if paletteSize <= 1 {
		return 2
	}
	return max(2, bits.Len(uint(paletteSize-1)))
}

// IndicesPerWord is how many whole indices fit in one 64-bit word. Leftover high bits are padding.
func IndicesPerWord(bitsPerBlock int) int {
	return 64 / bitsPerBlock
}

// WordsNeeded is the minimum word count for count indices of the given width.
func WordsNeeded(count, bitsPerBlock int) int {
	per := IndicesPerWord(bitsPerBlock)
	return (count + per - 1) / per
}

// UnpackIndex extracts index i. Indices never span two words, so index i
// lives entirely in word i/perWord.
func UnpackIndex(words []int64, i, bitsPerBlock int) int {
	per := IndicesPerWord(bitsPerBlock)
	word := uint64(words[i/per])
	shift := uint(i%per) * uint(bitsPerBlock)
	mask := uint64(1)<<uint(bitsPerBlock) - 1
	return int((word >> shift) & mask)
}
