package schematic

import (
	"github.com/blockme/schemread/nbt"
)

const maxVarintLen = 5

// ReadVarint decodes one unsigned varint starting at off: 7 data bits per
// byte, least significant group first, high bit set on every byte but the
// last. It returns the value and the offset just past it.
func ReadVarint(buf []byte, off int) (value, next int, err error) {
	var v uint64
	for n := 0; n < maxVarintLen; n++ {
		if off+n >= len(buf) {
			return 0, off, nbt.Errorf("varint at byte %d runs past end of data", off)
		}
		b := buf[off+n]
		v |= uint64(b&0x7f) << (7 * n)
		if b&0x80 == 0 {
			return int(v), off + n + 1, nil
		}
	}
	return 0, off, nbt.Errorf("varint at byte %d is longer than %d bytes", off, maxVarintLen)
}
