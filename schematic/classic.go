package schematic

import (
	"github.com/blockme/schemread/nbt"
)

// classicBody picks the compound that carries the Blocks byte array.
func classicBody(root *nbt.Compound) *nbt.Compound {
	if tag, ok := root.Get("Blocks"); ok && tag.Kind() == nbt.KindByteArray {
		return root
	}
	return body(root)
}

// decodeClassic reads the MCEdit layout: one unsigned byte id per voxel in
// y, z, x order, with an optional AddBlocks nibble array for ids above 255.
func decodeClassic(root *nbt.Compound, opts Options) (*Schematic, error) {
	c := classicBody(root)
	w, h, l, err := dimensions(c)
	if err != nil {
		return nil, err
	}
	volume, err := checkVolume(opts, w, h, l)
	if err != nil {
		return nil, err
	}
	blocks, err := byteArray(c, "Blocks")
	if err != nil {
		return nil, err
	}
	if len(blocks) != volume {
		return nil, nbt.Errorf("Blocks has %d entries, expected %d for %dx%dx%d", len(blocks), volume, w, h, l)
	}

	var add nbt.ByteArray
	if c.Has("AddBlocks") {
		if add, err = byteArray(c, "AddBlocks"); err != nil {
			return nil, err
		}
	}

	out := fixedAssembler(w, h, l)
	for y := 0; y < h; y++ {
		for z := 0; z < l; z++ {
			for x := 0; x < w; x++ {
				i := (y*l+z)*w + x
				id := int(blocks[i])
				if half := i >> 1; half < len(add) {
					if i&1 == 0 {
						id |= int(add[half]&0x0f) << 8
					} else {
						id |= int(add[half]&0xf0) << 4
					}
				}
				if id == 0 {
					continue
				}
				out.add(x, y, z, LegacyBlockID(id))
			}
		}
	}
	return out.finish(FormatClassic), nil
}
