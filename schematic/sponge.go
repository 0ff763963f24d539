package schematic

import (
	"github.com/blockme/schemread/nbt"
)

// spongeBlocks locates the palette and packed data for both layouts:
// v2 keeps Palette and BlockData beside the geometry, v3 moves them into a
// Blocks compound as Palette and Data.
func spongeBlocks(c *nbt.Compound) (palette *nbt.Compound, data nbt.ByteArray, err error) {
	if blocks, ok := c.Compound("Blocks"); ok {
		if palette, err = compound(blocks, "Palette"); err != nil {
			return
		}
		data, err = byteArray(blocks, "Data")
		return
	}
	if palette, err = compound(c, "Palette"); err != nil {
		return
	}
	data, err = byteArray(c, "BlockData")
	return
}

// invertPalette turns a name -> index compound into an index -> normalized name table.
func invertPalette(palette *nbt.Compound) (map[int]string, error) {
	byIndex := make(map[int]string, palette.Len())
	for _, name := range palette.Names() {
		tag, _ := palette.Get(name)
		idx, ok := tag.(nbt.Int)
		if !ok {
			return nil, nbt.Errorf("palette entry %q is %s, expected %s", name, tag.Kind(), nbt.KindInt)
		}
		if prev, dup := byIndex[int(idx)]; dup {
			return nil, nbt.Errorf("palette index %d used by both %q and %q", idx, prev, name)
		}
		byIndex[int(idx)] = name
	}
	return byIndex, nil
}

func decodeSponge(root *nbt.Compound, opts Options) (*Schematic, error) {
	c := body(root)
	w, h, l, err := dimensions(c)
	if err != nil {
		return nil, err
	}
	volume, err := checkVolume(opts, w, h, l)
	if err != nil {
		return nil, err
	}
	palette, data, err := spongeBlocks(c)
	if err != nil {
		return nil, err
	}
	byIndex, err := invertPalette(palette)
	if err != nil {
		return nil, err
	}
	// Normalize once per palette entry instead of once per voxel.
	names := make(map[int]string, len(byIndex))
	for idx, name := range byIndex {
		names[idx] = NormalizeBlockID(name)
	}

	out := fixedAssembler(w, h, l)
	off := 0
	for i := 0; i < volume; i++ {
		var idx int
		if idx, off, err = ReadVarint(data, off); err != nil {
			return nil, err
		}
		id, ok := names[idx]
		if !ok || isAir(id) {
			continue
		}
		x := i % w
		z := (i / w) % l
		y := i / (w * l)
		out.add(x, y, z, id)
	}
	if off != len(data) {
		return nil, nbt.Errorf("block data has %d trailing bytes after %d entries", len(data)-off, volume)
	}
	return out.finish(FormatSponge), nil
}
