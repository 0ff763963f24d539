package schematic

import (
	"github.com/blockme/schemread/nbt"
)

// region is one Litematica sub-volume. It only lives while its blocks are
// merged into the assembler.
type region struct {
	name     string
	position vec3
	size     vec3
	palette  []string
	states   nbt.LongArray
}

func readRegion(name string, c *nbt.Compound) (*region, error) {
	r := &region{name: name}

	size, ok, err := vector(c, "Size")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nbt.Errorf("region %q: missing field %q", name, "Size")
	}
	// Negative components only encode direction.
	r.size = size.abs()

	if r.position, _, err = vector(c, "Position"); err != nil {
		return nil, err
	}

	if c.Has("BlockStatePalette") {
		tag, err := field(c, "BlockStatePalette", nbt.KindList)
		if err != nil {
			return nil, err
		}
		list := tag.(*nbt.List)
		r.palette = make([]string, 0, list.Len())
		for i, item := range list.Items {
			entry, ok := item.(*nbt.Compound)
			if !ok {
				return nil, nbt.Errorf("region %q: palette entry %d is %s, expected %s", name, i, item.Kind(), nbt.KindCompound)
			}
			r.palette = append(r.palette, paletteName(entry))
		}
	}

	if c.Has("BlockStates") {
		tag, err := field(c, "BlockStates", nbt.KindLongArray)
		if err != nil {
			return nil, err
		}
		r.states = tag.(nbt.LongArray)
	}
	return r, nil
}

// paletteName returns the normalized Name of a palette entry, or air when it is missing.
func paletteName(entry *nbt.Compound) string {
	tag, ok := entry.Get("Name")
	if !ok {
		return AirID
	}
	name, ok := tag.(nbt.String)
	if !ok || name == "" {
		return AirID
	}
	return NormalizeBlockID(string(name))
}

func (r *region) place(out *assembler, volume int) error {
	out.extend(r.position, r.size)
	if volume == 0 {
		return nil
	}

	bits := BitsPerBlock(len(r.palette))
	if need := WordsNeeded(volume, bits); len(r.states) < need {
		return nbt.Errorf("region %q: BlockStates has %d words, need %d for %d blocks at %d bits", r.name, len(r.states), need, volume, bits)
	}

	w, l := r.size.X, r.size.Z
	for i := 0; i < volume; i++ {
		idx := UnpackIndex(r.states, i, bits)
		if idx >= len(r.palette) {
			continue
		}
		id := r.palette[idx]
		if isAir(id) {
			continue
		}
		x := i % w
		z := (i / w) % l
		y := i / (w * l)
		out.add(x+r.position.X, y+r.position.Y, z+r.position.Z, id)
	}
	return nil
}

// decodeLitematic merges every region, in stored order, into one block list
// whose coordinates start at zero.
func decodeLitematic(root *nbt.Compound, opts Options) (*Schematic, error) {
	regions, err := compound(root, "Regions")
	if err != nil {
		return nil, err
	}
	logger := opts.logger()

	out := &assembler{}
	total := 0
	for _, name := range regions.Names() {
		c, err := compound(regions, name)
		if err != nil {
			return nil, err
		}
		r, err := readRegion(name, c)
		if err != nil {
			return nil, err
		}
		volume, err := checkVolume(opts, r.size.X, r.size.Y, r.size.Z)
		if err != nil {
			return nil, err
		}
		// The limit applies to the whole file, not each region.
		total += volume
		if opts.MaxVolume > 0 && total > opts.MaxVolume {
			return nil, nbt.Wrapf(ErrVolumeTooLarge, "regions total %d voxels, limit %d", total, opts.MaxVolume)
		}
		logger.Printf("region %q: size %v at %v, %d palette entries", r.name, r.size, r.position, len(r.palette))
		if err = r.place(out, volume); err != nil {
			return nil, err
		}
	}
	return out.finish(FormatLitematic), nil
}
