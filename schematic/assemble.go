package schematic

// assembler collects placed blocks and the bounds needed to report final
// dimensions. Coordinates may be negative until finish shifts them.
type assembler struct {
	blocks []Block

	// lo is the per-axis minimum over placed blocks.
	lo vec3

	// hi is the per-axis exclusive upper bound over every declared volume.
	hi       vec3
	hasHi    bool
	hasLow   bool
	negative bool
}

// fixedAssembler is used by formats whose header gives the final dimensions.
func fixedAssembler(w, h, l int) *assembler {
	a := &assembler{}
	a.extend(vec3{}, vec3{w, h, l})
	return a
}

// extend grows the tracked extents to cover the box [origin, origin+size).
func (a *assembler) extend(origin, size vec3) {
	end := origin.add(size)
	if !a.hasHi {
		a.hi, a.hasHi = end, true
		return
	}
	a.hi = vec3{max(a.hi.X, end.X), max(a.hi.Y, end.Y), max(a.hi.Z, end.Z)}
}

func (a *assembler) add(x, y, z int, id string) {
	a.blocks = append(a.blocks, Block{X: x, Y: y, Z: z, ID: id})
	if x < 0 || y < 0 || z < 0 {
		a.negative = true
	}
	if !a.hasLow {
		a.lo, a.hasLow = vec3{x, y, z}, true
		return
	}
	a.lo = vec3{min(a.lo.X, x), min(a.lo.Y, y), min(a.lo.Z, z)}
}

// finish moves every block so each axis starts at zero when any coordinate is
// negative, then derives the dimensions from the shifted extents.
func (a *assembler) finish(format Format) *Schematic {
	var shift vec3
	if a.negative {
		shift = vec3{-a.lo.X, -a.lo.Y, -a.lo.Z}
		for i := range a.blocks {
			a.blocks[i].X += shift.X
			a.blocks[i].Y += shift.Y
			a.blocks[i].Z += shift.Z
		}
	}
	if a.blocks == nil {
		a.blocks = []Block{}
	}
	hi := a.hi.add(shift)
	return &Schematic{
		Width:  max(1, hi.X),
		Height: max(1, hi.Y),
		Length: max(1, hi.Z),
		Blocks: a.blocks,
		Format: format,
	}
}
