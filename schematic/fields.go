package schematic

import (
	"github.com/blockme/schemread/nbt"
)

func field(c *nbt.Compound, name string, kind nbt.Kind) (nbt.Tag, error) {
	tag, ok := c.Get(name)
	if !ok {
		return nil, nbt.Errorf("missing field %q", name)
	}
	if tag.Kind() != kind {
		return nil, nbt.Errorf("field %q is %s, expected %s", name, tag.Kind(), kind)
	}
	return tag, nil
}

// dimension reads an unsigned 16-bit extent that must be at least 1.
func dimension(c *nbt.Compound, name string) (int, error) {
	tag, err := field(c, name, nbt.KindShort)
	if err != nil {
		return 0, err
	}
	v := int(uint16(tag.(nbt.Short)))
	if v == 0 {
		return 0, nbt.Errorf("field %q must be positive", name)
	}
	return v, nil
}

func dimensions(c *nbt.Compound) (w, h, l int, err error) {
	if w, err = dimension(c, "Width"); err != nil {
		return
	}
	if h, err = dimension(c, "Height"); err != nil {
		return
	}
	l, err = dimension(c, "Length")
	return
}

func byteArray(c *nbt.Compound, name string) (nbt.ByteArray, error) {
	tag, err := field(c, name, nbt.KindByteArray)
	if err != nil {
		return nil, err
	}
	return tag.(nbt.ByteArray), nil
}

func compound(c *nbt.Compound, name string) (*nbt.Compound, error) {
	tag, err := field(c, name, nbt.KindCompound)
	if err != nil {
		return nil, err
	}
	return tag.(*nbt.Compound), nil
}

type vec3 struct {
	X, Y, Z int
}

func (v vec3) abs() vec3 {
	return vec3{abs(v.X), abs(v.Y), abs(v.Z)}
}

func (v vec3) add(o vec3) vec3 {
	return vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// vector reads a 3-component integer vector stored either as a compound of
// x/y/z ints or as an int array of length 3. The bool result is false when the
// field is absent.
func vector(c *nbt.Compound, name string) (vec3, bool, error) {
	tag, ok := c.Get(name)
	if !ok {
		return vec3{}, false, nil
	}
	switch v := tag.(type) {
	case *nbt.Compound:
		var out vec3
		for _, axis := range []struct {
			key string
			dst *int
		}{{"x", &out.X}, {"y", &out.Y}, {"z", &out.Z}} {
			comp, _ := v.Get(axis.key)
			n, ok := comp.(nbt.Int)
			if !ok {
				return vec3{}, true, nbt.Errorf("field %q needs a %s %q component", name, nbt.KindInt, axis.key)
			}
			*axis.dst = int(n)
		}
		return out, true, nil
	case nbt.IntArray:
		if len(v) != 3 {
			return vec3{}, true, nbt.Errorf("field %q has %d components, expected 3", name, len(v))
		}
		return vec3{int(v[0]), int(v[1]), int(v[2])}, true, nil
	default:
		return vec3{}, true, nbt.Errorf("field %q is %s, expected %s or %s", name, tag.Kind(), nbt.KindCompound, nbt.KindIntArray)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// checkVolume multiplies extents without overflowing and applies Options.MaxVolume.
func checkVolume(opts Options, w, h, l int) (int, error) {
	volume := int64(w) * int64(h)
	if volume > 0 && int64(l) > (1<<62)/volume {
		return 0, nbt.Wrapf(ErrVolumeTooLarge, "%dx%dx%d", w, h, l)
	}
	volume *= int64(l)
	if opts.MaxVolume > 0 && volume > int64(opts.MaxVolume) {
		return 0, nbt.Wrapf(ErrVolumeTooLarge, "%dx%dx%d is %d voxels, limit %d", w, h, l, volume, opts.MaxVolume)
	}
	return int(volume), nil
}
