package schematic

import "github.com/blockme/schemread/nbt"

type Format int

const (
	FormatUnrecognized Format = iota
	FormatClassic
	FormatSponge
	FormatLitematic
)

func (f Format) String() string {
	switch f {
	case FormatClassic:
		return "mcedit"
	case FormatSponge:
		return "sponge"
	case FormatLitematic:
		return "litematica"
	default:
		return "unrecognized"
	}
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Detect classifies a root compound by shape. It does no validation beyond
// looking at the kinds of a few well known fields.
func Detect(root *nbt.Compound) Format {
	if _, ok := root.Compound("Regions"); ok {
		return FormatLitematic
	}

	nested, _ := root.Compound("Schematic")
	for _, body := range []*nbt.Compound{root, nested} {
		if body == nil {
			continue
		}
		if tag, ok := body.Get("Blocks"); ok && tag.Kind() == nbt.KindByteArray {
			return FormatClassic
		}
	}

	for _, body := range []*nbt.Compound{root, nested} {
		if body == nil {
			continue
		}
		if _, ok := body.Compound("Palette"); ok {
			return FormatSponge
		}
		if _, ok := body.Compound("Blocks"); ok {
			return FormatSponge
		}
	}
	return FormatUnrecognized
}

// body returns the compound holding the geometry fields: the Schematic child when present, else root.
func body(root *nbt.Compound) *nbt.Compound {
	if nested, ok := root.Compound("Schematic"); ok {
		return nested
	}
	return root
}
