// Package schematic decodes MCEdit, Sponge and Litematica schematics into a flat list of placed blocks.
//
// Input must already be decompressed; see package decompress.
package schematic

import (
	"io"
	"log"

	"github.com/blockme/schemread/nbt"
)

const AirID = "minecraft:air"

// DefaultMaxVolume bounds the number of voxel slots a single decode will visit.
const DefaultMaxVolume = 1 << 28

// Block is one placed, non-air block.
type Block struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	Z  int    `json:"z"`
	ID string `json:"block_id"`
}

// Schematic is the uniform result of every decoder. Every block lies inside
// [0,Width) x [0,Height) x [0,Length) and no block is air.
type Schematic struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Length int     `json:"length"`
	Blocks []Block `json:"blocks"`
	Format Format  `json:"format"`
}

type Options struct {
	// MaxVolume rejects inputs declaring more voxel slots than this. Zero disables the check.
	MaxVolume int
	// MaxDepth bounds NBT nesting. Zero uses nbt.DefaultMaxDepth.
	MaxDepth int
	// LegacyFallthrough hands unrecognized layouts to the Sponge decoder instead of failing.
	LegacyFallthrough bool
	Logger            *log.Logger
}

func DefaultOptions() Options {
	return Options{
		MaxVolume: DefaultMaxVolume,
		MaxDepth:  nbt.DefaultMaxDepth,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}

// Decode decodes an uncompressed schematic with DefaultOptions.
func Decode(data []byte) (*Schematic, error) {
	return DecodeWithOptions(data, DefaultOptions())
}

func DecodeWithOptions(data []byte, opts Options) (*Schematic, error) {
	r := nbt.NewReader(data)
	r.MaxDepth = opts.MaxDepth
	_, root, err := r.ReadRoot()
	if err != nil {
		return nil, err
	}
	return DecodeTree(root, opts)
}

// DecodeTree dispatches an already parsed root compound to the matching decoder.
func DecodeTree(root *nbt.Compound, opts Options) (s *Schematic, err error) {
	format := Detect(root)
	logger := opts.logger()
	if format == FormatUnrecognized {
		if !opts.LegacyFallthrough {
			return nil, nbt.Wrapf(ErrUnrecognizedFormat, "root keys %q", root.Names())
		}
		logger.Printf("no known layout in root %q, trying %s", root.Names(), FormatSponge)
		format = FormatSponge
	}

	switch format {
	case FormatLitematic:
		s, err = decodeLitematic(root, opts)
	case FormatClassic:
		s, err = decodeClassic(root, opts)
	default:
		s, err = decodeSponge(root, opts)
	}
	if err != nil {
		return nil, err
	}
	logger.Printf("decoded %s schematic: %dx%dx%d, %d blocks", s.Format, s.Width, s.Height, s.Length, len(s.Blocks))
	return s, nil
}
