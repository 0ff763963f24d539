package schematic

import (
	"errors"

	"github.com/blockme/schemread/nbt"
)

// FormatError and UnsupportedTagError are the two failure kinds of a decode.
// They are shared with package nbt so callers only need one errors.As target each.
type (
	FormatError         = nbt.FormatError
	UnsupportedTagError = nbt.UnsupportedTagError
)

var ErrUnrecognizedFormat = errors.New("schematic: unrecognized format")
var ErrVolumeTooLarge = errors.New("schematic: volume exceeds limit")
