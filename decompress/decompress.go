// Package decompress turns a schematic file as stored on disk into the raw NBT bytes the decoder expects.
package decompress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// DefaultMaxBytes bounds the decompressed size of a single schematic.
const DefaultMaxBytes = 256 << 20

var ErrInvalidCompression = errors.New("decompress: invalid compression format")
var ErrTooLarge = errors.New("decompress: output exceeds size limit")

type Compression byte

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZlib
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Decompressor is the collaborator that produces raw NBT from stored bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Struct Auto sniffs the compression from the leading bytes. Schematic editors write gzip; zlib and zstd show up when
// files come out of region storage or caches. Uncompressed NBT, which starts with a compound tag, passes through.
type Auto struct {
	// MaxBytes limits the decompressed output. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Bytes decompresses data with the default Auto settings.
func Bytes(data []byte) ([]byte, error) {
	return Auto{}.Decompress(data)
}

// Detect reports which compression data appears to use.
func Detect(data []byte) Compression {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return CompressionGzip
	case len(data) >= 4 && data[0] == 0x28 && data[1] == 0xb5 && data[2] == 0x2f && data[3] == 0xfd:
		return CompressionZstd
	case len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		return CompressionZlib
	case len(data) >= 1 && data[0] == 0x0a:
		return CompressionNone
	default:
		return CompressionUnknown
	}
}

func (a Auto) Decompress(data []byte) (out []byte, err error) {
	limit := a.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	var stream io.Reader
	source := bytes.NewReader(data)
	switch Detect(data) {
	case CompressionNone:
		if int64(len(data)) > limit {
			return nil, ErrTooLarge
		}
		return data, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(source)
		if err != nil {
			return nil, fmt.Errorf("could not open gzip stream: %w", err)
		}
		defer gz.Close()
		stream = gz
	case CompressionZlib:
		zr, err := zlib.NewReader(source)
		if err != nil {
			return nil, fmt.Errorf("could not open zlib stream: %w", err)
		}
		defer zr.Close()
		stream = zr
	case CompressionZstd:
		zr, err := zstd.NewReader(source, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("could not open zstd stream: %w", err)
		}
		defer zr.Close()
		stream = zr
	default:
		return nil, ErrInvalidCompression
	}

	// Read one byte past the limit to tell "exactly at the limit" from "over it".
	out, err = io.ReadAll(io.LimitReader(stream, limit+1))
	if err != nil {
		return nil, fmt.Errorf("could not decompress: %w", err)
	}
	if int64(len(out)) > limit {
		return nil, ErrTooLarge
	}
	return out, nil
}
