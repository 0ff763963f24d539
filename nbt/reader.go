package nbt

import (
	"encoding/binary"
	"math"
	"strconv"
)

const DefaultMaxDepth = 512

// Struct Reader decodes tags from an in-memory buffer. The buffer is borrowed for the lifetime of the reader and is
// never modified. A Reader is not safe for concurrent use.
type Reader struct {
	buf []byte
	off int

	// MaxDepth bounds list/compound nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	depth    int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Parse decodes a whole buffer whose root is a named compound. Bytes after the root are ignored.
func Parse(buf []byte) (name string, root *Compound, err error) {
	return NewReader(buf).ReadRoot()
}

// ReadRoot reads the root kind byte, the root name and the compound payload.
func (r *Reader) ReadRoot() (name string, root *Compound, err error) {
	start := r.off
	kind, err := r.readKind()
	if err != nil {
		return
	}
	if kind != KindCompound {
		err = &FormatError{Offset: start, Msg: "root tag is " + kind.String() + ", expected " + KindCompound.String()}
		return
	}
	if name, err = r.readString(); err != nil {
		return
	}
	root, err = r.readCompound()
	return
}

// ReadTag decodes one payload of the given kind at the cursor and reports how many bytes it consumed.
func (r *Reader) ReadTag(kind Kind) (tag Tag, n int, err error) {
	start := r.off
	tag, err = r.readPayload(kind)
	n = r.off - start
	return
}

func (r *Reader) readPayload(kind Kind) (Tag, error) {
	switch kind {
	case KindByte:
		b, err := r.take(1)
		if err != nil {
			return nil, err
		}
		return Byte(int8(b[0])), nil
	case KindShort:
		b, err := r.take(2)
		if err != nil {
			return nil, err
		}
		return Short(int16(binary.BigEndian.Uint16(b))), nil
	case KindInt:
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return Int(int32(binary.BigEndian.Uint32(b))), nil
	case KindLong:
		b, err := r.take(8)
		if err != nil {
			return nil, err
		}
		return Long(int64(binary.BigEndian.Uint64(b))), nil
	case KindFloat:
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case KindDouble:
		b, err := r.take(8)
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case KindString:
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case KindByteArray:
		n, err := r.readArrayLen(1)
		if err != nil {
			return nil, err
		}
		b, _ := r.take(n)
		out := make(ByteArray, n)
		copy(out, b)
		return out, nil
	case KindIntArray:
		n, err := r.readArrayLen(4)
		if err != nil {
			return nil, err
		}
		b, _ := r.take(n * 4)
		out := make(IntArray, n)
		for i := range out {
			out[i] = int32(binary.BigEndian.Uint32(b[i*4:]))
		}
		return out, nil
	case KindLongArray:
		n, err := r.readArrayLen(8)
		if err != nil {
			return nil, err
		}
		b, _ := r.take(n * 8)
		out := make(LongArray, n)
		for i := range out {
			out[i] = int64(binary.BigEndian.Uint64(b[i*8:]))
		}
		return out, nil
	case KindList:
		return r.readList()
	case KindCompound:
		return r.readCompound()
	case KindEnd:
		return nil, &FormatError{Offset: r.off, Msg: "unexpected " + KindEnd.String() + " payload"}
	default:
		return nil, &UnsupportedTagError{Offset: r.off, Kind: byte(kind)}
	}
}

func (r *Reader) readList() (*List, error) {
	elemOffset := r.off
	elem, err := r.readKind()
	if err != nil {
		return nil, err
	}
	if !elem.Valid() {
		return nil, &UnsupportedTagError{Offset: elemOffset, Kind: byte(elem)}
	}
	b, err := r.take(4)
	if err != nil {
		return nil, err
	}
	count := int32(binary.BigEndian.Uint32(b))
	list := &List{Elem: elem}
	if count <= 0 {
		return list, nil
	}
	if elem == KindEnd {
		return nil, &FormatError{Offset: elemOffset, Msg: "list of " + KindEnd.String() + " with non-zero length"}
	}
	// Every element kind needs at least one byte, so a count beyond the remaining buffer cannot be satisfied.
	if int64(count) > int64(r.Remaining()) {
		return nil, &FormatError{Offset: elemOffset, Msg: "list length exceeds remaining buffer", Err: ErrUnexpectedEOF}
	}
	if err = r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	list.Items = make([]Tag, 0, count)
	for i := int32(0); i < count; i++ {
		item, err := r.readPayload(elem)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

func (r *Reader) readCompound() (*Compound, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	compound := NewCompound()
	for {
		kindOffset := r.off
		kind, err := r.readKind()
		if err != nil {
			return nil, err
		}
		if kind == KindEnd {
			return compound, nil
		}
		if !kind.Valid() {
			return nil, &UnsupportedTagError{Offset: kindOffset, Kind: byte(kind)}
		}
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		if compound.Has(name) {
			return nil, &FormatError{Offset: kindOffset, Msg: "duplicate compound key " + strconv.Quote(name)}
		}
		value, err := r.readPayload(kind)
		if err != nil {
			return nil, err
		}
		compound.Set(name, value)
	}
}

// readString reads a 16-bit length prefix followed by that many bytes. The
// length is unsigned, so prefixes with the top bit set describe strings of
// 32768..65535 bytes.
func (r *Reader) readString() (string, error) {
	b, err := r.take(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	s, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

func (r *Reader) readArrayLen(elemSize int) (int, error) {
	start := r.off
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	count := int32(binary.BigEndian.Uint32(b))
	if count < 0 {
		return 0, &FormatError{Offset: start, Msg: "negative array length"}
	}
	if int64(count)*int64(elemSize) > int64(r.Remaining()) {
		return 0, &FormatError{Offset: start, Msg: "array length exceeds remaining buffer", Err: ErrUnexpectedEOF}
	}
	return int(count), nil
}

func (r *Reader) readKind() (Kind, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return Kind(b[0]), nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &FormatError{Offset: r.off, Msg: "read past end of buffer", Err: ErrUnexpectedEOF}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) enter() error {
	limit := r.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	if r.depth >= limit {
		return &FormatError{Offset: r.off, Msg: "nesting limit reached", Err: ErrTooDeep}
	}
	r.depth++
	return nil
}

func (r *Reader) leave() {
	r.depth--
}
