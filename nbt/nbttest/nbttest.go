// Package nbttest builds encoded NBT buffers for tests.
package nbttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/blockme/schemread/nbt"
)

// C builds a compound from alternating name/tag arguments, keeping argument order.
func C(pairs ...any) *nbt.Compound {
	if len(pairs)%2 != 0 {
		panic("nbttest: odd number of arguments to C")
	}
	c := nbt.NewCompound()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("nbttest: argument %d is %T, want string", i, pairs[i]))
		}
		tag, ok := pairs[i+1].(nbt.Tag)
		if !ok {
			panic(fmt.Sprintf("nbttest: argument %d is %T, want nbt.Tag", i+1, pairs[i+1]))
		}
		c.Set(name, tag)
	}
	return c
}

// L builds a list whose element kind is taken from the first item, or End when empty.
func L(items ...nbt.Tag) *nbt.List {
	l := &nbt.List{Elem: nbt.KindEnd, Items: items}
	if len(items) > 0 {
		l.Elem = items[0].Kind()
	}
	return l
}

// Encode serializes a named root compound.
func Encode(name string, root *nbt.Compound) []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(nbt.KindCompound))
	writeString(&buf, name)
	writePayload(&buf, root)
	return buf.Bytes()
}

func writePayload(buf *bytes.Buffer, tag nbt.Tag) {
	switch v := tag.(type) {
	case nbt.Byte:
		buf.WriteByte(byte(v))
	case nbt.Short:
		_ = binary.Write(buf, binary.BigEndian, int16(v))
	case nbt.Int:
		_ = binary.Write(buf, binary.BigEndian, int32(v))
	case nbt.Long:
		_ = binary.Write(buf, binary.BigEndian, int64(v))
	case nbt.Float:
		_ = binary.Write(buf, binary.BigEndian, math.Float32bits(float32(v)))
	case nbt.Double:
		_ = binary.Write(buf, binary.BigEndian, math.Float64bits(float64(v)))
	case nbt.String:
		writeString(buf, string(v))
	case nbt.ByteArray:
		_ = binary.Write(buf, binary.BigEndian, int32(len(v)))
		buf.Write(v)
	case nbt.IntArray:
		_ = binary.Write(buf, binary.BigEndian, int32(len(v)))
		_ = binary.Write(buf, binary.BigEndian, []int32(v))
	case nbt.LongArray:
		_ = binary.Write(buf, binary.BigEndian, int32(len(v)))
		_ = binary.Write(buf, binary.BigEndian, []int64(v))
	case *nbt.List:
		buf.WriteByte(byte(v.Elem))
		_ = binary.Write(buf, binary.BigEndian, int32(len(v.Items)))
		for _, item := range v.Items {
			writePayload(buf, item)
		}
	case *nbt.Compound:
		for _, name := range v.Names() {
			child, _ := v.Get(name)
			buf.WriteByte(byte(child.Kind()))
			writeString(buf, name)
			writePayload(buf, child)
		}
		buf.WriteByte(byte(nbt.KindEnd))
	default:
		panic(fmt.Sprintf("nbttest: cannot encode %T", tag))
	}
}

func writeString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.BigEndian, uint16(len(s)))
	buf.WriteString(s)
}

// Varints encodes values with 7 data bits per byte, low group first.
func Varints(values ...int) nbt.ByteArray {
	var out []byte
	for _, v := range values {
		u := uint32(v)
		for u >= 0x80 {
			out = append(out, byte(u)|0x80)
			u >>= 7
		}
		out = append(out, byte(u))
	}
	return out
}

// Pack packs indices into 64-bit words, floor(64/bits) per word, low bits first.
func Pack(bits int, indices ...int) nbt.LongArray {
	perWord := 64 / bits
	words := make(nbt.LongArray, (len(indices)+perWord-1)/perWord)
	for i, idx := range indices {
		shift := uint(i%perWord) * uint(bits)
		words[i/perWord] |= int64(uint64(idx) << shift)
	}
	return words
}
