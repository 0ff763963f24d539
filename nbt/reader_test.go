package nbt_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockme/schemread/nbt"
	"github.com/blockme/schemread/nbt/nbttest"
)

func TestParse_AllKinds(t *testing.T) {
	root := nbttest.C(
		"b", nbt.Byte(-1),
		"s", nbt.Short(-300),
		"i", nbt.Int(-70000),
		"l", nbt.Long(math.MinInt64),
		"f", nbt.Float(1.5),
		"d", nbt.Double(-2.25),
		"str", nbt.String("minecraft:stone"),
		"ba", nbt.ByteArray{0, 0xff, 7},
		"ia", nbt.IntArray{-1, 2, 3},
		"la", nbt.LongArray{-1, math.MaxInt64},
		"list", nbttest.L(nbt.Int(1), nbt.Int(2)),
		"nested", nbttest.C("x", nbt.Int(4)),
	)
	name, got, err := nbt.Parse(nbttest.Encode("Schematic", root))
	require.NoError(t, err)
	assert.Equal(t, "Schematic", name)
	assert.Equal(t, root.Names(), got.Names())

	for _, key := range root.Names() {
		want, _ := root.Get(key)
		have, ok := got.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, have, key)
	}
}

func TestParse_LongKeepsFullPrecision(t *testing.T) {
	const v = int64(0x7fffffffffffffff - 3)
	_, got, err := nbt.Parse(nbttest.Encode("", nbttest.C("v", nbt.Long(v))))
	require.NoError(t, err)
	tag, _ := got.Get("v")
	assert.Equal(t, nbt.Long(v), tag)
}

func TestParse_PreservesInsertionOrder(t *testing.T) {
	root := nbttest.C("zeta", nbt.Int(1), "alpha", nbt.Int(2), "mid", nbt.Int(3))
	_, got, err := nbt.Parse(nbttest.Encode("", root))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got.Names())
}

func TestParse_RootNotCompound(t *testing.T) {
	buf := []byte{byte(nbt.KindInt), 0, 0, 0, 0, 0, 1}
	_, _, err := nbt.Parse(buf)
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Offset)
	assert.ErrorContains(t, err, "root tag is TAG_Int")
}

func TestParse_Empty(t *testing.T) {
	_, _, err := nbt.Parse(nil)
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.True(t, errors.Is(err, nbt.ErrUnexpectedEOF))
}

func TestParse_TruncatedByteArray(t *testing.T) {
	buf := nbttest.Encode("", nbttest.C("Blocks", nbt.ByteArray{1, 2, 3, 4}))
	// drop two payload bytes plus the end sentinel
	_, _, err := nbt.Parse(buf[:len(buf)-3])
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, nbt.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "array length exceeds remaining buffer")
}

func TestParse_TruncatedLongArrayFailsBeforeAllocating(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{byte(nbt.KindCompound), 0, 0})
	buf.WriteByte(byte(nbt.KindLongArray))
	buf.Write([]byte{0, 1, 'w'})
	_ = binary.Write(&buf, binary.BigEndian, int32(math.MaxInt32))
	_, _, err := nbt.Parse(buf.Bytes())
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestParse_NegativeArrayLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{byte(nbt.KindCompound), 0, 0})
	buf.WriteByte(byte(nbt.KindIntArray))
	buf.Write([]byte{0, 1, 'a'})
	_ = binary.Write(&buf, binary.BigEndian, int32(-1))
	buf.WriteByte(0)
	_, _, err := nbt.Parse(buf.Bytes())
	assert.ErrorContains(t, err, "negative array length")
}

func TestParse_UnsupportedKind(t *testing.T) {
	buf := []byte{byte(nbt.KindCompound), 0, 0, 13, 0, 1, 'x', 0}
	_, _, err := nbt.Parse(buf)
	var ue *nbt.UnsupportedTagError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, byte(13), ue.Kind)
	assert.Equal(t, 3, ue.Offset)
}

func TestParse_UnsupportedListElementKind(t *testing.T) {
	buf := []byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindList), 0, 1, 'l', 99, 0, 0, 0, 0, 0}
	_, _, err := nbt.Parse(buf)
	var ue *nbt.UnsupportedTagError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, byte(99), ue.Kind)
}

func TestParse_ListNonPositiveCountIsEmpty(t *testing.T) {
	for _, count := range []int32{0, -5} {
		var buf bytes.Buffer
		buf.Write([]byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindList), 0, 1, 'l', byte(nbt.KindInt)})
		_ = binary.Write(&buf, binary.BigEndian, count)
		buf.WriteByte(0)
		_, root, err := nbt.Parse(buf.Bytes())
		require.NoError(t, err)
		tag, _ := root.Get("l")
		list, ok := tag.(*nbt.List)
		require.True(t, ok)
		assert.Equal(t, 0, list.Len())
		assert.Equal(t, nbt.KindInt, list.Elem)
	}
}

func TestParse_ListOfEndWithItems(t *testing.T) {
	buf := []byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindList), 0, 1, 'l', 0, 0, 0, 0, 2, 0}
	_, _, err := nbt.Parse(buf)
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestParse_ListCountBeyondBuffer(t *testing.T) {
	buf := []byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindList), 0, 1, 'l', byte(nbt.KindByte), 0x10, 0, 0, 0, 1}
	_, _, err := nbt.Parse(buf)
	assert.ErrorIs(t, err, nbt.ErrUnexpectedEOF)
}

func TestParse_DuplicateKey(t *testing.T) {
	buf := []byte{
		byte(nbt.KindCompound), 0, 0,
		byte(nbt.KindByte), 0, 1, 'a', 1,
		byte(nbt.KindByte), 0, 1, 'a', 2,
		0,
	}
	_, _, err := nbt.Parse(buf)
	assert.ErrorContains(t, err, `duplicate compound key "a"`)
}

func TestParse_MissingEndSentinel(t *testing.T) {
	buf := []byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindByte), 0, 1, 'a', 1}
	_, _, err := nbt.Parse(buf)
	assert.ErrorIs(t, err, nbt.ErrUnexpectedEOF)
}

func TestParse_StringLengthIsUnsigned(t *testing.T) {
	long := bytes.Repeat([]byte{'q'}, 0x8001)
	root := nbttest.C("s", nbt.String(long))
	_, got, err := nbt.Parse(nbttest.Encode("", root))
	require.NoError(t, err)
	tag, _ := got.Get("s")
	assert.Len(t, string(tag.(nbt.String)), 0x8001)
}

func TestParse_StringLengthHighBitTruncated(t *testing.T) {
	// 0x8001 declared, only 4 bytes follow: must not be read as a 0x7fff or 1-byte string
	buf := []byte{byte(nbt.KindCompound), 0, 0, byte(nbt.KindString), 0, 1, 's', 0x80, 0x01, 'a', 'b', 'c', 0}
	_, _, err := nbt.Parse(buf)
	var fe *nbt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, nbt.ErrUnexpectedEOF)
}

func TestParse_NestingLimit(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{byte(nbt.KindCompound), 0, 0})
	for i := 0; i < 10; i++ {
		buf.Write([]byte{byte(nbt.KindCompound), 0, 1, 'c'})
	}
	for i := 0; i < 11; i++ {
		buf.WriteByte(0)
	}

	r := nbt.NewReader(buf.Bytes())
	r.MaxDepth = 4
	_, _, err := r.ReadRoot()
	assert.ErrorIs(t, err, nbt.ErrTooDeep)

	_, _, err = nbt.Parse(buf.Bytes())
	assert.NoError(t, err)
}

func TestReadTag_ReportsConsumed(t *testing.T) {
	r := nbt.NewReader([]byte{0, 3, 'a', 'b', 'c', 0xff})
	tag, n, err := r.ReadTag(nbt.KindString)
	require.NoError(t, err)
	assert.Equal(t, nbt.String("abc"), tag)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, r.Offset())

	tag, n, err = r.ReadTag(nbt.KindByte)
	require.NoError(t, err)
	assert.Equal(t, nbt.Byte(-1), tag)
	assert.Equal(t, 1, n)
}

func TestReadTag_EndIsNotAPayload(t *testing.T) {
	_, _, err := nbt.NewReader([]byte{1}).ReadTag(nbt.KindEnd)
	var fe *nbt.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "TAG_Long_Array", nbt.KindLongArray.String())
	assert.Equal(t, "TAG_Unknown(42)", nbt.Kind(42).String())
	assert.False(t, nbt.Kind(13).Valid())
}
