package nbt

import "fmt"

type Kind byte

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

var kindNames = [...]string{
	KindEnd:       "TAG_End",
	KindByte:      "TAG_Byte",
	KindShort:     "TAG_Short",
	KindInt:       "TAG_Int",
	KindLong:      "TAG_Long",
	KindFloat:     "TAG_Float",
	KindDouble:    "TAG_Double",
	KindByteArray: "TAG_Byte_Array",
	KindString:    "TAG_String",
	KindList:      "TAG_List",
	KindCompound:  "TAG_Compound",
	KindIntArray:  "TAG_Int_Array",
	KindLongArray: "TAG_Long_Array",
}

func (k Kind) Valid() bool {
	return k <= KindLongArray
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("TAG_Unknown(%d)", byte(k))
}

// Tag is one node of a decoded tree. The concrete type determines the kind.
type Tag interface {
	Kind() Kind
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []byte
	IntArray  []int32
	LongArray []int64
)

func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (String) Kind() Kind    { return KindString }
func (ByteArray) Kind() Kind { return KindByteArray }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

// List is a homogeneous sequence. Every item has kind Elem.
type List struct {
	Elem  Kind
	Items []Tag
}

func (*List) Kind() Kind { return KindList }

func (l *List) Len() int {
	return len(l.Items)
}

// Compound is a named mapping that remembers insertion order.
type Compound struct {
	names  []string
	values map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{values: make(map[string]Tag)}
}

func (*Compound) Kind() Kind { return KindCompound }

func (c *Compound) Len() int {
	return len(c.names)
}

func (c *Compound) Get(name string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	tag, ok := c.values[name]
	return tag, ok
}

// Names returns the keys in the order they were first set.
func (c *Compound) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Set adds or replaces a value. Replacing keeps the original position.
func (c *Compound) Set(name string, tag Tag) {
	if c.values == nil {
		c.values = make(map[string]Tag)
	}
	if _, exists := c.values[name]; !exists {
		c.names = append(c.names, name)
	}
	c.values[name] = tag
}

func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Compound returns the named child if it is a compound.
func (c *Compound) Compound(name string) (*Compound, bool) {
	tag, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	child, ok := tag.(*Compound)
	return child, ok
}
