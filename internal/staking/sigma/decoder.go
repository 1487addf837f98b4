// Package sigma decodes the subset of Ergo's typed register serialization
// needed to read staking boxes: numeric primitives, byte collections and
// single-level numeric collections.
package sigma

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedType is returned for type codes outside the supported subset.
	ErrUnsupportedType = errors.New("unsupported sigma type")
	// ErrTruncated is returned when the payload ends before the value does.
	ErrTruncated = errors.New("truncated sigma value")
	// ErrIndexOutOfRange is returned by Index for a position past the collection end.
	ErrIndexOutOfRange = errors.New("collection index out of range")
)

// TypeCode is the leading type byte of a serialized value.
type TypeCode byte

const (
	TypeByte  TypeCode = 0x02
	TypeShort TypeCode = 0x03
	TypeInt   TypeCode = 0x04
	TypeLong  TypeCode = 0x05

	collOffset TypeCode = 0x0c

	TypeCollByte  = collOffset + TypeByte
	TypeCollShort = collOffset + TypeShort
	TypeCollInt   = collOffset + TypeInt
	TypeCollLong  = collOffset + TypeLong
)

func (t TypeCode) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInt:
		return "Int"
	case TypeLong:
		return "Long"
	case TypeCollByte:
		return "Coll[Byte]"
	case TypeCollShort:
		return "Coll[Short]"
	case TypeCollInt:
		return "Coll[Int]"
	case TypeCollLong:
		return "Coll[Long]"
	default:
		return fmt.Sprintf("0x%02x", byte(t))
	}
}

// Value is a decoded register value.
type Value struct {
	Type  TypeCode
	num   int64
	bytes []byte
	items []int64
}

// Int64 returns a numeric primitive.
func (v Value) Int64() (int64, error) {
	switch v.Type {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return v.num, nil
	default:
		return 0, fmt.Errorf("%s is not numeric", v.Type)
	}
}

// Bytes returns the payload of a Coll[Byte].
func (v Value) Bytes() ([]byte, error) {
	if v.Type != TypeCollByte {
		return nil, fmt.Errorf("%s is not Coll[Byte]", v.Type)
	}
	return v.bytes, nil
}

// Len returns the number of elements of a collection.
func (v Value) Len() int {
	switch v.Type {
	case TypeCollByte:
		return len(v.bytes)
	case TypeCollShort, TypeCollInt, TypeCollLong:
		return len(v.items)
	default:
		return 0
	}
}

// Index returns the i-th element of a collection as a primitive value.
func (v Value) Index(i int) (Value, error) {
	if i < 0 || i >= v.Len() {
		if v.Type < TypeCollByte || v.Type > TypeCollLong {
			return Value{}, fmt.Errorf("%s is not a collection", v.Type)
		}
		return Value{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, v.Len())
	}
	elem := v.Type - collOffset
	if v.Type == TypeCollByte {
		return Value{Type: elem, num: int64(int8(v.bytes[i]))}, nil
	}
	return Value{Type: elem, num: v.items[i]}, nil
}

// DecodeHex decodes a hex-encoded register value.
func DecodeHex(s string) (Value, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Value{}, fmt.Errorf("decode register hex: %w", err)
	}
	return Decode(raw)
}

// Decode decodes a serialized register value. Trailing bytes are rejected.
func Decode(raw []byte) (Value, error) {
	r := reader{buf: raw}
	code, err := r.byte()
	if err != nil {
		return Value{}, err
	}

	v := Value{Type: TypeCode(code)}
	switch v.Type {
	case TypeByte:
		b, err := r.byte()
		if err != nil {
			return Value{}, err
		}
		v.num = int64(int8(b))
	case TypeShort, TypeInt, TypeLong:
		if v.num, err = r.number(v.Type); err != nil {
			return Value{}, err
		}
	case TypeCollByte:
		n, err := r.length()
		if err != nil {
			return Value{}, err
		}
		if v.bytes, err = r.take(n); err != nil {
			return Value{}, err
		}
	case TypeCollShort, TypeCollInt, TypeCollLong:
		n, err := r.length()
		if err != nil {
			return Value{}, err
		}
		v.items = make([]int64, 0, min(n, len(raw)))
		for i := 0; i < n; i++ {
			item, err := r.number(v.Type - collOffset)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			v.items = append(v.items, item)
		}
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type)
	}

	if r.remaining() != 0 {
		return Value{}, fmt.Errorf("%d trailing bytes after %s", r.remaining(), v.Type)
	}
	return v, nil
}

type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) byte() (byte, error) {
	if r.remaining() < 1 {
		return 0, ErrTruncated
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, r.remaining())
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	switch {
	case n == 0:
		return 0, ErrTruncated
	case n < 0:
		return 0, errors.New("varint overflows 64 bits")
	}
	r.pos += n
	return v, nil
}

// length reads a collection length (VLQ encoded unsigned short).
func (r *reader) length() (int, error) {
	n, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint16 {
		return 0, fmt.Errorf("collection length %d exceeds %d", n, math.MaxUint16)
	}
	return int(n), nil
}

// number reads a zig-zag VLQ integer and checks it fits the declared width.
func (r *reader) number(t TypeCode) (int64, error) {
	u, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	v := int64(u>>1) ^ -int64(u&1)

	var lo, hi int64
	switch t {
	case TypeShort:
		lo, hi = math.MinInt16, math.MaxInt16
	case TypeInt:
		lo, hi = math.MinInt32, math.MaxInt32
	default:
		return v, nil
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("value %d overflows %s", v, t)
	}
	return v, nil
}
