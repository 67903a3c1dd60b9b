// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package respkit implements a RESP2/RESP3 frame codec and a framed
// connection on top of it.
//
// Semantics and design:
//   - Frame is a closed sum type over the fourteen RESP value kinds. It is
//     built either by the application (outbound requests) or by the parser
//     (inbound responses); once built it is only ever read or re-serialized.
//   - The codec (this file, parse.go, serialize.go) is pure: no I/O, no
//     suspension points. Connection (connection.go) is the only piece that
//     touches a byte stream.
//   - RESP2 compatibility: the parser accepts the legacy null sentinels
//     ($-1\r\n and *-1\r\n) in addition to RESP3's _\r\n. The serializer
//     always emits the RESP3 form.
//
// Wire format: see https://redis.io/docs/latest/develop/reference/protocol-spec/
package respkit

import "math"

// Kind discriminates the fourteen RESP frame variants.
type Kind uint8

const (
	KindSimpleString Kind = iota
	KindSimpleError
	KindInteger
	KindBulkString
	KindArray
	KindNull
	KindBoolean
	KindDouble
	KindBigNumber
	KindBulkError
	KindVerbatimString
	KindMap
	KindSet
	KindPush
)

func (k Kind) String() string {
	switch k {
	case KindSimpleString:
		return "SimpleString"
	case KindSimpleError:
		return "SimpleError"
	case KindInteger:
		return "Integer"
	case KindBulkString:
		return "BulkString"
	case KindArray:
		return "Array"
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindDouble:
		return "Double"
	case KindBigNumber:
		return "BigNumber"
	case KindBulkError:
		return "BulkError"
	case KindVerbatimString:
		return "VerbatimString"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	case KindPush:
		return "Push"
	default:
		return "Unknown"
	}
}

// BigNumber is an arbitrary-precision integer: a sign and a run of ASCII
// decimal digits. Digits never carries a leading sign character.
type BigNumber struct {
	Negative bool
	Digits   string
}

// MapEntry is one key/value pair of a Map frame. Both Key and Value may be
// any Frame kind, including nested aggregates.
type MapEntry struct {
	Key   *Frame
	Value *Frame
}

// Frame is one self-delimited RESP value, possibly recursive.
//
// Only the fields relevant to Kind are meaningful; the zero value of the
// others is ignored. Construct frames with the New* helpers rather than
// struct literals so Kind and payload stay consistent.
type Frame struct {
	Kind Kind

	Str  []byte // SimpleString, SimpleError, BulkString, BulkError payload
	Int  int64  // Integer
	Dbl  float64
	Bool bool
	Big  BigNumber

	VerbatimEncoding [3]byte // VerbatimString 3-byte encoding tag (e.g. "txt", "mkd")

	Array []*Frame   // Array, Set, Push children, in wire order
	Map   []MapEntry // Map pairs, in wire order
}

// NewSimpleString returns a SimpleString frame.
func NewSimpleString(s string) *Frame { return &Frame{Kind: KindSimpleString, Str: []byte(s)} }

// NewSimpleError returns a SimpleError frame.
func NewSimpleError(s string) *Frame { return &Frame{Kind: KindSimpleError, Str: []byte(s)} }

// NewInteger returns an Integer frame.
func NewInteger(n int64) *Frame { return &Frame{Kind: KindInteger, Int: n} }

// NewBulkString returns a BulkString frame. b is not copied.
func NewBulkString(b []byte) *Frame { return &Frame{Kind: KindBulkString, Str: b} }

// NewBulkStringFrom returns a BulkString frame wrapping the bytes of s.
func NewBulkStringFrom(s string) *Frame { return &Frame{Kind: KindBulkString, Str: []byte(s)} }

// NewBulkError returns a BulkError frame. b is not copied.
func NewBulkError(b []byte) *Frame { return &Frame{Kind: KindBulkError, Str: b} }

// NewNull returns a Null frame.
func NewNull() *Frame { return &Frame{Kind: KindNull} }

// NewBoolean returns a Boolean frame.
func NewBoolean(b bool) *Frame { return &Frame{Kind: KindBoolean, Bool: b} }

// NewDouble returns a Double frame. NaN, +Inf and -Inf are all legal.
func NewDouble(d float64) *Frame { return &Frame{Kind: KindDouble, Dbl: d} }

// NewBigNumber returns a BigNumber frame.
func NewBigNumber(negative bool, digits string) *Frame {
	return &Frame{Kind: KindBigNumber, Big: BigNumber{Negative: negative, Digits: digits}}
}

// NewVerbatimString returns a VerbatimString frame. enc must be exactly 3 bytes.
func NewVerbatimString(enc string, b []byte) *Frame {
	f := &Frame{Kind: KindVerbatimString, Str: b}
	copy(f.VerbatimEncoding[:], enc)
	return f
}

// NewArray returns an Array frame containing children, in order.
func NewArray(children ...*Frame) *Frame { return &Frame{Kind: KindArray, Array: children} }

// NewSet returns a Set frame containing children, in order (ordered at the
// wire level; RESP does not require set elements to be unique or sorted).
func NewSet(children ...*Frame) *Frame { return &Frame{Kind: KindSet, Array: children} }

// NewPush returns a Push frame (server-initiated out-of-band message).
func NewPush(children ...*Frame) *Frame { return &Frame{Kind: KindPush, Array: children} }

// NewMap returns a Map frame containing pairs, in order.
func NewMap(pairs ...MapEntry) *Frame { return &Frame{Kind: KindMap, Map: pairs} }

// Push appends child to an Array, Set, or Push frame. It returns an
// *Error{Kind: KindUnknown} if f is not one of those kinds — pushing into
// the wrong kind of frame is a programmer error, not a runtime condition.
func (f *Frame) Push(child *Frame) error {
	switch f.Kind {
	case KindArray, KindSet, KindPush:
		f.Array = append(f.Array, child)
		return nil
	default:
		return &Error{Kind: KindUnknown, Message: "respkit: Push called on non-aggregate frame " + f.Kind.String()}
	}
}

// PutMap appends a key/value pair to a Map frame.
func (f *Frame) PutMap(key, value *Frame) error {
	if f.Kind != KindMap {
		return &Error{Kind: KindUnknown, Message: "respkit: PutMap called on non-Map frame " + f.Kind.String()}
	}
	f.Map = append(f.Map, MapEntry{Key: key, Value: value})
	return nil
}

// Equal reports whether f and other are structurally equal. NaN Double
// values compare equal to any other NaN Double value, per spec.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Kind != other.Kind {
		return false
	}
	switch f.Kind {
	case KindSimpleString, KindSimpleError, KindBulkString, KindBulkError:
		return bytesEqual(f.Str, other.Str)
	case KindVerbatimString:
		return f.VerbatimEncoding == other.VerbatimEncoding && bytesEqual(f.Str, other.Str)
	case KindInteger:
		return f.Int == other.Int
	case KindNull:
		return true
	case KindBoolean:
		return f.Bool == other.Bool
	case KindDouble:
		if math.IsNaN(f.Dbl) || math.IsNaN(other.Dbl) {
			return math.IsNaN(f.Dbl) && math.IsNaN(other.Dbl)
		}
		return f.Dbl == other.Dbl
	case KindBigNumber:
		return f.Big == other.Big
	case KindArray, KindSet, KindPush:
		if len(f.Array) != len(other.Array) {
			return false
		}
		for i := range f.Array {
			if !f.Array[i].Equal(other.Array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(f.Map) != len(other.Map) {
			return false
		}
		for i := range f.Map {
			if !f.Map[i].Key.Equal(other.Map[i].Key) || !f.Map[i].Value.Equal(other.Map[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
