// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"bytes"
	"math"
	"strconv"
)

// Serialize encodes f into its wire representation. It never mutates f.
//
// Aggregate serialization recurses into children; depth is bounded only by
// available memory, matching spec §4.1.
func Serialize(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := serializeInto(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func serializeInto(buf *bytes.Buffer, f *Frame) error {
	switch f.Kind {
	case KindSimpleString:
		return writeLine(buf, '+', f.Str)
	case KindSimpleError:
		return writeLine(buf, '-', f.Str)
	case KindInteger:
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(f.Int, 10))
		buf.WriteString("\r\n")
		return nil
	case KindBulkString:
		return writeBulk(buf, '$', f.Str)
	case KindBulkError:
		return writeBulk(buf, '!', f.Str)
	case KindArray:
		return serializeAggregate(buf, '*', f.Array)
	case KindSet:
		return serializeAggregate(buf, '~', f.Array)
	case KindPush:
		return serializeAggregate(buf, '>', f.Array)
	case KindMap:
		buf.WriteByte('%')
		buf.WriteString(strconv.Itoa(len(f.Map)))
		buf.WriteString("\r\n")
		for _, pair := range f.Map {
			if err := serializeInto(buf, pair.Key); err != nil {
				return err
			}
			if err := serializeInto(buf, pair.Value); err != nil {
				return err
			}
		}
		return nil
	case KindNull:
		buf.WriteString("_\r\n")
		return nil
	case KindBoolean:
		if f.Bool {
			buf.WriteString("#t\r\n")
		} else {
			buf.WriteString("#f\r\n")
		}
		return nil
	case KindDouble:
		buf.WriteByte(',')
		buf.WriteString(formatDouble(f.Dbl))
		buf.WriteString("\r\n")
		return nil
	case KindBigNumber:
		buf.WriteByte('(')
		if f.Big.Negative {
			buf.WriteByte('-')
		}
		buf.WriteString(f.Big.Digits)
		buf.WriteString("\r\n")
		return nil
	case KindVerbatimString:
		buf.WriteByte('=')
		buf.WriteString(strconv.Itoa(len(f.Str) + 4))
		buf.WriteString("\r\n")
		buf.Write(f.VerbatimEncoding[:])
		buf.WriteByte(':')
		buf.Write(f.Str)
		buf.WriteString("\r\n")
		return nil
	default:
		return invalidFrame("cannot serialize unknown frame kind " + f.Kind.String())
	}
}

// writeLine emits a CRLF-terminated line frame (SimpleString/SimpleError).
// It is an error for payload to contain CR or LF (spec §3.1 invariant).
func writeLine(buf *bytes.Buffer, tag byte, payload []byte) error {
	for _, b := range payload {
		if b == '\r' || b == '\n' {
			return invalidFrame("simple string/error payload must not contain CR or LF")
		}
	}
	buf.WriteByte(tag)
	buf.Write(payload)
	buf.WriteString("\r\n")
	return nil
}

func writeBulk(buf *bytes.Buffer, tag byte, payload []byte) error {
	buf.WriteByte(tag)
	buf.WriteString(strconv.Itoa(len(payload)))
	buf.WriteString("\r\n")
	buf.Write(payload)
	buf.WriteString("\r\n")
	return nil
}

func serializeAggregate(buf *bytes.Buffer, tag byte, children []*Frame) error {
	buf.WriteByte(tag)
	buf.WriteString(strconv.Itoa(len(children)))
	buf.WriteString("\r\n")
	for _, child := range children {
		if err := serializeInto(buf, child); err != nil {
			return err
		}
	}
	return nil
}

// formatDouble renders d the way RESP3 expects: "nan", "inf", "-inf", or the
// shortest round-trippable decimal form for finite values.
func formatDouble(d float64) string {
	switch {
	case math.IsNaN(d):
		return "nan"
	case math.IsInf(d, 1):
		return "inf"
	case math.IsInf(d, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(d, 'g', -1, 64)
	}
}
