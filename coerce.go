// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

// This file implements spec §4.5's response coercion table: turning a
// generic *Frame response into the Go value a typed command method
// promises to its caller, surfacing server errors and shape mismatches as
// *Error rather than panicking or returning zero values silently.

// ToBytes coerces f to its byte payload. SimpleString and BulkString both
// qualify; Null yields (nil, false); SimpleError and BulkError surface as
// KindServerError; anything else is KindUnexpectedResponseType.
func ToBytes(f *Frame) ([]byte, bool, error) {
	switch f.Kind {
	case KindBulkString, KindSimpleString:
		return f.Str, true, nil
	case KindNull:
		return nil, false, nil
	case KindSimpleError, KindBulkError:
		return nil, false, serverError(string(f.Str))
	default:
		return nil, false, unexpectedResponseType("expected bulk or simple string, got " + f.Kind.String())
	}
}

// ToInt64 coerces f to an integer. Integer frames pass through directly;
// a BulkString/SimpleString holding a decimal integer (as some commands
// return, e.g. a Boolean-like OK count encoded as a bulk string by a
// RESP2 server) is not accepted here — callers that need that leniency
// should inspect f.Kind themselves.
func ToInt64(f *Frame) (int64, error) {
	switch f.Kind {
	case KindInteger:
		return f.Int, nil
	case KindSimpleError, KindBulkError:
		return 0, serverError(string(f.Str))
	default:
		return 0, unexpectedResponseType("expected integer, got " + f.Kind.String())
	}
}

// ToBool coerces f to a boolean. RESP3 Boolean frames pass through
// directly; for RESP2 compatibility, Integer 0/1 is also accepted, since
// servers speaking RESP2 encode booleans that way.
func ToBool(f *Frame) (bool, error) {
	switch f.Kind {
	case KindBoolean:
		return f.Bool, nil
	case KindInteger:
		return f.Int != 0, nil
	case KindSimpleError, KindBulkError:
		return false, serverError(string(f.Str))
	default:
		return false, unexpectedResponseType("expected boolean or integer, got " + f.Kind.String())
	}
}

// ToOK coerces f to the conventional "+OK" acknowledgement.
func ToOK(f *Frame) error {
	switch f.Kind {
	case KindSimpleString:
		if string(f.Str) != "OK" {
			return unexpectedResponseType("expected OK, got simple string " + string(f.Str))
		}
		return nil
	case KindSimpleError, KindBulkError:
		return serverError(string(f.Str))
	default:
		return unexpectedResponseType("expected simple string OK, got " + f.Kind.String())
	}
}

// ToBytesSlice coerces f to a slice of byte payloads, as returned by
// LRANGE, LPOP/RPOP with a count, and similar multi-value commands.
// Nested Null elements (RESP2 missing-element compatibility) become nil
// entries rather than being dropped, preserving the server's element count.
func ToBytesSlice(f *Frame) ([][]byte, error) {
	switch f.Kind {
	case KindNull:
		return nil, nil
	case KindArray, KindSet, KindPush:
		out := make([][]byte, len(f.Array))
		for i, child := range f.Array {
			b, ok, err := ToBytes(child)
			if err != nil {
				return nil, err
			}
			if ok {
				out[i] = b
			}
		}
		return out, nil
	case KindSimpleError, KindBulkError:
		return nil, serverError(string(f.Str))
	default:
		return nil, unexpectedResponseType("expected array, got " + f.Kind.String())
	}
}

// ToStringMap coerces f to a map keyed by each key's string payload, with
// the value frames returned uncoerced, as returned by
// commands like HELLO and other Map-shaped replies. A RESP2 server
// instead returns a flat Array of alternating key/value BulkStrings;
// ToStringMap accepts both shapes.
func ToStringMap(f *Frame) (map[string]*Frame, error) {
	switch f.Kind {
	case KindMap:
		out := make(map[string]*Frame, len(f.Map))
		for _, pair := range f.Map {
			key, _, err := ToBytes(pair.Key)
			if err != nil {
				return nil, err
			}
			out[string(key)] = pair.Value
		}
		return out, nil
	case KindArray:
		if len(f.Array)%2 != 0 {
			return nil, invalidFrame("flat map array has odd element count")
		}
		out := make(map[string]*Frame, len(f.Array)/2)
		for i := 0; i < len(f.Array); i += 2 {
			key, _, err := ToBytes(f.Array[i])
			if err != nil {
				return nil, err
			}
			out[string(key)] = f.Array[i+1]
		}
		return out, nil
	case KindSimpleError, KindBulkError:
		return nil, serverError(string(f.Str))
	default:
		return nil, unexpectedResponseType("expected map, got " + f.Kind.String())
	}
}
