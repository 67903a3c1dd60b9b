// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"errors"
	"math"
	"testing"
)

func TestParseFrameBasics(t *testing.T) {
	tests := []struct {
		name     string
		wire     string
		consumed int
		want     *Frame
	}{
		{"simple string", "+OK\r\n", 5, NewSimpleString("OK")},
		{"simple error", "-ERR bad\r\n", 10, NewSimpleError("ERR bad")},
		{"integer", ":1000\r\n", 7, NewInteger(1000)},
		{"negative integer", ":-1\r\n", 5, NewInteger(-1)},
		{"bulk string", "$5\r\nhello\r\n", 11, NewBulkStringFrom("hello")},
		{"empty bulk string", "$0\r\n\r\n", 6, NewBulkStringFrom("")},
		{"bulk string legacy null", "$-1\r\n", 5, NewNull()},
		{"array legacy null", "*-1\r\n", 5, NewNull()},
		{"resp3 null", "_\r\n", 3, NewNull()},
		{"boolean true", "#t\r\n", 4, NewBoolean(true)},
		{"boolean false", "#f\r\n", 4, NewBoolean(false)},
		{"double", ",3.14\r\n", 7, NewDouble(3.14)},
		{"double nan", ",nan\r\n", 6, NewDouble(math.NaN())},
		{"double inf", ",inf\r\n", 6, NewDouble(math.Inf(1))},
		{"big number", "(3492890328409238509324850943850943825024385\r\n", 46, NewBigNumber(false, "3492890328409238509324850943850943825024385")},
		{"bulk error", "!21\r\nSYNTAX invalid syntax\r\n", 28, NewBulkError([]byte("SYNTAX invalid syntax"))},
		{"verbatim string", "=15\r\ntxt:Some string\r\n", 22, NewVerbatimString("txt", []byte("Some string"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := ParseFrame([]byte(tt.wire))
			if err != nil {
				t.Fatalf("ParseFrame(%q) error = %v", tt.wire, err)
			}
			if n != tt.consumed {
				t.Errorf("consumed = %d, want %d", n, tt.consumed)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFrameArray(t *testing.T) {
	wire := "*2\r\n$3\r\nfoo\r\n:1\r\n"
	got, n, err := ParseFrame([]byte(wire))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(wire) {
		t.Errorf("consumed = %d, want %d", n, len(wire))
	}
	want := NewArray(NewBulkStringFrom("foo"), NewInteger(1))
	if !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseFrameNestedAggregate(t *testing.T) {
	wire := "*1\r\n*1\r\n+ok\r\n"
	got, _, err := ParseFrame([]byte(wire))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewArray(NewArray(NewSimpleString("ok")))
	if !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseFrameMap(t *testing.T) {
	wire := "%1\r\n+key\r\n+value\r\n"
	got, _, err := ParseFrame([]byte(wire))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewMap(MapEntry{Key: NewSimpleString("key"), Value: NewSimpleString("value")})
	if !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseFrameIncomplete(t *testing.T) {
	tests := []string{
		"",
		"+OK",
		"+OK\r",
		"$5\r\nhel",
		"*2\r\n$3\r\nfoo\r\n",
		"=15\r\ntxt:Some str",
	}
	for _, wire := range tests {
		_, _, err := ParseFrame([]byte(wire))
		if !errors.Is(err, errIncomplete) {
			t.Errorf("ParseFrame(%q) error = %v, want errIncomplete", wire, err)
		}
	}
}

func TestParseFrameInvalid(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{"unrecognized tag", "@nope\r\n"},
		{"malformed integer", ":abc\r\n"},
		{"negative bulk length other than -1", "$-2\r\n"},
		{"bulk string missing terminator", "$3\r\nabcXX"},
		{"embedded bare LF in simple string", "+o\nk\r\n"},
		{"embedded CR in simple string", "+o\rk\r\n"},
		{"verbatim too short", "=3\r\ntxt\r\n"},
		{"verbatim missing colon", "=15\r\ntxtXSome string\r\n"},
		{"malformed big number", "(12a3\r\n"},
		{"malformed boolean", "#x\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFrame([]byte(tt.wire))
			var respErr *Error
			if !errors.As(err, &respErr) || respErr.Kind != KindInvalidFrame {
				t.Fatalf("ParseFrame(%q) error = %v, want InvalidFrame", tt.wire, err)
			}
		})
	}
}

func TestParseFrameRoundTrip(t *testing.T) {
	frames := []*Frame{
		NewSimpleString("OK"),
		NewInteger(42),
		NewBulkStringFrom("hello world"),
		NewArray(NewBulkStringFrom("a"), NewBulkStringFrom("b")),
		NewNull(),
		NewBoolean(true),
		NewDouble(2.5),
		NewBigNumber(true, "123456789"),
		NewVerbatimString("mkd", []byte("# hi")),
		NewMap(MapEntry{Key: NewBulkStringFrom("k"), Value: NewInteger(1)}),
		NewSet(NewBulkStringFrom("x")),
		NewPush(NewBulkStringFrom("message"), NewBulkStringFrom("chan"), NewBulkStringFrom("hi")),
	}
	for _, f := range frames {
		encoded, err := Serialize(f)
		if err != nil {
			t.Fatalf("Serialize(%v) error = %v", f, err)
		}
		decoded, n, err := ParseFrame(encoded)
		if err != nil {
			t.Fatalf("ParseFrame(%q) error = %v", encoded, err)
		}
		if n != len(encoded) {
			t.Errorf("consumed = %d, want %d", n, len(encoded))
		}
		if !decoded.Equal(f) {
			t.Errorf("round-trip mismatch: got %+v, want %+v", decoded, f)
		}
	}
}

func TestParseFramePrefixStability(t *testing.T) {
	wire := []byte("$5\r\nhello\r\n")
	for i := 0; i < len(wire); i++ {
		_, _, err := ParseFrame(wire[:i])
		if !errors.Is(err, errIncomplete) {
			t.Errorf("prefix length %d: error = %v, want errIncomplete", i, err)
		}
	}
	_, n, err := ParseFrame(wire)
	if err != nil || n != len(wire) {
		t.Fatalf("full wire: n=%d err=%v", n, err)
	}
}

func TestParseFrameConcatenation(t *testing.T) {
	wire := "+one\r\n+two\r\n"
	first, n1, err := ParseFrame([]byte(wire))
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	second, n2, err := ParseFrame([]byte(wire[n1:]))
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if !first.Equal(NewSimpleString("one")) || !second.Equal(NewSimpleString("two")) {
		t.Errorf("got %+v and %+v", first, second)
	}
	if n1+n2 != len(wire) {
		t.Errorf("consumed %d+%d, want %d", n1, n2, len(wire))
	}
}
