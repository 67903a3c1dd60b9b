// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"errors"
	"math"
	"testing"
)

func TestSerializeBasics(t *testing.T) {
	tests := []struct {
		name string
		in   *Frame
		want string
	}{
		{"simple string", NewSimpleString("OK"), "+OK\r\n"},
		{"simple error", NewSimpleError("ERR bad"), "-ERR bad\r\n"},
		{"integer", NewInteger(1000), ":1000\r\n"},
		{"negative integer", NewInteger(-1), ":-1\r\n"},
		{"bulk string", NewBulkStringFrom("hello"), "$5\r\nhello\r\n"},
		{"empty bulk string", NewBulkStringFrom(""), "$0\r\n\r\n"},
		{"null", NewNull(), "_\r\n"},
		{"boolean true", NewBoolean(true), "#t\r\n"},
		{"boolean false", NewBoolean(false), "#f\r\n"},
		{"double", NewDouble(3.14), ",3.14\r\n"},
		{"double nan", NewDouble(math.NaN()), ",nan\r\n"},
		{"double inf", NewDouble(math.Inf(1)), ",inf\r\n"},
		{"double neg inf", NewDouble(math.Inf(-1)), ",-inf\r\n"},
		{"big number", NewBigNumber(false, "3492890328409238509324850943850943825024385"), "(3492890328409238509324850943850943825024385\r\n"},
		{"negative big number", NewBigNumber(true, "123"), "(-123\r\n"},
		{"bulk error", NewBulkError([]byte("SYNTAX invalid syntax")), "!21\r\nSYNTAX invalid syntax\r\n"},
		{"verbatim string", NewVerbatimString("txt", []byte("Some string")), "=15\r\ntxt:Some string\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.in)
			if err != nil {
				t.Fatalf("Serialize error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeArray(t *testing.T) {
	f := NewArray(NewBulkStringFrom("foo"), NewInteger(1))
	got, err := Serialize(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "*2\r\n$3\r\nfoo\r\n:1\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeMap(t *testing.T) {
	f := NewMap(MapEntry{Key: NewSimpleString("key"), Value: NewSimpleString("value")})
	got, err := Serialize(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "%1\r\n+key\r\n+value\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeRejectsEmbeddedCRLF(t *testing.T) {
	tests := []*Frame{
		NewSimpleString("bad\r\nstring"),
		NewSimpleError("bad\nstring"),
	}
	for _, f := range tests {
		_, err := Serialize(f)
		if err == nil {
			t.Fatalf("Serialize(%+v) succeeded, want error", f)
		}
		var respErr *Error
		if !errors.As(err, &respErr) || respErr.Kind != KindInvalidFrame {
			t.Errorf("error = %v, want InvalidFrame", err)
		}
	}
}

func TestSerializeUnknownKind(t *testing.T) {
	f := &Frame{Kind: Kind(255)}
	_, err := Serialize(f)
	if err == nil {
		t.Fatal("Serialize of unknown kind succeeded, want error")
	}
}
