// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"errors"
	"testing"
)

func TestToBytes(t *testing.T) {
	b, ok, err := ToBytes(NewBulkStringFrom("hello"))
	if err != nil || !ok || string(b) != "hello" {
		t.Errorf("ToBytes(bulk) = %q, %v, %v", b, ok, err)
	}

	b, ok, err = ToBytes(NewNull())
	if err != nil || ok || b != nil {
		t.Errorf("ToBytes(null) = %q, %v, %v, want nil, false, nil", b, ok, err)
	}

	_, _, err = ToBytes(NewSimpleError("ERR oops"))
	assertKind(t, err, KindServerError)

	_, _, err = ToBytes(NewInteger(1))
	assertKind(t, err, KindUnexpectedResponseType)
}

func TestToInt64(t *testing.T) {
	n, err := ToInt64(NewInteger(42))
	if err != nil || n != 42 {
		t.Errorf("ToInt64 = %d, %v", n, err)
	}

	_, err = ToInt64(NewBulkError([]byte("ERR oops")))
	assertKind(t, err, KindServerError)

	_, err = ToInt64(NewSimpleString("OK"))
	assertKind(t, err, KindUnexpectedResponseType)
}

func TestToBool(t *testing.T) {
	ok, err := ToBool(NewBoolean(true))
	if err != nil || !ok {
		t.Errorf("ToBool(boolean) = %v, %v", ok, err)
	}

	ok, err = ToBool(NewInteger(1))
	if err != nil || !ok {
		t.Errorf("ToBool(integer 1) = %v, %v", ok, err)
	}

	ok, err = ToBool(NewInteger(0))
	if err != nil || ok {
		t.Errorf("ToBool(integer 0) = %v, %v", ok, err)
	}

	_, err = ToBool(NewBulkStringFrom("nope"))
	assertKind(t, err, KindUnexpectedResponseType)
}

func TestToOK(t *testing.T) {
	if err := ToOK(NewSimpleString("OK")); err != nil {
		t.Errorf("ToOK(OK) = %v", err)
	}
	err := ToOK(NewSimpleString("NOTOK"))
	assertKind(t, err, KindUnexpectedResponseType)

	err = ToOK(NewSimpleError("ERR oops"))
	assertKind(t, err, KindServerError)
}

func TestToBytesSlice(t *testing.T) {
	f := NewArray(NewBulkStringFrom("a"), NewNull(), NewBulkStringFrom("c"))
	got, err := ToBytesSlice(f)
	if err != nil {
		t.Fatalf("ToBytesSlice: %v", err)
	}
	if len(got) != 3 || string(got[0]) != "a" || got[1] != nil || string(got[2]) != "c" {
		t.Errorf("got %v", got)
	}

	nilResult, err := ToBytesSlice(NewNull())
	if err != nil || nilResult != nil {
		t.Errorf("ToBytesSlice(null) = %v, %v", nilResult, err)
	}

	_, err = ToBytesSlice(NewInteger(1))
	assertKind(t, err, KindUnexpectedResponseType)
}

func TestToStringMap(t *testing.T) {
	mapFrame := NewMap(MapEntry{Key: NewBulkStringFrom("server"), Value: NewBulkStringFrom("redis")})
	got, err := ToStringMap(mapFrame)
	if err != nil {
		t.Fatalf("ToStringMap(map): %v", err)
	}
	if v, ok := got["server"]; !ok || !v.Equal(NewBulkStringFrom("redis")) {
		t.Errorf("got %v", got)
	}

	flat := NewArray(NewBulkStringFrom("server"), NewBulkStringFrom("redis"))
	got, err = ToStringMap(flat)
	if err != nil {
		t.Fatalf("ToStringMap(flat array): %v", err)
	}
	if v, ok := got["server"]; !ok || !v.Equal(NewBulkStringFrom("redis")) {
		t.Errorf("got %v", got)
	}

	oddFlat := NewArray(NewBulkStringFrom("server"))
	_, err = ToStringMap(oddFlat)
	assertKind(t, err, KindInvalidFrame)

	_, err = ToStringMap(NewInteger(1))
	assertKind(t, err, KindUnexpectedResponseType)
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var respErr *Error
	if !errors.As(err, &respErr) || respErr.Kind != kind {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
}
