package wire

import (
	"bytes"
	"testing"
)

func testCtx() Context {
	return Context{Direction: ToClient, ProtocolVersion: LatestProtocolVersion, SerFmt: 29}
}

func TestPrimitiveIntRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 32)
	if err := WriteU8(w, 0xAB); err != nil {
		t.Fatal(err)
	}
	if err := WriteU16(w, 0x1234); err != nil {
		t.Fatal(err)
	}
	if err := WriteU32(w, 0xDEADBEEF); err != nil {
		t.Fatal(err)
	}
	if err := WriteS64(w, -1); err != nil {
		t.Fatal(err)
	}

	want := []byte{0xAB, 0x12, 0x34, 0xDE, 0xAD, 0xBE, 0xEF}
	want = append(want, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("big-endian encoding mismatch: got % x want % x", w.Bytes(), want)
	}

	r := NewReader(ctx, w.Bytes())
	u8, err := ReadU8(r)
	if err != nil || u8 != 0xAB {
		t.Fatalf("ReadU8 = %v, %v", u8, err)
	}
	u16, err := ReadU16(r)
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadU16 = %v, %v", u16, err)
	}
	u32, err := ReadU32(r)
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %v, %v", u32, err)
	}
	s64, err := ReadS64(r)
	if err != nil || s64 != -1 {
		t.Fatalf("ReadS64 = %v, %v", s64, err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 64)
	if err := WriteString(w, "hello world"); err != nil {
		t.Fatal(err)
	}
	if err := WriteLongString(w, "a longer payload"); err != nil {
		t.Fatal(err)
	}
	if err := WriteWString(w, "héllo"); err != nil {
		t.Fatal(err)
	}

	r := NewReader(ctx, w.Bytes())
	s, err := ReadString(r)
	if err != nil || s != "hello world" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	ls, err := ReadLongString(r)
	if err != nil || ls != "a longer payload" {
		t.Fatalf("ReadLongString = %q, %v", ls, err)
	}
	ws, err := ReadWString(r)
	if err != nil || ws != "héllo" {
		t.Fatalf("ReadWString = %q, %v", ws, err)
	}
}

func TestReadWStringRejectsUnpairedSurrogate(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 8)
	if err := WriteU16(w, 1); err != nil {
		t.Fatal(err)
	}
	if err := WriteU16(w, 0xD800); err != nil { // high surrogate with no low surrogate following
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	if _, err := ReadWString(r); err == nil {
		t.Fatal("expected ReadWString to reject an unpaired surrogate")
	}
}

func TestReadTruncatedReturnsEof(t *testing.T) {
	ctx := testCtx()
	r := NewReader(ctx, []byte{0x00, 0x05, 'a', 'b'})
	if _, err := ReadString(r); err == nil {
		t.Fatal("expected error reading a String whose declared length exceeds remaining data")
	}
}

func TestBoolRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 2)
	WriteBool(w, true)
	WriteBool(w, false)
	r := NewReader(ctx, w.Bytes())
	v, err := ReadBool(r)
	if err != nil || v != true {
		t.Fatalf("ReadBool true = %v, %v", v, err)
	}
	v, err = ReadBool(r)
	if err != nil || v != false {
		t.Fatalf("ReadBool false = %v, %v", v, err)
	}
}

func TestBoolRejectsInvalidByte(t *testing.T) {
	ctx := testCtx()
	r := NewReader(ctx, []byte{0x02})
	if _, err := ReadBool(r); err == nil {
		t.Fatal("expected error decoding a non-0/1 bool byte")
	}
}

func TestBinaryDataRoundTrip(t *testing.T) {
	ctx := testCtx()
	data := []byte{1, 2, 3, 4, 5}
	w := NewBufWriter(ctx, 16)
	if err := WriteBinaryData16(w, data); err != nil {
		t.Fatal(err)
	}
	if err := WriteBinaryData32(w, data); err != nil {
		t.Fatal(err)
	}

	r := NewReader(ctx, w.Bytes())
	got, err := ReadBinaryData16(r)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("ReadBinaryData16 = %v, %v", got, err)
	}
	got, err = ReadBinaryData32(r)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("ReadBinaryData32 = %v, %v", got, err)
	}
}
