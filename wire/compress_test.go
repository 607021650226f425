package wire

import "testing"

func TestZlibWrappedRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 64)
	if err := WriteZlibWrapped(w, func(w Writer) error { return WriteString(w, "the quick brown fox") }); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadZlibWrapped(r, ReadString)
	if err != nil {
		t.Fatal(err)
	}
	if got != "the quick brown fox" {
		t.Fatalf("got %q", got)
	}
}

func TestZstdWrappedRoundTripWithTrailingBytes(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 64)
	if err := WriteZstdWrapped(w, func(w Writer) error { return WriteLongString(w, "block payload data") }); err != nil {
		t.Fatal(err)
	}
	// simulate a sibling field following the zstd region in the same packet.
	w.data = append(w.data, 0x01, 0x02, 0x03)

	r := NewReader(ctx, w.Bytes())
	got, err := ReadZstdWrapped(r, ReadLongString)
	if err != nil {
		t.Fatal(err)
	}
	if got != "block payload data" {
		t.Fatalf("got %q", got)
	}
	rest := r.TakeAll()
	if len(rest) != 3 || rest[0] != 0x01 {
		t.Fatalf("expected trailing bytes preserved for the cursor, got % x", rest)
	}
}
