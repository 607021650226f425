package wire

import "testing"

func TestV3FRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 12)
	v := V3F{X: 1.5, Y: -2.25, Z: 100}
	if err := WriteV3F(w, v); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadV3F(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("got %+v want %+v", got, v)
	}
}

func TestV3FAsV3S32Truncates(t *testing.T) {
	v := V3F{X: 1.9, Y: -1.9, Z: 0.5}
	got := v.AsV3S32()
	want := V3S32{X: 1, Y: -1, Z: 0}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestV3S16RoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 6)
	v := V3S16{X: -32768, Y: 32767, Z: 0}
	if err := WriteV3S16(w, v); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadV3S16(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("got %+v want %+v", got, v)
	}
}

func TestSColorPackingRoundTrip(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 4)
	c := SColor{A: 0xFF, R: 0x12, G: 0x34, B: 0x56}
	if err := WriteSColor(w, c); err != nil {
		t.Fatal(err)
	}
	if w.Bytes()[0] != 0xFF || w.Bytes()[1] != 0x12 || w.Bytes()[2] != 0x34 || w.Bytes()[3] != 0x56 {
		t.Fatalf("packed order mismatch: % x", w.Bytes())
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadSColor(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Fatalf("got %+v want %+v", got, c)
	}
}
