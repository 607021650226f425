package wire

import (
	"bytes"
	"testing"
)

func TestPlayerPosFixedPointRoundTrip(t *testing.T) {
	ctx := testCtx()
	in := PlayerPos{
		Position:    V3F{X: 10, Y: -5.5, Z: 3},
		Speed:       V3F{X: 1, Y: 0, Z: -1},
		Pitch:       45.5,
		Yaw:         -90.25,
		KeysPressed: 0b101,
		Fov:         1.5,
		WantedRange: 5,
	}
	w := NewBufWriter(ctx, 64)
	if err := WritePlayerPos(w, in); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadPlayerPos(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Position != in.Position || got.Speed != in.Speed {
		t.Fatalf("position/speed mismatch: got %+v want %+v", got, in)
	}
	if got.Pitch != in.Pitch || got.Yaw != in.Yaw {
		t.Fatalf("pitch/yaw mismatch: got %+v want %+v", got, in)
	}
	if got.KeysPressed != in.KeysPressed || got.WantedRange != in.WantedRange {
		t.Fatalf("keys/range mismatch: got %+v want %+v", got, in)
	}
	if got.Fov != in.Fov {
		t.Fatalf("fov mismatch: got %v want %v", got.Fov, in.Fov)
	}
}

func TestHudFlagsBitPacking(t *testing.T) {
	ctx := testCtx()
	in := HudFlags{HealthbarVisible: true, MinimapVisible: true, ChatVisible: true}
	w := NewBufWriter(ctx, 4)
	if err := WriteHudFlags(w, in); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadHudFlags(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("got %+v want %+v", got, in)
	}
}

func TestReadHudFlagsRejectsInvalidBits(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 4)
	WriteU32(w, 1<<20)
	r := NewReader(ctx, w.Bytes())
	if _, err := ReadHudFlags(r); err == nil {
		t.Fatal("expected error for a HudFlags value with bits above bit 8 set")
	}
}

func TestHudSetParamHotBarItemCountRoundTrip(t *testing.T) {
	ctx := testCtx()
	in := HudSetParam{Kind: HudSetHotBarItemCount, ItemCount: 9}
	w := NewBufWriter(ctx, 16)
	if err := WriteHudSetParamValue(w, in); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadHudSetParamValue(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("got %+v want %+v", got, in)
	}
}

func TestHudStatFieldCapturesRestOfPacket(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 16)
	stat := HudStat{Tag: 2, Value: []byte{1, 2, 3, 4}}
	if err := WriteHudStatField(w, stat); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadHudStatField(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Tag != stat.Tag || !bytes.Equal(got.Value, stat.Value) {
		t.Fatalf("got %+v want %+v", got, stat)
	}
}
