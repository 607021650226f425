package wire

import (
	"bytes"
	"testing"

	kzlib "github.com/klauspost/compress/zlib"
)

func TestMapBlockRoundTripSerFmt29(t *testing.T) {
	ctx := testCtx() // SerFmt: 29
	block := MapBlock{Raw: []byte("header+nodes+metadata, all opaque")}

	w := NewBufWriter(ctx, 128)
	if err := WriteMapBlock(w, block); err != nil {
		t.Fatal(err)
	}

	r := NewReader(ctx, w.Bytes())
	got, err := ReadMapBlock(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Raw, block.Raw) {
		t.Fatalf("got %q want %q", got.Raw, block.Raw)
	}
}

func TestBlockdataRoundTripCarriesTrailingByte(t *testing.T) {
	ctx := testCtx()
	spec := &BlockdataSpec{
		Pos:                    V3S16{X: 1, Y: -2, Z: 3},
		Block:                  MapBlock{Raw: []byte("nodes-and-metadata")},
		NetworkSpecificVersion: 42,
	}

	w := NewBufWriter(ctx, 256)
	if err := encodeBlockdata(w, spec); err != nil {
		t.Fatal(err)
	}

	r := NewReader(ctx, w.Bytes())
	decoded, err := decodeBlockdata(r)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := decoded.(*BlockdataSpec)
	if !ok {
		t.Fatalf("decodeBlockdata returned %T, want *BlockdataSpec", decoded)
	}
	if got.Pos != spec.Pos {
		t.Fatalf("got Pos %+v want %+v", got.Pos, spec.Pos)
	}
	if !bytes.Equal(got.Block.Raw, spec.Block.Raw) {
		t.Fatalf("got Block %q want %q", got.Block.Raw, spec.Block.Raw)
	}
	if got.NetworkSpecificVersion != spec.NetworkSpecificVersion {
		t.Fatalf("got NetworkSpecificVersion %d want %d", got.NetworkSpecificVersion, spec.NetworkSpecificVersion)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected the reader to be fully drained, %d bytes left", r.Remaining())
	}
}

// buildLegacyMapBlock hand-assembles a ser_fmt=28 MapBlock envelope: a
// plain header followed by two independent, back-to-back zlib streams,
// matching the pre-zstd wire format this package must still decode.
func buildLegacyMapBlock(t *testing.T, header, nodes, metadata []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	out.Write(header)
	for _, region := range [][]byte{nodes, metadata} {
		var buf bytes.Buffer
		zw, err := kzlib.NewWriterLevel(&buf, 6)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := zw.Write(region); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
		out.Write(buf.Bytes())
	}
	return out.Bytes()
}

func TestMapBlockDecodesSerFmt28PerRegionZlib(t *testing.T) {
	ctx := Context{Direction: ToClient, ProtocolVersion: LatestProtocolVersion, SerFmt: 28}
	header := []byte{0x01, 0x00, 0x2a, 0x02, 0x02}
	nodes := bytes.Repeat([]byte{0x07}, 64)
	metadata := []byte("metadata-blob")

	raw := buildLegacyMapBlock(t, header, nodes, metadata)
	raw = append(raw, 0x99) // trailing sibling byte (NetworkSpecificVersion)

	r := NewReader(ctx, raw)
	got, err := ReadMapBlock(r)
	if err != nil {
		t.Fatal(err)
	}

	want := append(append(append([]byte{}, header...), nodes...), metadata...)
	if !bytes.Equal(got.Raw, want) {
		t.Fatalf("got %q want %q", got.Raw, want)
	}
	if r.Remaining() != 1 {
		t.Fatalf("expected exactly the trailing byte left, got %d bytes", r.Remaining())
	}
}

func TestMapBlockRejectsSerFmtBelow28(t *testing.T) {
	ctx := Context{Direction: ToClient, ProtocolVersion: LatestProtocolVersion, SerFmt: 24}
	r := NewReader(ctx, []byte{0x01, 0x02, 0x03})
	if _, err := ReadMapBlock(r); err == nil {
		t.Fatal("expected ReadMapBlock to fail cleanly below ser_fmt 28")
	}
}
