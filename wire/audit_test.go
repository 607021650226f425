package wire

import "testing"

func TestAuditAcceptsExactReencode(t *testing.T) {
	cmd, err := NewToServerCommand(&InitSpec{
		SerializationVerMax: 29,
		MinNetProtoVersion:  37,
		MaxNetProtoVersion:  LatestProtocolVersion,
		PlayerName:          "someone",
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := toServerCtx()
	w := NewBufWriter(ctx, 64)
	if err := EncodeCommand(w, cmd); err != nil {
		t.Fatal(err)
	}
	if err := Audit(ctx, w.Bytes(), cmd); err != nil {
		t.Fatalf("expected a clean audit, got %v", err)
	}
}

func TestAuditRejectsTamperedBytes(t *testing.T) {
	cmd, err := NewToServerCommand(&InitSpec{
		SerializationVerMax: 29,
		MinNetProtoVersion:  37,
		MaxNetProtoVersion:  LatestProtocolVersion,
		PlayerName:          "someone",
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := toServerCtx()
	w := NewBufWriter(ctx, 64)
	if err := EncodeCommand(w, cmd); err != nil {
		t.Fatal(err)
	}
	raw := append([]byte(nil), w.Bytes()...)
	raw[len(raw)-1] ^= 0xFF // corrupt the last byte of PlayerName
	if err := Audit(ctx, raw, cmd); err == nil {
		t.Fatal("expected audit to detect the mismatch")
	}
}

func TestAuditDecompressesBlockdataBeforeComparing(t *testing.T) {
	ctx := toClientCtx()
	cmd, err := NewToClientCommand(&BlockdataSpec{
		Pos:                    V3S16{X: 4, Y: 5, Z: 6},
		Block:                  MapBlock{Raw: []byte("identical-after-decompression")},
		NetworkSpecificVersion: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	w := NewBufWriter(ctx, 256)
	if err := EncodeCommand(w, cmd); err != nil {
		t.Fatal(err)
	}
	// A second, independent encode of the same logical value: zstd's
	// output isn't guaranteed byte-identical across calls, so this
	// stands in for "recompressed differently but decompresses the same".
	w2 := NewBufWriter(ctx, 256)
	if err := EncodeCommand(w2, cmd); err != nil {
		t.Fatal(err)
	}
	if err := Audit(ctx, w.Bytes(), cmd); err != nil {
		t.Fatalf("expected audit to compare decompressed content, got %v", err)
	}
	if bytesEqualHelper(w.Bytes(), w2.Bytes()) {
		// Not asserted on: just documents that the two encodes may differ
		// in their compressed bytes while still auditing clean above.
		t.Log("zstd re-encodes were byte-identical this run, which is fine")
	}
}

func bytesEqualHelper(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
