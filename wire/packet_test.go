package wire

import "testing"

func TestPacketRoundTripControlAck(t *testing.T) {
	ctx := toServerCtx()
	pkt := NewPacket(1, 0, ControlBody{Kind: ControlAck, Ack: AckBody{Seqnum: 42}}.IntoInner().IntoUnreliable())

	w := NewBufWriter(ctx, 32)
	if err := WritePacket(w, pkt); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadPacket(r)
	if err != nil {
		t.Fatal(err)
	}
	ctrl, ok := got.AsControl()
	if !ok || ctrl.Kind != ControlAck || ctrl.Ack.Seqnum != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestPacketRoundTripReliableOriginal(t *testing.T) {
	ctx := toServerCtx()
	cmd, err := NewToServerCommand(&InitSpec{
		SerializationVerMax: 29,
		MinNetProtoVersion:  37,
		MaxNetProtoVersion:  LatestProtocolVersion,
		PlayerName:          "carol",
	})
	if err != nil {
		t.Fatal(err)
	}
	// OriginalBody has no IntoInner helper of its own; build InnerBody directly.
	inner := InnerBody{Kind: InnerOriginal, Original: OriginalBody{Command: cmd}}
	pkt := NewPacket(5, 1, inner.IntoReliable(SeqnumInitial))

	w := NewBufWriter(ctx, 256)
	if err := WritePacket(w, pkt); err != nil {
		t.Fatal(err)
	}
	if w.Bytes()[7] != 3 {
		t.Fatalf("expected reliable tag byte 3 at offset 7, got %d", w.Bytes()[7])
	}

	r := NewReader(ctx, w.Bytes())
	got, err := ReadPacket(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Body.Kind != PacketReliable || got.Body.Reliable.Seqnum != SeqnumInitial {
		t.Fatalf("got %+v", got.Body)
	}
	decodedCmd, ok := got.Inner().Command()
	if !ok {
		t.Fatal("expected an Original command inside the reliable envelope")
	}
	initSpec, ok := decodedCmd.ToServer.Body.(*InitSpec)
	if !ok || initSpec.PlayerName != "carol" {
		t.Fatalf("got %+v", decodedCmd)
	}
}

func TestPacketRoundTripUnreliableSplit(t *testing.T) {
	ctx := toServerCtx()
	split := SplitBody{Seqnum: 7, ChunkCount: 3, ChunkNum: 1, ChunkData: []byte("chunk-data")}
	inner := InnerBody{Kind: InnerSplit, Split: split}
	pkt := NewPacket(5, 2, inner.IntoUnreliable())

	w := NewBufWriter(ctx, 64)
	if err := WritePacket(w, pkt); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadPacket(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Body.Kind != PacketInner || got.Body.Inner.Kind != InnerSplit {
		t.Fatalf("got %+v", got.Body)
	}
	gotSplit := got.Body.Inner.Split
	if gotSplit.Seqnum != 7 || gotSplit.ChunkCount != 3 || gotSplit.ChunkNum != 1 || string(gotSplit.ChunkData) != "chunk-data" {
		t.Fatalf("got %+v", gotSplit)
	}
}

func TestReadPacketRejectsBadProtocolID(t *testing.T) {
	ctx := toServerCtx()
	w := NewBufWriter(ctx, 16)
	if err := WriteU32(w, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if err := WriteU16(w, 1); err != nil {
		t.Fatal(err)
	}
	if err := WriteU8(w, 0); err != nil {
		t.Fatal(err)
	}
	if err := WriteInnerBody(w, InnerBody{Kind: InnerControl, Control: ControlBody{Kind: ControlPing}}); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	if _, err := ReadPacket(r); err == nil {
		t.Fatal("expected ErrInvalidProtoID for a mismatched protocol id")
	}
}

func TestReadPacketRejectsBadChannel(t *testing.T) {
	ctx := toServerCtx()
	w := NewBufWriter(ctx, 16)
	if err := WriteU32(w, ProtocolID); err != nil {
		t.Fatal(err)
	}
	if err := WriteU16(w, 1); err != nil {
		t.Fatal(err)
	}
	if err := WriteU8(w, 5); err != nil {
		t.Fatal(err)
	}
	if err := WriteInnerBody(w, InnerBody{Kind: InnerControl, Control: ControlBody{Kind: ControlPing}}); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	if _, err := ReadPacket(r); err == nil {
		t.Fatal("expected ErrInvalidChannel for channel > 2")
	}
}
