package peer

import (
	"testing"
	"time"

	"github.com/minetest-go/protocol/wire"
)

func TestSplitSenderPassesThroughSmallCommands(t *testing.T) {
	sender := newSplitSender(contextForSend(false))
	cmd := wire.Command{
		Direction: wire.ToClient,
		ToClient:  &wire.ToClientCommand{Opcode: 0x4a, Body: &wire.HudrmSpec{ServerId: 7}},
	}
	bodies, err := sender.push(cmd)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(bodies) != 1 || bodies[0].Kind != wire.InnerOriginal {
		t.Fatalf("expected a single unsplit Original body, got %+v", bodies)
	}
}

func TestSplitSenderFragmentsOversizedCommands(t *testing.T) {
	sender := newSplitSender(contextForSend(false))
	// A long chat message easily exceeds MaxOriginalBodySize.
	big := make([]byte, wire.MaxOriginalBodySize*2)
	for i := range big {
		big[i] = 'x'
	}
	cmd := wire.Command{
		Direction: wire.ToClient,
		ToClient:  &wire.ToClientCommand{Opcode: 0x2F, Body: &wire.TCChatMessageSpec{Message: string(big)}},
	}
	bodies, err := sender.push(cmd)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(bodies) < 2 {
		t.Fatalf("expected multiple split chunks, got %d", len(bodies))
	}
	for i, b := range bodies {
		if b.Kind != wire.InnerSplit {
			t.Fatalf("chunk %d is not a split body", i)
		}
		if int(b.Split.ChunkNum) != i {
			t.Fatalf("chunk %d has chunk_num %d", i, b.Split.ChunkNum)
		}
		if int(b.Split.ChunkCount) != len(bodies) {
			t.Fatalf("chunk %d has chunk_count %d, want %d", i, b.Split.ChunkCount, len(bodies))
		}
	}
}

func TestSplitReceiverReassembles(t *testing.T) {
	sender := newSplitSender(contextForSend(false))
	big := make([]byte, wire.MaxOriginalBodySize*3)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	cmd := wire.Command{
		Direction: wire.ToClient,
		ToClient:  &wire.ToClientCommand{Opcode: 0x2F, Body: &wire.TCChatMessageSpec{Message: string(big)}},
	}
	bodies, err := sender.push(cmd)
	if err != nil {
		t.Fatalf("push: %v", err)
	}

	receiver := newSplitReceiver()
	now := time.Now()
	var payload []byte
	for i := len(bodies) - 1; i >= 0; i-- {
		p, ready, err := receiver.push(now, bodies[i].Split)
		if err != nil {
			t.Fatalf("push chunk %d: %v", i, err)
		}
		if ready {
			payload = p
		}
	}
	if payload == nil {
		t.Fatalf("expected reassembly to complete")
	}

	ctx := contextForSend(false)
	r := wire.NewReader(ctx, payload)
	decoded, err := wire.DecodeCommand(r)
	if err != nil {
		t.Fatalf("decoding reassembled command: %v", err)
	}
	spec, ok := decoded.ToClient.Body.(*wire.TCChatMessageSpec)
	if !ok {
		t.Fatalf("unexpected payload type %T", decoded.ToClient.Body)
	}
	if len(spec.Message) != len(big) {
		t.Fatalf("reassembled message length = %d, want %d", len(spec.Message), len(big))
	}
}
