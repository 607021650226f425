package peer

import (
	"math/rand"
	"testing"

	"github.com/minetest-go/protocol/wire"
)

func makeInner(index uint32) wire.InnerBody {
	// Hudrm is used purely as a carrier: it stores a single uint32 that
	// round-trips cleanly and lets the test recover ordering.
	cmd := wire.Command{
		Direction: wire.ToClient,
		ToClient:  &wire.ToClientCommand{Opcode: 0x4a, Body: &wire.HudrmSpec{ServerId: index}},
	}
	return wire.InnerBody{Kind: wire.InnerOriginal, Original: wire.OriginalBody{Command: cmd}}
}

func recoverIndex(t *testing.T, body wire.InnerBody) uint32 {
	t.Helper()
	if body.Kind != wire.InnerOriginal {
		t.Fatalf("unexpected body kind %v", body.Kind)
	}
	spec, ok := body.Original.Command.ToClient.Body.(*wire.HudrmSpec)
	if !ok {
		t.Fatalf("unexpected payload type %T", body.Original.Command.ToClient.Body)
	}
	return spec.ServerId
}

// Feeds a large run of reliable packets in shuffled order, in several
// chunks, confirming that pop() always yields send order back out, and
// that seqnum wrapping across chunks doesn't corrupt anything.
func TestReliableReceiverReordersAndWraps(t *testing.T) {
	r := newReliableReceiver()
	const chunkLen = 3000
	var offset uint32
	for chunk := 0; chunk < 5; chunk++ {
		type pkt struct {
			seqnum uint16
			inner  wire.InnerBody
		}
		pkts := make([]pkt, 0, chunkLen)
		for i := uint32(0); i < chunkLen; i++ {
			seqnum := wire.SeqnumInitial + uint16(offset+i)
			pkts = append(pkts, pkt{seqnum: seqnum, inner: makeInner(offset + i)})
		}
		rand.Shuffle(len(pkts), func(i, j int) { pkts[i], pkts[j] = pkts[j], pkts[i] })

		var out []uint32
		for _, p := range pkts {
			r.push(wire.ReliableBody{Seqnum: p.seqnum, Inner: p.inner})
			for {
				body, ok := r.pop()
				if !ok {
					break
				}
				out = append(out, recoverIndex(t, body))
			}
		}
		if len(out) != chunkLen {
			t.Fatalf("chunk %d: got %d packets, want %d", chunk, len(out), chunkLen)
		}
		for i, v := range out {
			if want := offset + uint32(i); v != want {
				t.Fatalf("chunk %d: out[%d] = %d, want %d", chunk, i, v, want)
			}
		}
		offset += chunkLen
	}
}
