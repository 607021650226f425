package peer

import (
	"testing"
	"time"

	"github.com/minetest-go/protocol/wire"
)

func TestChannelUnreliableRoundTrip(t *testing.T) {
	sendSide := newChannel(false)  // we are the server, sending ToClient
	recvSide := newChannel(true) // peer representing the client, receiving ToClient

	cmd := wire.Command{
		Direction: wire.ToClient,
		ToClient:  &wire.ToClientCommand{Opcode: 0x4a, Body: &wire.HudrmSpec{ServerId: 42}},
	}
	if err := sendSide.send(false, cmd); err != nil {
		t.Fatalf("send: %v", err)
	}

	body, ok := sendSide.nextSend()
	if !ok {
		t.Fatalf("expected a queued unreliable body")
	}
	if body.Kind != wire.PacketInner {
		t.Fatalf("expected an unreliable Inner body, got %v", body.Kind)
	}

	var got []wire.Command
	if err := recvSide.process(body, func(c wire.Command) { got = append(got, c) }); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d commands, want 1", len(got))
	}
	spec, ok := got[0].ToClient.Body.(*wire.HudrmSpec)
	if !ok || spec.ServerId != 42 {
		t.Fatalf("unexpected command %+v", got[0])
	}
}

func TestChannelReliableRoundTripOutOfOrder(t *testing.T) {
	sendSide := newChannel(false)
	recvSide := newChannel(true)

	for i := uint32(0); i < 5; i++ {
		cmd := wire.Command{
			Direction: wire.ToClient,
			ToClient:  &wire.ToClientCommand{Opcode: 0x4a, Body: &wire.HudrmSpec{ServerId: i}},
		}
		if err := sendSide.send(true, cmd); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	now := time.Now()
	var bodies []wire.PacketBody
	for {
		body, ok := sendSide.nextSend()
		if !ok {
			break
		}
		bodies = append(bodies, body)
	}
	if len(bodies) != 5 {
		t.Fatalf("got %d reliable bodies, want 5", len(bodies))
	}
	// Deliver out of order: reverse the list.
	for i, j := 0, len(bodies)-1; i < j; i, j = i+1, j-1 {
		bodies[i], bodies[j] = bodies[j], bodies[i]
	}

	var got []uint32
	recvSide.updateNow(now)
	for _, body := range bodies {
		if err := recvSide.process(body, func(c wire.Command) {
			got = append(got, c.ToClient.Body.(*wire.HudrmSpec).ServerId)
		}); err != nil {
			t.Fatalf("process: %v", err)
		}
	}
	if len(got) != 5 {
		t.Fatalf("got %d commands, want 5", len(got))
	}
	for i, v := range got {
		if v != uint32(i) {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}
