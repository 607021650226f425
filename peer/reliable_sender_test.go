package peer

import (
	"testing"
	"time"

	"github.com/minetest-go/protocol/wire"
)

func recoverSenderIndex(t *testing.T, body wire.PacketBody) uint32 {
	t.Helper()
	inner := body.InnerBody()
	return recoverIndex(t, inner)
}

// Pushing more packets than fit in the send window should only ever
// transmit up to the window size until something is acked.
func TestReliableSenderRespectsWindow(t *testing.T) {
	s := newReliableSender()
	s.windowSize = 4

	for i := uint32(0); i < 10; i++ {
		s.push(makeInner(i))
	}

	now := time.Now()
	var sent []uint32
	for {
		body, ok := s.pop(now)
		if !ok {
			break
		}
		sent = append(sent, recoverSenderIndex(t, body))
	}
	if len(sent) != 4 {
		t.Fatalf("got %d packets within window, want 4", len(sent))
	}
	for i, idx := range sent {
		if idx != uint32(i) {
			t.Fatalf("sent[%d] = %d, want %d", i, idx, i)
		}
	}

	// Ack the first two: the window should slide forward and admit two more.
	first, ok := s.pop(now)
	_ = first
	if ok {
		t.Fatalf("expected window to be exhausted before acking")
	}
	s.processAck(wire.AckBody{Seqnum: uint16(wire.SeqnumInitial + 0)})
	s.processAck(wire.AckBody{Seqnum: uint16(wire.SeqnumInitial + 1)})

	var more []uint32
	for {
		body, ok := s.pop(now)
		if !ok {
			break
		}
		more = append(more, recoverSenderIndex(t, body))
	}
	if len(more) != 2 {
		t.Fatalf("got %d packets after acking, want 2", len(more))
	}
}

// An unacked packet must be retransmitted once its resend timeout has
// elapsed, and must stop being retransmitted once it's acked.
func TestReliableSenderResendsAfterTimeout(t *testing.T) {
	s := newReliableSender()
	s.resendTimeout = 10 * time.Millisecond

	s.push(makeInner(0))
	now := time.Now()
	body, ok := s.pop(now)
	if !ok {
		t.Fatalf("expected initial send")
	}
	seqnum := body.Reliable.Seqnum

	// Not yet expired: nothing to resend.
	if _, ok := s.pop(now.Add(1 * time.Millisecond)); ok {
		t.Fatalf("resent before timeout elapsed")
	}

	// Expired: should resend the same packet.
	resend, ok := s.pop(now.Add(20 * time.Millisecond))
	if !ok {
		t.Fatalf("expected resend after timeout")
	}
	if resend.Reliable.Seqnum != seqnum {
		t.Fatalf("resend seqnum = %d, want %d", resend.Reliable.Seqnum, seqnum)
	}

	// Ack it, then confirm it is never resent again.
	s.processAck(wire.AckBody{Seqnum: seqnum})
	if _, ok := s.pop(now.Add(100 * time.Millisecond)); ok {
		t.Fatalf("resent an already-acked packet")
	}
}

// onResend, when set, fires once per actual resend with the seqnum that
// went out again, and never fires for the initial send or an acked packet.
func TestReliableSenderOnResendFires(t *testing.T) {
	s := newReliableSender()
	s.resendTimeout = 10 * time.Millisecond

	var fired []uint64
	s.onResend = func(seqnum uint64) { fired = append(fired, seqnum) }

	s.push(makeInner(0))
	now := time.Now()
	body, ok := s.pop(now)
	if !ok {
		t.Fatalf("expected initial send")
	}
	if len(fired) != 0 {
		t.Fatalf("onResend fired on initial send: %v", fired)
	}
	seqnum := body.Reliable.Seqnum

	if _, ok := s.pop(now.Add(20 * time.Millisecond)); !ok {
		t.Fatalf("expected resend after timeout")
	}
	if len(fired) != 1 || fired[0] != seqnum {
		t.Fatalf("onResend fired = %v, want [%d]", fired, seqnum)
	}

	s.processAck(wire.AckBody{Seqnum: seqnum})
	s.pop(now.Add(100 * time.Millisecond))
	if len(fired) != 1 {
		t.Fatalf("onResend fired for an acked packet: %v", fired)
	}
}
