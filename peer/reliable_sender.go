package peer

import (
	"container/heap"
	"time"

	"github.com/minetest-go/protocol/wire"
)

const (
	startReliableWindowSize = 0x400 // 1024
	resendTimeoutStart      = 500 * time.Millisecond
	resendResolution        = 20 * time.Millisecond
)

type queuedPacket struct {
	seqnum uint64
	body   wire.PacketBody
}

type timeoutEntry struct {
	when   time.Time
	seqnum uint64
}

// timeoutHeap is a min-heap of timeoutEntry ordered by when.
type timeoutHeap []timeoutEntry

func (h timeoutHeap) Len() int            { return len(h) }
func (h timeoutHeap) Less(i, j int) bool  { return h[i].when.Before(h[j].when) }
func (h timeoutHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timeoutHeap) Push(x interface{}) { *h = append(*h, x.(timeoutEntry)) }
func (h *timeoutHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reliableSender tracks in-flight reliable packets, enforces a send
// window, and schedules resends for anything that goes unacked.
type reliableSender struct {
	nextSeqnum uint64
	windowSize uint64

	// Packets that have yet to be sent at all.
	queued []queuedPacket

	// Sent packets that haven't been acked yet, by seqnum.
	buffer map[uint64]wire.PacketBody

	timeouts      timeoutHeap
	resendTimeout time.Duration

	// onResend, if set, is called with the seqnum of every packet that
	// goes out a second (or later) time because its ack never arrived.
	// Left nil by default so this type stays dependency-free and directly
	// unit-testable; peerRunner wires a logger in here.
	onResend func(seqnum uint64)
}

func newReliableSender() *reliableSender {
	return &reliableSender{
		nextSeqnum:    uint64(wire.SeqnumInitial),
		windowSize:    startReliableWindowSize,
		buffer:        make(map[uint64]wire.PacketBody),
		resendTimeout: resendTimeoutStart,
	}
}

func (s *reliableSender) processAck(ack wire.AckBody) {
	base, ok := s.oldestUnacked()
	if !ok {
		return
	}
	seqnum := relToAbs(base, ack.Seqnum)
	delete(s.buffer, seqnum)
}

// push queues a body for reliable delivery.
func (s *reliableSender) push(body wire.InnerBody) {
	seqnum := s.nextSeqnum
	s.nextSeqnum++
	packet := body.IntoReliable(uint16(seqnum))
	s.queued = append(s.queued, queuedPacket{seqnum: seqnum, body: packet})
}

func (s *reliableSender) oldestUnacked() (uint64, bool) {
	best, ok := uint64(0), false
	for seqnum := range s.buffer {
		if !ok || seqnum < best {
			best = seqnum
			ok = true
		}
	}
	return best, ok
}

func (s *reliableSender) safeToTransmit(seqnum uint64) bool {
	base, ok := s.oldestUnacked()
	if !ok {
		return true
	}
	return seqnum < base+s.windowSize
}

func (s *reliableSender) nextTimeout() (time.Time, bool) {
	if len(s.timeouts) == 0 {
		return time.Time{}, false
	}
	return s.timeouts[0].when.Add(resendResolution), true
}

// pop returns the next packet due for immediate transmission, or ok=false
// if nothing is ready. Call this to exhaustion on every push and whenever
// a scheduled timeout fires; the returned packet must be sent right away
// for resend timing to stay accurate.
func (s *reliableSender) pop(now time.Time) (wire.PacketBody, bool) {
	if body, ok := s.popResend(now); ok {
		return body, true
	}
	return s.popQueued(now)
}

func (s *reliableSender) popQueued(now time.Time) (wire.PacketBody, bool) {
	if len(s.queued) == 0 {
		return wire.PacketBody{}, false
	}
	front := s.queued[0]
	if !s.safeToTransmit(front.seqnum) {
		return wire.PacketBody{}, false
	}
	s.queued = s.queued[1:]
	s.buffer[front.seqnum] = front.body
	heap.Push(&s.timeouts, timeoutEntry{when: now.Add(s.resendTimeout), seqnum: front.seqnum})
	return front.body, true
}

func (s *reliableSender) popResend(now time.Time) (wire.PacketBody, bool) {
	for len(s.timeouts) > 0 {
		entry := s.timeouts[0]
		body, stillPending := s.buffer[entry.seqnum]
		if !stillPending {
			// Already acked; drop the stale timer.
			heap.Pop(&s.timeouts)
			continue
		}
		if !entry.when.After(now) {
			heap.Pop(&s.timeouts)
			heap.Push(&s.timeouts, timeoutEntry{when: now.Add(s.resendTimeout), seqnum: entry.seqnum})
			if s.onResend != nil {
				s.onResend(entry.seqnum)
			}
			return body, true
		}
		return wire.PacketBody{}, false
	}
	return wire.PacketBody{}, false
}
