package peer

import (
	"github.com/minetest-go/protocol/wire"
)

// reliableReceiver reorders a stream of reliable packets back into send
// order, buffering anything that arrives ahead of the next expected
// sequence number.
type reliableReceiver struct {
	// Next sequence number expected in the reliable stream.
	nextSeqnum uint64

	// Packets that have been received but can't be processed yet because
	// an earlier packet is still outstanding. Invariant: every key here is
	// >= nextSeqnum.
	buffer map[uint64]wire.InnerBody
	// pop() looks up nextSeqnum directly, so the keys are kept in no
	// particular order.
}

func newReliableReceiver() *reliableReceiver {
	return &reliableReceiver{
		nextSeqnum: uint64(wire.SeqnumInitial),
		buffer:     make(map[uint64]wire.InnerBody),
	}
}

// push adds a reliable packet received from the remote peer.
func (r *reliableReceiver) push(body wire.ReliableBody) {
	seqnum := relToAbs(r.nextSeqnum, body.Seqnum)
	if seqnum < r.nextSeqnum {
		// Already received and processed. Ignore.
		return
	}
	if _, ok := r.buffer[seqnum]; !ok {
		r.buffer[seqnum] = body.Inner
	}
}

// pop pulls a single body off the front of the reliable stream, in the
// same order it was originally sent. Call this repeatedly until it
// returns ok=false.
func (r *reliableReceiver) pop() (wire.InnerBody, bool) {
	body, ok := r.buffer[r.nextSeqnum]
	if !ok {
		return wire.InnerBody{}, false
	}
	delete(r.buffer, r.nextSeqnum)
	r.nextSeqnum++
	return body, true
}
