package peer

import (
	"time"

	"github.com/minetest-go/protocol/wire"
	"github.com/pkg/errors"
)

// splitSender fragments outgoing commands that don't fit in a single
// packet body into a sequence of split chunks.
type splitSender struct {
	ctx        wire.Context
	nextSeqnum uint64
}

func newSplitSender(ctx wire.Context) *splitSender {
	return &splitSender{ctx: ctx, nextSeqnum: uint64(wire.SeqnumInitial)}
}

// push serializes command and returns one or more InnerBody fragments
// ready for reliable or unreliable transmission.
func (s *splitSender) push(command wire.Command) ([]wire.InnerBody, error) {
	mock := wire.NewMockWriter(s.ctx)
	if err := wire.EncodeCommand(mock, command); err != nil {
		return nil, errors.Wrap(err, "measuring command size")
	}
	totalSize := mock.Len()

	if totalSize <= wire.MaxOriginalBodySize {
		return []wire.InnerBody{{Kind: wire.InnerOriginal, Original: wire.OriginalBody{Command: command}}}, nil
	}

	buf := wire.NewBufWriter(s.ctx, totalSize)
	if err := wire.EncodeCommand(buf, command); err != nil {
		return nil, errors.Wrap(err, "serializing oversized command")
	}
	data := buf.Bytes()

	totalChunks := (totalSize + wire.MaxSplitBodySize - 1) / wire.MaxSplitBodySize
	result := make([]wire.InnerBody, 0, totalChunks)
	seqnum := uint16(s.nextSeqnum)
	index := 0
	for offset := 0; offset < totalSize; offset += wire.MaxSplitBodySize {
		end := offset + wire.MaxSplitBodySize
		if end > totalSize {
			end = totalSize
		}
		chunk := append([]byte(nil), data[offset:end]...)
		result = append(result, wire.InnerBody{
			Kind: wire.InnerSplit,
			Split: wire.SplitBody{
				Seqnum:     seqnum,
				ChunkCount: uint16(totalChunks),
				ChunkNum:   uint16(index),
				ChunkData:  chunk,
			},
		})
		index++
	}
	s.nextSeqnum++
	return result, nil
}

const splitTimeout = 30 * time.Second

type incomingSplit struct {
	chunkCount uint16
	chunks     map[uint16][]byte
	timeout    time.Time
}

func newIncomingSplit(now time.Time, chunkCount uint16) *incomingSplit {
	return &incomingSplit{
		chunkCount: chunkCount,
		chunks:     make(map[uint16][]byte),
		timeout:    now.Add(splitTimeout),
	}
}

func (b *incomingSplit) push(now time.Time, body wire.SplitBody) (bool, error) {
	if body.ChunkCount != b.chunkCount {
		return false, errors.New("split packet corrupt: chunk_count mismatch")
	}
	if body.ChunkNum >= b.chunkCount {
		return false, errors.New("split packet corrupt: chunk_num >= chunk_count")
	}
	b.timeout = now.Add(splitTimeout)
	b.chunks[body.ChunkNum] = body.ChunkData
	return len(b.chunks) == int(b.chunkCount), nil
}

func (b *incomingSplit) take() []byte {
	total := 0
	for i := uint16(0); i < b.chunkCount; i++ {
		total += len(b.chunks[i])
	}
	out := make([]byte, 0, total)
	for i := uint16(0); i < b.chunkCount; i++ {
		out = append(out, b.chunks[i]...)
	}
	return out
}

// splitReceiver reassembles fragmented commands split across several
// SplitBody chunks, keyed by their shared split-stream sequence number.
type splitReceiver struct {
	pending map[uint16]*incomingSplit
}

func newSplitReceiver() *splitReceiver {
	return &splitReceiver{pending: make(map[uint16]*incomingSplit)}
}

// push adds a split chunk and returns the reassembled byte stream once
// every chunk for its sequence number has arrived.
func (r *splitReceiver) push(now time.Time, body wire.SplitBody) ([]byte, bool, error) {
	seqnum := body.Seqnum
	entry, ok := r.pending[seqnum]
	if !ok {
		entry = newIncomingSplit(now, body.ChunkCount)
		r.pending[seqnum] = entry
	}
	ready, err := entry.push(now, body)
	if err != nil {
		return nil, false, err
	}
	if !ready {
		return nil, false, nil
	}
	delete(r.pending, seqnum)
	return entry.take(), true, nil
}
