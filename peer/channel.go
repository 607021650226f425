package peer

import (
	"time"

	"github.com/minetest-go/protocol/wire"
	"github.com/pkg/errors"
)

// channel runs one of the protocol's three parallel pipelines (0, 1, 2):
// its own reliable sender/receiver, split sender/receiver, and an
// unreliable send queue. Each is independent so a stall on one channel
// (e.g. waiting on a missing reliable packet) never blocks the others.
type channel struct {
	unreliableOut []wire.InnerBody

	reliableIn  *reliableReceiver
	reliableOut *reliableSender

	splitIn  *splitReceiver
	splitOut *splitSender

	now         time.Time
	recvContext wire.Context
	sendContext wire.Context
}

func newChannel(remoteIsServer bool) *channel {
	return &channel{
		reliableIn:  newReliableReceiver(),
		reliableOut: newReliableSender(),
		splitIn:     newSplitReceiver(),
		splitOut:    newSplitSender(contextForSend(remoteIsServer)),
		now:         time.Now(),
		recvContext: contextForReceive(remoteIsServer),
		sendContext: contextForSend(remoteIsServer),
	}
}

func (c *channel) updateNow(now time.Time) { c.now = now }

func (c *channel) updateContext(recv, send wire.Context) {
	c.recvContext = recv
	c.sendContext = send
	c.splitOut.ctx = send
}

// process handles a packet body received from the remote for this
// channel, pushing any fully-decoded commands to emit.
func (c *channel) process(body wire.PacketBody, emit func(wire.Command)) error {
	if body.Kind == wire.PacketReliable {
		return c.processReliable(body.Reliable, emit)
	}
	return c.processInner(body.Inner, emit)
}

func (c *channel) processReliable(body wire.ReliableBody, emit func(wire.Command)) error {
	c.reliableIn.push(body)
	for {
		inner, ok := c.reliableIn.pop()
		if !ok {
			break
		}
		if err := c.processInner(inner, emit); err != nil {
			return err
		}
	}
	return nil
}

func (c *channel) processInner(body wire.InnerBody, emit func(wire.Command)) error {
	switch body.Kind {
	case wire.InnerControl:
		c.processControl(body.Control)
	case wire.InnerOriginal:
		emit(body.Original.Command)
	case wire.InnerSplit:
		payload, ready, err := c.splitIn.push(c.now, body.Split)
		if err != nil {
			return err
		}
		if ready {
			r := wire.NewReader(c.recvContext, payload)
			cmd, err := wire.DecodeCommand(r)
			if err != nil {
				return errors.Wrap(err, "decoding reassembled split command")
			}
			emit(cmd)
		}
	}
	return nil
}

func (c *channel) processControl(body wire.ControlBody) {
	if body.Kind == wire.ControlAck {
		c.reliableOut.processAck(body.Ack)
	}
	// Everything else (SetPeerId, Ping, Disconnect) is handled one level up.
}

// send serializes and queues command for delivery on this channel.
func (c *channel) send(reliable bool, command wire.Command) error {
	bodies, err := c.splitOut.push(command)
	if err != nil {
		return err
	}
	for _, body := range bodies {
		c.sendInner(reliable, body)
	}
	return nil
}

func (c *channel) sendInner(reliable bool, body wire.InnerBody) {
	if reliable {
		c.reliableOut.push(body)
		return
	}
	c.unreliableOut = append(c.unreliableOut, body)
}

// nextSend returns the next packet body this channel has ready to
// transmit, if any. Unreliable traffic always drains ahead of reliable
// retransmits, matching the priority the original sender gives acks.
func (c *channel) nextSend() (wire.PacketBody, bool) {
	if len(c.unreliableOut) > 0 {
		body := c.unreliableOut[0]
		c.unreliableOut = c.unreliableOut[1:]
		return wire.PacketBody{Kind: wire.PacketInner, Inner: body}, true
	}
	return c.reliableOut.pop(c.now)
}

// nextTimeout returns the next scheduled resend time for this channel.
// Only meaningful once nextSend has been drained to exhaustion.
func (c *channel) nextTimeout() (time.Time, bool) {
	return c.reliableOut.nextTimeout()
}

// contextForSend/contextForReceive mirror Minetest's wire::ProtocolContext
// defaults: start every connection assuming the newest protocol version and
// highest serialization format this library understands, then narrow both
// down once a Hello command is sniffed off the wire.
const serFmtHighestRead uint8 = 29

func contextForSend(remoteIsServer bool) wire.Context {
	dir := wire.ToServer
	if !remoteIsServer {
		dir = wire.ToClient
	}
	return wire.Context{Direction: dir, ProtocolVersion: wire.LatestProtocolVersion, SerFmt: serFmtHighestRead}
}

func contextForReceive(remoteIsServer bool) wire.Context {
	ctx := contextForSend(remoteIsServer)
	if ctx.Direction == wire.ToServer {
		ctx.Direction = wire.ToClient
	} else {
		ctx.Direction = wire.ToServer
	}
	return ctx
}
