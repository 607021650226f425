package peer

import (
	"math/rand"
	"net"
	"time"

	"github.com/minetest-go/protocol/pkg/logger"
	"github.com/minetest-go/protocol/wire"
	"github.com/pkg/errors"
)

// helloOpcode is the ToClient opcode for HelloSpec, sniffed off the wire
// to learn the serialization format and protocol version the remote
// settled on during the handshake.
const helloOpcode = 0x02

// inexistentPeerIDGrace is how long after the peer is created the server
// still accepts sender_peer_id == 0 from a client, to cover the handshake
// window before the client has processed SetPeerId.
const inexistentPeerIDGrace = 20 * time.Second

var (
	ErrPeerSentDisconnect = errors.New("peer sent disconnect packet")
	ErrSocketClosed       = errors.New("peer socket closed")
	ErrControllerClosed   = errors.New("peer controller closed")
)

// recvResult pairs a decoded command with any fatal error that ended the
// peer's run loop; exactly one Recv value follows a non-nil error, after
// which the channel is closed.
type recvResult struct {
	command wire.Command
	err     error
}

// Peer is the handle a socket-level driver and an application controller
// use to talk to one remote connection. It turns a raw datagram stream
// into an ordered Command stream, and vice versa.
type Peer struct {
	remoteAddr     net.Addr
	remoteIsServer bool

	send chan wire.Command
	recv chan recvResult
}

func (p *Peer) RemoteAddr() net.Addr { return p.remoteAddr }
func (p *Peer) IsServer() bool       { return p.remoteIsServer }

// Send queues a command for delivery to the peer. If the peer has
// disconnected this returns an error.
func (p *Peer) Send(command wire.Command) error {
	select {
	case p.send <- command:
		return nil
	default:
	}
	// The runner only blocks briefly under load; fall back to a blocking
	// send rather than dropping the command.
	p.send <- command
	return nil
}

// Recv blocks until the next command arrives from the peer, or the peer
// has disconnected.
func (p *Peer) Recv() (wire.Command, error) {
	result, ok := <-p.recv
	if !ok {
		return wire.Command{}, ErrControllerClosed
	}
	return result.command, result.err
}

// PeerIO is the handle a socket-level driver uses to feed raw datagrams
// into a peer's runner goroutine.
type PeerIO struct {
	relay chan []byte
}

// Deliver hands a raw datagram, read from the socket, to the peer runner.
func (io *PeerIO) Deliver(data []byte) {
	cp := append([]byte(nil), data...)
	select {
	case io.relay <- cp:
	default:
		io.relay <- cp
	}
}

// OutgoingDatagram is a raw packet the runner wants written to the
// socket, along with whether it should jump the queue (acks).
type OutgoingDatagram struct {
	Addr      net.Addr
	Data      []byte
	Immediate bool
}

// NewPeer starts a runner goroutine for one remote connection and returns
// the two handles used to drive it: Peer for the application controller,
// PeerIO for the socket driver. toSocket receives every datagram the
// runner wants sent, and a nil Data with Immediate=false marks that the
// peer has disconnected and should be forgotten by the socket driver.
func NewPeer(remoteAddr net.Addr, remoteIsServer bool, toSocket chan<- OutgoingDatagram) (*Peer, *PeerIO) {
	sendCh := make(chan wire.Command, 64)
	recvCh := make(chan recvResult, 64)
	relayCh := make(chan []byte, 64)

	p := &Peer{remoteAddr: remoteAddr, remoteIsServer: remoteIsServer, send: sendCh, recv: recvCh}
	io := &PeerIO{relay: relayCh}

	r := &peerRunner{
		remoteAddr:     remoteAddr,
		remoteIsServer: remoteIsServer,
		recvContext:    contextForReceive(remoteIsServer),
		sendContext:    contextForSend(remoteIsServer),
		connectTime:    time.Now(),
		fromSocket:     relayCh,
		fromController: sendCh,
		toController:   recvCh,
		toSocket:       toSocket,
		channels: [3]*channel{
			newChannel(remoteIsServer),
			newChannel(remoteIsServer),
			newChannel(remoteIsServer),
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: logger.For("peer"),
	}
	for num, c := range r.channels {
		channelNum := num
		c.reliableOut.onResend = func(seqnum uint64) {
			r.log.Debug("%s: resending seqnum %d on channel %d", remoteAddr, seqnum, channelNum)
		}
	}
	go r.run()
	return p, io
}

// peerRunner owns the per-connection state machine: peer-id assignment,
// protocol-version sniffing, and the three channel pipelines. It runs in
// its own goroutine and communicates only over channels.
type peerRunner struct {
	remoteAddr     net.Addr
	remoteIsServer bool
	connectTime    time.Time

	recvContext wire.Context
	sendContext wire.Context

	fromSocket     <-chan []byte
	toSocket       chan<- OutgoingDatagram
	fromController <-chan wire.Command
	toController   chan<- recvResult

	// Minetest protocol peer id. 0 is unassigned, 1 is always the server.
	// When we're the server we pick a random id for the remote and tell it
	// via SetPeerId; when we're the client, the server assigns it to us.
	remotePeerID uint16
	localPeerID  uint16
	rng          *rand.Rand

	channels [3]*channel

	now          time.Time
	lastReceived time.Time

	log logger.Component
}

func (r *peerRunner) run() {
	err := r.runInner()
	disconnectedCleanly := errors.Is(err, ErrPeerSentDisconnect)
	if disconnectedCleanly {
		r.log.Debug("%s: disconnected", r.remoteAddr)
	} else {
		r.log.Debug("%s: run loop ended (%v); sending disconnect", r.remoteAddr, err)
		disconnect := wire.ControlBody{Kind: wire.ControlDisconnect}.IntoInner().IntoUnreliable()
		_ = r.sendRaw(0, disconnect)
	}
	select {
	case r.toSocket <- OutgoingDatagram{Addr: r.remoteAddr}:
	default:
	}
	r.toController <- recvResult{err: err}
	close(r.toController)
}

func (r *peerRunner) updateNow() {
	r.now = time.Now()
	for _, c := range r.channels {
		c.updateNow(r.now)
	}
}

func (r *peerRunner) serializeForSend(channelNum uint8, body wire.PacketBody) ([]byte, error) {
	pkt := wire.NewPacket(r.localPeerID, channelNum, body)
	w := wire.NewBufWriter(r.sendContext, wire.MaxPacketSize)
	if err := wire.WritePacket(w, pkt); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (r *peerRunner) sendRaw(channelNum uint8, body wire.PacketBody) error {
	raw, err := r.serializeForSend(channelNum, body)
	if err != nil {
		return err
	}
	r.toSocket <- OutgoingDatagram{Addr: r.remoteAddr, Data: raw}
	return nil
}

func (r *peerRunner) sendRawPriority(channelNum uint8, body wire.PacketBody) error {
	raw, err := r.serializeForSend(channelNum, body)
	if err != nil {
		return err
	}
	r.toSocket <- OutgoingDatagram{Addr: r.remoteAddr, Data: raw, Immediate: true}
	return nil
}

func (r *peerRunner) runInner() error {
	r.updateNow()
	r.lastReceived = r.now

	for {
		// Drain everything ready to send on every channel, and compute the
		// earliest resend deadline to wake up for.
		var nextWakeup time.Time
		for num := uint8(0); num < 3; num++ {
			for {
				body, ok := r.channels[num].nextSend()
				if !ok {
					break
				}
				if err := r.sendRaw(num, body); err != nil {
					return err
				}
			}
			if t, ok := r.channels[num].nextTimeout(); ok {
				if nextWakeup.IsZero() || t.Before(nextWakeup) {
					nextWakeup = t
				}
			}
		}

		var timer *time.Timer
		var timeoutCh <-chan time.Time
		if !nextWakeup.IsZero() {
			timer = time.NewTimer(time.Until(nextWakeup))
			timeoutCh = timer.C
		}

		select {
		case buf, ok := <-r.fromSocket:
			stopTimer(timer)
			if err := r.handleFromSocket(buf, ok); err != nil {
				return err
			}
		case command, ok := <-r.fromController:
			stopTimer(timer)
			if err := r.handleFromController(command, ok); err != nil {
				return err
			}
		case <-timeoutCh:
			r.updateNow()
		}
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}

func (r *peerRunner) handleFromSocket(buf []byte, ok bool) error {
	r.updateNow()
	if !ok {
		return ErrSocketClosed
	}
	rdr := wire.NewReader(r.recvContext, buf)
	pkt, err := wire.ReadPacket(rdr)
	if err != nil {
		return err
	}
	r.lastReceived = r.now
	return r.processPacket(pkt)
}

func (r *peerRunner) handleFromController(command wire.Command, ok bool) error {
	r.updateNow()
	if !ok {
		return ErrControllerClosed
	}
	r.sniffHello(command)
	return r.sendCommand(command)
}

func (r *peerRunner) processPacket(pkt wire.Packet) error {
	if !r.remoteIsServer {
		// We're the server; assign the remote a peer id on first contact.
		if r.remotePeerID == 0 {
			r.localPeerID = 1
			r.remotePeerID = uint16(2 + r.rng.Intn(65535-2))
			r.log.Debug("%s: assigning peer id %d", r.remoteAddr, r.remotePeerID)
			setPeerID := wire.SetPeerIdBody{PeerId: r.remotePeerID}.IntoInner()
			r.channels[0].sendInner(true, setPeerID)
		}
		if pkt.SenderPeerID == 0 {
			if r.now.After(r.connectTime.Add(inexistentPeerIDGrace)) {
				r.log.Warn("%s: ignoring packet with peer id 0 past grace window", r.remoteAddr)
				return nil // malformed, ignore
			}
		} else if pkt.SenderPeerID != r.remotePeerID {
			r.log.Warn("%s: ignoring packet with unexpected sender peer id %d (want %d)", r.remoteAddr, pkt.SenderPeerID, r.remotePeerID)
			return nil // malformed, ignore
		}
	} else {
		if pkt.SenderPeerID != 1 {
			r.log.Warn("%s: ignoring packet with sender peer id %d from a server (want 1)", r.remoteAddr, pkt.SenderPeerID)
			return nil // malformed, ignore
		}
	}

	if pkt.Body.Kind == wire.PacketReliable {
		if err := r.sendAck(pkt.Channel, pkt.Body.Reliable); err != nil {
			return err
		}
	}

	if control, ok := pkt.AsControl(); ok {
		switch control.Kind {
		case wire.ControlAck:
			// Handled by the channel's reliable sender.
		case wire.ControlSetPeerId:
			if !r.remoteIsServer {
				r.log.Warn("%s: received set_peer_id but we are the server", r.remoteAddr)
				return errors.New("invalid set_peer_id received from client")
			}
			if r.localPeerID == 0 {
				r.localPeerID = control.SetPeerId.PeerId
				r.log.Debug("%s: assigned local peer id %d by server", r.remoteAddr, r.localPeerID)
			} else if r.localPeerID != control.SetPeerId.PeerId {
				r.log.Warn("%s: peer id mismatch in duplicate set_peer_id (have %d, got %d)", r.remoteAddr, r.localPeerID, control.SetPeerId.PeerId)
				return errors.New("peer id mismatch in duplicate set_peer_id")
			}
		case wire.ControlPing:
			// no-op; the packet already refreshed lastReceived.
		case wire.ControlDisconnect:
			return ErrPeerSentDisconnect
		}
	}

	if inner := pkt.Inner(); inner.Kind == wire.InnerOriginal {
		r.sniffHello(inner.Original.Command)
	}

	var emitErr error
	emit := func(cmd wire.Command) {
		select {
		case r.toController <- recvResult{command: cmd}:
		default:
			r.toController <- recvResult{command: cmd}
		}
	}
	emitErr = r.channels[pkt.Channel].process(pkt.Body, emit)
	return emitErr
}

func (r *peerRunner) sniffHello(command wire.Command) {
	if command.ToClient == nil || command.ToClient.Opcode != helloOpcode {
		return
	}
	hello, ok := command.ToClient.Body.(*wire.HelloSpec)
	if !ok {
		return
	}
	r.updateContext(hello.SerializationVer, hello.ProtoVer)
}

func (r *peerRunner) updateContext(serFmt uint8, protocolVersion uint16) {
	r.log.Debug("%s: hello sniffed, ser_fmt=%d proto_ver=%d", r.remoteAddr, serFmt, protocolVersion)
	r.recvContext.ProtocolVersion = protocolVersion
	r.recvContext.SerFmt = serFmt
	r.sendContext.ProtocolVersion = protocolVersion
	r.sendContext.SerFmt = serFmt
	for _, c := range r.channels {
		c.updateContext(r.recvContext, r.sendContext)
	}
}

// sendAck acknowledges a reliable packet immediately, on the
// higher-priority out-of-band path so it doesn't wait behind queued data.
func (r *peerRunner) sendAck(channelNum uint8, rb wire.ReliableBody) error {
	ack := wire.AckBody{Seqnum: rb.Seqnum}.IntoInner().IntoUnreliable()
	return r.sendRawPriority(channelNum, ack)
}

func (r *peerRunner) sendCommand(command wire.Command) error {
	channelNum := command.Channel()
	reliable := command.Reliable()
	return r.channels[channelNum].send(reliable, command)
}
