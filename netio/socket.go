// Package netio wires the peer engine to a real UDP socket: demultiplexing
// incoming datagrams by remote address into per-connection Peer runners,
// and serializing outgoing datagrams back onto the wire.
package netio

import (
	"net"
	"sync"

	"github.com/minetest-go/protocol/peer"
	"github.com/minetest-go/protocol/pkg/logger"
	"github.com/pkg/errors"
)

// maxDatagramSize is larger than any single Minetest packet
// (wire.MaxPacketSize = 512) but UDP can in principle deliver up to this
// much in one read; oversized reads are simply truncated by the kernel.
const maxDatagramSize = 65536

// Socket owns the raw UDP connection and distributes datagrams to peers
// by remote address, spawning a new Peer runner the first time an unknown
// address is seen. Authentication/handshake semantics live above this
// layer, in the peer runtime itself.
type Socket struct {
	conn      *net.UDPConn
	forServer bool

	accept chan *peer.Peer
	route  chan peer.OutgoingDatagram

	mu    sync.Mutex
	peers map[string]peerEntry

	closed chan struct{}

	log logger.Component
}

type peerEntry struct {
	peer *peer.Peer
	io   *peer.PeerIO
}

// NewSocket binds a UDP socket at bindAddr and starts its I/O loops.
// forServer marks this side as the listening Minetest server; a client
// connecting out should pass false.
func NewSocket(bindAddr *net.UDPAddr, forServer bool) (*Socket, error) {
	conn, err := net.ListenUDP("udp", bindAddr)
	if err != nil {
		return nil, errors.Wrap(err, "binding udp socket")
	}
	s := &Socket{
		conn:      conn,
		forServer: forServer,
		accept:    make(chan *peer.Peer, 16),
		route:     make(chan peer.OutgoingDatagram, 256),
		peers:     make(map[string]peerEntry),
		closed:    make(chan struct{}),
		log:       logger.For("netio"),
	}
	go s.readLoop()
	go s.writeLoop()
	return s, nil
}

// LocalAddr returns the address the socket is bound to.
func (s *Socket) LocalAddr() net.Addr { return s.conn.LocalAddr() }

// Close shuts down the socket's I/O loops and the underlying connection.
func (s *Socket) Close() error {
	close(s.closed)
	return s.conn.Close()
}

// Accept blocks until a new remote peer has been observed, or the socket
// is closed (ok=false).
func (s *Socket) Accept() (*peer.Peer, bool) {
	p, ok := <-s.accept
	return p, ok
}

// Knock manually registers a peer for remote, without waiting for network
// traffic to arrive first. Used by a client dialing out: it needs a Peer
// handle before the server has said anything back.
func (s *Socket) Knock(remote *net.UDPAddr) *peer.Peer {
	p, _ := s.getOrInsertPeer(remote)
	return p
}

func (s *Socket) readLoop() {
	buf := make([]byte, maxDatagramSize)
	for {
		n, remoteAddr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-s.closed:
				return
			default:
			}
			continue
		}
		_, io := s.getOrInsertPeer(remoteAddr)
		io.Deliver(buf[:n])
	}
}

// writeLoop drains s.route, giving Immediate datagrams (acks) priority
// over ordinary queued sends whenever both are ready at once.
func (s *Socket) writeLoop() {
	var pending []peer.OutgoingDatagram
	for {
		if len(pending) > 0 {
			front := pending[0]
			pending = pending[1:]
			s.deliver(front)
			continue
		}
		select {
		case <-s.closed:
			return
		case dg := <-s.route:
			pending = drainPriority(s.route, dg)
		}
	}
}

// drainPriority collects first, plus anything else immediately available
// on ch, and orders Immediate datagrams ahead of ordinary ones.
func drainPriority(ch <-chan peer.OutgoingDatagram, first peer.OutgoingDatagram) []peer.OutgoingDatagram {
	batch := []peer.OutgoingDatagram{first}
drain:
	for {
		select {
		case dg := <-ch:
			batch = append(batch, dg)
		default:
			break drain
		}
	}
	var immediate, normal []peer.OutgoingDatagram
	for _, dg := range batch {
		if dg.Immediate {
			immediate = append(immediate, dg)
		} else {
			normal = append(normal, dg)
		}
	}
	return append(immediate, normal...)
}

func (s *Socket) deliver(dg peer.OutgoingDatagram) {
	if dg.Data == nil {
		s.removePeer(dg.Addr)
		return
	}
	udpAddr, ok := dg.Addr.(*net.UDPAddr)
	if !ok {
		return
	}
	_, _ = s.conn.WriteToUDP(dg.Data, udpAddr)
}

func (s *Socket) getOrInsertPeer(remoteAddr *net.UDPAddr) (*peer.Peer, *peer.PeerIO) {
	key := remoteAddr.String()
	s.mu.Lock()
	if entry, ok := s.peers[key]; ok {
		s.mu.Unlock()
		return entry.peer, entry.io
	}
	p, io := peer.NewPeer(remoteAddr, !s.forServer, s.route)
	s.peers[key] = peerEntry{peer: p, io: io}
	s.mu.Unlock()
	s.log.Debug("new peer %s", remoteAddr)
	select {
	case s.accept <- p:
	default:
		go func() { s.accept <- p }()
	}
	return p, io
}

func (s *Socket) removePeer(addr net.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peers, addr.String())
	s.log.Debug("peer %s disconnected", addr)
}
