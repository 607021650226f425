package netio

import (
	"net"
	"time"

	"github.com/minetest-go/protocol/pkg/logger"
)

// rebindRetryInterval mirrors the original's fixed 5-second backoff
// between failed bind attempts.
const rebindRetryInterval = 5 * time.Second

// Server listens on a UDP address and hands out one Connection per
// distinct remote address that talks to it.
type Server struct {
	accept chan *Connection
	log    logger.Component
}

// NewServer starts a listener goroutine immediately; bind failures are
// retried in the background rather than returned, matching a long-running
// game server that should keep trying rather than exit.
func NewServer(bindAddr *net.UDPAddr) *Server {
	accept := make(chan *Connection, 16)
	s := &Server{accept: accept, log: logger.For("netio")}
	go s.run(bindAddr)
	return s
}

func (s *Server) run(bindAddr *net.UDPAddr) {
	s.log.Debug("server starting on %s", bindAddr)
	var sock *Socket
	for {
		var err error
		sock, err = NewSocket(bindAddr, true)
		if err == nil {
			break
		}
		s.log.Warn("bind failed: %v; retrying in %s", err, rebindRetryInterval)
		time.Sleep(rebindRetryInterval)
	}
	s.log.Debug("server started")
	for {
		p, ok := sock.Accept()
		if !ok {
			close(s.accept)
			return
		}
		s.log.Debug("accepted connection from %s", p.RemoteAddr())
		s.accept <- newConnection(p)
	}
}

// Accept blocks until a new client connects.
func (s *Server) Accept() (*Connection, bool) {
	c, ok := <-s.accept
	return c, ok
}
