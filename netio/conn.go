package netio

import (
	"net"

	"github.com/minetest-go/protocol/peer"
	"github.com/minetest-go/protocol/wire"
	"github.com/pkg/errors"
)

// Connection is the server-side handle for one connected client: a thin
// wrapper over Peer that enforces ToServer/ToClient direction at the API
// boundary instead of leaving it to the caller.
type Connection struct {
	peer *peer.Peer
}

func newConnection(p *peer.Peer) *Connection {
	return &Connection{peer: p}
}

func (c *Connection) RemoteAddr() net.Addr { return c.peer.RemoteAddr() }

// Send delivers a ToClient command to the connected client.
func (c *Connection) Send(body wire.ToClientBody) error {
	cmd, err := wire.NewToClientCommand(body)
	if err != nil {
		return err
	}
	return c.peer.Send(cmd)
}

// SendAccessDenied is a convenience wrapper for the common
// reject-and-disconnect case.
func (c *Connection) SendAccessDenied(code wire.AccessDeniedCode) error {
	return c.Send(&wire.AccessDeniedSpec{Code: code})
}

// Recv blocks for the next command sent by the client.
func (c *Connection) Recv() (*wire.ToServerCommand, error) {
	cmd, err := c.peer.Recv()
	if err != nil {
		return nil, err
	}
	if cmd.Direction != wire.ToServer {
		return nil, errors.New("received wrong-direction command from peer")
	}
	return cmd.ToServer, nil
}
