package netio

import (
	"net"

	"github.com/minetest-go/protocol/peer"
	"github.com/minetest-go/protocol/wire"
	"github.com/pkg/errors"
)

// Client dials out to a Minetest-protocol server. Sending a bare socket
// handshake (the null-opcode ToServer command) is enough to make the peer
// engine on both ends exchange peer ids and settle on a protocol version.
type Client struct {
	remotePeer *peer.Peer
}

// Connect binds an ephemeral local UDP port and registers connectTo as a
// peer. No network I/O happens here: the first real Send triggers it.
func Connect(connectTo *net.UDPAddr) (*Client, error) {
	bindAddr := &net.UDPAddr{IP: net.IPv4zero, Port: 0}
	if connectTo.IP.To4() == nil {
		bindAddr = &net.UDPAddr{IP: net.IPv6zero, Port: 0}
	}
	sock, err := NewSocket(bindAddr, false)
	if err != nil {
		return nil, errors.Wrap(err, "binding client socket")
	}
	p := sock.Knock(connectTo)
	return &Client{remotePeer: p}, nil
}

// Recv blocks for the next command sent by the server.
func (c *Client) Recv() (*wire.ToClientCommand, error) {
	cmd, err := c.remotePeer.Recv()
	if err != nil {
		return nil, err
	}
	if cmd.Direction != wire.ToClient {
		return nil, errors.New("received wrong-direction command from peer")
	}
	return cmd.ToClient, nil
}

// Send delivers a ToServer command to the connected server.
func (c *Client) Send(body wire.ToServerBody) error {
	cmd, err := wire.NewToServerCommand(body)
	if err != nil {
		return err
	}
	return c.remotePeer.Send(cmd)
}
