package netio

import (
	"net"
	"testing"
	"time"

	"github.com/minetest-go/protocol/wire"
)

func TestClientConnectSendsToServer(t *testing.T) {
	serverSock, err := NewSocket(loopbackAddr(t), true)
	if err != nil {
		t.Fatal(err)
	}
	defer serverSock.Close()

	serverAddr, ok := serverSock.LocalAddr().(*net.UDPAddr)
	if !ok {
		t.Fatalf("server LocalAddr is %T, want *net.UDPAddr", serverSock.LocalAddr())
	}

	client, err := Connect(serverAddr)
	if err != nil {
		t.Fatal(err)
	}

	if err := client.Send(&wire.InitSpec{
		SerializationVerMax: 29,
		MinNetProtoVersion:  37,
		MaxNetProtoVersion:  wire.LatestProtocolVersion,
		PlayerName:          "dana",
	}); err != nil {
		t.Fatal(err)
	}

	conn := make(chan *Connection, 1)
	go func() {
		p, ok := serverSock.Accept()
		if ok {
			conn <- newConnection(p)
		}
	}()

	var serverConn *Connection
	select {
	case serverConn = <-conn:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the server to accept the connection")
	}

	recvd := make(chan *wire.ToServerCommand, 1)
	go func() {
		c, err := serverConn.Recv()
		if err == nil {
			recvd <- c
		}
	}()

	select {
	case c := <-recvd:
		initSpec, ok := c.Body.(*wire.InitSpec)
		if !ok || initSpec.PlayerName != "dana" {
			t.Fatalf("got %+v", c.Body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the Init command to arrive at the server")
	}
}
