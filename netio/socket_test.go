package netio

import (
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/minetest-go/protocol/peer"
	"github.com/minetest-go/protocol/wire"
)

func TestDrainPriorityOrdersImmediateFirst(t *testing.T) {
	ch := make(chan peer.OutgoingDatagram, 4)
	ch <- peer.OutgoingDatagram{Data: []byte("normal-1")}
	ch <- peer.OutgoingDatagram{Data: []byte("ack"), Immediate: true}
	ch <- peer.OutgoingDatagram{Data: []byte("normal-2")}

	first := peer.OutgoingDatagram{Data: []byte("normal-0")}
	batch := drainPriority(ch, first)

	if len(batch) != 4 {
		t.Fatalf("got %d datagrams, want 4", len(batch))
	}
	if !batch[0].Immediate || string(batch[0].Data) != "ack" {
		t.Fatalf("expected the immediate datagram first, got %+v", batch[0])
	}
	rest := []string{string(batch[1].Data), string(batch[2].Data), string(batch[3].Data)}
	want := []string{"normal-0", "normal-1", "normal-2"}
	if !reflect.DeepEqual(rest, want) {
		t.Fatalf("expected normal datagrams to keep their relative order, got %v want %v", rest, want)
	}
}

func TestDrainPriorityNoImmediatePreservesOrder(t *testing.T) {
	ch := make(chan peer.OutgoingDatagram, 2)
	ch <- peer.OutgoingDatagram{Data: []byte("b")}
	ch <- peer.OutgoingDatagram{Data: []byte("c")}
	batch := drainPriority(ch, peer.OutgoingDatagram{Data: []byte("a")})
	got := []string{string(batch[0].Data), string(batch[1].Data), string(batch[2].Data)}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func loopbackAddr(t *testing.T) *net.UDPAddr {
	t.Helper()
	return &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0}
}

func TestSocketKnockAndAcceptDeliversCommand(t *testing.T) {
	serverSock, err := NewSocket(loopbackAddr(t), true)
	if err != nil {
		t.Fatal(err)
	}
	defer serverSock.Close()

	clientSock, err := NewSocket(loopbackAddr(t), false)
	if err != nil {
		t.Fatal(err)
	}
	defer clientSock.Close()

	serverAddr, ok := serverSock.LocalAddr().(*net.UDPAddr)
	if !ok {
		t.Fatalf("server LocalAddr is %T, want *net.UDPAddr", serverSock.LocalAddr())
	}
	clientPeer := clientSock.Knock(serverAddr)

	cmd, err := wire.NewToServerCommand(&wire.InitSpec{
		SerializationVerMax: 29,
		MinNetProtoVersion:  37,
		MaxNetProtoVersion:  wire.LatestProtocolVersion,
		PlayerName:          "tester",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := clientPeer.Send(cmd); err != nil {
		t.Fatal(err)
	}

	accepted := make(chan *peer.Peer, 1)
	go func() {
		p, ok := serverSock.Accept()
		if ok {
			accepted <- p
		}
	}()

	var serverPeer *peer.Peer
	select {
	case serverPeer = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the server to accept the connection")
	}

	recvd := make(chan wire.Command, 1)
	go func() {
		c, err := serverPeer.Recv()
		if err == nil {
			recvd <- c
		}
	}()

	select {
	case c := <-recvd:
		initSpec, ok := c.ToServer.Body.(*wire.InitSpec)
		if !ok {
			t.Fatalf("received body is %T, want *wire.InitSpec", c.ToServer.Body)
		}
		if initSpec.PlayerName != "tester" {
			t.Fatalf("got PlayerName %q, want %q", initSpec.PlayerName, "tester")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the Init command to arrive at the server")
	}
}
