// Command mtproxy is a minimal Minetest-protocol server: it accepts
// connections, logs every command exchanged, and replies to the initial
// handshake just far enough to let a real client settle into the game
// loop. It exists mainly to exercise the netio/peer/wire stack end to end.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minetest-go/protocol/netio"
	"github.com/minetest-go/protocol/pkg/logger"
	"github.com/minetest-go/protocol/wire"
)

const (
	Version = "1.0.0"
)

type Config struct {
	Host string
	Port int
}

func loadConfig() Config {
	// Default configuration. Override via flags if this ever needs to run
	// against more than one address/port combination.
	return Config{
		Host: "0.0.0.0",
		Port: 30000,
	}
}

func main() {
	logger.Banner("Minetest Protocol Proxy", Version)

	config := loadConfig()
	bindAddr := &net.UDPAddr{IP: net.ParseIP(config.Host), Port: config.Port}

	logger.Info("Server version: %s", Version)
	logger.Info("Binding to %s", bindAddr)

	srv := netio.NewServer(bindAddr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	connChan := make(chan *netio.Connection, 16)
	go func() {
		for {
			conn, ok := srv.Accept()
			if !ok {
				close(connChan)
				return
			}
			connChan <- conn
		}
	}()

	for {
		select {
		case conn, ok := <-connChan:
			if !ok {
				logger.Warn("Server accept loop closed")
				return
			}
			logger.Success("Connection from %s", conn.RemoteAddr())
			go handleConnection(conn)
		case sig := <-sigChan:
			logger.Warn("Received signal: %v", sig)
			logger.Info("Shutting down gracefully...")
			time.Sleep(200 * time.Millisecond)
			logger.Success("Server stopped")
			os.Exit(0)
		}
	}
}

func handleConnection(conn *netio.Connection) {
	for {
		cmd, err := conn.Recv()
		if err != nil {
			logger.Warn("Connection from %s closed: %v", conn.RemoteAddr(), err)
			return
		}
		logger.InfoCyan("recv from %s: opcode %#x", conn.RemoteAddr(), cmd.Opcode)

		if _, ok := cmd.Body.(*wire.InitSpec); ok {
			if err := conn.Send(&wire.HelloSpec{
				SerializationVer: 29,
				CompressionMode:  0,
				ProtoVer:         wire.LatestProtocolVersion,
				AuthMechs:        0,
				UsernameLegacy:   "",
			}); err != nil {
				logger.Error("sending hello to %s: %v", conn.RemoteAddr(), err)
				return
			}
		}
	}
}
