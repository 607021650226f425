package wire

import (
	"reflect"

	"github.com/pkg/errors"
)

// ToClientBody is any decoded ToClient command payload. Payloads are
// looked up by opcode (decode) or by concrete Go type (encode), mirroring
// the original implementation's per-command dispatch table.
type ToClientBody interface{}

// ToServerBody is the ToServer counterpart to ToClientBody.
type ToServerBody interface{}

// toClientEntry describes one row of the ToClient opcode table.
type toClientEntry struct {
	Name     string
	Channel  uint8
	Reliable bool
	Encode   func(Writer, ToClientBody) error
	Decode   func(*Reader) (ToClientBody, error)
}

type toServerEntry struct {
	Name     string
	Channel  uint8
	Reliable bool
	Encode   func(Writer, ToServerBody) error
	Decode   func(*Reader) (ToServerBody, error)
}

// ToClientCommand pairs a decoded payload with the opcode it arrived
// under (redundant with the payload's Go type, but convenient for
// logging/auditing without a type switch).
type ToClientCommand struct {
	Opcode uint16
	Body   ToClientBody
}

type ToServerCommand struct {
	Opcode uint16
	Body   ToServerBody
}

// Command is the direction-tagged union returned by Decode.
type Command struct {
	Direction Direction
	ToClient  *ToClientCommand
	ToServer  *ToServerCommand
}

func (c Command) Channel() uint8 {
	if c.Direction == ToClient {
		return toClientTable[c.ToClient.Opcode].Channel
	}
	return toServerTable[c.ToServer.Opcode].Channel
}

func (c Command) Reliable() bool {
	if c.Direction == ToClient {
		return toClientTable[c.ToClient.Opcode].Reliable
	}
	return toServerTable[c.ToServer.Opcode].Reliable
}

func (c Command) Name() string {
	if c.Direction == ToClient {
		return toClientTable[c.ToClient.Opcode].Name
	}
	return toServerTable[c.ToServer.Opcode].Name
}

// EncodeCommand writes the 16-bit opcode followed by the payload body.
func EncodeCommand(w Writer, cmd Command) error {
	if cmd.Direction == ToClient {
		entry, ok := toClientTable[cmd.ToClient.Opcode]
		if !ok {
			return errors.Wrapf(ErrBadOpcode, "unknown ToClient opcode %#x", cmd.ToClient.Opcode)
		}
		if err := WriteU16(w, cmd.ToClient.Opcode); err != nil {
			return err
		}
		return entry.Encode(w, cmd.ToClient.Body)
	}
	entry, ok := toServerTable[cmd.ToServer.Opcode]
	if !ok {
		return errors.Wrapf(ErrBadOpcode, "unknown ToServer opcode %#x", cmd.ToServer.Opcode)
	}
	if err := WriteU16(w, cmd.ToServer.Opcode); err != nil {
		return err
	}
	return entry.Encode(w, cmd.ToServer.Body)
}

// DecodeCommand reads the 16-bit opcode then dispatches to the table
// entry matching r's direction. r must be scoped to exactly one
// command's bytes (true of every call site in this package), since the
// raw bytes captured here are reused by Audit to re-encode and compare
// against the original on success, when auditing is enabled.
func DecodeCommand(r *Reader) (Command, error) {
	raw := r.PeekAll()
	opcode, err := ReadU16(r)
	if err != nil {
		return Command{}, err
	}
	switch r.Direction() {
	case ToClient:
		entry, ok := toClientTable[opcode]
		if !ok {
			return Command{}, errors.Wrapf(ErrBadOpcode, "unknown ToClient opcode %#x", opcode)
		}
		body, err := entry.Decode(r)
		if err != nil {
			return Command{}, errors.Wrapf(err, "decoding %s", entry.Name)
		}
		cmd := Command{Direction: ToClient, ToClient: &ToClientCommand{Opcode: opcode, Body: body}}
		if AuditEnabled() {
			if err := Audit(r.Context(), raw, cmd); err != nil {
				return Command{}, err
			}
		}
		return cmd, nil
	default:
		entry, ok := toServerTable[opcode]
		if !ok {
			return Command{}, errors.Wrapf(ErrBadOpcode, "unknown ToServer opcode %#x", opcode)
		}
		body, err := entry.Decode(r)
		if err != nil {
			return Command{}, errors.Wrapf(err, "decoding %s", entry.Name)
		}
		cmd := Command{Direction: ToServer, ToServer: &ToServerCommand{Opcode: opcode, Body: body}}
		if AuditEnabled() {
			if err := Audit(r.Context(), raw, cmd); err != nil {
				return Command{}, err
			}
		}
		return cmd, nil
	}
}

// toClientOpcodeOf/toServerOpcodeOf recover the opcode for a concrete Go
// payload type, used by callers that build a Command from a typed spec
// value without tracking the opcode by hand.
var toClientTypeToOpcode = map[reflect.Type]uint16{}
var toServerTypeToOpcode = map[reflect.Type]uint16{}

func registerToClientType(opcode uint16, sample ToClientBody) {
	toClientTypeToOpcode[reflect.TypeOf(sample)] = opcode
}

func registerToServerType(opcode uint16, sample ToServerBody) {
	toServerTypeToOpcode[reflect.TypeOf(sample)] = opcode
}

// NewToClientCommand builds a Command from a concrete *XxxSpec value.
func NewToClientCommand(body ToClientBody) (Command, error) {
	opcode, ok := toClientTypeToOpcode[reflect.TypeOf(body)]
	if !ok {
		return Command{}, errors.Wrap(ErrBadOpcode, "unregistered ToClient payload type")
	}
	return Command{Direction: ToClient, ToClient: &ToClientCommand{Opcode: opcode, Body: body}}, nil
}

func NewToServerCommand(body ToServerBody) (Command, error) {
	opcode, ok := toServerTypeToOpcode[reflect.TypeOf(body)]
	if !ok {
		return Command{}, errors.Wrap(ErrBadOpcode, "unregistered ToServer payload type")
	}
	return Command{Direction: ToServer, ToServer: &ToServerCommand{Opcode: opcode, Body: body}}, nil
}
