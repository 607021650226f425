package wire

import "github.com/pkg/errors"

const (
	ProtocolID          uint32 = 0x4f457403
	LatestProtocolVersion uint16 = 41
	MaxPacketSize       int    = 512
	SeqnumInitial       uint16 = 65500
	PacketHeaderSize    int    = 7
	ReliableHeaderSize  int    = 3
	SplitHeaderSize     int    = 7
	MaxOriginalBodySize int    = MaxPacketSize - PacketHeaderSize - ReliableHeaderSize
	MaxSplitBodySize    int    = MaxOriginalBodySize - SplitHeaderSize
)

type PeerID = uint16

type AckBody struct {
	Seqnum uint16
}

func (b AckBody) IntoInner() InnerBody {
	return InnerBody{Kind: InnerControl, Control: ControlBody{Kind: ControlAck, Ack: b}}
}

func WriteAckBody(w Writer, v AckBody) error { return WriteU16(w, v.Seqnum) }
func ReadAckBody(r *Reader) (AckBody, error) {
	n, err := ReadU16(r)
	return AckBody{Seqnum: n}, err
}

type SetPeerIdBody struct {
	PeerId uint16
}

func (b SetPeerIdBody) IntoInner() InnerBody {
	return InnerBody{Kind: InnerControl, Control: ControlBody{Kind: ControlSetPeerId, SetPeerId: b}}
}

func WriteSetPeerIdBody(w Writer, v SetPeerIdBody) error { return WriteU16(w, v.PeerId) }
func ReadSetPeerIdBody(r *Reader) (SetPeerIdBody, error) {
	n, err := ReadU16(r)
	return SetPeerIdBody{PeerId: n}, err
}

// ControlKind tags a ControlBody's variant.
type ControlKind uint8

const (
	ControlAck ControlKind = iota
	ControlSetPeerId
	ControlPing
	ControlDisconnect
)

type ControlBody struct {
	Kind      ControlKind
	Ack       AckBody
	SetPeerId SetPeerIdBody
}

func (b ControlBody) IntoInner() InnerBody {
	return InnerBody{Kind: InnerControl, Control: b}
}

func WriteControlBody(w Writer, v ControlBody) error {
	if err := WriteU8(w, uint8(v.Kind)); err != nil {
		return err
	}
	switch v.Kind {
	case ControlAck:
		return WriteAckBody(w, v.Ack)
	case ControlSetPeerId:
		return WriteSetPeerIdBody(w, v.SetPeerId)
	case ControlPing, ControlDisconnect:
		return nil
	default:
		return errors.Wrap(ErrInvalidValue, "invalid control_type in ControlBody")
	}
}

func ReadControlBody(r *Reader) (ControlBody, error) {
	kind, err := ReadU8(r)
	if err != nil {
		return ControlBody{}, err
	}
	switch ControlKind(kind) {
	case ControlAck:
		ack, err := ReadAckBody(r)
		return ControlBody{Kind: ControlAck, Ack: ack}, err
	case ControlSetPeerId:
		sp, err := ReadSetPeerIdBody(r)
		return ControlBody{Kind: ControlSetPeerId, SetPeerId: sp}, err
	case ControlPing:
		return ControlBody{Kind: ControlPing}, nil
	case ControlDisconnect:
		return ControlBody{Kind: ControlDisconnect}, nil
	default:
		return ControlBody{}, errors.Wrap(ErrInvalidValue, "invalid control_type in ControlBody")
	}
}

type OriginalBody struct {
	Command Command
}

func WriteOriginalBody(w Writer, v OriginalBody) error { return EncodeCommand(w, v.Command) }
func ReadOriginalBody(r *Reader) (OriginalBody, error) {
	cmd, err := DecodeCommand(r)
	return OriginalBody{Command: cmd}, err
}

type SplitBody struct {
	Seqnum     uint16
	ChunkCount uint16
	ChunkNum   uint16
	ChunkData  []byte
}

func WriteSplitBody(w Writer, v SplitBody) error {
	if err := WriteU16(w, v.Seqnum); err != nil {
		return err
	}
	if err := WriteU16(w, v.ChunkCount); err != nil {
		return err
	}
	if err := WriteU16(w, v.ChunkNum); err != nil {
		return err
	}
	return w.WriteBytes(v.ChunkData)
}

func ReadSplitBody(r *Reader) (SplitBody, error) {
	v := SplitBody{}
	var err error
	if v.Seqnum, err = ReadU16(r); err != nil {
		return v, err
	}
	if v.ChunkCount, err = ReadU16(r); err != nil {
		return v, err
	}
	if v.ChunkNum, err = ReadU16(r); err != nil {
		return v, err
	}
	v.ChunkData = append([]byte(nil), r.TakeAll()...)
	return v, nil
}

type ReliableBody struct {
	Seqnum uint16
	Inner  InnerBody
}

func WriteReliableBody(w Writer, v ReliableBody) error {
	if err := WriteU8(w, 3); err != nil {
		return err
	}
	if err := WriteU16(w, v.Seqnum); err != nil {
		return err
	}
	return WriteInnerBody(w, v.Inner)
}

func ReadReliableBody(r *Reader) (ReliableBody, error) {
	tag, err := ReadU8(r)
	if err != nil {
		return ReliableBody{}, err
	}
	if tag != 3 {
		return ReliableBody{}, errors.Wrap(ErrInvalidTag, "invalid packet_type for ReliableBody")
	}
	v := ReliableBody{}
	if v.Seqnum, err = ReadU16(r); err != nil {
		return ReliableBody{}, err
	}
	v.Inner, err = ReadInnerBody(r)
	return v, err
}

// InnerKind tags an InnerBody's variant.
type InnerKind uint8

const (
	InnerControl InnerKind = iota
	InnerOriginal
	InnerSplit
)

type InnerBody struct {
	Kind     InnerKind
	Control  ControlBody
	Original OriginalBody
	Split    SplitBody
}

func (b InnerBody) IntoReliable(seqnum uint16) PacketBody {
	return PacketBody{Kind: PacketReliable, Reliable: ReliableBody{Seqnum: seqnum, Inner: b}}
}

func (b InnerBody) IntoUnreliable() PacketBody {
	return PacketBody{Kind: PacketInner, Inner: b}
}

// Command returns the command this body contains, if any. A Split
// fragment returns ok=false even though a Command fragment lives inside.
func (b InnerBody) Command() (Command, bool) {
	if b.Kind == InnerOriginal {
		return b.Original.Command, true
	}
	return Command{}, false
}

func WriteInnerBody(w Writer, v InnerBody) error {
	if err := WriteU8(w, uint8(v.Kind)); err != nil {
		return err
	}
	switch v.Kind {
	case InnerControl:
		return WriteControlBody(w, v.Control)
	case InnerOriginal:
		return WriteOriginalBody(w, v.Original)
	case InnerSplit:
		return WriteSplitBody(w, v.Split)
	default:
		return errors.Wrap(ErrInvalidValue, "invalid InnerBody kind")
	}
}

func ReadInnerBody(r *Reader) (InnerBody, error) {
	kind, err := ReadU8(r)
	if err != nil {
		return InnerBody{}, err
	}
	switch kind {
	case 0:
		c, err := ReadControlBody(r)
		return InnerBody{Kind: InnerControl, Control: c}, err
	case 1:
		o, err := ReadOriginalBody(r)
		return InnerBody{Kind: InnerOriginal, Original: o}, err
	case 2:
		s, err := ReadSplitBody(r)
		return InnerBody{Kind: InnerSplit, Split: s}, err
	default:
		return InnerBody{}, errors.Wrapf(ErrInvalidValue, "invalid packet kind %d", kind)
	}
}

// PacketKind tags a PacketBody's variant.
type PacketKind uint8

const (
	PacketReliable PacketKind = iota
	PacketInner
)

type PacketBody struct {
	Kind     PacketKind
	Reliable ReliableBody
	Inner    InnerBody
}

func (b PacketBody) InnerBody() InnerBody {
	if b.Kind == PacketReliable {
		return b.Reliable.Inner
	}
	return b.Inner
}

func WritePacketBody(w Writer, v PacketBody) error {
	if v.Kind == PacketReliable {
		return WriteReliableBody(w, v.Reliable)
	}
	return WriteInnerBody(w, v.Inner)
}

// ReadPacketBody peeks the packet-type tag byte to decide whether this is
// a reliable envelope (tag 3) or a bare inner body; either branch then
// re-reads that same byte as part of its own full decode, so there is no
// double-consumption.
func ReadPacketBody(r *Reader) (PacketBody, error) {
	tagByte, err := r.Peek(1)
	if err != nil {
		return PacketBody{}, err
	}
	if tagByte[0] == 3 {
		rb, err := ReadReliableBody(r)
		return PacketBody{Kind: PacketReliable, Reliable: rb}, err
	}
	ib, err := ReadInnerBody(r)
	return PacketBody{Kind: PacketInner, Inner: ib}, err
}

// Packet is the outermost UDP datagram envelope.
type Packet struct {
	ProtocolID   uint32
	SenderPeerID PeerID
	Channel      uint8
	Body         PacketBody
}

func NewPacket(senderPeerID PeerID, channel uint8, body PacketBody) Packet {
	return Packet{ProtocolID: ProtocolID, SenderPeerID: senderPeerID, Channel: channel, Body: body}
}

func (p Packet) Inner() InnerBody {
	return p.Body.InnerBody()
}

func (p Packet) AsControl() (ControlBody, bool) {
	inner := p.Inner()
	if inner.Kind == InnerControl {
		return inner.Control, true
	}
	return ControlBody{}, false
}

func WritePacket(w Writer, p Packet) error {
	if err := WriteU32(w, p.ProtocolID); err != nil {
		return err
	}
	if err := WriteU16(w, p.SenderPeerID); err != nil {
		return err
	}
	if err := WriteU8(w, p.Channel); err != nil {
		return err
	}
	return WritePacketBody(w, p.Body)
}

func ReadPacket(r *Reader) (Packet, error) {
	p := Packet{}
	var err error
	if p.ProtocolID, err = ReadU32(r); err != nil {
		return Packet{}, err
	}
	if p.SenderPeerID, err = ReadU16(r); err != nil {
		return Packet{}, err
	}
	if p.Channel, err = ReadU8(r); err != nil {
		return Packet{}, err
	}
	if p.Body, err = ReadPacketBody(r); err != nil {
		return Packet{}, err
	}
	if p.ProtocolID != ProtocolID {
		return Packet{}, errors.Wrapf(ErrInvalidProtoID, "got %#x", p.ProtocolID)
	}
	if p.Channel > 2 {
		return Packet{}, errors.Wrapf(ErrInvalidChannel, "got %d", p.Channel)
	}
	return p, nil
}
