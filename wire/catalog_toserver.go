package wire

// ToServer command payloads and their opcode table.

type NullSpec struct{}

func encodeNull(w Writer, b ToServerBody) error  { return nil }
func decodeNull(r *Reader) (ToServerBody, error) { return &NullSpec{}, nil }

type InitSpec struct {
	SerializationVerMax uint8
	SuppComprModes      uint16
	MinNetProtoVersion  uint16
	MaxNetProtoVersion  uint16
	PlayerName          string
}

func encodeInit(w Writer, b ToServerBody) error {
	v := b.(*InitSpec)
	if err := WriteU8(w, v.SerializationVerMax); err != nil {
		return err
	}
	if err := WriteU16(w, v.SuppComprModes); err != nil {
		return err
	}
	if err := WriteU16(w, v.MinNetProtoVersion); err != nil {
		return err
	}
	if err := WriteU16(w, v.MaxNetProtoVersion); err != nil {
		return err
	}
	return WriteString(w, v.PlayerName)
}

func decodeInit(r *Reader) (ToServerBody, error) {
	v := &InitSpec{}
	var err error
	if v.SerializationVerMax, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.SuppComprModes, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.MinNetProtoVersion, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.MaxNetProtoVersion, err = ReadU16(r); err != nil {
		return nil, err
	}
	v.PlayerName, err = ReadString(r)
	return v, err
}

type Init2Spec struct {
	Lang *string
}

func encodeInit2(w Writer, b ToServerBody) error {
	return WriteOptionTail(w, b.(*Init2Spec).Lang, WriteString)
}

func decodeInit2(r *Reader) (ToServerBody, error) {
	lang, err := ReadOptionTail(r, ReadString)
	return &Init2Spec{Lang: lang}, err
}

type ModchannelJoinSpec struct {
	ChannelName string
}

func encodeModchannelJoin(w Writer, b ToServerBody) error {
	return WriteString(w, b.(*ModchannelJoinSpec).ChannelName)
}

func decodeModchannelJoin(r *Reader) (ToServerBody, error) {
	s, err := ReadString(r)
	return &ModchannelJoinSpec{ChannelName: s}, err
}

type ModchannelLeaveSpec struct {
	ChannelName string
}

func encodeModchannelLeave(w Writer, b ToServerBody) error {
	return WriteString(w, b.(*ModchannelLeaveSpec).ChannelName)
}

func decodeModchannelLeave(r *Reader) (ToServerBody, error) {
	s, err := ReadString(r)
	return &ModchannelLeaveSpec{ChannelName: s}, err
}

type TSModchannelMsgSpec struct {
	ChannelName string
	ChannelMsg  string
}

func encodeTSModchannelMsg(w Writer, b ToServerBody) error {
	v := b.(*TSModchannelMsgSpec)
	if err := WriteString(w, v.ChannelName); err != nil {
		return err
	}
	return WriteString(w, v.ChannelMsg)
}

func decodeTSModchannelMsg(r *Reader) (ToServerBody, error) {
	v := &TSModchannelMsgSpec{}
	var err error
	if v.ChannelName, err = ReadString(r); err != nil {
		return nil, err
	}
	v.ChannelMsg, err = ReadString(r)
	return v, err
}

type PlayerposSpec struct {
	PlayerPos PlayerPos
}

func encodePlayerpos(w Writer, b ToServerBody) error {
	return WritePlayerPos(w, b.(*PlayerposSpec).PlayerPos)
}

func decodePlayerpos(r *Reader) (ToServerBody, error) {
	p, err := ReadPlayerPos(r)
	return &PlayerposSpec{PlayerPos: p}, err
}

type GotblocksSpec struct {
	Blocks []V3S16
}

func encodeGotblocks(w Writer, b ToServerBody) error {
	return WriteArray8(w, b.(*GotblocksSpec).Blocks, WriteV3S16)
}

func decodeGotblocks(r *Reader) (ToServerBody, error) {
	v, err := ReadArray8(r, ReadV3S16)
	return &GotblocksSpec{Blocks: v}, err
}

type DeletedblocksSpec struct {
	Blocks []V3S16
}

func encodeDeletedblocks(w Writer, b ToServerBody) error {
	return WriteArray8(w, b.(*DeletedblocksSpec).Blocks, WriteV3S16)
}

func decodeDeletedblocks(r *Reader) (ToServerBody, error) {
	v, err := ReadArray8(r, ReadV3S16)
	return &DeletedblocksSpec{Blocks: v}, err
}

type InventoryActionSpec struct {
	Action InventoryAction
}

func encodeInventoryActionCmd(w Writer, b ToServerBody) error {
	return w.WriteBytes([]byte(b.(*InventoryActionSpec).Action.String()))
}

func decodeInventoryActionCmd(r *Reader) (ToServerBody, error) {
	a, err := ParseInventoryAction(r.TakeAll())
	return &InventoryActionSpec{Action: a}, err
}

type TSChatMessageSpec struct {
	Message string
}

func encodeTSChatMessage(w Writer, b ToServerBody) error {
	return WriteWString(w, b.(*TSChatMessageSpec).Message)
}

func decodeTSChatMessage(r *Reader) (ToServerBody, error) {
	s, err := ReadWString(r)
	return &TSChatMessageSpec{Message: s}, err
}

type DamageSpec struct {
	Damage uint16
}

func encodeDamage(w Writer, b ToServerBody) error { return WriteU16(w, b.(*DamageSpec).Damage) }
func decodeDamage(r *Reader) (ToServerBody, error) {
	v, err := ReadU16(r)
	return &DamageSpec{Damage: v}, err
}

type PlayeritemSpec struct {
	Item uint16
}

func encodePlayeritem(w Writer, b ToServerBody) error { return WriteU16(w, b.(*PlayeritemSpec).Item) }
func decodePlayeritem(r *Reader) (ToServerBody, error) {
	v, err := ReadU16(r)
	return &PlayeritemSpec{Item: v}, err
}

type RespawnSpec struct{}

func encodeRespawn(w Writer, b ToServerBody) error  { return nil }
func decodeRespawn(r *Reader) (ToServerBody, error) { return &RespawnSpec{}, nil }

type InteractSpec struct {
	Action        InteractAction
	ItemIndex     uint16
	PointedThing  PointedThing
	PlayerPos     PlayerPos
}

func encodeInteract(w Writer, b ToServerBody) error {
	v := b.(*InteractSpec)
	if err := WriteInteractAction(w, v.Action); err != nil {
		return err
	}
	if err := WriteU16(w, v.ItemIndex); err != nil {
		return err
	}
	if err := WriteWrappedPointedThing(w, v.PointedThing); err != nil {
		return err
	}
	return WritePlayerPos(w, v.PlayerPos)
}

func decodeInteract(r *Reader) (ToServerBody, error) {
	v := &InteractSpec{}
	var err error
	if v.Action, err = ReadInteractAction(r); err != nil {
		return nil, err
	}
	if v.ItemIndex, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.PointedThing, err = ReadWrappedPointedThing(r); err != nil {
		return nil, err
	}
	v.PlayerPos, err = ReadPlayerPos(r)
	return v, err
}

type RemovedSoundsSpec struct {
	Ids []int32
}

func encodeRemovedSounds(w Writer, b ToServerBody) error {
	return WriteArray16(w, b.(*RemovedSoundsSpec).Ids, WriteS32)
}

func decodeRemovedSounds(r *Reader) (ToServerBody, error) {
	v, err := ReadArray16(r, ReadS32)
	return &RemovedSoundsSpec{Ids: v}, err
}

type NodemetaFieldsSpec struct {
	P        V3S16
	FormName string
	Fields   []Pair[string, string]
}

func writePairStringLongString(w Writer, p Pair[string, string]) error {
	if err := WriteString(w, p.First); err != nil {
		return err
	}
	return WriteLongString(w, p.Second)
}

func readPairStringLongString(r *Reader) (Pair[string, string], error) {
	name, err := ReadString(r)
	if err != nil {
		return Pair[string, string]{}, err
	}
	val, err := ReadLongString(r)
	return Pair[string, string]{First: name, Second: val}, err
}

func encodeNodemetaFields(w Writer, b ToServerBody) error {
	v := b.(*NodemetaFieldsSpec)
	if err := WriteV3S16(w, v.P); err != nil {
		return err
	}
	if err := WriteString(w, v.FormName); err != nil {
		return err
	}
	return WriteArray16(w, v.Fields, writePairStringLongString)
}

func decodeNodemetaFields(r *Reader) (ToServerBody, error) {
	v := &NodemetaFieldsSpec{}
	var err error
	if v.P, err = ReadV3S16(r); err != nil {
		return nil, err
	}
	if v.FormName, err = ReadString(r); err != nil {
		return nil, err
	}
	v.Fields, err = ReadArray16(r, readPairStringLongString)
	return v, err
}

type InventoryFieldsSpec struct {
	ClientFormspecName string
	Fields             []Pair[string, string]
}

func encodeInventoryFields(w Writer, b ToServerBody) error {
	v := b.(*InventoryFieldsSpec)
	if err := WriteString(w, v.ClientFormspecName); err != nil {
		return err
	}
	return WriteArray16(w, v.Fields, writePairStringLongString)
}

func decodeInventoryFields(r *Reader) (ToServerBody, error) {
	v := &InventoryFieldsSpec{}
	var err error
	if v.ClientFormspecName, err = ReadString(r); err != nil {
		return nil, err
	}
	v.Fields, err = ReadArray16(r, readPairStringLongString)
	return v, err
}

type RequestMediaSpec struct {
	Files []string
}

func encodeRequestMedia(w Writer, b ToServerBody) error {
	return WriteArray16(w, b.(*RequestMediaSpec).Files, WriteString)
}

func decodeRequestMedia(r *Reader) (ToServerBody, error) {
	v, err := ReadArray16(r, ReadString)
	return &RequestMediaSpec{Files: v}, err
}

type HaveMediaSpec struct {
	Tokens []uint32
}

func encodeHaveMedia(w Writer, b ToServerBody) error {
	return WriteArray8(w, b.(*HaveMediaSpec).Tokens, WriteU32)
}

func decodeHaveMedia(r *Reader) (ToServerBody, error) {
	v, err := ReadArray8(r, ReadU32)
	return &HaveMediaSpec{Tokens: v}, err
}

type ClientReadySpec struct {
	MajorVer    uint8
	MinorVer    uint8
	PatchVer    uint8
	Reserved    uint8
	FullVer     string
	FormspecVer *uint16
}

func encodeClientReady(w Writer, b ToServerBody) error {
	v := b.(*ClientReadySpec)
	if err := WriteU8(w, v.MajorVer); err != nil {
		return err
	}
	if err := WriteU8(w, v.MinorVer); err != nil {
		return err
	}
	if err := WriteU8(w, v.PatchVer); err != nil {
		return err
	}
	if err := WriteU8(w, v.Reserved); err != nil {
		return err
	}
	if err := WriteString(w, v.FullVer); err != nil {
		return err
	}
	return WriteOptionTail(w, v.FormspecVer, WriteU16)
}

func decodeClientReady(r *Reader) (ToServerBody, error) {
	v := &ClientReadySpec{}
	var err error
	if v.MajorVer, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.MinorVer, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.PatchVer, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.Reserved, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.FullVer, err = ReadString(r); err != nil {
		return nil, err
	}
	v.FormspecVer, err = ReadOptionTail(r, ReadU16)
	return v, err
}

type FirstSrpSpec struct {
	Salt             []byte
	VerificationKey  []byte
	IsEmpty          bool
}

func encodeFirstSrp(w Writer, b ToServerBody) error {
	v := b.(*FirstSrpSpec)
	if err := WriteBinaryData16(w, v.Salt); err != nil {
		return err
	}
	if err := WriteBinaryData16(w, v.VerificationKey); err != nil {
		return err
	}
	return WriteBool(w, v.IsEmpty)
}

func decodeFirstSrp(r *Reader) (ToServerBody, error) {
	v := &FirstSrpSpec{}
	var err error
	if v.Salt, err = ReadBinaryData16(r); err != nil {
		return nil, err
	}
	if v.VerificationKey, err = ReadBinaryData16(r); err != nil {
		return nil, err
	}
	v.IsEmpty, err = ReadBool(r)
	return v, err
}

type SrpBytesASpec struct {
	BytesA  []byte
	BasedOn uint8
}

func encodeSrpBytesA(w Writer, b ToServerBody) error {
	v := b.(*SrpBytesASpec)
	if err := WriteBinaryData16(w, v.BytesA); err != nil {
		return err
	}
	return WriteU8(w, v.BasedOn)
}

func decodeSrpBytesA(r *Reader) (ToServerBody, error) {
	v := &SrpBytesASpec{}
	var err error
	if v.BytesA, err = ReadBinaryData16(r); err != nil {
		return nil, err
	}
	v.BasedOn, err = ReadU8(r)
	return v, err
}

type SrpBytesMSpec struct {
	BytesM []byte
}

func encodeSrpBytesM(w Writer, b ToServerBody) error {
	return WriteBinaryData16(w, b.(*SrpBytesMSpec).BytesM)
}

func decodeSrpBytesM(r *Reader) (ToServerBody, error) {
	v, err := ReadBinaryData16(r)
	return &SrpBytesMSpec{BytesM: v}, err
}

type UpdateClientInfoSpec struct {
	RenderTargetSize V2U32
	RealGuiScaling   float32
	RealHudScaling   float32
	MaxFsSize        V2F
}

func encodeUpdateClientInfo(w Writer, b ToServerBody) error {
	v := b.(*UpdateClientInfoSpec)
	if err := WriteV2U32(w, v.RenderTargetSize); err != nil {
		return err
	}
	if err := WriteF32(w, v.RealGuiScaling); err != nil {
		return err
	}
	if err := WriteF32(w, v.RealHudScaling); err != nil {
		return err
	}
	return WriteV2F(w, v.MaxFsSize)
}

func decodeUpdateClientInfo(r *Reader) (ToServerBody, error) {
	v := &UpdateClientInfoSpec{}
	var err error
	if v.RenderTargetSize, err = ReadV2U32(r); err != nil {
		return nil, err
	}
	if v.RealGuiScaling, err = ReadF32(r); err != nil {
		return nil, err
	}
	if v.RealHudScaling, err = ReadF32(r); err != nil {
		return nil, err
	}
	v.MaxFsSize, err = ReadV2F(r)
	return v, err
}

var toServerTable = map[uint16]toServerEntry{
	0x00: {"Null", 0, false, encodeNull, decodeNull},
	0x02: {"Init", 1, false, encodeInit, decodeInit},
	0x11: {"Init2", 1, true, encodeInit2, decodeInit2},
	0x17: {"ModchannelJoin", 0, true, encodeModchannelJoin, decodeModchannelJoin},
	0x18: {"ModchannelLeave", 0, true, encodeModchannelLeave, decodeModchannelLeave},
	0x19: {"TSModchannelMsg", 0, true, encodeTSModchannelMsg, decodeTSModchannelMsg},
	0x23: {"Playerpos", 0, false, encodePlayerpos, decodePlayerpos},
	0x24: {"Gotblocks", 2, true, encodeGotblocks, decodeGotblocks},
	0x25: {"Deletedblocks", 2, true, encodeDeletedblocks, decodeDeletedblocks},
	0x31: {"InventoryAction", 0, true, encodeInventoryActionCmd, decodeInventoryActionCmd},
	0x32: {"TSChatMessage", 0, true, encodeTSChatMessage, decodeTSChatMessage},
	0x35: {"Damage", 0, true, encodeDamage, decodeDamage},
	0x37: {"Playeritem", 0, true, encodePlayeritem, decodePlayeritem},
	0x38: {"Respawn", 0, true, encodeRespawn, decodeRespawn},
	0x39: {"Interact", 0, true, encodeInteract, decodeInteract},
	0x3a: {"RemovedSounds", 2, true, encodeRemovedSounds, decodeRemovedSounds},
	0x3b: {"NodemetaFields", 0, true, encodeNodemetaFields, decodeNodemetaFields},
	0x3c: {"InventoryFields", 0, true, encodeInventoryFields, decodeInventoryFields},
	0x40: {"RequestMedia", 1, true, encodeRequestMedia, decodeRequestMedia},
	0x41: {"HaveMedia", 2, true, encodeHaveMedia, decodeHaveMedia},
	0x43: {"ClientReady", 1, true, encodeClientReady, decodeClientReady},
	0x50: {"FirstSrp", 1, true, encodeFirstSrp, decodeFirstSrp},
	0x51: {"SrpBytesA", 1, true, encodeSrpBytesA, decodeSrpBytesA},
	0x52: {"SrpBytesM", 1, true, encodeSrpBytesM, decodeSrpBytesM},
	0x53: {"UpdateClientInfo", 1, true, encodeUpdateClientInfo, decodeUpdateClientInfo},
}

func init() {
	registerToServerType(0x00, &NullSpec{})
	registerToServerType(0x02, &InitSpec{})
	registerToServerType(0x11, &Init2Spec{})
	registerToServerType(0x17, &ModchannelJoinSpec{})
	registerToServerType(0x18, &ModchannelLeaveSpec{})
	registerToServerType(0x19, &TSModchannelMsgSpec{})
	registerToServerType(0x23, &PlayerposSpec{})
	registerToServerType(0x24, &GotblocksSpec{})
	registerToServerType(0x25, &DeletedblocksSpec{})
	registerToServerType(0x31, &InventoryActionSpec{})
	registerToServerType(0x32, &TSChatMessageSpec{})
	registerToServerType(0x35, &DamageSpec{})
	registerToServerType(0x37, &PlayeritemSpec{})
	registerToServerType(0x38, &RespawnSpec{})
	registerToServerType(0x39, &InteractSpec{})
	registerToServerType(0x3a, &RemovedSoundsSpec{})
	registerToServerType(0x3b, &NodemetaFieldsSpec{})
	registerToServerType(0x3c, &InventoryFieldsSpec{})
	registerToServerType(0x40, &RequestMediaSpec{})
	registerToServerType(0x41, &HaveMediaSpec{})
	registerToServerType(0x43, &ClientReadySpec{})
	registerToServerType(0x50, &FirstSrpSpec{})
	registerToServerType(0x51, &SrpBytesASpec{})
	registerToServerType(0x52, &SrpBytesMSpec{})
	registerToServerType(0x53, &UpdateClientInfoSpec{})
}
