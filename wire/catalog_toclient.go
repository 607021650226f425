package wire

// ToClient command payloads and their opcode table. Field order within
// each Spec struct is the wire order; do not reorder without updating the
// matching Encode/Decode pair.

type HelloSpec struct {
	SerializationVer uint8
	CompressionMode  uint16
	ProtoVer         uint16
	AuthMechs        AuthMechsBitset
	UsernameLegacy   string
}

func encodeHello(w Writer, b ToClientBody) error {
	v := b.(*HelloSpec)
	if err := WriteU8(w, v.SerializationVer); err != nil {
		return err
	}
	if err := WriteU16(w, v.CompressionMode); err != nil {
		return err
	}
	if err := WriteU16(w, v.ProtoVer); err != nil {
		return err
	}
	if err := WriteAuthMechsBitset(w, v.AuthMechs); err != nil {
		return err
	}
	return WriteString(w, v.UsernameLegacy)
}

func decodeHello(r *Reader) (ToClientBody, error) {
	v := &HelloSpec{}
	var err error
	if v.SerializationVer, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.CompressionMode, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.ProtoVer, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.AuthMechs, err = ReadAuthMechsBitset(r); err != nil {
		return nil, err
	}
	v.UsernameLegacy, err = ReadString(r)
	return v, err
}

type AuthAcceptSpec struct {
	PlayerPos               V3F
	MapSeed                 uint64
	RecommendedSendInterval float32
	SudoAuthMethods         uint32
}

func encodeAuthAccept(w Writer, b ToClientBody) error {
	v := b.(*AuthAcceptSpec)
	if err := WriteV3F(w, v.PlayerPos); err != nil {
		return err
	}
	if err := WriteU64(w, v.MapSeed); err != nil {
		return err
	}
	if err := WriteF32(w, v.RecommendedSendInterval); err != nil {
		return err
	}
	return WriteU32(w, v.SudoAuthMethods)
}

func decodeAuthAccept(r *Reader) (ToClientBody, error) {
	v := &AuthAcceptSpec{}
	var err error
	if v.PlayerPos, err = ReadV3F(r); err != nil {
		return nil, err
	}
	if v.MapSeed, err = ReadU64(r); err != nil {
		return nil, err
	}
	if v.RecommendedSendInterval, err = ReadF32(r); err != nil {
		return nil, err
	}
	v.SudoAuthMethods, err = ReadU32(r)
	return v, err
}

type AcceptSudoModeSpec struct{}

func encodeAcceptSudoMode(w Writer, b ToClientBody) error { return nil }
func decodeAcceptSudoMode(r *Reader) (ToClientBody, error) { return &AcceptSudoModeSpec{}, nil }

type DenySudoModeSpec struct{}

func encodeDenySudoMode(w Writer, b ToClientBody) error  { return nil }
func decodeDenySudoMode(r *Reader) (ToClientBody, error) { return &DenySudoModeSpec{}, nil }

type AccessDeniedSpec struct {
	Code AccessDeniedCode
}

func encodeAccessDenied(w Writer, b ToClientBody) error {
	return WriteAccessDeniedCode(w, b.(*AccessDeniedSpec).Code)
}

func decodeAccessDenied(r *Reader) (ToClientBody, error) {
	code, err := ReadAccessDeniedCode(r)
	return &AccessDeniedSpec{Code: code}, err
}

type BlockdataSpec struct {
	Pos                    V3S16
	Block                  MapBlock
	NetworkSpecificVersion uint8
}

func encodeBlockdata(w Writer, b ToClientBody) error {
	v := b.(*BlockdataSpec)
	if err := WriteV3S16(w, v.Pos); err != nil {
		return err
	}
	if err := WriteMapBlock(w, v.Block); err != nil {
		return err
	}
	return WriteU8(w, v.NetworkSpecificVersion)
}

func decodeBlockdata(r *Reader) (ToClientBody, error) {
	v := &BlockdataSpec{}
	var err error
	if v.Pos, err = ReadV3S16(r); err != nil {
		return nil, err
	}
	if v.Block, err = ReadMapBlock(r); err != nil {
		return nil, err
	}
	v.NetworkSpecificVersion, err = ReadU8(r)
	return v, err
}

type AddnodeSpec struct {
	Pos          V3S16
	Node         MapNode
	KeepMetadata bool
}

func encodeAddnode(w Writer, b ToClientBody) error {
	v := b.(*AddnodeSpec)
	if err := WriteV3S16(w, v.Pos); err != nil {
		return err
	}
	if err := WriteMapNode(w, v.Node); err != nil {
		return err
	}
	return WriteBool(w, v.KeepMetadata)
}

func decodeAddnode(r *Reader) (ToClientBody, error) {
	v := &AddnodeSpec{}
	var err error
	if v.Pos, err = ReadV3S16(r); err != nil {
		return nil, err
	}
	if v.Node, err = ReadMapNode(r); err != nil {
		return nil, err
	}
	v.KeepMetadata, err = ReadBool(r)
	return v, err
}

type RemovenodeSpec struct {
	Pos V3S16
}

func encodeRemovenode(w Writer, b ToClientBody) error {
	return WriteV3S16(w, b.(*RemovenodeSpec).Pos)
}

func decodeRemovenode(r *Reader) (ToClientBody, error) {
	pos, err := ReadV3S16(r)
	return &RemovenodeSpec{Pos: pos}, err
}

type InventorySpec struct {
	Inventory Inventory
}

func encodeInventory(w Writer, b ToClientBody) error {
	return b.(*InventorySpec).Inventory.WriteTo(w)
}

func decodeInventory(r *Reader) (ToClientBody, error) {
	inv, err := ReadInventory(r)
	return &InventorySpec{Inventory: inv}, err
}

type TimeOfDaySpec struct {
	TimeOfDay  uint16
	TimeSpeed  *float32
}

func encodeTimeOfDay(w Writer, b ToClientBody) error {
	v := b.(*TimeOfDaySpec)
	if err := WriteU16(w, v.TimeOfDay); err != nil {
		return err
	}
	return WriteOptionTail(w, v.TimeSpeed, func(w Writer, f float32) error { return WriteF32(w, f) })
}

func decodeTimeOfDay(r *Reader) (ToClientBody, error) {
	v := &TimeOfDaySpec{}
	var err error
	if v.TimeOfDay, err = ReadU16(r); err != nil {
		return nil, err
	}
	v.TimeSpeed, err = ReadOptionTail(r, ReadF32)
	return v, err
}

type CsmRestrictionFlagsSpec struct {
	CsmRestrictionFlags     uint64
	CsmRestrictionNoderange uint32
}

func encodeCsmRestrictionFlags(w Writer, b ToClientBody) error {
	v := b.(*CsmRestrictionFlagsSpec)
	if err := WriteU64(w, v.CsmRestrictionFlags); err != nil {
		return err
	}
	return WriteU32(w, v.CsmRestrictionNoderange)
}

func decodeCsmRestrictionFlags(r *Reader) (ToClientBody, error) {
	v := &CsmRestrictionFlagsSpec{}
	var err error
	if v.CsmRestrictionFlags, err = ReadU64(r); err != nil {
		return nil, err
	}
	v.CsmRestrictionNoderange, err = ReadU32(r)
	return v, err
}

type PlayerSpeedSpec struct {
	AddedVel V3F
}

func encodePlayerSpeed(w Writer, b ToClientBody) error {
	return WriteV3F(w, b.(*PlayerSpeedSpec).AddedVel)
}

func decodePlayerSpeed(r *Reader) (ToClientBody, error) {
	v, err := ReadV3F(r)
	return &PlayerSpeedSpec{AddedVel: v}, err
}

type MediaPushSpec struct {
	RawHash  string
	Filename string
	Cached   bool
	Token    uint32
}

func encodeMediaPush(w Writer, b ToClientBody) error {
	v := b.(*MediaPushSpec)
	if err := WriteString(w, v.RawHash); err != nil {
		return err
	}
	if err := WriteString(w, v.Filename); err != nil {
		return err
	}
	if err := WriteBool(w, v.Cached); err != nil {
		return err
	}
	return WriteU32(w, v.Token)
}

func decodeMediaPush(r *Reader) (ToClientBody, error) {
	v := &MediaPushSpec{}
	var err error
	if v.RawHash, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.Filename, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.Cached, err = ReadBool(r); err != nil {
		return nil, err
	}
	v.Token, err = ReadU32(r)
	return v, err
}

type TCChatMessageSpec struct {
	Version     uint8
	MessageType uint8
	Sender      string
	Message     string
	Timestamp   uint64
}

func encodeTCChatMessage(w Writer, b ToClientBody) error {
	v := b.(*TCChatMessageSpec)
	if err := WriteU8(w, v.Version); err != nil {
		return err
	}
	if err := WriteU8(w, v.MessageType); err != nil {
		return err
	}
	if err := WriteWString(w, v.Sender); err != nil {
		return err
	}
	if err := WriteWString(w, v.Message); err != nil {
		return err
	}
	return WriteU64(w, v.Timestamp)
}

func decodeTCChatMessage(r *Reader) (ToClientBody, error) {
	v := &TCChatMessageSpec{}
	var err error
	if v.Version, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.MessageType, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.Sender, err = ReadWString(r); err != nil {
		return nil, err
	}
	if v.Message, err = ReadWString(r); err != nil {
		return nil, err
	}
	v.Timestamp, err = ReadU64(r)
	return v, err
}

type ActiveObjectRemoveAddSpec struct {
	RemovedObjectIds []uint16
	AddedObjects     []AddedObject
}

func encodeActiveObjectRemoveAdd(w Writer, b ToClientBody) error {
	v := b.(*ActiveObjectRemoveAddSpec)
	if err := WriteArray16(w, v.RemovedObjectIds, WriteU16); err != nil {
		return err
	}
	return WriteArray16(w, v.AddedObjects, WriteAddedObject)
}

func decodeActiveObjectRemoveAdd(r *Reader) (ToClientBody, error) {
	v := &ActiveObjectRemoveAddSpec{}
	var err error
	if v.RemovedObjectIds, err = ReadArray16(r, ReadU16); err != nil {
		return nil, err
	}
	v.AddedObjects, err = ReadArray16(r, ReadAddedObject)
	return v, err
}

type ActiveObjectMessagesSpec struct {
	Objects []ActiveObjectMessage
}

func encodeActiveObjectMessages(w Writer, b ToClientBody) error {
	return WriteArray0(w, b.(*ActiveObjectMessagesSpec).Objects, WriteActiveObjectMessage)
}

func decodeActiveObjectMessages(r *Reader) (ToClientBody, error) {
	objs, err := ReadArray0(r, ReadActiveObjectMessage)
	return &ActiveObjectMessagesSpec{Objects: objs}, err
}

type HpSpec struct {
	Hp           uint16
	DamageEffect *bool
}

func encodeHp(w Writer, b ToClientBody) error {
	v := b.(*HpSpec)
	if err := WriteU16(w, v.Hp); err != nil {
		return err
	}
	return WriteOptionTail(w, v.DamageEffect, WriteBool)
}

func decodeHp(r *Reader) (ToClientBody, error) {
	v := &HpSpec{}
	var err error
	if v.Hp, err = ReadU16(r); err != nil {
		return nil, err
	}
	v.DamageEffect, err = ReadOptionTail(r, ReadBool)
	return v, err
}

type MovePlayerSpec struct {
	Pos   V3F
	Pitch float32
	Yaw   float32
}

func encodeMovePlayer(w Writer, b ToClientBody) error {
	v := b.(*MovePlayerSpec)
	if err := WriteV3F(w, v.Pos); err != nil {
		return err
	}
	if err := WriteF32(w, v.Pitch); err != nil {
		return err
	}
	return WriteF32(w, v.Yaw)
}

func decodeMovePlayer(r *Reader) (ToClientBody, error) {
	v := &MovePlayerSpec{}
	var err error
	if v.Pos, err = ReadV3F(r); err != nil {
		return nil, err
	}
	if v.Pitch, err = ReadF32(r); err != nil {
		return nil, err
	}
	v.Yaw, err = ReadF32(r)
	return v, err
}

type AccessDeniedLegacySpec struct {
	Reason string
}

func encodeAccessDeniedLegacy(w Writer, b ToClientBody) error {
	return WriteWString(w, b.(*AccessDeniedLegacySpec).Reason)
}

func decodeAccessDeniedLegacy(r *Reader) (ToClientBody, error) {
	s, err := ReadWString(r)
	return &AccessDeniedLegacySpec{Reason: s}, err
}

type FovSpec struct {
	Fov            float32
	IsMultiplier   bool
	TransitionTime *float32
}

func encodeFov(w Writer, b ToClientBody) error {
	v := b.(*FovSpec)
	if err := WriteF32(w, v.Fov); err != nil {
		return err
	}
	if err := WriteBool(w, v.IsMultiplier); err != nil {
		return err
	}
	return WriteOptionTail(w, v.TransitionTime, func(w Writer, f float32) error { return WriteF32(w, f) })
}

func decodeFov(r *Reader) (ToClientBody, error) {
	v := &FovSpec{}
	var err error
	if v.Fov, err = ReadF32(r); err != nil {
		return nil, err
	}
	if v.IsMultiplier, err = ReadBool(r); err != nil {
		return nil, err
	}
	v.TransitionTime, err = ReadOptionTail(r, ReadF32)
	return v, err
}

type DeathscreenSpec struct {
	SetCameraPointTarget bool
	CameraPointTarget    V3F
}

func encodeDeathscreen(w Writer, b ToClientBody) error {
	v := b.(*DeathscreenSpec)
	if err := WriteBool(w, v.SetCameraPointTarget); err != nil {
		return err
	}
	return WriteV3F(w, v.CameraPointTarget)
}

func decodeDeathscreen(r *Reader) (ToClientBody, error) {
	v := &DeathscreenSpec{}
	var err error
	if v.SetCameraPointTarget, err = ReadBool(r); err != nil {
		return nil, err
	}
	v.CameraPointTarget, err = ReadV3F(r)
	return v, err
}

type MediaSpec struct {
	NumBunches uint16
	BunchIndex uint16
	Files      []MediaFileData
}

func encodeMedia(w Writer, b ToClientBody) error {
	v := b.(*MediaSpec)
	if err := WriteU16(w, v.NumBunches); err != nil {
		return err
	}
	if err := WriteU16(w, v.BunchIndex); err != nil {
		return err
	}
	return WriteArray32(w, v.Files, WriteMediaFileData)
}

func decodeMedia(r *Reader) (ToClientBody, error) {
	v := &MediaSpec{}
	var err error
	if v.NumBunches, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.BunchIndex, err = ReadU16(r); err != nil {
		return nil, err
	}
	v.Files, err = ReadArray32(r, ReadMediaFileData)
	return v, err
}

type NodedefSpec struct {
	NodeDef NodeDefManager
}

func encodeNodedef(w Writer, b ToClientBody) error {
	v := b.(*NodedefSpec)
	return WriteZlibWrapped(w, func(w Writer) error { return WriteNodeDefManager(w, v.NodeDef) })
}

func decodeNodedef(r *Reader) (ToClientBody, error) {
	nd, err := ReadZlibWrapped(r, ReadNodeDefManager)
	return &NodedefSpec{NodeDef: nd}, err
}

type AnnounceMediaSpec struct {
	Files         []MediaAnnouncement
	RemoteServers string
}

func encodeAnnounceMedia(w Writer, b ToClientBody) error {
	v := b.(*AnnounceMediaSpec)
	if err := WriteArray16(w, v.Files, WriteMediaAnnouncement); err != nil {
		return err
	}
	return WriteString(w, v.RemoteServers)
}

func decodeAnnounceMedia(r *Reader) (ToClientBody, error) {
	v := &AnnounceMediaSpec{}
	var err error
	if v.Files, err = ReadArray16(r, ReadMediaAnnouncement); err != nil {
		return nil, err
	}
	v.RemoteServers, err = ReadString(r)
	return v, err
}

type ItemdefSpec struct {
	ItemDef ItemdefList
}

func encodeItemdef(w Writer, b ToClientBody) error {
	v := b.(*ItemdefSpec)
	return WriteZlibWrapped(w, func(w Writer) error { return WriteItemdefList(w, v.ItemDef) })
}

func decodeItemdef(r *Reader) (ToClientBody, error) {
	def, err := ReadZlibWrapped(r, ReadItemdefList)
	return &ItemdefSpec{ItemDef: def}, err
}

type PlaySoundSpec struct {
	ServerId   int32
	SpecName   string
	SpecGain   float32
	Typ        uint8
	Pos        V3F
	ObjectId   uint16
	SpecLoop   bool
	SpecFade   *float32
	SpecPitch  *float32
	Ephemeral  *bool
}

func encodePlaySound(w Writer, b ToClientBody) error {
	v := b.(*PlaySoundSpec)
	if err := WriteS32(w, v.ServerId); err != nil {
		return err
	}
	if err := WriteString(w, v.SpecName); err != nil {
		return err
	}
	if err := WriteF32(w, v.SpecGain); err != nil {
		return err
	}
	if err := WriteU8(w, v.Typ); err != nil {
		return err
	}
	if err := WriteV3F(w, v.Pos); err != nil {
		return err
	}
	if err := WriteU16(w, v.ObjectId); err != nil {
		return err
	}
	if err := WriteBool(w, v.SpecLoop); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.SpecFade, func(w Writer, f float32) error { return WriteF32(w, f) }); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.SpecPitch, func(w Writer, f float32) error { return WriteF32(w, f) }); err != nil {
		return err
	}
	return WriteOptionTail(w, v.Ephemeral, WriteBool)
}

func decodePlaySound(r *Reader) (ToClientBody, error) {
	v := &PlaySoundSpec{}
	var err error
	if v.ServerId, err = ReadS32(r); err != nil {
		return nil, err
	}
	if v.SpecName, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.SpecGain, err = ReadF32(r); err != nil {
		return nil, err
	}
	if v.Typ, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.Pos, err = ReadV3F(r); err != nil {
		return nil, err
	}
	if v.ObjectId, err = ReadU16(r); err != nil {
		return nil, err
	}
	if v.SpecLoop, err = ReadBool(r); err != nil {
		return nil, err
	}
	if v.SpecFade, err = ReadOptionTail(r, ReadF32); err != nil {
		return nil, err
	}
	if v.SpecPitch, err = ReadOptionTail(r, ReadF32); err != nil {
		return nil, err
	}
	v.Ephemeral, err = ReadOptionTail(r, ReadBool)
	return v, err
}

type StopSoundSpec struct {
	ServerId int32
}

func encodeStopSound(w Writer, b ToClientBody) error {
	return WriteS32(w, b.(*StopSoundSpec).ServerId)
}

func decodeStopSound(r *Reader) (ToClientBody, error) {
	v, err := ReadS32(r)
	return &StopSoundSpec{ServerId: v}, err
}

type PrivilegesSpec struct {
	Privileges []string
}

func encodePrivileges(w Writer, b ToClientBody) error {
	return WriteArray16(w, b.(*PrivilegesSpec).Privileges, WriteString)
}

func decodePrivileges(r *Reader) (ToClientBody, error) {
	v, err := ReadArray16(r, ReadString)
	return &PrivilegesSpec{Privileges: v}, err
}

type InventoryFormspecSpec struct {
	Formspec string
}

func encodeInventoryFormspec(w Writer, b ToClientBody) error {
	return WriteLongString(w, b.(*InventoryFormspecSpec).Formspec)
}

func decodeInventoryFormspec(r *Reader) (ToClientBody, error) {
	s, err := ReadLongString(r)
	return &InventoryFormspecSpec{Formspec: s}, err
}

type DetachedInventorySpec struct {
	Name     string
	KeepInv  bool
	Ignore   *uint16
	Contents *Inventory
}

func encodeDetachedInventory(w Writer, b ToClientBody) error {
	v := b.(*DetachedInventorySpec)
	if err := WriteString(w, v.Name); err != nil {
		return err
	}
	if err := WriteBool(w, v.KeepInv); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.Ignore, WriteU16); err != nil {
		return err
	}
	return WriteOptionTail(w, v.Contents, func(w Writer, inv Inventory) error { return inv.WriteTo(w) })
}

func decodeDetachedInventory(r *Reader) (ToClientBody, error) {
	v := &DetachedInventorySpec{}
	var err error
	if v.Name, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.KeepInv, err = ReadBool(r); err != nil {
		return nil, err
	}
	if v.Ignore, err = ReadOptionTail(r, ReadU16); err != nil {
		return nil, err
	}
	v.Contents, err = ReadOptionTail(r, ReadInventory)
	return v, err
}

type ShowFormspecSpec struct {
	FormSpec string
	FormName string
}

func encodeShowFormspec(w Writer, b ToClientBody) error {
	v := b.(*ShowFormspecSpec)
	if err := WriteLongString(w, v.FormSpec); err != nil {
		return err
	}
	return WriteString(w, v.FormName)
}

func decodeShowFormspec(r *Reader) (ToClientBody, error) {
	v := &ShowFormspecSpec{}
	var err error
	if v.FormSpec, err = ReadLongString(r); err != nil {
		return nil, err
	}
	v.FormName, err = ReadString(r)
	return v, err
}

type MovementSpec struct {
	AccelerationDefault  float32
	AccelerationAir      float32
	AccelerationFast     float32
	SpeedWalk            float32
	SpeedCrouch          float32
	SpeedFast            float32
	SpeedClimb           float32
	SpeedJump            float32
	LiquidFluidity       float32
	LiquidFluiditySmooth float32
	LiquidSink           float32
	Gravity              float32
}

func encodeMovement(w Writer, b ToClientBody) error {
	v := b.(*MovementSpec)
	fields := []float32{
		v.AccelerationDefault, v.AccelerationAir, v.AccelerationFast, v.SpeedWalk,
		v.SpeedCrouch, v.SpeedFast, v.SpeedClimb, v.SpeedJump, v.LiquidFluidity,
		v.LiquidFluiditySmooth, v.LiquidSink, v.Gravity,
	}
	for _, f := range fields {
		if err := WriteF32(w, f); err != nil {
			return err
		}
	}
	return nil
}

func decodeMovement(r *Reader) (ToClientBody, error) {
	var fields [12]float32
	for i := range fields {
		f, err := ReadF32(r)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return &MovementSpec{
		AccelerationDefault: fields[0], AccelerationAir: fields[1], AccelerationFast: fields[2],
		SpeedWalk: fields[3], SpeedCrouch: fields[4], SpeedFast: fields[5], SpeedClimb: fields[6],
		SpeedJump: fields[7], LiquidFluidity: fields[8], LiquidFluiditySmooth: fields[9],
		LiquidSink: fields[10], Gravity: fields[11],
	}, nil
}

type SpawnParticleSpec struct {
	Data ParticleParameters
}

func encodeSpawnParticle(w Writer, b ToClientBody) error {
	return WriteParticleParameters(w, b.(*SpawnParticleSpec).Data)
}

func decodeSpawnParticle(r *Reader) (ToClientBody, error) {
	d, err := ReadParticleParameters(r)
	return &SpawnParticleSpec{Data: d}, err
}

type AddParticlespawnerSpec struct {
	Legacy AddParticleSpawnerLegacy
}

func encodeAddParticlespawner(w Writer, b ToClientBody) error {
	return WriteAddParticleSpawnerLegacy(w, b.(*AddParticlespawnerSpec).Legacy)
}

func decodeAddParticlespawner(r *Reader) (ToClientBody, error) {
	l, err := ReadAddParticleSpawnerLegacy(r)
	return &AddParticlespawnerSpec{Legacy: l}, err
}

type HudaddSpec struct {
	ServerId  uint32
	Typ       uint8
	Pos       V2F
	Name      string
	Scale     V2F
	Text      string
	Number    uint32
	Item      uint32
	Dir       uint32
	Align     V2F
	Offset    V2F
	WorldPos  *V3F
	Size      *V2S32
	ZIndex    *int16
	Text2     *string
	Style     *uint32
}

func encodeHudadd(w Writer, b ToClientBody) error {
	v := b.(*HudaddSpec)
	if err := WriteU32(w, v.ServerId); err != nil {
		return err
	}
	if err := WriteU8(w, v.Typ); err != nil {
		return err
	}
	if err := WriteV2F(w, v.Pos); err != nil {
		return err
	}
	if err := WriteString(w, v.Name); err != nil {
		return err
	}
	if err := WriteV2F(w, v.Scale); err != nil {
		return err
	}
	if err := WriteString(w, v.Text); err != nil {
		return err
	}
	if err := WriteU32(w, v.Number); err != nil {
		return err
	}
	if err := WriteU32(w, v.Item); err != nil {
		return err
	}
	if err := WriteU32(w, v.Dir); err != nil {
		return err
	}
	if err := WriteV2F(w, v.Align); err != nil {
		return err
	}
	if err := WriteV2F(w, v.Offset); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.WorldPos, WriteV3F); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.Size, WriteV2S32); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.ZIndex, WriteS16); err != nil {
		return err
	}
	if err := WriteOptionTail(w, v.Text2, WriteString); err != nil {
		return err
	}
	return WriteOptionTail(w, v.Style, WriteU32)
}

func decodeHudadd(r *Reader) (ToClientBody, error) {
	v := &HudaddSpec{}
	var err error
	if v.ServerId, err = ReadU32(r); err != nil {
		return nil, err
	}
	if v.Typ, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.Pos, err = ReadV2F(r); err != nil {
		return nil, err
	}
	if v.Name, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.Scale, err = ReadV2F(r); err != nil {
		return nil, err
	}
	if v.Text, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.Number, err = ReadU32(r); err != nil {
		return nil, err
	}
	if v.Item, err = ReadU32(r); err != nil {
		return nil, err
	}
	if v.Dir, err = ReadU32(r); err != nil {
		return nil, err
	}
	if v.Align, err = ReadV2F(r); err != nil {
		return nil, err
	}
	if v.Offset, err = ReadV2F(r); err != nil {
		return nil, err
	}
	if v.WorldPos, err = ReadOptionTail(r, ReadV3F); err != nil {
		return nil, err
	}
	if v.Size, err = ReadOptionTail(r, ReadV2S32); err != nil {
		return nil, err
	}
	if v.ZIndex, err = ReadOptionTail(r, ReadS16); err != nil {
		return nil, err
	}
	if v.Text2, err = ReadOptionTail(r, ReadString); err != nil {
		return nil, err
	}
	v.Style, err = ReadOptionTail(r, ReadU32)
	return v, err
}

type HudrmSpec struct {
	ServerId uint32
}

func encodeHudrm(w Writer, b ToClientBody) error { return WriteU32(w, b.(*HudrmSpec).ServerId) }
func decodeHudrm(r *Reader) (ToClientBody, error) {
	v, err := ReadU32(r)
	return &HudrmSpec{ServerId: v}, err
}

type HudchangeSpec struct {
	ServerId uint32
	Stat     HudStat
}

func encodeHudchange(w Writer, b ToClientBody) error {
	v := b.(*HudchangeSpec)
	if err := WriteU32(w, v.ServerId); err != nil {
		return err
	}
	return WriteHudStatField(w, v.Stat)
}

func decodeHudchange(r *Reader) (ToClientBody, error) {
	v := &HudchangeSpec{}
	var err error
	if v.ServerId, err = ReadU32(r); err != nil {
		return nil, err
	}
	v.Stat, err = ReadHudStatField(r)
	return v, err
}

type HudSetFlagsSpec struct {
	Flags HudFlags
	Mask  HudFlags
}

func encodeHudSetFlags(w Writer, b ToClientBody) error {
	v := b.(*HudSetFlagsSpec)
	if err := WriteHudFlags(w, v.Flags); err != nil {
		return err
	}
	return WriteHudFlags(w, v.Mask)
}

func decodeHudSetFlags(r *Reader) (ToClientBody, error) {
	v := &HudSetFlagsSpec{}
	var err error
	if v.Flags, err = ReadHudFlags(r); err != nil {
		return nil, err
	}
	v.Mask, err = ReadHudFlags(r)
	return v, err
}

type HudSetParamSpec struct {
	Value HudSetParam
}

func encodeHudSetParam(w Writer, b ToClientBody) error {
	return WriteHudSetParamValue(w, b.(*HudSetParamSpec).Value)
}

func decodeHudSetParam(r *Reader) (ToClientBody, error) {
	v, err := ReadHudSetParamValue(r)
	return &HudSetParamSpec{Value: v}, err
}

type BreathSpec struct {
	Breath uint16
}

func encodeBreath(w Writer, b ToClientBody) error { return WriteU16(w, b.(*BreathSpec).Breath) }
func decodeBreath(r *Reader) (ToClientBody, error) {
	v, err := ReadU16(r)
	return &BreathSpec{Breath: v}, err
}

type SetSkySpec struct {
	Params SkyboxParams
}

func encodeSetSky(w Writer, b ToClientBody) error {
	return WriteSkyboxParams(w, b.(*SetSkySpec).Params)
}

func decodeSetSky(r *Reader) (ToClientBody, error) {
	p, err := ReadSkyboxParams(r)
	return &SetSkySpec{Params: p}, err
}

type OverrideDayNightRatioSpec struct {
	DoOverride    bool
	DayNightRatio uint16
}

func encodeOverrideDayNightRatio(w Writer, b ToClientBody) error {
	v := b.(*OverrideDayNightRatioSpec)
	if err := WriteBool(w, v.DoOverride); err != nil {
		return err
	}
	return WriteU16(w, v.DayNightRatio)
}

func decodeOverrideDayNightRatio(r *Reader) (ToClientBody, error) {
	v := &OverrideDayNightRatioSpec{}
	var err error
	if v.DoOverride, err = ReadBool(r); err != nil {
		return nil, err
	}
	v.DayNightRatio, err = ReadU16(r)
	return v, err
}

type LocalPlayerAnimationsSpec struct {
	Idle        V2S32
	Walk        V2S32
	Dig         V2S32
	WalkDig     V2S32
	FrameSpeed  float32
}

func encodeLocalPlayerAnimations(w Writer, b ToClientBody) error {
	v := b.(*LocalPlayerAnimationsSpec)
	if err := WriteV2S32(w, v.Idle); err != nil {
		return err
	}
	if err := WriteV2S32(w, v.Walk); err != nil {
		return err
	}
	if err := WriteV2S32(w, v.Dig); err != nil {
		return err
	}
	if err := WriteV2S32(w, v.WalkDig); err != nil {
		return err
	}
	return WriteF32(w, v.FrameSpeed)
}

func decodeLocalPlayerAnimations(r *Reader) (ToClientBody, error) {
	v := &LocalPlayerAnimationsSpec{}
	var err error
	if v.Idle, err = ReadV2S32(r); err != nil {
		return nil, err
	}
	if v.Walk, err = ReadV2S32(r); err != nil {
		return nil, err
	}
	if v.Dig, err = ReadV2S32(r); err != nil {
		return nil, err
	}
	if v.WalkDig, err = ReadV2S32(r); err != nil {
		return nil, err
	}
	v.FrameSpeed, err = ReadF32(r)
	return v, err
}

type EyeOffsetSpec struct {
	EyeOffsetFirst V3F
	EyeOffsetThird V3F
}

func encodeEyeOffset(w Writer, b ToClientBody) error {
	v := b.(*EyeOffsetSpec)
	if err := WriteV3F(w, v.EyeOffsetFirst); err != nil {
		return err
	}
	return WriteV3F(w, v.EyeOffsetThird)
}

func decodeEyeOffset(r *Reader) (ToClientBody, error) {
	v := &EyeOffsetSpec{}
	var err error
	if v.EyeOffsetFirst, err = ReadV3F(r); err != nil {
		return nil, err
	}
	v.EyeOffsetThird, err = ReadV3F(r)
	return v, err
}

type DeleteParticlespawnerSpec struct {
	ServerId uint32
}

func encodeDeleteParticlespawner(w Writer, b ToClientBody) error {
	return WriteU32(w, b.(*DeleteParticlespawnerSpec).ServerId)
}

func decodeDeleteParticlespawner(r *Reader) (ToClientBody, error) {
	v, err := ReadU32(r)
	return &DeleteParticlespawnerSpec{ServerId: v}, err
}

type CloudParamsSpec struct {
	Density      float32
	ColorBright  SColor
	ColorAmbient SColor
	Height       float32
	Thickness    float32
	Speed        V2F
}

func encodeCloudParams(w Writer, b ToClientBody) error {
	v := b.(*CloudParamsSpec)
	if err := WriteF32(w, v.Density); err != nil {
		return err
	}
	if err := WriteSColor(w, v.ColorBright); err != nil {
		return err
	}
	if err := WriteSColor(w, v.ColorAmbient); err != nil {
		return err
	}
	if err := WriteF32(w, v.Height); err != nil {
		return err
	}
	if err := WriteF32(w, v.Thickness); err != nil {
		return err
	}
	return WriteV2F(w, v.Speed)
}

func decodeCloudParams(r *Reader) (ToClientBody, error) {
	v := &CloudParamsSpec{}
	var err error
	if v.Density, err = ReadF32(r); err != nil {
		return nil, err
	}
	if v.ColorBright, err = ReadSColor(r); err != nil {
		return nil, err
	}
	if v.ColorAmbient, err = ReadSColor(r); err != nil {
		return nil, err
	}
	if v.Height, err = ReadF32(r); err != nil {
		return nil, err
	}
	if v.Thickness, err = ReadF32(r); err != nil {
		return nil, err
	}
	v.Speed, err = ReadV2F(r)
	return v, err
}

type FadeSoundSpec struct {
	SoundId int32
	Step    float32
	Gain    float32
}

func encodeFadeSound(w Writer, b ToClientBody) error {
	v := b.(*FadeSoundSpec)
	if err := WriteS32(w, v.SoundId); err != nil {
		return err
	}
	if err := WriteF32(w, v.Step); err != nil {
		return err
	}
	return WriteF32(w, v.Gain)
}

func decodeFadeSound(r *Reader) (ToClientBody, error) {
	v := &FadeSoundSpec{}
	var err error
	if v.SoundId, err = ReadS32(r); err != nil {
		return nil, err
	}
	if v.Step, err = ReadF32(r); err != nil {
		return nil, err
	}
	v.Gain, err = ReadF32(r)
	return v, err
}

type UpdatePlayerListSpec struct {
	Typ     uint8
	Players []string
}

func encodeUpdatePlayerList(w Writer, b ToClientBody) error {
	v := b.(*UpdatePlayerListSpec)
	if err := WriteU8(w, v.Typ); err != nil {
		return err
	}
	return WriteArray16(w, v.Players, WriteString)
}

func decodeUpdatePlayerList(r *Reader) (ToClientBody, error) {
	v := &UpdatePlayerListSpec{}
	var err error
	if v.Typ, err = ReadU8(r); err != nil {
		return nil, err
	}
	v.Players, err = ReadArray16(r, ReadString)
	return v, err
}

type TCModchannelMsgSpec struct {
	ChannelName string
	Sender      string
	ChannelMsg  string
}

func encodeTCModchannelMsg(w Writer, b ToClientBody) error {
	v := b.(*TCModchannelMsgSpec)
	if err := WriteString(w, v.ChannelName); err != nil {
		return err
	}
	if err := WriteString(w, v.Sender); err != nil {
		return err
	}
	return WriteString(w, v.ChannelMsg)
}

func decodeTCModchannelMsg(r *Reader) (ToClientBody, error) {
	v := &TCModchannelMsgSpec{}
	var err error
	if v.ChannelName, err = ReadString(r); err != nil {
		return nil, err
	}
	if v.Sender, err = ReadString(r); err != nil {
		return nil, err
	}
	v.ChannelMsg, err = ReadString(r)
	return v, err
}

type ModchannelSignalSpec struct {
	SignalTmp uint8
	Channel   string
	State     *uint8
}

func encodeModchannelSignal(w Writer, b ToClientBody) error {
	v := b.(*ModchannelSignalSpec)
	if err := WriteU8(w, v.SignalTmp); err != nil {
		return err
	}
	if err := WriteString(w, v.Channel); err != nil {
		return err
	}
	return WriteOptionTail(w, v.State, WriteU8)
}

func decodeModchannelSignal(r *Reader) (ToClientBody, error) {
	v := &ModchannelSignalSpec{}
	var err error
	if v.SignalTmp, err = ReadU8(r); err != nil {
		return nil, err
	}
	if v.Channel, err = ReadString(r); err != nil {
		return nil, err
	}
	v.State, err = ReadOptionTail(r, ReadU8)
	return v, err
}

type NodemetaChangedSpec struct {
	List AbsNodeMetadataList
}

func encodeNodemetaChanged(w Writer, b ToClientBody) error {
	v := b.(*NodemetaChangedSpec)
	return WriteZlibWrapped(w, func(w Writer) error { return WriteAbsNodeMetadataList(w, v.List) })
}

func decodeNodemetaChanged(r *Reader) (ToClientBody, error) {
	l, err := ReadZlibWrapped(r, ReadAbsNodeMetadataList)
	return &NodemetaChangedSpec{List: l}, err
}

type SetSunSpec struct {
	Sun SunParams
}

func encodeSetSun(w Writer, b ToClientBody) error { return WriteSunParams(w, b.(*SetSunSpec).Sun) }
func decodeSetSun(r *Reader) (ToClientBody, error) {
	s, err := ReadSunParams(r)
	return &SetSunSpec{Sun: s}, err
}

type SetMoonSpec struct {
	Moon MoonParams
}

func encodeSetMoon(w Writer, b ToClientBody) error {
	return WriteMoonParams(w, b.(*SetMoonSpec).Moon)
}

func decodeSetMoon(r *Reader) (ToClientBody, error) {
	m, err := ReadMoonParams(r)
	return &SetMoonSpec{Moon: m}, err
}

type SetStarsSpec struct {
	Stars StarParams
}

func encodeSetStars(w Writer, b ToClientBody) error {
	return WriteStarParams(w, b.(*SetStarsSpec).Stars)
}

func decodeSetStars(r *Reader) (ToClientBody, error) {
	s, err := ReadStarParams(r)
	return &SetStarsSpec{Stars: s}, err
}

type SrpBytesSBSpec struct {
	S []byte
	B []byte
}

func encodeSrpBytesSB(w Writer, b ToClientBody) error {
	v := b.(*SrpBytesSBSpec)
	if err := WriteBinaryData16(w, v.S); err != nil {
		return err
	}
	return WriteBinaryData16(w, v.B)
}

func decodeSrpBytesSB(r *Reader) (ToClientBody, error) {
	v := &SrpBytesSBSpec{}
	var err error
	if v.S, err = ReadBinaryData16(r); err != nil {
		return nil, err
	}
	v.B, err = ReadBinaryData16(r)
	return v, err
}

type FormspecPrependSpec struct {
	FormspecPrepend string
}

func encodeFormspecPrepend(w Writer, b ToClientBody) error {
	return WriteString(w, b.(*FormspecPrependSpec).FormspecPrepend)
}

func decodeFormspecPrepend(r *Reader) (ToClientBody, error) {
	s, err := ReadString(r)
	return &FormspecPrependSpec{FormspecPrepend: s}, err
}

type MinimapModesSpec struct {
	Modes MinimapModeList
}

func encodeMinimapModes(w Writer, b ToClientBody) error {
	return WriteMinimapModeList(w, b.(*MinimapModesSpec).Modes)
}

func decodeMinimapModes(r *Reader) (ToClientBody, error) {
	m, err := ReadMinimapModeList(r)
	return &MinimapModesSpec{Modes: m}, err
}

type SetLightingSpec struct {
	Lighting Lighting
}

func encodeSetLighting(w Writer, b ToClientBody) error {
	return WriteLighting(w, b.(*SetLightingSpec).Lighting)
}

func decodeSetLighting(r *Reader) (ToClientBody, error) {
	l, err := ReadLighting(r)
	return &SetLightingSpec{Lighting: l}, err
}

var toClientTable = map[uint16]toClientEntry{
	0x02: {"Hello", 0, true, encodeHello, decodeHello},
	0x03: {"AuthAccept", 0, true, encodeAuthAccept, decodeAuthAccept},
	0x04: {"AcceptSudoMode", 0, true, encodeAcceptSudoMode, decodeAcceptSudoMode},
	0x05: {"DenySudoMode", 0, true, encodeDenySudoMode, decodeDenySudoMode},
	0x0A: {"AccessDenied", 0, true, encodeAccessDenied, decodeAccessDenied},
	0x20: {"Blockdata", 2, true, encodeBlockdata, decodeBlockdata},
	0x21: {"Addnode", 0, true, encodeAddnode, decodeAddnode},
	0x22: {"Removenode", 0, true, encodeRemovenode, decodeRemovenode},
	0x27: {"Inventory", 0, true, encodeInventory, decodeInventory},
	0x29: {"TimeOfDay", 0, true, encodeTimeOfDay, decodeTimeOfDay},
	0x2A: {"CsmRestrictionFlags", 0, true, encodeCsmRestrictionFlags, decodeCsmRestrictionFlags},
	0x2B: {"PlayerSpeed", 0, true, encodePlayerSpeed, decodePlayerSpeed},
	0x2C: {"MediaPush", 0, true, encodeMediaPush, decodeMediaPush},
	0x2F: {"TCChatMessage", 0, true, encodeTCChatMessage, decodeTCChatMessage},
	0x31: {"ActiveObjectRemoveAdd", 0, true, encodeActiveObjectRemoveAdd, decodeActiveObjectRemoveAdd},
	0x32: {"ActiveObjectMessages", 0, true, encodeActiveObjectMessages, decodeActiveObjectMessages},
	0x33: {"Hp", 0, true, encodeHp, decodeHp},
	0x34: {"MovePlayer", 0, true, encodeMovePlayer, decodeMovePlayer},
	0x35: {"AccessDeniedLegacy", 0, true, encodeAccessDeniedLegacy, decodeAccessDeniedLegacy},
	0x36: {"Fov", 0, true, encodeFov, decodeFov},
	0x37: {"Deathscreen", 0, true, encodeDeathscreen, decodeDeathscreen},
	0x38: {"Media", 2, true, encodeMedia, decodeMedia},
	0x3a: {"Nodedef", 0, true, encodeNodedef, decodeNodedef},
	0x3c: {"AnnounceMedia", 0, true, encodeAnnounceMedia, decodeAnnounceMedia},
	0x3d: {"Itemdef", 0, true, encodeItemdef, decodeItemdef},
	0x3f: {"PlaySound", 0, true, encodePlaySound, decodePlaySound},
	0x40: {"StopSound", 0, true, encodeStopSound, decodeStopSound},
	0x41: {"Privileges", 0, true, encodePrivileges, decodePrivileges},
	0x42: {"InventoryFormspec", 0, true, encodeInventoryFormspec, decodeInventoryFormspec},
	0x43: {"DetachedInventory", 0, true, encodeDetachedInventory, decodeDetachedInventory},
	0x44: {"ShowFormspec", 0, true, encodeShowFormspec, decodeShowFormspec},
	0x45: {"Movement", 0, true, encodeMovement, decodeMovement},
	0x46: {"SpawnParticle", 0, true, encodeSpawnParticle, decodeSpawnParticle},
	0x47: {"AddParticlespawner", 0, true, encodeAddParticlespawner, decodeAddParticlespawner},
	0x49: {"Hudadd", 1, true, encodeHudadd, decodeHudadd},
	0x4a: {"Hudrm", 1, true, encodeHudrm, decodeHudrm},
	0x4b: {"Hudchange", 1, true, encodeHudchange, decodeHudchange},
	0x4c: {"HudSetFlags", 1, true, encodeHudSetFlags, decodeHudSetFlags},
	0x4d: {"HudSetParam", 1, true, encodeHudSetParam, decodeHudSetParam},
	0x4e: {"Breath", 0, true, encodeBreath, decodeBreath},
	0x4f: {"SetSky", 0, true, encodeSetSky, decodeSetSky},
	0x50: {"OverrideDayNightRatio", 0, true, encodeOverrideDayNightRatio, decodeOverrideDayNightRatio},
	0x51: {"LocalPlayerAnimations", 0, true, encodeLocalPlayerAnimations, decodeLocalPlayerAnimations},
	0x52: {"EyeOffset", 0, true, encodeEyeOffset, decodeEyeOffset},
	0x53: {"DeleteParticlespawner", 0, true, encodeDeleteParticlespawner, decodeDeleteParticlespawner},
	0x54: {"CloudParams", 0, true, encodeCloudParams, decodeCloudParams},
	0x55: {"FadeSound", 0, true, encodeFadeSound, decodeFadeSound},
	0x56: {"UpdatePlayerList", 0, true, encodeUpdatePlayerList, decodeUpdatePlayerList},
	0x57: {"TCModchannelMsg", 0, true, encodeTCModchannelMsg, decodeTCModchannelMsg},
	0x58: {"ModchannelSignal", 0, true, encodeModchannelSignal, decodeModchannelSignal},
	0x59: {"NodemetaChanged", 0, true, encodeNodemetaChanged, decodeNodemetaChanged},
	0x5a: {"SetSun", 0, true, encodeSetSun, decodeSetSun},
	0x5b: {"SetMoon", 0, true, encodeSetMoon, decodeSetMoon},
	0x5c: {"SetStars", 0, true, encodeSetStars, decodeSetStars},
	0x60: {"SrpBytesSB", 0, true, encodeSrpBytesSB, decodeSrpBytesSB},
	0x61: {"FormspecPrepend", 0, true, encodeFormspecPrepend, decodeFormspecPrepend},
	0x62: {"MinimapModes", 0, true, encodeMinimapModes, decodeMinimapModes},
	0x63: {"SetLighting", 0, true, encodeSetLighting, decodeSetLighting},
}

func init() {
	registerToClientType(0x02, &HelloSpec{})
	registerToClientType(0x03, &AuthAcceptSpec{})
	registerToClientType(0x04, &AcceptSudoModeSpec{})
	registerToClientType(0x05, &DenySudoModeSpec{})
	registerToClientType(0x0A, &AccessDeniedSpec{})
	registerToClientType(0x20, &BlockdataSpec{})
	registerToClientType(0x21, &AddnodeSpec{})
	registerToClientType(0x22, &RemovenodeSpec{})
	registerToClientType(0x27, &InventorySpec{})
	registerToClientType(0x29, &TimeOfDaySpec{})
	registerToClientType(0x2A, &CsmRestrictionFlagsSpec{})
	registerToClientType(0x2B, &PlayerSpeedSpec{})
	registerToClientType(0x2C, &MediaPushSpec{})
	registerToClientType(0x2F, &TCChatMessageSpec{})
	registerToClientType(0x31, &ActiveObjectRemoveAddSpec{})
	registerToClientType(0x32, &ActiveObjectMessagesSpec{})
	registerToClientType(0x33, &HpSpec{})
	registerToClientType(0x34, &MovePlayerSpec{})
	registerToClientType(0x35, &AccessDeniedLegacySpec{})
	registerToClientType(0x36, &FovSpec{})
	registerToClientType(0x37, &DeathscreenSpec{})
	registerToClientType(0x38, &MediaSpec{})
	registerToClientType(0x3a, &NodedefSpec{})
	registerToClientType(0x3c, &AnnounceMediaSpec{})
	registerToClientType(0x3d, &ItemdefSpec{})
	registerToClientType(0x3f, &PlaySoundSpec{})
	registerToClientType(0x40, &StopSoundSpec{})
	registerToClientType(0x41, &PrivilegesSpec{})
	registerToClientType(0x42, &InventoryFormspecSpec{})
	registerToClientType(0x43, &DetachedInventorySpec{})
	registerToClientType(0x44, &ShowFormspecSpec{})
	registerToClientType(0x45, &MovementSpec{})
	registerToClientType(0x46, &SpawnParticleSpec{})
	registerToClientType(0x47, &AddParticlespawnerSpec{})
	registerToClientType(0x49, &HudaddSpec{})
	registerToClientType(0x4a, &HudrmSpec{})
	registerToClientType(0x4b, &HudchangeSpec{})
	registerToClientType(0x4c, &HudSetFlagsSpec{})
	registerToClientType(0x4d, &HudSetParamSpec{})
	registerToClientType(0x4e, &BreathSpec{})
	registerToClientType(0x4f, &SetSkySpec{})
	registerToClientType(0x50, &OverrideDayNightRatioSpec{})
	registerToClientType(0x51, &LocalPlayerAnimationsSpec{})
	registerToClientType(0x52, &EyeOffsetSpec{})
	registerToClientType(0x53, &DeleteParticlespawnerSpec{})
	registerToClientType(0x54, &CloudParamsSpec{})
	registerToClientType(0x55, &FadeSoundSpec{})
	registerToClientType(0x56, &UpdatePlayerListSpec{})
	registerToClientType(0x57, &TCModchannelMsgSpec{})
	registerToClientType(0x58, &ModchannelSignalSpec{})
	registerToClientType(0x59, &NodemetaChangedSpec{})
	registerToClientType(0x5a, &SetSunSpec{})
	registerToClientType(0x5b, &SetMoonSpec{})
	registerToClientType(0x5c, &SetStarsSpec{})
	registerToClientType(0x60, &SrpBytesSBSpec{})
	registerToClientType(0x61, &FormspecPrependSpec{})
	registerToClientType(0x62, &MinimapModesSpec{})
	registerToClientType(0x63, &SetLightingSpec{})
}
