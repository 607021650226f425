package wire

import (
	"github.com/pkg/errors"
)

// MediaFileData is one raw media payload inside a Media command.
type MediaFileData struct {
	Name string
	Data []byte
}

func WriteMediaFileData(w Writer, v MediaFileData) error {
	if err := WriteString(w, v.Name); err != nil {
		return err
	}
	return WriteBinaryData32(w, v.Data)
}

func ReadMediaFileData(r *Reader) (MediaFileData, error) {
	name, err := ReadString(r)
	if err != nil {
		return MediaFileData{}, err
	}
	data, err := ReadBinaryData32(r)
	return MediaFileData{Name: name, Data: data}, err
}

// MediaAnnouncement advertises a media file's checksum without its bytes.
type MediaAnnouncement struct {
	Name        string
	Sha1Base64  string
}

func WriteMediaAnnouncement(w Writer, v MediaAnnouncement) error {
	if err := WriteString(w, v.Name); err != nil {
		return err
	}
	return WriteString(w, v.Sha1Base64)
}

func ReadMediaAnnouncement(r *Reader) (MediaAnnouncement, error) {
	name, err := ReadString(r)
	if err != nil {
		return MediaAnnouncement{}, err
	}
	sha1, err := ReadString(r)
	return MediaAnnouncement{Name: name, Sha1Base64: sha1}, err
}

type SkyColor struct {
	DaySky       SColor
	DayHorizon   SColor
	DawnSky      SColor
	DawnHorizon  SColor
	NightSky     SColor
	NightHorizon SColor
	Indoors      SColor
}

func WriteSkyColor(w Writer, v SkyColor) error {
	for _, c := range []SColor{v.DaySky, v.DayHorizon, v.DawnSky, v.DawnHorizon, v.NightSky, v.NightHorizon, v.Indoors} {
		if err := WriteSColor(w, c); err != nil {
			return err
		}
	}
	return nil
}

func ReadSkyColor(r *Reader) (SkyColor, error) {
	var cols [7]SColor
	for i := range cols {
		c, err := ReadSColor(r)
		if err != nil {
			return SkyColor{}, err
		}
		cols[i] = c
	}
	return SkyColor{cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6]}, nil
}

type SunParams struct {
	Visible        bool
	Texture        string
	Tonemap        string
	Sunrise        string
	SunriseVisible bool
	Scale          float32
}

func WriteSunParams(w Writer, v SunParams) error {
	if err := WriteBool(w, v.Visible); err != nil {
		return err
	}
	if err := WriteString(w, v.Texture); err != nil {
		return err
	}
	if err := WriteString(w, v.Tonemap); err != nil {
		return err
	}
	if err := WriteString(w, v.Sunrise); err != nil {
		return err
	}
	if err := WriteBool(w, v.SunriseVisible); err != nil {
		return err
	}
	return WriteF32(w, v.Scale)
}

func ReadSunParams(r *Reader) (SunParams, error) {
	var v SunParams
	var err error
	if v.Visible, err = ReadBool(r); err != nil {
		return v, err
	}
	if v.Texture, err = ReadString(r); err != nil {
		return v, err
	}
	if v.Tonemap, err = ReadString(r); err != nil {
		return v, err
	}
	if v.Sunrise, err = ReadString(r); err != nil {
		return v, err
	}
	if v.SunriseVisible, err = ReadBool(r); err != nil {
		return v, err
	}
	v.Scale, err = ReadF32(r)
	return v, err
}

type MoonParams struct {
	Visible bool
	Texture string
	Tonemap string
	Scale   float32
}

func WriteMoonParams(w Writer, v MoonParams) error {
	if err := WriteBool(w, v.Visible); err != nil {
		return err
	}
	if err := WriteString(w, v.Texture); err != nil {
		return err
	}
	if err := WriteString(w, v.Tonemap); err != nil {
		return err
	}
	return WriteF32(w, v.Scale)
}

func ReadMoonParams(r *Reader) (MoonParams, error) {
	var v MoonParams
	var err error
	if v.Visible, err = ReadBool(r); err != nil {
		return v, err
	}
	if v.Texture, err = ReadString(r); err != nil {
		return v, err
	}
	if v.Tonemap, err = ReadString(r); err != nil {
		return v, err
	}
	v.Scale, err = ReadF32(r)
	return v, err
}

type StarParams struct {
	Visible    bool
	Count      uint32
	StarColor  SColor
	Scale      float32
	DayOpacity *float32
}

func WriteStarParams(w Writer, v StarParams) error {
	if err := WriteBool(w, v.Visible); err != nil {
		return err
	}
	if err := WriteU32(w, v.Count); err != nil {
		return err
	}
	if err := WriteSColor(w, v.StarColor); err != nil {
		return err
	}
	if err := WriteF32(w, v.Scale); err != nil {
		return err
	}
	return WriteOptionTail(w, v.DayOpacity, func(w Writer, f float32) error { return WriteF32(w, f) })
}

func ReadStarParams(r *Reader) (StarParams, error) {
	var v StarParams
	var err error
	if v.Visible, err = ReadBool(r); err != nil {
		return v, err
	}
	if v.Count, err = ReadU32(r); err != nil {
		return v, err
	}
	if v.StarColor, err = ReadSColor(r); err != nil {
		return v, err
	}
	if v.Scale, err = ReadF32(r); err != nil {
		return v, err
	}
	v.DayOpacity, err = ReadOptionTail(r, ReadF32)
	return v, err
}

type MinimapMode struct {
	Typ     uint16
	Label   string
	Size    uint16
	Texture string
	Scale   uint16
}

func WriteMinimapMode(w Writer, v MinimapMode) error {
	if err := WriteU16(w, v.Typ); err != nil {
		return err
	}
	if err := WriteString(w, v.Label); err != nil {
		return err
	}
	if err := WriteU16(w, v.Size); err != nil {
		return err
	}
	if err := WriteString(w, v.Texture); err != nil {
		return err
	}
	return WriteU16(w, v.Scale)
}

func ReadMinimapMode(r *Reader) (MinimapMode, error) {
	var v MinimapMode
	var err error
	if v.Typ, err = ReadU16(r); err != nil {
		return v, err
	}
	if v.Label, err = ReadString(r); err != nil {
		return v, err
	}
	if v.Size, err = ReadU16(r); err != nil {
		return v, err
	}
	if v.Texture, err = ReadString(r); err != nil {
		return v, err
	}
	v.Scale, err = ReadU16(r)
	return v, err
}

// PlayerPos is fixed-point encoded on the wire: position/speed are scaled
// by 100 and truncated to s32, pitch/yaw scaled by 100 and rounded,
// fov scaled by 80 and rounded into a single byte.
type PlayerPos struct {
	Position     V3F
	Speed        V3F
	Pitch        float32
	Yaw          float32
	KeysPressed  uint32
	Fov          float32
	WantedRange  uint8
}

func WritePlayerPos(w Writer, v PlayerPos) error {
	if err := WriteV3S32(w, v.Position.Scale(100).AsV3S32()); err != nil {
		return err
	}
	if err := WriteV3S32(w, v.Speed.Scale(100).AsV3S32()); err != nil {
		return err
	}
	if err := WriteS32(w, int32(roundF32(v.Pitch*100))); err != nil {
		return err
	}
	if err := WriteS32(w, int32(roundF32(v.Yaw*100))); err != nil {
		return err
	}
	if err := WriteU32(w, v.KeysPressed); err != nil {
		return err
	}
	if err := WriteU8(w, uint8(roundF32(v.Fov*80))); err != nil {
		return err
	}
	return WriteU8(w, v.WantedRange)
}

func ReadPlayerPos(r *Reader) (PlayerPos, error) {
	var v PlayerPos
	sPos, err := ReadV3S32(r)
	if err != nil {
		return v, err
	}
	sSpeed, err := ReadV3S32(r)
	if err != nil {
		return v, err
	}
	sPitch, err := ReadS32(r)
	if err != nil {
		return v, err
	}
	sYaw, err := ReadS32(r)
	if err != nil {
		return v, err
	}
	keys, err := ReadU32(r)
	if err != nil {
		return v, err
	}
	sFov, err := ReadU8(r)
	if err != nil {
		return v, err
	}
	wantedRange, err := ReadU8(r)
	if err != nil {
		return v, err
	}
	v.Position = V3F{X: float32(sPos.X) / 100, Y: float32(sPos.Y) / 100, Z: float32(sPos.Z) / 100}
	v.Speed = V3F{X: float32(sSpeed.X) / 100, Y: float32(sSpeed.Y) / 100, Z: float32(sSpeed.Z) / 100}
	v.Pitch = float32(sPitch) / 100
	v.Yaw = float32(sYaw) / 100
	v.KeysPressed = keys
	v.Fov = float32(sFov) / 80
	v.WantedRange = wantedRange
	return v, nil
}

func roundF32(f float32) float32 {
	if f >= 0 {
		return float32(int64(f + 0.5))
	}
	return float32(int64(f - 0.5))
}

// HudFlags is a bitset packed into a single u32, one bit per flag in
// declaration order. Bits above bit 8 must be zero.
type HudFlags struct {
	HotbarVisible       bool
	HealthbarVisible    bool
	CrosshairVisible    bool
	WielditemVisible    bool
	BreathbarVisible    bool
	MinimapVisible      bool
	MinimapRadarVisible bool
	BasicDebug          bool
	ChatVisible         bool
}

func bitOf(b bool, n uint) uint32 {
	if b {
		return 1 << n
	}
	return 0
}

func (f HudFlags) ToU32() uint32 {
	return bitOf(f.HotbarVisible, 0) | bitOf(f.HealthbarVisible, 1) | bitOf(f.CrosshairVisible, 2) |
		bitOf(f.WielditemVisible, 3) | bitOf(f.BreathbarVisible, 4) | bitOf(f.MinimapVisible, 5) |
		bitOf(f.MinimapRadarVisible, 6) | bitOf(f.BasicDebug, 7) | bitOf(f.ChatVisible, 8)
}

func HudFlagsFromU32(v uint32) HudFlags {
	return HudFlags{
		HotbarVisible:       v&(1<<0) != 0,
		HealthbarVisible:    v&(1<<1) != 0,
		CrosshairVisible:    v&(1<<2) != 0,
		WielditemVisible:    v&(1<<3) != 0,
		BreathbarVisible:    v&(1<<4) != 0,
		MinimapVisible:      v&(1<<5) != 0,
		MinimapRadarVisible: v&(1<<6) != 0,
		BasicDebug:          v&(1<<7) != 0,
		ChatVisible:         v&(1<<8) != 0,
	}
}

func WriteHudFlags(w Writer, v HudFlags) error {
	return WriteU32(w, v.ToU32())
}

func ReadHudFlags(r *Reader) (HudFlags, error) {
	v, err := ReadU32(r)
	if err != nil {
		return HudFlags{}, err
	}
	if v&^0b111111111 != 0 {
		return HudFlags{}, errors.Wrapf(ErrInvalidValue, "invalid HudFlags bits %#x", v)
	}
	return HudFlagsFromU32(v), nil
}

// HudSetParam kinds.
type HudSetParamKind uint16

const (
	HudSetHotBarItemCount HudSetParamKind = 1
	HudSetHotBarImage     HudSetParamKind = 2
	HudSetHotBarSelectedImage HudSetParamKind = 3
)

type HudSetParam struct {
	Kind        HudSetParamKind
	ItemCount   int32
	ImagePath   string
}

func WriteHudSetParamValue(w Writer, v HudSetParam) error {
	if err := WriteU16(w, uint16(v.Kind)); err != nil {
		return err
	}
	switch v.Kind {
	case HudSetHotBarItemCount:
		if err := WriteU16(w, 4); err != nil {
			return err
		}
		return WriteS32(w, v.ItemCount)
	case HudSetHotBarImage, HudSetHotBarSelectedImage:
		return WriteString(w, v.ImagePath)
	default:
		return errors.Wrap(ErrInvalidValue, "unknown HudSetParam kind")
	}
}

func ReadHudSetParamValue(r *Reader) (HudSetParam, error) {
	kind, err := ReadU16(r)
	if err != nil {
		return HudSetParam{}, err
	}
	switch HudSetParamKind(kind) {
	case HudSetHotBarItemCount:
		size, err := ReadU16(r)
		if err != nil {
			return HudSetParam{}, err
		}
		if size != 4 {
			return HudSetParam{}, errors.Wrapf(ErrInvalidValue, "invalid size in SetHotBarItemCount: %d", size)
		}
		n, err := ReadS32(r)
		return HudSetParam{Kind: HudSetHotBarItemCount, ItemCount: n}, err
	case HudSetHotBarImage:
		s, err := ReadString(r)
		return HudSetParam{Kind: HudSetHotBarImage, ImagePath: s}, err
	case HudSetHotBarSelectedImage:
		s, err := ReadString(r)
		return HudSetParam{Kind: HudSetHotBarSelectedImage, ImagePath: s}, err
	default:
		return HudSetParam{}, errors.Wrapf(ErrInvalidValue, "invalid HudSetParam param: %d", kind)
	}
}

// AccessDeniedCode enumerates the reasons a server can refuse a client,
// matching the fixed code table sent with AccessDenied.
type AccessDeniedCode uint8

const (
	DeniedWrongPassword AccessDeniedCode = iota
	DeniedUnexpectedData
	DeniedSingleplayer
	DeniedWrongVersion
	DeniedWrongCharsInName
	DeniedWrongName
	DeniedTooManyUsers
	DeniedEmptyPassword
	DeniedAlreadyConnected
	DeniedServerFail
	DeniedCustomString
	DeniedShutdown
	DeniedCrash
)

func WriteAccessDeniedCode(w Writer, v AccessDeniedCode) error {
	return WriteU8(w, uint8(v))
}

func ReadAccessDeniedCode(r *Reader) (AccessDeniedCode, error) {
	v, err := ReadU8(r)
	return AccessDeniedCode(v), err
}

// HudStat names which HudChange field is being updated, plus its new
// value. The value union (string/number/v2f/...) varies by Tag and is
// kept as opaque trailing bytes rather than transcribed per-variant: the
// stat is always the final field of a Hudchange command, so capturing
// "rest of packet" after Tag round-trips it exactly. See
// DESIGN.md.
type HudStat struct {
	Tag   uint8
	Value []byte
}

func WriteHudStatField(w Writer, v HudStat) error {
	if err := WriteU8(w, v.Tag); err != nil {
		return err
	}
	return w.WriteBytes(v.Value)
}

func ReadHudStatField(r *Reader) (HudStat, error) {
	tag, err := ReadU8(r)
	if err != nil {
		return HudStat{}, err
	}
	return HudStat{Tag: tag, Value: append([]byte(nil), r.TakeAll()...)}, nil
}
