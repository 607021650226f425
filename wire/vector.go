package wire

// Vector and color primitives shared across many commands. Integer
// vectors serialize as their component type in field order (x, y, z).

type V2F struct{ X, Y float32 }
type V3F struct{ X, Y, Z float32 }
type V2S16 struct{ X, Y int16 }
type V3S16 struct{ X, Y, Z int16 }
type V2S32 struct{ X, Y int32 }
type V3S32 struct{ X, Y, Z int32 }
type V2U32 struct{ X, Y uint32 }

// AsV3S32 converts a float vector to its s32 counterpart, truncating each
// component toward zero, matching
// the `.as_v3s32()` cast used to fixed-point-encode positions and speeds.
func (v V3F) AsV3S32() V3S32 {
	return V3S32{X: int32(v.X), Y: int32(v.Y), Z: int32(v.Z)}
}

func (v V3F) Scale(f float32) V3F {
	return V3F{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func WriteV2F(w Writer, v V2F) error {
	if err := WriteF32(w, v.X); err != nil {
		return err
	}
	return WriteF32(w, v.Y)
}

func ReadV2F(r *Reader) (V2F, error) {
	x, err := ReadF32(r)
	if err != nil {
		return V2F{}, err
	}
	y, err := ReadF32(r)
	return V2F{X: x, Y: y}, err
}

func WriteV3F(w Writer, v V3F) error {
	if err := WriteF32(w, v.X); err != nil {
		return err
	}
	if err := WriteF32(w, v.Y); err != nil {
		return err
	}
	return WriteF32(w, v.Z)
}

func ReadV3F(r *Reader) (V3F, error) {
	x, err := ReadF32(r)
	if err != nil {
		return V3F{}, err
	}
	y, err := ReadF32(r)
	if err != nil {
		return V3F{}, err
	}
	z, err := ReadF32(r)
	return V3F{X: x, Y: y, Z: z}, err
}

func WriteV2S16(w Writer, v V2S16) error {
	if err := WriteS16(w, v.X); err != nil {
		return err
	}
	return WriteS16(w, v.Y)
}

func ReadV2S16(r *Reader) (V2S16, error) {
	x, err := ReadS16(r)
	if err != nil {
		return V2S16{}, err
	}
	y, err := ReadS16(r)
	return V2S16{X: x, Y: y}, err
}

func WriteV3S16(w Writer, v V3S16) error {
	if err := WriteS16(w, v.X); err != nil {
		return err
	}
	if err := WriteS16(w, v.Y); err != nil {
		return err
	}
	return WriteS16(w, v.Z)
}

func ReadV3S16(r *Reader) (V3S16, error) {
	x, err := ReadS16(r)
	if err != nil {
		return V3S16{}, err
	}
	y, err := ReadS16(r)
	if err != nil {
		return V3S16{}, err
	}
	z, err := ReadS16(r)
	return V3S16{X: x, Y: y, Z: z}, err
}

func WriteV2S32(w Writer, v V2S32) error {
	if err := WriteS32(w, v.X); err != nil {
		return err
	}
	return WriteS32(w, v.Y)
}

func ReadV2S32(r *Reader) (V2S32, error) {
	x, err := ReadS32(r)
	if err != nil {
		return V2S32{}, err
	}
	y, err := ReadS32(r)
	return V2S32{X: x, Y: y}, err
}

func WriteV3S32(w Writer, v V3S32) error {
	if err := WriteS32(w, v.X); err != nil {
		return err
	}
	if err := WriteS32(w, v.Y); err != nil {
		return err
	}
	return WriteS32(w, v.Z)
}

func ReadV3S32(r *Reader) (V3S32, error) {
	x, err := ReadS32(r)
	if err != nil {
		return V3S32{}, err
	}
	y, err := ReadS32(r)
	if err != nil {
		return V3S32{}, err
	}
	z, err := ReadS32(r)
	return V3S32{X: x, Y: y, Z: z}, err
}

func WriteV2U32(w Writer, v V2U32) error {
	if err := WriteU32(w, v.X); err != nil {
		return err
	}
	return WriteU32(w, v.Y)
}

func ReadV2U32(r *Reader) (V2U32, error) {
	x, err := ReadU32(r)
	if err != nil {
		return V2U32{}, err
	}
	y, err := ReadU32(r)
	return V2U32{X: x, Y: y}, err
}

// SColor is packed ARGB, one byte per channel, serialized as a single u32.
type SColor struct {
	A, R, G, B uint8
}

func (c SColor) packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func WriteSColor(w Writer, c SColor) error {
	return WriteU32(w, c.packed())
}

func ReadSColor(r *Reader) (SColor, error) {
	v, err := ReadU32(r)
	if err != nil {
		return SColor{}, err
	}
	return SColor{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
