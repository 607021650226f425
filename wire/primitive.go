package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Primitive encode helpers. All multi-byte integers and floats are
// big-endian, matching the original Rust to_be_bytes/from_be_bytes impls.

func WriteU8(w Writer, v uint8) error  { return w.WriteBytes([]byte{v}) }
func WriteS8(w Writer, v int8) error   { return WriteU8(w, uint8(v)) }

func WriteU16(w Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

func WriteS16(w Writer, v int16) error { return WriteU16(w, uint16(v)) }

func WriteU32(w Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

func WriteS32(w Writer, v int32) error { return WriteU32(w, uint32(v)) }

func WriteU64(w Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return w.WriteBytes(b[:])
}

func WriteS64(w Writer, v int64) error { return WriteU64(w, uint64(v)) }

func WriteF32(w Writer, v float32) error { return WriteU32(w, math.Float32bits(v)) }
func WriteF64(w Writer, v float64) error { return WriteU64(w, math.Float64bits(v)) }

// WriteBool writes a single validated byte: 0 or 1.
func WriteBool(w Writer, v bool) error {
	if v {
		return WriteU8(w, 1)
	}
	return WriteU8(w, 0)
}

// WriteString writes a 16-bit length prefix followed by the UTF-8 bytes.
func WriteString(w Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return errors.Wrap(ErrInvalidValue, "string too long for 16-bit length prefix")
	}
	if err := WriteU16(w, uint16(len(s))); err != nil {
		return err
	}
	return w.WriteBytes([]byte(s))
}

// WriteLongString writes a 32-bit length prefix followed by the UTF-8 bytes.
func WriteLongString(w Writer, s string) error {
	if err := WriteU32(w, uint32(len(s))); err != nil {
		return err
	}
	return w.WriteBytes([]byte(s))
}

// WriteWString writes a 16-bit count of UTF-16 code units followed by
// that many big-endian u16s.
func WriteWString(w Writer, s string) error {
	units := utf16.Encode([]rune(s))
	if len(units) > math.MaxUint16 {
		return errors.Wrap(ErrInvalidValue, "wstring too long for 16-bit count prefix")
	}
	if err := WriteU16(w, uint16(len(units))); err != nil {
		return err
	}
	for _, u := range units {
		if err := WriteU16(w, u); err != nil {
			return err
		}
	}
	return nil
}

func WriteBinaryData16(w Writer, data []byte) error {
	if len(data) > math.MaxUint16 {
		return errors.Wrap(ErrInvalidValue, "binary data too long for 16-bit length prefix")
	}
	if err := WriteU16(w, uint16(len(data))); err != nil {
		return err
	}
	return w.WriteBytes(data)
}

func WriteBinaryData32(w Writer, data []byte) error {
	if err := WriteU32(w, uint32(len(data))); err != nil {
		return err
	}
	return w.WriteBytes(data)
}

// WriteFixedBinaryData writes exactly len(data) bytes when n != 0 it must
// equal n; n == 0 means "write whatever is given, no fixed width check".
func WriteFixedBinaryData(w Writer, n int, data []byte) error {
	if n != 0 && len(data) != n {
		return errors.Wrapf(ErrInvalidValue, "FixedBinaryData<%d> incorrect data length %d", n, len(data))
	}
	return w.WriteBytes(data)
}

// --- Decode side ---

func ReadU8(r *Reader) (uint8, error) {
	b, err := r.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func ReadS8(r *Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err
}

func ReadU16(r *Reader) (uint16, error) {
	b, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func ReadS16(r *Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err
}

func ReadU32(r *Reader) (uint32, error) {
	b, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func ReadS32(r *Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

func ReadU64(r *Reader) (uint64, error) {
	b, err := r.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func ReadS64(r *Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err
}

func ReadF32(r *Reader) (float32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func ReadF64(r *Reader) (float64, error) {
	v, err := ReadU64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func ReadBool(r *Reader) (bool, error) {
	v, err := ReadU8(r)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidValue, "invalid bool byte %d", v)
	}
}

func ReadString(r *Reader) (string, error) {
	n, err := ReadU16(r)
	if err != nil {
		return "", err
	}
	b, err := r.Take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrInvalidValue, "invalid utf-8 in String")
	}
	return string(b), nil
}

func ReadLongString(r *Reader) (string, error) {
	n, err := ReadU32(r)
	if err != nil {
		return "", err
	}
	b, err := r.Take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrInvalidValue, "invalid utf-8 in LongString")
	}
	return string(b), nil
}

// ReadWString decodes a WString's code units strictly: an unpaired or
// out-of-order surrogate fails the read rather than being silently
// replaced with U+FFFD, matching the original's String::from_utf16.
func ReadWString(r *Reader) (string, error) {
	n, err := ReadU16(r)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n)
	for i := range units {
		u, err := ReadU16(r)
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			runes = append(runes, rune(u))
		case u <= 0xDBFF:
			if i+1 >= len(units) {
				return "", errors.Wrap(ErrInvalidValue, "unpaired utf-16 surrogate in WString")
			}
			lo := units[i+1]
			if lo < 0xDC00 || lo > 0xDFFF {
				return "", errors.Wrap(ErrInvalidValue, "unpaired utf-16 surrogate in WString")
			}
			runes = append(runes, utf16.DecodeRune(rune(u), rune(lo)))
			i++
		default:
			return "", errors.Wrap(ErrInvalidValue, "unpaired utf-16 surrogate in WString")
		}
	}
	return string(runes), nil
}

func ReadBinaryData16(r *Reader) ([]byte, error) {
	n, err := ReadU16(r)
	if err != nil {
		return nil, err
	}
	b, err := r.Take(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func ReadBinaryData32(r *Reader) ([]byte, error) {
	n, err := ReadU32(r)
	if err != nil {
		return nil, err
	}
	b, err := r.Take(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// ReadFixedBinaryData reads exactly n bytes, or the rest of the input if
// n == 0.
func ReadFixedBinaryData(r *Reader, n int) ([]byte, error) {
	var b []byte
	var err error
	if n == 0 {
		b = r.TakeAll()
	} else {
		b, err = r.Take(n)
		if err != nil {
			return nil, err
		}
	}
	return append([]byte(nil), b...), nil
}
