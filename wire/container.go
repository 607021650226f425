package wire

import (
	"math"

	"github.com/pkg/errors"
)

// WriteWrapped16 serializes value via enc into a scratch region, then
// back-patches a 16-bit length prefix ahead of it, matching Wrapped16<T>.
func WriteWrapped16(w Writer, enc func(Writer) error) error {
	m, err := w.Marker(2)
	if err != nil {
		return err
	}
	if err := enc(w); err != nil {
		return err
	}
	n := w.MarkerDistance(m)
	if n > math.MaxUint16 {
		return errors.Wrap(ErrInvalidValue, "Wrapped16 content too large")
	}
	var b [2]byte
	b[0] = byte(n >> 8)
	b[1] = byte(n)
	return w.SetMarker(m, b[:])
}

// ReadWrapped16 reads a 16-bit length prefix, then decodes dec from a
// sub-reader bounded to exactly that many bytes.
func ReadWrapped16[T any](r *Reader, dec func(*Reader) (T, error)) (T, error) {
	var zero T
	n, err := ReadU16(r)
	if err != nil {
		return zero, err
	}
	sub, err := r.Slice(int(n))
	if err != nil {
		return zero, err
	}
	return dec(sub)
}

// WriteWrapped32 is the 32-bit-length-prefix counterpart to WriteWrapped16.
func WriteWrapped32(w Writer, enc func(Writer) error) error {
	m, err := w.Marker(4)
	if err != nil {
		return err
	}
	if err := enc(w); err != nil {
		return err
	}
	n := w.MarkerDistance(m)
	var b [4]byte
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
	return w.SetMarker(m, b[:])
}

func ReadWrapped32[T any](r *Reader, dec func(*Reader) (T, error)) (T, error) {
	var zero T
	n, err := ReadU32(r)
	if err != nil {
		return zero, err
	}
	sub, err := r.Slice(int(n))
	if err != nil {
		return zero, err
	}
	return dec(sub)
}

// WriteArray8 writes a u8 count prefix followed by each element.
func WriteArray8[T any](w Writer, items []T, enc func(Writer, T) error) error {
	if len(items) > math.MaxUint8 {
		return errors.Wrap(ErrInvalidValue, "Array8 longer than 255 elements")
	}
	if err := WriteU8(w, uint8(len(items))); err != nil {
		return err
	}
	for _, v := range items {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

func ReadArray8[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := ReadU8(r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray16 writes a u16 count prefix followed by each element.
func WriteArray16[T any](w Writer, items []T, enc func(Writer, T) error) error {
	if len(items) > math.MaxUint16 {
		return errors.Wrap(ErrInvalidValue, "Array16 longer than 65535 elements")
	}
	if err := WriteU16(w, uint16(len(items))); err != nil {
		return err
	}
	for _, v := range items {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

func ReadArray16[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := ReadU16(r)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray32 writes a u32 count prefix followed by each element.
func WriteArray32[T any](w Writer, items []T, enc func(Writer, T) error) error {
	if err := WriteU32(w, uint32(len(items))); err != nil {
		return err
	}
	for _, v := range items {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadArray32 rejects a declared length greater than the remaining byte
// count, as a DoS guard (the only Array variant that does this).
func ReadArray32[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := ReadU32(r)
	if err != nil {
		return nil, err
	}
	if int(n) > r.Remaining() {
		return nil, errors.Wrap(ErrInvalidValue, "Array32 length too long")
	}
	out := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray0 writes each element with no length prefix; the reader
// consumes elements until the buffer is exhausted.
func WriteArray0[T any](w Writer, items []T, enc func(Writer, T) error) error {
	for _, v := range items {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

func ReadArray0[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	var out []T
	for r.Remaining() > 0 {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// OptionTail models a trailing optional field: present iff bytes remain.
// Once one such field is absent, every field after it must be absent too
// (the caller is responsible for only probing in declared field order).
func WriteOptionTail[T any](w Writer, v *T, enc func(Writer, T) error) error {
	if v == nil {
		return nil
	}
	return enc(w, *v)
}

func ReadOptionTail[T any](r *Reader, dec func(*Reader) (T, error)) (*T, error) {
	if r.Remaining() == 0 {
		return nil, nil
	}
	v, err := dec(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteOption16 writes a 16-bit length prefix: 0 for None, else the
// encoded length of Some(T).
func WriteOption16[T any](w Writer, v *T, enc func(Writer, T) error) error {
	if v == nil {
		return WriteU16(w, 0)
	}
	return WriteWrapped16(w, func(w Writer) error { return enc(w, *v) })
}

func ReadOption16[T any](r *Reader, dec func(*Reader) (T, error)) (*T, error) {
	n, err := ReadU16(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	sub, err := r.Slice(int(n))
	if err != nil {
		return nil, err
	}
	v, err := dec(sub)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Pair is a generic two-field tuple, used e.g. by NodemetaFields'
// Array16<Pair<String, LongString>>.
type Pair[A, B any] struct {
	First  A
	Second B
}
