package wire

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	kzlib "github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// WriteZlibWrapped compresses the bytes produced by enc with zlib (level
// 6, matching the original's miniz_oxide default) and writes a u32
// compressed-size prefix followed by the raw zlib stream.
func WriteZlibWrapped(w Writer, enc func(Writer) error) error {
	scratch := NewBufWriter(w.Context(), 256)
	if err := enc(scratch); err != nil {
		return err
	}
	var buf bytes.Buffer
	zw, err := kzlib.NewWriterLevel(&buf, 6)
	if err != nil {
		return errors.Wrap(err, "wire: zlib writer init")
	}
	if _, err := zw.Write(scratch.Bytes()); err != nil {
		return errors.Wrap(err, "wire: zlib compress")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "wire: zlib close")
	}
	if err := WriteU32(w, uint32(buf.Len())); err != nil {
		return err
	}
	return w.WriteBytes(buf.Bytes())
}

// ReadZlibWrapped reads a u32 compressed-size prefix, decompresses
// exactly that many raw zlib bytes into a scratch buffer, and decodes T
// from it. The compressed region is fully consumed from the cursor
// before decoding begins.
func ReadZlibWrapped[T any](r *Reader, dec func(*Reader) (T, error)) (T, error) {
	var zero T
	n, err := ReadU32(r)
	if err != nil {
		return zero, err
	}
	compressed, err := r.Take(int(n))
	if err != nil {
		return zero, err
	}
	zr, err := kzlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return zero, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return zero, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	sub := NewReader(r.ctx, raw)
	return dec(sub)
}

// WriteZstdWrapped compresses the bytes produced by enc with zstd and
// writes the raw stream with no length prefix; ReadZstdWrapped finds the
// end of the frame itself, so other fields may follow it (used for the
// ser_fmt=29 whole-block MapBlock envelope).
func WriteZstdWrapped(w Writer, enc func(Writer) error) error {
	scratch := NewBufWriter(w.Context(), 256)
	if err := enc(scratch); err != nil {
		return err
	}
	zw, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.Wrap(err, "wire: zstd writer init")
	}
	compressed := zw.EncodeAll(scratch.Bytes(), nil)
	zw.Close()
	return w.WriteBytes(compressed)
}

// readZlibRegion decompresses a bare zlib stream with no length prefix,
// used by MapBlock's ser_fmt=28 encoding where the nodes and node
// metadata regions are each an independent zlib stream back-to-back with
// no framing between them. Like ReadZstdWrapped, the number of input
// bytes consumed is recovered from the residual length left on the
// bytes.Reader once the zlib reader hits the stream's own end marker.
func readZlibRegion(r *Reader) ([]byte, error) {
	input := r.PeekAll()
	br := bytes.NewReader(input)
	zr, err := kzlib.NewReader(br)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	consumed := len(input) - br.Len()
	if _, err := r.Take(consumed); err != nil {
		return nil, err
	}
	return raw, nil
}

// ReadZstdWrapped decompresses a zstd stream that may have trailing
// bytes past its end. The frame is decoded from a bytes.Reader so the
// number of input bytes the frame actually occupied can be recovered
// from the reader's residual length once decoding stops at the frame
// boundary, letting the caller's cursor advance by exactly that much.
func ReadZstdWrapped[T any](r *Reader, dec func(*Reader) (T, error)) (T, error) {
	var zero T
	input := r.PeekAll()
	br := bytes.NewReader(input)
	zr, err := zstd.NewReader(br)
	if err != nil {
		return zero, errors.Wrap(err, "wire: zstd reader init")
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return zero, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	consumed := len(input) - br.Len()
	if _, err := r.Take(consumed); err != nil {
		return zero, err
	}
	sub := NewReader(r.ctx, raw)
	return dec(sub)
}
