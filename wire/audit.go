package wire

import (
	"bytes"
	"io"
	"sync/atomic"

	kzlib "github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// auditEnabled, set via SetAuditEnabled, makes DecodeCommand run Audit on
// every command it decodes; Audit itself does not check it. Off by
// default: re-encoding every
// decoded command to compare it against the bytes it came from is
// expensive, and is only worth the cost while developing new ser/deser
// code, not on a live server's full command stream.
var auditEnabled atomic.Bool

func SetAuditEnabled(v bool) { auditEnabled.Store(v) }
func AuditEnabled() bool     { return auditEnabled.Load() }

// ErrAuditMismatch reports that a decoded command's re-encoding didn't
// reproduce the bytes it was decoded from.
var ErrAuditMismatch = errors.New("wire: audit mismatch between original and re-encoded command")

// AuditFunc is notified of every audit outcome when a hook is installed,
// success or failure; wire a logger in from the Peer runtime to track it.
type AuditFunc func(ctx Context, cmd Command, err error)

var auditHook atomic.Value // AuditFunc

func SetAuditHook(fn AuditFunc) {
	if fn == nil {
		auditHook.Store(AuditFunc(nil))
		return
	}
	auditHook.Store(fn)
}

func callAuditHook(ctx Context, cmd Command, err error) {
	v := auditHook.Load()
	if v == nil {
		return
	}
	fn, ok := v.(AuditFunc)
	if !ok || fn == nil {
		return
	}
	fn(ctx, cmd, err)
}

// Audit re-encodes cmd and compares the result against raw, the exact
// bytes cmd was decoded from (opcode included). Recompression of zlib or
// zstd regions isn't guaranteed to reproduce the same compressed bytes
// even when the decompressed content is identical, so the four catalog
// entries that carry a compressed region are compared by decompressing
// both sides first; everything else is compared byte-for-byte.
func Audit(ctx Context, raw []byte, cmd Command) error {
	w := NewBufWriter(ctx, len(raw)+16)
	if err := EncodeCommand(w, cmd); err != nil {
		err = errors.Wrap(err, "wire: audit re-encode failed")
		callAuditHook(ctx, cmd, err)
		return err
	}
	reser := w.Bytes()

	err := auditCompare(cmd, raw, reser)
	callAuditHook(ctx, cmd, err)
	return err
}

func auditCompare(cmd Command, raw, reser []byte) error {
	if cmd.Direction == ToClient && cmd.ToClient != nil {
		switch cmd.ToClient.Body.(type) {
		case *BlockdataSpec:
			return auditCompareBlockdata(raw, reser)
		case *NodedefSpec, *ItemdefSpec, *NodemetaChangedSpec:
			return auditCompareZlibWrapped(raw, reser)
		}
	}
	if !bytes.Equal(raw, reser) {
		return errors.Wrapf(ErrAuditMismatch, "%s: %d original bytes, %d re-encoded bytes", cmd.Name(), len(raw), len(reser))
	}
	return nil
}

// auditCompareBlockdata handles Blockdata's opcode(2)+pos(6) header, a
// zstd-compressed MapBlock with no length prefix, and a trailing
// network_specific_version byte — the layout encodeBlockdata/decodeBlockdata
// actually produce.
func auditCompareBlockdata(raw, reser []byte) error {
	const head = 8
	if len(raw) < head+1 || len(reser) < head+1 {
		return errors.Wrap(ErrAuditMismatch, "blockdata: command shorter than its fixed framing")
	}
	if !bytes.Equal(raw[:head], reser[:head]) {
		return errors.Wrap(ErrAuditMismatch, "blockdata: opcode/pos header differs")
	}
	if !bytes.Equal(raw[len(raw)-1:], reser[len(reser)-1:]) {
		return errors.Wrap(ErrAuditMismatch, "blockdata: network_specific_version differs")
	}
	rawBlock, err := zstdDecompressAll(raw[head : len(raw)-1])
	if err != nil {
		return errors.Wrap(err, "blockdata: decompressing original map block")
	}
	reserBlock, err := zstdDecompressAll(reser[head : len(reser)-1])
	if err != nil {
		return errors.Wrap(err, "blockdata: decompressing re-encoded map block")
	}
	if !bytes.Equal(rawBlock, reserBlock) {
		return errors.Wrap(ErrAuditMismatch, "blockdata: decompressed map block differs")
	}
	return nil
}

// auditCompareZlibWrapped handles Nodedef/Itemdef/NodemetaChanged: an
// opcode(2) header followed by a single ZLibCompressed<T> region that
// runs to the end of the command.
func auditCompareZlibWrapped(raw, reser []byte) error {
	const head = 2
	if len(raw) < head || len(reser) < head {
		return errors.Wrap(ErrAuditMismatch, "zlib-wrapped command shorter than its opcode")
	}
	if !bytes.Equal(raw[:head], reser[:head]) {
		return errors.Wrap(ErrAuditMismatch, "zlib-wrapped command: opcode differs")
	}
	rawValue, err := zlibDecompressPrefixed(raw[head:])
	if err != nil {
		return errors.Wrap(err, "decompressing original zlib region")
	}
	reserValue, err := zlibDecompressPrefixed(reser[head:])
	if err != nil {
		return errors.Wrap(err, "decompressing re-encoded zlib region")
	}
	if !bytes.Equal(rawValue, reserValue) {
		return errors.Wrap(ErrAuditMismatch, "zlib-wrapped command: decompressed value differs")
	}
	return nil
}

// zlibDecompressPrefixed reads a u32 compressed-size prefix followed by
// exactly that many zlib bytes, matching WriteZlibWrapped's framing.
func zlibDecompressPrefixed(b []byte) ([]byte, error) {
	if len(b) < 4 {
		return nil, errors.Wrap(ErrEof, "zlib region missing its length prefix")
	}
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	b = b[4:]
	if len(b) < n {
		return nil, errors.Wrap(ErrEof, "zlib region shorter than its declared length")
	}
	zr, err := kzlib.NewReader(bytes.NewReader(b[:n]))
	if err != nil {
		return nil, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func zstdDecompressAll(b []byte) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "wire: zstd reader init")
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressFailed, err.Error())
	}
	return out, nil
}
