// Package wire implements the Minetest application-layer wire codec: a
// bit-exact binary format with fixed-width big-endian integers,
// length-prefixed strings and blobs, length-wrapped substructures,
// compressed regions, and the command catalog built on top of them.
package wire

import (
	"github.com/pkg/errors"
)

// Direction selects which opcode table a Command belongs to.
type Direction int

const (
	ToClient Direction = iota
	ToServer
)

func (d Direction) String() string {
	if d == ToClient {
		return "ToClient"
	}
	return "ToServer"
}

// Context is the small value threaded through every codec call.
type Context struct {
	Direction       Direction
	ProtocolVersion uint16
	SerFmt          uint8
}

// Sentinel decode/encode error kinds. These are wrapped with call-site
// context via github.com/pkg/errors rather than constructed bare, so
// errors.Cause and errors.Is keep working up through the Peer runtime.
var (
	ErrEof              = errors.New("wire: eof during deserialization")
	ErrBufferLimit      = errors.New("wire: buffer limit exceeded while serializing")
	ErrInvalidValue     = errors.New("wire: invalid value")
	ErrInvalidProtoID   = errors.New("wire: invalid protocol id")
	ErrInvalidChannel   = errors.New("wire: invalid channel")
	ErrInvalidTag       = errors.New("wire: invalid tag in tagged union")
	ErrBadOpcode        = errors.New("wire: unknown opcode for direction")
	ErrDecompressFailed = errors.New("wire: decompression failed")
)

// Reader is a read cursor over a byte slice plus the protocol context
// needed to select opcode tables and format-dependent encodings.
type Reader struct {
	ctx  Context
	data []byte
}

func NewReader(ctx Context, data []byte) *Reader {
	return &Reader{ctx: ctx, data: data}
}

func (r *Reader) Context() Context { return r.ctx }
func (r *Reader) Direction() Direction { return r.ctx.Direction }
func (r *Reader) Remaining() int   { return len(r.data) }

// Slice takes count bytes and returns a new Reader bounded to exactly
// those bytes, sharing the same context. Used to implement Wrapped16/32
// and other length-prefixed substructures.
func (r *Reader) Slice(count int) (*Reader, error) {
	b, err := r.Take(count)
	if err != nil {
		return nil, err
	}
	return &Reader{ctx: r.ctx, data: b}, nil
}

func (r *Reader) Find(b byte) (int, bool) {
	for i, c := range r.data {
		if c == b {
			return i, true
		}
	}
	return 0, false
}

func (r *Reader) Peek(count int) ([]byte, error) {
	if count > len(r.data) {
		return nil, ErrEof
	}
	return r.data[:count], nil
}

func (r *Reader) PeekAll() []byte {
	return r.data
}

func (r *Reader) Take(count int) ([]byte, error) {
	if count > len(r.data) {
		return nil, ErrEof
	}
	ret := r.data[:count]
	r.data = r.data[count:]
	return ret, nil
}

func (r *Reader) TakeAll() []byte {
	ret := r.data
	r.data = r.data[len(r.data):]
	return ret
}

// PeekLine returns the next line (including a trailing '\n' if present)
// without consuming it. At end of stream this is an empty slice.
func (r *Reader) PeekLine() ([]byte, error) {
	n := r.lineLen()
	return r.Peek(n)
}

// TakeLine consumes and returns the next line, including the trailing
// '\n' if present.
func (r *Reader) TakeLine() ([]byte, error) {
	n := r.lineLen()
	return r.Take(n)
}

func (r *Reader) lineLen() int {
	if pos, ok := r.Find('\n'); ok {
		return pos + 1
	}
	return r.Remaining()
}

// TakeWord consumes bytes up to the next space/newline/eof. If
// skipWhitespace is true, leading whitespace is skipped first.
func (r *Reader) TakeWord(skipWhitespace bool) []byte {
	if skipWhitespace {
		r.TakeSpace()
	}
	for i, c := range r.data {
		if c == ' ' || c == '\n' {
			ret := r.data[:i]
			r.data = r.data[i:]
			return ret
		}
	}
	return r.TakeAll()
}

// TakeSpace discards leading whitespace (space or '\n').
func (r *Reader) TakeSpace() {
	for i, c := range r.data {
		if c != ' ' && c != '\n' {
			r.data = r.data[i:]
			return
		}
	}
	r.data = r.data[len(r.data):]
}

// Marker is a bookmark reserved during Write for later back-patching of
// a length prefix, per spec.md §9's "bookmarked length prefixes".
type Marker struct {
	offset int
	length int
}

// Writer is the encode-side counterpart to Reader. Two backends exist:
// SliceWriter (bounded, used when the final packet size is fixed ahead of
// time) and BufWriter (growable). MockWriter implements the same
// interface purely to count bytes, used by the split sender to decide
// whether a command needs splitting without allocating its encoding.
type Writer interface {
	Context() Context
	WriteBytes(b []byte) error
	Marker(length int) (Marker, error)
	SetMarker(m Marker, data []byte) error
	MarkerDistance(m Marker) int
}

type SliceWriter struct {
	ctx      Context
	data     []byte
	offset   int
	overflow bool
}

func NewSliceWriter(ctx Context, data []byte) *SliceWriter {
	return &SliceWriter{ctx: ctx, data: data}
}

func (w *SliceWriter) Context() Context { return w.ctx }

// Finish returns the number of bytes written, or false if the writer
// overflowed its bound at any point.
func (w *SliceWriter) Finish() (int, bool) {
	return w.offset, !w.overflow
}

func (w *SliceWriter) WriteBytes(b []byte) error {
	if w.offset+len(b) > len(w.data) {
		w.overflow = true
		return ErrBufferLimit
	}
	copy(w.data[w.offset:], b)
	w.offset += len(b)
	return nil
}

func (w *SliceWriter) Marker(length int) (Marker, error) {
	if w.offset+length > len(w.data) {
		w.overflow = true
		return Marker{}, ErrBufferLimit
	}
	m := Marker{offset: w.offset, length: length}
	w.offset += length
	return m, nil
}

func (w *SliceWriter) SetMarker(m Marker, data []byte) error {
	if len(data) != m.length {
		w.overflow = true
		return errors.Wrap(ErrInvalidValue, "marker has wrong size")
	}
	copy(w.data[m.offset:m.offset+m.length], data)
	return nil
}

func (w *SliceWriter) MarkerDistance(m Marker) int {
	return w.offset - (m.offset + m.length)
}

type BufWriter struct {
	ctx  Context
	data []byte
}

func NewBufWriter(ctx Context, capacity int) *BufWriter {
	return &BufWriter{ctx: ctx, data: make([]byte, 0, capacity)}
}

func (w *BufWriter) Context() Context { return w.ctx }
func (w *BufWriter) Bytes() []byte    { return w.data }

func (w *BufWriter) WriteBytes(b []byte) error {
	w.data = append(w.data, b...)
	return nil
}

func (w *BufWriter) Marker(length int) (Marker, error) {
	m := Marker{offset: len(w.data), length: length}
	w.data = append(w.data, make([]byte, length)...)
	return m, nil
}

func (w *BufWriter) SetMarker(m Marker, data []byte) error {
	copy(w.data[m.offset:m.offset+m.length], data)
	return nil
}

func (w *BufWriter) MarkerDistance(m Marker) int {
	return len(w.data) - (m.offset + m.length)
}

// MockWriter computes the size of the serialized output without storing
// it, used by the split sender to size a command before committing to a
// real encode.
type MockWriter struct {
	ctx   Context
	count int
}

func NewMockWriter(ctx Context) *MockWriter { return &MockWriter{ctx: ctx} }

func (w *MockWriter) Context() Context { return w.ctx }
func (w *MockWriter) Len() int         { return w.count }

func (w *MockWriter) WriteBytes(b []byte) error {
	w.count += len(b)
	return nil
}

func (w *MockWriter) Marker(length int) (Marker, error) {
	m := Marker{offset: w.count, length: length}
	w.count += length
	return m, nil
}

func (w *MockWriter) SetMarker(m Marker, data []byte) error {
	return nil
}

func (w *MockWriter) MarkerDistance(m Marker) int {
	return w.count - (m.offset + m.length)
}
