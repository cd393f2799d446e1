// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

// Writer pairs a [Sink] with the dedup state (if any) threaded through
// the encode of a single top-level value. Every aggregate-aware encode
// function in this package takes a *Writer rather than a bare Sink so
// that the dedup handle reaches every nested value unchanged, no matter
// how deep inside a composite it appears.
type Writer struct {
	Sink  Sink
	Dedup *DedupEncoder

	n       int
	scratch []byte
}

// NewWriter returns a Writer with no dedup handle — equivalent to
// calling the non-_ext top-level functions.
func NewWriter(sink Sink) *Writer {
	return &Writer{Sink: sink}
}

// BytesWritten returns the number of bytes written through this Writer
// so far.
func (w *Writer) BytesWritten() int {
	return w.n
}

func (w *Writer) writeRaw(p []byte) error {
	n, err := w.Sink.WriteAll(p)
	w.n += n
	if err != nil {
		return err
	}
	return nil
}

func (w *Writer) writeVarintHeader(length uint64, flag byte) error {
	header := length<<1 | uint64(flag)
	w.scratch = AppendUvarint64(w.scratch[:0], header)
	return w.writeRaw(w.scratch)
}

// --- Primitive scalar writes ------------------------------------------
//
// Integers are written in their compact varint form: a []u16 without
// dedup encodes each small element as a single varint byte, not a fixed
// 2-byte pack. Floats and bools have no varint scheme, so they use their
// fixed Pack form directly on the wire.

// WriteUint8 writes v as an unsigned varint.
func (w *Writer) WriteUint8(v uint8) error {
	w.scratch = AppendUvarint8(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteInt8 writes v as a zigzag signed varint.
func (w *Writer) WriteInt8(v int8) error {
	w.scratch = AppendSvarint8(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteUint16 writes v as an unsigned varint.
func (w *Writer) WriteUint16(v uint16) error {
	w.scratch = AppendUvarint16(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteInt16 writes v as a zigzag signed varint.
func (w *Writer) WriteInt16(v int16) error {
	w.scratch = AppendSvarint16(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteUint32 writes v as an unsigned varint.
func (w *Writer) WriteUint32(v uint32) error {
	w.scratch = AppendUvarint32(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteInt32 writes v as a zigzag signed varint.
func (w *Writer) WriteInt32(v int32) error {
	w.scratch = AppendSvarint32(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteUint64 writes v as an unsigned varint.
func (w *Writer) WriteUint64(v uint64) error {
	w.scratch = AppendUvarint64(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteInt64 writes v as a zigzag signed varint.
func (w *Writer) WriteInt64(v int64) error {
	w.scratch = AppendSvarint64(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteUint128 writes v as an unsigned varint.
func (w *Writer) WriteUint128(v Uint128) error {
	w.scratch = AppendUvarint128(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteInt128 writes v as a zigzag signed varint.
func (w *Writer) WriteInt128(v Int128) error {
	w.scratch = AppendSvarint128(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteBool writes v in its fixed 1-byte Pack form.
func (w *Writer) WriteBool(v bool) error {
	w.scratch = AppendPackBool(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteFloat32 writes v in its fixed 4-byte little-endian Pack form.
func (w *Writer) WriteFloat32(v float32) error {
	w.scratch = AppendPackFloat32(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// WriteFloat64 writes v in its fixed 8-byte little-endian Pack form.
func (w *Writer) WriteFloat64(v float64) error {
	w.scratch = AppendPackFloat64(w.scratch[:0], v)
	return w.writeRaw(w.scratch)
}

// Reader pairs a [Source] with the dedup state (if any) threaded
// through the decode of a single top-level value.
type Reader struct {
	Source Source
	Dedup  *DedupDecoder
}

// NewReader returns a Reader with no dedup handle.
func NewReader(source Source) *Reader {
	return &Reader{Source: source}
}

func (r *Reader) readRaw(n int) ([]byte, error) {
	return r.Source.ReadExact(n)
}

func (r *Reader) readVarintHeader() (length uint64, flag byte, err error) {
	header, err := ReadUvarint64(r.Source)
	if err != nil {
		return 0, 0, err
	}
	return header >> 1, byte(header & 1), nil
}

// --- Primitive scalar reads --------------------------------------------

// ReadUint8 reads an unsigned varint into an 8-bit value.
func (r *Reader) ReadUint8() (uint8, error) { return ReadUvarint8(r.Source) }

// ReadInt8 reads a zigzag signed varint into an 8-bit value.
func (r *Reader) ReadInt8() (int8, error) { return ReadSvarint8(r.Source) }

// ReadUint16 reads an unsigned varint into a 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) { return ReadUvarint16(r.Source) }

// ReadInt16 reads a zigzag signed varint into a 16-bit value.
func (r *Reader) ReadInt16() (int16, error) { return ReadSvarint16(r.Source) }

// ReadUint32 reads an unsigned varint into a 32-bit value.
func (r *Reader) ReadUint32() (uint32, error) { return ReadUvarint32(r.Source) }

// ReadInt32 reads a zigzag signed varint into a 32-bit value.
func (r *Reader) ReadInt32() (int32, error) { return ReadSvarint32(r.Source) }

// ReadUint64 reads an unsigned varint into a 64-bit value.
func (r *Reader) ReadUint64() (uint64, error) { return ReadUvarint64(r.Source) }

// ReadInt64 reads a zigzag signed varint into a 64-bit value.
func (r *Reader) ReadInt64() (int64, error) { return ReadSvarint64(r.Source) }

// ReadUint128 reads an unsigned varint into a 128-bit value.
func (r *Reader) ReadUint128() (Uint128, error) { return ReadUvarint128(r.Source) }

// ReadInt128 reads a zigzag signed varint into a 128-bit value.
func (r *Reader) ReadInt128() (Int128, error) { return ReadSvarint128(r.Source) }

// ReadBool reads a fixed 1-byte Pack-form bool.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.readRaw(1)
	if err != nil {
		return false, err
	}
	return UnpackBool(b)
}

// ReadFloat32 reads a fixed 4-byte little-endian Pack-form float.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.readRaw(4)
	if err != nil {
		return 0, err
	}
	return UnpackFloat32(b)
}

// ReadFloat64 reads a fixed 8-byte little-endian Pack-form float.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.readRaw(8)
	if err != nil {
		return 0, err
	}
	return UnpackFloat64(b)
}
