// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import (
	"bytes"
	"reflect"

	"github.com/zeebo/blake3"
)

// DedupEncoder is the per-operation side table that replaces repeated
// dedup-eligible values with back-reference IDs. Create one fresh per
// top-level [EncodeExt] call; reusing one across calls has no defined
// meaning. A DedupEncoder is not safe for concurrent use.
//
// Tables are scoped per concrete Go type, keyed by reflect.Type much
// like a TypeId-keyed table would be, so a dedup-eligible type A and an
// unrelated dedup-eligible type B never share an ID space even if a
// value of each happens to Pack to the same bytes.
type DedupEncoder struct {
	tables map[reflect.Type]*dedupEncodeTable
}

type dedupEncodeTable struct {
	// buckets indexes candidate entries by a blake3 digest of their
	// Pack bytes rather than the Pack bytes themselves, so the map key
	// is a fixed 32 bytes regardless of how large a dedup-eligible
	// type's Pack form is. Collisions (same digest, different Pack
	// bytes) are resolved by exact comparison within the bucket. The
	// digest is purely a lookup accelerator; it never appears on the
	// wire.
	buckets map[[32]byte][]dedupEncodeEntry
	next    uint64
}

type dedupEncodeEntry struct {
	pack []byte
	id   uint64
}

// NewDedupEncoder returns an empty DedupEncoder.
func NewDedupEncoder() *DedupEncoder {
	return &DedupEncoder{tables: make(map[reflect.Type]*dedupEncodeTable)}
}

func (e *DedupEncoder) tableFor(t reflect.Type) *dedupEncodeTable {
	tbl, ok := e.tables[t]
	if !ok {
		tbl = &dedupEncodeTable{buckets: make(map[[32]byte][]dedupEncodeEntry), next: 1}
		e.tables[t] = tbl
	}
	return tbl
}

// DedupDecoder is the decode-side counterpart of [DedupEncoder]: an
// ordered, per-type, 1-indexed table of previously-decoded values.
type DedupDecoder struct {
	tables map[reflect.Type]*dedupDecodeTable
}

type dedupDecodeTable struct {
	values []any
}

// NewDedupDecoder returns an empty DedupDecoder.
func NewDedupDecoder() *DedupDecoder {
	return &DedupDecoder{tables: make(map[reflect.Type]*dedupDecodeTable)}
}

func (d *DedupDecoder) tableFor(t reflect.Type) *dedupDecodeTable {
	tbl, ok := d.tables[t]
	if !ok {
		tbl = &dedupDecodeTable{}
		d.tables[t] = tbl
	}
	return tbl
}

// EncodeDeduped encodes v through the dedup protocol: on a repeat
// (matching Pack bytes seen before, for this concrete type, within
// w.Dedup), it writes a single back-reference varint; on a first
// occurrence it writes varint(0) followed by v's full Pack bytes and
// assigns the next ID. w.Dedup must be non-nil: encoding a dedup-eligible
// value with no handle present is a caller error, surfaced as
// KindInvalidData.
func EncodeDeduped[T Packable](w *Writer, v T) error {
	if w.Dedup == nil {
		return newError(KindInvalidData, "dedup: no DedupEncoder on Writer", nil)
	}
	table := w.Dedup.tableFor(reflect.TypeOf(v))
	packBytes := v.AppendPack(nil)
	digest := blake3.Sum256(packBytes)

	for _, entry := range table.buckets[digest] {
		if bytes.Equal(entry.pack, packBytes) {
			w.scratch = AppendUvarint64(w.scratch[:0], entry.id)
			return w.writeRaw(w.scratch)
		}
	}

	id := table.next
	table.next++
	table.buckets[digest] = append(table.buckets[digest], dedupEncodeEntry{pack: packBytes, id: id})

	w.scratch = AppendUvarint64(w.scratch[:0], 0)
	if err := w.writeRaw(w.scratch); err != nil {
		return err
	}
	return w.writeRaw(packBytes)
}

// DedupEligible constrains pointer-to-T to both read and write the
// fixed Pack form DecodeDeduped needs to unpack a fresh table entry.
type DedupEligible[T any] interface {
	*T
	Packable
	Unpackable
}

// DecodeDeduped decodes a value through the dedup protocol, mirroring
// [EncodeDeduped]: it reads a back-reference ID; 0 means "unpack a
// fresh value from the stream and append it to the table," a positive
// ID looks up a previously-decoded value by that per-type table index.
// An ID that was never assigned is KindInvalidData. r.Dedup must be
// non-nil for the same reason as EncodeDeduped.
func DecodeDeduped[T any, PT DedupEligible[T]](r *Reader) (T, error) {
	var zero T
	if r.Dedup == nil {
		return zero, newError(KindInvalidData, "dedup: no DedupDecoder on Reader", nil)
	}
	table := r.Dedup.tableFor(reflect.TypeFor[T]())

	id, err := r.ReadUint64()
	if err != nil {
		return zero, err
	}

	if id == 0 {
		size := PT(&zero).PackSize()
		packBytes, err := r.readRaw(size)
		if err != nil {
			return zero, err
		}
		if err := PT(&zero).UnpackFrom(packBytes); err != nil {
			return zero, err
		}
		table.values = append(table.values, zero)
		return zero, nil
	}

	index := id - 1
	if index >= uint64(len(table.values)) {
		return zero, newError(KindInvalidData, "dedup: unknown id", nil)
	}
	value, ok := table.values[index].(T)
	if !ok {
		return zero, newError(KindInvalidData, "dedup: stored value type mismatch", nil)
	}
	return value, nil
}
