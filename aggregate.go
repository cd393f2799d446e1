// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

// This file implements the composite shapes over the scalar and framing
// layers: option, fixed array, length-prefixed sequence, ordered map, and
// bounded tuples. None of these have a native Packable/Unpackable form —
// Pack is reserved for scalars and user records, so composites only ever
// go through Encode/Decode, taking element-level encode/decode functions
// the way callers already compose EncodeBytes/EncodeDeduped by hand for
// scalar fields.

// DefaultMaxSequenceLen bounds the length field of a slice or map frame
// before [DecodeSlice]/[DecodeMap] will attempt to allocate for it,
// mirroring [DefaultMaxFrameLen] for byte/string frames.
const DefaultMaxSequenceLen = 1 << 24 // 16Mi elements

// EncodeOption writes v's presence as a varint tag (0 for absent, 1 for
// present) followed by encodeElem(w, *v) when v is non-nil.
func EncodeOption[T any](w *Writer, v *T, encodeElem func(*Writer, T) error) error {
	if v == nil {
		return w.WriteUint64(0)
	}
	if err := w.WriteUint64(1); err != nil {
		return err
	}
	return encodeElem(w, *v)
}

// DecodeOption reads a presence tag written by [EncodeOption]. There is
// no third state: any tag other than 0 or 1 is KindInvalidData.
func DecodeOption[T any](r *Reader, decodeElem func(*Reader) (T, error)) (*T, error) {
	tag, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		v, err := decodeElem(r)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, newError(KindInvalidData, "option: tag not 0 or 1", nil)
	}
}

// EncodeArray writes exactly len(arr) elements with no length prefix.
// The element count is part of the type, not the wire form — callers on
// the decode side must already know n.
func EncodeArray[T any](w *Writer, arr []T, encodeElem func(*Writer, T) error) error {
	for _, v := range arr {
		if err := encodeElem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeArray reads exactly n elements with no length prefix, the
// counterpart of [EncodeArray].
func DecodeArray[T any](r *Reader, n int, decodeElem func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := decodeElem(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// EncodeSlice writes a varint length followed by each element in order.
// Sets, heaps, and other unordered collections use this same framing;
// their round trip only guarantees equal contents, not equal element
// order, since decode always reconstructs a plain sequence.
func EncodeSlice[T any](w *Writer, s []T, encodeElem func(*Writer, T) error) error {
	if err := w.WriteUint64(uint64(len(s))); err != nil {
		return err
	}
	return EncodeArray(w, s, encodeElem)
}

// DecodeSlice is [DecodeSliceLimit] with [DefaultMaxSequenceLen].
func DecodeSlice[T any](r *Reader, decodeElem func(*Reader) (T, error)) ([]T, error) {
	return DecodeSliceLimit(r, decodeElem, DefaultMaxSequenceLen)
}

// DecodeSliceLimit reads a varint length and rejects it outright if it
// exceeds maxLen, before ever allocating — the same defense
// [DecodeBytesLimit] gives a flagged byte frame, applied to element
// counts instead of byte counts.
func DecodeSliceLimit[T any](r *Reader, decodeElem func(*Reader) (T, error), maxLen int) ([]T, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(maxLen) {
		return nil, newError(KindInvalidData, "slice: length exceeds limit", nil)
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decodeElem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Pair is one key/value entry of an encoded map. Go's map type has no
// defined iteration order, so the wire form is defined over an ordered
// []Pair[K, V] rather than map[K]V; callers that want map[K]V build it
// from the decoded pairs themselves.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// EncodeMap writes a varint length followed by each pair's key and value
// in order, using the same framing as [EncodeSlice].
func EncodeMap[K, V any](w *Writer, pairs []Pair[K, V], encodeKey func(*Writer, K) error, encodeValue func(*Writer, V) error) error {
	if err := w.WriteUint64(uint64(len(pairs))); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := encodeKey(w, p.Key); err != nil {
			return err
		}
		if err := encodeValue(w, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap is [DecodeMapLimit] with [DefaultMaxSequenceLen].
func DecodeMap[K, V any](r *Reader, decodeKey func(*Reader) (K, error), decodeValue func(*Reader) (V, error)) ([]Pair[K, V], error) {
	return DecodeMapLimit(r, decodeKey, decodeValue, DefaultMaxSequenceLen)
}

// DecodeMapLimit reads a varint length, rejecting it before allocating if
// it exceeds maxLen, then reads that many key/value pairs.
func DecodeMapLimit[K, V any](r *Reader, decodeKey func(*Reader) (K, error), decodeValue func(*Reader) (V, error), maxLen int) ([]Pair[K, V], error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(maxLen) {
		return nil, newError(KindInvalidData, "map: length exceeds limit", nil)
	}
	out := make([]Pair[K, V], 0, n)
	for i := uint64(0); i < n; i++ {
		k, err := decodeKey(r)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out, nil
}

// Tuple2 through Tuple9 are fixed-arity heterogeneous products, each
// field encoded in declared order with no length prefix — the same
// framing as [EncodeArray] but over distinct element types instead of a
// single repeated one. 9 is the arity ceiling; callers past that reach
// for a named struct instead.

type Tuple2[A, B any] struct {
	E1 A
	E2 B
}

// EncodeTuple2 writes t's fields in order.
func EncodeTuple2[A, B any](w *Writer, t Tuple2[A, B], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	return encodeB(w, t.E2)
}

// DecodeTuple2 reads a Tuple2 written by [EncodeTuple2].
func DecodeTuple2[A, B any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error)) (Tuple2[A, B], error) {
	var zero Tuple2[A, B]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	return Tuple2[A, B]{E1: a, E2: b}, nil
}

type Tuple3[A, B, C any] struct {
	E1 A
	E2 B
	E3 C
}

// EncodeTuple3 writes t's fields in order.
func EncodeTuple3[A, B, C any](w *Writer, t Tuple3[A, B, C], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	return encodeC(w, t.E3)
}

// DecodeTuple3 reads a Tuple3 written by [EncodeTuple3].
func DecodeTuple3[A, B, C any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error)) (Tuple3[A, B, C], error) {
	var zero Tuple3[A, B, C]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	return Tuple3[A, B, C]{E1: a, E2: b, E3: c}, nil
}

type Tuple4[A, B, C, D any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
}

// EncodeTuple4 writes t's fields in order.
func EncodeTuple4[A, B, C, D any](w *Writer, t Tuple4[A, B, C, D], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	return encodeD(w, t.E4)
}

// DecodeTuple4 reads a Tuple4 written by [EncodeTuple4].
func DecodeTuple4[A, B, C, D any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error)) (Tuple4[A, B, C, D], error) {
	var zero Tuple4[A, B, C, D]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	return Tuple4[A, B, C, D]{E1: a, E2: b, E3: c, E4: d}, nil
}

type Tuple5[A, B, C, D, E any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
	E5 E
}

// EncodeTuple5 writes t's fields in order.
func EncodeTuple5[A, B, C, D, E any](w *Writer, t Tuple5[A, B, C, D, E], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error, encodeE func(*Writer, E) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	if err := encodeD(w, t.E4); err != nil {
		return err
	}
	return encodeE(w, t.E5)
}

// DecodeTuple5 reads a Tuple5 written by [EncodeTuple5].
func DecodeTuple5[A, B, C, D, E any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error), decodeE func(*Reader) (E, error)) (Tuple5[A, B, C, D, E], error) {
	var zero Tuple5[A, B, C, D, E]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	e, err := decodeE(r)
	if err != nil {
		return zero, err
	}
	return Tuple5[A, B, C, D, E]{E1: a, E2: b, E3: c, E4: d, E5: e}, nil
}

type Tuple6[A, B, C, D, E, F any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
	E5 E
	E6 F
}

// EncodeTuple6 writes t's fields in order.
func EncodeTuple6[A, B, C, D, E, F any](w *Writer, t Tuple6[A, B, C, D, E, F], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error, encodeE func(*Writer, E) error, encodeF func(*Writer, F) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	if err := encodeD(w, t.E4); err != nil {
		return err
	}
	if err := encodeE(w, t.E5); err != nil {
		return err
	}
	return encodeF(w, t.E6)
}

// DecodeTuple6 reads a Tuple6 written by [EncodeTuple6].
func DecodeTuple6[A, B, C, D, E, F any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error), decodeE func(*Reader) (E, error), decodeF func(*Reader) (F, error)) (Tuple6[A, B, C, D, E, F], error) {
	var zero Tuple6[A, B, C, D, E, F]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	e, err := decodeE(r)
	if err != nil {
		return zero, err
	}
	f, err := decodeF(r)
	if err != nil {
		return zero, err
	}
	return Tuple6[A, B, C, D, E, F]{E1: a, E2: b, E3: c, E4: d, E5: e, E6: f}, nil
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
	E5 E
	E6 F
	E7 G
}

// EncodeTuple7 writes t's fields in order.
func EncodeTuple7[A, B, C, D, E, F, G any](w *Writer, t Tuple7[A, B, C, D, E, F, G], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error, encodeE func(*Writer, E) error, encodeF func(*Writer, F) error, encodeG func(*Writer, G) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	if err := encodeD(w, t.E4); err != nil {
		return err
	}
	if err := encodeE(w, t.E5); err != nil {
		return err
	}
	if err := encodeF(w, t.E6); err != nil {
		return err
	}
	return encodeG(w, t.E7)
}

// DecodeTuple7 reads a Tuple7 written by [EncodeTuple7].
func DecodeTuple7[A, B, C, D, E, F, G any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error), decodeE func(*Reader) (E, error), decodeF func(*Reader) (F, error), decodeG func(*Reader) (G, error)) (Tuple7[A, B, C, D, E, F, G], error) {
	var zero Tuple7[A, B, C, D, E, F, G]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	e, err := decodeE(r)
	if err != nil {
		return zero, err
	}
	f, err := decodeF(r)
	if err != nil {
		return zero, err
	}
	g, err := decodeG(r)
	if err != nil {
		return zero, err
	}
	return Tuple7[A, B, C, D, E, F, G]{E1: a, E2: b, E3: c, E4: d, E5: e, E6: f, E7: g}, nil
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
	E5 E
	E6 F
	E7 G
	E8 H
}

// EncodeTuple8 writes t's fields in order.
func EncodeTuple8[A, B, C, D, E, F, G, H any](w *Writer, t Tuple8[A, B, C, D, E, F, G, H], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error, encodeE func(*Writer, E) error, encodeF func(*Writer, F) error, encodeG func(*Writer, G) error, encodeH func(*Writer, H) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	if err := encodeD(w, t.E4); err != nil {
		return err
	}
	if err := encodeE(w, t.E5); err != nil {
		return err
	}
	if err := encodeF(w, t.E6); err != nil {
		return err
	}
	if err := encodeG(w, t.E7); err != nil {
		return err
	}
	return encodeH(w, t.E8)
}

// DecodeTuple8 reads a Tuple8 written by [EncodeTuple8].
func DecodeTuple8[A, B, C, D, E, F, G, H any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error), decodeE func(*Reader) (E, error), decodeF func(*Reader) (F, error), decodeG func(*Reader) (G, error), decodeH func(*Reader) (H, error)) (Tuple8[A, B, C, D, E, F, G, H], error) {
	var zero Tuple8[A, B, C, D, E, F, G, H]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	e, err := decodeE(r)
	if err != nil {
		return zero, err
	}
	f, err := decodeF(r)
	if err != nil {
		return zero, err
	}
	g, err := decodeG(r)
	if err != nil {
		return zero, err
	}
	h, err := decodeH(r)
	if err != nil {
		return zero, err
	}
	return Tuple8[A, B, C, D, E, F, G, H]{E1: a, E2: b, E3: c, E4: d, E5: e, E6: f, E7: g, E8: h}, nil
}

type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	E1 A
	E2 B
	E3 C
	E4 D
	E5 E
	E6 F
	E7 G
	E8 H
	E9 I
}

// EncodeTuple9 writes t's fields in order.
func EncodeTuple9[A, B, C, D, E, F, G, H, I any](w *Writer, t Tuple9[A, B, C, D, E, F, G, H, I], encodeA func(*Writer, A) error, encodeB func(*Writer, B) error, encodeC func(*Writer, C) error, encodeD func(*Writer, D) error, encodeE func(*Writer, E) error, encodeF func(*Writer, F) error, encodeG func(*Writer, G) error, encodeH func(*Writer, H) error, encodeI func(*Writer, I) error) error {
	if err := encodeA(w, t.E1); err != nil {
		return err
	}
	if err := encodeB(w, t.E2); err != nil {
		return err
	}
	if err := encodeC(w, t.E3); err != nil {
		return err
	}
	if err := encodeD(w, t.E4); err != nil {
		return err
	}
	if err := encodeE(w, t.E5); err != nil {
		return err
	}
	if err := encodeF(w, t.E6); err != nil {
		return err
	}
	if err := encodeG(w, t.E7); err != nil {
		return err
	}
	if err := encodeH(w, t.E8); err != nil {
		return err
	}
	return encodeI(w, t.E9)
}

// DecodeTuple9 reads a Tuple9 written by [EncodeTuple9].
func DecodeTuple9[A, B, C, D, E, F, G, H, I any](r *Reader, decodeA func(*Reader) (A, error), decodeB func(*Reader) (B, error), decodeC func(*Reader) (C, error), decodeD func(*Reader) (D, error), decodeE func(*Reader) (E, error), decodeF func(*Reader) (F, error), decodeG func(*Reader) (G, error), decodeH func(*Reader) (H, error), decodeI func(*Reader) (I, error)) (Tuple9[A, B, C, D, E, F, G, H, I], error) {
	var zero Tuple9[A, B, C, D, E, F, G, H, I]
	a, err := decodeA(r)
	if err != nil {
		return zero, err
	}
	b, err := decodeB(r)
	if err != nil {
		return zero, err
	}
	c, err := decodeC(r)
	if err != nil {
		return zero, err
	}
	d, err := decodeD(r)
	if err != nil {
		return zero, err
	}
	e, err := decodeE(r)
	if err != nil {
		return zero, err
	}
	f, err := decodeF(r)
	if err != nil {
		return zero, err
	}
	g, err := decodeG(r)
	if err != nil {
		return zero, err
	}
	h, err := decodeH(r)
	if err != nil {
		return zero, err
	}
	i, err := decodeI(r)
	if err != nil {
		return zero, err
	}
	return Tuple9[A, B, C, D, E, F, G, H, I]{E1: a, E2: b, E3: c, E4: d, E5: e, E6: f, E7: g, E8: h, E9: i}, nil
}
