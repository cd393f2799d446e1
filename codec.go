// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

// EncodeTo is implemented by any type that knows how to write itself to
// a [Writer]. Implementations are expected to be thin: call the scalar
// Write* methods, [EncodeBytes]/[EncodeString], [EncodeSlice]/[EncodeMap]/
// [EncodeOption], or [EncodeDeduped] for each field in declared order,
// the same shape [Packable.AppendPack] has for the fixed-width form.
type EncodeTo interface {
	EncodeTo(w *Writer) error
}

// DecodeFrom is the pointer-receiver counterpart of [EncodeTo]: it
// populates the receiver by reading from r in the same field order
// EncodeTo wrote them.
type DecodeFrom interface {
	DecodeFrom(r *Reader) error
}

// DecodeFromPtr constrains PT to be *T implementing [DecodeFrom], the
// shape [Decode] and [DecodeExt] need to construct a T by reference
// without the caller pre-allocating one.
type DecodeFromPtr[T any] interface {
	*T
	DecodeFrom
}

// Encode writes v to sink, with no deduplication, and returns the
// number of bytes written.
func Encode[T EncodeTo](v T, sink Sink) (int, error) {
	return EncodeExt[T](v, sink, nil)
}

// EncodeExt writes v to sink. If dedup is non-nil, any [EncodeDeduped]
// call reached from v.EncodeTo shares that table; passing nil is
// equivalent to [Encode].
func EncodeExt[T EncodeTo](v T, sink Sink, dedup *DedupEncoder) (int, error) {
	w := NewWriter(sink)
	w.Dedup = dedup
	if err := v.EncodeTo(w); err != nil {
		return w.BytesWritten(), err
	}
	return w.BytesWritten(), nil
}

// Decode decodes a T from source, with no deduplication. T must have a
// *T that implements [DecodeFrom] — typically satisfied by giving T a
// pointer-receiver DecodeFrom method.
func Decode[T any, PT DecodeFromPtr[T]](source Source) (T, error) {
	return DecodeExt[T, PT](source, nil)
}

// DecodeExt decodes a T from source using dedup as the back-reference
// table for any [DecodeDeduped] call reached from the decode; passing
// nil is equivalent to [Decode].
func DecodeExt[T any, PT DecodeFromPtr[T]](source Source, dedup *DedupDecoder) (T, error) {
	var zero T
	r := NewReader(source)
	r.Dedup = dedup
	if err := PT(&zero).DecodeFrom(r); err != nil {
		return zero, err
	}
	return zero, nil
}
