// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import "testing"

// point is a minimal user record exercising EncodeTo/DecodeFrom by hand,
// the convention a derive macro would otherwise generate.
type point struct {
	X, Y int32
}

func (p point) EncodeTo(w *Writer) error {
	if err := w.WriteInt32(p.X); err != nil {
		return err
	}
	return w.WriteInt32(p.Y)
}

func (p *point) DecodeFrom(r *Reader) error {
	x, err := r.ReadInt32()
	if err != nil {
		return err
	}
	y, err := r.ReadInt32()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	want := point{X: -5, Y: 1000}
	sink := NewByteSink()
	n, err := Encode[point](want, sink)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if n != sink.Len() {
		t.Errorf("Encode returned %d, sink has %d bytes", n, sink.Len())
	}

	got, err := Decode[point, *point](NewByteSource(sink.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// taggedPoints is a user record whose Owners elements are dedup-eligible
// and repeat, exercising EncodeExt/DecodeExt with a shared
// dedup handle threaded through a nested slice.
type taggedPoints struct {
	Owners []dedupKey
	Points []point
}

func (t taggedPoints) EncodeTo(w *Writer) error {
	if err := w.WriteUint64(uint64(len(t.Owners))); err != nil {
		return err
	}
	for _, owner := range t.Owners {
		if err := EncodeDeduped(w, owner); err != nil {
			return err
		}
	}
	return EncodeSlice(w, t.Points, func(w *Writer, p point) error { return p.EncodeTo(w) })
}

func (tp *taggedPoints) DecodeFrom(r *Reader) error {
	n, err := r.ReadUint64()
	if err != nil {
		return err
	}
	owners := make([]dedupKey, n)
	for i := range owners {
		owner, err := DecodeDeduped[dedupKey](r)
		if err != nil {
			return err
		}
		owners[i] = owner
	}
	points, err := DecodeSlice(r, func(r *Reader) (point, error) {
		var p point
		err := p.DecodeFrom(r)
		return p, err
	})
	if err != nil {
		return err
	}
	tp.Owners, tp.Points = owners, points
	return nil
}

func TestEncodeExtDecodeExtThreadsDedupHandle(t *testing.T) {
	t.Parallel()
	owner := dedupKey{V: 77}
	want := taggedPoints{
		Owners: []dedupKey{owner, owner, owner},
		Points: []point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
	}

	sink := NewByteSink()
	encDedup := NewDedupEncoder()
	if _, err := EncodeExt[taggedPoints](want, sink, encDedup); err != nil {
		t.Fatalf("EncodeExt: %v", err)
	}

	decDedup := NewDedupDecoder()
	got, err := DecodeExt[taggedPoints, *taggedPoints](NewByteSource(sink.Bytes()), decDedup)
	if err != nil {
		t.Fatalf("DecodeExt: %v", err)
	}

	if len(got.Owners) != 3 || got.Owners[0] != owner || got.Owners[1] != owner || got.Owners[2] != owner {
		t.Errorf("owners = %+v, want three copies of %+v", got.Owners, owner)
	}
	for i := range want.Points {
		if got.Points[i] != want.Points[i] {
			t.Errorf("point[%d] = %+v, want %+v", i, got.Points[i], want.Points[i])
		}
	}
}

func TestEncodeExtNilDedupEquivalentToEncode(t *testing.T) {
	t.Parallel()
	want := point{X: 1, Y: 2}

	sinkA := NewByteSink()
	if _, err := Encode[point](want, sinkA); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sinkB := NewByteSink()
	if _, err := EncodeExt[point](want, sinkB, nil); err != nil {
		t.Fatalf("EncodeExt(nil): %v", err)
	}
	if string(sinkA.Bytes()) != string(sinkB.Bytes()) {
		t.Errorf("Encode and EncodeExt(nil) diverged: % x vs % x", sinkA.Bytes(), sinkB.Bytes())
	}
}

func TestDecodeConsumesExactlyTheEncodedBytes(t *testing.T) {
	t.Parallel()
	want := point{X: 9, Y: 10}
	sink := NewByteSink()
	if _, err := Encode[point](want, sink); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	source := NewByteSource(sink.Bytes())
	if _, err := Decode[point, *point](source); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if source.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", source.Remaining())
	}
}
