// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import (
	"bytes"
	"reflect"
	"testing"
)

func encodeU8(w *Writer, v uint8) error { return w.WriteUint8(v) }
func decodeU8(r *Reader) (uint8, error) { return r.ReadUint8() }

func TestOptionConcreteScenarios(t *testing.T) {
	t.Parallel()

	sink := NewByteSink()
	w := NewWriter(sink)
	five := uint8(5)
	if err := EncodeOption(w, &five, encodeU8); err != nil {
		t.Fatalf("EncodeOption(Some(5)): %v", err)
	}
	if !bytes.Equal(sink.Bytes(), []byte{0x01, 0x05}) {
		t.Errorf("Some(5) = % x, want [01 05]", sink.Bytes())
	}

	sink2 := NewByteSink()
	w2 := NewWriter(sink2)
	if err := EncodeOption[uint8](w2, nil, encodeU8); err != nil {
		t.Fatalf("EncodeOption(None): %v", err)
	}
	if !bytes.Equal(sink2.Bytes(), []byte{0x00}) {
		t.Errorf("None = % x, want [00]", sink2.Bytes())
	}
}

func TestOptionRoundTrip(t *testing.T) {
	t.Parallel()

	sink := NewByteSink()
	w := NewWriter(sink)
	five := uint8(5)
	if err := EncodeOption(w, &five, encodeU8); err != nil {
		t.Fatalf("EncodeOption: %v", err)
	}
	r := NewReader(NewByteSource(sink.Bytes()))
	got, err := DecodeOption(r, decodeU8)
	if err != nil {
		t.Fatalf("DecodeOption: %v", err)
	}
	if got == nil || *got != 5 {
		t.Errorf("got %v, want Some(5)", got)
	}

	sink2 := NewByteSink()
	w2 := NewWriter(sink2)
	if err := EncodeOption[uint8](w2, nil, encodeU8); err != nil {
		t.Fatalf("EncodeOption(None): %v", err)
	}
	r2 := NewReader(NewByteSource(sink2.Bytes()))
	got2, err := DecodeOption(r2, decodeU8)
	if err != nil {
		t.Fatalf("DecodeOption(None): %v", err)
	}
	if got2 != nil {
		t.Errorf("got %v, want None", got2)
	}
}

func TestOptionTagTwoOrMoreFails(t *testing.T) {
	t.Parallel()
	stream := AppendUvarint64(nil, 2)
	r := NewReader(NewByteSource(stream))
	_, err := DecodeOption(r, decodeU8)
	if !IsKind(err, KindInvalidData) {
		t.Errorf("got %v, want KindInvalidData", err)
	}
}

func TestArrayNoLengthPrefix(t *testing.T) {
	t.Parallel()
	sink := NewByteSink()
	w := NewWriter(sink)
	arr := []uint8{7, 8, 9}
	if err := EncodeArray(w, arr, encodeU8); err != nil {
		t.Fatalf("EncodeArray: %v", err)
	}
	if !bytes.Equal(sink.Bytes(), []byte{7, 8, 9}) {
		t.Errorf("got % x, want [07 08 09] (no length prefix)", sink.Bytes())
	}

	r := NewReader(NewByteSource(sink.Bytes()))
	got, err := DecodeArray(r, 3, decodeU8)
	if err != nil {
		t.Fatalf("DecodeArray: %v", err)
	}
	if !reflect.DeepEqual(got, arr) {
		t.Errorf("got %v, want %v", got, arr)
	}
}

func TestSliceConcreteScenario(t *testing.T) {
	t.Parallel()
	sink := NewByteSink()
	w := NewWriter(sink)
	if err := EncodeSlice(w, []uint16{7, 7, 7}, func(w *Writer, v uint16) error { return w.WriteUint16(v) }); err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	want := []byte{0x03, 0x07, 0x07, 0x07}
	if !bytes.Equal(sink.Bytes(), want) {
		t.Errorf("got % x, want % x", sink.Bytes(), want)
	}
}

func TestSliceRoundTrip(t *testing.T) {
	t.Parallel()
	tests := [][]uint8{nil, {}, {1}, {1, 2, 3, 4, 5}}
	for _, s := range tests {
		sink := NewByteSink()
		w := NewWriter(sink)
		if err := EncodeSlice(w, s, encodeU8); err != nil {
			t.Fatalf("EncodeSlice(%v): %v", s, err)
		}
		r := NewReader(NewByteSource(sink.Bytes()))
		got, err := DecodeSlice(r, decodeU8)
		if err != nil {
			t.Fatalf("DecodeSlice: %v", err)
		}
		if len(got) != len(s) {
			t.Errorf("length mismatch: got %d, want %d", len(got), len(s))
			continue
		}
		for i := range s {
			if got[i] != s[i] {
				t.Errorf("element %d: got %d, want %d", i, got[i], s[i])
			}
		}
	}
}

func TestSliceLimitRejectsOversizedLength(t *testing.T) {
	t.Parallel()
	sink := NewByteSink()
	w := NewWriter(sink)
	if err := w.WriteUint64(1000); err != nil {
		t.Fatalf("WriteUint64: %v", err)
	}
	r := NewReader(NewByteSource(sink.Bytes()))
	_, err := DecodeSliceLimit(r, decodeU8, 10)
	if !IsKind(err, KindInvalidData) {
		t.Errorf("got %v, want KindInvalidData", err)
	}
}

func TestUnorderedCollectionComparesByContentNotOrder(t *testing.T) {
	t.Parallel()
	// A set or heap's decode does not promise to preserve the original
	// iteration order — only the multiset of elements.
	sink := NewByteSink()
	w := NewWriter(sink)
	original := []uint8{3, 1, 2}
	if err := EncodeSlice(w, original, encodeU8); err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	r := NewReader(NewByteSource(sink.Bytes()))
	got, err := DecodeSlice(r, decodeU8)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	gotSorted := append([]uint8{}, got...)
	sortUint8s(gotSorted)
	wantSorted := append([]uint8{}, original...)
	sortUint8s(wantSorted)
	if !reflect.DeepEqual(gotSorted, wantSorted) {
		t.Errorf("content mismatch: got %v, want %v", gotSorted, wantSorted)
	}
}

func sortUint8s(s []uint8) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func TestMapRoundTrip(t *testing.T) {
	t.Parallel()
	pairs := []Pair[uint8, uint16]{
		{Key: 1, Value: 100},
		{Key: 2, Value: 200},
	}
	sink := NewByteSink()
	w := NewWriter(sink)
	encodeKey := func(w *Writer, k uint8) error { return w.WriteUint8(k) }
	encodeVal := func(w *Writer, v uint16) error { return w.WriteUint16(v) }
	if err := EncodeMap(w, pairs, encodeKey, encodeVal); err != nil {
		t.Fatalf("EncodeMap: %v", err)
	}

	r := NewReader(NewByteSource(sink.Bytes()))
	decodeKey := func(r *Reader) (uint8, error) { return r.ReadUint8() }
	decodeVal := func(r *Reader) (uint16, error) { return r.ReadUint16() }
	got, err := DecodeMap(r, decodeKey, decodeVal)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if !reflect.DeepEqual(got, pairs) {
		t.Errorf("got %v, want %v", got, pairs)
	}
}

func TestTuple2RoundTrip(t *testing.T) {
	t.Parallel()
	encodeStr := func(w *Writer, s string) error { return EncodeString(w, s) }
	decodeStr := func(r *Reader) (string, error) { return DecodeString(r) }

	tup := Tuple2[uint8, string]{E1: 5, E2: "hello"}
	sink := NewByteSink()
	w := NewWriter(sink)
	if err := EncodeTuple2(w, tup, encodeU8, encodeStr); err != nil {
		t.Fatalf("EncodeTuple2: %v", err)
	}
	r := NewReader(NewByteSource(sink.Bytes()))
	got, err := DecodeTuple2(r, decodeU8, decodeStr)
	if err != nil {
		t.Fatalf("DecodeTuple2: %v", err)
	}
	if got != tup {
		t.Errorf("got %+v, want %+v", got, tup)
	}
}

func TestTuple9RoundTrip(t *testing.T) {
	t.Parallel()
	tup := Tuple9[uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8]{
		E1: 1, E2: 2, E3: 3, E4: 4, E5: 5, E6: 6, E7: 7, E8: 8, E9: 9,
	}
	sink := NewByteSink()
	w := NewWriter(sink)
	err := EncodeTuple9(w, tup, encodeU8, encodeU8, encodeU8, encodeU8, encodeU8, encodeU8, encodeU8, encodeU8, encodeU8)
	if err != nil {
		t.Fatalf("EncodeTuple9: %v", err)
	}
	if sink.Len() != 9 {
		t.Fatalf("encoded length = %d, want 9 (no length prefix)", sink.Len())
	}
	r := NewReader(NewByteSource(sink.Bytes()))
	got, err := DecodeTuple9(r, decodeU8, decodeU8, decodeU8, decodeU8, decodeU8, decodeU8, decodeU8, decodeU8, decodeU8)
	if err != nil {
		t.Fatalf("DecodeTuple9: %v", err)
	}
	if got != tup {
		t.Errorf("got %+v, want %+v", got, tup)
	}
}
