// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import (
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
)

// DefaultMaxFrameLen is the default ceiling on a flagged header's
// length field before [DecodeBytes]/[DecodeString] will attempt to
// allocate a buffer for it. Callers that need a different, per-decoder
// ceiling use [DecodeBytesLimit]/[DecodeStringLimit].
const DefaultMaxFrameLen = 1 << 30 // 1 GiB

// zstdEncoder and zstdDecoder are reused across calls rather than
// constructed per value, mirroring lib/artifactstore/compress.go's
// package-level zstd.Encoder/Decoder pair: zstd's encoder and decoder
// are documented safe for concurrent use, and repeated NewWriter/
// NewReader calls are the overhead that pattern exists to avoid.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("lencode: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("lencode: zstd decoder initialization failed: " + err.Error())
	}
}

// EncodeBytes writes p as a flagged byte payload: a varint header of
// (length<<1)|flag followed by the payload. It compresses p with zstd
// and keeps whichever of the raw or compressed form is smaller; a tie
// resolves to raw.
func EncodeBytes(w *Writer, p []byte) error {
	compressed := zstdEncoder.EncodeAll(p, nil)
	if len(compressed) < len(p) {
		if err := w.writeVarintHeader(uint64(len(compressed)), 1); err != nil {
			return err
		}
		return w.writeRaw(compressed)
	}
	if err := w.writeVarintHeader(uint64(len(p)), 0); err != nil {
		return err
	}
	return w.writeRaw(p)
}

// DecodeBytes reads a flagged byte payload written by [EncodeBytes],
// using [DefaultMaxFrameLen] as the allocation ceiling.
func DecodeBytes(r *Reader) ([]byte, error) {
	return DecodeBytesLimit(r, DefaultMaxFrameLen)
}

// DecodeBytesLimit is [DecodeBytes] with an explicit ceiling on the
// header's length field, guarding against absurd allocations from a
// corrupt or hostile stream.
func DecodeBytesLimit(r *Reader, maxLen int) ([]byte, error) {
	length, flag, err := r.readVarintHeader()
	if err != nil {
		return nil, err
	}
	if length > uint64(maxLen) {
		return nil, newError(KindInvalidData, "bytes: frame length exceeds limit", nil)
	}
	raw, err := r.readRaw(int(length))
	if err != nil {
		return nil, err
	}
	if flag == 0 {
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil
	}
	decompressed, err := zstdDecoder.DecodeAll(raw, nil)
	if err != nil {
		return nil, newError(KindInvalidData, "bytes: zstd frame error", err)
	}
	return decompressed, nil
}

// EncodeString writes s as a flagged byte payload (identical framing to
// [EncodeBytes], operating on the UTF-8 bytes of s).
func EncodeString(w *Writer, s string) error {
	return EncodeBytes(w, []byte(s))
}

// DecodeString reads a flagged byte payload and validates it as UTF-8,
// using [DefaultMaxFrameLen] as the allocation ceiling.
func DecodeString(r *Reader) (string, error) {
	return DecodeStringLimit(r, DefaultMaxFrameLen)
}

// DecodeStringLimit is [DecodeString] with an explicit allocation
// ceiling. UTF-8 validation runs on the decompressed payload, not the
// raw wire bytes.
func DecodeStringLimit(r *Reader, maxLen int) (string, error) {
	payload, err := DecodeBytesLimit(r, maxLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", newError(KindInvalidData, "string: invalid UTF-8", nil)
	}
	return string(payload), nil
}
