// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

// Package lencode implements a compact binary serialization codec.
//
// A lencode stream is flat and positional: there are no tags and no
// framing beyond what each type's encoding defines. The decoder
// reconstructs structure purely from the types it is asked to decode, in
// the order they were encoded — lencode is not self-describing the way a
// tagged format (CBOR, JSON) is.
//
// Two levers set lencode apart from a plain varint codec:
//
//   - Opportunistic compression: [EncodeBytes] and [EncodeString] try a
//     zstd pass over the payload and keep whichever of the raw or
//     compressed form is smaller, recording the choice in one flag bit
//     of the length header.
//   - Stream-scoped deduplication: a [DedupEncoder]/[DedupDecoder] pair,
//     created fresh per top-level call, replaces repeated instances of a
//     dedup-eligible type with a small back-reference ID after the first
//     occurrence. See [EncodeDeduped] and [DecodeDeduped].
//
// # Layers
//
// The codec is built bottom-up:
//
//   - [Sink] / [Source] — the byte I/O capability pair every other layer
//     is generic over.
//   - Pack — a fixed-width, endian-stable byte layout for scalars
//     ([AppendPackUint8] .. [AppendPackInt128], [AppendPackBool],
//     [AppendPackFloat32], [AppendPackFloat64]). Pack is the canonical,
//     context-free identity used by the dedup table; it never consults a
//     dedup handle and never varies its own output.
//   - Varint — [AppendUvarint64], [AppendSvarint64], and their 8/16/32/128
//     siblings: LEB128 with a continuation bit per byte, signed values
//     mapped through zigzag first.
//   - Flagged bytes/strings — [EncodeBytes] / [DecodeBytes] and
//     [EncodeString] / [DecodeString].
//   - Aggregates and dedup — [EncodeSlice], [EncodeMap], [EncodeOption],
//     the Tuple2..Tuple9 family, and the dedup protocol itself.
//
// # Top-level surface
//
// [Encode] and [Decode] cover the common case (no deduplication).
// [EncodeExt] and [DecodeExt] accept an explicit dedup handle; passing nil
// is identical to the non-ext form. A type opts into the wire format by
// implementing [EncodeTo] (value receiver) and [DecodeFrom] (pointer
// receiver, via the DecodeFromPtr constraint used by [Decode]/[DecodeExt]).
// A type additionally opts into deduplication by implementing [Packable] /
// [Unpackable] and being passed through [EncodeDeduped] / [DecodeDeduped]
// instead of the type's own EncodeTo/DecodeFrom.
//
// # Errors
//
// Every failure is a value of type [*Error], classified into one of four
// kinds: [KindWriterOutOfSpace], [KindReaderOutOfData], [KindInvalidData],
// or [KindOther]. Decoders make no recovery attempt after a failure — the
// caller discards the partially-decoded value.
package lencode
