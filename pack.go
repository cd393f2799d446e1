// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import (
	"encoding/binary"
	"math"
)

// Packable is implemented by types that have a canonical, fixed-width,
// context-free byte form — the identity [DedupEncoder] uses to detect
// repeats. PackSize must be constant for a given Go type:
// [DecodeDeduped] calls it before UnpackFrom to know how many bytes to
// read from the stream.
//
// A Packable implementation must never vary its output based on
// anything but v itself — no dedup handle, no compression, no length
// prefix beyond the fixed width. This is what makes Pack safe to use as
// a map key: two distinct logical values always produce distinct Pack
// byte strings, deterministically and without collisions.
type Packable interface {
	// PackSize returns the number of bytes AppendPack will append.
	PackSize() int
	// AppendPack appends the canonical byte form of the value to dst
	// and returns the extended slice.
	AppendPack(dst []byte) []byte
}

// Unpackable is the pointer-receiver counterpart of [Packable]:
// UnpackFrom reads exactly PackSize() bytes from the front of src and
// populates the receiver.
type Unpackable interface {
	UnpackFrom(src []byte) error
}

// The AppendPack*/Unpack* functions below are the scalar building blocks
// Pack composes over: a user record's AppendPack is just these calls
// concatenated in field order.
//
// encoding/binary's LittleEndian accessors already do the explicit bit
// shifting needed for a stable byte layout on big-endian hosts (as
// opposed to a raw memory reinterpretation), so there is no separate
// byte-swap branch here — using encoding/binary *is* the portable
// implementation.

// AppendPackBool appends the 1-byte canonical form of v (0x00 or 0x01).
func AppendPackBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// UnpackBool reads the 1-byte canonical form written by
// [AppendPackBool]. Any byte other than 0x00/0x01 is KindInvalidData.
func UnpackBool(src []byte) (bool, error) {
	if len(src) < 1 {
		return false, newError(KindReaderOutOfData, "pack: bool", nil)
	}
	switch src[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newError(KindInvalidData, "pack: bool byte not 0 or 1", nil)
	}
}

// AppendPackUint8 appends the 1-byte canonical form of v.
func AppendPackUint8(dst []byte, v uint8) []byte { return append(dst, v) }

// UnpackUint8 reads the 1-byte canonical form written by [AppendPackUint8].
func UnpackUint8(src []byte) (uint8, error) {
	if len(src) < 1 {
		return 0, newError(KindReaderOutOfData, "pack: u8", nil)
	}
	return src[0], nil
}

// AppendPackInt8 appends the 1-byte canonical form of v.
func AppendPackInt8(dst []byte, v int8) []byte { return append(dst, byte(v)) }

// UnpackInt8 reads the 1-byte canonical form written by [AppendPackInt8].
func UnpackInt8(src []byte) (int8, error) {
	v, err := UnpackUint8(src)
	return int8(v), err
}

// AppendPackUint16 appends the 2-byte little-endian canonical form of v.
func AppendPackUint16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

// UnpackUint16 reads the 2-byte canonical form written by [AppendPackUint16].
func UnpackUint16(src []byte) (uint16, error) {
	if len(src) < 2 {
		return 0, newError(KindReaderOutOfData, "pack: u16", nil)
	}
	return binary.LittleEndian.Uint16(src), nil
}

// AppendPackInt16 appends the 2-byte little-endian canonical form of v.
func AppendPackInt16(dst []byte, v int16) []byte {
	return AppendPackUint16(dst, uint16(v))
}

// UnpackInt16 reads the 2-byte canonical form written by [AppendPackInt16].
func UnpackInt16(src []byte) (int16, error) {
	v, err := UnpackUint16(src)
	return int16(v), err
}

// AppendPackUint32 appends the 4-byte little-endian canonical form of v.
func AppendPackUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// UnpackUint32 reads the 4-byte canonical form written by [AppendPackUint32].
func UnpackUint32(src []byte) (uint32, error) {
	if len(src) < 4 {
		return 0, newError(KindReaderOutOfData, "pack: u32", nil)
	}
	return binary.LittleEndian.Uint32(src), nil
}

// AppendPackInt32 appends the 4-byte little-endian canonical form of v.
func AppendPackInt32(dst []byte, v int32) []byte {
	return AppendPackUint32(dst, uint32(v))
}

// UnpackInt32 reads the 4-byte canonical form written by [AppendPackInt32].
func UnpackInt32(src []byte) (int32, error) {
	v, err := UnpackUint32(src)
	return int32(v), err
}

// AppendPackUint64 appends the 8-byte little-endian canonical form of v.
func AppendPackUint64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// UnpackUint64 reads the 8-byte canonical form written by [AppendPackUint64].
func UnpackUint64(src []byte) (uint64, error) {
	if len(src) < 8 {
		return 0, newError(KindReaderOutOfData, "pack: u64", nil)
	}
	return binary.LittleEndian.Uint64(src), nil
}

// AppendPackInt64 appends the 8-byte little-endian canonical form of v.
func AppendPackInt64(dst []byte, v int64) []byte {
	return AppendPackUint64(dst, uint64(v))
}

// UnpackInt64 reads the 8-byte canonical form written by [AppendPackInt64].
func UnpackInt64(src []byte) (int64, error) {
	v, err := UnpackUint64(src)
	return int64(v), err
}

// AppendPackUint128 appends the 16-byte little-endian canonical form of
// v: the low 8 bytes of v.Lo followed by the low 8 bytes of v.Hi.
func AppendPackUint128(dst []byte, v Uint128) []byte {
	dst = AppendPackUint64(dst, v.Lo)
	dst = AppendPackUint64(dst, v.Hi)
	return dst
}

// UnpackUint128 reads the 16-byte canonical form written by [AppendPackUint128].
func UnpackUint128(src []byte) (Uint128, error) {
	if len(src) < 16 {
		return Uint128{}, newError(KindReaderOutOfData, "pack: u128", nil)
	}
	return Uint128{Lo: binary.LittleEndian.Uint64(src[0:8]), Hi: binary.LittleEndian.Uint64(src[8:16])}, nil
}

// AppendPackInt128 appends the 16-byte little-endian canonical form of v.
func AppendPackInt128(dst []byte, v Int128) []byte {
	return AppendPackUint128(dst, v.asUint128())
}

// UnpackInt128 reads the 16-byte canonical form written by [AppendPackInt128].
func UnpackInt128(src []byte) (Int128, error) {
	v, err := UnpackUint128(src)
	if err != nil {
		return Int128{}, err
	}
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, nil
}

// AppendPackFloat32 appends the 4-byte little-endian canonical form of v.
func AppendPackFloat32(dst []byte, v float32) []byte {
	return AppendPackUint32(dst, math.Float32bits(v))
}

// UnpackFloat32 reads the 4-byte canonical form written by [AppendPackFloat32].
func UnpackFloat32(src []byte) (float32, error) {
	v, err := UnpackUint32(src)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// AppendPackFloat64 appends the 8-byte little-endian canonical form of v.
func AppendPackFloat64(dst []byte, v float64) []byte {
	return AppendPackUint64(dst, math.Float64bits(v))
}

// UnpackFloat64 reads the 8-byte canonical form written by [AppendPackFloat64].
func UnpackFloat64(src []byte) (float64, error) {
	v, err := UnpackUint64(src)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
