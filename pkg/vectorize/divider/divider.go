// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package divider implements the fast-path override for integer
// divide/modulo by a runtime constant: a precomputed multiplicative
// reciprocal ("divider") that replaces a hardware divide per element
// with a multiply and a shift, plus the batched loop that applies it.
//
// The reciprocal is the classic Granlund-Montgomery construction: for
// a width-N divisor d, pick shift l = ceil(log2(|d|)) and magic
// M = floor((2^(N+l) + 2^l) / |d|); then floor(a/|d|) == floor(a*M /
// 2^(N+l)) exactly for every a in [0, 2^N). M can need one bit more
// than a 64-bit register holds when N is itself 64, which is handled
// below by tracking that extra bit explicitly rather than widening
// the register further.
package divider

import (
	"math/bits"
	"unsafe"

	"github.com/colarith/colarith/pkg/common/moerr"
	"golang.org/x/exp/constraints"
)

// Eligible mirrors §4.D's override condition: left width in {32, 64},
// matching signedness, right width no wider than left.
func Eligible(leftWidth, rightWidth int, leftSigned, rightSigned bool) bool {
	if leftSigned != rightSigned {
		return false
	}
	if leftWidth != 32 && leftWidth != 64 {
		return false
	}
	return rightWidth <= leftWidth
}

// Divider is a precomputed reciprocal for a single runtime divisor,
// usable for both integer divide and the modulo it's derived from.
// Construct with New once the divisor's special cases (zero, one,
// minus one) have already been handled by the caller.
type Divider[T constraints.Integer] struct {
	signed       bool
	negD         bool
	absD         uint64
	powerOfTwo   bool
	largeDivisor bool
	shift        uint
	totalShift   uint
	hasExtra     bool
	magicLow     uint64
}

// New builds a Divider for divisor d, which must not be 0, 1, or -1 —
// those are handled by the caller before reaching the generic
// reciprocal path (§4.D steps 1-3).
func New[T constraints.Integer](d T) *Divider[T] {
	var zero T
	width := uint(unsafe.Sizeof(zero)) * 8
	signed := T(0)-1 < 0

	dv := &Divider[T]{signed: signed}
	if signed && d < 0 {
		dv.negD = true
		dv.absD = -uint64(d)
	} else {
		dv.absD = uint64(d)
	}
	absD := dv.absD

	if absD&(absD-1) == 0 {
		dv.powerOfTwo = true
		dv.shift = uint(bits.TrailingZeros64(absD))
		return dv
	}

	l := uint(bits.Len64(absD - 1))
	if l == 64 {
		// Only reachable when width == 64 and absD exceeds 2^63: the
		// quotient is 0 or 1 and the reciprocal machinery below would
		// need a 65-bit shift amount, so settle it by comparison.
		dv.largeDivisor = true
		return dv
	}

	e := width + l
	if e < 64 {
		numerator := (uint64(1) << e) + (uint64(1) << l)
		magic, _ := bits.Div64(0, numerator, absD)
		dv.shift = l
		dv.totalShift = e
		dv.magicLow = magic
		return dv
	}

	// e >= 64: the magic number needs one bit beyond a uint64, tracked
	// via hasExtra/magicLow rather than widening the register further.
	hi := uint64(1) << l
	lo := uint64(1) << l
	hi -= absD
	magic, _ := bits.Div64(hi, lo, absD)
	dv.shift = l
	dv.magicLow = magic
	dv.hasExtra = true
	return dv
}

// divAbs returns floor(a / absD) for a in [0, 2^64).
func (dv *Divider[T]) divAbs(a uint64) uint64 {
	switch {
	case dv.powerOfTwo:
		return a >> dv.shift
	case dv.largeDivisor:
		if a >= dv.absD {
			return 1
		}
		return 0
	}
	hi0, lo0 := bits.Mul64(a, dv.magicLow)
	if !dv.hasExtra {
		return shiftRight128(hi0, lo0, dv.totalShift)
	}
	hi2, carry := bits.Add64(hi0, a, 0)
	return (hi2 >> dv.shift) | (carry << (64 - dv.shift))
}

func shiftRight128(hi, lo uint64, n uint) uint64 {
	switch {
	case n == 0:
		return lo
	case n < 64:
		return (hi << (64 - n)) | (lo >> n)
	case n == 64:
		return hi
	default:
		return hi >> (n - 64)
	}
}

// Div returns the truncated quotient a / d for the divisor d this
// Divider was built from, matching Go's own (and the host idiv's)
// round-toward-zero semantics for signed T.
func (dv *Divider[T]) Div(a T) T {
	if !dv.signed {
		return T(dv.divAbs(uint64(a)))
	}
	negA := a < 0
	var absA uint64
	if negA {
		absA = -uint64(a)
	} else {
		absA = uint64(a)
	}
	q := dv.divAbs(absA)
	if negA != dv.negD {
		q = -q
	}
	return T(q)
}

// BatchSize returns the element count the fast-path loop processes
// per batch: the portable analogue of the original's "16 / sizeof(A)"
// 128-bit SIMD register width, re-expressed as an unrolled scalar
// batch since Go has no portable SIMD intrinsic (see DESIGN.md).
func BatchSize[T constraints.Integer]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size <= 0 || size > 16 {
		return 1
	}
	return 16 / size
}

// DivideVec divides every element of a by dv's divisor into out,
// walking the largest batch-aligned prefix first and a scalar tail
// for the remainder, per §4.D step 5.
func (dv *Divider[T]) DivideVec(a, out []T) {
	batch := BatchSize[T]()
	n := len(a)
	aligned := (n / batch) * batch
	for i := 0; i < aligned; i += batch {
		for j := 0; j < batch; j++ {
			out[i+j] = dv.Div(a[i+j])
		}
	}
	for i := aligned; i < n; i++ {
		out[i] = dv.Div(a[i])
	}
}

// ModuloVec derives the remainder as a - Div(a)*d per element; no
// distinct fast-path formula is needed to beat the scalar modulo loop
// (§4.D step 6).
func (dv *Divider[T]) ModuloVec(a []T, d T, out []T) {
	for i, v := range a {
		out[i] = v - dv.Div(v)*d
	}
}

// FastDivide implements §4.D's full decision tree for intDiv by a
// runtime constant b: divide-by-zero, the b == -1 negate shortcut
// (preserving the MIN/-1 overflow trap), the b == 1 identity, and
// otherwise the reciprocal divider. Callers must have already checked
// Eligible; FastDivide does not re-check it.
func FastDivide[T constraints.Integer](op string, a []T, b T, out []T) error {
	if b == 0 {
		return moerr.NewDivisionByZero(op)
	}
	signed := T(0)-1 < 0
	if signed && b == T(0)-1 {
		min := minSignedValue[T]()
		for _, v := range a {
			if v == min {
				return moerr.NewDivisionOverflow(op)
			}
		}
		for i, v := range a {
			out[i] = -v
		}
		return nil
	}
	if b == 1 {
		copy(out, a)
		return nil
	}
	New(b).DivideVec(a, out)
	return nil
}

// FastModulo implements §4.D's decision tree for modulo by a runtime
// constant b: divide-by-zero, the b == 1 / b == -1 all-zero shortcut,
// and otherwise the reciprocal divider's derived remainder.
func FastModulo[T constraints.Integer](op string, a []T, b T, out []T) error {
	if b == 0 {
		return moerr.NewDivisionByZero(op)
	}
	signed := T(0)-1 < 0
	if b == 1 || (signed && b == T(0)-1) {
		for i := range out {
			out[i] = 0
		}
		return nil
	}
	New(b).ModuloVec(a, b, out)
	return nil
}

func minSignedValue[T constraints.Integer]() T {
	var zero T
	bitsWide := unsafe.Sizeof(zero) * 8
	return T(1) << (bitsWide - 1)
}
