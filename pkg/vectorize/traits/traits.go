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

// Package traits implements the compile-time promotion lattice: a
// pure, total function from (LeftType, RightType, OpFamily) to
// ResultType over the plain numeric scalar set. It is queried by both
// the return-type computation and the kernel selection in
// pkg/sql/plan/function/arithmetic, so it must be deterministic and
// side-effect free.
//
// Date and DateTime are out of scope here: the date overlay sits in
// front of this package for the operators that consult it, and only
// pairs with no date operand reach this package through it. ResultOf
// itself rejects any date operand, which is what intDiv and modulo
// (which skip the overlay) rely on.
package traits

import "github.com/colarith/colarith/pkg/container/types"

// OpFamily names one of the binary promotion rules of §3's table. Each
// concrete operator (plus, intDiv, bitAnd, ...) maps onto exactly one
// family; several operators share a family (plus and multiply both
// use AddMul, bitAnd/bitOr/bitXor/bitShiftLeft/bitShiftRight all use
// Bitwise).
type OpFamily uint8

const (
	AddMul OpFamily = iota
	Sub
	TrueDiv
	IntDiv
	Mod
	Bitwise
)

// UnaryFamily names one of the two unary promotion rules.
type UnaryFamily uint8

const (
	UnaryNegate UnaryFamily = iota
	UnaryBitNot
)

// ResultOf returns the result scalar type for (a, b) under family, and
// false if the combination is invalid. Date and DateTime operands are
// always invalid here; the caller is expected to have already
// consulted the date overlay.
func ResultOf(family OpFamily, a, b types.T) (types.T, bool) {
	if a.IsDateOrDateTime() || b.IsDateOrDateTime() {
		return 0, false
	}
	switch family {
	case AddMul:
		return resultOfAddMul(a, b)
	case Sub:
		return resultOfSub(a, b)
	case TrueDiv:
		return resultOfTrueDiv(a, b)
	case IntDiv:
		return resultOfIntDiv(a, b)
	case Mod:
		return resultOfMod(a, b)
	case Bitwise:
		return resultOfBitwise(a, b)
	}
	return 0, false
}

// ResultOfUnary returns the result scalar type for a under family, and
// false if invalid.
func ResultOfUnary(family UnaryFamily, a types.T) (types.T, bool) {
	if a.IsDateOrDateTime() {
		return 0, false
	}
	switch family {
	case UnaryNegate:
		return resultOfNegate(a)
	case UnaryBitNot:
		return resultOfBitNot(a)
	}
	return 0, false
}

func resultOfAddMul(a, b types.T) (types.T, bool) {
	if a.Floating() || b.Floating() {
		return types.T_float64, true
	}
	width := widenOneStep(max(a.Width(), b.Width()))
	signed := a.Signed() || b.Signed()
	return integralTypeFor(width, signed), true
}

func resultOfSub(a, b types.T) (types.T, bool) {
	if a.Floating() || b.Floating() {
		return types.T_float64, true
	}
	width := widenOneStep(max(a.Width(), b.Width()))
	return integralTypeFor(width, true), true
}

func resultOfTrueDiv(a, b types.T) (types.T, bool) {
	if max(a.Width(), b.Width()) > 32 {
		return types.T_float64, true
	}
	return types.T_float32, true
}

func resultOfIntDiv(a, b types.T) (types.T, bool) {
	pa, sa := integerProjection(a)
	pb, sb := integerProjection(b)
	width := widenOneStep(max(pa, pb))
	signed := sa || sb
	return integralTypeFor(width, signed), true
}

func resultOfMod(a, b types.T) (types.T, bool) {
	if a.Floating() || b.Floating() {
		return 0, false
	}
	pa, sa := integerProjection(a)
	return integralTypeFor(pa, sa), true
}

func resultOfBitwise(a, b types.T) (types.T, bool) {
	if a.Floating() || b.Floating() {
		return 0, false
	}
	width := max(a.Width(), b.Width())
	signed := a.Signed() || b.Signed()
	return integralTypeFor(width, signed), true
}

func resultOfNegate(a types.T) (types.T, bool) {
	if a.Floating() {
		return a, true
	}
	width := widenOneStep(a.Width())
	return integralTypeFor(width, true), true
}

func resultOfBitNot(a types.T) (types.T, bool) {
	if a.Floating() {
		return 0, false
	}
	return a, true
}

// widenOneStep doubles width and caps it at 64, the "widen by one
// step" rule of §3's table.
func widenOneStep(width int) int {
	w := width * 2
	if w > 64 {
		w = 64
	}
	return w
}

// integerProjection returns the (width, signed) of a's integer
// projection: unchanged for integer a, or the same-width signed
// integer for floating a (f32 -> i32, f64 -> i64).
func integerProjection(a types.T) (width int, signed bool) {
	if a.Floating() {
		return a.Width(), true
	}
	return a.Width(), a.Signed()
}

func integralTypeFor(width int, signed bool) types.T {
	switch width {
	case 8:
		if signed {
			return types.T_int8
		}
		return types.T_uint8
	case 16:
		if signed {
			return types.T_int16
		}
		return types.T_uint16
	case 32:
		if signed {
			return types.T_int32
		}
		return types.T_uint32
	default:
		if signed {
			return types.T_int64
		}
		return types.T_uint64
	}
}

