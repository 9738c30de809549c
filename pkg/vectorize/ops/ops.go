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

// Package ops holds the per-operator scalar apply functions: one pure
// function per operator, parameterized over the result type R supplied
// by the caller (the traits package), so intermediate expressions
// never truncate before the caller's chosen promotion.
package ops

import (
	"unsafe"

	"github.com/colarith/colarith/pkg/common/moerr"
	"golang.org/x/exp/constraints"
)

// Numeric is the union of every scalar kind the core's ops operate on.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Plus computes a + b in R, converting both operands to R first so
// the addition itself never overflows a narrower intermediate type.
func Plus[A, B Numeric, R Numeric](a A, b B) R {
	return R(a) + R(b)
}

// Minus computes a - b in R.
func Minus[A, B Numeric, R Numeric](a A, b B) R {
	return R(a) - R(b)
}

// Multiply computes a * b in R.
func Multiply[A, B Numeric, R Numeric](a A, b B) R {
	return R(a) * R(b)
}

// DivideFloating computes the true (always-floating) quotient a / b.
func DivideFloating[A, B Numeric, R constraints.Float](a A, b B) R {
	return R(a) / R(b)
}

// DivideIntegral computes the truncated integer quotient a / b,
// raising DivisionByZero when b == 0 and DivisionOverflow when both
// operands are signed, b == -1, and a is the minimum representable
// value of A — the case that traps the host idiv instruction. Go's
// own division silently wraps in that case instead of trapping, so
// the check must be explicit rather than relying on a runtime panic.
func DivideIntegral[A, B constraints.Integer, R constraints.Integer](op string, a A, b B) (R, error) {
	if b == 0 {
		return 0, moerr.NewDivisionByZero(op)
	}
	if isSignedInt[A]() && isSignedInt[B]() && b == B(0)-1 && a == minSignedValue[A]() {
		return 0, moerr.NewDivisionOverflow(op)
	}
	return R(a) / R(b), nil
}

// Modulo computes the truncated-division remainder a % b, taking the
// sign of the dividend (Go's own % operator already implements this).
// Unlike division, modulo by -1 never overflows (the result is always
// representable as 0), so only the divide-by-zero check is needed.
func Modulo[A, B constraints.Integer, R constraints.Integer](op string, a A, b B) (R, error) {
	if b == 0 {
		return 0, moerr.NewDivisionByZero(op)
	}
	return R(a) % R(b), nil
}

// BitAnd, BitOr and BitXor implement the three bitwise binary
// operators; all are defined only for integer operands.
func BitAnd[A, B constraints.Integer, R constraints.Integer](a A, b B) R {
	return R(a) & R(b)
}

func BitOr[A, B constraints.Integer, R constraints.Integer](a A, b B) R {
	return R(a) | R(b)
}

func BitXor[A, B constraints.Integer, R constraints.Integer](a A, b B) R {
	return R(a) ^ R(b)
}

// BitShiftLeft and BitShiftRight assume the right operand, after
// promotion to R, is non-negative and smaller than R's bit width;
// behavior outside that range follows Go's own shift semantics, which
// are always defined (see DESIGN.md's Open Question decision on shift
// semantics).
func BitShiftLeft[A, B constraints.Integer, R constraints.Integer](a A, b B) R {
	return R(a) << uint64(b)
}

func BitShiftRight[A, B constraints.Integer, R constraints.Integer](a A, b B) R {
	return R(a) >> uint64(b)
}

// Negate computes unary -a in R.
func Negate[A Numeric, R Numeric](a A) R {
	return -R(a)
}

// BitNot computes unary ~a in R.
func BitNot[A constraints.Integer, R constraints.Integer](a A) R {
	return ^R(a)
}

// isSignedInt reports whether T is a signed integer type, detected
// generically by converting the literal -1 into T and checking its
// sign: for a signed type this yields -1 (negative); for an unsigned
// type it yields the type's maximum value (never negative).
func isSignedInt[T constraints.Integer]() bool {
	return T(0)-1 < 0
}

// minSignedValue returns the minimum representable value of a signed
// integer type T, computed from T's storage width rather than a
// fixed-width constant so the same generic function serves i8..i64.
func minSignedValue[T constraints.Integer]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	return T(1) << (bits - 1)
}
