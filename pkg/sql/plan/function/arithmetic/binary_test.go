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

package arithmetic

import (
	"math"
	"testing"

	"github.com/colarith/colarith/pkg/container/block"
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/stretchr/testify/require"
)

func runBinary(t *testing.T, op Operator, left, right *vector.Vector) (*vector.Vector, error) {
	t.Helper()
	blk := block.New()
	li := blk.Append("left", left)
	ri := blk.Append("right", right)
	resultPos := blk.Len()
	err := op.Execute(blk, []int{li, ri}, resultPos)
	if err != nil {
		return nil, err
	}
	out, _ := blk.Get(resultPos)
	return out, nil
}

func TestPlusVecVecMatchesSpecScenario(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_uint8}, []uint8{1, 2, 3})
	right := vector.NewFlat(types.Type{Oid: types.T_uint8}, []uint8{10, 20, 30})

	out, err := runBinary(t, plusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_uint16, out.GetType().Oid)
	require.Equal(t, []uint16{11, 22, 33}, vector.MustFixedCol[uint16](out))
}

func TestPlusVecConstMatchesSpecScenario(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_uint8}, []uint8{1, 2, 3})
	right := vector.NewConst(types.Type{Oid: types.T_uint8}, uint8(250), 3)

	out, err := runBinary(t, plusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, []uint16{251, 252, 253}, vector.MustFixedCol[uint16](out))
}

// TestReturnTypeExecuteAgreement checks §8's core invariant: for every
// operator and every pair of operand types it accepts, ReturnType's
// answer and Execute's actual output type must be the same oid.
func TestReturnTypeExecuteAgreement(t *testing.T) {
	ops := []Operator{
		plusOp{}, minusOp{}, multiplyOp{}, divideOp{}, intDivOp{}, moduloOp{},
		bitAndOp{}, bitOrOp{}, bitXorOp{}, bitShiftLeftOp{}, bitShiftRightOp{},
	}
	operands := []types.T{
		types.T_uint8, types.T_uint16, types.T_uint32, types.T_uint64,
		types.T_int8, types.T_int16, types.T_int32, types.T_int64,
		types.T_float32, types.T_float64,
	}
	for _, op := range ops {
		for _, a := range operands {
			for _, b := range operands {
				rt, err := op.ReturnType([]types.Type{{Oid: a}, {Oid: b}})
				left := constOfType(a, 3)
				right := constOfType(b, 2)
				out, execErr := runBinary(t, op, left, right)
				if err != nil {
					require.Error(t, execErr, "%s(%s,%s): ReturnType rejected but Execute accepted", op.Name(), a, b)
					continue
				}
				require.NoError(t, execErr, "%s(%s,%s): ReturnType accepted but Execute failed: %v", op.Name(), a, b, execErr)
				require.Equal(t, rt.Oid, out.GetType().Oid, "%s(%s,%s): return type/execute disagree", op.Name(), a, b)
			}
		}
	}
}

// constOfType builds a small constant column of a fixed nonzero value
// so that divide/intDiv/modulo don't themselves fail on the
// divide-by-zero edge case while exercising the whole operand grid.
func constOfType(t types.T, n int) *vector.Vector {
	typ := types.Type{Oid: t}
	switch t {
	case types.T_uint8:
		return vector.NewConst[uint8](typ, 7, n)
	case types.T_uint16:
		return vector.NewConst[uint16](typ, 7, n)
	case types.T_uint32:
		return vector.NewConst[uint32](typ, 7, n)
	case types.T_uint64:
		return vector.NewConst[uint64](typ, 7, n)
	case types.T_int8:
		return vector.NewConst[int8](typ, 7, n)
	case types.T_int16:
		return vector.NewConst[int16](typ, 7, n)
	case types.T_int32:
		return vector.NewConst[int32](typ, 7, n)
	case types.T_int64:
		return vector.NewConst[int64](typ, 7, n)
	case types.T_float32:
		return vector.NewConst[float32](typ, 7, n)
	case types.T_float64:
		return vector.NewConst[float64](typ, 7, n)
	}
	panic("constOfType: unsupported oid")
}

// TestPromotionSymmetryForCommutativeOps checks §8's symmetry
// invariant: a commutative op's result type must not depend on
// operand order.
func TestPromotionSymmetryForCommutativeOps(t *testing.T) {
	commutative := []Operator{plusOp{}, multiplyOp{}, bitAndOp{}, bitOrOp{}, bitXorOp{}}
	operands := []types.T{types.T_uint8, types.T_int32, types.T_uint64, types.T_float32, types.T_float64}
	for _, op := range commutative {
		for _, a := range operands {
			for _, b := range operands {
				rtAB, errAB := op.ReturnType([]types.Type{{Oid: a}, {Oid: b}})
				rtBA, errBA := op.ReturnType([]types.Type{{Oid: b}, {Oid: a}})
				require.Equal(t, errAB == nil, errBA == nil, "%s(%s,%s) validity depends on order", op.Name(), a, b)
				if errAB == nil {
					require.Equal(t, rtAB, rtBA, "%s(%s,%s) result type depends on order", op.Name(), a, b)
				}
			}
		}
	}
}

// TestShapeClosureConstConstMatchesVecVecOfFilledConstants checks §8's
// shape-closure invariant for a representative operator.
func TestShapeClosureConstConstMatchesVecVecOfFilledConstants(t *testing.T) {
	n := 4
	a := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 7, n)
	b := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 3, n)
	outConst, err := runBinary(t, plusOp{}, a, b)
	require.NoError(t, err)

	filledA := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{7, 7, 7, 7})
	filledB := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{3, 3, 3, 3})
	outFlat, err := runBinary(t, plusOp{}, filledA, filledB)
	require.NoError(t, err)

	expected := vector.ConstValue[int64](outConst)
	for _, v := range vector.MustFixedCol[int64](outFlat) {
		require.Equal(t, expected, v)
	}
}

// TestFastPathParityForIntDivConstant checks §8's fast-path parity
// invariant directly through the dispatcher (not just the divider
// package in isolation): an i64 column intDiv'd by an eligible i64
// constant, with everything at the same width so the override
// applies in-place, must match plain division.
func TestFastPathParityForIntDivConstant(t *testing.T) {
	values := []int64{0, 1, -1, 9, -9, 1000, -1000, math.MaxInt64, math.MinInt64 + 1}
	left := vector.NewFlat(types.Type{Oid: types.T_int64}, values)
	right := vector.NewConst[int64](types.Type{Oid: types.T_int64}, 7, len(values))

	out, err := runBinary(t, intDivOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_int64, out.GetType().Oid)
	got := vector.MustFixedCol[int64](out)
	for i, v := range values {
		require.Equal(t, v/7, got[i])
	}
}

// TestIntDivOverflowTrapSurvivesWideningToResultType checks §8's
// end-to-end scenario directly: an i32 MIN dividend intDiv'd by an i32
// constant -1 promotes to i64, which is wide enough to represent the
// "true" quotient, but the operator must still raise DivisionOverflow
// because the trap is defined on the dividend's own declared width,
// not the promoted result width. This exercises the fast path (i32/i32
// is eligible once promoted to i64).
func TestIntDivOverflowTrapSurvivesWideningToResultType(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{math.MinInt32, 8})
	right := vector.NewConst[int32](types.Type{Oid: types.T_int32}, -1, 2)

	_, err := runBinary(t, intDivOp{}, left, right)
	require.Error(t, err)
}

// TestIntDivFloatingOperandUsesIntegerProjection checks §3's promotion
// rule for intDiv: a floating operand is truncated to its same-width
// signed integer projection before dividing, and the result type is
// computed from that projection (f32, f32 -> both project to i32 ->
// widened result i64).
func TestIntDivFloatingOperandUsesIntegerProjection(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_float32}, []float32{7.9, -7.9})
	right := vector.NewConst[float32](types.Type{Oid: types.T_float32}, 2, 2)

	rt, err := intDivOp{}.ReturnType([]types.Type{{Oid: types.T_float32}, {Oid: types.T_float32}})
	require.NoError(t, err)
	require.Equal(t, types.T_int64, rt.Oid)

	out, err := runBinary(t, intDivOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, rt.Oid, out.GetType().Oid)
	require.Equal(t, []int64{3, -3}, vector.MustFixedCol[int64](out))
}

// TestModuloRejectsFloatingOperandConsistently checks that the
// documented "reject floating %" policy is enforced symmetrically by
// ReturnType and Execute, not just one of them.
func TestModuloRejectsFloatingOperandConsistently(t *testing.T) {
	_, err := moduloOp{}.ReturnType([]types.Type{{Oid: types.T_float32}, {Oid: types.T_int32}})
	require.Error(t, err)

	left := vector.NewFlat(types.Type{Oid: types.T_float32}, []float32{7.5})
	right := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 2, 1)
	_, err = runBinary(t, moduloOp{}, left, right)
	require.Error(t, err)
}

func TestDivideAlwaysProducesFloat(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{7, 9})
	right := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{2, 4})

	out, err := runBinary(t, divideOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_float32, out.GetType().Oid)
	require.Equal(t, []float32{3.5, 2.25}, vector.MustFixedCol[float32](out))
}

func TestBitwiseRejectsFloatingOperands(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_float32}, []float32{1, 2})
	right := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1, 2})

	_, err := bitAndOp{}.ReturnType([]types.Type{{Oid: types.T_float32}, {Oid: types.T_int32}})
	require.Error(t, err)

	_, err = runBinary(t, bitAndOp{}, left, right)
	require.Error(t, err)
}

func TestIntDivByZeroErrors(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1, 2, 3})
	right := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 0, 3)

	_, err := runBinary(t, intDivOp{}, left, right)
	require.Error(t, err)
}

func TestModuloTakesSignOfDividend(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{-7, 7})
	right := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 3, 2)

	out, err := runBinary(t, moduloOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, []int32{-1, 1}, vector.MustFixedCol[int32](out))
}

func TestRoundTripIdentities(t *testing.T) {
	col := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{5, -5, 0, 42})
	zero := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 0, 4)
	one := vector.NewConst[int32](types.Type{Oid: types.T_int32}, 1, 4)

	plusZero, err := runBinary(t, plusOp{}, col, zero)
	require.NoError(t, err)
	require.Equal(t, []int64{5, -5, 0, 42}, vector.MustFixedCol[int64](plusZero))

	timesOne, err := runBinary(t, multiplyOp{}, col, one)
	require.NoError(t, err)
	require.Equal(t, []int64{5, -5, 0, 42}, vector.MustFixedCol[int64](timesOne))

	xorSelf, err := runBinary(t, bitXorOp{}, col, col)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 0, 0}, vector.MustFixedCol[int32](xorSelf))

	andSelf, err := runBinary(t, bitAndOp{}, col, col)
	require.NoError(t, err)
	require.Equal(t, []int32{5, -5, 0, 42}, vector.MustFixedCol[int32](andSelf))
}

func TestArityMismatchErrors(t *testing.T) {
	_, err := plusOp{}.ReturnType([]types.Type{{Oid: types.T_int32}})
	require.Error(t, err)

	blk := block.New()
	li := blk.Append("left", vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1}))
	err = plusOp{}.Execute(blk, []int{li}, blk.Len())
	require.Error(t, err)
}
