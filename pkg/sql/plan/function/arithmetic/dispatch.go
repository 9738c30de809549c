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

// Package arithmetic implements the two-phase symmetric dispatcher
// (return-type phase, execution phase) over the closed candidate list
// of scalar types, for every named operator identifier. Each
// operator's dispatch is a three-level binding: the left operand's
// oid picks a Go type A, the right operand's oid picks B, and the
// already-computed result oid picks R — at which point the fully
// instantiated scalar op (from pkg/vectorize/ops) is handed to the
// shape-specialized kernels (pkg/vectorize/kernel).
package arithmetic

import (
	"github.com/colarith/colarith/pkg/common/moerr"
	"github.com/colarith/colarith/pkg/container/block"
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/colarith/colarith/pkg/vectorize/kernel"
)

// fixedSizeInteger is the integer subset of types.FixedSizeT, used by
// the bitwise operators (bitAnd, bitOr, bitXor, the bit shifts), which
// are undefined for the floating-point members of FixedSizeT.
type fixedSizeInteger interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64
}

// Operator is the function-object contract every named arithmetic
// identifier implements, per §6.
type Operator interface {
	Name() string
	ReturnType(argTypes []types.Type) (types.Type, error)
	Execute(b *block.Block, args []int, result int) error
}

// oidOf maps a Go element type back to its oid, the inverse of the
// switches that pick A/B/R from a runtime oid.
func oidOf[T types.FixedSizeT]() types.T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return types.T_uint8
	case uint16:
		return types.T_uint16
	case uint32:
		return types.T_uint32
	case uint64:
		return types.T_uint64
	case int8:
		return types.T_int8
	case int16:
		return types.T_int16
	case int32:
		return types.T_int32
	case int64:
		return types.T_int64
	case float32:
		return types.T_float32
	case float64:
		return types.T_float64
	case types.Date:
		return types.T_date
	case types.DateTime:
		return types.T_datetime
	}
	panic("arithmetic: oidOf called on a non-candidate type")
}

func checkArity(op string, got, want int) error {
	if got != want {
		return moerr.NewArityMismatch(op, want, got)
	}
	return nil
}

// involvesDate reports whether either operand is a date kind, the
// signal that the date overlay (§4.G) must be consulted before the
// plain numeric lattice.
func involvesDate(a, b types.T) bool {
	return a.IsDateOrDateTime() || b.IsDateOrDateTime()
}

// executeShapes runs the shape-specialized binary kernel for a
// non-failing scalar op, allocating the output column at result's
// length/shape per §4.E's execution phase.
func executeShapes[A, B, R types.FixedSizeT](blk *block.Block, args []int, result int, f kernel.BinaryFunc[A, B, R]) error {
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	n := left.Length()
	resultTyp := types.Type{Oid: oidOf[R]()}

	switch {
	case !left.IsConst() && !right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		kernel.VecVec(left, right, out, f)
		blk.Set(result, out)
	case !left.IsConst() && right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		kernel.VecConst(left, right, out, f)
		blk.Set(result, out)
	case left.IsConst() && !right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		kernel.ConstVec(left, right, out, f)
		blk.Set(result, out)
	default:
		v := kernel.ConstConst(left, right, f)
		blk.Set(result, vector.NewConst[R](resultTyp, v, n))
	}
	return nil
}

// executeShapesErr is executeShapes' failing analogue, used by
// intDiv/modulo. The vec_const shape additionally tries the fast-path
// divider override (§4.D) before falling back to the generic kernel.
func executeShapesErr[A, B, R types.FixedSizeT](blk *block.Block, args []int, result int, f kernel.BinaryFuncErr[A, B, R], fast func(left *vector.Vector, right *vector.Vector, out *vector.Vector) (bool, error)) error {
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	n := left.Length()
	resultTyp := types.Type{Oid: oidOf[R]()}

	switch {
	case !left.IsConst() && !right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		if err := kernel.VecVecErr(left, right, out, f); err != nil {
			return err
		}
		blk.Set(result, out)
	case !left.IsConst() && right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		if fast != nil {
			ok, err := fast(left, right, out)
			if err != nil {
				return err
			}
			if !ok {
				if err := kernel.VecConstErr(left, right, out, f); err != nil {
					return err
				}
			}
		} else if err := kernel.VecConstErr(left, right, out, f); err != nil {
			return err
		}
		blk.Set(result, out)
	case left.IsConst() && !right.IsConst():
		out := vector.NewFlat[R](resultTyp, make([]R, n))
		if err := kernel.ConstVecErr(left, right, out, f); err != nil {
			return err
		}
		blk.Set(result, out)
	default:
		v, err := kernel.ConstConstErr(left, right, f)
		if err != nil {
			return err
		}
		blk.Set(result, vector.NewConst[R](resultTyp, v, n))
	}
	return nil
}

// executeUnaryShapes is executeShapes' one-argument analogue.
func executeUnaryShapes[A, R types.FixedSizeT](blk *block.Block, args []int, result int, f kernel.UnaryFunc[A, R]) error {
	in, _ := blk.Get(args[0])
	n := in.Length()
	resultTyp := types.Type{Oid: oidOf[R]()}

	if in.IsConst() {
		blk.Set(result, vector.NewConst[R](resultTyp, kernel.Const(in, f), n))
		return nil
	}
	out := vector.NewFlat[R](resultTyp, make([]R, n))
	kernel.Vec(in, out, f)
	blk.Set(result, out)
	return nil
}
