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

// Operators in this file each follow the same three-level binding:
// the left operand's oid picks a Go type A (BindLeft), the right
// operand's oid picks B (BindRight), and the already-computed result
// oid picks R (Execute) -- at which point the scalar op from
// pkg/vectorize/ops is fully instantiated and handed to the
// shape-specialized kernels. The three levels exist because Go
// generics need every type parameter fixed at compile time; nothing
// here is search, it is just converting three already-known runtime
// oids into the matching compile-time types one at a time.
package arithmetic

import (
	"github.com/colarith/colarith/pkg/common/moerr"
	"github.com/colarith/colarith/pkg/container/block"
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/colarith/colarith/pkg/vectorize/ops"
	"github.com/colarith/colarith/pkg/vectorize/traits"
)

// plusOp implements "plus".
type plusOp struct{}

func (plusOp) Name() string { return "plus" }

func (plusOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("plus", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("plus", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("plus", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.AddMul, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("plus", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (plusOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("plus", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("plus", a, b); !ok {
			return moerr.NewInvalidArgumentType("plus", a, b)
		}
		return executeDate("plus", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.AddMul, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("plus", a, b)
	}
	return plusBindLeft(a, b, rt, blk, args, result)
}

func plusBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return plusBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return plusBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return plusBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return plusBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return plusBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return plusBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return plusBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return plusBindRight[int64](b, rt, blk, args, result)
	case types.T_float32:
		return plusBindRight[float32](b, rt, blk, args, result)
	case types.T_float64:
		return plusBindRight[float64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("plus", a, b)
}

func plusBindRight[A types.FixedSizeT](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return plusExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return plusExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return plusExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return plusExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return plusExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return plusExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return plusExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return plusExecute[A, int64](rt, blk, args, result)
	case types.T_float32:
		return plusExecute[A, float32](rt, blk, args, result)
	case types.T_float64:
		return plusExecute[A, float64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("plus", oidOf[A](), b)
}

func plusExecute[A, B types.FixedSizeT](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Plus[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Plus[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Plus[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Plus[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Plus[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Plus[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Plus[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Plus[A, B, int64])
	case types.T_float32:
		return executeShapes(blk, args, result, ops.Plus[A, B, float32])
	case types.T_float64:
		return executeShapes(blk, args, result, ops.Plus[A, B, float64])
	}
	panic("arithmetic: plus result oid out of range")
}

// minusOp implements "minus".
type minusOp struct{}

func (minusOp) Name() string { return "minus" }

func (minusOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("minus", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("minus", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("minus", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Sub, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("minus", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (minusOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("minus", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("minus", a, b); !ok {
			return moerr.NewInvalidArgumentType("minus", a, b)
		}
		return executeDate("minus", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Sub, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("minus", a, b)
	}
	return minusBindLeft(a, b, rt, blk, args, result)
}

func minusBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return minusBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return minusBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return minusBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return minusBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return minusBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return minusBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return minusBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return minusBindRight[int64](b, rt, blk, args, result)
	case types.T_float32:
		return minusBindRight[float32](b, rt, blk, args, result)
	case types.T_float64:
		return minusBindRight[float64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("minus", a, b)
}

func minusBindRight[A types.FixedSizeT](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return minusExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return minusExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return minusExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return minusExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return minusExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return minusExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return minusExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return minusExecute[A, int64](rt, blk, args, result)
	case types.T_float32:
		return minusExecute[A, float32](rt, blk, args, result)
	case types.T_float64:
		return minusExecute[A, float64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("minus", oidOf[A](), b)
}

func minusExecute[A, B types.FixedSizeT](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Minus[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Minus[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Minus[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Minus[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Minus[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Minus[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Minus[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Minus[A, B, int64])
	case types.T_float32:
		return executeShapes(blk, args, result, ops.Minus[A, B, float32])
	case types.T_float64:
		return executeShapes(blk, args, result, ops.Minus[A, B, float64])
	}
	panic("arithmetic: minus result oid out of range")
}

// multiplyOp implements "multiply".
type multiplyOp struct{}

func (multiplyOp) Name() string { return "multiply" }

func (multiplyOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("multiply", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("multiply", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("multiply", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.AddMul, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("multiply", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (multiplyOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("multiply", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("multiply", a, b); !ok {
			return moerr.NewInvalidArgumentType("multiply", a, b)
		}
		return executeDate("multiply", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.AddMul, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("multiply", a, b)
	}
	return multiplyBindLeft(a, b, rt, blk, args, result)
}

func multiplyBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return multiplyBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return multiplyBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return multiplyBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return multiplyBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return multiplyBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return multiplyBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return multiplyBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return multiplyBindRight[int64](b, rt, blk, args, result)
	case types.T_float32:
		return multiplyBindRight[float32](b, rt, blk, args, result)
	case types.T_float64:
		return multiplyBindRight[float64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("multiply", a, b)
}

func multiplyBindRight[A types.FixedSizeT](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return multiplyExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return multiplyExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return multiplyExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return multiplyExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return multiplyExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return multiplyExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return multiplyExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return multiplyExecute[A, int64](rt, blk, args, result)
	case types.T_float32:
		return multiplyExecute[A, float32](rt, blk, args, result)
	case types.T_float64:
		return multiplyExecute[A, float64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("multiply", oidOf[A](), b)
}

func multiplyExecute[A, B types.FixedSizeT](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Multiply[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Multiply[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Multiply[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Multiply[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Multiply[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Multiply[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Multiply[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Multiply[A, B, int64])
	case types.T_float32:
		return executeShapes(blk, args, result, ops.Multiply[A, B, float32])
	case types.T_float64:
		return executeShapes(blk, args, result, ops.Multiply[A, B, float64])
	}
	panic("arithmetic: multiply result oid out of range")
}

// divideOp implements "divide".
type divideOp struct{}

func (divideOp) Name() string { return "divide" }

func (divideOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("divide", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("divide", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("divide", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.TrueDiv, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("divide", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (divideOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("divide", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("divide", a, b); !ok {
			return moerr.NewInvalidArgumentType("divide", a, b)
		}
		return executeDate("divide", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.TrueDiv, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("divide", a, b)
	}
	return divideBindLeft(a, b, rt, blk, args, result)
}

func divideBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return divideBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return divideBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return divideBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return divideBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return divideBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return divideBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return divideBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return divideBindRight[int64](b, rt, blk, args, result)
	case types.T_float32:
		return divideBindRight[float32](b, rt, blk, args, result)
	case types.T_float64:
		return divideBindRight[float64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("divide", a, b)
}

func divideBindRight[A types.FixedSizeT](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return divideExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return divideExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return divideExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return divideExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return divideExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return divideExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return divideExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return divideExecute[A, int64](rt, blk, args, result)
	case types.T_float32:
		return divideExecute[A, float32](rt, blk, args, result)
	case types.T_float64:
		return divideExecute[A, float64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("divide", oidOf[A](), b)
}

func divideExecute[A, B types.FixedSizeT](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_float32:
		return executeShapes(blk, args, result, ops.DivideFloating[A, B, float32])
	case types.T_float64:
		return executeShapes(blk, args, result, ops.DivideFloating[A, B, float64])
	}
	panic("arithmetic: divide result oid out of range")
}

// bitAndOp implements "bitAnd".
type bitAndOp struct{}

func (bitAndOp) Name() string { return "bitAnd" }

func (bitAndOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitAnd", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("bitAnd", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("bitAnd", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("bitAnd", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (bitAndOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitAnd", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("bitAnd", a, b); !ok {
			return moerr.NewInvalidArgumentType("bitAnd", a, b)
		}
		return executeDate("bitAnd", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("bitAnd", a, b)
	}
	return bitAndBindLeft(a, b, rt, blk, args, result)
}

func bitAndBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return bitAndBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return bitAndBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return bitAndBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return bitAndBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return bitAndBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return bitAndBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return bitAndBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return bitAndBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitAnd", a, b)
}

func bitAndBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return bitAndExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return bitAndExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return bitAndExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return bitAndExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return bitAndExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return bitAndExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return bitAndExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return bitAndExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitAnd", oidOf[A](), b)
}

func bitAndExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.BitAnd[A, B, int64])
	}
	panic("arithmetic: bitAnd result oid out of range")
}

// bitOrOp implements "bitOr".
type bitOrOp struct{}

func (bitOrOp) Name() string { return "bitOr" }

func (bitOrOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitOr", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("bitOr", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("bitOr", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("bitOr", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (bitOrOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitOr", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("bitOr", a, b); !ok {
			return moerr.NewInvalidArgumentType("bitOr", a, b)
		}
		return executeDate("bitOr", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("bitOr", a, b)
	}
	return bitOrBindLeft(a, b, rt, blk, args, result)
}

func bitOrBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return bitOrBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return bitOrBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return bitOrBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return bitOrBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return bitOrBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return bitOrBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return bitOrBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return bitOrBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitOr", a, b)
}

func bitOrBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return bitOrExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return bitOrExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return bitOrExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return bitOrExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return bitOrExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return bitOrExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return bitOrExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return bitOrExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitOr", oidOf[A](), b)
}

func bitOrExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.BitOr[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.BitOr[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.BitOr[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.BitOr[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.BitOr[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.BitOr[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.BitOr[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.BitOr[A, B, int64])
	}
	panic("arithmetic: bitOr result oid out of range")
}

// bitXorOp implements "bitXor".
type bitXorOp struct{}

func (bitXorOp) Name() string { return "bitXor" }

func (bitXorOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitXor", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("bitXor", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("bitXor", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("bitXor", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (bitXorOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitXor", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("bitXor", a, b); !ok {
			return moerr.NewInvalidArgumentType("bitXor", a, b)
		}
		return executeDate("bitXor", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("bitXor", a, b)
	}
	return bitXorBindLeft(a, b, rt, blk, args, result)
}

func bitXorBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return bitXorBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return bitXorBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return bitXorBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return bitXorBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return bitXorBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return bitXorBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return bitXorBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return bitXorBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitXor", a, b)
}

func bitXorBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return bitXorExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return bitXorExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return bitXorExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return bitXorExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return bitXorExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return bitXorExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return bitXorExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return bitXorExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitXor", oidOf[A](), b)
}

func bitXorExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.BitXor[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.BitXor[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.BitXor[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.BitXor[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.BitXor[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.BitXor[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.BitXor[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.BitXor[A, B, int64])
	}
	panic("arithmetic: bitXor result oid out of range")
}

// bitShiftLeftOp implements "bitShiftLeft".
type bitShiftLeftOp struct{}

func (bitShiftLeftOp) Name() string { return "bitShiftLeft" }

func (bitShiftLeftOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitShiftLeft", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("bitShiftLeft", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("bitShiftLeft", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("bitShiftLeft", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (bitShiftLeftOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitShiftLeft", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("bitShiftLeft", a, b); !ok {
			return moerr.NewInvalidArgumentType("bitShiftLeft", a, b)
		}
		return executeDate("bitShiftLeft", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("bitShiftLeft", a, b)
	}
	return bitShiftLeftBindLeft(a, b, rt, blk, args, result)
}

func bitShiftLeftBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return bitShiftLeftBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return bitShiftLeftBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return bitShiftLeftBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return bitShiftLeftBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return bitShiftLeftBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return bitShiftLeftBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return bitShiftLeftBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return bitShiftLeftBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitShiftLeft", a, b)
}

func bitShiftLeftBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return bitShiftLeftExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return bitShiftLeftExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return bitShiftLeftExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return bitShiftLeftExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return bitShiftLeftExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return bitShiftLeftExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return bitShiftLeftExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return bitShiftLeftExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitShiftLeft", oidOf[A](), b)
}

func bitShiftLeftExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.BitShiftLeft[A, B, int64])
	}
	panic("arithmetic: bitShiftLeft result oid out of range")
}

// bitShiftRightOp implements "bitShiftRight".
type bitShiftRightOp struct{}

func (bitShiftRightOp) Name() string { return "bitShiftRight" }

func (bitShiftRightOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitShiftRight", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	if involvesDate(a, b) {
		rt, ok := dateResultType("bitShiftRight", a, b)
		if !ok {
			return types.Type{}, moerr.NewInvalidArgumentType("bitShiftRight", a, b)
		}
		return types.Type{Oid: rt}, nil
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("bitShiftRight", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (bitShiftRightOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitShiftRight", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	if involvesDate(a, b) {
		if _, ok := dateResultType("bitShiftRight", a, b); !ok {
			return moerr.NewInvalidArgumentType("bitShiftRight", a, b)
		}
		return executeDate("bitShiftRight", a, b, blk, args, result)
	}
	rt, ok := traits.ResultOf(traits.Bitwise, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("bitShiftRight", a, b)
	}
	return bitShiftRightBindLeft(a, b, rt, blk, args, result)
}

func bitShiftRightBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return bitShiftRightBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return bitShiftRightBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return bitShiftRightBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return bitShiftRightBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return bitShiftRightBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return bitShiftRightBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return bitShiftRightBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return bitShiftRightBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitShiftRight", a, b)
}

func bitShiftRightBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return bitShiftRightExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return bitShiftRightExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return bitShiftRightExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return bitShiftRightExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return bitShiftRightExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return bitShiftRightExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return bitShiftRightExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return bitShiftRightExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("bitShiftRight", oidOf[A](), b)
}

func bitShiftRightExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, uint8])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, uint16])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, uint32])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, uint64])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, int8])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, int16])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, int32])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.BitShiftRight[A, B, int64])
	}
	panic("arithmetic: bitShiftRight result oid out of range")
}

// intDivOp implements "intDiv".
type intDivOp struct{}

func (intDivOp) Name() string { return "intDiv" }

func (intDivOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("intDiv", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	rt, ok := traits.ResultOf(traits.IntDiv, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("intDiv", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (intDivOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("intDiv", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	rt, ok := traits.ResultOf(traits.IntDiv, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("intDiv", a, b)
	}
	// §3's promotion rule runs intDiv on a floating operand's integer
	// projection, not the float value itself, so the column is
	// converted here to keep Execute's accepted inputs matching
	// ReturnType's (traits.resultOfIntDiv already assumes this
	// projection when it computes rt).
	if a.Floating() {
		projected := projectIntDivOperand(left)
		blk.Set(args[0], projected)
		a = projected.GetType().Oid
	}
	if b.Floating() {
		projected := projectIntDivOperand(right)
		blk.Set(args[1], projected)
		b = projected.GetType().Oid
	}
	return intDivBindLeft(a, b, rt, blk, args, result)
}

// projectIntDivOperand converts a floating column to its same-width
// signed integer projection (f32 -> i32, f64 -> i64); non-floating
// columns pass through unchanged.
func projectIntDivOperand(v *vector.Vector) *vector.Vector {
	switch v.GetType().Oid {
	case types.T_float32:
		return projectFloat32ToInt32(v)
	case types.T_float64:
		return projectFloat64ToInt64(v)
	}
	return v
}

func projectFloat32ToInt32(v *vector.Vector) *vector.Vector {
	typ := types.Type{Oid: types.T_int32}
	if v.IsConst() {
		return vector.NewConst(typ, int32(vector.ConstValue[float32](v)), v.Length())
	}
	col := vector.MustFixedCol[float32](v)
	out := make([]int32, len(col))
	for i, x := range col {
		out[i] = int32(x)
	}
	return vector.NewFlat(typ, out)
}

func projectFloat64ToInt64(v *vector.Vector) *vector.Vector {
	typ := types.Type{Oid: types.T_int64}
	if v.IsConst() {
		return vector.NewConst(typ, int64(vector.ConstValue[float64](v)), v.Length())
	}
	col := vector.MustFixedCol[float64](v)
	out := make([]int64, len(col))
	for i, x := range col {
		out[i] = int64(x)
	}
	return vector.NewFlat(typ, out)
}

func intDivBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return intDivBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return intDivBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return intDivBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return intDivBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return intDivBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return intDivBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return intDivBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return intDivBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("intDiv", a, b)
}

func intDivBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return intDivExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return intDivExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return intDivExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return intDivExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return intDivExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return intDivExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return intDivExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return intDivExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("intDiv", oidOf[A](), b)
}

func intDivExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint8, error) { return ops.DivideIntegral[A, B, uint8]("intDiv", a, b) },
			fastIntDiv[A, B, uint8]("intDiv"))
	case types.T_uint16:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint16, error) { return ops.DivideIntegral[A, B, uint16]("intDiv", a, b) },
			fastIntDiv[A, B, uint16]("intDiv"))
	case types.T_uint32:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint32, error) { return ops.DivideIntegral[A, B, uint32]("intDiv", a, b) },
			fastIntDiv[A, B, uint32]("intDiv"))
	case types.T_uint64:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint64, error) { return ops.DivideIntegral[A, B, uint64]("intDiv", a, b) },
			fastIntDiv[A, B, uint64]("intDiv"))
	case types.T_int8:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int8, error) { return ops.DivideIntegral[A, B, int8]("intDiv", a, b) },
			fastIntDiv[A, B, int8]("intDiv"))
	case types.T_int16:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int16, error) { return ops.DivideIntegral[A, B, int16]("intDiv", a, b) },
			fastIntDiv[A, B, int16]("intDiv"))
	case types.T_int32:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int32, error) { return ops.DivideIntegral[A, B, int32]("intDiv", a, b) },
			fastIntDiv[A, B, int32]("intDiv"))
	case types.T_int64:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int64, error) { return ops.DivideIntegral[A, B, int64]("intDiv", a, b) },
			fastIntDiv[A, B, int64]("intDiv"))
	}
	panic("arithmetic: intDiv result oid out of range")
}

// moduloOp implements "modulo".
type moduloOp struct{}

func (moduloOp) Name() string { return "modulo" }

func (moduloOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("modulo", len(argTypes), 2); err != nil {
		return types.Type{}, err
	}
	a, b := argTypes[0].Oid, argTypes[1].Oid
	rt, ok := traits.ResultOf(traits.Mod, a, b)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentType("modulo", a, b)
	}
	return types.Type{Oid: rt}, nil
}

func (moduloOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("modulo", len(args), 2); err != nil {
		return err
	}
	left, _ := blk.Get(args[0])
	right, _ := blk.Get(args[1])
	a, b := left.GetType().Oid, right.GetType().Oid
	rt, ok := traits.ResultOf(traits.Mod, a, b)
	if !ok {
		return moerr.NewInvalidArgumentType("modulo", a, b)
	}
	return moduloBindLeft(a, b, rt, blk, args, result)
}

func moduloBindLeft(a, b, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return moduloBindRight[uint8](b, rt, blk, args, result)
	case types.T_uint16:
		return moduloBindRight[uint16](b, rt, blk, args, result)
	case types.T_uint32:
		return moduloBindRight[uint32](b, rt, blk, args, result)
	case types.T_uint64:
		return moduloBindRight[uint64](b, rt, blk, args, result)
	case types.T_int8:
		return moduloBindRight[int8](b, rt, blk, args, result)
	case types.T_int16:
		return moduloBindRight[int16](b, rt, blk, args, result)
	case types.T_int32:
		return moduloBindRight[int32](b, rt, blk, args, result)
	case types.T_int64:
		return moduloBindRight[int64](b, rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("modulo", a, b)
}

func moduloBindRight[A fixedSizeInteger](b, rt types.T, blk *block.Block, args []int, result int) error {
	switch b {
	case types.T_uint8:
		return moduloExecute[A, uint8](rt, blk, args, result)
	case types.T_uint16:
		return moduloExecute[A, uint16](rt, blk, args, result)
	case types.T_uint32:
		return moduloExecute[A, uint32](rt, blk, args, result)
	case types.T_uint64:
		return moduloExecute[A, uint64](rt, blk, args, result)
	case types.T_int8:
		return moduloExecute[A, int8](rt, blk, args, result)
	case types.T_int16:
		return moduloExecute[A, int16](rt, blk, args, result)
	case types.T_int32:
		return moduloExecute[A, int32](rt, blk, args, result)
	case types.T_int64:
		return moduloExecute[A, int64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentType("modulo", oidOf[A](), b)
}

func moduloExecute[A, B fixedSizeInteger](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint8, error) { return ops.Modulo[A, B, uint8]("modulo", a, b) },
			fastModulo[A, B, uint8]("modulo"))
	case types.T_uint16:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint16, error) { return ops.Modulo[A, B, uint16]("modulo", a, b) },
			fastModulo[A, B, uint16]("modulo"))
	case types.T_uint32:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint32, error) { return ops.Modulo[A, B, uint32]("modulo", a, b) },
			fastModulo[A, B, uint32]("modulo"))
	case types.T_uint64:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (uint64, error) { return ops.Modulo[A, B, uint64]("modulo", a, b) },
			fastModulo[A, B, uint64]("modulo"))
	case types.T_int8:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int8, error) { return ops.Modulo[A, B, int8]("modulo", a, b) },
			fastModulo[A, B, int8]("modulo"))
	case types.T_int16:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int16, error) { return ops.Modulo[A, B, int16]("modulo", a, b) },
			fastModulo[A, B, int16]("modulo"))
	case types.T_int32:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int32, error) { return ops.Modulo[A, B, int32]("modulo", a, b) },
			fastModulo[A, B, int32]("modulo"))
	case types.T_int64:
		return executeShapesErr(blk, args, result,
			func(a A, b B) (int64, error) { return ops.Modulo[A, B, int64]("modulo", a, b) },
			fastModulo[A, B, int64]("modulo"))
	}
	panic("arithmetic: modulo result oid out of range")
}

