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
	"github.com/colarith/colarith/pkg/common/moerr"
	"github.com/colarith/colarith/pkg/container/block"
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/vectorize/ops"
	"github.com/colarith/colarith/pkg/vectorize/traits"
)

// negateOp implements "negate".
type negateOp struct{}

func (negateOp) Name() string { return "negate" }

func (negateOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("negate", len(argTypes), 1); err != nil {
		return types.Type{}, err
	}
	a := argTypes[0].Oid
	rt, ok := traits.ResultOfUnary(traits.UnaryNegate, a)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentTypeUnary("negate", a)
	}
	return types.Type{Oid: rt}, nil
}

func (negateOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("negate", len(args), 1); err != nil {
		return err
	}
	in, _ := blk.Get(args[0])
	a := in.GetType().Oid
	rt, ok := traits.ResultOfUnary(traits.UnaryNegate, a)
	if !ok {
		return moerr.NewInvalidArgumentTypeUnary("negate", a)
	}
	return negateBindA(a, rt, blk, args, result)
}

func negateBindA(a, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return negateExecute[uint8](rt, blk, args, result)
	case types.T_uint16:
		return negateExecute[uint16](rt, blk, args, result)
	case types.T_uint32:
		return negateExecute[uint32](rt, blk, args, result)
	case types.T_uint64:
		return negateExecute[uint64](rt, blk, args, result)
	case types.T_int8:
		return negateExecute[int8](rt, blk, args, result)
	case types.T_int16:
		return negateExecute[int16](rt, blk, args, result)
	case types.T_int32:
		return negateExecute[int32](rt, blk, args, result)
	case types.T_int64:
		return negateExecute[int64](rt, blk, args, result)
	case types.T_float32:
		return negateExecute[float32](rt, blk, args, result)
	case types.T_float64:
		return negateExecute[float64](rt, blk, args, result)
	}
	return moerr.NewInvalidArgumentTypeUnary("negate", a)
}

func negateExecute[A types.FixedSizeT](rt types.T, blk *block.Block, args []int, result int) error {
	switch rt {
	case types.T_uint8:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, uint8])
	case types.T_uint16:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, uint16])
	case types.T_uint32:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, uint32])
	case types.T_uint64:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, uint64])
	case types.T_int8:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, int8])
	case types.T_int16:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, int16])
	case types.T_int32:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, int32])
	case types.T_int64:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, int64])
	case types.T_float32:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, float32])
	case types.T_float64:
		return executeUnaryShapes(blk, args, result, ops.Negate[A, float64])
	}
	panic("arithmetic: negate result oid out of range")
}

// bitNotOp implements "bitNot".
type bitNotOp struct{}

func (bitNotOp) Name() string { return "bitNot" }

func (bitNotOp) ReturnType(argTypes []types.Type) (types.Type, error) {
	if err := checkArity("bitNot", len(argTypes), 1); err != nil {
		return types.Type{}, err
	}
	a := argTypes[0].Oid
	rt, ok := traits.ResultOfUnary(traits.UnaryBitNot, a)
	if !ok {
		return types.Type{}, moerr.NewInvalidArgumentTypeUnary("bitNot", a)
	}
	return types.Type{Oid: rt}, nil
}

func (bitNotOp) Execute(blk *block.Block, args []int, result int) error {
	if err := checkArity("bitNot", len(args), 1); err != nil {
		return err
	}
	in, _ := blk.Get(args[0])
	a := in.GetType().Oid
	rt, ok := traits.ResultOfUnary(traits.UnaryBitNot, a)
	if !ok {
		return moerr.NewInvalidArgumentTypeUnary("bitNot", a)
	}
	return bitNotBindA(a, rt, blk, args, result)
}

// bitNot's result is always exactly the operand's own type (per
// resultOfBitNot), so there is no separate rt-switch: A and R are the
// same type parameter.
func bitNotBindA(a, rt types.T, blk *block.Block, args []int, result int) error {
	switch a {
	case types.T_uint8:
		return executeUnaryShapes(blk, args, result, ops.BitNot[uint8, uint8])
	case types.T_uint16:
		return executeUnaryShapes(blk, args, result, ops.BitNot[uint16, uint16])
	case types.T_uint32:
		return executeUnaryShapes(blk, args, result, ops.BitNot[uint32, uint32])
	case types.T_uint64:
		return executeUnaryShapes(blk, args, result, ops.BitNot[uint64, uint64])
	case types.T_int8:
		return executeUnaryShapes(blk, args, result, ops.BitNot[int8, int8])
	case types.T_int16:
		return executeUnaryShapes(blk, args, result, ops.BitNot[int16, int16])
	case types.T_int32:
		return executeUnaryShapes(blk, args, result, ops.BitNot[int32, int32])
	case types.T_int64:
		return executeUnaryShapes(blk, args, result, ops.BitNot[int64, int64])
	}
	return moerr.NewInvalidArgumentTypeUnary("bitNot", a)
}
