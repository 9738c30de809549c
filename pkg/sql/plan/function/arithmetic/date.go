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
)

// isPlainInteger reports whether t is an integer kind that is neither
// a date kind nor floating — the "Integer" operand the date overlay's
// table refers to.
func isPlainInteger(t types.T) bool {
	return !t.IsDateOrDateTime() && !t.Floating()
}

// dateResultType implements §4.G's table: the only five (op, a, b)
// shapes a date operand can legally appear in. Every other pairing
// that involves a date operand is invalid, including dates under any
// operator other than plus/minus and any mixing of Date with
// DateTime. Callers must only reach here after involvesDate(a, b).
func dateResultType(op string, a, b types.T) (types.T, bool) {
	switch op {
	case "plus":
		if a == types.T_date && isPlainInteger(b) {
			return types.T_date, true
		}
		if b == types.T_date && isPlainInteger(a) {
			return types.T_date, true
		}
	case "minus":
		if a == types.T_date && isPlainInteger(b) {
			return types.T_date, true
		}
		if a == types.T_date && b == types.T_date {
			return types.T_int32, true
		}
		if a == types.T_datetime && b == types.T_datetime {
			return types.T_int32, true
		}
	}
	return 0, false
}

// executeDate runs the kernel call for one of dateResultType's five
// valid shapes. Dates are plain FixedSizeT values (days/seconds since
// the epoch), so the ordinary Plus/Minus scalar ops apply unchanged;
// only the operand binding differs from the plain numeric path.
func executeDate(op string, a, b types.T, blk *block.Block, args []int, result int) error {
	switch {
	case op == "plus" && a == types.T_date:
		return bindDateLeft(b, blk, args, result)
	case op == "plus" && b == types.T_date:
		return bindDateRight(a, blk, args, result)
	case op == "minus" && a == types.T_date && b == types.T_date:
		return executeShapes(blk, args, result, ops.Minus[types.Date, types.Date, int32])
	case op == "minus" && a == types.T_datetime && b == types.T_datetime:
		return executeShapes(blk, args, result, ops.Minus[types.DateTime, types.DateTime, int32])
	case op == "minus" && a == types.T_date:
		return bindDateLeftMinus(b, blk, args, result)
	}
	return moerr.NewInvalidArgumentType(op, a, b)
}

func bindDateLeft(intOid types.T, blk *block.Block, args []int, result int) error {
	switch intOid {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Plus[types.Date, uint8, types.Date])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Plus[types.Date, uint16, types.Date])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Plus[types.Date, uint32, types.Date])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Plus[types.Date, uint64, types.Date])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Plus[types.Date, int8, types.Date])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Plus[types.Date, int16, types.Date])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Plus[types.Date, int32, types.Date])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Plus[types.Date, int64, types.Date])
	}
	return moerr.NewInvalidArgumentType("plus", types.T_date, intOid)
}

func bindDateRight(intOid types.T, blk *block.Block, args []int, result int) error {
	switch intOid {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Plus[uint8, types.Date, types.Date])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Plus[uint16, types.Date, types.Date])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Plus[uint32, types.Date, types.Date])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Plus[uint64, types.Date, types.Date])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Plus[int8, types.Date, types.Date])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Plus[int16, types.Date, types.Date])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Plus[int32, types.Date, types.Date])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Plus[int64, types.Date, types.Date])
	}
	return moerr.NewInvalidArgumentType("plus", intOid, types.T_date)
}

func bindDateLeftMinus(intOid types.T, blk *block.Block, args []int, result int) error {
	switch intOid {
	case types.T_uint8:
		return executeShapes(blk, args, result, ops.Minus[types.Date, uint8, types.Date])
	case types.T_uint16:
		return executeShapes(blk, args, result, ops.Minus[types.Date, uint16, types.Date])
	case types.T_uint32:
		return executeShapes(blk, args, result, ops.Minus[types.Date, uint32, types.Date])
	case types.T_uint64:
		return executeShapes(blk, args, result, ops.Minus[types.Date, uint64, types.Date])
	case types.T_int8:
		return executeShapes(blk, args, result, ops.Minus[types.Date, int8, types.Date])
	case types.T_int16:
		return executeShapes(blk, args, result, ops.Minus[types.Date, int16, types.Date])
	case types.T_int32:
		return executeShapes(blk, args, result, ops.Minus[types.Date, int32, types.Date])
	case types.T_int64:
		return executeShapes(blk, args, result, ops.Minus[types.Date, int64, types.Date])
	}
	return moerr.NewInvalidArgumentType("minus", types.T_date, intOid)
}
