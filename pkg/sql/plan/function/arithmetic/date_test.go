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
	"testing"

	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/stretchr/testify/require"
)

func TestDatePlusIntegerProducesDate(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_date}, []types.Date{100, 200})
	right := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1, -1})

	out, err := runBinary(t, plusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_date, out.GetType().Oid)
	require.Equal(t, []types.Date{101, 199}, vector.MustFixedCol[types.Date](out))
}

func TestIntegerPlusDateProducesDate(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1, -1})
	right := vector.NewFlat(types.Type{Oid: types.T_date}, []types.Date{100, 200})

	out, err := runBinary(t, plusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_date, out.GetType().Oid)
	require.Equal(t, []types.Date{101, 199}, vector.MustFixedCol[types.Date](out))
}

func TestDateMinusIntegerProducesDate(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_date}, []types.Date{100, 200})
	right := vector.NewFlat(types.Type{Oid: types.T_int32}, []int32{1, -1})

	out, err := runBinary(t, minusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_date, out.GetType().Oid)
	require.Equal(t, []types.Date{99, 201}, vector.MustFixedCol[types.Date](out))
}

func TestDateMinusDateProducesInt32(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_date}, []types.Date{200, 100})
	right := vector.NewFlat(types.Type{Oid: types.T_date}, []types.Date{100, 200})

	out, err := runBinary(t, minusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_int32, out.GetType().Oid)
	require.Equal(t, []int32{100, -100}, vector.MustFixedCol[int32](out))
}

func TestDateTimeMinusDateTimeProducesInt32(t *testing.T) {
	left := vector.NewFlat(types.Type{Oid: types.T_datetime}, []types.DateTime{5000, 1000})
	right := vector.NewFlat(types.Type{Oid: types.T_datetime}, []types.DateTime{1000, 5000})

	out, err := runBinary(t, minusOp{}, left, right)
	require.NoError(t, err)
	require.Equal(t, types.T_int32, out.GetType().Oid)
	require.Equal(t, []int32{4000, -4000}, vector.MustFixedCol[int32](out))
}

// TestDateClosureRejectsEverythingElse checks §4.G's closure invariant:
// the only five valid shapes are the ones already exercised above, so
// every other (op, a, b) triple involving a date operand must be
// rejected by both ReturnType and Execute, not just one of them.
func TestDateClosureRejectsEverythingElse(t *testing.T) {
	cases := []struct {
		op   string
		a, b types.T
	}{
		{"multiply", types.T_date, types.T_int32},
		{"divide", types.T_date, types.T_int32},
		{"bitAnd", types.T_date, types.T_int32},
		{"plus", types.T_date, types.T_date},
		{"plus", types.T_date, types.T_float32},
		{"minus", types.T_date, types.T_float32},
		{"minus", types.T_date, types.T_datetime},
		{"plus", types.T_datetime, types.T_int32},
		{"minus", types.T_datetime, types.T_int32},
	}
	for _, c := range cases {
		op, ok := Lookup(c.op)
		require.True(t, ok, c.op)

		_, err := op.ReturnType([]types.Type{{Oid: c.a}, {Oid: c.b}})
		require.Error(t, err, "%s(%s,%s): ReturnType should reject", c.op, c.a, c.b)

		left := dateOrConstOfType(c.a, 2)
		right := dateOrConstOfType(c.b, 2)
		_, execErr := runBinary(t, op, left, right)
		require.Error(t, execErr, "%s(%s,%s): Execute should reject", c.op, c.a, c.b)
	}
}

func dateOrConstOfType(t types.T, n int) *vector.Vector {
	switch t {
	case types.T_date:
		return vector.NewConst[types.Date](types.Type{Oid: types.T_date}, 100, n)
	case types.T_datetime:
		return vector.NewConst[types.DateTime](types.Type{Oid: types.T_datetime}, 1000, n)
	default:
		return constOfType(t, n)
	}
}
