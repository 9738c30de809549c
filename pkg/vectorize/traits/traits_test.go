package traits

import (
	"testing"

	"github.com/colarith/colarith/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func TestAddMulWidensAndPromotesSign(t *testing.T) {
	r, ok := ResultOf(AddMul, types.T_uint8, types.T_uint8)
	require.True(t, ok)
	require.Equal(t, types.T_uint16, r)

	r, ok = ResultOf(AddMul, types.T_int32, types.T_int32)
	require.True(t, ok)
	require.Equal(t, types.T_int64, r)

	r, ok = ResultOf(AddMul, types.T_uint64, types.T_uint64)
	require.True(t, ok)
	require.Equal(t, types.T_uint64, r, "width capped at 64")
}

func TestAddMulCommutative(t *testing.T) {
	for _, pair := range [][2]types.T{
		{types.T_uint8, types.T_int32},
		{types.T_float32, types.T_uint64},
		{types.T_int16, types.T_uint16},
	} {
		a, b := pair[0], pair[1]
		rab, okab := ResultOf(AddMul, a, b)
		rba, okba := ResultOf(AddMul, b, a)
		require.Equal(t, okab, okba)
		require.Equal(t, rab, rba)
	}
}

func TestSubAlwaysSigned(t *testing.T) {
	r, ok := ResultOf(Sub, types.T_uint8, types.T_uint8)
	require.True(t, ok)
	require.True(t, r.Signed())
}

func TestTrueDivAlwaysFloating(t *testing.T) {
	r, ok := ResultOf(TrueDiv, types.T_uint8, types.T_uint8)
	require.True(t, ok)
	require.Equal(t, types.T_float32, r)

	r, ok = ResultOf(TrueDiv, types.T_uint64, types.T_uint8)
	require.True(t, ok)
	require.Equal(t, types.T_float64, r)
}

func TestIntDivNeverFloating(t *testing.T) {
	r, ok := ResultOf(IntDiv, types.T_uint64, types.T_uint32)
	require.True(t, ok)
	require.Equal(t, types.T_uint64, r)
	require.False(t, r.Floating())
}

func TestModDerivesFromLeft(t *testing.T) {
	r, ok := ResultOf(Mod, types.T_int64, types.T_int32)
	require.True(t, ok)
	require.Equal(t, types.T_int64, r)
}

func TestBitwiseRejectsFloat(t *testing.T) {
	_, ok := ResultOf(Bitwise, types.T_float32, types.T_uint32)
	require.False(t, ok)
}

func TestBitwiseMaxWidthAnySigned(t *testing.T) {
	r, ok := ResultOf(Bitwise, types.T_uint32, types.T_uint8)
	require.True(t, ok)
	require.Equal(t, types.T_uint32, r)
}

func TestDateOperandsAlwaysInvalidHere(t *testing.T) {
	_, ok := ResultOf(AddMul, types.T_date, types.T_uint32)
	require.False(t, ok)
}

func TestUnaryNegateWidensUnsigned(t *testing.T) {
	r, ok := ResultOfUnary(UnaryNegate, types.T_uint32)
	require.True(t, ok)
	require.Equal(t, types.T_int64, r)
}

func TestUnaryBitNotSameWidthAndSign(t *testing.T) {
	r, ok := ResultOfUnary(UnaryBitNot, types.T_int16)
	require.True(t, ok)
	require.Equal(t, types.T_int16, r)

	_, ok = ResultOfUnary(UnaryBitNot, types.T_float64)
	require.False(t, ok)
}
