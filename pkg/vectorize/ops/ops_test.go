package ops

import (
	"math"
	"testing"

	"github.com/colarith/colarith/pkg/common/moerr"
	"github.com/stretchr/testify/require"
)

func TestPlusNoPromotionLoss(t *testing.T) {
	a := int32(math.MinInt32)
	b := int32(-1)
	r := Plus[int32, int32, int64](a, b)
	require.Equal(t, int64(math.MinInt32)-1, r)
}

func TestDivideIntegralByZero(t *testing.T) {
	_, err := DivideIntegral[int32, int32, int32]("intDiv", 7, 0)
	require.Error(t, err)
	var me *moerr.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, moerr.DivisionByZero, me.Kind())
}

func TestDivideIntegralOverflowOnMinDivMinusOne(t *testing.T) {
	_, err := DivideIntegral[int64, int32, int64]("intDiv", math.MinInt64, -1)
	require.Error(t, err)
	var me *moerr.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, moerr.DivisionOverflow, me.Kind())
}

func TestDivideIntegralUnsignedNeverOverflows(t *testing.T) {
	r, err := DivideIntegral[uint32, uint32, uint32]("intDiv", 0, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(0), r)
}

func TestModuloByNegativeOneIsZero(t *testing.T) {
	r, err := Modulo[int64, int32, int64]("modulo", math.MinInt64, -1)
	require.NoError(t, err)
	require.Equal(t, int64(0), r)
}

func TestModuloTruncatedDivisionSign(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{-7, 3, -1},
		{-6, 3, 0},
		{-5, 3, -2},
		{-1, 3, -1},
		{0, 3, 0},
		{1, 3, 1},
		{5, 3, 2},
		{6, 3, 0},
		{7, 3, 1},
	}
	for _, c := range cases {
		r, err := Modulo[int64, int32, int64]("modulo", c.a, int32(c.b))
		require.NoError(t, err)
		require.Equal(t, c.want, r)
	}
}

func TestBitwiseRoundTrips(t *testing.T) {
	require.Equal(t, uint32(5), BitAnd[uint32, uint32, uint32](5, 5))
	require.Equal(t, uint32(5), BitOr[uint32, uint32, uint32](5, 5))
	require.Equal(t, uint32(0), BitXor[uint32, uint32, uint32](5, 5))
	require.Equal(t, int32(5), BitNot[int32, int32](BitNot[int32, int32](5)))
}

func TestNegateWidensUnsigned(t *testing.T) {
	r := Negate[uint32, int64](1)
	require.Equal(t, int64(-1), r)
	r0 := Negate[uint32, int64](0)
	require.Equal(t, int64(0), r0)
}

func TestBitShiftLeft(t *testing.T) {
	for _, c := range []struct {
		shift int
		want  uint32
	}{
		{0, 1}, {1, 2}, {2, 4}, {30, 1073741824},
	} {
		r := BitShiftLeft[uint32, uint8, uint32](1, uint8(c.shift))
		require.Equal(t, c.want, r)
	}
}
