package divider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEligibleRequiresMatchingSignednessAndWidth(t *testing.T) {
	require.True(t, Eligible(64, 8, false, false))
	require.True(t, Eligible(32, 32, true, true))
	require.False(t, Eligible(64, 8, true, false))
	require.False(t, Eligible(16, 8, false, false))
	require.False(t, Eligible(64, 128, false, false))
}

func TestFastDivideMatchesSpecScenario(t *testing.T) {
	a := make([]uint64, 16)
	for i := range a {
		a[i] = uint64(10 + i)
	}
	out := make([]uint64, 16)
	err := FastDivide("intDiv", a, uint64(3), out)
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6, 7, 7, 7, 8, 8}, out)
}

func TestFastDividePowerOfTwo(t *testing.T) {
	a := []uint32{0, 1, 7, 8, 9, 1000}
	out := make([]uint32, len(a))
	require.NoError(t, FastDivide("intDiv", a, uint32(4), out))
	for i, v := range a {
		require.Equal(t, v/4, out[i])
	}
}

func TestFastDivideParityAgainstNativeDivisionUnsigned(t *testing.T) {
	divisors := []uint64{2, 3, 5, 6, 7, 11, 100, 1 << 40, (1 << 63) + 7}
	values := []uint64{0, 1, 2, 3, 9, 1000, math.MaxUint64, math.MaxUint64 - 1, 1 << 62}
	for _, d := range divisors {
		out := make([]uint64, len(values))
		require.NoError(t, FastDivide("intDiv", values, d, out))
		for i, a := range values {
			require.Equal(t, a/d, out[i], "a=%d d=%d", a, d)
		}
	}
}

func TestFastDivideParityAgainstNativeDivisionSigned(t *testing.T) {
	divisors := []int64{2, -2, 3, -3, 7, -7, 1 << 40, -(1 << 40)}
	values := []int64{0, 1, -1, 2, -2, 9, -9, 1000, -1000, math.MaxInt64, math.MinInt64 + 1}
	for _, d := range divisors {
		out := make([]int64, len(values))
		require.NoError(t, FastDivide("intDiv", values, d, out))
		for i, a := range values {
			require.Equal(t, a/d, out[i], "a=%d d=%d", a, d)
		}
	}
}

func TestFastDivideNegativeOnePreservesOverflowTrap(t *testing.T) {
	a := []int32{math.MinInt32, 1, -1}
	out := make([]int32, len(a))
	err := FastDivide("intDiv", a, int32(-1), out)
	require.Error(t, err)
}

func TestFastDivideNegativeOneNegatesWhenSafe(t *testing.T) {
	a := []int32{1, -1, 42, -42, 0}
	out := make([]int32, len(a))
	require.NoError(t, FastDivide("intDiv", a, int32(-1), out))
	require.Equal(t, []int32{-1, 1, -42, 42, 0}, out)
}

func TestFastDivideByOneIsIdentity(t *testing.T) {
	a := []uint64{0, 1, 2, math.MaxUint64}
	out := make([]uint64, len(a))
	require.NoError(t, FastDivide("intDiv", a, uint64(1), out))
	require.Equal(t, a, out)
}

func TestFastDivideByZeroErrors(t *testing.T) {
	a := []uint32{1, 2, 3}
	out := make([]uint32, len(a))
	err := FastDivide("intDiv", a, uint32(0), out)
	require.Error(t, err)
}

func TestFastModuloMatchesNativeModulo(t *testing.T) {
	divisors := []int64{3, -3, 7, -7}
	values := []int64{-7, -6, -5, -1, 0, 1, 5, 6, 7}
	for _, d := range divisors {
		out := make([]int64, len(values))
		require.NoError(t, FastModulo("modulo", values, d, out))
		for i, a := range values {
			require.Equal(t, a%d, out[i], "a=%d d=%d", a, d)
		}
	}
}

func TestFastModuloByNegativeOneIsAlwaysZero(t *testing.T) {
	a := []int64{math.MinInt64, -5, 0, 5, math.MaxInt64}
	out := make([]int64, len(a))
	require.NoError(t, FastModulo("modulo", a, int64(-1), out))
	for _, v := range out {
		require.Equal(t, int64(0), v)
	}
}

func TestFastModuloByZeroErrors(t *testing.T) {
	a := []uint32{1, 2, 3}
	out := make([]uint32, len(a))
	err := FastModulo("modulo", a, uint32(0), out)
	require.Error(t, err)
}
