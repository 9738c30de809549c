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

// Package kernel implements the four shape-specialized binary loops
// (vec_vec, vec_const, const_vec, const_const) and the two
// shape-specialized unary loops (vec, const) that apply a scalar
// op/apply function from pkg/vectorize/ops across whole columns. No
// kernel allocates: the output vector is sized by the caller and
// handed in already backed by a buffer of the right length.
package kernel

import (
	"github.com/colarith/colarith/pkg/container/types"
	"github.com/colarith/colarith/pkg/container/vector"
)

// BinaryFunc is the shape of a non-failing scalar apply function, the
// kind Plus/Minus/Multiply/BitAnd/... expose.
type BinaryFunc[A, B, R types.FixedSizeT] func(a A, b B) R

// BinaryFuncErr is the shape of a failing scalar apply function, the
// kind DivideIntegral/Modulo expose.
type BinaryFuncErr[A, B, R types.FixedSizeT] func(a A, b B) (R, error)

// VecVec applies f elementwise: c[i] = f(a[i], b[i]). Contract: a, b
// and c all have the same logical length.
func VecVec[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFunc[A, B, R]) {
	va := vector.MustFixedCol[A](a)
	vb := vector.MustFixedCol[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range va {
		vc[i] = f(va[i], vb[i])
	}
}

// VecVecErr is the failing analogue of VecVec, stopping at the first
// error (division by zero or overflow are checked once per element on
// the generic path, per the error-handling design).
func VecVecErr[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFuncErr[A, B, R]) error {
	va := vector.MustFixedCol[A](a)
	vb := vector.MustFixedCol[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range va {
		v, err := f(va[i], vb[i])
		if err != nil {
			return err
		}
		vc[i] = v
	}
	return nil
}

// VecConst applies f(a[i], b) for a broadcast right constant b.
func VecConst[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFunc[A, B, R]) {
	va := vector.MustFixedCol[A](a)
	vb := vector.ConstValue[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range va {
		vc[i] = f(va[i], vb)
	}
}

func VecConstErr[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFuncErr[A, B, R]) error {
	va := vector.MustFixedCol[A](a)
	vb := vector.ConstValue[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range va {
		v, err := f(va[i], vb)
		if err != nil {
			return err
		}
		vc[i] = v
	}
	return nil
}

// ConstVec applies f(a, b[i]) for a broadcast left constant a.
func ConstVec[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFunc[A, B, R]) {
	va := vector.ConstValue[A](a)
	vb := vector.MustFixedCol[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range vb {
		vc[i] = f(va, vb[i])
	}
}

func ConstVecErr[A, B, R types.FixedSizeT](a, b, c *vector.Vector, f BinaryFuncErr[A, B, R]) error {
	va := vector.ConstValue[A](a)
	vb := vector.MustFixedCol[B](b)
	vc := vector.MustFixedCol[R](c)
	for i := range vb {
		v, err := f(va, vb[i])
		if err != nil {
			return err
		}
		vc[i] = v
	}
	return nil
}

// ConstConst applies f once over the two replicated values and
// returns the single result value; the caller wraps it into a
// constant output column of the block's length.
func ConstConst[A, B, R types.FixedSizeT](a, b *vector.Vector, f BinaryFunc[A, B, R]) R {
	return f(vector.ConstValue[A](a), vector.ConstValue[B](b))
}

func ConstConstErr[A, B, R types.FixedSizeT](a, b *vector.Vector, f BinaryFuncErr[A, B, R]) (R, error) {
	return f(vector.ConstValue[A](a), vector.ConstValue[B](b))
}

// UnaryFunc is the shape of a scalar unary apply function.
type UnaryFunc[A, R types.FixedSizeT] func(a A) R

// Vec applies f elementwise to a materialized vector.
func Vec[A, R types.FixedSizeT](a, c *vector.Vector, f UnaryFunc[A, R]) {
	va := vector.MustFixedCol[A](a)
	vc := vector.MustFixedCol[R](c)
	for i := range va {
		vc[i] = f(va[i])
	}
}

// Const applies f once to a's replicated value.
func Const[A, R types.FixedSizeT](a *vector.Vector, f UnaryFunc[A, R]) R {
	return f(vector.ConstValue[A](a))
}
