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
	"unsafe"

	"github.com/colarith/colarith/pkg/common/moerr"
	"github.com/colarith/colarith/pkg/container/vector"
	"github.com/colarith/colarith/pkg/vectorize/divider"
	"golang.org/x/exp/constraints"
)

// isSignedInt and minSignedValue mirror pkg/vectorize/ops's own
// unexported helpers of the same name: the MIN/-1 overflow trap has to
// be checked here too, against the dividend's OWN width, before it is
// ever converted into R.
func isSignedInt[T constraints.Integer]() bool {
	return T(0)-1 < 0
}

func minSignedValue[T constraints.Integer]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	return T(1) << (bits - 1)
}

// fastIntDiv and fastModulo are the vec_const fast-path attempts
// wired into executeShapesErr for intDiv/modulo. Division by a
// runtime constant always executes in the result type R's domain
// (promotion has already happened by the time this runs), so the
// dividend is converted into R before the reciprocal divider is
// built; the divisor's ORIGINAL declared width (B, before promotion)
// is what Eligible checks against R's width, per §4.D's override
// condition.
func fastIntDiv[A, B, R fixedSizeInteger](op string) func(left, right, out *vector.Vector) (bool, error) {
	return func(left, right, out *vector.Vector) (bool, error) {
		rOid, bOid := oidOf[R](), oidOf[B]()
		if !divider.Eligible(rOid.Width(), bOid.Width(), rOid.Signed(), bOid.Signed()) {
			return false, nil
		}
		aCol := vector.MustFixedCol[A](left)
		bVal := vector.ConstValue[B](right)
		rCol := vector.MustFixedCol[R](out)

		// Promoting A's MIN into the wider R before dividing by -1
		// would hide the overflow R is wide enough to represent; the
		// trap is defined on A's own domain, so it is checked here,
		// against A's minimum, before any conversion happens.
		if isSignedInt[A]() && isSignedInt[B]() && bVal == B(0)-1 {
			min := minSignedValue[A]()
			for _, v := range aCol {
				if v == min {
					return true, moerr.NewDivisionOverflow(op)
				}
			}
		}

		converted := make([]R, len(aCol))
		for i, v := range aCol {
			converted[i] = R(v)
		}
		if err := divider.FastDivide(op, converted, R(bVal), rCol); err != nil {
			return true, err
		}
		return true, nil
	}
}

func fastModulo[A, B, R fixedSizeInteger](op string) func(left, right, out *vector.Vector) (bool, error) {
	return func(left, right, out *vector.Vector) (bool, error) {
		rOid, bOid := oidOf[R](), oidOf[B]()
		if !divider.Eligible(rOid.Width(), bOid.Width(), rOid.Signed(), bOid.Signed()) {
			return false, nil
		}
		aCol := vector.MustFixedCol[A](left)
		bVal := vector.ConstValue[B](right)
		rCol := vector.MustFixedCol[R](out)
		converted := make([]R, len(aCol))
		for i, v := range aCol {
			converted[i] = R(v)
		}
		if err := divider.FastModulo(op, converted, R(bVal), rCol); err != nil {
			return true, err
		}
		return true, nil
	}
}
