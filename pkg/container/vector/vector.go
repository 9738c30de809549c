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

// Package vector implements the two column shapes the core operates
// over: a materialized Vector and a broadcast Constant, both carried
// by the same Vector struct the way the teacher's container package
// keeps one struct for both shapes and distinguishes them by class.
package vector

import (
	"fmt"

	"github.com/colarith/colarith/pkg/container/types"
)

// class mirrors the teacher's FLAT/CONSTANT column-class split. There
// is no DIST class here: cross-node distributed shapes belong to the
// storage layer, an external collaborator this core never touches.
type class uint8

const (
	flat class = iota
	constant
)

// Vector is a single column position's payload: a declared Type plus
// either a dense slice (flat) or a single replicated value (constant)
// of that type, stored type-erased in col and recovered via
// MustFixedCol. length is the column's logical row count, which for a
// constant column is independent of len(col).
type Vector struct {
	typ    types.Type
	class  class
	col    any
	length int
}

// NewFlat builds a materialized vector backed by data; its logical
// length is len(data).
func NewFlat[T types.FixedSizeT](typ types.Type, data []T) *Vector {
	return &Vector{typ: typ, class: flat, col: data, length: len(data)}
}

// NewConst builds a constant column of logical length n replicating
// value. Only a single element is actually stored.
func NewConst[T types.FixedSizeT](typ types.Type, value T, n int) *Vector {
	return &Vector{typ: typ, class: constant, col: []T{value}, length: n}
}

// GetType returns the column's declared type.
func (v *Vector) GetType() types.Type { return v.typ }

// Length returns the column's logical row count.
func (v *Vector) Length() int { return v.length }

// IsConst reports whether the column is a broadcast constant.
func (v *Vector) IsConst() bool { return v.class == constant }

// MustFixedCol recovers the typed backing slice. For a flat vector
// this has length Length(); for a constant it has length 1 (the
// replicated value). It panics if T does not match the vector's
// stored element type, mirroring the teacher's MustFixedCol contract
// that callers are expected to have already checked the declared type
// before reaching for the payload.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	col, ok := v.col.([]T)
	if !ok {
		panic(fmt.Sprintf("vector: stored element type does not match requested type for column of type %s", v.typ))
	}
	return col
}

// ConstValue returns the single replicated value of a constant column.
// It does not check IsConst(): on a flat vector it returns the first
// element, and it panics only if the column is empty or T does not
// match the stored element type.
func ConstValue[T types.FixedSizeT](v *Vector) T {
	return MustFixedCol[T](v)[0]
}
