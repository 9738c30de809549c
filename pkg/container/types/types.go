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

// Package types defines the closed set of scalar kinds the arithmetic
// core operates over.
package types

// T is the oid of a scalar kind, mirroring the closed candidate list
// walked by the dispatcher.
type T uint8

const (
	T_uint8 T = iota
	T_uint16
	T_uint32
	T_uint64
	T_int8
	T_int16
	T_int32
	T_int64
	T_float32
	T_float64
	T_date
	T_datetime
)

// CandidateOrder is the fixed order the dispatcher walks when matching
// a declared type against the closed scalar set. Date and DateTime are
// tried first so the date overlay gets first refusal on a pair before
// the plain numeric lattice is consulted.
var CandidateOrder = []T{
	T_date, T_datetime,
	T_uint8, T_uint16, T_uint32, T_uint64,
	T_int8, T_int16, T_int32, T_int64,
	T_float32, T_float64,
}

// UnaryCandidateOrder is the narrower list the unary dispatcher walks:
// no dates.
var UnaryCandidateOrder = []T{
	T_uint8, T_uint16, T_uint32, T_uint64,
	T_int8, T_int16, T_int32, T_int64,
	T_float32, T_float64,
}

func (t T) String() string {
	switch t {
	case T_uint8:
		return "u8"
	case T_uint16:
		return "u16"
	case T_uint32:
		return "u32"
	case T_uint64:
		return "u64"
	case T_int8:
		return "i8"
	case T_int16:
		return "i16"
	case T_int32:
		return "i32"
	case T_int64:
		return "i64"
	case T_float32:
		return "f32"
	case T_float64:
		return "f64"
	case T_date:
		return "Date"
	case T_datetime:
		return "DateTime"
	}
	return "unknown"
}

// Width returns the storage width in bits of the scalar kind, with Date
// and DateTime reported at their underlying storage width (u16/u32).
func (t T) Width() int {
	switch t {
	case T_uint8, T_int8:
		return 8
	case T_uint16, T_int16, T_date:
		return 16
	case T_uint32, T_int32, T_float32, T_datetime:
		return 32
	case T_uint64, T_int64, T_float64:
		return 64
	}
	return 0
}

// Signed reports whether the kind's storage representation is signed.
// Date and DateTime are unsigned (they underlie u16/u32).
func (t T) Signed() bool {
	switch t {
	case T_int8, T_int16, T_int32, T_int64:
		return true
	default:
		return false
	}
}

// Floating reports whether the kind is a floating-point storage type.
func (t T) Floating() bool {
	return t == T_float32 || t == T_float64
}

// Integral reports whether the kind is an integer storage type,
// including the date kinds (which are integer-backed).
func (t T) Integral() bool {
	return !t.Floating()
}

// IsDateOrDateTime reports whether t is one of the two date kinds.
func (t T) IsDateOrDateTime() bool {
	return t == T_date || t == T_datetime
}

// Type pairs an oid with the scalar element width/signedness already
// encoded on T itself; Type exists as a distinct value (rather than a
// bare T) so that a future caller can attach catalog-level metadata
// (e.g. a column name used only for diagnostics) without changing the
// oid's own identity.
type Type struct {
	Oid T
}

func (typ Type) String() string { return typ.Oid.String() }

// Date is the number of days since 1970-01-01, stored as the
// underlying u16 the way the catalog's Date declared type does.
type Date uint16

// DateTime is the number of seconds since 1970-01-01T00:00:00Z, stored
// as the underlying u32 the way the catalog's DateTime declared type
// does.
type DateTime uint32

// FixedSizeT is the set of Go types usable as a vector's element type.
type FixedSizeT interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}
