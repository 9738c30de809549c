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

// Package moerr carries the five structural error kinds the
// arithmetic core can raise. It deliberately does not carry a wire
// format: shipping an error across a process boundary is the
// runtime's job, not this core's.
package moerr

import "fmt"

// Kind is one of the five structural error kinds named by the
// operator contract.
type Kind uint8

const (
	ArityMismatch Kind = iota
	InvalidArgumentType
	InvalidColumnShape
	DivisionByZero
	DivisionOverflow
)

func (k Kind) String() string {
	switch k {
	case ArityMismatch:
		return "ArityMismatch"
	case InvalidArgumentType:
		return "InvalidArgumentType"
	case InvalidColumnShape:
		return "InvalidColumnShape"
	case DivisionByZero:
		return "DivisionByZero"
	case DivisionOverflow:
		return "DivisionOverflow"
	}
	return "unknown"
}

// Error is the structured error type raised by every operator in
// pkg/sql/plan/function/arithmetic. Op names the offending operator;
// the offending operand types or column name are formatted into
// Message.
type Error struct {
	kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.kind, e.Op, e.Message)
}

// Kind returns the structural kind of the error, for callers that need
// to branch on it rather than match the message.
func (e *Error) Kind() Kind { return e.kind }

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewArityMismatch reports that an operator was invoked with the wrong
// number of arguments.
func NewArityMismatch(op string, want, got int) *Error {
	return newError(ArityMismatch, op, "expected %d argument(s), got %d", want, got)
}

// NewInvalidArgumentType reports that the promotion lattice has no
// result type for the given (left, right) declared type pair under op.
func NewInvalidArgumentType(op string, left, right fmt.Stringer) *Error {
	return newError(InvalidArgumentType, op, "no result type for operand types (%s, %s)", left, right)
}

// NewInvalidArgumentTypeUnary reports the unary analogue of
// NewInvalidArgumentType.
func NewInvalidArgumentTypeUnary(op string, operand fmt.Stringer) *Error {
	return newError(InvalidArgumentType, op, "no result type for operand type %s", operand)
}

// NewInvalidColumnShape reports that a column's declared type does not
// match the storage scalar actually backing it.
func NewInvalidColumnShape(op, column string, declared fmt.Stringer) *Error {
	return newError(InvalidColumnShape, op, "column %q declared as %s does not match its storage", column, declared)
}

// NewDivisionByZero reports a zero right operand to intDiv or modulo.
func NewDivisionByZero(op string) *Error {
	return newError(DivisionByZero, op, "division by zero")
}

// NewDivisionOverflow reports the MIN / -1 trap case.
func NewDivisionOverflow(op string) *Error {
	return newError(DivisionOverflow, op, "division overflow: minimum signed value divided by -1")
}
