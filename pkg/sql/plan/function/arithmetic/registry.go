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

// registry is the flat name -> Operator lookup every caller goes
// through; there is no namespacing or overload resolution beyond the
// 13 fixed identifiers.
var registry = map[string]Operator{
	"plus":          plusOp{},
	"minus":         minusOp{},
	"multiply":      multiplyOp{},
	"divide":        divideOp{},
	"intDiv":        intDivOp{},
	"modulo":        moduloOp{},
	"negate":        negateOp{},
	"bitAnd":        bitAndOp{},
	"bitOr":         bitOrOp{},
	"bitXor":        bitXorOp{},
	"bitNot":        bitNotOp{},
	"bitShiftLeft":  bitShiftLeftOp{},
	"bitShiftRight": bitShiftRightOp{},
}

// Lookup returns the named operator, and false if no operator by that
// name is registered.
func Lookup(name string) (Operator, bool) {
	op, ok := registry[name]
	return op, ok
}

// Names returns every registered operator identifier, for callers
// (tests, cmd/colarith-bench when no operators are configured) that
// need to enumerate the full set.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
