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

	"github.com/stretchr/testify/require"
)

func TestLookupFindsAllThirteenIdentifiers(t *testing.T) {
	want := []string{
		"plus", "minus", "multiply", "divide", "intDiv", "modulo",
		"negate", "bitAnd", "bitOr", "bitXor", "bitNot",
		"bitShiftLeft", "bitShiftRight",
	}
	for _, name := range want {
		op, ok := Lookup(name)
		require.True(t, ok, "missing operator %q", name)
		require.Equal(t, name, op.Name())
	}
	require.Len(t, Names(), len(want))
}

func TestLookupMissing(t *testing.T) {
	_, ok := Lookup("nope")
	require.False(t, ok)
}
