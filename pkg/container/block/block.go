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

// Package block implements the ordered collection of named column
// positions that arithmetic operators read from and write to.
package block

import "github.com/colarith/colarith/pkg/container/vector"

// position is one (name, column) slot. The declared type is not kept
// separately: it is always vector.Vector.GetType().
type position struct {
	name string
	col  *vector.Vector
}

// Block is an ordered list of named column positions, all sharing the
// same logical row count. Arithmetic operators consume two positions
// and write a third.
type Block struct {
	positions []position
}

// New builds an empty Block.
func New() *Block {
	return &Block{}
}

// Append adds a new named position holding col and returns its index.
func (b *Block) Append(name string, col *vector.Vector) int {
	b.positions = append(b.positions, position{name: name, col: col})
	return len(b.positions) - 1
}

// Len returns the number of positions in the block.
func (b *Block) Len() int { return len(b.positions) }

// Get returns the column at position i and its name.
func (b *Block) Get(i int) (*vector.Vector, string) {
	p := b.positions[i]
	return p.col, p.name
}

// Set overwrites (or, if i == Len(), appends) the column at position i,
// keeping the existing name if the position already exists.
func (b *Block) Set(i int, col *vector.Vector) {
	if i == len(b.positions) {
		b.positions = append(b.positions, position{col: col})
		return
	}
	b.positions[i].col = col
}
