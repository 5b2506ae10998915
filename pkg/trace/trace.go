// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package trace

import (
	"math/big"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Column holds the value of a single signal for every cycle of a trace.
type Column struct {
	Name string
	Data []big.Int
}

// Trace is a set of columns of identical height, one row per cycle.  Columns
// are kept sorted by name.
type Trace struct {
	columns []Column
	height  uint
}

// NewTrace constructs a trace from a given set of columns.  This fails if the
// columns have different heights, if two columns share a name, or if any value
// is negative.
func NewTrace(columns ...Column) (*Trace, error) {
	var (
		cols   = slices.Clone(columns)
		height uint
	)
	//
	slices.SortFunc(cols, func(l, r Column) int {
		return strings.Compare(l.Name, r.Name)
	})
	//
	for i, col := range cols {
		if i == 0 {
			height = uint(len(col.Data))
		} else if cols[i-1].Name == col.Name {
			return nil, errors.Errorf("duplicate column %s", col.Name)
		} else if uint(len(col.Data)) != height {
			return nil, errors.Errorf("column %s has height %d (expected %d)", col.Name, len(col.Data), height)
		}
		//
		for row := range col.Data {
			if col.Data[row].Sign() < 0 {
				return nil, errors.Errorf("column %s has negative value (row %d)", col.Name, row)
			}
		}
	}
	//
	return &Trace{cols, height}, nil
}

// Height returns the number of cycles in this trace.
func (p *Trace) Height() uint {
	return p.height
}

// Columns returns the columns of this trace, sorted by name.
func (p *Trace) Columns() []Column {
	return slices.Clone(p.columns)
}

// Column looks up a column by name.
func (p *Trace) Column(name string) (Column, bool) {
	index, ok := slices.BinarySearchFunc(p.columns, name, func(c Column, n string) int {
		return strings.Compare(c.Name, n)
	})
	//
	if !ok {
		return Column{}, false
	}
	//
	return p.columns[index], true
}

// Get returns the value of a given column in a given row.
func (p *Trace) Get(name string, row uint) (*big.Int, bool) {
	col, ok := p.Column(name)
	//
	if !ok || row >= p.height {
		return nil, false
	}
	//
	return new(big.Int).Set(&col.Data[row]), true
}
