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

	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/pkg/errors"
)

// Simulate evaluates a module for every cycle of a given trace.  Each column of
// the trace drives the input signal of the same name (as determined by the
// given map), and the result holds one column for each observed signal, named
// by its qualified name.  This fails if a column has no corresponding input, or
// if some value does not fit into the signal it drives.
func Simulate(m *netlist.Module, inputs map[string]*netlist.Signal, observe []*netlist.Signal,
	tr *Trace) (*Trace, error) {
	var columns = make([]Column, len(observe))
	// Sanity check columns
	for _, col := range tr.columns {
		signal, ok := inputs[col.Name]
		if !ok {
			return nil, errors.Errorf("unknown signal %s", col.Name)
		}
		//
		for row := range col.Data {
			if uint(col.Data[row].BitLen()) > signal.Width() {
				return nil, errors.Errorf("signal %s out-of-bounds (row %d, value %s)", col.Name, row,
					col.Data[row].String())
			}
		}
	}
	//
	for i, s := range observe {
		columns[i] = Column{s.QualifiedName(), make([]big.Int, tr.height)}
	}
	//
	for row := range tr.height {
		values := make(map[*netlist.Signal]*big.Int, len(tr.columns))
		//
		for _, col := range tr.columns {
			values[inputs[col.Name]] = &col.Data[row]
		}
		//
		result, err := netlist.Evaluate(m, values)
		if err != nil {
			return nil, errors.Wrapf(err, "cycle %d", row)
		}
		//
		for i, s := range observe {
			if val, ok := result.Get(s); ok {
				columns[i].Data[row].Set(val)
			}
		}
	}
	//
	return NewTrace(columns...)
}
