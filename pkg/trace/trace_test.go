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
	"testing"

	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Trace_00(t *testing.T) {
	tr, err := FromBytes([]byte(`{"y": [1, 2, 3], "x": [340282366920938463463374607431768211455, 0, 7]}`))
	require.NoError(t, err)
	//
	assert.Equal(t, uint(3), tr.Height())
	assert.Len(t, tr.Columns(), 2)
	assert.Equal(t, "x", tr.Columns()[0].Name)
	//
	val, ok := tr.Get("x", 0)
	require.True(t, ok)
	assert.Equal(t, 128, val.BitLen())
	//
	_, ok = tr.Get("x", 3)
	assert.False(t, ok)
	_, ok = tr.Get("z", 0)
	assert.False(t, ok)
	//
	assert.Equal(t, `{"x": [340282366920938463463374607431768211455, 0, 7], "y": [1, 2, 3]}`, ToJsonString(tr))
}

func Test_Trace_01(t *testing.T) {
	_, err := FromBytes([]byte(`{"x": [1, 2], "y": [1]}`))
	assert.Error(t, err)
	//
	_, err = FromBytes([]byte(`{"x": [-1]}`))
	assert.Error(t, err)
	//
	_, err = FromBytes([]byte(`{"x": [1`))
	assert.Error(t, err)
}

func Test_Trace_02(t *testing.T) {
	var (
		m  = netlist.NewModule("top")
		in = netlist.NewSignal("bus", "data", 8)
		lo = netlist.NewSignal("bus_0", "data", 4)
		hi = netlist.NewSignal("bus_1", "data", 4)
	)
	//
	require.NoError(t, m.Comb(lo, netlist.NewSlice(in, 0, 4)))
	require.NoError(t, m.Comb(hi, netlist.NewSlice(in, 4, 8)))
	//
	tr, err := NewTrace(Column{"data", []big.Int{*big.NewInt(0x12), *big.NewInt(0xAB)}})
	require.NoError(t, err)
	//
	out, err := Simulate(m, map[string]*netlist.Signal{"data": in}, []*netlist.Signal{lo, hi}, tr)
	require.NoError(t, err)
	assert.Equal(t, `{"bus_0_data": [2, 11], "bus_1_data": [1, 10]}`, ToJsonString(out))
	// Out-of-bounds value
	tr, err = NewTrace(Column{"data", []big.Int{*big.NewInt(0x100)}})
	require.NoError(t, err)
	_, err = Simulate(m, map[string]*netlist.Signal{"data": in}, []*netlist.Signal{lo, hi}, tr)
	assert.Error(t, err)
	// Unknown signal
	tr, err = NewTrace(Column{"other", []big.Int{*big.NewInt(0)}})
	require.NoError(t, err)
	_, err = Simulate(m, map[string]*netlist.Signal{"data": in}, []*netlist.Signal{lo, hi}, tr)
	assert.Error(t, err)
}
