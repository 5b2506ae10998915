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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-rvfi/pkg/build"
	"github.com/consensys/go-rvfi/pkg/rvfi"
	"github.com/consensys/go-rvfi/pkg/tracer"
	"github.com/consensys/go-rvfi/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Determines the (relative) location of the test directory.  That is
// where the JSON traces are found.
var TestDir = "../../testdata"

func Test_Simulate_00(t *testing.T) {
	var (
		bus    = newBus(t, 2)
		input  = readTrace(t, "nret2.json")
		result *trace.Trace
		err    error
	)
	//
	result, err = simulateSlices(bus, input)
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.Height())
	// Every signal of every slice is observed
	assert.Len(t, result.Columns(), 2*int(bus.Len()))
	//
	check_Column(t, result, "rvfi_0_rvfi_valid", 1, 1)
	check_Column(t, result, "rvfi_1_rvfi_valid", 1, 0)
	check_Column(t, result, "rvfi_0_rvfi_order", 10, 12)
	check_Column(t, result, "rvfi_1_rvfi_order", 11, 0)
	check_Column(t, result, "rvfi_0_rvfi_insn", 0x13, 0x8067)
	check_Column(t, result, "rvfi_1_rvfi_insn", 0x00a00513, 0)
	check_Column(t, result, "rvfi_0_rvfi_pc_rdata", 0x80000000, 0x80000008)
	check_Column(t, result, "rvfi_1_rvfi_pc_rdata", 0x80000004, 0)
	check_Column(t, result, "rvfi_0_rst", 1, 0)
	check_Column(t, result, "rvfi_1_rst", 1, 0)
	check_Column(t, result, "rvfi_1_rvfi_mem_wmask", 0, 0)
}

func Test_Simulate_01(t *testing.T) {
	// Trace values must fit the parent bus
	var (
		bus   = newBus(t, 1)
		input = readTrace(t, "nret2.json")
	)
	//
	_, err := simulateSlices(bus, input)
	assert.Error(t, err)
}

func Test_Generate_00(t *testing.T) {
	var (
		bus      = newBus(t, 4)
		platform = build.NewPlatform("sim")
		cfg      = generateConfig{"sim_top", t.TempDir(), "/opt/ibex", true}
	)
	//
	module, err := generateDesign(bus, platform, cfg)
	require.NoError(t, err)
	//
	assert.Equal(t, "sim_top", module.Name())
	assert.Len(t, module.Instances(), 4)
	assert.Len(t, module.Assignments(), 4*int(bus.Len()))
	assert.Equal(t, []string{"/opt/ibex/rtl/ibex_pkg.sv", "/opt/ibex/rtl/ibex_tracer_pkg.sv",
		"/opt/ibex/rtl/ibex_tracer.sv"}, platform.Sources())
	//
	for i, inst := range module.Instances() {
		assert.Equal(t, tracer.COMPONENT, inst.Component)
		//
		port, ok := inst.Port(tracer.RST_PORT)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("~rvfi_%d_rst", i), port.Expr.String())
	}
	//
	require.NoError(t, platform.Write(cfg.out, module))
}

func Test_Generate_01(t *testing.T) {
	var (
		bus      = newBus(t, 2)
		platform = build.NewPlatform("sim")
		cfg      = generateConfig{"sim_top", t.TempDir(), "ibex", false}
	)
	//
	module, err := generateDesign(bus, platform, cfg)
	require.NoError(t, err)
	assert.Empty(t, module.Instances())
	assert.Empty(t, platform.Sources())
}

func Test_Generate_02(t *testing.T) {
	// A single retirement design selects no bits from its scalar inputs
	var (
		bus      = newBus(t, 1)
		platform = build.NewPlatform("sim")
		cfg      = generateConfig{"sim_top", t.TempDir(), "ibex", true}
	)
	//
	module, err := generateDesign(bus, platform, cfg)
	require.NoError(t, err)
	require.NoError(t, platform.Write(cfg.out, module))
	//
	bytes, err := os.ReadFile(filepath.Join(cfg.out, "sim_top.v"))
	require.NoError(t, err)
	//
	design := string(bytes)
	//
	for _, s := range bus.Signals() {
		if s.Width() == 1 {
			assert.Contains(t, design, fmt.Sprintf("\tinput wire %s", s.QualifiedName()))
			assert.NotContains(t, design, s.QualifiedName()+"[")
		}
		//
		assert.Contains(t, design, fmt.Sprintf("assign rvfi_0_%s = %s;", s.Name(), s.QualifiedName()))
	}
	//
	assert.True(t, strings.HasSuffix(design, "endmodule\n"))
}

// ===================================================================
// Test Helpers
// ===================================================================

func newBus(t *testing.T, nret uint) *rvfi.Bus {
	cfg := rvfi.DefaultConfig()
	cfg.NRet = nret
	//
	bus, err := rvfi.New("rvfi", cfg)
	require.NoError(t, err)
	//
	return bus
}

func readTrace(t *testing.T, name string) *trace.Trace {
	bytes, err := os.ReadFile(TestDir + "/" + name)
	require.NoError(t, err)
	//
	tr, err := trace.FromBytes(bytes)
	require.NoError(t, err)
	//
	return tr
}

func check_Column(t *testing.T, tr *trace.Trace, name string, expected ...int64) {
	col, ok := tr.Column(name)
	require.True(t, ok, "missing column %s", name)
	require.Len(t, col.Data, len(expected))
	//
	for i, e := range expected {
		assert.Equal(t, 0, col.Data[i].Cmp(big.NewInt(e)), "%s (cycle %d): expected %d, got %s", name, i, e,
			col.Data[i].String())
	}
}
