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
package rvfi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expected lane widths for the fixed signals, independently of the catalog.
func expectedLaneWidths(xlen, ilen uint) map[string]uint {
	return map[string]uint{
		"clk": 1, "rst": 1,
		"rvfi_valid": 1, "rvfi_order": 64, "rvfi_insn": ilen, "rvfi_trap": 1, "rvfi_halt": 1,
		"rvfi_intr": 1, "rvfi_mode": 2, "rvfi_ixl": 2,
		"rvfi_rs1_addr": 5, "rvfi_rs2_addr": 5, "rvfi_rs1_rdata": xlen, "rvfi_rs2_rdata": xlen,
		"rvfi_rd_addr": 5, "rvfi_rd_wdata": xlen,
		"rvfi_pc_rdata": xlen, "rvfi_pc_wdata": xlen,
		"rvfi_mem_addr": xlen, "rvfi_mem_rmask": xlen / 8, "rvfi_mem_wmask": xlen / 8,
		"rvfi_mem_rdata": xlen, "rvfi_mem_wdata": xlen,
	}
}

var expectedGroups = map[Group][]string{
	ClockGroup:          {"clk"},
	ResetGroup:          {"rst"},
	InstructionMetadata: {"rvfi_valid", "rvfi_order", "rvfi_insn", "rvfi_trap", "rvfi_halt", "rvfi_intr", "rvfi_mode", "rvfi_ixl"},
	IntegerRegisters: {"rvfi_rs1_addr", "rvfi_rs2_addr", "rvfi_rs1_rdata", "rvfi_rs2_rdata", "rvfi_rd_addr",
		"rvfi_rd_wdata"},
	ProgramCounter: {"rvfi_pc_rdata", "rvfi_pc_wdata"},
	MemoryAccess:   {"rvfi_mem_addr", "rvfi_mem_rmask", "rvfi_mem_wmask", "rvfi_mem_rdata", "rvfi_mem_wdata"},
}

func Test_Compose_00(t *testing.T) {
	for _, xlen := range []uint{32, 64} {
		for _, ilen := range []uint{16, 32} {
			for _, nret := range []uint{1, 2, 4} {
				check_Compose(t, xlen, ilen, nret, 0b111111)
			}
		}
	}
}

func Test_Compose_01(t *testing.T) {
	// Every combination of groups
	for mask := uint8(0); mask < 64; mask++ {
		check_Compose(t, 32, 32, 2, mask)
	}
}

func Test_Compose_02(t *testing.T) {
	for _, nret := range []uint{1, 2, 4} {
		cfg := DefaultConfig()
		cfg.NRet = nret
		cfg.ExtensionRegisters = []string{"mstatus", "mcause"}
		//
		bus, err := New("rvfi", cfg)
		require.NoError(t, err)
		//
		plain, err := New("rvfi", DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, plain.Len()+8, bus.Len())
		//
		for _, reg := range []string{"mstatus", "mcause"} {
			for _, field := range []string{"rmask", "wmask", "rdata", "wdata"} {
				name := fmt.Sprintf("rvfi_csr_%s_%s", reg, field)
				s, ok := bus.Signal(name)
				require.True(t, ok, "missing %s", name)
				assert.Equal(t, nret*32, s.Width(), name)
				//
				d, ok := bus.Descriptor().Find(name)
				require.True(t, ok)
				assert.Equal(t, ExtensionRegister, d.Group)
				assert.Equal(t, RetirementScaled, d.Category)
			}
		}
	}
}

func Test_Compose_03(t *testing.T) {
	// Determinism
	cfg := DefaultConfig()
	cfg.NRet = 2
	cfg.ExtensionRegisters = []string{"mstatus", "mcause"}
	first, err := New("rvfi", cfg)
	require.NoError(t, err)
	// Unrelated invocation in between
	_, err = New("other", Config{XLen: 64, ILen: 16, NRet: 4, WithMemoryAccess: true})
	require.NoError(t, err)
	//
	cfg.ExtensionRegisters = []string{"mcause", "mstatus"}
	second, err := New("rvfi", cfg)
	require.NoError(t, err)
	//
	assert.Equal(t, first.Descriptor(), second.Descriptor())
	//
	for i, s := range first.Signals() {
		o := second.Signals()[i]
		assert.NotSame(t, s, o)
		assert.Equal(t, s.Name(), o.Name())
		assert.Equal(t, s.Width(), o.Width())
	}
}

func Test_Compose_04(t *testing.T) {
	bus, err := New("cpu", DefaultConfig())
	require.NoError(t, err)
	//
	valid := bus.Lookup(RVFI_VALID)
	require.NotNil(t, valid)
	assert.Equal(t, "cpu", valid.Scope())
	assert.Equal(t, "cpu_rvfi_valid", valid.QualifiedName())
	assert.Nil(t, bus.Lookup("rvfi_rs3_addr"))
	// Mutating returned views leaves the bus unchanged
	signals := bus.Signals()
	signals[0] = nil
	assert.NotNil(t, bus.Signals()[0])
	//
	descriptor := bus.Descriptor()
	descriptor[0].Width = 100
	assert.Equal(t, uint(1), bus.Descriptor()[0].Width)
}

func Test_Compose_05(t *testing.T) {
	// Catalog groups match the documented groups
	for g, names := range expectedGroups {
		assert.Equal(t, names, GroupNames(g), g.String())
	}
	//
	assert.Empty(t, GroupNames(ExtensionRegister))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Compose(t *testing.T, xlen, ilen, nret uint, groups uint8) {
	var (
		cfg = Config{
			XLen:                    xlen,
			ILen:                    ilen,
			NRet:                    nret,
			WithClock:               groups&1 != 0,
			WithReset:               groups&2 != 0,
			WithInstructionMetadata: groups&4 != 0,
			WithIntegerRegisters:    groups&8 != 0,
			WithProgramCounter:      groups&16 != 0,
			WithMemoryAccess:        groups&32 != 0,
		}
		widths   = expectedLaneWidths(xlen, ilen)
		expected uint
	)
	//
	bus, err := New("rvfi", cfg)
	require.NoError(t, err)
	//
	for g := ClockGroup; g <= MemoryAccess; g++ {
		for _, name := range expectedGroups[g] {
			s, ok := bus.Signal(name)
			//
			if groups&(1<<g) == 0 {
				assert.False(t, ok, "unexpected signal %s", name)
				continue
			}
			//
			require.True(t, ok, "missing signal %s", name)
			//
			expected++
			//
			if g == ClockGroup || g == ResetGroup {
				assert.Equal(t, widths[name], s.Width(), name)
			} else {
				assert.Equal(t, nret*widths[name], s.Width(), name)
				assert.Zero(t, s.Width()%nret)
			}
		}
	}
	//
	assert.Equal(t, expected, bus.Len())
}
