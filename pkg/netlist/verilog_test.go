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
package netlist

import (
	"strings"
	"testing"
)

func Test_Verilog_00(t *testing.T) {
	var (
		m    = NewModule("top")
		src  = NewSignal("rvfi", "rvfi_insn", 64)
		rst  = NewSignal("rvfi", "rst", 1)
		dst  = NewSignal("rvfi_1", "rvfi_insn", 32)
		inst = NewInstance("ibex_tracer", "tracer_1")
		out  strings.Builder
	)
	//
	check_Comb(t, m, dst, NewSlice(src, 32, 64))
	inst.Input("rst_ni", NewNot(rst)).Input("rvfi_insn", dst).Input("hart_id_i", NewConst(1, 32))
	//
	if err := m.AddInstance(inst); err != nil {
		t.Fatal(err)
	} else if err := WriteVerilog(&out, m); err != nil {
		t.Fatal(err)
	}
	//
	expected := `module top (
	input wire [63:0] rvfi_rvfi_insn,
	input wire rvfi_rst
);
	wire [31:0] rvfi_1_rvfi_insn;

	assign rvfi_1_rvfi_insn = rvfi_rvfi_insn[63:32];

	ibex_tracer tracer_1 (
		.rst_ni(~rvfi_rst),
		.rvfi_insn(rvfi_1_rvfi_insn),
		.hart_id_i(32'd1)
	);
endmodule
`
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func Test_Verilog_01(t *testing.T) {
	// Slices covering an entire signal select nothing
	var (
		m     = NewModule("top")
		valid = NewSignal("rvfi", "rvfi_valid", 1)
		pc    = NewSignal("rvfi", "rvfi_pc_rdata", 32)
		dst0  = NewSignal("rvfi_0", "rvfi_valid", 1)
		dst1  = NewSignal("rvfi_0", "rvfi_pc_rdata", 32)
		out   strings.Builder
	)
	//
	check_Comb(t, m, dst0, NewSlice(valid, 0, 1))
	check_Comb(t, m, dst1, NewSlice(pc, 0, 32))
	//
	if err := WriteVerilog(&out, m); err != nil {
		t.Fatal(err)
	}
	//
	expected := `module top (
	input wire rvfi_rvfi_valid,
	input wire [31:0] rvfi_rvfi_pc_rdata
);
	wire rvfi_0_rvfi_valid;
	wire [31:0] rvfi_0_rvfi_pc_rdata;

	assign rvfi_0_rvfi_valid = rvfi_rvfi_valid;
	assign rvfi_0_rvfi_pc_rdata = rvfi_rvfi_pc_rdata;
endmodule
`
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func Test_Verilog_02(t *testing.T) {
	var (
		word = NewSignal("rvfi", "rvfi_mem_rmask", 4)
		bit  = NewSignal("rvfi", "rvfi_ixl", 2)
	)
	//
	if s := NewSlice(word, 2, 4).String(); s != "rvfi_rvfi_mem_rmask[3:2]" {
		t.Errorf("unexpected slice %s", s)
	} else if s := NewSlice(bit, 1, 2).String(); s != "rvfi_rvfi_ixl[1]" {
		t.Errorf("unexpected slice %s", s)
	}
}
