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
package termio

import (
	"strings"
	"testing"
)

func Test_Table_00(t *testing.T) {
	var (
		table = NewTablePrinter(2, 2)
		out   strings.Builder
	)
	//
	table.SetRow(0, "signal", "width")
	table.SetRow(1, "rvfi_valid", "u1")
	table.SetEscape(0, 0, BoldAnsiEscape())
	table.AnsiEscapes(false)
	//
	if err := table.Print(&out); err != nil {
		t.Fatal(err)
	}
	//
	expected := "     signal | width |\n rvfi_valid |    u1 |\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func Test_Table_01(t *testing.T) {
	var (
		table = NewTablePrinter(1, 1)
		out   strings.Builder
	)
	//
	table.Set(0, 0, "rvfi_mem_rdata")
	table.SetMaxWidths(6)
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_CYAN))
	//
	if err := table.Print(&out); err != nil {
		t.Fatal(err)
	}
	//
	expected := "\033[36m rvfi..\033[0m |\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}
