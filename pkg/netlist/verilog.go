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
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// WriteVerilog writes a given module out as a Verilog module.  Input signals
// (i.e. those which are not driven) become input ports of the module, whilst
// all other signals become internal wires.
func WriteVerilog(w io.Writer, m *Module) error {
	var (
		builder strings.Builder
		inputs  = m.Inputs()
	)
	// Module header
	builder.WriteString(fmt.Sprintf("module %s (\n", m.name))
	//
	for i, s := range inputs {
		builder.WriteString(fmt.Sprintf("\tinput wire %s%s", declRange(s.Width()), s.QualifiedName()))
		//
		if i+1 != len(inputs) {
			builder.WriteString(",")
		}
		//
		builder.WriteString("\n")
	}
	//
	builder.WriteString(");\n")
	// Internal wires
	for _, a := range m.comb {
		builder.WriteString(fmt.Sprintf("\twire %s%s;\n", declRange(a.Target.Width()), a.Target.QualifiedName()))
	}
	// Assignments
	if len(m.comb) > 0 {
		builder.WriteString("\n")
	}
	//
	for _, a := range m.comb {
		builder.WriteString(fmt.Sprintf("\tassign %s = %s;\n", a.Target.QualifiedName(), a.Source))
	}
	// Instances
	for _, inst := range m.instances {
		builder.WriteString(fmt.Sprintf("\n\t%s %s (\n", inst.Component, inst.Name))
		//
		for i, port := range inst.Ports {
			builder.WriteString(fmt.Sprintf("\t\t.%s(%s)", port.Name, port.Expr))
			//
			if i+1 != len(inst.Ports) {
				builder.WriteString(",")
			}
			//
			builder.WriteString("\n")
		}
		//
		builder.WriteString("\t);\n")
	}
	//
	builder.WriteString("endmodule\n")
	//
	if _, err := io.WriteString(w, builder.String()); err != nil {
		return errors.Wrapf(err, "writing module %s", m.name)
	}
	// Done
	return nil
}

func declRange(width uint) string {
	if width == 1 {
		return ""
	}
	//
	return fmt.Sprintf("[%d:0] ", width-1)
}
