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
	"os"

	"github.com/consensys/go-rvfi/pkg/rvfi"
	"github.com/consensys/go-rvfi/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [flags]",
	Short: "Describe the signals of a formal interface bus.",
	Long: `Describe the signals of a formal interface bus, as determined by the
	given bus configuration.  For each signal, its group, category, lane width and
	total width are shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		bus := composeBus(cmd, GetString(cmd, "name"))
		//
		if err := printDescriptor(bus.Descriptor(), GetFlag(cmd, "ansi-escapes")); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func printDescriptor(descriptor rvfi.Descriptor, ansiEscapes bool) error {
	var (
		table = termio.NewTablePrinter(5, uint(len(descriptor))+1)
		bold  = termio.BoldAnsiEscape()
	)
	//
	table.SetRow(0, "signal", "group", "category", "lane", "width")
	//
	for i := range uint(5) {
		table.SetEscape(i, 0, bold)
	}
	//
	for i, d := range descriptor {
		row := uint(i) + 1
		table.SetRow(row, d.Name, d.Group.String(), d.Category.String(),
			fmt.Sprintf("u%d", d.LaneWidth), fmt.Sprintf("u%d", d.Width))
		//
		if d.Category == rvfi.Global {
			table.SetEscape(2, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
		} else {
			table.SetEscape(2, row, termio.NewAnsiEscape().FgColour(termio.TERM_CYAN))
		}
	}
	//
	table.AnsiEscapes(ansiEscapes && termio.IsTerminal(os.Stdout))
	//
	if width, ok := termio.Width(os.Stdout); ok {
		table.SetMaxWidths(width / 5)
	}
	//
	return table.Print(os.Stdout)
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().String("name", "rvfi", "name of the bus")
	describeCmd.Flags().Bool("ansi-escapes", true, "specify whether to allow ANSI escapes or not (e.g. for colour output)")
}
