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

	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/consensys/go-rvfi/pkg/rvfi"
	"github.com/consensys/go-rvfi/pkg/trace"
	"github.com/consensys/go-rvfi/pkg/util"
	"github.com/consensys/go-rvfi/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] trace_file",
	Short: "Slice a trace of a formal interface bus into its retirements.",
	Long: `Drive a formal interface bus from a JSON trace (e.g. {"rvfi_valid": [3, 1]}),
	and report the values observed on each of its single retirement slices for
	every cycle.  The result is either written as a JSON trace, or printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		input := readTraceFile(args[0])
		//
		stats.Log("Reading trace file")
		//
		bus := composeBus(cmd, GetString(cmd, "name"))
		//
		result, err := simulateSlices(bus, input)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Simulating slices")
		//
		if output := GetString(cmd, "output"); output != "" {
			err = os.WriteFile(output, []byte(trace.ToJsonString(result)), 0644)
		} else {
			err = printTrace(result, GetFlag(cmd, "ansi-escapes"))
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// Slice a bus and evaluate its slices over every cycle of a given trace.
func simulateSlices(bus *rvfi.Bus, input *trace.Trace) (*trace.Trace, error) {
	var (
		module  = netlist.NewModule(bus.Name())
		inputs  = make(map[string]*netlist.Signal)
		observe []*netlist.Signal
	)
	//
	slices, err := rvfi.SliceRetirements(bus, module)
	if err != nil {
		return nil, err
	}
	//
	for _, s := range bus.Signals() {
		inputs[s.Name()] = s
	}
	//
	for _, slice := range slices {
		observe = append(observe, slice.Signals()...)
	}
	//
	return trace.Simulate(module, inputs, observe, input)
}

// Parse a trace file, or exit if an error arises.
func readTraceFile(filename string) *trace.Trace {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var tr *trace.Trace
		//
		if tr, err = trace.FromBytes(bytes); err == nil {
			return tr
		}
	}
	// Handle error
	log.Error(errors.Wrapf(err, "reading %s", filename))
	os.Exit(2)
	// unreachable
	return nil
}

// Print a trace with one row per signal and one column per cycle.
func printTrace(tr *trace.Trace, ansiEscapes bool) error {
	var (
		columns = tr.Columns()
		table   = termio.NewTablePrinter(tr.Height()+1, uint(len(columns))+1)
		bold    = termio.BoldAnsiEscape()
	)
	//
	table.Set(0, 0, "signal")
	table.SetEscape(0, 0, bold)
	//
	for row := range tr.Height() {
		table.Set(row+1, 0, fmt.Sprintf("#%d", row))
		table.SetEscape(row+1, 0, bold)
	}
	//
	for i, col := range columns {
		table.Set(0, uint(i)+1, col.Name)
		//
		for row := range col.Data {
			table.Set(uint(row)+1, uint(i)+1, fmt.Sprintf("0x%s", col.Data[row].Text(16)))
		}
	}
	//
	table.AnsiEscapes(ansiEscapes && termio.IsTerminal(os.Stdout))
	//
	return table.Print(os.Stdout)
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("name", "rvfi", "name of the bus")
	simulateCmd.Flags().StringP("output", "o", "", "write the sliced trace to a JSON file")
	simulateCmd.Flags().Bool("ansi-escapes", true, "specify whether to allow ANSI escapes or not (e.g. for colour output)")
}
