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

	"github.com/consensys/go-rvfi/pkg/build"
	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/consensys/go-rvfi/pkg/rvfi"
	"github.com/consensys/go-rvfi/pkg/tracer"
	"github.com/consensys/go-rvfi/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate a design which slices a formal interface bus and traces each retirement.",
	Long: `Generate a Verilog design which splits a formal interface bus carrying one or
	more retirements into single retirement buses, and attaches an instruction
	tracer to each of them.  The design is written into the output directory,
	along with a manifest of the external sources it requires.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg generateConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.top = GetString(cmd, "top")
		cfg.out = GetString(cmd, "out")
		cfg.tracerRoot = GetString(cmd, "tracer-root")
		cfg.tracers = !GetFlag(cmd, "no-tracer")
		//
		stats := util.NewPerfStats()
		bus := composeBus(cmd, GetString(cmd, "name"))
		platform := build.NewPlatform(cfg.top)
		//
		module, err := generateDesign(bus, platform, cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Generating design")
		//
		if err := platform.Write(cfg.out, module); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// generateConfig encapsulates the parameters used when generating a design.
type generateConfig struct {
	// Name of the generated (top-level) module.
	top string
	// Directory into which the design is written.
	out string
	// Directory containing the tracer sources.
	tracerRoot string
	// Determines whether tracers are attached to each slice.
	tracers bool
}

// Slice a bus into its retirements, attaching one tracer per retirement (where
// the hart identifier is the retirement index).
func generateDesign(bus *rvfi.Bus, platform tracer.Platform, cfg generateConfig) (*netlist.Module, error) {
	module := netlist.NewModule(cfg.top)
	//
	slices, err := rvfi.SliceRetirements(bus, module)
	if err != nil {
		return nil, err
	}
	//
	if cfg.tracers {
		for i, slice := range slices {
			if _, err := tracer.NewIbexTracer(slice, uint(i), module, platform,
				tracer.WithSourceRoot(cfg.tracerRoot)); err != nil {
				return nil, err
			}
		}
	}
	//
	return module, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("name", "rvfi", "name of the bus")
	generateCmd.Flags().String("top", "rvfi_top", "name of the generated module")
	generateCmd.Flags().StringP("out", "o", "build", "output directory")
	generateCmd.Flags().String("tracer-root", "ibex", "directory containing the tracer sources")
	generateCmd.Flags().Bool("no-tracer", false, "do not attach tracers")
}
