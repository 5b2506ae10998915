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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-rvfi",
	Short: "A toolbox for RISC-V formal interface buses.",
	Long: `A toolbox for composing RISC-V formal interface buses, slicing them into
	single retirement buses and attaching instruction tracers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("go-rvfi ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Uint("xlen", 32, "register width (in bits)")
	rootCmd.PersistentFlags().Uint("ilen", 32, "instruction width (in bits)")
	rootCmd.PersistentFlags().Uint("nret", 1, "number of simultaneous retirements")
	rootCmd.PersistentFlags().StringArray("csr", nil, "expose a named control and status register")
	rootCmd.PersistentFlags().Bool("no-clock", false, "omit the clock signal")
	rootCmd.PersistentFlags().Bool("no-reset", false, "omit the reset signal")
	rootCmd.PersistentFlags().Bool("no-metadata", false, "omit instruction metadata signals")
	rootCmd.PersistentFlags().Bool("no-int-regs", false, "omit integer register signals")
	rootCmd.PersistentFlags().Bool("no-pc", false, "omit program counter signals")
	rootCmd.PersistentFlags().Bool("no-mem", false, "omit memory access signals")
}
