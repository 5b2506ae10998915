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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the bus configuration from the persistent flags.
func getBusConfig(cmd *cobra.Command) rvfi.Config {
	return rvfi.Config{
		XLen:                    GetUint(cmd, "xlen"),
		ILen:                    GetUint(cmd, "ilen"),
		NRet:                    GetUint(cmd, "nret"),
		WithClock:               !GetFlag(cmd, "no-clock"),
		WithReset:               !GetFlag(cmd, "no-reset"),
		WithInstructionMetadata: !GetFlag(cmd, "no-metadata"),
		WithIntegerRegisters:    !GetFlag(cmd, "no-int-regs"),
		WithProgramCounter:      !GetFlag(cmd, "no-pc"),
		WithMemoryAccess:        !GetFlag(cmd, "no-mem"),
		ExtensionRegisters:      GetStringArray(cmd, "csr"),
	}
}

// Compose the bus described by the persistent flags, or exit if the
// configuration is invalid.
func composeBus(cmd *cobra.Command, name string) *rvfi.Bus {
	bus, err := rvfi.New(name, getBusConfig(cmd))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	return bus
}
