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

// Category determines how the width of a signal relates to the number of
// retirements carried by a bus.
type Category uint8

const (
	// Global signals (i.e. clock and reset) have a width independent of the
	// number of retirements, and are shared by all of them.
	Global Category = iota
	// RetirementScaled signals consist of nret equal-width lanes, one per
	// retirement, with lane 0 occupying the least significant bits.
	RetirementScaled
)

func (c Category) String() string {
	if c == Global {
		return "global"
	}
	//
	return "scaled"
}

// Group identifies a group of signals which are included (or not) as a whole.
type Group uint8

const (
	// ClockGroup contains the clock signal.
	ClockGroup Group = iota
	// ResetGroup contains the (active high) reset signal.
	ResetGroup
	// InstructionMetadata contains validity, ordering, instruction word, trap,
	// halt and interrupt flags, privilege mode and register-width class.
	InstructionMetadata
	// IntegerRegisters contains the source and destination register addresses
	// and values.
	IntegerRegisters
	// ProgramCounter contains the program counter before and after each
	// instruction.
	ProgramCounter
	// MemoryAccess contains the address, masks and data of memory accesses.
	MemoryAccess
	// ExtensionRegister contains the masks and data of a named extension (i.e.
	// control and status) register.  Unlike other groups, this is included once
	// per register name.
	ExtensionRegister
)

var groupNames = [...]string{"clock", "reset", "metadata", "int-regs", "pc", "mem", "csr"}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	//
	return "unknown"
}

// Category returns the category of all signals in this group.
func (g Group) Category() Category {
	if g == ClockGroup || g == ResetGroup {
		return Global
	}
	//
	return RetirementScaled
}
