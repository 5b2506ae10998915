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
	"math/bits"
	"regexp"
	"slices"
)

// Config provides the raw configuration from which a bus is composed.  This is
// a plain record which can be filled from any source (e.g. command-line flags);
// it must be validated by NewParameters before use.
type Config struct {
	// Register width in bits (must be a multiple of 8).
	XLen uint
	// Instruction width in bits (must be a multiple of 8).
	ILen uint
	// Number of simultaneous retirements (must be at least 1).
	NRet uint
	// Signal groups to include.
	WithClock               bool
	WithReset               bool
	WithInstructionMetadata bool
	WithIntegerRegisters    bool
	WithProgramCounter      bool
	WithMemoryAccess        bool
	// Names of extension (e.g. control and status) registers to expose.  Each
	// name must be a valid identifier.  Duplicates are ignored.
	ExtensionRegisters []string
}

// DefaultConfig returns the configuration for a 32bit, single retirement bus
// with all signal groups enabled and no extension registers.
func DefaultConfig() Config {
	return Config{
		XLen:                    32,
		ILen:                    32,
		NRet:                    1,
		WithClock:               true,
		WithReset:               true,
		WithInstructionMetadata: true,
		WithIntegerRegisters:    true,
		WithProgramCounter:      true,
		WithMemoryAccess:        true,
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parameters is a validated (and immutable) bus configuration.  Parameters can
// only be constructed through NewParameters, hence every instance is known to
// be valid.
type Parameters struct {
	xlen uint
	ilen uint
	nret uint
	// Bitmask of included groups, indexed by Group.
	groups uint8
	// Extension register names, sorted and without duplicates.
	extensions []string
}

// NewParameters validates a given configuration, producing a set of bus
// parameters.  This fails with a ConfigurationError if either width is not a
// positive multiple of 8, if the number of retirements is zero, or if an
// extension register name is not a valid identifier.  Likewise, it fails if the
// widest signal of the bus (i.e. its widest lane across all retirements) would
// not be representable.
func NewParameters(cfg Config) (Parameters, error) {
	switch {
	case cfg.XLen == 0 || cfg.XLen%8 != 0:
		return Parameters{}, configError("xlen", "%d is not a positive multiple of 8", cfg.XLen)
	case cfg.ILen == 0 || cfg.ILen%8 != 0:
		return Parameters{}, configError("ilen", "%d is not a positive multiple of 8", cfg.ILen)
	case cfg.NRet < 1:
		return Parameters{}, configError("nret", "at least one retirement required")
	}
	//
	if hi, _ := bits.Mul(widestLane(cfg), cfg.NRet); hi != 0 {
		return Parameters{}, configError("nret", "%d retirements of u%d lanes overflows", cfg.NRet, widestLane(cfg))
	}
	//
	for _, name := range cfg.ExtensionRegisters {
		if !identifier.MatchString(name) {
			return Parameters{}, configError("csr", "invalid register name \"%s\"", name)
		}
	}
	// Normalise extension registers
	extensions := slices.Clone(cfg.ExtensionRegisters)
	slices.Sort(extensions)
	extensions = slices.Compact(extensions)
	//
	var groups uint8
	//
	for g, included := range []bool{cfg.WithClock, cfg.WithReset, cfg.WithInstructionMetadata,
		cfg.WithIntegerRegisters, cfg.WithProgramCounter, cfg.WithMemoryAccess} {
		if included {
			groups |= 1 << g
		}
	}
	//
	return Parameters{cfg.XLen, cfg.ILen, cfg.NRet, groups, extensions}, nil
}

// XLen returns the register width in bits.
func (p Parameters) XLen() uint {
	return p.xlen
}

// ILen returns the instruction width in bits.
func (p Parameters) ILen() uint {
	return p.ilen
}

// NRet returns the number of simultaneous retirements.
func (p Parameters) NRet() uint {
	return p.nret
}

// Has determines whether a given signal group is included.  The extension
// register group is included whenever at least one extension register is
// named.
func (p Parameters) Has(group Group) bool {
	if group == ExtensionRegister {
		return len(p.extensions) > 0
	}
	//
	return p.groups&(1<<group) != 0
}

// ExtensionRegisters returns the (sorted) names of all extension registers.
func (p Parameters) ExtensionRegisters() []string {
	return slices.Clone(p.extensions)
}

// WithNRet returns a copy of these parameters for a different number of
// retirements.
func (p Parameters) WithNRet(nret uint) Parameters {
	if nret < 1 {
		panic("at least one retirement required")
	}
	//
	p.nret = nret
	//
	return p
}

// Equal determines whether two parameter sets are identical.
func (p Parameters) Equal(o Parameters) bool {
	return p.xlen == o.xlen && p.ilen == o.ilen && p.nret == o.nret && p.groups == o.groups &&
		slices.Equal(p.extensions, o.extensions)
}

// widestLane determines the widest lane of any signal which could be declared
// for a given configuration.
func widestLane(cfg Config) uint {
	widest := max(cfg.XLen, cfg.ILen)
	//
	for _, e := range catalog {
		if e.width.kind == fixedLane {
			widest = max(widest, e.width.bits)
		}
	}
	//
	return widest
}
