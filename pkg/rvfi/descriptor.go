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
	"fmt"
)

// laneWidth describes how the per-lane width of a signal is determined from
// the bus parameters.
type laneWidth struct {
	kind uint8
	bits uint
}

const (
	fixedLane = iota
	xlenLane
	ilenLane
	xlenBytesLane
)

var (
	xlenWidth      = laneWidth{xlenLane, 0}
	ilenWidth      = laneWidth{ilenLane, 0}
	xlenBytesWidth = laneWidth{xlenBytesLane, 0}
)

func fixedWidth(bits uint) laneWidth {
	return laneWidth{fixedLane, bits}
}

func (w laneWidth) of(p Parameters) uint {
	switch w.kind {
	case fixedLane:
		return w.bits
	case xlenLane:
		return p.xlen
	case ilenLane:
		return p.ilen
	case xlenBytesLane:
		return p.xlen / 8
	default:
		panic("unknown lane width")
	}
}

// catalogEntry declares a single signal of the bus.  For extension registers,
// the name is a suffix which is combined with the register name.
type catalogEntry struct {
	name  string
	group Group
	width laneWidth
}

// SignalDecl describes a single signal of a bus, as implied by a given set of
// parameters.
type SignalDecl struct {
	// Name of the signal.
	Name string
	// Group to which the signal belongs.
	Group Group
	// Category of the signal (which is determined by its group).
	Category Category
	// Width of a single lane.  For global signals, this is the signal width.
	LaneWidth uint
	// Total width of the signal.
	Width uint
}

func (p SignalDecl) String() string {
	return fmt.Sprintf("%s:u%d", p.Name, p.Width)
}

// Descriptor is the catalog of signals (with their widths and categories)
// implied by a given set of parameters.  Signals are listed in a fixed order:
// first clock and reset, then each group in turn, and finally extension
// registers (sorted by register name).
type Descriptor []SignalDecl

// Describe determines the signals implied by a given set of parameters.  This
// is a pure function: identical parameters always give identical descriptors.
func Describe(params Parameters) Descriptor {
	var decls Descriptor
	//
	for _, e := range catalog {
		if params.Has(e.group) {
			decls = append(decls, declare(params, e.name, e.group, e.width))
		}
	}
	//
	for _, reg := range params.extensions {
		for _, e := range extensionCatalog {
			decls = append(decls, declare(params, ExtensionSignalName(reg, e.name), e.group, e.width))
		}
	}
	//
	return decls
}

// Find looks up the declaration of a given signal.
func (p Descriptor) Find(name string) (SignalDecl, bool) {
	for _, d := range p {
		if d.Name == name {
			return d, true
		}
	}
	//
	return SignalDecl{}, false
}

// Names returns the names of all signals in this descriptor, in order.
func (p Descriptor) Names() []string {
	names := make([]string, len(p))
	//
	for i, d := range p {
		names[i] = d.Name
	}
	//
	return names
}

// GroupNames returns the (fixed) names of all signals in a given group, in
// catalog order.  Extension registers have no fixed names, hence this returns
// nothing for them.
func GroupNames(group Group) []string {
	var names []string
	//
	for _, e := range catalog {
		if e.group == group {
			names = append(names, e.name)
		}
	}
	//
	return names
}

// ExtensionSignalName constructs the name of a signal for a given extension
// register, where field is one of rmask, wmask, rdata or wdata.
func ExtensionSignalName(register string, field string) string {
	return fmt.Sprintf("%s_%s_%s", CSR_PREFIX, register, field)
}

func declare(params Parameters, name string, group Group, width laneWidth) SignalDecl {
	var (
		category = group.Category()
		lane     = width.of(params)
		total    = lane
	)
	//
	if category == RetirementScaled {
		total = lane * params.nret
	}
	//
	return SignalDecl{name, group, category, lane, total}
}
