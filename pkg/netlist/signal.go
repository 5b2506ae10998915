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
)

// Signal represents a named bit-vector within a design.  Signals are compared
// by identity: two distinct signals with the same name are still different
// signals.  The scope of a signal identifies the bus (or module) which
// created it, and is used to construct a name which is unique across the
// design.
type Signal struct {
	// Scope in which this signal was declared (e.g. the owning bus).
	scope string
	// Given name of this signal within its scope.
	name string
	// Width (in bits) of this signal.
	width uint
}

// NewSignal constructs a new signal of the given width within the given
// scope.  Signals must have a positive width.
func NewSignal(scope string, name string, width uint) *Signal {
	if width == 0 {
		panic(fmt.Sprintf("signal %s has zero width", name))
	}
	//
	return &Signal{scope, name, width}
}

// Scope returns the scope in which this signal was declared.
func (p *Signal) Scope() string {
	return p.scope
}

// Name returns the name of this signal within its scope.
func (p *Signal) Name() string {
	return p.name
}

// Width returns the width (in bits) of this signal.
func (p *Signal) Width() uint {
	return p.width
}

// QualifiedName returns the name of this signal prefixed by its scope (when
// the scope is non-empty).
func (p *Signal) QualifiedName() string {
	if p.scope == "" {
		return p.name
	}
	//
	return fmt.Sprintf("%s_%s", p.scope, p.name)
}

func (p *Signal) String() string {
	return p.QualifiedName()
}

func (p *Signal) reads(acc []*Signal) []*Signal {
	return append(acc, p)
}
