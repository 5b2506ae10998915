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
	"github.com/pkg/errors"
)

// Assignment represents a combinational (i.e. zero-delay) assignment of a
// source expression to a target signal.  The target always reflects the value
// of the source in the same cycle.
type Assignment struct {
	Target *Signal
	Source Expr
}

// Port binds a named input port of an instantiated component to an expression
// within the enclosing module.
type Port struct {
	Name string
	Expr Expr
}

// Instance represents an instantiation of an external component (e.g. a
// pre-built Verilog module) whose input ports are bound to expressions.  Ports
// are kept in declaration order, since this is part of the component's
// interface.  Components only observe the design; they drive no signals.
type Instance struct {
	// Name of the component being instantiated.
	Component string
	// Name of this particular instance.
	Name string
	// Port bindings, in order.
	Ports []Port
}

// NewInstance constructs an instance of a given component with no port
// bindings.
func NewInstance(component string, name string) *Instance {
	return &Instance{component, name, nil}
}

// Input binds an input port of this instance to a given expression.
func (p *Instance) Input(name string, expr Expr) *Instance {
	p.Ports = append(p.Ports, Port{name, expr})
	return p
}

// Port looks up the binding for a given port name.
func (p *Instance) Port(name string) (Port, bool) {
	for _, port := range p.Ports {
		if port.Name == name {
			return port, true
		}
	}
	//
	return Port{}, false
}

// Module collects the combinational assignments and component instances which
// make up a (flat) design.  A module only ever grows: assignments and
// instances cannot be removed once added.
type Module struct {
	name      string
	comb      []Assignment
	instances []*Instance
	// Maps each driven signal to the index of its driving assignment.
	drivers map[*Signal]uint
}

// NewModule constructs an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{name, nil, nil, make(map[*Signal]uint)}
}

// Name returns the name of this module.
func (m *Module) Name() string {
	return m.name
}

// Comb adds a combinational assignment to this module.  This fails if the
// widths of target and source differ, or if the target is already driven by
// another assignment.
func (m *Module) Comb(target *Signal, source Expr) error {
	if target.Width() != source.Width() {
		return errors.Errorf("width mismatch assigning %s (u%d) to %s (u%d)",
			source, source.Width(), target, target.Width())
	} else if _, ok := m.drivers[target]; ok {
		return errors.Errorf("signal %s has multiple drivers", target)
	}
	//
	m.drivers[target] = uint(len(m.comb))
	m.comb = append(m.comb, Assignment{target, source})
	//
	return nil
}

// Assignments returns the combinational assignments of this module, in the
// order they were added.
func (m *Module) Assignments() []Assignment {
	return append([]Assignment(nil), m.comb...)
}

// Driver returns the assignment driving a given signal, if one exists.
func (m *Module) Driver(signal *Signal) (Assignment, bool) {
	if index, ok := m.drivers[signal]; ok {
		return m.comb[index], true
	}
	//
	return Assignment{}, false
}

// AddInstance adds a component instance to this module.  Instance names must
// be unique within a module.
func (m *Module) AddInstance(inst *Instance) error {
	for _, i := range m.instances {
		if i.Name == inst.Name {
			return errors.Errorf("duplicate instance %s", inst.Name)
		}
	}
	//
	m.instances = append(m.instances, inst)
	//
	return nil
}

// Instances returns the component instances of this module, in the order they
// were added.
func (m *Module) Instances() []*Instance {
	return append([]*Instance(nil), m.instances...)
}

// Signals returns every signal referenced by this module (either as the target
// of an assignment, or read by an expression), in order of first appearance.
func (m *Module) Signals() []*Signal {
	var (
		seen    = make(map[*Signal]bool)
		signals []*Signal
		visit   = func(s *Signal) {
			if !seen[s] {
				seen[s] = true
				signals = append(signals, s)
			}
		}
	)
	//
	for _, a := range m.comb {
		for _, s := range a.Source.reads(nil) {
			visit(s)
		}
		//
		visit(a.Target)
	}
	//
	for _, inst := range m.instances {
		for _, port := range inst.Ports {
			for _, s := range port.Expr.reads(nil) {
				visit(s)
			}
		}
	}
	//
	return signals
}

// Inputs returns those signals referenced by this module which are not driven
// by any assignment.  Their values must be supplied from outside the module.
func (m *Module) Inputs() []*Signal {
	var inputs []*Signal
	//
	for _, s := range m.Signals() {
		if _, ok := m.drivers[s]; !ok {
			inputs = append(inputs, s)
		}
	}
	//
	return inputs
}
