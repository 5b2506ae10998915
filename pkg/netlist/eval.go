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
	"math/big"

	"github.com/pkg/errors"
)

// Values records the value of every signal (and instance port) in a module for
// a single cycle.
type Values struct {
	signals map[*Signal]*big.Int
	ports   map[*Instance][]big.Int
}

// Get returns the value of a given signal.  Signals not referenced by the
// evaluated module have no value.
func (p *Values) Get(signal *Signal) (*big.Int, bool) {
	val, ok := p.signals[signal]
	if !ok {
		return nil, false
	}
	//
	return new(big.Int).Set(val), true
}

// Port returns the value observed on a given port of an instance.
func (p *Values) Port(inst *Instance, name string) (*big.Int, bool) {
	values, ok := p.ports[inst]
	//
	if ok {
		for i, port := range inst.Ports {
			if port.Name == name {
				return new(big.Int).Set(&values[i]), true
			}
		}
	}
	//
	return nil, false
}

// evaluation state for a given signal.
const (
	unvisited = iota
	visiting
	visited
)

type evaluator struct {
	module *Module
	inputs map[*Signal]*big.Int
	values map[*Signal]*big.Int
	state  map[*Signal]uint8
}

// Evaluate computes the value of every signal in a given module for a single
// cycle.  The values of input signals (i.e. those not driven by any assignment)
// are taken from the given map, where missing inputs default to zero.  Values
// wider than their signal are truncated.  This fails if a value is given for a
// driven signal, or if the module contains a combinational loop.
func Evaluate(m *Module, inputs map[*Signal]*big.Int) (*Values, error) {
	var ev = evaluator{m, inputs, make(map[*Signal]*big.Int), make(map[*Signal]uint8)}
	// Sanity check inputs
	for s := range inputs {
		if _, ok := m.drivers[s]; ok {
			return nil, errors.Errorf("signal %s is driven and cannot be an input", s)
		}
	}
	// Evaluate all signals
	for _, s := range m.Signals() {
		if _, err := ev.signal(s); err != nil {
			return nil, err
		}
	}
	// Evaluate all ports
	ports := make(map[*Instance][]big.Int, len(m.instances))
	//
	for _, inst := range m.instances {
		values := make([]big.Int, len(inst.Ports))
		//
		for i, port := range inst.Ports {
			val, err := ev.expr(port.Expr)
			if err != nil {
				return nil, err
			}
			//
			values[i].Set(val)
		}
		//
		ports[inst] = values
	}
	//
	return &Values{ev.values, ports}, nil
}

func (p *evaluator) signal(s *Signal) (*big.Int, error) {
	switch p.state[s] {
	case visited:
		return p.values[s], nil
	case visiting:
		return nil, errors.Errorf("combinational loop through %s", s)
	}
	//
	var val *big.Int
	//
	if a, ok := p.module.Driver(s); ok {
		p.state[s] = visiting
		//
		src, err := p.expr(a.Source)
		if err != nil {
			return nil, err
		}
		//
		val = src
	} else if in, ok := p.inputs[s]; ok {
		val = Truncate(in, s.Width())
	} else {
		val = new(big.Int)
	}
	//
	p.values[s] = val
	p.state[s] = visited
	//
	return val, nil
}

func (p *evaluator) expr(e Expr) (*big.Int, error) {
	switch e := e.(type) {
	case *Signal:
		return p.signal(e)
	case Slice:
		val, err := p.signal(e.Target)
		if err != nil {
			return nil, err
		}
		//
		return Extract(val, e.Lo, e.Hi), nil
	case Not:
		val, err := p.expr(e.Arg)
		if err != nil {
			return nil, err
		}
		//
		return new(big.Int).Xor(val, Mask(e.Width())), nil
	case Const:
		return e.Value(), nil
	default:
		panic(fmt.Sprintf("unknown expression %s", e))
	}
}
