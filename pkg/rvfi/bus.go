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
	"github.com/consensys/go-rvfi/pkg/netlist"
	log "github.com/sirupsen/logrus"
)

// Bus is an instance of the formal interface, consisting of one signal for
// every declaration in the descriptor implied by its parameters.  A bus never
// changes its own set of signals once constructed.  Other components can
// read from (or assign to) its signals, but only through a separate
// netlist.Module.
type Bus struct {
	name       string
	params     Parameters
	descriptor Descriptor
	signals    map[string]*netlist.Signal
}

// New validates a given configuration and composes a bus from it.  This fails
// with a ConfigurationError if the configuration is invalid, in which case no
// bus is produced.
func New(name string, cfg Config) (*Bus, error) {
	params, err := NewParameters(cfg)
	if err != nil {
		return nil, err
	}
	//
	return Compose(name, params), nil
}

// Compose constructs a bus from a given set of parameters.  The name is used
// as the scope of all signals in the bus, and should be unique within a
// design.
func Compose(name string, params Parameters) *Bus {
	var (
		descriptor = Describe(params)
		signals    = make(map[string]*netlist.Signal, len(descriptor))
	)
	//
	for _, d := range descriptor {
		signals[d.Name] = netlist.NewSignal(name, d.Name, d.Width)
	}
	//
	log.Debugf("composed bus %s with %d signals (xlen=%d, ilen=%d, nret=%d)", name, len(signals),
		params.xlen, params.ilen, params.nret)
	//
	return &Bus{name, params, descriptor, signals}
}

// Name returns the name of this bus.
func (p *Bus) Name() string {
	return p.name
}

// Params returns the parameters from which this bus was composed.
func (p *Bus) Params() Parameters {
	return p.params
}

// Descriptor returns the catalog of signals in this bus.
func (p *Bus) Descriptor() Descriptor {
	return append(Descriptor(nil), p.descriptor...)
}

// Len returns the number of signals in this bus.
func (p *Bus) Len() uint {
	return uint(len(p.descriptor))
}

// Signal looks up a signal by name.
func (p *Bus) Signal(name string) (*netlist.Signal, bool) {
	s, ok := p.signals[name]
	return s, ok
}

// Lookup returns the signal with the given name, or nil if this bus has no
// such signal.
func (p *Bus) Lookup(name string) *netlist.Signal {
	return p.signals[name]
}

// Signals returns all signals of this bus in descriptor order.
func (p *Bus) Signals() []*netlist.Signal {
	signals := make([]*netlist.Signal, len(p.descriptor))
	//
	for i, d := range p.descriptor {
		signals[i] = p.signals[d.Name]
	}
	//
	return signals
}
