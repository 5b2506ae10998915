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
package tracer

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/consensys/go-rvfi/pkg/netlist"
	"github.com/consensys/go-rvfi/pkg/rvfi"
	log "github.com/sirupsen/logrus"
)

// COMPONENT is the name of the external instruction tracer.
const COMPONENT = "ibex_tracer"

// HART_ID_WIDTH is the width of the hart identifier port.
const HART_ID_WIDTH = 32

// Platform represents the build system into which the tracer's sources are
// registered.  The adapter registers its sources on every construction; it is
// up to the platform whether repeated registrations are merged.
type Platform interface {
	AddSource(path string)
}

// Sources identifies the source artifacts of the tracer, relative to its
// source root.  These must be compiled in this order.
var Sources = []string{
	"rtl/ibex_pkg.sv",
	"rtl/ibex_tracer_pkg.sv",
	"rtl/ibex_tracer.sv",
}

// passthrough lists the rvfi ports of the tracer in order.  All but the third
// source register ports are bound to the bus signal of the same name.
var passthrough = []string{
	rvfi.RVFI_VALID, rvfi.RVFI_ORDER, rvfi.RVFI_INSN, rvfi.RVFI_TRAP, rvfi.RVFI_HALT,
	rvfi.RVFI_INTR, rvfi.RVFI_MODE, rvfi.RVFI_IXL,
	rvfi.RVFI_RS1_ADDR, rvfi.RVFI_RS2_ADDR, RVFI_RS3_ADDR,
	rvfi.RVFI_RS1_RDATA, rvfi.RVFI_RS2_RDATA, RVFI_RS3_RDATA,
	rvfi.RVFI_RD_ADDR, rvfi.RVFI_RD_WDATA,
	rvfi.RVFI_PC_RDATA, rvfi.RVFI_PC_WDATA,
	rvfi.RVFI_MEM_ADDR, rvfi.RVFI_MEM_RMASK, rvfi.RVFI_MEM_WMASK, rvfi.RVFI_MEM_RDATA, rvfi.RVFI_MEM_WDATA,
}

// Ports of the tracer which have no counterpart on the bus.
const (
	// RVFI_RS3_ADDR is the third source register (always zero).
	RVFI_RS3_ADDR = "rvfi_rs3_addr"
	// RVFI_RS3_RDATA is the third source value (always zero).
	RVFI_RS3_RDATA = "rvfi_rs3_rdata"
	// CLK_PORT is the clock input.
	CLK_PORT = "clk_i"
	// RST_PORT is the (active low) reset input.
	RST_PORT = "rst_ni"
	// HART_ID_PORT is the hart identifier.
	HART_ID_PORT = "hart_id_i"
)

// IbexTracer binds a single-retirement bus to an instance of the external
// instruction tracer, which writes a log of every retired instruction.
type IbexTracer struct {
	bus      *rvfi.Bus
	hart     uint
	instance *netlist.Instance
}

type config struct {
	root string
	name string
}

// Option configures an IbexTracer.
type Option func(*config)

// WithSourceRoot sets the directory containing the tracer's sources.
func WithSourceRoot(root string) Option {
	return func(c *config) {
		c.root = root
	}
}

// WithInstanceName sets the name of the tracer instance.  By default, the
// instance is named after the hart.
func WithInstanceName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// NewIbexTracer instantiates the external tracer for a given hart within the
// given module, binding its ports to the signals of a given bus.  The clock
// is passed through, whilst the reset is inverted (since the tracer expects
// an active low reset).  The hart identifier is passed as a 32bit constant,
// and the third source register ports (which the bus does not model) are tied
// to zero.  If a platform is given, the tracer's sources are registered with
// it.
//
// This fails with a rvfi.ConfigurationError if the bus carries more than one
// retirement (since the tracer can only process one instruction per cycle),
// if the bus lacks a signal required by the tracer, or if the hart identifier
// does not fit into 32 bits.  A module must be given, though the platform may
// be nil.
func NewIbexTracer(bus *rvfi.Bus, hart uint, module *netlist.Module, platform Platform,
	options ...Option) (*IbexTracer, error) {
	var cfg = config{"ibex", fmt.Sprintf("tracer_%d", hart)}
	//
	for _, opt := range options {
		opt(&cfg)
	}
	//
	if module == nil {
		return nil, &rvfi.ConfigurationError{Field: "module",
			Reason: fmt.Sprintf("no module to instantiate %s into", cfg.name)}
	} else if nret := bus.Params().NRet(); nret != 1 {
		return nil, &rvfi.ConfigurationError{Field: "nret",
			Reason: fmt.Sprintf("tracer accepts one retirement per cycle, bus %s carries %d", bus.Name(), nret)}
	} else if uint64(hart) > math.MaxUint32 {
		return nil, &rvfi.ConfigurationError{Field: "hart",
			Reason: fmt.Sprintf("hart id %d exceeds u%d", hart, HART_ID_WIDTH)}
	}
	//
	instance, err := bind(bus, hart, cfg.name)
	if err != nil {
		return nil, err
	} else if err := module.AddInstance(instance); err != nil {
		return nil, err
	}
	//
	if platform != nil {
		for _, src := range Sources {
			platform.AddSource(filepath.Join(cfg.root, src))
		}
	}
	//
	log.Debugf("attached %s to bus %s (hart %d)", cfg.name, bus.Name(), hart)
	//
	return &IbexTracer{bus, hart, instance}, nil
}

// Bus returns the bus observed by this tracer.
func (p *IbexTracer) Bus() *rvfi.Bus {
	return p.bus
}

// Hart returns the hart identifier passed to this tracer.
func (p *IbexTracer) Hart() uint {
	return p.hart
}

// Instance returns the instance of the external tracer.
func (p *IbexTracer) Instance() *netlist.Instance {
	return p.instance
}

func bind(bus *rvfi.Bus, hart uint, name string) (*netlist.Instance, error) {
	var instance = netlist.NewInstance(COMPONENT, name)
	//
	clk, err := require(bus, rvfi.CLK)
	if err != nil {
		return nil, err
	}
	//
	rst, err := require(bus, rvfi.RST)
	if err != nil {
		return nil, err
	}
	//
	instance.Input(CLK_PORT, clk)
	instance.Input(RST_PORT, netlist.NewNot(rst))
	instance.Input(HART_ID_PORT, netlist.NewConst(uint64(hart), HART_ID_WIDTH))
	//
	for _, port := range passthrough {
		var expr netlist.Expr
		//
		switch port {
		case RVFI_RS3_ADDR:
			expr, err = padding(bus, rvfi.RVFI_RS1_ADDR)
		case RVFI_RS3_RDATA:
			expr, err = padding(bus, rvfi.RVFI_RS1_RDATA)
		default:
			expr, err = require(bus, port)
		}
		//
		if err != nil {
			return nil, err
		}
		//
		instance.Input(port, expr)
	}
	//
	return instance, nil
}

func require(bus *rvfi.Bus, name string) (*netlist.Signal, error) {
	if s, ok := bus.Signal(name); ok {
		return s, nil
	}
	//
	return nil, &rvfi.ConfigurationError{Field: name,
		Reason: fmt.Sprintf("bus %s does not provide signal required by %s", bus.Name(), COMPONENT)}
}

// padding constructs a zero constant matching the width of a given signal.
func padding(bus *rvfi.Bus, like string) (netlist.Expr, error) {
	s, err := require(bus, like)
	if err != nil {
		return nil, err
	}
	//
	return netlist.NewConst(0, s.Width()), nil
}
