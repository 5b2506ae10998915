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

	"github.com/consensys/go-rvfi/pkg/netlist"
	log "github.com/sirupsen/logrus"
)

// SliceRetirements splits a bus carrying N retirements into N buses carrying
// one retirement each.  The i'th bus returned is wired to lane i of the parent,
// which occupies bits [i*w, (i+1)*w) of every retirement-scaled signal (where w
// is the lane width).  Global signals (i.e. clock and reset) are broadcast to
// every slice.  All wiring is recorded as combinational assignments in the
// given module, and the parent bus is left unchanged.  Observe that a new bus
// is produced even when N = 1.
//
// This fails with a WidthMismatchError if some signal of the parent cannot be
// split evenly into N lanes matching the slice widths, in which case nothing is
// added to the module.  Likewise, it fails with a ConfigurationError if no
// module is given.
func SliceRetirements(parent *Bus, into *netlist.Module) ([]*Bus, error) {
	if into == nil {
		return nil, configError("module", "no module to wire slices of %s into", parent.name)
	}
	//
	var (
		nret   = parent.params.nret
		params = parent.params.WithNRet(1)
		slices = make([]*Bus, nret)
	)
	//
	for i := range nret {
		slices[i] = Compose(fmt.Sprintf("%s_%d", parent.name, i), params)
	}
	// Check widths before wiring anything
	for _, d := range parent.descriptor {
		if err := checkLaneWidth(parent, slices[0], d); err != nil {
			return nil, err
		}
	}
	//
	for i, slice := range slices {
		if err := wireSlice(parent, slice, uint(i), into); err != nil {
			return nil, err
		}
	}
	//
	log.Debugf("sliced bus %s into %d retirements", parent.name, nret)
	//
	return slices, nil
}

func checkLaneWidth(parent *Bus, slice *Bus, d SignalDecl) error {
	var (
		width  = parent.signals[d.Name].Width()
		target = slice.signals[d.Name]
		nret   = parent.params.nret
	)
	//
	if d.Category == Global {
		nret = 1
	}
	//
	if width%nret != 0 {
		return &WidthMismatchError{d.Name, width, nret, 0, 0}
	} else if target == nil || target.Width() != width/nret {
		var actual uint
		//
		if target != nil {
			actual = target.Width()
		}
		//
		return &WidthMismatchError{d.Name, width, nret, width / nret, actual}
	}
	//
	return nil
}

func wireSlice(parent *Bus, slice *Bus, lane uint, into *netlist.Module) error {
	for _, d := range parent.descriptor {
		var (
			source = parent.signals[d.Name]
			target = slice.signals[d.Name]
			err    error
		)
		//
		if d.Category == Global {
			err = into.Comb(target, source)
		} else {
			width := target.Width()
			err = into.Comb(target, netlist.NewSlice(source, lane*width, (lane+1)*width))
		}
		//
		if err != nil {
			return err
		}
	}
	//
	return nil
}
