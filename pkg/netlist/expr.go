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
)

// Expr represents a combinational expression over signals which can be used
// as the source of an assignment, or bound to the port of an instance.  The
// set of expressions is closed: signals, slices, negations and constants.
type Expr interface {
	// Width returns the number of bits produced by this expression.
	Width() uint
	// String returns a Verilog-like rendering of this expression.
	String() string
	// reads appends the signals read by this expression.
	reads(acc []*Signal) []*Signal
}

// Slice represents the contiguous bit range [Lo, Hi) of a given signal, where
// bit 0 is the least significant bit.
type Slice struct {
	Target *Signal
	Lo     uint
	Hi     uint
}

// NewSlice constructs a slice covering bits [lo, hi) of a given signal.
func NewSlice(target *Signal, lo uint, hi uint) Slice {
	if lo >= hi || hi > target.Width() {
		panic(fmt.Sprintf("invalid slice [%d:%d) of %s (u%d)", lo, hi, target, target.Width()))
	}
	//
	return Slice{target, lo, hi}
}

// Width returns the number of bits covered by this slice.
func (p Slice) Width() uint {
	return p.Hi - p.Lo
}

func (p Slice) String() string {
	if p.Lo == 0 && p.Hi == p.Target.Width() {
		// Selecting from a scalar is not permitted
		return p.Target.String()
	} else if p.Hi-p.Lo == 1 {
		return fmt.Sprintf("%s[%d]", p.Target, p.Lo)
	}
	//
	return fmt.Sprintf("%s[%d:%d]", p.Target, p.Hi-1, p.Lo)
}

func (p Slice) reads(acc []*Signal) []*Signal {
	return append(acc, p.Target)
}

// Not represents the bitwise complement of its argument.
type Not struct {
	Arg Expr
}

// NewNot constructs the bitwise complement of a given expression.
func NewNot(arg Expr) Not {
	return Not{arg}
}

// Width of a negation matches that of its argument.
func (p Not) Width() uint {
	return p.Arg.Width()
}

func (p Not) String() string {
	return fmt.Sprintf("~%s", p.Arg)
}

func (p Not) reads(acc []*Signal) []*Signal {
	return p.Arg.reads(acc)
}

// Const represents a constant value of a fixed width.
type Const struct {
	value big.Int
	width uint
}

// NewConst constructs a constant of the given width from a machine word.
func NewConst(value uint64, width uint) Const {
	var val big.Int
	//
	val.SetUint64(value)
	//
	return NewBigConst(&val, width)
}

// NewBigConst constructs a constant of the given width.  The value must be
// non-negative and representable in the given number of bits.
func NewBigConst(value *big.Int, width uint) Const {
	if width == 0 {
		panic("constant has zero width")
	} else if value.Sign() < 0 || uint(value.BitLen()) > width {
		panic(fmt.Sprintf("constant %s not representable in u%d", value, width))
	}
	//
	var c Const
	c.value.Set(value)
	c.width = width
	//
	return c
}

// Value returns a copy of the value of this constant.
func (p Const) Value() *big.Int {
	return new(big.Int).Set(&p.value)
}

// Width returns the declared width of this constant.
func (p Const) Width() uint {
	return p.width
}

func (p Const) String() string {
	return fmt.Sprintf("%d'd%s", p.width, p.value.String())
}

func (p Const) reads(acc []*Signal) []*Signal {
	return acc
}
