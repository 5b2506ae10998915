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
	"math/big"
)

// Mask returns the value 2^width - 1, i.e. a value with the lowest width bits
// set.
func Mask(width uint) *big.Int {
	var mask = big.NewInt(1)
	// Compute 2^n - 1
	mask.Lsh(mask, width)
	//
	return mask.Sub(mask, big.NewInt(1))
}

// Truncate returns the lowest width bits of a given value.
func Truncate(value *big.Int, width uint) *big.Int {
	return new(big.Int).And(value, Mask(width))
}

// Extract returns bits [lo, hi) of a given value, shifted down so that bit lo
// becomes the least significant bit.
func Extract(value *big.Int, lo uint, hi uint) *big.Int {
	var val big.Int
	// Shift down
	val.Rsh(value, lo)
	//
	return val.And(&val, Mask(hi-lo))
}

// SplitValue splits a value into a number of consecutive lanes of the given
// widths.  For the resulting array, the least significant lane is first.  Any
// bits above the combined width are discarded.
func SplitValue(value *big.Int, widths ...uint) []big.Int {
	var (
		lanes  = make([]big.Int, len(widths))
		offset uint
	)
	//
	for i, w := range widths {
		lanes[i].Set(Extract(value, offset, offset+w))
		offset += w
	}
	//
	return lanes
}

// JoinValues is the inverse of SplitValue.  It concatenates a number of lanes
// of the given widths, where the first lane is least significant.  Each lane
// is truncated to its width before being combined.
func JoinValues(lanes []big.Int, widths ...uint) *big.Int {
	var (
		acc    big.Int
		offset uint
	)
	//
	if len(lanes) != len(widths) {
		panic("mismatched number of lanes and widths")
	}
	//
	for i := range lanes {
		var lane = Truncate(&lanes[i], widths[i])
		//
		lane.Lsh(lane, offset)
		acc.Or(&acc, lane)
		offset += widths[i]
	}
	//
	return &acc
}
