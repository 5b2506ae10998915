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

// ConfigurationError reports an invalid bus configuration (e.g. a register
// width which is not a multiple of 8), or an attempt to use a bus in a context
// for which its parameters are unsuitable.  Configuration errors are always
// fatal: no bus (or binding) is produced.
type ConfigurationError struct {
	// Field identifies the offending parameter.
	Field string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration (%s): %s", e.Field, e.Reason)
}

func configError(field string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{field, fmt.Sprintf(format, args...)}
}

// WidthMismatchError reports an inconsistency between the declared parameters
// of a bus and the actual width of one of its signals.  This indicates an
// internal defect, rather than a user error.
type WidthMismatchError struct {
	// Signal is the name of the offending signal.
	Signal string
	// Width is the total width of the signal being sliced.
	Width uint
	// Lanes is the number of retirement lanes being sliced out.
	Lanes uint
	// Expected is the lane width implied by Width and Lanes (or zero when Width
	// is not divisible by Lanes).
	Expected uint
	// Actual is the width of the destination signal (or zero when Width is not
	// divisible by Lanes).
	Actual uint
}

func (e *WidthMismatchError) Error() string {
	if e.Width%e.Lanes != 0 {
		return fmt.Sprintf("signal %s (u%d) cannot be split into %d lanes", e.Signal, e.Width, e.Lanes)
	}
	//
	return fmt.Sprintf("signal %s (u%d) has lane width u%d, but destination is u%d",
		e.Signal, e.Width, e.Expected, e.Actual)
}
