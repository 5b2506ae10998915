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
package trace

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// FromBytes parses a trace expressed in JSON notation.  For example, {"X":
// [0, 1], "Y": [1, 2]} is a trace containing two cycles of data each for two
// signals "X" and "Y".
func FromBytes(data []byte) (*Trace, error) {
	var rawData map[string][]big.Int
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, errors.Wrap(err, "malformed trace")
	}
	//
	columns := make([]Column, 0, len(rawData))
	//
	for name, data := range rawData {
		columns = append(columns, Column{name, data})
	}
	//
	return NewTrace(columns...)
}

// ToJsonString converts a trace into a JSON string, using the same notation
// accepted by FromBytes.  Columns are written in name order.
func ToJsonString(tr *Trace) string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, col := range tr.columns {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString("\"")
		builder.WriteString(col.Name)
		builder.WriteString("\": [")
		//
		for j := range col.Data {
			if j != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(col.Data[j].String())
		}
		//
		builder.WriteString("]")
	}
	//
	builder.WriteString("}")
	// Done
	return builder.String()
}
