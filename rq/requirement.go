// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rq

// Requirement is a consumer-side statement that Col must be available at or
// below MaxComplexity, optionally required to appear in the SELECT list of
// the sub-pipeline that produces it (spec §3).
type Requirement struct {
	Col           ColumnID
	MaxComplexity Complexity
	Selected      bool
}

// RequirementsFor builds one Requirement per col, all sharing the given
// maxComplexity and selected flag. Mirrors into_requirements in the
// original implementation.
func RequirementsFor(cols []ColumnID, maxComplexity Complexity, selected bool) []Requirement {
	reqs := make([]Requirement, len(cols))
	for i, c := range cols {
		reqs[i] = Requirement{Col: c, MaxComplexity: maxComplexity, Selected: selected}
	}
	return reqs
}
