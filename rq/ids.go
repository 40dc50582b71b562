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

import "fmt"

// ColumnID is a process-unique handle for a column. Two ColumnIDs compare
// equal iff they denote the same column. ColumnIDs are minted by a Context
// and never reused within a compilation.
type ColumnID uint64

// String implements fmt.Stringer, used by debug logging in package anchor.
func (id ColumnID) String() string {
	return fmt.Sprintf("c%d", uint64(id))
}

// TableID is a process-unique handle for a relation, with the same identity
// semantics as ColumnID.
type TableID uint64

// String implements fmt.Stringer.
func (id TableID) String() string {
	return fmt.Sprintf("t%d", uint64(id))
}
