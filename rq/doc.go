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

// Package rq defines the data model for a relational pipeline intermediate
// representation (RQ): column and table identifiers, the closed set of
// pipeline transforms, and the ambient context interface that a compilation
// threads through every operation that mints an identifier or records a
// declaration.
//
// This package has no notion of SQL dialects, parsing, or execution; it is
// consumed by package anchor, which chops an RQ pipeline into SELECT-shaped
// sub-pipelines.
package rq
