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

// Visitor visits an Expr tree. Visit is called once per node in
// pre-order; returning nil stops the descent into that node's children,
// mirroring the Visitor used by the teacher's sql.Walk (see
// sql/expression/walk_test.go in the example pack this was grounded on).
type Visitor interface {
	Visit(expr Expr) Visitor
}

// VisitFunc adapts a plain function to a Visitor.
type VisitFunc func(Expr) Visitor

// Visit implements Visitor.
func (f VisitFunc) Visit(expr Expr) Visitor {
	return f(expr)
}

// Walk traverses expr and its descendants in pre-order, calling v.Visit at
// each node. If v.Visit returns nil, Walk does not descend into that
// node's children.
func Walk(v Visitor, expr Expr) {
	if v == nil {
		return
	}
	v = v.Visit(expr)
	if v == nil {
		return
	}
	for _, child := range expr.Children() {
		Walk(v, child)
	}
}
