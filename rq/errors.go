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

import (
	pkgerrors "github.com/pkg/errors"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Sentinel error kinds for the structural invariant violations this core
// treats as programmer errors from upstream (spec §7): a referenced
// ColumnID with no declaration, a referenced TableID with no declaration,
// or a malformed transform. Declared the way auth.ErrNotAuthorized and
// auth.ErrNoPermission are declared in the teacher repo's auth/auth.go.
var (
	ErrUnresolvedColumn   = goerrors.NewKind("column %s has no declaration")
	ErrUnresolvedTable    = goerrors.NewKind("table %s has no declaration")
	ErrMalformedTransform = goerrors.NewKind("malformed transform %s: %s")
)

// CatchCompileError recovers a panic raised by one of the Err* kinds above
// (or any other panic) and assigns it to *err, wrapped with a stack trace.
// Per spec §7, neither the splitter nor the rewriter returns an error on
// well-formed input; a missing declaration is a bug in an upstream pass and
// is surfaced immediately as a single opaque compilation error. The
// compilation-unit boundary (the out-of-scope driver) is expected to defer
// this helper around one call to SplitOffBack/AnchorSplit:
//
//	func compileOne() (err error) {
//		defer rq.CatchCompileError(&err)
//		... call anchor.SplitOffBack / anchor.AnchorSplit ...
//	}
func CatchCompileError(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = pkgerrors.WithStack(e)
			return
		}
		*err = pkgerrors.Errorf("internal compiler error: %v", r)
	}
}
