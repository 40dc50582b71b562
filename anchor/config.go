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

// Package anchor implements the Requirements & Complexity model, the
// Splitter, and the Anchor/Rewriter described in spec.md §4: it chops one
// RQ pipeline into the minimum number of maximal sub-pipelines, each
// lowerable 1:1 into a single SELECT, and reconnects the cuts with a
// synthetic intermediate relation.
package anchor

import "github.com/sirupsen/logrus"

// Config carries this package's one configurable knob, the same shape as
// Config in the teacher repo's engine.go (exported fields, one doc comment
// each, no constructor required).
type Config struct {
	// Logger receives Debug-level tracing of split/anchor decisions. A nil
	// Logger defaults to logrus.StandardLogger().
	Logger *logrus.Logger
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}
