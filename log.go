// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package climb

import "github.com/hashicorp/go-hclog"

// log is the package-wide logger. It defaults to discarding everything, so
// embedding climb in a program costs nothing until SetLogger is called.
var log hclog.Logger = hclog.NewNullLogger()

// SetLogger replaces the logger climb uses for its own diagnostics. The only
// messages logged are regexp compile failures in Re and ReLex; recursion-bound
// trips and DSL parse errors are returned as errors, not logged. Pass a named
// sub-logger, e.g.
// logger.Named("climb"), rather than an application's root logger.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}

	log = l
}
