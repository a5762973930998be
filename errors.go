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

import (
	"errors"
	"fmt"
)

// Structural parse/complete results are plain values (see NoMatch), never
// errors. Everything below is the non-structural error taxonomy: config,
// resource, contract ("arg"), and graph errors, each wrapping a sentinel so
// callers can switch on errors.Is/errors.As without caring about message
// text.

// ErrInvalidConfig is wrapped by every [ConfigError].
var ErrInvalidConfig = errors.New("climb: invalid configuration")

// ErrResource is wrapped by every [ResourceError].
var ErrResource = errors.New("climb: resource failure")

// ErrInvalidArgument is wrapped by every [ArgError].
var ErrInvalidArgument = errors.New("climb: invalid argument")

// ErrGraph is wrapped by every [GraphError].
var ErrGraph = errors.New("climb: invalid grammar graph")

// errNoPatternMatch is wrapped by the [ResourceError] a ReLex returns when
// none of its patterns match at the current position.
var errNoPatternMatch = errors.New("climb: no re_lex pattern matched at position")

// ConfigError reports that a node's configuration failed schema validation.
// The node's previous configuration, if any, is left intact.
type ConfigError struct {
	NodeType string
	Key      string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: %s: %v", ErrInvalidConfig, e.NodeType, e.Err)
	}

	return fmt.Sprintf("%v: %s: key %q: %v", ErrInvalidConfig, e.NodeType, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// ResourceError reports an allocation or external-resource failure (for
// example a regex that failed to compile). Every partial structure built
// before the failure has already been released by the time it is returned.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrResource, e.Op, e.Err)
}

func (e *ResourceError) Unwrap() []error {
	return []error{ErrResource, e.Err}
}

// ArgError reports a contract violation: a nil argument, or a type-specific
// helper invoked against the wrong node type.
type ArgError struct {
	Msg string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidArgument, e.Msg)
}

func (e *ArgError) Unwrap() error {
	return ErrInvalidArgument
}

// GraphError reports an attempt to build a direct self-cycle without an
// intervening [Bypass].
type GraphError struct {
	Msg string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("%v: %s", ErrGraph, e.Msg)
}

func (e *GraphError) Unwrap() error {
	return ErrGraph
}

// checkSelfCycle refuses a direct self-reference: a compound node naming
// itself as its own child. Indirect cycles are legal provided they route
// through a Bypass (see node_bypass.go).
func checkSelfCycle(parent, child Node) error {
	if child != nil && sameNode(parent, child) {
		return &GraphError{Msg: fmt.Sprintf("%s node cannot reference itself directly; use Bypass", parent.Type().Name)}
	}

	return nil
}

// sameNode reports whether a and b refer to the same underlying node
// instance (identity, not structural equality).
func sameNode(a, b Node) bool {
	return a == b
}
