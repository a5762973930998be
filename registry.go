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
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// ValueType is the type of a single [SchemaEntry] in a node's configuration
// schema.
type ValueType int

// Configuration value types accepted by a [SchemaEntry].
const (
	ValueNone ValueType = iota
	ValueBool
	ValueInt64
	ValueUint64
	ValueString
	ValueNode
	ValueList
	ValueDict
)

// SchemaEntry describes one key of a node type's configuration. List
// entries carry a single-element Sub schema describing the element type;
// every other type leaves Sub nil.
type SchemaEntry struct {
	Key         string
	Description string
	Type        ValueType
	Sub         []SchemaEntry
	Required    bool
}

// NodeType is the descriptor every node variant registers exactly once at
// package initialization. In the source this descriptor carries the
// variant's operation function pointers directly; here that role is
// played by the Go methods each concrete node type implements (Node is a
// sealed, single-package interface, so its method set is effectively a
// fixed vtable — see DESIGN.md). NodeType itself holds what a generic
// caller needs for introspection: the registered name and the
// configuration schema.
type NodeType struct {
	Name   string
	Schema []SchemaEntry
}

var (
	registryMu sync.Mutex
	registry   = map[string]*NodeType{}
)

// RegisterNodeType adds nt to the process-wide node-type registry. It must
// be called at most once per name; a second registration under the same
// name is a programming error and panics, mirroring database/sql.Register's
// treatment of duplicate driver names. Every built-in node type registers
// itself this way from a package-level var initializer.
func RegisterNodeType(nt *NodeType) *NodeType {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[nt.Name]; ok {
		panic(fmt.Sprintf("climb: node type %q already registered", nt.Name))
	}

	registry[nt.Name] = nt

	return nt
}

// LookupNodeType returns the registered type descriptor for name, if any.
func LookupNodeType(name string) (*NodeType, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	nt, ok := registry[name]

	return nt, ok
}

// ValidateConfig checks dict against nt's schema: every required key must
// be present, and every present key's value must be of the declared type
// (ValueList entries are checked element-wise against Sub[0]). Unlike a
// constructor, which fails fast on the first bad argument, ValidateConfig
// is meant for config sourced as a whole (a parsed file, a remote grammar
// definition) where reporting every problem at once saves a user several
// edit-retry round trips — so every violation found is collected into one
// returned error via multierr, rather than stopping at the first.
func ValidateConfig(nt *NodeType, dict map[string]any) error {
	var errs error

	for _, entry := range nt.Schema {
		v, present := dict[entry.Key]

		if !present {
			if entry.Required {
				errs = multierr.Append(errs, &ConfigError{NodeType: nt.Name, Key: entry.Key, Err: fmt.Errorf("missing required key")})
			}

			continue
		}

		if err := validateValue(entry, v); err != nil {
			errs = multierr.Append(errs, &ConfigError{NodeType: nt.Name, Key: entry.Key, Err: err})
		}
	}

	return errs
}

func validateValue(entry SchemaEntry, v any) error {
	switch entry.Type {
	case ValueBool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("want bool, got %T", v)
		}
	case ValueInt64:
		if _, ok := v.(int64); !ok {
			return fmt.Errorf("want int64, got %T", v)
		}
	case ValueUint64:
		if _, ok := v.(uint64); !ok {
			return fmt.Errorf("want uint64, got %T", v)
		}
	case ValueString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("want string, got %T", v)
		}
	case ValueNode:
		if _, ok := v.(Node); !ok {
			return fmt.Errorf("want Node, got %T", v)
		}
	case ValueDict:
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("want map[string]any, got %T", v)
		}
	case ValueList:
		list, ok := v.([]any)
		if !ok {
			return fmt.Errorf("want []any, got %T", v)
		}

		if len(entry.Sub) != 1 {
			return fmt.Errorf("schema bug: list entry %q has no element type", entry.Key)
		}

		var errs error

		for i, elem := range list {
			if err := validateValue(entry.Sub[0], elem); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("element %d: %w", i, err))
			}
		}

		return errs
	case ValueNone:
		// no-op: an entry with no type carries no value to check.
	}

	return nil
}
