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
	"os"
	"path/filepath"
	"strings"
)

// FileMode selects which filesystem predicate a [File] node checks.
// Recovered from original_source/include/ecoli/node_file.h.
type FileMode int

const (
	// FileAny matches any token, regardless of whether it names an
	// existing path.
	FileAny FileMode = iota
	// FileExists matches tokens naming an existing path.
	FileExists
	// FileDir matches tokens naming an existing directory.
	FileDir
	// FileRegular matches tokens naming an existing regular file.
	FileRegular
)

var fileNodeType = RegisterNodeType(&NodeType{
	Name: "file",
	Schema: []SchemaEntry{
		{Key: "mode", Type: ValueInt64},
	},
})

// File matches a single token as a filesystem path, optionally requiring
// it to exist and/or be a directory or regular file. Completion lists the
// matching directory's entries.
type File struct {
	nodeBase
	leaf0

	mode FileMode
}

// NewFile builds a File node checking the given mode.
func NewFile(id string, mode FileMode) *File {
	f := &File{mode: mode}
	f.typ = fileNodeType
	f.SetID(id)

	return f
}

func (f *File) parseSelf(_ *ParseNode, tokens TokenVector) (int, error) {
	if tokens.Len() == 0 {
		return NoMatch, nil
	}

	path := tokens.At(0)
	if f.mode == FileAny {
		return 1, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return NoMatch, nil
	}

	switch f.mode {
	case FileExists:
		return 1, nil
	case FileDir:
		if info.IsDir() {
			return 1, nil
		}
	case FileRegular:
		if info.Mode().IsRegular() {
			return 1, nil
		}
	}

	return NoMatch, nil
}

// completeSelf lists the entries of the directory containing the partial
// path typed so far, each as a Full candidate. A trailing "/" is appended
// to directory entries so the user can keep completing into them.
func (f *File) completeSelf(cs *CompleteState, _ *ParseNode, tokens TokenVector) error {
	start := ""
	if tokens.Len() > 0 {
		start = tokens.At(0)
	}

	dir, prefix := filepath.Split(start)

	lookupDir := dir
	if lookupDir == "" {
		lookupDir = "."
	}

	entries, err := os.ReadDir(lookupDir)
	if err != nil {
		// Not an error for completion purposes: just no candidates from an
		// unreadable or nonexistent directory.
		return nil
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}

		if f.mode == FileDir && !e.IsDir() {
			continue
		}

		full := dir + e.Name()
		if e.IsDir() {
			full += "/"
		}

		cs.emit(NewFullItem(f, start, full))
	}

	return nil
}
