/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package zoneinfo

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultDir is where the system timezone database lives
const DefaultDir = "/usr/share/zoneinfo"

// subtrees duplicating the main tree with different leap second handling
var skipDirs = map[string]bool{
	"posix": true,
	"right": true,
}

// TZif files which are not zones
var skipFiles = map[string]bool{
	"localtime":  true,
	"posixrules": true,
}

// Zones is the set of timezone identifiers found in a timezone database
type Zones struct {
	names map[string]struct{}
}

// Load walks dir and collects every TZif file as a zone name relative to dir
func Load(dir string) (*Zones, error) {
	z := &Zones{names: map[string]struct{}{}}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if skipFiles[rel] || !IsTZif(path) {
			return nil
		}
		z.names[filepath.ToSlash(rel)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return z, nil
}

// Known reports whether name is a zone of the database
func (z *Zones) Known(name string) bool {
	_, ok := z.names[name]
	return ok
}

// List returns all zone names sorted
func (z *Zones) List() []string {
	res := make([]string, 0, len(z.names))
	for name := range z.names {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
