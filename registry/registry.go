/*
   Copyright 2025 The DIRPX Authors.

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

package registry

import (
	"errors"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"dirpx.dev/resx/apis"
)

var (
	// ErrEmptyPath is returned when an empty file path is provided.
	ErrEmptyPath = errors.New("resx(registry): empty file path provided")
	// ErrLoad is returned when an analyzer config cannot be read or parsed.
	ErrLoad = errors.New("resx(registry): cannot load analyzer config")
)

// New constructs an empty Registry.
func New() *Registry {
	r := &Registry{}
	r.global.Store(&apis.MapOptions{})
	return r
}

// Registry is an in-memory apis.OptionsProvider.
//
// Every stored option bag is an immutable snapshot: Set builds a new map and
// swaps it in, so bags handed out by Options stay valid while writers run.
// Registry is safe for concurrent use.
type Registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps a normalized file path to its apis.MapOptions.
	m sync.Map
	// count tracks the number of registered files.
	count int
	// global holds the project-level options.
	global atomic.Pointer[apis.MapOptions]
	// base is the slash directory relative file paths are joined to.
	base string
}

// Ensure Registry implements apis.OptionsProvider.
var _ apis.OptionsProvider = (*Registry)(nil)

// Set merges opts into the options of filePath; keys already present are
// overwritten.
func (r *Registry) Set(filePath string, opts map[string]string) error {
	key := Key(filePath)
	if key == "" {
		return ErrEmptyPath
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := apis.MapOptions{}
	if old, ok := r.m.Load(key); ok {
		maps.Copy(next, old.(apis.MapOptions))
	} else {
		r.count++
	}
	maps.Copy(next, opts)
	r.m.Store(key, next)
	return nil
}

// SetGlobal merges opts into the project-level options.
func (r *Registry) SetGlobal(opts map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := apis.MapOptions{}
	maps.Copy(next, *r.global.Load())
	maps.Copy(next, opts)
	r.global.Store(&next)
}

// Path returns the registry key of filePath. A relative path is joined to
// the directory of the config file the registry was loaded from.
func (r *Registry) Path(filePath string) string {
	key := Key(filePath)
	if key == "" || r.base == "" || isAbs(key) {
		return key
	}
	return path.Join(r.base, key)
}

// Options returns the options of filePath, or an empty bag.
func (r *Registry) Options(filePath string) apis.Options {
	if v, ok := r.m.Load(Key(filePath)); ok {
		return v.(apis.MapOptions)
	}
	return apis.MapOptions{}
}

// GlobalOptions returns the project-level options.
func (r *Registry) GlobalOptions() apis.Options {
	return *r.global.Load()
}

// Files returns the registered file paths in lexical order.
func (r *Registry) Files() []string {
	files := make([]string, 0, r.Count())
	r.m.Range(func(key, _ any) bool {
		files = append(files, key.(string))
		return true
	})
	slices.Sort(files)
	return files
}

// Count returns the number of registered files.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all file and project-level options.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
	r.global.Store(&apis.MapOptions{})
}

// Key normalizes a file path the way the registry indexes it: slash
// separators and a cleaned path. The empty path stays empty.
func Key(filePath string) string {
	p := strings.TrimSpace(filePath)
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}
