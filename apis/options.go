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

package apis

// Options is a read-only bag of string configuration values.
type Options interface {
	// TryGet returns the value stored under key. found distinguishes an
	// absent key from one set to "".
	TryGet(key string) (value string, found bool)
}

// OptionsProvider hands out the option bags of a project build.
type OptionsProvider interface {
	// Options returns the per-file options of filePath. Files without
	// options get an empty bag, never nil.
	Options(filePath string) Options
	// GlobalOptions returns the project-level options.
	GlobalOptions() Options
}

// MapOptions is an Options backed by a plain map. A nil MapOptions is an
// empty bag.
type MapOptions map[string]string

// Ensure MapOptions implements Options.
var _ Options = MapOptions(nil)

// TryGet implements Options.
func (m MapOptions) TryGet(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
