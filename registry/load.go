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
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/go-ini/ini"
)

// Load reads an analyzer config file.
//
// The file is INI: keys outside any section are project-level options, and
// every section names one file and holds its per-file options:
//
//	build_property.RootNamespace = App
//	build_property.MSBuildProjectFullPath = /src/App/App.csproj
//
//	[/src/App/Sub/Strings.resx]
//	build_metadata.EmbeddedResource.PublicClass = true
//
// Relative section names are taken relative to the directory of the config
// file. Sections repeated for the same file merge, later keys win.
func Load(configPath string) (*Registry, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return load(data, filepath.ToSlash(filepath.Dir(configPath)))
}

// LoadBytes parses an analyzer config held in memory. Section names are
// used as given.
func LoadBytes(data []byte) (*Registry, error) {
	return load(data, "")
}

func load(data []byte, baseDir string) (*Registry, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:  "=",
		IgnoreInlineComment: true,
		IgnoreContinuation:  true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	r := New()
	r.base = baseDir
	for _, sec := range f.Sections() {
		opts := make(map[string]string, len(sec.Keys()))
		for _, k := range sec.Keys() {
			opts[k.Name()] = k.Value()
		}

		if sec.Name() == ini.DefaultSection {
			r.SetGlobal(opts)
			continue
		}

		if err := r.Set(r.Path(sec.Name()), opts); err != nil {
			return nil, fmt.Errorf("%w: section %q: %w", ErrLoad, sec.Name(), err)
		}
	}
	return r, nil
}

// isAbs reports whether a slash path is rooted or carries a drive letter.
func isAbs(p string) bool {
	if path.IsAbs(p) {
		return true
	}
	return len(p) >= 2 && p[1] == ':' &&
		(('a' <= p[0] && p[0] <= 'z') || ('A' <= p[0] && p[0] <= 'Z'))
}
