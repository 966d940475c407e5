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

// FileSettings is the fully resolved generation settings of one resource
// file. Values are produced by a Resolver and never modified afterwards.
type FileSettings struct {
	// FilePath identifies the resource file.
	FilePath  string `json:"filePath" yaml:"filePath"`
	Namespace string `json:"namespace" yaml:"namespace"`
	ClassName string `json:"className" yaml:"className"`

	// CustomToolNamespace is the explicit namespace override, or "" when the
	// file does not set one. It is not merged into Namespace.
	CustomToolNamespace string `json:"customToolNamespace,omitempty" yaml:"customToolNamespace,omitempty"`

	PublicClass   bool `json:"publicClass" yaml:"publicClass"`
	StaticClass   bool `json:"staticClass" yaml:"staticClass"`
	StaticMembers bool `json:"staticMembers" yaml:"staticMembers"`
	PartialClass  bool `json:"partialClass" yaml:"partialClass"`

	InnerClassVisibility   Visibility `json:"innerClassVisibility" yaml:"innerClassVisibility"`
	InnerClassName         string     `json:"innerClassName" yaml:"innerClassName"`
	InnerClassInstanceName string     `json:"innerClassInstanceName" yaml:"innerClassInstanceName"`

	NullForgivingOperators bool `json:"nullForgivingOperators" yaml:"nullForgivingOperators"`
	Valid                  bool `json:"valid" yaml:"valid"`
}

// HasCustomToolNamespace reports whether the file sets an explicit
// namespace override.
func (s FileSettings) HasCustomToolNamespace() bool {
	return s.CustomToolNamespace != ""
}
