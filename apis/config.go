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

// Global is the project-wide snapshot of accessor generation defaults.
//
// It is built once per project build (see package config) and passed by
// value, so a resolver can never observe a Global changing under it.
type Global struct {
	// RootNamespace is the namespace every derived namespace is prefixed with.
	RootNamespace string `json:"rootNamespace" yaml:"rootNamespace"`

	// ProjectFullPath is the project directory or project file. Resource
	// file paths are made relative to it when deriving namespaces.
	ProjectFullPath string `json:"projectFullPath" yaml:"projectFullPath"`

	// PublicClass, StaticClass, StaticMembers and PartialClass are the
	// class-shape defaults applied when a file carries no override.
	PublicClass   bool `json:"publicClass" yaml:"publicClass"`
	StaticClass   bool `json:"staticClass" yaml:"staticClass"`
	StaticMembers bool `json:"staticMembers" yaml:"staticMembers"`
	PartialClass  bool `json:"partialClass" yaml:"partialClass"`

	// InnerClassVisibility is never VisibilitySameAsOuter.
	InnerClassVisibility   Visibility `json:"innerClassVisibility" yaml:"innerClassVisibility"`
	InnerClassName         string     `json:"innerClassName" yaml:"innerClassName"`
	InnerClassInstanceName string     `json:"innerClassInstanceName" yaml:"innerClassInstanceName"`

	// NullForgivingOperators has no per-file override.
	NullForgivingOperators bool `json:"nullForgivingOperators" yaml:"nullForgivingOperators"`

	// Valid reports whether the mandatory project-level data was available.
	// It is copied onto every resolved file instead of failing resolution.
	Valid bool `json:"valid" yaml:"valid"`
}
