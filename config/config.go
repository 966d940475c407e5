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

package config

import (
	"strings"

	"dirpx.dev/resx/apis"
	"dirpx.dev/resx/utils/switches"
)

const (
	// DefaultPublicClass represents the default for PublicClass.
	DefaultPublicClass = false
	// DefaultStaticClass represents the default for StaticClass.
	DefaultStaticClass = true
	// DefaultStaticMembers represents the default for StaticMembers.
	DefaultStaticMembers = true
	// DefaultPartialClass represents the default for PartialClass.
	DefaultPartialClass = false
	// DefaultInnerClassVisibility represents the default for InnerClassVisibility.
	DefaultInnerClassVisibility = apis.VisibilityPrivate
	// DefaultNullForgivingOperators represents the default for NullForgivingOperators.
	DefaultNullForgivingOperators = false
)

// DefaultGlobal returns the defaults of a project that supplied nothing.
// It is not Valid: root namespace and project path are mandatory.
func DefaultGlobal() apis.Global {
	return apis.Global{
		PublicClass:            DefaultPublicClass,
		StaticClass:            DefaultStaticClass,
		StaticMembers:          DefaultStaticMembers,
		PartialClass:           DefaultPartialClass,
		InnerClassVisibility:   DefaultInnerClassVisibility,
		NullForgivingOperators: DefaultNullForgivingOperators,
	}
}

// NewGlobal constructs an apis.Global from the given options.
// The result is Valid only if both WithRootNamespace and WithProjectFullPath
// were applied; an empty root namespace still counts as supplied.
func NewGlobal(opts ...Option) apis.Global {
	b := builder{g: DefaultGlobal()}
	for _, opt := range opts {
		opt(&b)
	}
	b.g.Valid = b.hasRoot && b.hasProject
	return b.g
}

// FromOptions reads the project-level build properties from o.
//
// Missing mandatory properties make the result invalid instead of failing.
// Boolean defaults follow the same polarity as the per-file overrides, and a
// visibility that does not name a concrete visibility is ignored.
func FromOptions(o apis.Options) apis.Global {
	g := DefaultGlobal()
	if o == nil {
		return g
	}

	root, hasRoot := o.TryGet(apis.KeyRootNamespace)
	project, hasProject := o.TryGet(apis.KeyProjectFullPath)
	g.RootNamespace = strings.TrimSpace(root)
	g.ProjectFullPath = strings.TrimSpace(project)
	g.Valid = hasRoot && hasProject

	g.PublicClass = switches.OptionalBoolDefaultFalse(o, apis.KeyDefaultPublicClass, g.PublicClass)
	g.StaticClass = switches.OptionalBoolDefaultTrue(o, apis.KeyDefaultStaticClass, g.StaticClass)
	g.StaticMembers = switches.OptionalBoolDefaultTrue(o, apis.KeyDefaultStaticMembers, g.StaticMembers)
	g.PartialClass = switches.OptionalBoolDefaultFalse(o, apis.KeyDefaultPartialClass, g.PartialClass)
	g.NullForgivingOperators = switches.OptionalBoolDefaultFalse(o, apis.KeyNullForgivingOperators, g.NullForgivingOperators)

	if s, ok := o.TryGet(apis.KeyDefaultInnerClassVisibility); ok {
		if v, ok := apis.ParseVisibility(s); ok && v.IsConcrete() {
			g.InnerClassVisibility = v
		}
	}
	if s, ok := o.TryGet(apis.KeyDefaultInnerClassName); ok {
		g.InnerClassName = s
	}
	if s, ok := o.TryGet(apis.KeyDefaultInnerClassInstanceName); ok {
		g.InnerClassInstanceName = s
	}
	return g
}

// builder tracks which mandatory values were supplied.
type builder struct {
	g          apis.Global
	hasRoot    bool
	hasProject bool
}

// Option is a functional option that mutates an apis.Global during construction.
type Option func(*builder)

// WithRootNamespace sets the RootNamespace option.
func WithRootNamespace(ns string) Option {
	return func(b *builder) {
		b.g.RootNamespace = ns
		b.hasRoot = true
	}
}

// WithProjectFullPath sets the ProjectFullPath option.
func WithProjectFullPath(p string) Option {
	return func(b *builder) {
		b.g.ProjectFullPath = p
		b.hasProject = true
	}
}

// WithPublicClass sets the PublicClass option.
func WithPublicClass(v bool) Option {
	return func(b *builder) { b.g.PublicClass = v }
}

// WithStaticClass sets the StaticClass option.
func WithStaticClass(v bool) Option {
	return func(b *builder) { b.g.StaticClass = v }
}

// WithStaticMembers sets the StaticMembers option.
func WithStaticMembers(v bool) Option {
	return func(b *builder) { b.g.StaticMembers = v }
}

// WithPartialClass sets the PartialClass option.
func WithPartialClass(v bool) Option {
	return func(b *builder) { b.g.PartialClass = v }
}

// WithInnerClassVisibility sets the InnerClassVisibility option.
// VisibilitySameAsOuter and out-of-range values are ignored.
func WithInnerClassVisibility(v apis.Visibility) Option {
	return func(b *builder) {
		if v.IsConcrete() {
			b.g.InnerClassVisibility = v
		}
	}
}

// WithInnerClassName sets the InnerClassName option.
func WithInnerClassName(name string) Option {
	return func(b *builder) { b.g.InnerClassName = name }
}

// WithInnerClassInstanceName sets the InnerClassInstanceName option.
func WithInnerClassInstanceName(name string) Option {
	return func(b *builder) { b.g.InnerClassInstanceName = name }
}

// WithNullForgivingOperators sets the NullForgivingOperators option.
func WithNullForgivingOperators(v bool) Option {
	return func(b *builder) { b.g.NullForgivingOperators = v }
}
