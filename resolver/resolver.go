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

package resolver

import (
	"context"

	"dirpx.dev/resx/apis"
	"dirpx.dev/resx/naming"
	"dirpx.dev/resx/utils/switches"
)

// Resolve computes the settings of one resource file from its per-file
// options and the project defaults g. A nil opts is an empty bag.
//
// ctx is checked once on entry; if it is already done, Resolve returns the
// zero FileSettings and ctx.Err().
func Resolve(ctx context.Context, filePath string, opts apis.Options, g apis.Global) (apis.FileSettings, error) {
	return resolve(ctx, filePath, opts, g, freeDeriver{})
}

// New constructs an apis.Resolver. Without options it behaves exactly like
// Resolve. The returned resolver holds no mutable state of its own and is
// safe for concurrent use.
func New(opts ...Option) apis.Resolver {
	r := &resolver{d: freeDeriver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a resolver built by New.
type Option func(*resolver)

// WithCache memoizes path derivations in c. A nil cache is ignored.
func WithCache(c *naming.Cache) Option {
	return func(r *resolver) {
		if c != nil {
			r.d = c
		}
	}
}

// resolver is the apis.Resolver returned by New.
type resolver struct {
	d deriver
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = (*resolver)(nil)

// Resolve implements apis.Resolver.
func (r *resolver) Resolve(ctx context.Context, filePath string, opts apis.Options, g apis.Global) (apis.FileSettings, error) {
	return resolve(ctx, filePath, opts, g, r.d)
}

// deriver is satisfied by *naming.Cache and by the free functions.
type deriver interface {
	Namespace(filePath, explicitTargetPath, projectFullPath, rootNamespace string) string
	ClassName(filePath string) string
}

type freeDeriver struct{}

func (freeDeriver) Namespace(filePath, explicitTargetPath, projectFullPath, rootNamespace string) string {
	return naming.DeriveNamespace(filePath, explicitTargetPath, projectFullPath, rootNamespace)
}

func (freeDeriver) ClassName(filePath string) string {
	return naming.DeriveClassName(filePath)
}

func resolve(ctx context.Context, filePath string, opts apis.Options, g apis.Global, d deriver) (apis.FileSettings, error) {
	if err := ctx.Err(); err != nil {
		return apis.FileSettings{}, err
	}
	if opts == nil {
		opts = apis.MapOptions(nil)
	}

	targetPath, _ := switches.NonEmpty(opts, apis.KeyTargetPath)
	customNS, _ := switches.NonEmpty(opts, apis.KeyCustomToolNamespace)

	s := apis.FileSettings{
		FilePath:            filePath,
		Namespace:           d.Namespace(filePath, targetPath, g.ProjectFullPath, g.RootNamespace),
		ClassName:           d.ClassName(filePath),
		CustomToolNamespace: customNS,

		PublicClass:   switches.OptionalBoolDefaultFalse(opts, apis.KeyPublicClass, g.PublicClass),
		StaticClass:   switches.OptionalBoolDefaultTrue(opts, apis.KeyStaticClass, g.StaticClass),
		StaticMembers: switches.OptionalBoolDefaultTrue(opts, apis.KeyStaticMembers, g.StaticMembers),
		PartialClass:  switches.OptionalBoolDefaultFalse(opts, apis.KeyPartialClass, g.PartialClass),

		InnerClassVisibility:   innerClassVisibility(opts, g.InnerClassVisibility),
		InnerClassName:         presentOr(opts, apis.KeyInnerClassName, g.InnerClassName),
		InnerClassInstanceName: presentOr(opts, apis.KeyInnerClassInstanceName, g.InnerClassInstanceName),

		NullForgivingOperators: g.NullForgivingOperators,
		Valid:                  g.Valid,
	}
	return s, nil
}

// innerClassVisibility applies a per-file override only when it names a
// concrete visibility. SameAsOuter is rejected like an unparsable value.
func innerClassVisibility(opts apis.Options, fallback apis.Visibility) apis.Visibility {
	s, ok := opts.TryGet(apis.KeyInnerClassVisibility)
	if !ok {
		return fallback
	}
	if v, ok := apis.ParseVisibility(s); ok && v.IsConcrete() {
		return v
	}
	return fallback
}

// presentOr tests presence, not emptiness: an override of "" applies.
func presentOr(opts apis.Options, key, fallback string) string {
	if v, ok := opts.TryGet(key); ok {
		return v
	}
	return fallback
}
