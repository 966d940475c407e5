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

// Package resx resolves, for every resource file of a project, the settings
// that drive generation of its strongly-typed accessor class.
//
// Settings come from two layers:
//
//   - Project defaults (apis.Global): root namespace, project path, the
//     default class shape and inner class options, and a validity flag.
//     They are built once per build by package config.
//
//   - Per-file overrides: a flat bag of string options (apis.Options) keyed
//     under "build_metadata.EmbeddedResource.".
//
// Resolution of one file is a pure function of its path, its option bag and
// the project defaults; it returns one immutable apis.FileSettings.
//
// # Precedence
//
// Boolean overrides have an explicit polarity. PublicClass and PartialClass
// are off unless set to "true"; StaticClass and StaticMembers are on unless
// set to "false". An empty value counts as unset for them, and the project
// default applies. InnerClassName and InnerClassInstanceName are applied
// whenever the key is present, even when empty. An InnerClassVisibility
// override applies only if it names Public, Internal or Private; the
// "SameAsOuter" value is ignored like any unknown value.
//
// Namespace and class name are derived from paths (package naming): the
// namespace from the file's directory relative to the project, or from the
// TargetPath override; the class name from the file name with any culture
// suffix ("Strings.en-US.resx") removed.
//
// A project whose defaults are not Valid still resolves every file; each
// result carries Valid == false and the emission stage decides what to do.
//
// # Concurrency model
//
// Nothing mutable is shared by resolutions, so any number of files may be
// resolved at once. ResolveAll does that with a bounded worker group.
// Cancellation is cooperative and checked once when each file starts.
//
// The process-wide resolver used by Resolve and ResolveAll lives in an
// atomically published snapshot. SetResolver swaps it, for example to a
// resolver with a derivation cache:
//
//	c, _ := naming.NewCache(naming.DefaultCacheSize)
//	resx.SetResolver(resolver.New(resolver.WithCache(c)))
//
// # Typical use
//
//	reg, err := registry.Load("obj/App.GeneratedMSBuildEditorConfig.editorconfig")
//	if err != nil {
//		return err
//	}
//	g := resx.Global(reg)
//	files, err := resx.ResolveAll(ctx, reg, g, reg.Files())
package resx
