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

package config_test

import (
	"testing"

	"dirpx.dev/resx/apis"
	"dirpx.dev/resx/config"
)

func TestDefaultGlobalValues(t *testing.T) {
	got := config.DefaultGlobal()

	if got.PublicClass != config.DefaultPublicClass {
		t.Fatalf("PublicClass = %v, want %v", got.PublicClass, config.DefaultPublicClass)
	}
	if got.StaticClass != config.DefaultStaticClass {
		t.Fatalf("StaticClass = %v, want %v", got.StaticClass, config.DefaultStaticClass)
	}
	if got.StaticMembers != config.DefaultStaticMembers {
		t.Fatalf("StaticMembers = %v, want %v", got.StaticMembers, config.DefaultStaticMembers)
	}
	if got.PartialClass != config.DefaultPartialClass {
		t.Fatalf("PartialClass = %v, want %v", got.PartialClass, config.DefaultPartialClass)
	}
	if got.InnerClassVisibility != config.DefaultInnerClassVisibility {
		t.Fatalf("InnerClassVisibility = %v, want %v", got.InnerClassVisibility, config.DefaultInnerClassVisibility)
	}
	if got.Valid {
		t.Fatalf("Valid = true, want false without root namespace and project path")
	}
}

func TestNewGlobal_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultGlobal()
	got := config.NewGlobal()
	if got != def {
		t.Fatalf("NewGlobal() = %+v, want default %+v", got, def)
	}
}

func TestNewGlobal_ValidRequiresRootAndProject(t *testing.T) {
	if g := config.NewGlobal(config.WithRootNamespace("App")); g.Valid {
		t.Fatalf("Valid = true with only a root namespace")
	}
	if g := config.NewGlobal(config.WithProjectFullPath("/src/App")); g.Valid {
		t.Fatalf("Valid = true with only a project path")
	}
	g := config.NewGlobal(config.WithRootNamespace(""), config.WithProjectFullPath("/src/App"))
	if !g.Valid {
		t.Fatalf("Valid = false, want true (empty root namespace is supplied)")
	}
}

func TestWithInnerClassVisibility_IgnoresSameAsOuter(t *testing.T) {
	g := config.NewGlobal(
		config.WithInnerClassVisibility(apis.VisibilityPublic),
		config.WithInnerClassVisibility(apis.VisibilitySameAsOuter),
	)
	if g.InnerClassVisibility != apis.VisibilityPublic {
		t.Fatalf("InnerClassVisibility = %v, want Public", g.InnerClassVisibility)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	g := config.NewGlobal(
		config.WithPublicClass(true),
		config.WithPublicClass(false),
		config.WithStaticClass(false),
		config.WithStaticClass(true),
		config.WithInnerClassName("A"),
		config.WithInnerClassName("B"),
		config.WithRootNamespace("First"),
		config.WithRootNamespace("Second"),
	)

	if g.PublicClass {
		t.Errorf("PublicClass = %v, want false (last option wins)", g.PublicClass)
	}
	if !g.StaticClass {
		t.Errorf("StaticClass = %v, want true (last option wins)", g.StaticClass)
	}
	if g.InnerClassName != "B" {
		t.Errorf("InnerClassName = %q, want B (last option wins)", g.InnerClassName)
	}
	if g.RootNamespace != "Second" {
		t.Errorf("RootNamespace = %q, want Second (last option wins)", g.RootNamespace)
	}
}

func TestFromOptions_Full(t *testing.T) {
	g := config.FromOptions(apis.MapOptions{
		apis.KeyRootNamespace:                 "App",
		apis.KeyProjectFullPath:               "/src/App/App.csproj",
		apis.KeyDefaultPublicClass:            "True",
		apis.KeyDefaultStaticClass:            "false",
		apis.KeyDefaultStaticMembers:          "FALSE",
		apis.KeyDefaultPartialClass:           "true",
		apis.KeyDefaultInnerClassVisibility:   "internal",
		apis.KeyDefaultInnerClassName:         "Keys",
		apis.KeyDefaultInnerClassInstanceName: "K",
		apis.KeyNullForgivingOperators:        "true",
	})

	want := apis.Global{
		RootNamespace:          "App",
		ProjectFullPath:        "/src/App/App.csproj",
		PublicClass:            true,
		StaticClass:            false,
		StaticMembers:          false,
		PartialClass:           true,
		InnerClassVisibility:   apis.VisibilityInternal,
		InnerClassName:         "Keys",
		InnerClassInstanceName: "K",
		NullForgivingOperators: true,
		Valid:                  true,
	}
	if g != want {
		t.Fatalf("FromOptions = %+v, want %+v", g, want)
	}
}

func TestFromOptions_MissingMandatory_Invalid(t *testing.T) {
	g := config.FromOptions(apis.MapOptions{apis.KeyRootNamespace: "App"})
	if g.Valid {
		t.Fatalf("Valid = true without %s", apis.KeyProjectFullPath)
	}
	if g.RootNamespace != "App" {
		t.Fatalf("RootNamespace = %q, want App", g.RootNamespace)
	}

	if g := config.FromOptions(nil); g != config.DefaultGlobal() {
		t.Fatalf("FromOptions(nil) = %+v, want default", g)
	}
}

func TestFromOptions_BadVisibility_KeepsDefault(t *testing.T) {
	for _, s := range []string{"SameAsOuter", "protected", ""} {
		g := config.FromOptions(apis.MapOptions{apis.KeyDefaultInnerClassVisibility: s})
		if g.InnerClassVisibility != config.DefaultInnerClassVisibility {
			t.Fatalf("visibility %q: got %v, want default %v", s, g.InnerClassVisibility, config.DefaultInnerClassVisibility)
		}
	}
}
