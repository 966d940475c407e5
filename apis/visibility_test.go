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

package apis_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/resx/apis"
)

func TestParseVisibility(t *testing.T) {
	cases := []struct {
		in   string
		want apis.Visibility
		ok   bool
	}{
		{"Public", apis.VisibilityPublic, true},
		{"internal", apis.VisibilityInternal, true},
		{" PRIVATE ", apis.VisibilityPrivate, true},
		{"SameAsOuter", apis.VisibilitySameAsOuter, true},
		{"protected", apis.VisibilityPrivate, false},
		{"", apis.VisibilityPrivate, false},
	}
	for _, tc := range cases {
		got, ok := apis.ParseVisibility(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseVisibility(%q) = (%v,%v), want (%v,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestVisibility_IsConcrete(t *testing.T) {
	for _, v := range []apis.Visibility{apis.VisibilityPrivate, apis.VisibilityInternal, apis.VisibilityPublic} {
		if !v.IsConcrete() {
			t.Fatalf("%v.IsConcrete() = false, want true", v)
		}
	}
	if apis.VisibilitySameAsOuter.IsConcrete() {
		t.Fatalf("SameAsOuter.IsConcrete() = true, want false")
	}
	if apis.Visibility(42).IsConcrete() {
		t.Fatalf("Visibility(42).IsConcrete() = true, want false")
	}
}

func TestVisibility_TextRoundTrip(t *testing.T) {
	type wrap struct {
		V apis.Visibility `json:"v"`
	}
	data, err := json.Marshal(wrap{V: apis.VisibilityInternal})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"v":"Internal"}` {
		t.Fatalf("marshal = %s, want {\"v\":\"Internal\"}", data)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"v":"public"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.V != apis.VisibilityPublic {
		t.Fatalf("unmarshal = %v, want Public", w.V)
	}
	if err := json.Unmarshal([]byte(`{"v":"nope"}`), &w); err == nil {
		t.Fatalf("unmarshal of unknown visibility succeeded")
	}
	if s := apis.Visibility(42).String(); s != "Visibility(42)" {
		t.Fatalf("String() = %q, want Visibility(42)", s)
	}
}

func TestMapOptions_TryGet(t *testing.T) {
	var nilOpts apis.MapOptions
	if _, ok := nilOpts.TryGet("k"); ok {
		t.Fatalf("nil MapOptions reported a value")
	}
	o := apis.MapOptions{"k": ""}
	if v, ok := o.TryGet("k"); !ok || v != "" {
		t.Fatalf("TryGet = (%q,%v), want ('',true)", v, ok)
	}
}
