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

// Package switches reads boolean options with an explicit default polarity.
//
// Option values are free-form strings. An option that is absent or set to ""
// leaves the fallback in place. Otherwise only one literal flips the result
// away from the polarity's default: "false" for default-on switches and
// "true" for default-off switches. Both comparisons are case-insensitive.
package switches

import (
	"strings"

	"dirpx.dev/resx/apis"
)

// OptionalBoolDefaultTrue returns fallback when key is absent or empty,
// otherwise true unless the value is "false".
func OptionalBoolDefaultTrue(o apis.Options, key string, fallback bool) bool {
	v, ok := lookup(o, key)
	if !ok {
		return fallback
	}
	return !strings.EqualFold(v, "false")
}

// OptionalBoolDefaultFalse returns fallback when key is absent or empty,
// otherwise true only if the value is "true".
func OptionalBoolDefaultFalse(o apis.Options, key string, fallback bool) bool {
	v, ok := lookup(o, key)
	if !ok {
		return fallback
	}
	return strings.EqualFold(v, "true")
}

// NonEmpty returns the value under key if it is present and non-empty.
func NonEmpty(o apis.Options, key string) (string, bool) {
	return lookup(o, key)
}

// lookup treats an empty value as absent.
func lookup(o apis.Options, key string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.TryGet(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
