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

import (
	"fmt"
	"strings"
)

// Visibility is the access modifier of the generated inner class.
type Visibility int

const (
	// VisibilityPrivate is the zero value so an unset Visibility is the
	// most restrictive one.
	VisibilityPrivate Visibility = iota
	VisibilityInternal
	VisibilityPublic

	// VisibilitySameAsOuter means "inherit the outer class visibility".
	// It can be parsed but is never a resolved state.
	VisibilitySameAsOuter
)

var visibilityNames = [...]string{
	VisibilityPrivate:     "Private",
	VisibilityInternal:    "Internal",
	VisibilityPublic:      "Public",
	VisibilitySameAsOuter: "SameAsOuter",
}

// ParseVisibility parses s case-insensitively. Surrounding whitespace is
// ignored. It reports false for unknown names.
func ParseVisibility(s string) (Visibility, bool) {
	s = strings.TrimSpace(s)
	for v, name := range visibilityNames {
		if strings.EqualFold(s, name) {
			return Visibility(v), true
		}
	}
	return VisibilityPrivate, false
}

// IsConcrete reports whether v is one of Public, Internal or Private.
func (v Visibility) IsConcrete() bool {
	return v >= VisibilityPrivate && v <= VisibilityPublic
}

// String returns the canonical name of v.
func (v Visibility) String() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
	return visibilityNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(visibilityNames) {
		return nil, fmt.Errorf("apis: invalid visibility %d", int(v))
	}
	return []byte(visibilityNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, ok := ParseVisibility(string(text))
	if !ok {
		return fmt.Errorf("apis: unknown visibility %q", text)
	}
	*v = parsed
	return nil
}
