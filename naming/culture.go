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

package naming

import (
	"strings"

	"golang.org/x/text/language"
)

// IsCultureTag reports whether s is a culture name such as "de", "en-US" or
// "zh-Hans-CN": a hyphen-separated tag whose first subtag is a two or three
// letter language code, and which golang.org/x/text/language knows.
//
// The shape check runs first so that ordinary dotted name parts
// ("Strings.Designer", "Errors.Common") are never mistaken for cultures.
// The legacy .NET neutral names "zh-CHS" and "zh-CHT" are accepted as
// "zh-Hans" and "zh-Hant".
func IsCultureTag(s string) bool {
	if legacy, ok := legacyCultures[strings.ToLower(s)]; ok {
		s = legacy
	}
	subtags := strings.Split(s, "-")
	if n := len(subtags[0]); n < 2 || n > 3 || !allLetters(subtags[0]) {
		return false
	}
	for _, sub := range subtags[1:] {
		if n := len(sub); n < 1 || n > 8 || !allAlnum(sub) {
			return false
		}
	}
	_, err := language.Parse(s)
	return err == nil
}

// legacyCultures maps .NET culture names that x/text does not parse.
var legacyCultures = map[string]string{
	"zh-chs": "zh-Hans",
	"zh-cht": "zh-Hant",
}

func allLetters(s string) bool {
	for _, r := range s {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

func allAlnum(s string) bool {
	for _, r := range s {
		if !isASCIILetter(r) && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
