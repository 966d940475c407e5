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
	"path"
	"strings"
	"unicode"
)

// fallbackClassName is returned when nothing of a file name survives
// sanitization.
const fallbackClassName = "_"

// DeriveNamespace returns the namespace of the resource file at filePath.
//
// The basis is explicitTargetPath when it is non-empty, otherwise filePath
// made relative to the project directory. Only the directory part of the
// basis counts: its segments are sanitized into identifiers, joined with "."
// and appended to rootNamespace. A file at the project root yields the bare
// rootNamespace.
//
// projectFullPath may name the project directory or the project file itself
// (any extension ending in "proj"). A file outside the project directory has
// no relative directory.
func DeriveNamespace(filePath, explicitTargetPath, projectFullPath, rootNamespace string) string {
	var dir string
	if explicitTargetPath != "" {
		dir = path.Dir(toSlash(explicitTargetPath))
	} else {
		dir = relativeDir(filePath, projectFullPath)
	}

	var parts []string
	for _, seg := range strings.Split(dir, "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		if s := SanitizeIdentifier(seg); s != "" {
			parts = append(parts, s)
		}
	}
	local := strings.Join(parts, ".")

	switch {
	case rootNamespace == "":
		return local
	case local == "":
		return rootNamespace
	default:
		return rootNamespace + "." + local
	}
}

// DeriveClassName returns the accessor class name of the resource file at
// filePath: the file name without extension and without a trailing culture
// suffix, sanitized into an identifier. Localized variants such as
// "Strings.en-US.resx" therefore map to the same class as "Strings.resx".
// The result is never empty.
func DeriveClassName(filePath string) string {
	name := path.Base(toSlash(filePath))
	name = strings.TrimSuffix(name, path.Ext(name))

	if i := strings.LastIndexByte(name, '.'); i > 0 && IsCultureTag(name[i+1:]) {
		name = name[:i]
	}

	if s := SanitizeIdentifier(name); s != "" {
		return s
	}
	return fallbackClassName
}

// SanitizeIdentifier turns s into an identifier: every rune that cannot
// appear in an identifier becomes '_', and a leading digit gets a '_'
// prefix. The empty string stays empty.
func SanitizeIdentifier(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// isIdentRune reports whether r may appear inside an identifier.
func isIdentRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc)
}

// relativeDir returns the directory of filePath relative to the project
// directory, in slash form, or "" when the file is not below it.
func relativeDir(filePath, projectFullPath string) string {
	fileDir := path.Dir(toSlash(filePath))

	project := toSlash(projectFullPath)
	if project == "" {
		if isAbs(fileDir) {
			return ""
		}
		return fileDir
	}
	project = path.Clean(project)
	if strings.HasSuffix(strings.ToLower(path.Ext(project)), "proj") {
		project = path.Dir(project)
	}

	// Windows paths compare case-insensitively.
	equal := func(a, b string) bool { return a == b }
	if hasDrive(fileDir) && hasDrive(project) {
		equal = strings.EqualFold
	}

	if equal(fileDir, project) {
		return ""
	}
	prefix := project
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if len(fileDir) > len(prefix) && equal(fileDir[:len(prefix)], prefix) {
		return fileDir[len(prefix):]
	}
	return ""
}

// hasDrive reports whether a slash path starts with a drive letter.
func hasDrive(p string) bool {
	return len(p) >= 2 && p[1] == ':' && isASCIILetter(rune(p[0]))
}

// toSlash normalizes Windows separators; path.Clean does not know them.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// isAbs reports whether a slash path is rooted or carries a drive letter.
func isAbs(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return hasDrive(p)
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
