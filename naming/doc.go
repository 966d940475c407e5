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

// Package naming derives the namespace and class name of a generated
// resource accessor from file paths.
//
// Every function here is pure and total: any input string yields a result
// and the same inputs always yield the same result. Both '/' and '\' are
// accepted as path separators, since build metadata may come from either
// platform.
//
// Cache memoizes the two derivations behind a bounded LRU for drivers that
// resolve many files against the same project.
package naming
