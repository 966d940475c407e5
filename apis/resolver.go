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

import "context"

// Resolver turns one resource file and the project defaults into its settings.
type Resolver interface {
	// Resolve computes the settings of the resource file at filePath from
	// its per-file options and the project defaults g.
	//
	// ctx is checked once on entry. If it is already done, Resolve returns
	// the zero FileSettings and ctx.Err().
	Resolve(ctx context.Context, filePath string, opts Options, g Global) (FileSettings, error)
}
