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

package resx

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/resx/apis"
	"dirpx.dev/resx/config"
	"dirpx.dev/resx/resolver"
)

// init publishes the default resolver.
func init() {
	st.Store(&state{res: resolver.New()})
}

var (
	// ErrNilProvider is returned when a batch is given no options provider.
	ErrNilProvider = errors.New("resx: nil options provider")
)

// Resolve resolves one file using the process-wide resolver.
// This is a convenience wrapper around Resolver().Resolve.
func Resolve(ctx context.Context, filePath string, opts apis.Options, g apis.Global) (apis.FileSettings, error) {
	return st.Load().res.Resolve(ctx, filePath, opts, g)
}

// Resolver returns the process-wide resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces the process-wide resolver. A nil resolver is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	st.Store(&state{res: res})
}

// Global reads the project defaults from the project-level options of p.
func Global(p apis.OptionsProvider) apis.Global {
	if p == nil {
		return config.DefaultGlobal()
	}
	return config.FromOptions(p.GlobalOptions())
}

// BatchOption configures ResolveAll.
type BatchOption func(*batch)

// WithWorkers bounds the number of files resolved at once.
// Values below one are ignored.
func WithWorkers(n int) BatchOption {
	return func(b *batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithResolver makes the batch use res instead of the process-wide resolver.
// A nil resolver is ignored.
func WithResolver(res apis.Resolver) BatchOption {
	return func(b *batch) {
		if res != nil {
			b.res = res
		}
	}
}

// batch holds the ResolveAll settings.
type batch struct {
	workers int
	res     apis.Resolver
}

// ResolveAll resolves every file in filePaths against g, taking per-file
// options from p. Files are resolved concurrently; the result keeps the
// order of filePaths.
//
// The first failure (in practice, cancellation of ctx) stops the batch and
// is returned without partial results.
func ResolveAll(ctx context.Context, p apis.OptionsProvider, g apis.Global, filePaths []string, opts ...BatchOption) ([]apis.FileSettings, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	b := batch{workers: runtime.GOMAXPROCS(0), res: Resolver()}
	for _, opt := range opts {
		opt(&b)
	}

	out := make([]apis.FileSettings, len(filePaths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.workers)
	for i, fp := range filePaths {
		eg.Go(func() error {
			s, err := b.res.Resolve(ctx, fp, p.Options(fp), g)
			if err != nil {
				return fmt.Errorf("resx: resolve %s: %w", fp, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// st is the global resx state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
type state struct {
	// res is the process-wide resolver.
	res apis.Resolver
}
