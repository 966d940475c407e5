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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/resx/registry"
)

// TestConcurrentSetAndOptions verifies that Set/Options/Files/Count
// are race-free and consistent under concurrent use.
func TestConcurrentSetAndOptions(t *testing.T) {
	reg := registry.New()

	files := make([]string, 10)
	for i := range files {
		files[i] = fmt.Sprintf("/src/App/F%d.resx", i)
	}

	// Register once (sequential) to establish baseline.
	for i, f := range files {
		if err := reg.Set(f, map[string]string{"name": fmt.Sprint(i)}); err != nil {
			t.Fatalf("set %s: %v", f, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				f := files[i%len(files)]
				if got, ok := reg.Options(f).TryGet("name"); !ok || got != fmt.Sprint(i%len(files)) {
					t.Errorf("options for %s: ok=%v got=%q", f, ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Files()
				_ = reg.GlobalOptions()
			}
		}()
	}

	// Writers (same name, extra keys)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(files)
				_ = reg.Set(files[j], map[string]string{"name": fmt.Sprint(j), fmt.Sprintf("w%d", id): "x"})
				reg.SetGlobal(map[string]string{fmt.Sprintf("g%d", id): "x"})
			}
		}(w)
	}

	wg.Wait()

	if reg.Count() != len(files) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(files))
	}
	for w := 0; w < workers; w++ {
		if _, ok := reg.GlobalOptions().TryGet(fmt.Sprintf("g%d", w)); !ok {
			t.Fatalf("global write of worker %d lost", w)
		}
	}
}
