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
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is a reasonable size for a single project build.
const DefaultCacheSize = 4096

// ErrCacheSize is returned when a cache is requested with a non-positive size.
var ErrCacheSize = errors.New("naming: cache size must be positive")

// Cache memoizes DeriveNamespace and DeriveClassName.
//
// Both functions are pure, so a cached value is always identical to a fresh
// computation. Cache is safe for concurrent use.
type Cache struct {
	namespaces *lru.Cache[namespaceKey, string]
	classes    *lru.Cache[string, string]
}

// namespaceKey covers every input of DeriveNamespace.
type namespaceKey struct {
	filePath, targetPath, projectFullPath, rootNamespace string
}

// NewCache creates a Cache holding up to size entries per derivation.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrCacheSize
	}
	ns, err := lru.New[namespaceKey, string](size)
	if err != nil {
		return nil, err
	}
	cls, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{namespaces: ns, classes: cls}, nil
}

// Namespace is a memoized DeriveNamespace.
func (c *Cache) Namespace(filePath, explicitTargetPath, projectFullPath, rootNamespace string) string {
	key := namespaceKey{filePath, explicitTargetPath, projectFullPath, rootNamespace}
	if v, ok := c.namespaces.Get(key); ok {
		return v
	}
	v := DeriveNamespace(filePath, explicitTargetPath, projectFullPath, rootNamespace)
	c.namespaces.Add(key, v)
	return v
}

// ClassName is a memoized DeriveClassName.
func (c *Cache) ClassName(filePath string) string {
	if v, ok := c.classes.Get(filePath); ok {
		return v
	}
	v := DeriveClassName(filePath)
	c.classes.Add(filePath, v)
	return v
}

// Len returns the number of cached namespace and class name entries.
func (c *Cache) Len() int {
	return c.namespaces.Len() + c.classes.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.namespaces.Purge()
	c.classes.Purge()
}
