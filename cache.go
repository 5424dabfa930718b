// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unitext

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

type cacheKey struct {
	engine  string
	flags   RegexFlags
	pattern string
}

// RegexCache keeps the most recently used compiled expressions. Expressions
// returned by Get belong to the cache and must not be closed by the caller;
// evicted ones are released once they are no longer referenced.
type RegexCache struct {
	engine string
	cache  *lru.Cache
}

// NewRegexCache creates a cache holding up to size expressions compiled with
// engine. An empty engine means the configured one.
func NewRegexCache(size int, engine string) (*RegexCache, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize.New(size)
	}

	c, err := lru.NewWithEvict(size, func(key interface{}, value interface{}) {
		logger.WithField(PatternLogField, key.(cacheKey).pattern).Debug("evicting cached regex")
		value.(*Regex).release()
	})
	if err != nil {
		return nil, err
	}
	return &RegexCache{engine: engine, cache: c}, nil
}

// Get returns the compiled form of pattern, compiling it on a miss.
func (c *RegexCache) Get(pattern string, flags RegexFlags) (*Regex, error) {
	engine := c.engine
	if engine == "" {
		engine = CurrentConfig().RegexEngine
	}

	key := cacheKey{engine: engine, flags: flags, pattern: pattern}
	if v, ok := c.cache.Get(key); ok {
		return v.(*Regex), nil
	}

	var (
		r   *Regex
		err error
	)
	if engine == "" {
		r, err = NewRegex(pattern, flags)
	} else {
		r, err = NewRegexWithEngine(engine, pattern, flags)
	}
	if err != nil {
		return nil, err
	}

	// another goroutine may have compiled the same pattern meanwhile
	if prev, ok, _ := c.cache.PeekOrAdd(key, r); ok {
		_ = r.Close()
		return prev.(*Regex), nil
	}
	return r, nil
}

// Match compiles pattern through the cache and matches s against it.
func (c *RegexCache) Match(pattern string, flags RegexFlags, s string) (bool, error) {
	r, err := c.Get(pattern, flags)
	if err != nil {
		return false, err
	}
	return r.Match(s)
}

// Len returns the number of cached expressions.
func (c *RegexCache) Len() int { return c.cache.Len() }

// Purge drops every cached expression.
func (c *RegexCache) Purge() { c.cache.Purge() }

var (
	defaultCacheMu sync.Mutex
	defaultCache   *RegexCache
)

func resetDefaultCache() {
	defaultCacheMu.Lock()
	defer defaultCacheMu.Unlock()
	if defaultCache != nil {
		defaultCache.Purge()
	}
	defaultCache = nil
}

func getDefaultCache() (*RegexCache, error) {
	defaultCacheMu.Lock()
	defer defaultCacheMu.Unlock()
	if defaultCache == nil {
		c, err := NewRegexCache(CurrentConfig().RegexCacheSize, "")
		if err != nil {
			return nil, err
		}
		defaultCache = c
	}
	return defaultCache, nil
}

// MatchString reports whether s matches pattern in its entirety, reusing
// compiled expressions through a package wide cache.
func MatchString(pattern string, flags RegexFlags, s string) (bool, error) {
	c, err := getDefaultCache()
	if err != nil {
		return false, err
	}
	return c.Match(pattern, flags, s)
}
