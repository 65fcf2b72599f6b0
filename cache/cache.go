// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
)

const defaultClassSize = 4096

// lruCache keeps one expirable LRU per data class. Values are stored JSON
// encoded so that readers never share memory with writers.
type lruCache struct {
	classes      map[DataClass]*expirable.LRU[string, []byte]
	generations  map[DataClass]*atomic.Uint64
	synchronizer utils.FireAndForgetSynchronizer
	broker       shared.PubSubBroker
}

var _ shared.Cache = (*lruCache)(nil)

type Option func(*options)

type options struct {
	ttls map[DataClass]time.Duration
	size int
}

func WithTTL(class DataClass, ttl time.Duration) Option {
	return func(o *options) {
		o.ttls[class] = ttl
	}
}

func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// NewLRUCache creates the cache. broker may be nil for a single instance.
func NewLRUCache(synchronizer utils.FireAndForgetSynchronizer, broker shared.PubSubBroker, opts ...Option) *lruCache {
	o := options{ttls: make(map[DataClass]time.Duration), size: defaultClassSize}
	for class, ttl := range DefaultTTLs {
		o.ttls[class] = ttl
	}
	for _, opt := range opts {
		opt(&o)
	}

	classes := make(map[DataClass]*expirable.LRU[string, []byte], len(AllClasses))
	generations := make(map[DataClass]*atomic.Uint64, len(AllClasses))
	for _, class := range AllClasses {
		classes[class] = expirable.NewLRU[string, []byte](o.size, nil, o.ttls[class])
		generations[class] = new(atomic.Uint64)
	}

	return &lruCache{
		classes:      classes,
		generations:  generations,
		synchronizer: synchronizer,
		broker:       broker,
	}
}

func (c *lruCache) getRaw(key string) ([]byte, bool) {
	class := ClassOf(key)
	store, ok := c.classes[class]
	if !ok {
		return nil, false
	}
	value, ok := store.Get(key)
	if ok {
		monitoring.CacheHitsTotal.WithLabelValues(string(class)).Inc()
	} else {
		monitoring.CacheMissesTotal.WithLabelValues(string(class)).Inc()
	}
	return value, ok
}

// Get decodes the cached value into dest. A value that cannot be decoded is
// dropped and reported as a miss.
func (c *lruCache) Get(ctx context.Context, key string, dest any) bool {
	value, ok := c.getRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(value, dest); err != nil {
		slog.Warn("could not decode cached value, treating as miss", "key", key, "err", err)
		c.deleteLocal([]string{key}, nil)
		return false
	}
	return true
}

func (c *lruCache) Generation(key string) uint64 {
	if generation, ok := c.generations[ClassOf(key)]; ok {
		return generation.Load()
	}
	return 0
}

// Set stores the value without blocking the caller. Failures are logged.
// The write is dropped if the data class of the key was invalidated after
// generation was read.
func (c *lruCache) Set(ctx context.Context, key string, generation uint64, value any) {
	class := ClassOf(key)
	store, ok := c.classes[class]
	if !ok {
		slog.Warn("refusing to cache key of unknown data class", "key", key)
		return
	}
	if c.generations[class].Load() != generation {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("could not encode value for the cache", "key", key, "err", err)
		return
	}
	c.synchronizer.FireAndForget(func() {
		if c.generations[class].Load() != generation {
			return
		}
		store.Add(key, data)
	})
}

// Delete removes the keys synchronously and asks the other instances to do
// the same.
func (c *lruCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	c.deleteLocal(keys, nil)
	c.broadcast(ctx, keys, nil)
}

func (c *lruCache) DeletePrefix(ctx context.Context, prefixes ...string) {
	if len(prefixes) == 0 {
		return
	}
	c.deleteLocal(nil, prefixes)
	c.broadcast(ctx, nil, prefixes)
}

func (c *lruCache) deleteLocal(keys []string, prefixes []string) {
	for _, key := range keys {
		if store, ok := c.classes[ClassOf(key)]; ok {
			c.generations[ClassOf(key)].Add(1)
			store.Remove(key)
		}
	}
	for _, prefix := range prefixes {
		store, ok := c.classes[ClassOf(prefix)]
		if !ok {
			continue
		}
		c.generations[ClassOf(prefix)].Add(1)
		if prefix == ClassPrefix(ClassOf(prefix)) {
			store.Purge()
			continue
		}
		for _, key := range store.Keys() {
			if strings.HasPrefix(key, prefix) {
				store.Remove(key)
			}
		}
	}
}

func (c *lruCache) broadcast(ctx context.Context, keys []string, prefixes []string) {
	if c.broker == nil {
		return
	}
	message := shared.CacheInvalidationMessage{Keys: keys, Prefixes: prefixes}
	if err := c.broker.Publish(ctx, message); err != nil {
		slog.Warn("could not broadcast cache invalidation", "err", err)
	}
}

// Listen applies invalidations of other instances until ctx is done or the
// broker closes the subscription.
func (c *lruCache) Listen(ctx context.Context) error {
	if c.broker == nil {
		return nil
	}
	messages, err := c.broker.Subscribe(shared.CacheInvalidationChannel)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-messages:
				if !ok {
					return
				}
				message := shared.CacheInvalidationFromPayload(payload)
				c.deleteLocal(message.Keys, message.Prefixes)
			}
		}
	}()
	return nil
}
