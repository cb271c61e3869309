package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// A Cache holds large objects that are expensive to build, such as
// dictionary indexes, so that loading the same thing twice is free. It is
// safe for concurrent use; two callers asking for the same missing key
// both wait for one load.
type Cache[T any] struct {
	sync.Mutex
	objects map[string]T
}

type LoadFunc[T any] func(key string) (T, error)

func New[T any]() *Cache[T] {
	return &Cache[T]{objects: make(map[string]T)}
}

// Get returns the object stored under key, calling load to make it the
// first time. A failed load is not cached.
func (c *Cache[T]) Get(key string, load LoadFunc[T]) (T, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(key)
	if err != nil {
		var zero T
		return zero, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Len is the number of cached objects.
func (c *Cache[T]) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}
