package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericMap(t *testing.T) {
	m := NewGenericMap[string, int]()

	_, ok := m.Load("a")
	assert.False(t, ok)

	m.Store("a", 1)
	m.Store("a", 2)
	m.Store("b", 3)
	assert.Equal(t, 2, m.Len())

	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = m.LoadAndDelete("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.LoadAndDelete("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	seen := map[string]int{}
	m.Range(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	assert.Equal(t, map[string]int{"b": 3}, seen)
}

func TestGenericMapConcurrentStore(t *testing.T) {
	m := NewGenericMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Store(j, base)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, m.Len())
}
