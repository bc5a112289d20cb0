package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute(t *testing.T) {
	t.Run("computes on miss and caches", func(t *testing.T) {
		c := New[string]()

		calls := 0
		produce := func() (string, error) {
			calls++
			return "value", nil
		}

		got, err := c.GetOrCompute("key", time.Minute, produce)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
		assert.Equal(t, 1, calls)

		got, err = c.GetOrCompute("key", time.Minute, produce)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("recomputes after expiry", func(t *testing.T) {
		c := New[int]()

		current := time.Now()
		c.now = func() time.Time { return current }

		calls := 0
		produce := func() (int, error) {
			calls++
			return calls, nil
		}

		got, err := c.GetOrCompute("key", time.Minute, produce)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		current = current.Add(59 * time.Second)
		got, err = c.GetOrCompute("key", time.Minute, produce)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		current = current.Add(2 * time.Second)
		got, err = c.GetOrCompute("key", time.Minute, produce)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("does not cache producer errors", func(t *testing.T) {
		c := New[string]()

		wantErr := errors.New("remote unavailable")
		_, err := c.GetOrCompute("key", time.Minute, func() (string, error) {
			return "", wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		got, err := c.GetOrCompute("key", time.Minute, func() (string, error) {
			return "recovered", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "recovered", got)
	})
}

func TestGet(t *testing.T) {
	c := New[string]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", "value", time.Minute)
	got, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	current := time.Now().Add(2 * time.Minute)
	c.now = func() time.Time { return current }

	_, ok = c.Get("key")
	assert.False(t, ok)
	// lazy eviction removed the entry
	assert.Equal(t, 0, c.Size())
}

func TestInvalidate(t *testing.T) {
	c := New[int]()
	c.Set("timers:abc", 1, time.Minute)
	c.Set("timers:def", 2, time.Minute)
	c.Set("channels:abc", 3, time.Minute)

	c.Invalidate("timers:")
	assert.Equal(t, 1, c.Size())

	_, ok := c.Get("channels:abc")
	assert.True(t, ok)

	c.Invalidate("")
	assert.Equal(t, 0, c.Size())
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.GetOrCompute("shared", time.Minute, func() (int, error) {
				return i, nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	_, ok := c.Get("shared")
	assert.True(t, ok)
}
