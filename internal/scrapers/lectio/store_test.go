package lectio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	require.False(t, store.IsInitialized())
	_, ok := store.Get()
	require.False(t, ok)

	first := &Client{}
	store.Set(first)
	snapshot, ok := store.Get()
	require.True(t, ok)
	require.Same(t, first, snapshot)

	second := &Client{}
	store.Set(second)
	current, _ := store.Get()
	require.Same(t, second, current)
	require.Same(t, first, snapshot, "a snapshot is not affected by a later login")
}

func TestSessionStoreConcurrent(t *testing.T) {
	store := NewSessionStore()
	clients := make([]*Client, 16)
	for i := range clients {
		clients[i] = &Client{}
	}

	wg := sync.WaitGroup{}
	for _, c := range clients {
		wg.Add(2)
		go func(c *Client) {
			defer wg.Done()
			store.Set(c)
		}(c)
		go func() {
			defer wg.Done()
			current, ok := store.Get()
			if ok && current == nil {
				t.Error("initialized store returned a nil client")
			}
		}()
	}
	wg.Wait()

	current, ok := store.Get()
	require.True(t, ok)
	require.Contains(t, clients, current)
}
