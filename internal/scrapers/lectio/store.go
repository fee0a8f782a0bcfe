package lectio

import "sync"

// SessionStore holds the single live session. The lock is only held to read or
// replace the pointer, never across a request, so a scrape keeps using the
// client it snapshotted even if a concurrent login replaces it.
type SessionStore struct {
	mutex  sync.Mutex
	client *Client
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Set replaces the current session unconditionally.
func (s *SessionStore) Set(client *Client) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.client = client
}

// Get returns the current session, false if nobody has logged in yet.
func (s *SessionStore) Get() (*Client, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.client, s.client != nil
}

func (s *SessionStore) IsInitialized() bool {
	_, ok := s.Get()
	return ok
}
