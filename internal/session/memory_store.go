package session

import (
	"sync"
	"time"
)

type inMemoryStore struct {
	sessions map[string]Session
	mutex    sync.RWMutex
}

func NewInMemoryStore() Store {
	return &inMemoryStore{
		sessions: make(map[string]Session),
	}
}

func (s *inMemoryStore) Save(token string, sess Session, _ time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions[token] = sess
	return nil
}

// Load expires lazily: an entry past its deadline is dropped and reported
// absent. There is no background sweep.
func (s *inMemoryStore) Load(token string) (Session, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sess, exists := s.sessions[token]
	if !exists {
		return Session{}, false, nil
	}
	if sess.Expired(time.Now()) {
		delete(s.sessions, token)
		return Session{}, false, nil
	}
	return sess, true, nil
}

func (s *inMemoryStore) Delete(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, token)
	return nil
}
