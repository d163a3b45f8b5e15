package credstore

import (
	"sync"

	"github.com/mehmetcc/oseek/internal/person"
)

// MemStore is the in-process Store used by tests and throwaway sessions.
type MemStore struct {
	mu      sync.Mutex
	token   string
	user    *person.Person
	theme   string
	subs    map[int]chan Credential
	nextSub int
}

func NewMemStore() *MemStore {
	return &MemStore{subs: make(map[int]chan Credential)}
}

func (s *MemStore) Load() Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Credential{Token: s.token, User: copyUser(s.user)}
}

func (s *MemStore) Save(token string, user *person.Person) error {
	s.mu.Lock()
	s.token = token
	s.user = copyUser(user)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemStore) UpdateUser(user *person.Person) error {
	s.mu.Lock()
	s.user = copyUser(user)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemStore) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *MemStore) SaveTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

func (s *MemStore) Subscribe() (<-chan Credential, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Credential, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			close(c)
			delete(s.subs, id)
		}
	}
	return ch, cancel
}

func (s *MemStore) notify() {
	cred := s.Load()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- cred:
		default:
		}
	}
}

func copyUser(u *person.Person) *person.Person {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
