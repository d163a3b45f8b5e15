package mockapi

import (
	"sync"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/person"
)

// user is the mock's full account record. The real backend keeps this in
// postgres; here a mutex and a couple of maps are plenty.
type user struct {
	ID           string
	Name         string
	Email        string
	Role         person.Role
	PasswordHash []byte
	CreatedAt    time.Time

	// seeker profile
	Headline   string
	Summary    string
	Location   string
	Phone      string
	Skills     []api.Skill
	Experience []api.Experience
	Education  []api.Education

	// company profile
	Website  string
	Industry string
	Size     string
	About    string
}

func (u *user) summary() person.Person {
	return person.Person{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type state struct {
	mu sync.Mutex

	users   map[string]*user  // by id
	byEmail map[string]string // email -> id

	jobs          map[string]*api.Job
	applications  map[string]*api.Application
	notifications map[string][]api.Notification       // by user id
	wishlist      map[string]map[string]time.Time     // user id -> job id -> added at
	connections   map[string]*api.Connection
}

func newState() *state {
	return &state{
		users:         make(map[string]*user),
		byEmail:       make(map[string]string),
		jobs:          make(map[string]*api.Job),
		applications:  make(map[string]*api.Application),
		notifications: make(map[string][]api.Notification),
		wishlist:      make(map[string]map[string]time.Time),
		connections:   make(map[string]*api.Connection),
	}
}

func (s *state) userByEmail(email string) (*user, bool) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	u, ok := s.users[id]
	return u, ok
}

func (s *state) addUser(u *user) {
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
}

func (s *state) removeUser(id string) {
	if u, ok := s.users[id]; ok {
		delete(s.byEmail, u.Email)
		delete(s.users, id)
	}
	delete(s.notifications, id)
	delete(s.wishlist, id)
}

func (s *state) notify(userID, message string, id string) {
	s.notifications[userID] = append(s.notifications[userID], api.Notification{
		ID:        id,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}
