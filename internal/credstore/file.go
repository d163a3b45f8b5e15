package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
	themeFile = "theme"
)

// FileStore keeps the credential in a directory of small files, one per key,
// surviving restarts until an explicit Clear. An fsnotify watcher on the
// directory propagates logins/logouts made by other processes, the same way
// a storage-change event crosses browser tabs.
type FileStore struct {
	dir    string
	logger *zap.Logger

	mu      sync.Mutex
	subs    map[int]chan Credential
	nextSub int

	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	s := &FileStore{
		dir:    dir,
		logger: logger,
		subs:   make(map[int]chan Credential),
		done:   make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Close stops the directory watcher and drops all subscriptions.
func (s *FileStore) Close() error {
	close(s.done)
	err := s.watcher.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	return err
}

func (s *FileStore) Load() Credential {
	var cred Credential

	if b, err := os.ReadFile(filepath.Join(s.dir, tokenFile)); err == nil {
		cred.Token = string(b)
	}

	b, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return cred
	}
	var u person.Person
	if err := json.Unmarshal(b, &u); err != nil {
		// malformed cached user reads as absence, never as a failure
		s.logger.Debug("malformed cached user, treating as absent", zap.Error(err))
		return cred
	}
	cred.User = &u

	return cred
}

func (s *FileStore) Save(token string, user *person.Person) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	if err := s.writeUser(user); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *FileStore) Clear() error {
	if err := removeIfPresent(filepath.Join(s.dir, tokenFile)); err != nil {
		return err
	}
	if err := removeIfPresent(filepath.Join(s.dir, userFile)); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *FileStore) UpdateUser(user *person.Person) error {
	if err := s.writeUser(user); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *FileStore) Token() string {
	return s.Load().Token
}

func (s *FileStore) Theme() string {
	b, err := os.ReadFile(filepath.Join(s.dir, themeFile))
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *FileStore) SaveTheme(theme string) error {
	return os.WriteFile(filepath.Join(s.dir, themeFile), []byte(theme), 0o600)
}

func (s *FileStore) Subscribe() (<-chan Credential, func()) {
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

func (s *FileStore) writeUser(user *person.Person) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), b, 0o600)
}

func (s *FileStore) notify() {
	cred := s.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- cred:
		default:
			// evict the stale snapshot so the latest one always lands
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- cred:
			default:
			}
		}
	}
}

func (s *FileStore) watch() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if name != tokenFile && name != userFile {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.notify()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("credential watcher error", zap.Error(err))
		}
	}
}

func removeIfPresent(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
