package credstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mehmetcc/oseek/internal/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, Credential{}, s.Load(), "fresh store reads empty")
	assert.Empty(t, s.Token())

	u := &person.Person{ID: "u1", Name: "Selin", Email: "selin@example.com", Role: person.RoleSeeker}
	require.NoError(t, s.Save("tok-123", u))

	cred := s.Load()
	assert.Equal(t, "tok-123", cred.Token)
	require.NotNil(t, cred.User)
	assert.Equal(t, *u, *cred.User)
	assert.Equal(t, "tok-123", s.Token())
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s1.Save("tok", &person.Person{ID: "u1", Role: person.RoleCompany}))
	require.NoError(t, s1.Close())

	s2, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	cred := s2.Load()
	assert.Equal(t, "tok", cred.Token)
	require.NotNil(t, cred.User)
	assert.Equal(t, person.RoleCompany, cred.User.Role)
}

func TestFileStoreClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("tok", &person.Person{ID: "u1"}))

	require.NoError(t, s.Clear())
	assert.Equal(t, Credential{}, s.Load())

	// clearing an already empty store is fine
	require.NoError(t, s.Clear())
}

func TestFileStoreMalformedUserReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save("tok", &person.Person{ID: "u1"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	cred := s.Load()
	assert.Equal(t, "tok", cred.Token, "token survives a corrupt user cache")
	assert.Nil(t, cred.User)
}

func TestFileStoreUpdateUserKeepsToken(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("tok", &person.Person{ID: "u1", Name: "old"}))

	require.NoError(t, s.UpdateUser(&person.Person{ID: "u1", Name: "new"}))

	cred := s.Load()
	assert.Equal(t, "tok", cred.Token)
	assert.Equal(t, "new", cred.User.Name)
}

func TestFileStoreTheme(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Theme())
	require.NoError(t, s.SaveTheme("dark"))
	assert.Equal(t, "dark", s.Theme())
}

func TestFileStoreSubscribe(t *testing.T) {
	s := newTestStore(t)

	updates, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Save("tok", &person.Person{ID: "u1"}))

	select {
	case cred := <-updates:
		assert.Equal(t, "tok", cred.Token)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after Save")
	}

	require.NoError(t, s.Clear())
	select {
	case cred := <-updates:
		assert.Empty(t, cred.Token)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after Clear")
	}
}

// Two stores over the same directory stand in for two processes: a write
// through one must surface on the other's subscription via the file watcher.
func TestFileStoreCrossProcessNotification(t *testing.T) {
	dir := t.TempDir()

	writer, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer writer.Close()

	reader, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer reader.Close()

	updates, cancel := reader.Subscribe()
	defer cancel()

	require.NoError(t, writer.Save("tok", &person.Person{ID: "u1"}))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cred := <-updates:
			if cred.Token == "tok" {
				return
			}
			// intermediate snapshot (token written, user not yet), keep going
		case <-deadline:
			t.Fatal("reader never observed the writer's save")
		}
	}
}
