package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Miol-Mor/battle-game/auth"
)

// ErrUserNotFound means no user matches the requested id or handle.
var ErrUserNotFound = errors.New("user not found")

// defaultUserCount is how many stub accounts a fresh store starts with.
const defaultUserCount = 5

// User is one stored account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore is the JSON-file backed user storage.
type UserStore struct {
	path  string
	users []User
	mu    sync.RWMutex
}

// LoadUserStore reads the store from path, creating it with generated
// accounts when the file does not exist.
func LoadUserStore(path string) (*UserStore, error) {
	store := &UserStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("User database not found, creating default in %s", path)
		users, err := generateUsers(defaultUserCount)
		if err != nil {
			return nil, err
		}
		store.users = users
		if err := store.save(); err != nil {
			return nil, err
		}
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Printf("User database found in %s, loading", path)
	if err := json.Unmarshal(data, &store.users); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return store, nil
}

// Find returns the user with the given id.
func (s *UserStore) Find(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// FindByHandle returns the user with the given handle.
func (s *UserStore) FindByHandle(handle string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Handle == handle {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// All returns every stored user.
func (s *UserStore) All() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, len(s.users))
	copy(users, s.users)
	return users
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *UserStore) save() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func generateUsers(n int) ([]User, error) {
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		password, err := auth.HashPassword("tbd")
		if err != nil {
			return nil, err
		}
		user := User{
			ID:        uuid.New().String(),
			Handle:    fmt.Sprintf("test_user_%d", i+1),
			Email:     fmt.Sprintf("test%d@test.com", i+1),
			Password:  password,
			CreatedAt: time.Now().UTC(),
		}
		log.Printf("Adding user %s (%s)", user.Handle, user.ID)
		users = append(users, user)
	}
	return users, nil
}
