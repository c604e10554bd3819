package session

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-travel-agency/pkg/jwt"
)

// Store holds the access token for the current session. It is the Go
// stand-in for the browser's local storage slot: Clear is what the API
// client calls when it detects an expired session.
type Store interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns a store that lives for the process only.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *memoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryStore) Clear() error {
	return s.SetToken("")
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore persists the token to a file so the CLI stays logged in
// between runs.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *fileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Open picks a file store when a path is configured, memory otherwise.
func Open(tokenFile string) Store {
	if tokenFile != "" {
		return NewFileStore(tokenFile)
	}
	return NewMemoryStore()
}

// ExpiresAt peeks at the stored token's expiry without verifying it.
// Returns the zero time when no token is stored or it cannot be decoded.
func ExpiresAt(s Store) time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}
	exp, err := jwt.ExpiresAt(token)
	if err != nil {
		return time.Time{}
	}
	return exp
}
