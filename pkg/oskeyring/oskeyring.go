// Package oskeyring abstracts the operating system keyring used by the gist
// CLI to hold the GitHub token between runs.
package oskeyring

import (
	"errors"
	"fmt"
	"sync"

	keyringlib "github.com/zalando/go-keyring"
)

// ErrNotFound is returned by Get when the requested secret is not stored.
var ErrNotFound = errors.New("secret not found in keyring")

// Service is the minimal keyring surface the CLI needs. The default
// implementation talks to the OS keyring; MemoryService backs tests.
type Service interface {
	// Get retrieves a secret for a given service and user. It returns
	// ErrNotFound if the secret is not stored.
	Get(service, user string) (string, error)
	// Set stores a secret for a given service and user.
	Set(service, user, secret string) error
	// Delete removes a secret. Deleting a missing secret is not an error.
	Delete(service, user string) error
}

// DefaultService stores secrets in the operating system keyring via
// zalando/go-keyring.
type DefaultService struct{}

// NewDefaultService creates a new DefaultService.
func NewDefaultService() *DefaultService {
	return &DefaultService{}
}

func (s *DefaultService) Get(service, user string) (string, error) {
	secret, err := keyringlib.Get(service, user)
	if err != nil {
		if errors.Is(err, keyringlib.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get secret from OS keyring: %w", err)
	}
	return secret, nil
}

func (s *DefaultService) Set(service, user, secret string) error {
	return keyringlib.Set(service, user, secret)
}

func (s *DefaultService) Delete(service, user string) error {
	err := keyringlib.Delete(service, user)
	if err != nil && !errors.Is(err, keyringlib.ErrNotFound) {
		return fmt.Errorf("failed to delete secret from OS keyring: %w", err)
	}
	return nil
}

var _ Service = (*DefaultService)(nil)

// MemoryService is an in-memory Service for tests.
type MemoryService struct {
	mu    sync.RWMutex
	store map[string]map[string]string
}

// NewMemoryService creates an empty MemoryService.
func NewMemoryService() *MemoryService {
	return &MemoryService{store: make(map[string]map[string]string)}
}

func (s *MemoryService) Get(service, user string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	secret, ok := s.store[service][user]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (s *MemoryService) Set(service, user, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store[service] == nil {
		s.store[service] = make(map[string]string)
	}
	s.store[service][user] = secret
	return nil
}

func (s *MemoryService) Delete(service, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.store[service], user)
	return nil
}

var _ Service = (*MemoryService)(nil)
