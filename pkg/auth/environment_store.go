package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements CredentialStore using environment variables.
// This is primarily for CI and container setups.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(token *Token) error {
	return ErrStoreUnavailable
}

// Retrieve gets the token from environment variables
func (e *EnvironmentStore) Retrieve(name string) (*Token, error) {
	apiToken := os.Getenv("BOTSWEEP_API_TOKEN")
	if apiToken == "" {
		return nil, ErrCredentialsNotFound
	}

	// Environment variables don't store a name, so we use "default" or the provided one
	if name == "" {
		name = "default"
	}

	return &Token{
		Name:         name,
		APIToken:     apiToken,
		LastModified: time.Now(),
	}, nil
}

// List returns a single token if the environment variable is set
func (e *EnvironmentStore) List() ([]*Token, error) {
	token, err := e.Retrieve("")
	if err != nil {
		return []*Token{}, nil
	}
	return []*Token{token}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(name string) error {
	return ErrStoreUnavailable
}

// Exists checks if the environment credential exists
func (e *EnvironmentStore) Exists(name string) bool {
	return os.Getenv("BOTSWEEP_API_TOKEN") != ""
}
