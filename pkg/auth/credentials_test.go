package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptedStore(t *testing.T) *EncryptedFileStore {
	t.Helper()
	t.Setenv("BOTSWEEP_PASSPHRASE", "test-passphrase")

	store, err := NewEncryptedFileStore(filepath.Join(t.TempDir(), "credentials.enc"))
	require.NoError(t, err)
	return store
}

func TestEncryptedFileStoreRoundTrip(t *testing.T) {
	store := newTestEncryptedStore(t)

	token := &Token{Name: "default", APIToken: "secret-value"}
	require.NoError(t, store.Store(token))

	got, err := store.Retrieve("default")
	require.NoError(t, err)
	assert.Equal(t, "default", got.Name)
	assert.Equal(t, "secret-value", got.APIToken)
	assert.True(t, store.Exists("default"))
}

func TestEncryptedFileStoreMissingToken(t *testing.T) {
	store := newTestEncryptedStore(t)

	_, err := store.Retrieve("nope")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.False(t, store.Exists("nope"))
}

func TestEncryptedFileStoreList(t *testing.T) {
	store := newTestEncryptedStore(t)

	require.NoError(t, store.Store(&Token{Name: "a", APIToken: "token-a"}))
	require.NoError(t, store.Store(&Token{Name: "b", APIToken: "token-b"}))

	tokens, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestEncryptedFileStoreDelete(t *testing.T) {
	store := newTestEncryptedStore(t)

	require.NoError(t, store.Store(&Token{Name: "default", APIToken: "secret"}))
	require.NoError(t, store.Delete("default"))

	_, err := store.Retrieve("default")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)

	assert.ErrorIs(t, store.Delete("default"), ErrCredentialsNotFound)
}

func TestEncryptedFileStoreWrongPassphrase(t *testing.T) {
	t.Setenv("BOTSWEEP_PASSPHRASE", "first")
	path := filepath.Join(t.TempDir(), "credentials.enc")

	store, err := NewEncryptedFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Store(&Token{Name: "default", APIToken: "secret"}))

	t.Setenv("BOTSWEEP_PASSPHRASE", "second")
	other, err := NewEncryptedFileStore(path)
	require.NoError(t, err)

	_, err = other.Retrieve("default")
	assert.Error(t, err)
}

func TestEnvironmentStore(t *testing.T) {
	store := NewEnvironmentStore()

	t.Setenv("BOTSWEEP_API_TOKEN", "")
	_, err := store.Retrieve("")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.False(t, store.Exists(""))

	t.Setenv("BOTSWEEP_API_TOKEN", "env-secret")

	token, err := store.Retrieve("")
	require.NoError(t, err)
	assert.Equal(t, "default", token.Name)
	assert.Equal(t, "env-secret", token.APIToken)

	tokens, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	// Environment credentials are read-only
	assert.ErrorIs(t, store.Store(&Token{Name: "x", APIToken: "y"}), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete("default"), ErrStoreUnavailable)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "********", MaskToken("short"))
	assert.Equal(t, "********", MaskToken("12345678"))
	assert.Equal(t, "abcd...wxyz", MaskToken("abcdefghijklmnopqrstuvwxyz"))
}
