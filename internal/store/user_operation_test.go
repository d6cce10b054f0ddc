package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

func TestLoadUsersSkipsEmptyUsernames(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "users.csv",
		"alice,secret123,F,555-0100,P100\n"+
			",orphan,M,555-0101,P101\n"+
			"bob,hunter22,M,555-0102,P102\n")

	userOperation := NewUserOperation(nopLogger{}, path, PlainVerifier{})
	users, err := userOperation.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestGetUserByCredentials(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "users.csv", "alice,secret123,F,555-0100,P100\n")

	userOperation := NewUserOperation(nopLogger{}, path, PlainVerifier{})
	_, err := userOperation.LoadUsers()
	require.NoError(t, err)

	user, err := userOperation.GetUserByCredentials("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "P100", user.Passport)

	_, err = userOperation.GetUserByCredentials("alice", "wrong")
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = userOperation.GetUserByCredentials("mallory", "secret123")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddUserAppendsAndLoginWorks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")

	userOperation := NewUserOperation(nopLogger{}, path, PlainVerifier{})
	_, err := userOperation.LoadUsers()
	require.NoError(t, err)

	require.NoError(t, userOperation.AddUser(&User{
		Username: "alice", Password: "secret123", Gender: "F", Contact: "555-0100", Passport: "P100",
	}))

	// A fresh directory over the same file sees the appended record.
	reloaded := NewUserOperation(nopLogger{}, path, PlainVerifier{})
	users, err := reloaded.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	user, err := reloaded.GetUserByCredentials("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", user.Contact)
}

func TestDuplicateUsernamesFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	path := writeStoreFile(t, dir, "users.csv",
		"alice,firstpass,F,555-0100,P100\n"+
			"alice,secondpass,F,555-0101,P101\n")

	userOperation := NewUserOperation(nopLogger{}, path, PlainVerifier{})
	_, err := userOperation.LoadUsers()
	require.NoError(t, err)

	// Uniqueness is not enforced; each record still verifies against its
	// own password.
	user, err := userOperation.GetUserByCredentials("alice", "firstpass")
	require.NoError(t, err)
	assert.Equal(t, "P100", user.Passport)

	user, err = userOperation.GetUserByCredentials("alice", "secondpass")
	require.NoError(t, err)
	assert.Equal(t, "P101", user.Passport)
}

func TestBcryptVerifier(t *testing.T) {
	verifier := BcryptVerifier{Cost: 4}

	encoded, err := verifier.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", encoded)
	assert.True(t, verifier.Verify(encoded, "secret123"))
	assert.False(t, verifier.Verify(encoded, "wrong"))
}

func TestAddUserWithBcryptScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")

	userOperation := NewUserOperation(nopLogger{}, path, BcryptVerifier{Cost: 4})
	_, err := userOperation.LoadUsers()
	require.NoError(t, err)

	require.NoError(t, userOperation.AddUser(&User{Username: "alice", Password: "secret123"}))

	users := userOperation.GetUsers()
	require.Len(t, users, 1)
	assert.NotEqual(t, "secret123", users[0].Password, "cleartext must not reach the store under bcrypt")

	user, err := userOperation.GetUserByCredentials("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
