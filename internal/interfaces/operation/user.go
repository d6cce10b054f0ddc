// Package operation
package operation

import (
	"errors"
)

var (
	ErrUserNotFound   = errors.New("user does not exist")
	ErrPasswordEncode = errors.New("password encode error")
)

// User is a credential record. Username is the natural key, but uniqueness is
// not enforced anywhere in this core; duplicate signups produce duplicate
// records and the first matching record wins at login.
type User struct {
	Username string
	Password string
	Gender   string
	Contact  string
	Passport string
}

// CredentialVerifier isolates password storage from the directory so a
// hashing scheme can be substituted without touching the store code.
type CredentialVerifier interface {
	// Hash encodes a cleartext password for storage.
	Hash(password string) (encoded string, err error)
	// Verify reports whether the presented password matches the stored one.
	Verify(stored, presented string) (pass bool)
}

// UserOperationInterface 用户目录操作接口定义
type UserOperationInterface interface {
	// LoadUsers parses the user store, skipping records with an empty
	// username. Returns the loaded users in store order.
	LoadUsers() (users []*User, err error)
	// GetUsers returns the loaded directory in store order.
	GetUsers() (users []*User)
	// AddUser encodes the password, appends the record to the store and
	// adds it to the in-memory directory.
	AddUser(user *User) (err error)
	// GetUserByCredentials returns ErrUserNotFound unless a record matches
	// both the username and, via the verifier, the password.
	GetUserByCredentials(username, password string) (user *User, err error)
}
