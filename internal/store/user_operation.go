package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sky-brothers/skyair/internal/interfaces/global"
	"github.com/sky-brothers/skyair/internal/interfaces/log"
	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
)

const userRecordFields = 5

type UserOperation struct {
	logger   log.LoggerInterface
	path     string
	verifier CredentialVerifier
	users    []*User
	mu       sync.Mutex
}

func NewUserOperation(logger log.LoggerInterface, path string, verifier CredentialVerifier) *UserOperation {
	return &UserOperation{
		logger:   logger,
		path:     path,
		verifier: verifier,
	}
}

func (userOperation *UserOperation) LoadUsers() ([]*User, error) {
	file, err := os.Open(userOperation.path)
	if err != nil {
		if os.IsNotExist(err) {
			userOperation.logger.WarnF("User store %s does not exist, starting with an empty directory", userOperation.path)
			return userOperation.users, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ",", userRecordFields)
		for len(fields) < userRecordFields {
			fields = append(fields, "")
		}
		if fields[0] == "" {
			continue
		}
		userOperation.users = append(userOperation.users, &User{
			Username: fields[0],
			Password: fields[1],
			Gender:   fields[2],
			Contact:  fields[3],
			Passport: fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return userOperation.users, nil
}

func (userOperation *UserOperation) GetUsers() []*User {
	return userOperation.users
}

func (userOperation *UserOperation) AddUser(user *User) error {
	encoded, err := userOperation.verifier.Hash(user.Password)
	if err != nil {
		return err
	}
	user.Password = encoded

	userOperation.mu.Lock()
	defer userOperation.mu.Unlock()

	file, err := os.OpenFile(userOperation.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	record := fmt.Sprintf("%s,%s,%s,%s,%s\n",
		user.Username, user.Password, user.Gender, user.Contact, user.Passport)
	if _, err := file.WriteString(record); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	userOperation.users = append(userOperation.users, user)
	userOperation.logger.InfoF("Registered user %s", user.Username)
	return nil
}

func (userOperation *UserOperation) GetUserByCredentials(username, password string) (*User, error) {
	// Usernames are not unique, so every matching record is tried.
	for _, user := range userOperation.users {
		if user.Username == username && userOperation.verifier.Verify(user.Password, password) {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}
