package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"homefix-backend-go/internal/models"
	"homefix-backend-go/internal/store"
)

// Signup creates a user with a bcrypt hash in place of the raw password.
// Username uniqueness is enforced by the store.
func Signup(st *store.Store, username, password string, email *string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return models.User{}, ErrBadRequest("Username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, WrapError(err, "hash password")
	}
	user, err := st.CreateUser(store.CreateUserParams{
		Username: username,
		Password: string(hash),
		Email:    email,
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		return models.User{}, ErrBadRequest("Username already taken")
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// VerifyPassword checks a raw password against a stored bcrypt hash.
func VerifyPassword(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
