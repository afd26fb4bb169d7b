package store

import (
	"errors"
	"time"

	"homefix-backend-go/internal/models"
)

// ErrUsernameTaken is the only error the store produces: usernames are declared
// unique and CreateUser enforces it. Every other absence is a sentinel return.
var ErrUsernameTaken = errors.New("username already taken")

type CreateUserParams struct {
	Username string
	Password string
	Email    *string
}

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

// GetUserByUsername does an exact, case-sensitive match.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users.all() {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) CreateUser(p CreateUserParams) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users.all() {
		if user.Username == p.Username {
			return models.User{}, ErrUsernameTaken
		}
	}
	user := s.users.insert(func(id int) models.User {
		return models.User{
			ID:        id,
			Username:  p.Username,
			Password:  p.Password,
			Email:     p.Email,
			CreatedAt: time.Now().UTC(),
		}
	})
	return user, nil
}
