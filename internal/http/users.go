package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"homefix-backend-go/internal/models"
	"homefix-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type SignupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// UserDTO is the user shape the API exposes: everything but the password hash.
type UserDTO struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	user, err := services.Signup(s.Store, req.Username, req.Password, req.Email)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusCreated, toUserDTO(user))
}

func (s *Server) UserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, ok := s.Store.GetUserByUsername(username)
	if !ok {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, toUserDTO(user))
}
