package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"homefix-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

// urlID parses a numeric path parameter. ok is false when the segment is not a
// number; the caller answers 400 in that case.
func urlID(r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if serr, ok := err.(services.ServiceError); ok {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
	return true
}
