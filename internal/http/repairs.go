package httpapi

import (
	"net/http"

	"homefix-backend-go/internal/services"
)

func (s *Server) PopularRepairs(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, services.PopularIssues(s.Store))
}

func (s *Server) RepairDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}
	detail, err := services.GetRepairDetail(s.Store, id)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

func (s *Server) RepairSteps(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}
	steps, err := services.RepairSteps(s.Store, id)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, steps)
}

func (s *Server) RepairParts(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}
	parts, err := services.RepairParts(s.Store, id)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, parts)
}
