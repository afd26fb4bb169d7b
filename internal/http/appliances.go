package httpapi

import (
	"net/http"

	"homefix-backend-go/internal/models"
	"homefix-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListAppliances(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Store.GetAllAppliances())
}

func (s *Server) AppliancesByType(w http.ResponseWriter, r *http.Request) {
	kind := models.ApplianceType(chi.URLParam(r, "type"))
	WriteJSON(w, http.StatusOK, s.Store.GetAppliancesByType(kind))
}

func (s *Server) GetAppliance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}
	appliance, ok := s.Store.GetAppliance(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Appliance not found")
		return
	}
	WriteJSON(w, http.StatusOK, appliance)
}

func (s *Server) SearchAppliances(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	WriteJSON(w, http.StatusOK, s.Store.SearchAppliances(query))
}

func (s *Server) ApplianceRepairs(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}
	_, issues, err := services.ApplianceRepairs(s.Store, id)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, issues)
}
