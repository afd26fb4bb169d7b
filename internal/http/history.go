package httpapi

import (
	"encoding/json"
	"net/http"

	"homefix-backend-go/internal/services"
)

type StartRepairRequest struct {
	UserID        *int `json:"userId"`
	RepairIssueID *int `json:"repairIssueId"`
}

type UpdateHistoryRequest struct {
	HistoryID         *int  `json:"historyId"`
	LastStepCompleted *int  `json:"lastStepCompleted"`
	Completed         *bool `json:"completed"`
}

func (s *Server) UserHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "userId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	items, err := services.UserHistory(s.Store, userID)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) RecentUserHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "userId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), s.Config.RecentHistoryLimit)
	items, err := services.RecentUserHistory(s.Store, userID, limit)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) StartRepair(w http.ResponseWriter, r *http.Request) {
	var req StartRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == nil || req.RepairIssueID == nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := services.StartRepair(s.Store, *req.UserID, *req.RepairIssueID)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusCreated, record)
}

func (s *Server) UpdateRepairProgress(w http.ResponseWriter, r *http.Request) {
	var req UpdateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.HistoryID == nil || req.LastStepCompleted == nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	completed := req.Completed != nil && *req.Completed
	record, err := services.AdvanceRepair(s.Store, *req.HistoryID, *req.LastStepCompleted, completed)
	if mapServiceError(w, err) {
		return
	}
	WriteJSON(w, http.StatusOK, record)
}
