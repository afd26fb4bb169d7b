package store

import (
	"sort"
	"time"

	"homefix-backend-go/internal/models"
)

type CreateRepairHistoryParams struct {
	UserID            int
	RepairIssueID     int
	LastStepCompleted int
	// StartedAt defaults to now when left zero.
	StartedAt time.Time
}

// GetRepairHistory returns a user's records sorted by StartedAt descending,
// most recent first.
func (s *Store) GetRepairHistory(userID int) []models.RepairHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.history.where(func(h models.RepairHistory) bool {
		return h.UserID == userID
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartedAt.After(items[j].StartedAt)
	})
	return items
}

// GetRecentRepairHistory truncates GetRepairHistory to limit entries. The
// limit arrives already resolved; defaulting lives with the caller.
func (s *Store) GetRecentRepairHistory(userID, limit int) []models.RepairHistory {
	items := s.GetRepairHistory(userID)
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

func (s *Store) CreateRepairHistory(p CreateRepairHistoryParams) models.RepairHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	startedAt := p.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}
	return s.history.insert(func(id int) models.RepairHistory {
		return models.RepairHistory{
			ID:                id,
			UserID:            p.UserID,
			RepairIssueID:     p.RepairIssueID,
			LastStepCompleted: p.LastStepCompleted,
			StartedAt:         startedAt,
		}
	})
}

// UpdateRepairHistory overwrites LastStepCompleted and, when completed is
// true, stamps CompletedAt. CompletedAt is never cleared once set. Returns
// false without mutating anything when the record does not exist.
func (s *Store) UpdateRepairHistory(id, lastStepCompleted int, completed bool) (models.RepairHistory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.history.get(id)
	if !ok {
		return models.RepairHistory{}, false
	}
	record.LastStepCompleted = lastStepCompleted
	if completed {
		now := time.Now().UTC()
		record.CompletedAt = &now
	}
	s.history.replace(id, record)
	return record, true
}
