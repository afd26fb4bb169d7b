package services

import (
	"homefix-backend-go/internal/models"
	"homefix-backend-go/internal/store"
)

// DefaultRecentLimit applies when a recent-history caller does not supply a
// limit. The store itself always receives a resolved limit.
const DefaultRecentLimit = 3

// HistoryItem is one history record decorated with its issue and appliance.
// Either decoration may be absent when the chain of references breaks.
type HistoryItem struct {
	models.RepairHistory
	Issue     *models.RepairIssue `json:"issue,omitempty"`
	Appliance *models.Appliance   `json:"appliance,omitempty"`
}

// UserHistory returns the user's records, most recent first, each enriched
// with issue and appliance details.
func UserHistory(st *store.Store, userID int) ([]HistoryItem, error) {
	if _, ok := st.GetUser(userID); !ok {
		return nil, ErrNotFound("User not found")
	}
	return enrichHistory(st, st.GetRepairHistory(userID)), nil
}

func RecentUserHistory(st *store.Store, userID, limit int) ([]HistoryItem, error) {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	if _, ok := st.GetUser(userID); !ok {
		return nil, ErrNotFound("User not found")
	}
	return enrichHistory(st, st.GetRecentRepairHistory(userID, limit)), nil
}

// StartRepair opens a fresh history record at step zero. Both referenced
// entities must exist; this is the write-time guard the store itself does not
// impose.
func StartRepair(st *store.Store, userID, repairIssueID int) (models.RepairHistory, error) {
	if _, ok := st.GetUser(userID); !ok {
		return models.RepairHistory{}, ErrNotFound("User not found")
	}
	if _, ok := st.GetRepairIssue(repairIssueID); !ok {
		return models.RepairHistory{}, ErrNotFound("Repair issue not found")
	}
	record := st.CreateRepairHistory(store.CreateRepairHistoryParams{
		UserID:        userID,
		RepairIssueID: repairIssueID,
	})
	return record, nil
}

func AdvanceRepair(st *store.Store, historyID, lastStepCompleted int, completed bool) (models.RepairHistory, error) {
	record, ok := st.UpdateRepairHistory(historyID, lastStepCompleted, completed)
	if !ok {
		return models.RepairHistory{}, ErrNotFound("History record not found")
	}
	return record, nil
}

func enrichHistory(st *store.Store, records []models.RepairHistory) []HistoryItem {
	items := make([]HistoryItem, 0, len(records))
	for _, record := range records {
		item := HistoryItem{RepairHistory: record}
		if issue, ok := st.GetRepairIssue(record.RepairIssueID); ok {
			item.Issue = &issue
			item.Appliance = lookupAppliance(st, issue.ApplianceID)
		}
		items = append(items, item)
	}
	return items
}
