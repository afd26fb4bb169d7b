package services

import (
	"homefix-backend-go/internal/models"
	"homefix-backend-go/internal/store"
)

// PopularIssue is a repair issue decorated with its appliance for listing
// cards. Appliance stays nil when the issue references a missing appliance;
// a dangling reference is tolerated, not an error.
type PopularIssue struct {
	models.RepairIssue
	Appliance *models.Appliance `json:"appliance,omitempty"`
}

// RepairDetail is the full guided-repair payload: the issue, its appliance,
// the ordered steps and the recommended parts.
type RepairDetail struct {
	models.RepairIssue
	Appliance *models.Appliance   `json:"appliance,omitempty"`
	Steps     []models.RepairStep `json:"steps"`
	Parts     []models.RepairPart `json:"parts"`
}

func PopularIssues(st *store.Store) []PopularIssue {
	issues := st.GetPopularRepairIssues()
	items := make([]PopularIssue, 0, len(issues))
	for _, issue := range issues {
		items = append(items, PopularIssue{
			RepairIssue: issue,
			Appliance:   lookupAppliance(st, issue.ApplianceID),
		})
	}
	return items
}

// ApplianceRepairs returns the appliance and its known issues.
func ApplianceRepairs(st *store.Store, applianceID int) (models.Appliance, []models.RepairIssue, error) {
	appliance, ok := st.GetAppliance(applianceID)
	if !ok {
		return models.Appliance{}, nil, ErrNotFound("Appliance not found")
	}
	return appliance, st.GetRepairIssuesByAppliance(applianceID), nil
}

func GetRepairDetail(st *store.Store, issueID int) (RepairDetail, error) {
	issue, ok := st.GetRepairIssue(issueID)
	if !ok {
		return RepairDetail{}, ErrNotFound("Repair issue not found")
	}
	return RepairDetail{
		RepairIssue: issue,
		Appliance:   lookupAppliance(st, issue.ApplianceID),
		Steps:       st.GetRepairSteps(issueID),
		Parts:       st.GetRepairParts(issueID),
	}, nil
}

func RepairSteps(st *store.Store, issueID int) ([]models.RepairStep, error) {
	if _, ok := st.GetRepairIssue(issueID); !ok {
		return nil, ErrNotFound("Repair issue not found")
	}
	return st.GetRepairSteps(issueID), nil
}

func RepairParts(st *store.Store, issueID int) ([]models.RepairPart, error) {
	if _, ok := st.GetRepairIssue(issueID); !ok {
		return nil, ErrNotFound("Repair issue not found")
	}
	return st.GetRepairParts(issueID), nil
}

func lookupAppliance(st *store.Store, id int) *models.Appliance {
	appliance, ok := st.GetAppliance(id)
	if !ok {
		return nil
	}
	return &appliance
}
