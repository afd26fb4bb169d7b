package store

import (
	"sort"

	"homefix-backend-go/internal/models"
)

type CreateRepairIssueParams struct {
	ApplianceID   int
	Title         string
	Description   *string
	Difficulty    models.Difficulty
	EstimatedTime *string
	IsPopular     bool
}

type CreateRepairStepParams struct {
	RepairIssueID   int
	StepNumber      int
	Title           string
	Description     string
	ImageURL        *string
	ARMarkers       []models.ARMarker
	IsSafetyWarning bool
}

type CreateRepairPartParams struct {
	RepairIssueID int
	Name          string
	PartNumber    *string
	Description   *string
	Price         *string
	Supplier      *string
	SupplierURL   *string
	ImageURL      *string
}

func (s *Store) GetRepairIssue(id int) (models.RepairIssue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issues.get(id)
}

// Referenced appliance ids are not validated here; a dangling ApplianceID
// simply yields no appliance on lookup.
func (s *Store) GetRepairIssuesByAppliance(applianceID int) []models.RepairIssue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issues.where(func(issue models.RepairIssue) bool {
		return issue.ApplianceID == applianceID
	})
}

func (s *Store) GetPopularRepairIssues() []models.RepairIssue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issues.where(func(issue models.RepairIssue) bool {
		return issue.IsPopular
	})
}

func (s *Store) CreateRepairIssue(p CreateRepairIssueParams) models.RepairIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issues.insert(func(id int) models.RepairIssue {
		return models.RepairIssue{
			ID:            id,
			ApplianceID:   p.ApplianceID,
			Title:         p.Title,
			Description:   p.Description,
			Difficulty:    p.Difficulty,
			EstimatedTime: p.EstimatedTime,
			IsPopular:     p.IsPopular,
		}
	})
}

func (s *Store) GetRepairStep(id int) (models.RepairStep, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps.get(id)
}

// GetRepairSteps returns the steps for one issue sorted ascending by step
// number. The guided step-by-step presentation depends on this ordering.
func (s *Store) GetRepairSteps(repairIssueID int) []models.RepairStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	steps := s.steps.where(func(step models.RepairStep) bool {
		return step.RepairIssueID == repairIssueID
	})
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].StepNumber < steps[j].StepNumber
	})
	return steps
}

func (s *Store) CreateRepairStep(p CreateRepairStepParams) models.RepairStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps.insert(func(id int) models.RepairStep {
		return models.RepairStep{
			ID:              id,
			RepairIssueID:   p.RepairIssueID,
			StepNumber:      p.StepNumber,
			Title:           p.Title,
			Description:     p.Description,
			ImageURL:        p.ImageURL,
			ARMarkers:       p.ARMarkers,
			IsSafetyWarning: p.IsSafetyWarning,
		}
	})
}

func (s *Store) GetRepairParts(repairIssueID int) []models.RepairPart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parts.where(func(part models.RepairPart) bool {
		return part.RepairIssueID == repairIssueID
	})
}

func (s *Store) CreateRepairPart(p CreateRepairPartParams) models.RepairPart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parts.insert(func(id int) models.RepairPart {
		return models.RepairPart{
			ID:            id,
			RepairIssueID: p.RepairIssueID,
			Name:          p.Name,
			PartNumber:    p.PartNumber,
			Description:   p.Description,
			Price:         p.Price,
			Supplier:      p.Supplier,
			SupplierURL:   p.SupplierURL,
			ImageURL:      p.ImageURL,
		}
	})
}
