package store

import (
	"testing"

	"homefix-backend-go/internal/models"
)

func TestSeedCatalogShape(t *testing.T) {
	s := NewSeeded()

	if got := len(s.GetAllAppliances()); got != 5 {
		t.Fatalf("expected 5 seeded appliances, got %d", got)
	}

	popular := s.GetPopularRepairIssues()
	if len(popular) != 4 {
		t.Fatalf("expected 4 popular issues, got %d", len(popular))
	}
	// Every seeded issue resolves to a real appliance: no dangling references.
	for _, issue := range popular {
		if _, ok := s.GetAppliance(issue.ApplianceID); !ok {
			t.Fatalf("issue %q references missing appliance %d", issue.Title, issue.ApplianceID)
		}
	}

	washer, ok := s.GetRepairIssue(1)
	if !ok || washer.Title != "Not Spinning" {
		t.Fatalf("issue 1 should be the washer spin issue, got %+v", washer)
	}
	steps := s.GetRepairSteps(washer.ID)
	if len(steps) != 3 {
		t.Fatalf("expected 3 guided steps, got %d", len(steps))
	}
	for i, step := range steps {
		if step.StepNumber != i+1 {
			t.Fatalf("step %d has number %d", i, step.StepNumber)
		}
	}
	if !steps[0].IsSafetyWarning {
		t.Fatalf("first washer step is the safety warning")
	}
	if len(steps[1].ARMarkers) != 4 {
		t.Fatalf("back panel step carries 4 screw markers, got %d", len(steps[1].ARMarkers))
	}

	parts := s.GetRepairParts(washer.ID)
	if len(parts) != 1 || parts[0].Name != "Drive Belt" {
		t.Fatalf("expected the drive belt part, got %+v", parts)
	}

	demo, ok := s.GetUserByUsername("demo_user")
	if !ok {
		t.Fatalf("demo user missing")
	}
	history := s.GetRepairHistory(demo.ID)
	if len(history) != 1 {
		t.Fatalf("expected one seeded history record, got %d", len(history))
	}
	if history[0].LastStepCompleted != 2 || history[0].CompletedAt != nil {
		t.Fatalf("demo repair should be in progress at step 2, got %+v", history[0])
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := NewSeeded()
	b := NewSeeded()
	for id := 1; id <= 5; id++ {
		left, _ := a.GetAppliance(id)
		right, _ := b.GetAppliance(id)
		if left.Name != right.Name || left.Type != right.Type {
			t.Fatalf("appliance %d differs across seeds: %+v vs %+v", id, left, right)
		}
	}
	if a.GetAppliancesByType(models.TypeWashingMachine)[0].Brand != "Samsung" {
		t.Fatalf("washer insertion order changed")
	}
}
