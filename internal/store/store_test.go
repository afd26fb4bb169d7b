package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"homefix-backend-go/internal/models"
)

func TestCreateApplianceRoundTrip(t *testing.T) {
	s := New()
	created := s.CreateAppliance(CreateApplianceParams{
		Name:      "Whirlpool Cabrio",
		Brand:     "Whirlpool",
		Model:     "WTW8127LC",
		Type:      models.TypeWashingMachine,
		YearStart: intPtr(2021),
	})
	if created.ID != 1 {
		t.Fatalf("expected first id 1, got %d", created.ID)
	}
	got, ok := s.GetAppliance(created.ID)
	if !ok {
		t.Fatalf("appliance %d not found after create", created.ID)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("round trip mismatch (-created +got):\n%s", diff)
	}
}

func TestIDsStrictlyIncreasePerKind(t *testing.T) {
	s := New()
	first := s.CreateRepairIssue(CreateRepairIssueParams{ApplianceID: 1, Title: "Leaking", Difficulty: models.DifficultyBeginner})
	second := s.CreateRepairIssue(CreateRepairIssueParams{ApplianceID: 1, Title: "Noisy", Difficulty: models.DifficultyMedium})
	if second.ID <= first.ID {
		t.Fatalf("ids must strictly increase: %d then %d", first.ID, second.ID)
	}
	// Counters are per entity kind: a fresh kind starts back at 1.
	part := s.CreateRepairPart(CreateRepairPartParams{RepairIssueID: first.ID, Name: "Hose"})
	if part.ID != 1 {
		t.Fatalf("expected part id 1, got %d", part.ID)
	}
}

func TestGetRepairStepsSortedByStepNumber(t *testing.T) {
	s := New()
	// Inserted out of order on purpose.
	for _, n := range []int{3, 1, 2} {
		s.CreateRepairStep(CreateRepairStepParams{RepairIssueID: 7, StepNumber: n, Title: "Step", Description: "..."})
	}
	s.CreateRepairStep(CreateRepairStepParams{RepairIssueID: 8, StepNumber: 1, Title: "Other issue", Description: "..."})

	steps := s.GetRepairSteps(7)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, want := range []int{1, 2, 3} {
		if steps[i].StepNumber != want {
			t.Fatalf("step %d: expected number %d, got %d", i, want, steps[i].StepNumber)
		}
	}
}

func TestGetRepairHistoryMostRecentFirst(t *testing.T) {
	s := New()
	older := s.CreateRepairHistory(CreateRepairHistoryParams{
		UserID: 1, RepairIssueID: 1, StartedAt: time.Now().UTC().Add(-48 * time.Hour),
	})
	newer := s.CreateRepairHistory(CreateRepairHistoryParams{
		UserID: 1, RepairIssueID: 2, StartedAt: time.Now().UTC().Add(-1 * time.Hour),
	})
	s.CreateRepairHistory(CreateRepairHistoryParams{UserID: 2, RepairIssueID: 1})

	items := s.GetRepairHistory(1)
	if len(items) != 2 {
		t.Fatalf("expected 2 records for user 1, got %d", len(items))
	}
	if items[0].ID != newer.ID || items[1].ID != older.ID {
		t.Fatalf("expected [%d %d], got [%d %d]", newer.ID, older.ID, items[0].ID, items[1].ID)
	}
}

func TestGetRecentRepairHistoryIsPrefix(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.CreateRepairHistory(CreateRepairHistoryParams{
			UserID: 1, RepairIssueID: i + 1,
			StartedAt: time.Now().UTC().Add(-time.Duration(i) * time.Hour),
		})
	}
	full := s.GetRepairHistory(1)
	recent := s.GetRecentRepairHistory(1, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent records, got %d", len(recent))
	}
	if diff := cmp.Diff(full[:2], recent); diff != "" {
		t.Fatalf("recent is not a prefix of the full history:\n%s", diff)
	}
	if got := s.GetRecentRepairHistory(1, 50); len(got) != 5 {
		t.Fatalf("oversized limit should return everything, got %d", len(got))
	}
}

func TestUpdateRepairHistoryCompletion(t *testing.T) {
	s := New()
	record := s.CreateRepairHistory(CreateRepairHistoryParams{UserID: 1, RepairIssueID: 1})
	if record.CompletedAt != nil {
		t.Fatalf("fresh record must not be completed")
	}

	updated, ok := s.UpdateRepairHistory(record.ID, 5, true)
	if !ok {
		t.Fatalf("update of existing record failed")
	}
	if updated.LastStepCompleted != 5 {
		t.Fatalf("expected lastStepCompleted 5, got %d", updated.LastStepCompleted)
	}
	if updated.CompletedAt == nil {
		t.Fatalf("completed=true must stamp completedAt")
	}
	completedAt := *updated.CompletedAt

	// completed omitted: progress moves, completedAt stays.
	updated, ok = s.UpdateRepairHistory(record.ID, 6, false)
	if !ok {
		t.Fatalf("second update failed")
	}
	if updated.LastStepCompleted != 6 {
		t.Fatalf("expected lastStepCompleted 6, got %d", updated.LastStepCompleted)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
		t.Fatalf("completedAt must never be cleared or moved by a non-completing update")
	}
}

func TestUpdateRepairHistoryMissingRecord(t *testing.T) {
	s := New()
	existing := s.CreateRepairHistory(CreateRepairHistoryParams{UserID: 1, RepairIssueID: 1})
	if _, ok := s.UpdateRepairHistory(999, 1, false); ok {
		t.Fatalf("update of missing record must report not found")
	}
	got := s.GetRepairHistory(1)[0]
	if diff := cmp.Diff(existing, got); diff != "" {
		t.Fatalf("failed update must not mutate other records:\n%s", diff)
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := New()
	created, err := s.CreateUser(CreateUserParams{Username: "alice", Password: "x"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("CreateUser must stamp createdAt")
	}
	if _, err := s.CreateUser(CreateUserParams{Username: "alice", Password: "y"}); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	got, ok := s.GetUserByUsername("alice")
	if !ok {
		t.Fatalf("user not found by username")
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("lookup mismatch:\n%s", diff)
	}
	if _, ok := s.GetUserByUsername("Alice"); ok {
		t.Fatalf("username lookup must be case-sensitive")
	}
}

func TestSearchAppliances(t *testing.T) {
	s := NewSeeded()

	results := s.SearchAppliances("samsung")
	if len(results) != 1 {
		t.Fatalf("expected exactly one Samsung appliance, got %d", len(results))
	}
	if results[0].Brand != "Samsung" {
		t.Fatalf("unexpected result: %+v", results[0])
	}

	// Matches model numbers too, case-insensitively.
	if got := s.SearchAppliances("shsm63"); len(got) != 1 || got[0].Brand != "Bosch" {
		t.Fatalf("model substring search failed: %+v", got)
	}

	// A blank query matches nothing rather than everything.
	if got := s.SearchAppliances(""); len(got) != 0 {
		t.Fatalf("blank query must return no results, got %d", len(got))
	}
	if got := s.SearchAppliances("   "); len(got) != 0 {
		t.Fatalf("whitespace query must return no results, got %d", len(got))
	}
}

func TestGetAppliancesByType(t *testing.T) {
	s := NewSeeded()
	fridges := s.GetAppliancesByType(models.TypeRefrigerator)
	if len(fridges) != 1 {
		t.Fatalf("expected one refrigerator, got %d", len(fridges))
	}
	if fridges[0].Brand != "GE" {
		t.Fatalf("expected the GE refrigerator, got %+v", fridges[0])
	}
	if got := s.GetAppliancesByType(models.TypeDryer); len(got) != 0 {
		t.Fatalf("no dryers are seeded, got %d", len(got))
	}
}

func TestNotFoundSentinels(t *testing.T) {
	s := New()
	if _, ok := s.GetUser(1); ok {
		t.Fatalf("GetUser on empty store must miss")
	}
	if _, ok := s.GetAppliance(1); ok {
		t.Fatalf("GetAppliance on empty store must miss")
	}
	if _, ok := s.GetRepairIssue(1); ok {
		t.Fatalf("GetRepairIssue on empty store must miss")
	}
	if _, ok := s.GetRepairStep(1); ok {
		t.Fatalf("GetRepairStep on empty store must miss")
	}
	if got := s.GetRepairIssuesByAppliance(1); len(got) != 0 {
		t.Fatalf("expected empty issue list")
	}
	if got := s.GetRepairParts(1); len(got) != 0 {
		t.Fatalf("expected empty part list")
	}
}
