package store

import (
	"time"

	"homefix-backend-go/internal/models"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// seed loads the reference catalog: five appliances, four popular issues, the
// guided steps and part for the washer repair, one demo user and one
// in-progress history record. Runs once from NewSeeded; callers never reseed.
func (s *Store) seed() {
	samsungWasher := s.CreateAppliance(CreateApplianceParams{
		Name:      "Samsung Washer WF45R6100",
		Brand:     "Samsung",
		Model:     "WF45R6100",
		Type:      models.TypeWashingMachine,
		YearStart: intPtr(2018),
		YearEnd:   intPtr(2020),
		ImageURL:  strPtr("https://images.unsplash.com/photo-1581092921461-7031daec7321?w=500"),
	})
	s.CreateAppliance(CreateApplianceParams{
		Name:      "LG Top Load WT7300CW",
		Brand:     "LG",
		Model:     "WT7300CW",
		Type:      models.TypeWashingMachine,
		YearStart: intPtr(2019),
		YearEnd:   intPtr(2021),
		ImageURL:  strPtr("https://images.unsplash.com/photo-1610557892470-55d9e80c0bce?w=500"),
	})
	geRefrigerator := s.CreateAppliance(CreateApplianceParams{
		Name:      "GE Profile PFE28KYNFS",
		Brand:     "GE",
		Model:     "PFE28KYNFS",
		Type:      models.TypeRefrigerator,
		YearStart: intPtr(2020),
		YearEnd:   intPtr(2022),
		ImageURL:  strPtr("https://images.unsplash.com/photo-1585771724684-38269d6919c7?w=500"),
	})
	boschDishwasher := s.CreateAppliance(CreateApplianceParams{
		Name:      "Bosch 300 Series Dishwasher",
		Brand:     "Bosch",
		Model:     "SHSM63W55N",
		Type:      models.TypeDishwasher,
		YearStart: intPtr(2018),
		YearEnd:   intPtr(2022),
		ImageURL:  strPtr("https://images.unsplash.com/photo-1648413653819-5f24dd6962af?w=500"),
	})
	lgMicrowave := s.CreateAppliance(CreateApplianceParams{
		Name:      "LG NeoChef Microwave",
		Brand:     "LG",
		Model:     "LMC0975ST",
		Type:      models.TypeMicrowave,
		YearStart: intPtr(2019),
		YearEnd:   intPtr(2022),
		ImageURL:  strPtr("https://images.unsplash.com/photo-1610557892470-55d9e80c0bce?w=500"),
	})

	washerNotSpinning := s.CreateRepairIssue(CreateRepairIssueParams{
		ApplianceID:   samsungWasher.ID,
		Title:         "Not Spinning",
		Description:   strPtr("Washer drum doesn't spin during cycle"),
		Difficulty:    models.DifficultyMedium,
		EstimatedTime: strPtr("30-45 min"),
		IsPopular:     true,
	})
	s.CreateRepairIssue(CreateRepairIssueParams{
		ApplianceID:   geRefrigerator.ID,
		Title:         "Not Cooling",
		Description:   strPtr("Refrigerator isn't maintaining proper temperature"),
		Difficulty:    models.DifficultyBeginner,
		EstimatedTime: strPtr("20-30 min"),
		IsPopular:     true,
	})
	s.CreateRepairIssue(CreateRepairIssueParams{
		ApplianceID:   boschDishwasher.ID,
		Title:         "Not Draining",
		Description:   strPtr("Water remains in the bottom after cycle completes"),
		Difficulty:    models.DifficultyMedium,
		EstimatedTime: strPtr("30-40 min"),
		IsPopular:     true,
	})
	s.CreateRepairIssue(CreateRepairIssueParams{
		ApplianceID:   lgMicrowave.ID,
		Title:         "Not Heating",
		Description:   strPtr("Microwave runs but doesn't heat food"),
		Difficulty:    models.DifficultyAdvanced,
		EstimatedTime: strPtr("45-60 min"),
		IsPopular:     true,
	})

	s.CreateRepairStep(CreateRepairStepParams{
		RepairIssueID:   washerNotSpinning.ID,
		StepNumber:      1,
		Title:           "Unplug the washer",
		Description:     "For safety, unplug the washer from the electrical outlet before beginning any repair.",
		ImageURL:        strPtr(""),
		ARMarkers:       []models.ARMarker{},
		IsSafetyWarning: true,
	})
	s.CreateRepairStep(CreateRepairStepParams{
		RepairIssueID: washerNotSpinning.ID,
		StepNumber:    2,
		Title:         "Remove Back Panel",
		Description:   "Locate and remove the 4 screws holding the back panel using a Phillips screwdriver.",
		ImageURL:      strPtr(""),
		ARMarkers: []models.ARMarker{
			{ID: "screw1", Label: "Screw 1", Position: models.MarkerPosition{X: 0.25, Y: 0.33}},
			{ID: "screw2", Label: "Screw 2", Position: models.MarkerPosition{X: 0.75, Y: 0.33}},
			{ID: "screw3", Label: "Screw 3", Position: models.MarkerPosition{X: 0.25, Y: 0.66}},
			{ID: "screw4", Label: "Screw 4", Position: models.MarkerPosition{X: 0.75, Y: 0.66}},
		},
	})
	s.CreateRepairStep(CreateRepairStepParams{
		RepairIssueID: washerNotSpinning.ID,
		StepNumber:    3,
		Title:         "Check the Drive Belt",
		Description:   "Inspect the drive belt for signs of wear or damage. If the belt is broken, it will need to be replaced.",
		ImageURL:      strPtr(""),
		ARMarkers: []models.ARMarker{
			{ID: "belt", Label: "Drive Belt", Position: models.MarkerPosition{X: 0.5, Y: 0.5}},
		},
	})

	s.CreateRepairPart(CreateRepairPartParams{
		RepairIssueID: washerNotSpinning.ID,
		Name:          "Drive Belt",
		PartNumber:    strPtr("6602-001655"),
		Description:   strPtr("Replacement drive belt for Samsung washers"),
		Price:         strPtr("$19.99"),
		Supplier:      strPtr("iFixit"),
		SupplierURL:   strPtr("https://www.ifixit.com/products/samsung-washer-drive-belt"),
		ImageURL:      strPtr(""),
	})

	demo, err := s.CreateUser(CreateUserParams{
		Username: "demo_user",
		Password: "password123",
		Email:    strPtr("demo@example.com"),
	})
	if err != nil {
		// The store is empty at this point; a duplicate username is impossible.
		panic(err)
	}

	s.CreateRepairHistory(CreateRepairHistoryParams{
		UserID:            demo.ID,
		RepairIssueID:     washerNotSpinning.ID,
		LastStepCompleted: 2,
		StartedAt:         time.Now().UTC().Add(-24 * time.Hour),
	})
}
