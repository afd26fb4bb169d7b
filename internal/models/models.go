package models

import "time"

// ApplianceType is the closed set of appliance categories the catalog knows.
type ApplianceType string

const (
	TypeWashingMachine ApplianceType = "washing_machine"
	TypeRefrigerator   ApplianceType = "refrigerator"
	TypeDishwasher     ApplianceType = "dishwasher"
	TypeMicrowave      ApplianceType = "microwave"
	TypeDryer          ApplianceType = "dryer"
	TypeOven           ApplianceType = "oven"
	TypeStove          ApplianceType = "stove"
)

type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Appliance struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Brand     string        `json:"brand"`
	Model     string        `json:"model"`
	Type      ApplianceType `json:"type"`
	YearStart *int          `json:"yearStart,omitempty"`
	YearEnd   *int          `json:"yearEnd,omitempty"`
	ImageURL  *string       `json:"imageUrl,omitempty"`
}

type RepairIssue struct {
	ID            int        `json:"id"`
	ApplianceID   int        `json:"applianceId"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime *string    `json:"estimatedTime,omitempty"`
	IsPopular     bool       `json:"isPopular"`
}

// MarkerPosition is a normalized overlay coordinate; Z is only set for markers
// anchored in depth.
type MarkerPosition struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// ARMarker is a labeled placement hint rendered over the camera view during a
// guided step. Pure data on the backend: nothing here tracks or computes it.
type ARMarker struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Position MarkerPosition `json:"position"`
	Size     *float64       `json:"size,omitempty"`
}

type RepairStep struct {
	ID              int        `json:"id"`
	RepairIssueID   int        `json:"repairIssueId"`
	StepNumber      int        `json:"stepNumber"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	ARMarkers       []ARMarker `json:"arMarkers"`
	IsSafetyWarning bool       `json:"isSafetyWarning"`
}

type RepairHistory struct {
	ID                int        `json:"id"`
	UserID            int        `json:"userId"`
	RepairIssueID     int        `json:"repairIssueId"`
	LastStepCompleted int        `json:"lastStepCompleted"`
	StartedAt         time.Time  `json:"startedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

type RepairPart struct {
	ID            int     `json:"id"`
	RepairIssueID int     `json:"repairIssueId"`
	Name          string  `json:"name"`
	PartNumber    *string `json:"partNumber,omitempty"`
	Description   *string `json:"description,omitempty"`
	Price         *string `json:"price,omitempty"`
	Supplier      *string `json:"supplier,omitempty"`
	SupplierURL   *string `json:"supplierUrl,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}
