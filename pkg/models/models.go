package models

import "time"

// TimestampLayout is the normalized storage form of test run timestamps: UTC
// with fixed nanosecond width so string order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Chemistry struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	ShortName      string  `json:"shortName"`
	NominalVoltage float64 `gorm:"not null" json:"nominalVoltage"`

	Models []Model `gorm:"foreignKey:ChemistryID;references:ID" json:"-"`
}

func (Chemistry) TableName() string { return "chemistries" }

type FormFactor struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Models []Model `gorm:"foreignKey:FormFactorID;references:ID" json:"-"`
}

func (FormFactor) TableName() string { return "formfactors" }

type Model struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	DesignCapacity *int    `json:"designCapacity"`
	FormFactorID   string  `gorm:"column:formfactor_id;not null;index" json:"formFactorId"`
	ChemistryID    string  `gorm:"column:chemistry_id;not null;index" json:"chemistryId"`
	Manufacturer   *string `json:"manufacturer,omitempty"`

	Batteries []Battery `gorm:"foreignKey:ModelID;references:ID" json:"-"`
}

func (Model) TableName() string { return "models" }

type Battery struct {
	ID      string `gorm:"primaryKey" json:"id"`
	ModelID string `gorm:"column:model_id;not null;index" json:"modelId"`

	TestRuns []TestRun `gorm:"foreignKey:BatteryID;references:ID" json:"-"`
}

func (Battery) TableName() string { return "batteries" }

type TestRunProcess struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`

	TestRuns []TestRun `gorm:"foreignKey:ProcessID;references:ID" json:"-"`
}

func (TestRunProcess) TableName() string { return "battery_tests_processes" }

type TestRun struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	BatteryID string  `gorm:"column:battery_id;not null;index" json:"batteryId"`
	Capacity  float64 `gorm:"not null" json:"capacity"`
	Timestamp string  `gorm:"not null;index" json:"timestamp"`
	ProcessID *string `gorm:"column:process_id" json:"processId,omitempty"`
}

func (TestRun) TableName() string { return "battery_tests" }

// BatteryData is one row of the battery listing: a battery joined with its
// model's reference data and its most recent test run.
type BatteryData struct {
	ID                  string   `json:"id"`
	ModelID             string   `json:"modelId"`
	ModelName           *string  `json:"modelName"`
	DesignCapacity      *int     `json:"designCapacity"`
	LastTestedCapacity  *float64 `json:"lastTestedCapacity"`
	LastTestedTimestamp *string  `json:"lastTestedTimestamp"`
	ChemistryName       *string  `json:"chemistryName"`
	ChemistryShortName  *string  `json:"chemistryShortName"`
	FormfactorName      *string  `json:"formfactorName"`
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

var acceptedTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeTimestamp parses an ISO-8601 timestamp and returns it in
// TimestampLayout. Timestamps without a zone are taken as UTC.
func NormalizeTimestamp(raw string) (string, bool) {
	for _, layout := range acceptedTimestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatTimestamp(t), true
		}
	}
	return "", false
}
