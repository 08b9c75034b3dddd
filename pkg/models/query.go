package models

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// BatteryQuery filters and sorts the battery listing. Empty fields impose no
// constraint; filters combine with AND.
type BatteryQuery struct {
	ModelID      string `json:"modelId,omitempty"`
	FormFactorID string `json:"formFactorId,omitempty"`
	ChemistryID  string `json:"chemistryId,omitempty"`
	BatteryID    string `json:"batteryId,omitempty"`
	SortBy       string `json:"sortBy,omitempty"`
	Order        string `json:"order,omitempty"`
}

// EntityType names a table, or all of them, for import and export.
type EntityType string

const (
	EntityAll              EntityType = "all"
	EntityChemistries      EntityType = "chemistries"
	EntityFormFactors      EntityType = "formfactors"
	EntityModels           EntityType = "models"
	EntityBatteries        EntityType = "batteries"
	EntityTestRuns         EntityType = "testruns"
	EntityTestRunProcesses EntityType = "test_run_processes"
)

var entityTypes = []EntityType{
	EntityAll,
	EntityChemistries,
	EntityFormFactors,
	EntityModels,
	EntityBatteries,
	EntityTestRuns,
	EntityTestRunProcesses,
}

func ParseEntityType(raw string) (EntityType, bool) {
	for _, kind := range entityTypes {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

// Filename is the attachment name an export of kind is served under.
func (kind EntityType) Filename() string {
	if kind == EntityAll {
		return "battlogger_data.json"
	}
	return string(kind) + ".json"
}

// Dataset is the whole database in its external shape.
type Dataset struct {
	Batteries        []Battery        `json:"batteries"`
	Chemistries      []Chemistry      `json:"chemistries"`
	FormFactors      []FormFactor     `json:"formfactors"`
	Models           []Model          `json:"models"`
	TestRuns         []TestRun        `json:"testRuns"`
	TestRunProcesses []TestRunProcess `json:"testRunProcesses"`
}
