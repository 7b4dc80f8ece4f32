package models

import "time"

type TestPriority string

const (
	TestPriorityNormal    TestPriority = "Normal"
	TestPriorityUrgent    TestPriority = "Urgent"
	TestPriorityEmergency TestPriority = "Emergency"
)

type TestStatus string

const (
	TestStatusPending    TestStatus = "Pending"
	TestStatusInProgress TestStatus = "InProgress"
	TestStatusCompleted  TestStatus = "Completed"
	TestStatusCancelled  TestStatus = "Cancelled"
)

type Patient struct {
	ID               string      `json:"id" bson:"_id,omitempty"`
	Name             string      `json:"name" bson:"name"`
	RecommendedTests []TestGroup `json:"recommendedTests" bson:"recommendedTests"`
	TimeModel        `bson:",inline"`
}

type TestGroup struct {
	DoctorID        string     `json:"doctorId" bson:"doctorId"`
	DoctorName      string     `json:"doctorName" bson:"doctorName"`
	Specialist      string     `json:"specialist" bson:"specialist"`
	RecommendedDate time.Time  `json:"recommendedDate" bson:"recommendedDate"`
	Diagnosis       string     `json:"diagnosis" bson:"diagnosis"`
	Tests           []TestItem `json:"tests" bson:"tests"`
}

// TestItem is one entry of the patient test ledger. TestID is assigned when
// the ledger entry is created; items written before the identifier existed
// may carry an empty TestID and are matched by (testName, xRay) only.
type TestItem struct {
	TestID        string       `json:"testId,omitempty" bson:"testId,omitempty"`
	TestName      string       `json:"testName" bson:"testName"`
	Category      string       `json:"category" bson:"category"`
	XRay          bool         `json:"xRay" bson:"xRay"`
	Priority      TestPriority `json:"priority" bson:"priority"`
	Instructions  string       `json:"instructions,omitempty" bson:"instructions,omitempty"`
	Notes         string       `json:"notes,omitempty" bson:"notes,omitempty"`
	Status        TestStatus   `json:"status" bson:"status"`
	Result        string       `json:"result,omitempty" bson:"result,omitempty"`
	ResultDate    *time.Time   `json:"resultDate,omitempty" bson:"resultDate,omitempty"`
	CompletedDate *time.Time   `json:"completedDate,omitempty" bson:"completedDate,omitempty"`
	PerformedBy   string       `json:"performedBy,omitempty" bson:"performedBy,omitempty"`
	LabTechnician string       `json:"labTechnician,omitempty" bson:"labTechnician,omitempty"`
}

// FindTestItem returns the group and item indexes of the first ledger entry
// matching the given test name, requiring the xRay flag when wantXray is set.
// Duplicate test names resolve to the first match across all groups.
func (p *Patient) FindTestItem(testName string, wantXray bool) (groupIdx, itemIdx int, found bool) {
	for gi := range p.RecommendedTests {
		for ti := range p.RecommendedTests[gi].Tests {
			item := &p.RecommendedTests[gi].Tests[ti]
			if item.TestName != testName {
				continue
			}
			if wantXray && !item.XRay {
				continue
			}
			return gi, ti, true
		}
	}
	return 0, 0, false
}
