package models

import "time"

// WalkInXrayRecord is an X-ray result for a patient that is not registered
// in the patients collection. WalkInID is self-issued on creation.
type WalkInXrayRecord struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	WalkInID      string       `json:"walkInId" bson:"walkInId"`
	PatientName   string       `json:"patientName" bson:"patientName"`
	TestName      string       `json:"testName" bson:"testName"`
	Category      string       `json:"category" bson:"category"`
	Diagnosis     string       `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	PerformedBy   string       `json:"performedBy,omitempty" bson:"performedBy,omitempty"`
	PerformedDate *time.Time   `json:"performedDate,omitempty" bson:"performedDate,omitempty"`
	Priority      TestPriority `json:"priority,omitempty" bson:"priority,omitempty"`
	Status        TestStatus   `json:"status" bson:"status"`
	Images        []ImageAsset `json:"images" bson:"images"`
	TimeModel     `bson:",inline"`
}
