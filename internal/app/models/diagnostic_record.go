package models

import "time"

type ParameterFlag string

const (
	ParameterFlagNormal   ParameterFlag = "Normal"
	ParameterFlagHigh     ParameterFlag = "High"
	ParameterFlagLow      ParameterFlag = "Low"
	ParameterFlagCritical ParameterFlag = "Critical"
)

// ImageAsset references a binary held by the external object store. The
// record owns only the reference; the blob is released by an explicit
// delete against ExternalID.
type ImageAsset struct {
	URL        string `json:"url" bson:"url"`
	ExternalID string `json:"externalId" bson:"externalId"`
	Note       string `json:"note,omitempty" bson:"note,omitempty"`
	Filename   string `json:"filename,omitempty" bson:"filename,omitempty"`
}

type LabParameter struct {
	Parameter   string        `json:"parameter" bson:"parameter"`
	Value       string        `json:"value" bson:"value"`
	Unit        string        `json:"unit,omitempty" bson:"unit,omitempty"`
	NormalRange string        `json:"normalRange,omitempty" bson:"normalRange,omitempty"`
	Flag        ParameterFlag `json:"flag,omitempty" bson:"flag,omitempty"`
	Notes       string        `json:"notes,omitempty" bson:"notes,omitempty"`
}

// DiagnosticRecordBase carries the fields shared by the lab and X-ray
// variants. PatientID is a soft reference; existence is checked at the
// boundary, never enforced by the store.
type DiagnosticRecordBase struct {
	PatientID     string       `json:"patientId" bson:"patientId"`
	PatientName   string       `json:"patientName" bson:"patientName"`
	TestName      string       `json:"testName" bson:"testName"`
	Category      string       `json:"category" bson:"category"`
	Diagnosis     string       `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	PerformedBy   string       `json:"performedBy,omitempty" bson:"performedBy,omitempty"`
	PerformedDate *time.Time   `json:"performedDate,omitempty" bson:"performedDate,omitempty"`
	Priority      TestPriority `json:"priority,omitempty" bson:"priority,omitempty"`
	Status        TestStatus   `json:"status" bson:"status"`
}

type LabRecord struct {
	ID                   string `json:"id" bson:"_id,omitempty"`
	DiagnosticRecordBase `bson:",inline"`
	Parameters           []LabParameter `json:"parameters" bson:"parameters"`
	TimeModel            `bson:",inline"`
}

type XrayRecord struct {
	ID                   string `json:"id" bson:"_id,omitempty"`
	DiagnosticRecordBase `bson:",inline"`
	Records              []ImageAsset `json:"records" bson:"records"`
	TimeModel            `bson:",inline"`
}
