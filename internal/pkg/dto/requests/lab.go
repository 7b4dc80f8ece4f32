package requests

type LabParameterRequest struct {
	Parameter   string `json:"parameter" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Unit        string `json:"unit,omitempty"`
	NormalRange string `json:"normalRange,omitempty"`
	Flag        string `json:"flag,omitempty" validate:"omitempty,oneof=Normal High Low Critical"`
	Notes       string `json:"notes,omitempty"`
}

type CreateLabRecordRequest struct {
	PatientID     string                `json:"patientId" validate:"required"`
	PatientName   string                `json:"patientName" validate:"required"`
	TestName      string                `json:"testName" validate:"required"`
	Category      string                `json:"category" validate:"required"`
	Diagnosis     string                `json:"diagnosis,omitempty"`
	PerformedBy   string                `json:"performedBy,omitempty"`
	PerformedDate string                `json:"performedDate,omitempty"`
	Priority      string                `json:"priority,omitempty" validate:"omitempty,priority"`
	Status        string                `json:"status,omitempty" validate:"omitempty,record_status"`
	Parameters    []LabParameterRequest `json:"parameters" validate:"dive"`
}

type UpdateLabRecordRequest struct {
	PatientName   string                `json:"patientName,omitempty"`
	TestName      string                `json:"testName,omitempty"`
	Category      string                `json:"category,omitempty"`
	Diagnosis     string                `json:"diagnosis,omitempty"`
	PerformedBy   string                `json:"performedBy,omitempty"`
	PerformedDate string                `json:"performedDate,omitempty"`
	Priority      string                `json:"priority,omitempty" validate:"omitempty,priority"`
	Status        string                `json:"status,omitempty" validate:"omitempty,record_status"`
	Parameters    []LabParameterRequest `json:"parameters,omitempty" validate:"omitempty,dive"`
}
