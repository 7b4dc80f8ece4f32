package requests

import "mime/multipart"

type CreateWalkInRecordRequest struct {
	PatientName   string `validate:"required"`
	TestName      string `validate:"required"`
	Category      string `validate:"required"`
	Diagnosis     string
	PerformedBy   string
	PerformedDate string
	Priority      string `validate:"omitempty,priority"`
	Status        string `validate:"omitempty,record_status"`

	Files []*multipart.FileHeader
}

type UpdateWalkInRecordRequest struct {
	PatientName   string
	TestName      string
	Category      string
	Diagnosis     string
	PerformedBy   string
	PerformedDate string
	Priority      string `validate:"omitempty,priority"`
	Status        string `validate:"omitempty,record_status"`

	Images []ImageAssetPatch
	Files  []*multipart.FileHeader
}
