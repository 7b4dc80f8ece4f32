package requests

import "mime/multipart"

// ImageAssetPatch patches image metadata on update. When the request carries
// no new files, existing external ids are preserved positionally by index.
type ImageAssetPatch struct {
	Note     string `json:"note,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type CreateXrayRecordRequest struct {
	PatientID     string `validate:"required"`
	PatientName   string `validate:"required"`
	TestName      string `validate:"required"`
	Category      string `validate:"required"`
	Diagnosis     string
	PerformedBy   string
	PerformedDate string
	Priority      string `validate:"omitempty,priority"`
	Status        string `validate:"omitempty,record_status"`

	// Files is validated after the text fields above so a missing-file error
	// never masks a missing-field error.
	Files []*multipart.FileHeader
}

type UpdateXrayRecordRequest struct {
	PatientName   string
	TestName      string
	Category      string
	Diagnosis     string
	PerformedBy   string
	PerformedDate string
	Priority      string `validate:"omitempty,priority"`
	Status        string `validate:"omitempty,record_status"`

	Records []ImageAssetPatch
	Files   []*multipart.FileHeader
}
