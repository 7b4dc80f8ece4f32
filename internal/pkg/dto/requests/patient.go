package requests

type RecommendedTestRequest struct {
	TestName     string `json:"testName" validate:"required"`
	Category     string `json:"category" validate:"required"`
	XRay         bool   `json:"xRay"`
	Priority     string `json:"priority,omitempty" validate:"omitempty,priority"`
	Instructions string `json:"instructions,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type AddRecommendedTestsRequest struct {
	DoctorID        string                   `json:"doctorId" validate:"required"`
	DoctorName      string                   `json:"doctorName" validate:"required"`
	Specialist      string                   `json:"specialist,omitempty"`
	RecommendedDate string                   `json:"recommendedDate,omitempty"`
	Diagnosis       string                   `json:"diagnosis,omitempty"`
	Tests           []RecommendedTestRequest `json:"tests" validate:"required,min=1,dive"`
}
