package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Lab record messages
	LabRecordCreatedSuccess = "lab record created successfully"
	LabRecordGetSuccess     = "get lab record successfully"
	LabRecordListSuccess    = "get lab records successfully"
	LabRecordUpdatedSuccess = "lab record updated successfully"
	LabRecordDeletedSuccess = "lab record deleted successfully"

	// X-ray record messages
	XrayRecordCreatedSuccess = "x-ray record created successfully"
	XrayRecordGetSuccess     = "get x-ray record successfully"
	XrayRecordListSuccess    = "get x-ray records successfully"
	XrayRecordUpdatedSuccess = "x-ray record updated successfully"
	XrayRecordDeletedSuccess = "x-ray record deleted successfully"
	XrayStatisticsGetSuccess = "get x-ray statistics successfully"

	// Walk-in record messages
	WalkInRecordCreatedSuccess = "walk-in record created successfully"
	WalkInRecordGetSuccess     = "get walk-in record successfully"
	WalkInRecordListSuccess    = "get walk-in records successfully"
	WalkInRecordUpdatedSuccess = "walk-in record updated successfully"
	WalkInRecordDeletedSuccess = "walk-in record deleted successfully"

	// Patient messages
	PatientGetSuccess          = "get patient successfully"
	RecommendedTestsAddSuccess = "recommended tests added successfully"
)
