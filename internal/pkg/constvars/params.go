package constvars

const (
	URLParamPatientID      = "patient_id"
	URLParamLabRecordID    = "lab_record_id"
	URLParamXrayRecordID   = "xray_record_id"
	URLParamWalkInRecordID = "walkin_record_id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamStatus   = "status"
	URLQueryParamDateFrom = "date_from"
	URLQueryParamDateTo   = "date_to"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)
