package requests

import "time"

// ListRecordsQuery carries the shared list filters parsed from the query
// string. Zero values mean "no filter".
type ListRecordsQuery struct {
	Search   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
