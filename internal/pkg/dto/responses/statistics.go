package responses

// XrayStatistics is the aggregator payload for GET /api/xray/statistics.
// MonthlyThisYear always holds twelve buckets, January first.
type XrayStatistics struct {
	TotalRecords    int            `json:"totalRecords"`
	TotalWalkIns    int            `json:"totalWalkIns"`
	Today           int            `json:"today"`
	ByCategory      map[string]int `json:"byCategory"`
	ByPriority      map[string]int `json:"byPriority"`
	ByTechnician    map[string]int `json:"byTechnician"`
	MonthlyThisYear []int          `json:"monthlyThisYear"`
	Year            int            `json:"year"`
}
