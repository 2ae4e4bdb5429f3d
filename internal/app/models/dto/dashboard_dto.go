package dto

// DashboardStatsResponse maps named metrics to numbers; the set of keys
// depends on the caller's role.
type DashboardStatsResponse struct {
	Role  string             `json:"role" example:"ADMIN"`
	Stats map[string]float64 `json:"stats"`
}
