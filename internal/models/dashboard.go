package models

type DashboardSummary struct {
	TotalStockValue float64 `json:"totalStockValue"`
	TodaySales      float64 `json:"todaySales"`
	TotalDue        float64 `json:"totalDue"`
}
