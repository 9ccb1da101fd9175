package response_models

import "time"

// AnalyticsReport is the rollup returned by both analytics entrypoints.
// Series maps are keyed by ISO date ("2006-01-02") and year-month
// ("2006-01") in UTC.
type AnalyticsReport struct {
	PageID  string `json:"pageId,omitempty"`
	OwnerID string `json:"ownerId,omitempty"`

	TotalPages     int     `json:"totalPages,omitempty"`
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalLeads     int     `json:"totalLeads"`

	DailySales   map[string]float64 `json:"dailySales"`
	MonthlySales map[string]float64 `json:"monthlySales"`

	TopProducts     []TopProduct     `json:"topProducts"`
	RecentPurchases []RecentPurchase `json:"recentPurchases"`

	// Owner-wide reports only.
	PageBreakdown []PageStats `json:"pageBreakdown,omitempty"`

	// Partial marks a best-effort report where one or more per-page fetches
	// failed; FailedPages lists them.
	Partial     bool     `json:"partial,omitempty"`
	FailedPages []string `json:"failedPages,omitempty"`
}

type TopProduct struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

type RecentPurchase struct {
	ID           string    `json:"id"`
	PageID       string    `json:"pageId,omitempty"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PageStats struct {
	PageID    string  `json:"pageId"`
	PageTitle string  `json:"pageTitle"`
	PageSlug  string  `json:"pageSlug"`
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	Leads     int     `json:"leads"`
}
