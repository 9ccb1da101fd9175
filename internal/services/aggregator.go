package services

import (
	"sort"

	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/pkg/utils"
)

// aggregator folds purchases and leads into a report. It is purely
// in-memory and deterministic: the same inputs always produce the same
// report, regardless of the order pages were added in.
type aggregator struct {
	totalSales  float64
	totalOrders int
	customers   map[string]bool
	totalLeads  int

	daily   map[string]float64
	monthly map[string]float64

	products     map[string]*response_models.TopProduct
	productOrder []string

	recent    []response_models.RecentPurchase
	breakdown []response_models.PageStats
}

func newAggregator() *aggregator {
	return &aggregator{
		customers: map[string]bool{},
		daily:     map[string]float64{},
		monthly:   map[string]float64{},
		products:  map[string]*response_models.TopProduct{},
	}
}

// addPage folds one page's transactions in. Cancelled purchases stay out of
// the revenue series and product ranking but still show up in the recent
// feed. A malformed amount reads as zero and cannot poison the totals.
func (a *aggregator) addPage(page *store_models.Page, purchases []store_models.Purchase, leads []store_models.Lead) {
	stats := response_models.PageStats{
		PageID:    page.Ref(),
		PageTitle: page.Title,
		PageSlug:  page.Slug,
		Leads:     len(leads),
	}
	a.totalLeads += len(leads)

	for i := range purchases {
		purchase := &purchases[i]

		a.recent = append(a.recent, response_models.RecentPurchase{
			ID:           purchase.ID,
			PageID:       page.Ref(),
			CustomerName: purchase.CustomerName,
			Total:        purchase.Total,
			Status:       string(purchase.Status),
			CreatedAt:    purchase.CreatedAt,
		})

		if purchase.Status == store_models.PurchaseCancelled {
			continue
		}

		a.totalSales += purchase.Total
		a.totalOrders++
		stats.Sales += purchase.Total
		stats.Orders++

		if id := purchase.CustomerIdentity(); id != "" {
			a.customers[id] = true
		}
		if day := utils.DayKey(purchase.CreatedAt); day != "" {
			a.daily[day] += purchase.Total
		}
		if month := utils.MonthKey(purchase.CreatedAt); month != "" {
			a.monthly[month] += purchase.Total
		}

		// Recorded totals are authoritative: a purchase's line items never
		// contribute more ranked revenue than its total, so discounted or
		// malformed records keep the top-products sum within total sales.
		itemSum := 0.0
		for _, item := range purchase.LineItems {
			itemSum += float64(item.Quantity) * item.UnitPrice
		}
		factor := 1.0
		if itemSum > purchase.Total {
			factor = 0
			if purchase.Total > 0 {
				factor = purchase.Total / itemSum
			}
		}
		for _, item := range purchase.LineItems {
			a.addLineItem(item, factor)
		}
	}

	a.breakdown = append(a.breakdown, stats)
}

func (a *aggregator) addLineItem(item store_models.LineItem, factor float64) {
	key := item.ProductID
	if key == "" {
		key = item.Name
	}
	if key == "" {
		return
	}
	entry, ok := a.products[key]
	if !ok {
		entry = &response_models.TopProduct{
			ProductID: item.ProductID,
			Name:      item.Name,
		}
		a.products[key] = entry
		a.productOrder = append(a.productOrder, key)
	}
	entry.Sales += item.Quantity
	entry.Revenue += factor * float64(item.Quantity) * item.UnitPrice
}

// report finalizes the rollup: recent purchases newest first up to limit,
// products ranked by revenue then units then first-seen order, breakdown
// ranked by sales.
func (a *aggregator) report(recentLimit int) *response_models.AnalyticsReport {
	sort.SliceStable(a.recent, func(i, j int) bool {
		if a.recent[i].CreatedAt.Equal(a.recent[j].CreatedAt) {
			return a.recent[i].ID < a.recent[j].ID
		}
		return a.recent[i].CreatedAt.After(a.recent[j].CreatedAt)
	})
	recent := a.recent
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	top := make([]response_models.TopProduct, 0, len(a.productOrder))
	for _, key := range a.productOrder {
		top = append(top, *a.products[key])
	}
	// Stable sort over the first-seen slice keeps first-seen order for
	// full ties.
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}
		return top[i].Sales > top[j].Sales
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}

	breakdown := a.breakdown
	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].Sales != breakdown[j].Sales {
			return breakdown[i].Sales > breakdown[j].Sales
		}
		return breakdown[i].PageID < breakdown[j].PageID
	})

	return &response_models.AnalyticsReport{
		TotalSales:      a.totalSales,
		TotalOrders:     a.totalOrders,
		TotalCustomers:  len(a.customers),
		TotalLeads:      a.totalLeads,
		DailySales:      a.daily,
		MonthlySales:    a.monthly,
		TopProducts:     top,
		RecentPurchases: recent,
		PageBreakdown:   breakdown,
	}
}
