package analytics

import (
	"fmt"
	"strconv"
	"time"
)

const reportTitle = "LocalBook Carlow Analytics Report"

// Rows renders r as an ordered table for file writers. The order is fixed:
// title, timeframe label, generation time, the key metrics block, the
// category table, then the region table. Blank rows separate the blocks.
func Rows(r Report) [][]string {
	m := r.Metrics
	rows := [][]string{
		{reportTitle},
		{"Timeframe", r.Label},
		{"Generated", r.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
		{"Key Metrics"},
		{"Total Bookings", strconv.Itoa(m.TotalBookings)},
		{"New Businesses", strconv.Itoa(m.NewBusinesses)},
		{"New Clients", strconv.Itoa(m.NewClients)},
		{"Carlow Businesses", strconv.Itoa(m.RegionBusinesses)},
		{"Non-Carlow Businesses", strconv.Itoa(m.NonRegionBusinesses)},
		{"Active Businesses", strconv.Itoa(m.ActiveBusinesses)},
		{"Pending Businesses", strconv.Itoa(m.PendingBusinesses)},
		{"Business Growth", percent(m.BusinessGrowth)},
		{"Client Growth", percent(m.ClientGrowth)},
		{"Booking Growth", percent(m.BookingGrowth)},
		{},
		{"Popular Categories"},
		{"Category", "Businesses", "Percentage"},
	}
	rows = appendDistribution(rows, r.CategoryDistribution)

	rows = append(rows,
		[]string{},
		[]string{"Carlow Towns Distribution"},
		[]string{"Town", "Businesses", "Percentage"},
	)
	return appendDistribution(rows, r.RegionDistribution)
}

func appendDistribution(rows [][]string, entries []DistributionEntry) [][]string {
	for _, e := range entries {
		rows = append(rows, []string{e.Label, strconv.Itoa(e.Count), percent(e.Percentage)})
	}
	return rows
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FileName is the suggested download name for an exported report.
func FileName(r Report) string {
	return fmt.Sprintf("LocalBook_Carlow_Analytics_%s_%s.csv", r.Timeframe, r.GeneratedAt.UTC().Format(time.DateOnly))
}
