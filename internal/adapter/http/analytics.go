package http

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/analytics"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
)

type DistributionEntryResponse struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage" doc:"Share of the group, one decimal place"`
}

type WindowResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	PreviousStart string `json:"previous_start"`
	PreviousEnd   string `json:"previous_end"`
}

type MetricsResponse struct {
	TotalBookings         int     `json:"total_bookings"`
	NewBusinesses         int     `json:"new_businesses"`
	NewClients            int     `json:"new_clients"`
	PreviousBookings      int     `json:"previous_bookings"`
	PreviousNewBusinesses int     `json:"previous_new_businesses"`
	PreviousNewClients    int     `json:"previous_new_clients"`
	CarlowBusinesses      int     `json:"carlow_businesses"`
	NonCarlowBusinesses   int     `json:"non_carlow_businesses"`
	ActiveBusinesses      int     `json:"active_businesses"`
	PendingBusinesses     int     `json:"pending_businesses"`
	RejectedBusinesses    int     `json:"rejected_businesses"`
	BusinessGrowth        float64 `json:"business_growth"`
	ClientGrowth          float64 `json:"client_growth"`
	BookingGrowth         float64 `json:"booking_growth"`
}

type ReportResponse struct {
	Timeframe            string                      `json:"timeframe"`
	Label                string                      `json:"label"`
	GeneratedAt          string                      `json:"generated_at"`
	Window               WindowResponse              `json:"window"`
	Metrics              MetricsResponse             `json:"metrics"`
	CategoryDistribution []DistributionEntryResponse `json:"category_distribution"`
	RegionDistribution   []DistributionEntryResponse `json:"region_distribution"`
}

func toReportResponse(r analytics.Report) ReportResponse {
	m := r.Metrics
	return ReportResponse{
		Timeframe:   string(r.Timeframe),
		Label:       r.Label,
		GeneratedAt: formatTimestamp(r.GeneratedAt),
		Window: WindowResponse{
			Start:         formatTimestamp(r.Window.Start),
			End:           formatTimestamp(r.Window.End),
			PreviousStart: formatTimestamp(r.Window.PreviousStart),
			PreviousEnd:   formatTimestamp(r.Window.PreviousEnd),
		},
		Metrics: MetricsResponse{
			TotalBookings:         m.TotalBookings,
			NewBusinesses:         m.NewBusinesses,
			NewClients:            m.NewClients,
			PreviousBookings:      m.PreviousBookings,
			PreviousNewBusinesses: m.PreviousNewBusinesses,
			PreviousNewClients:    m.PreviousNewClients,
			CarlowBusinesses:      m.RegionBusinesses,
			NonCarlowBusinesses:   m.NonRegionBusinesses,
			ActiveBusinesses:      m.ActiveBusinesses,
			PendingBusinesses:     m.PendingBusinesses,
			RejectedBusinesses:    m.RejectedBusinesses,
			BusinessGrowth:        m.BusinessGrowth,
			ClientGrowth:          m.ClientGrowth,
			BookingGrowth:         m.BookingGrowth,
		},
		CategoryDistribution: toDistributionResponse(r.CategoryDistribution),
		RegionDistribution:   toDistributionResponse(r.RegionDistribution),
	}
}

func toDistributionResponse(entries []analytics.DistributionEntry) []DistributionEntryResponse {
	out := make([]DistributionEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = DistributionEntryResponse{Label: e.Label, Count: e.Count, Percentage: e.Percentage}
	}
	return out
}

type ReportInput struct {
	Timeframe string `query:"timeframe" required:"false" default:"MONTH" doc:"WEEK, MONTH, YEAR or ALL"`
}

type ReportOutput struct {
	Body ReportResponse
}

type ReportCSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func registerAnalytics(api huma.API, svc *app.AnalyticsService) {
	report := func(ctx context.Context, raw string) (analytics.Report, error) {
		tf, err := analytics.ParseTimeframe(raw)
		if err != nil {
			return analytics.Report{}, err
		}
		return svc.Report(ctx, tf)
	}

	huma.Register(api, huma.Operation{
		OperationID: "analytics-report",
		Method:      http.MethodGet,
		Path:        "/api/v1/analytics/report",
		Summary:     "Compute the platform analytics report",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
		r, err := report(ctx, input.Timeframe)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ReportOutput{Body: toReportResponse(r)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "analytics-report-csv",
		Method:      http.MethodGet,
		Path:        "/api/v1/analytics/report.csv",
		Summary:     "Export the analytics report as CSV",
		Tags:        []string{"Analytics"},
	}, func(ctx context.Context, input *ReportInput) (*ReportCSVOutput, error) {
		r, err := report(ctx, input.Timeframe)
		if err != nil {
			return nil, toHumaError(err)
		}

		body, err := encodeCSV(analytics.Rows(r))
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ReportCSVOutput{
			ContentType:        "text/csv; charset=utf-8",
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", analytics.FileName(r)),
			Body:               body,
		}, nil
	})
}

func encodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}
