package http

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// ImportBusiness accepts every legacy business shape; unknown fields are ignored.
type ImportBusiness struct {
	_ struct{} `json:"-" additionalProperties:"true"`
	domain.RawBusiness
}

// ImportUser accepts a user export record.
type ImportUser struct {
	_ struct{} `json:"-" additionalProperties:"true"`
	domain.RawUser
}

// ImportBooking accepts a booking record. Prices arrive as JSON numbers.
type ImportBooking struct {
	_               struct{}   `json:"-" additionalProperties:"true"`
	ID              string     `json:"id"`
	BusinessID      string     `json:"businessId,omitempty"`
	PriceAtBooking  float64    `json:"priceAtBooking,omitempty"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

func (b ImportBooking) raw() domain.RawBooking {
	return domain.RawBooking{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		Price:           decimal.NewFromFloat(b.PriceAtBooking),
		AppointmentDate: b.AppointmentDate,
		Date:            b.Date,
		CreatedAt:       b.CreatedAt,
	}
}

type ImportInput struct {
	Body struct {
		Businesses []ImportBusiness `json:"businesses,omitempty"`
		Users      []ImportUser     `json:"users,omitempty"`
		Bookings   []ImportBooking  `json:"bookings,omitempty"`
	}
}

type ImportIssueResponse struct {
	Kind   string `json:"kind" enum:"business,user,booking"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type ImportResponse struct {
	Businesses int                   `json:"businesses"`
	Users      int                   `json:"users"`
	Bookings   int                   `json:"bookings"`
	Skipped    []ImportIssueResponse `json:"skipped"`
}

type ImportOutput struct {
	Body ImportResponse
}

func registerImports(api huma.API, svc *app.ImportService) {
	huma.Register(api, huma.Operation{
		OperationID: "import-records",
		Method:      http.MethodPost,
		Path:        "/api/v1/imports",
		Summary:     "Import businesses, users and bookings in legacy formats",
		Tags:        []string{"Imports"},
	}, func(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
		var batch app.ImportBatch
		for _, b := range input.Body.Businesses {
			batch.Businesses = append(batch.Businesses, b.RawBusiness)
		}
		for _, u := range input.Body.Users {
			batch.Users = append(batch.Users, u.RawUser)
		}
		for _, b := range input.Body.Bookings {
			batch.Bookings = append(batch.Bookings, b.raw())
		}

		res, err := svc.Import(ctx, batch)
		if err != nil {
			return nil, toHumaError(err)
		}

		skipped := make([]ImportIssueResponse, len(res.Skipped))
		for i, s := range res.Skipped {
			skipped[i] = ImportIssueResponse{Kind: s.Kind, ID: s.ID, Reason: s.Reason}
		}
		return &ImportOutput{Body: ImportResponse{
			Businesses: res.Businesses,
			Users:      res.Users,
			Bookings:   res.Bookings,
			Skipped:    skipped,
		}}, nil
	})
}
