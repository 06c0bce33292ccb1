package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// BusinessResponse is the API representation of a business.
type BusinessResponse struct {
	ID              string `json:"id" doc:"Unique identifier"`
	Name            string `json:"name" doc:"Display name"`
	Status          string `json:"status" doc:"Lifecycle state" enum:"PENDING,ACTIVE,REJECTED"`
	Category        string `json:"category,omitempty"`
	Town            string `json:"town,omitempty"`
	LocationText    string `json:"location_text,omitempty"`
	AddressText     string `json:"address_text,omitempty"`
	PostalPrefix    string `json:"postal_prefix,omitempty" doc:"Eircode routing key"`
	OwnerID         string `json:"owner_id"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	RejectedAt      string `json:"rejected_at,omitempty" doc:"Rejection timestamp (ISO 8601)"`
	InRegion        bool   `json:"in_region" doc:"Whether the business lies in County Carlow"`
	CreatedAt       string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt       string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toBusinessResponse(b domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:              b.ID,
		Name:            b.Name,
		Status:          string(b.Status),
		Category:        b.Category,
		Town:            b.Town,
		LocationText:    b.LocationText,
		AddressText:     b.AddressText,
		PostalPrefix:    b.PostalPrefix,
		OwnerID:         b.OwnerID,
		RejectionReason: b.RejectionReason,
		RejectedAt:      formatTimestamp(b.RejectedAt),
		InRegion:        domain.IsInRegion(b),
		CreatedAt:       formatTimestamp(b.CreatedAt),
		UpdatedAt:       formatTimestamp(b.UpdatedAt),
	}
}

// --- Register Business ---

type RegisterBusinessInput struct {
	Body struct {
		Name         string `json:"name" minLength:"1" maxLength:"255" doc:"Display name"`
		OwnerID      string `json:"owner_id" minLength:"1" doc:"Owning user"`
		Category     string `json:"category,omitempty" maxLength:"100"`
		Town         string `json:"town,omitempty" maxLength:"100"`
		LocationText string `json:"location_text,omitempty" maxLength:"255"`
		AddressText  string `json:"address_text,omitempty" maxLength:"255"`
		PostalPrefix string `json:"postal_prefix,omitempty" maxLength:"8"`
	}
}

type BusinessOutput struct {
	Body BusinessResponse
}

// --- Get Business ---

type GetBusinessInput struct {
	ID string `path:"id" doc:"Business ID"`
}

// --- List Businesses ---

type ListBusinessesInput struct {
	Status string `query:"status" required:"false" doc:"Filter by status (PENDING, ACTIVE, REJECTED)"`
	Limit  int    `query:"limit" required:"false" default:"50" minimum:"0" maximum:"500" doc:"Max results"`
	Offset int    `query:"offset" required:"false" default:"0" minimum:"0" doc:"Pagination offset"`
}

type ListBusinessesOutput struct {
	Body []BusinessResponse
}

// --- Eligibility ---

type EligibilityResponse struct {
	BusinessID  string `json:"business_id"`
	InRegion    bool   `json:"in_region"`
	RegionLabel string `json:"region_label" doc:"Normalized town, location, or Unknown"`
}

type EligibilityOutput struct {
	Body EligibilityResponse
}

// --- Transition ---

type TransitionInput struct {
	ID   string `path:"id" doc:"Business ID"`
	Body struct {
		Event          string `json:"event" doc:"Lifecycle event to trigger" enum:"approve,reject,reactivate,delete"`
		OverrideRegion bool   `json:"override_region,omitempty" doc:"Approve even when the business is outside Carlow"`
		Reason         string `json:"reason,omitempty" maxLength:"1000" doc:"Required for reject"`
	}
}

type TransitionResponse struct {
	Business      BusinessResponse `json:"business" doc:"New state, or the last state when removed"`
	Removed       bool             `json:"removed"`
	Notifications int              `json:"notifications" doc:"Notifications queued for the owner"`
}

type TransitionOutput struct {
	Body TransitionResponse
}

func registerBusinesses(api huma.API, svc *app.BusinessService) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-business",
		Method:        http.MethodPost,
		Path:          "/api/v1/businesses",
		Summary:       "Register a new business for review",
		Tags:          []string{"Businesses"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *RegisterBusinessInput) (*BusinessOutput, error) {
		b, err := svc.Register(ctx, app.RegisterInput{
			Name:         input.Body.Name,
			OwnerID:      input.Body.OwnerID,
			Category:     input.Body.Category,
			Town:         input.Body.Town,
			LocationText: input.Body.LocationText,
			AddressText:  input.Body.AddressText,
			PostalPrefix: input.Body.PostalPrefix,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &BusinessOutput{Body: toBusinessResponse(b)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-business",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}",
		Summary:     "Get a business by ID",
		Tags:        []string{"Businesses"},
	}, func(ctx context.Context, input *GetBusinessInput) (*BusinessOutput, error) {
		b, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &BusinessOutput{Body: toBusinessResponse(b)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-businesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses",
		Summary:     "List businesses, newest first",
		Tags:        []string{"Businesses"},
	}, func(ctx context.Context, input *ListBusinessesInput) (*ListBusinessesOutput, error) {
		filter := domain.ListFilter{
			Limit:  input.Limit,
			Offset: input.Offset,
		}
		if input.Status != "" {
			s := domain.Status(strings.ToUpper(input.Status))
			if !s.Valid() {
				return nil, toHumaError(&domain.ValidationError{Field: "status", Reason: "unknown status " + input.Status})
			}
			filter.Status = &s
		}

		businesses, err := svc.List(ctx, filter)
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]BusinessResponse, len(businesses))
		for i, b := range businesses {
			resp[i] = toBusinessResponse(b)
		}
		return &ListBusinessesOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "business-eligibility",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}/eligibility",
		Summary:     "Check whether a business is in the served region",
		Tags:        []string{"Businesses"},
	}, func(ctx context.Context, input *GetBusinessInput) (*EligibilityOutput, error) {
		e, err := svc.Eligibility(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &EligibilityOutput{Body: EligibilityResponse{
			BusinessID:  e.BusinessID,
			InRegion:    e.InRegion,
			RegionLabel: e.RegionLabel,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "transition-business",
		Method:      http.MethodPost,
		Path:        "/api/v1/businesses/{id}/events",
		Summary:     "Trigger a lifecycle event",
		Tags:        []string{"Businesses"},
	}, func(ctx context.Context, input *TransitionInput) (*TransitionOutput, error) {
		out, err := svc.Transition(ctx, input.ID, domain.Command{
			Event:          domain.Event(input.Body.Event),
			OverrideRegion: input.Body.OverrideRegion,
			Reason:         input.Body.Reason,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &TransitionOutput{Body: TransitionResponse{
			Business:      toBusinessResponse(out.Business),
			Removed:       out.Removed,
			Notifications: len(out.Notifications),
		}}, nil
	})
}
