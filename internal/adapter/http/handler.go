package http

import (
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/analytics"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// Services bundles the application services exposed over HTTP.
type Services struct {
	Businesses    *app.BusinessService
	Imports       *app.ImportService
	Analytics     *app.AnalyticsService
	Notifications *app.NotificationService
}

// Register adds all API routes to the Huma API.
func Register(api huma.API, svc Services) {
	registerBusinesses(api, svc.Businesses)
	registerImports(api, svc.Imports)
	registerAnalytics(api, svc.Analytics)
	registerNotifications(api, svc.Notifications)
}

const timestampLayout = "2006-01-02T15:04:05Z"

// formatTimestamp renders t in UTC; the zero time renders as "".
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrBusinessNotFound):
		return huma.Error404NotFound("business not found")
	case errors.Is(err, domain.ErrBusinessExists), errors.Is(err, domain.ErrBusinessRemoved):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, domain.ErrInvalidReason):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, analytics.ErrEmptyDataset):
		return huma.Error404NotFound(err.Error())
	}

	var regionErr *domain.RegionMismatchError
	if errors.As(err, &regionErr) {
		return huma.Error409Conflict(regionErr.Error())
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return huma.Error422UnprocessableEntity(trErr.Error())
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return huma.Error422UnprocessableEntity(vErr.Error())
	}

	var tfErr *analytics.UnknownTimeframeError
	if errors.As(err, &tfErr) {
		return huma.Error422UnprocessableEntity(tfErr.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}
