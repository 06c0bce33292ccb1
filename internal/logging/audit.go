package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// AuditLogger writes every applied lifecycle transition to the log.
type AuditLogger struct {
	logger *zap.Logger
}

var _ domain.AuditRecorder = (*AuditLogger)(nil)

// NewAuditLogger returns an audit recorder writing to logger under the "audit" name.
func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.Named("audit")}
}

func (a *AuditLogger) Record(_ context.Context, e domain.AuditEntry) {
	a.logger.Info("business transition",
		zap.String("business_id", e.BusinessID),
		zap.String("event", string(e.Event)),
		zap.String("from", string(e.From)),
		zap.String("to", string(e.To)),
		zap.Bool("override_region", e.OverrideRegion),
		zap.Time("at", e.At),
	)
}
