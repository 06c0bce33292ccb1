package app

import (
	"time"

	"go.uber.org/zap"
)

// Option configures optional collaborators of the services.
type Option func(*options)

type options struct {
	now    func() time.Time
	logger *zap.Logger
	locks  *KeyedLocks
}

func defaultOptions() options {
	return options{
		now:    time.Now,
		logger: zap.NewNop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.locks == nil {
		o.locks = NewKeyedLocks()
	}
	return o
}

// WithClock overrides the time source. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLocks shares per-business locks between services so that imports
// and transitions on the same id never interleave.
func WithLocks(locks *KeyedLocks) Option {
	return func(o *options) {
		if locks != nil {
			o.locks = locks
		}
	}
}
