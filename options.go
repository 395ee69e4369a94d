package variogram

import (
	"github.com/sgostarter/i/l"
)

// Option tunes the pairwise matrix builder.
type Option func(*options)

type options struct {
	workers int
	logger  l.Wrapper
}

// WithWorkers fills matrix columns on n goroutines. n <= 1 fills them in
// order on the calling goroutine, which is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func gatherOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.logger == nil {
		o.logger = l.NewNopLoggerWrapper()
	}
	o.logger = o.logger.WithFields(l.StringField(l.ClsKey, "pairwise"))
	return o
}
