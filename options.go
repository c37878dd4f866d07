package integral

type options struct {
	logger  *Logger
	metrics MetricsCollector
	strict  bool
}

// Option configures Scanner behavior.
//
// Today options primarily exist to keep the absorbing contract
// observable (logging) or enforceable (strict mode) without widening
// the Scanner API.
type Option func(*options)

// WithLogger configures structured logging for absorbed parse failures.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for scan
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithStrict makes the Scanner surface absorbed parse failures as
// errors that stop the scan, instead of yielding zero or clamped
// values. The underlying parse semantics are unchanged.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
