package dispatch

import (
	"github.com/spacemeshos/go-subxt/log"
	"github.com/spacemeshos/go-subxt/metrics"
)

const subsystem = "dispatch"

var (
	resolved = metrics.NewCounter(
		"resolved_total",
		subsystem,
		"Number of dispatch errors resolved by runtime error kind",
		[]string{"kind"},
	)
	lookupFailures = metrics.NewCounter(
		"lookup_failures_total",
		subsystem,
		"Number of module errors that could not be resolved against the metadata",
		[]string{},
	).WithLabelValues()
)

// Opt is for changing Resolver during initialization.
type Opt func(*Resolver)

// WithLogger sets logger for Resolver.
func WithLogger(logger log.Log) Opt {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New returns Resolver bound to the metadata of a single runtime version.
func New(md ErrorLookup, opts ...Opt) *Resolver {
	r := &Resolver{
		logger: log.NewNop(),
		md:     md,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolver resolves dispatch errors and reports the outcome to logs and metrics.
type Resolver struct {
	logger log.Log
	md     ErrorLookup
}

// Resolve is Resolve with the metadata of the resolver.
func (r *Resolver) Resolve(err DispatchError) (*RuntimeError, error) {
	rerr, lerr := Resolve(r.md, err)
	if lerr != nil {
		lookupFailures.Inc()
		r.logger.With().Warning("dispatch error not found in metadata",
			log.Stringer("dispatch", err),
			log.Err(lerr),
		)
		return nil, lerr
	}
	resolved.WithLabelValues(rerr.Kind.String()).Inc()
	if err.Kind != Other && rerr.Kind == RuntimeOther {
		r.logger.With().Warning("dispatch error kind resolved to fallback label",
			log.Stringer("dispatch", err),
			log.String("label", rerr.Message),
		)
	} else {
		r.logger.With().Debug("resolved dispatch error",
			log.Stringer("dispatch", err),
			log.Stringer("kind", rerr.Kind),
		)
	}
	return rerr, nil
}

// ResolveBytes parses the wire form of a dispatch error and resolves it.
// Payloads that cannot be decoded resolve as Other errors.
func (r *Resolver) ResolveBytes(raw []byte) (*RuntimeError, error) {
	return r.Resolve(ParseDispatchError(raw))
}
