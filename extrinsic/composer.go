package extrinsic

import (
	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/log"
	"github.com/spacemeshos/go-subxt/metrics"
)

const subsystem = "extrinsic"

var composed = metrics.NewCounter(
	"composed_total",
	subsystem,
	"Number of composed calls by call name and result",
	[]string{"call", "result"},
)

// Opt is for changing Composer during initialization.
type Opt func(*Composer)

// WithLogger sets logger for Composer.
func WithLogger(logger log.Log) Opt {
	return func(c *Composer) {
		c.logger = logger
	}
}

// New returns Composer bound to the metadata of a single runtime version.
func New(md CallIndexLookup, opts ...Opt) *Composer {
	c := &Composer{
		logger: log.NewNop(),
		md:     md,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Composer builds calls whose indices are resolved by name.
type Composer struct {
	logger log.Log
	md     CallIndexLookup
}

// Compose is Compose with the metadata of the composer.
func (c *Composer) Compose(pallet, call string, args ...codec.Encodable) (*Call, error) {
	rst, err := Compose(c.md, pallet, call, args...)
	return c.report(pallet, call, rst, err)
}

// Batch wraps calls into Utility.batch. The runtime stops at the first failed call
// and reverts the ones executed before it.
func (c *Composer) Batch(calls []Call) (*Call, error) {
	batch := Batch{Calls: calls}
	rst, err := Compose(c.md, UtilityPallet, UtilityBatch, &batch)
	return c.report(UtilityPallet, UtilityBatch, rst, err, log.Int("calls", len(calls)))
}

// ForceBatch wraps calls into Utility.force_batch. The runtime keeps executing
// calls after a failed one.
func (c *Composer) ForceBatch(calls []Call) (*Call, error) {
	batch := Batch{Calls: calls}
	rst, err := Compose(c.md, UtilityPallet, UtilityForceBatch, &batch)
	return c.report(UtilityPallet, UtilityForceBatch, rst, err, log.Int("calls", len(calls)))
}

// BatchPayoutStakers wraps payout calls into Utility.batch.
// Indices of the payout calls are used as given, only Utility.batch is looked up.
func (c *Composer) BatchPayoutStakers(calls []PayoutCall) (*Call, error) {
	batch := BatchPayout{Calls: calls}
	rst, err := Compose(c.md, UtilityPallet, UtilityBatch, &batch)
	return c.report(UtilityPallet, UtilityBatch, rst, err, log.Int("payouts", len(calls)))
}

func (c *Composer) report(pallet, call string, rst *Call, err error, fields ...log.LoggableField) (*Call, error) {
	name := pallet + "." + call
	if err != nil {
		composed.WithLabelValues(name, "failed").Inc()
		c.logger.With().Warning("failed to compose call",
			append([]log.LoggableField{log.String("call", name), log.Err(err)}, fields...)...,
		)
		return nil, err
	}
	composed.WithLabelValues(name, "ok").Inc()
	c.logger.With().Debug("composed call",
		append([]log.LoggableField{log.String("call", name), rst.Index, log.Int("args", len(rst.Args))}, fields...)...,
	)
	return rst, nil
}
