package table

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/chevcast/poker-engine/evaluator"
)

// Option configures a Table during creation.
type Option func(*Table)

// WithRand sets the RNG used for shuffling. Tests pass a seeded source for
// deterministic decks; the default is time-seeded. The shuffle is uniform
// but not cryptographically secure; callers needing fairness guarantees
// should inject a vetted source.
func WithRand(rng *rand.Rand) Option {
	return func(t *Table) {
		t.rng = rng
	}
}

// WithEvaluator sets the hand evaluator. Defaults to evaluator.New().
func WithEvaluator(eval evaluator.Evaluator) Option {
	return func(t *Table) {
		t.eval = eval
	}
}

// WithLogger sets the logger for hand lifecycle debug logging. The default
// is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Table) {
		t.log = log
	}
}

// WithEventBus sets the bus game events are published to. Delivery is
// synchronous; without a bus no events are published.
func WithEventBus(bus EventBus) Option {
	return func(t *Table) {
		t.bus = bus
	}
}

// WithAutoMoveDealer controls whether the dealer button advances
// automatically on every deal from the second hand onward. Default true.
func WithAutoMoveDealer(auto bool) Option {
	return func(t *Table) {
		t.autoMoveDealer = auto
	}
}

// WithDebug permits duplicate player ids, for exercising multi-seat
// scenarios from a single driver. Default false.
func WithDebug(debug bool) Option {
	return func(t *Table) {
		t.debug = debug
	}
}

// WithSeatCount sets the seat capacity. Default DefaultSeatCount.
func WithSeatCount(n int) Option {
	return func(t *Table) {
		t.seats = make([]*Player, n)
	}
}

func newSeed() int64 {
	return time.Now().UnixNano()
}
