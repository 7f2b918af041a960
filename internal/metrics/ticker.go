package metrics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/responsiv/internal/sim"
)

const DefaultInterval = time.Second

// Clock creates tickers. Tests substitute a manual one.
type Clock interface {
	NewTicker(d time.Duration) (<-chan time.Time, func())
}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type TickerOption func(*Ticker)

func WithClock(c Clock) TickerOption { return func(t *Ticker) { t.clock = c } }

func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

func WithLogger(l *zap.Logger) TickerOption { return func(t *Ticker) { t.log = l } }

// Ticker owns a Generator and advances it on a fixed interval. At most one
// loop runs at a time: SetQuality and Stop join the running loop before
// returning.
type Ticker struct {
	interval time.Duration
	clock    Clock
	log      *zap.Logger

	genMu sync.Mutex
	gen   *Generator

	lifeMu sync.Mutex
	parent context.Context
	cancel context.CancelFunc
	done   chan struct{}

	updates chan []float64
}

func NewTicker(gen *Generator, opts ...TickerOption) *Ticker {
	t := &Ticker{
		interval: DefaultInterval,
		clock:    realClock{},
		log:      zap.NewNop(),
		gen:      gen,
		updates:  make(chan []float64, 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start reseeds the series for q and launches the periodic loop. A loop that
// is already running is stopped first.
func (t *Ticker) Start(ctx context.Context, q sim.Quality) {
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()
	t.stopLocked()
	t.parent = ctx
	t.startLocked(q)
}

// SetQuality reseeds the series. If the loop is running it is restarted so
// the old trend never leaks into the new series.
func (t *Ticker) SetQuality(q sim.Quality) {
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()
	if !t.runningLocked() {
		t.reseed(q)
		return
	}
	t.stopLocked()
	t.startLocked(q)
}

func (t *Ticker) Stop() {
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()
	t.stopLocked()
}

// Running reports whether the loop is live. A loop whose parent context was
// cancelled counts as stopped.
func (t *Ticker) Running() bool {
	t.lifeMu.Lock()
	defer t.lifeMu.Unlock()
	return t.runningLocked()
}

func (t *Ticker) runningLocked() bool {
	if t.cancel == nil {
		return false
	}
	select {
	case <-t.done:
		t.cancel()
		t.cancel, t.done = nil, nil
		return false
	default:
		return true
	}
}

// Step advances the series once, outside the clock.
func (t *Ticker) Step() []float64 {
	t.genMu.Lock()
	t.gen.Tick()
	series := t.gen.Series()
	t.genMu.Unlock()
	t.publish(series)
	return series
}

func (t *Ticker) Series() []float64 {
	t.genMu.Lock()
	defer t.genMu.Unlock()
	return t.gen.Series()
}

func (t *Ticker) Quality() sim.Quality {
	t.genMu.Lock()
	defer t.genMu.Unlock()
	return t.gen.Quality()
}

// Updates delivers the latest series after every reseed and tick. Only the
// newest snapshot is kept if the reader falls behind.
func (t *Ticker) Updates() <-chan []float64 { return t.updates }

func (t *Ticker) reseed(q sim.Quality) {
	t.genMu.Lock()
	t.gen.Seed(q)
	series := t.gen.Series()
	t.genMu.Unlock()
	t.log.Debug("metrics reseeded", zap.Stringer("quality", q), zap.Int("points", len(series)))
	t.publish(series)
}

func (t *Ticker) startLocked(q sim.Quality) {
	t.reseed(q)
	parent := t.parent
	if parent == nil {
		parent = context.Background()
	}
	if parent.Err() != nil {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	c, stop := t.clock.NewTicker(t.interval)
	go func() {
		defer close(done)
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c:
				t.Step()
			}
		}
	}()
}

func (t *Ticker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel, t.done = nil, nil
}

func (t *Ticker) publish(series []float64) {
	select {
	case <-t.updates:
	default:
	}
	select {
	case t.updates <- series:
	default:
	}
}
