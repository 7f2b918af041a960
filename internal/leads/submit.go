package leads

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultDelay = 400 * time.Millisecond

// ErrSubmissionPending is returned when Submit is called while an earlier
// submission on the same Submitter has not resolved yet.
var ErrSubmissionPending = errors.New("leads: submission already in progress")

type Receipt struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

type Option func(*Submitter)

func WithDelay(d time.Duration) Option {
	return func(s *Submitter) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithAfter replaces time.After, letting tests resolve the delay by hand.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Submitter) { s.after = after }
}

func WithNow(now func() time.Time) Option { return func(s *Submitter) { s.now = now } }

func WithLogger(l *zap.Logger) Option { return func(s *Submitter) { s.log = l } }

// Submitter acknowledges leads after a fixed delay. One submission may be in
// flight at a time.
type Submitter struct {
	delay    time.Duration
	after    func(time.Duration) <-chan time.Time
	now      func() time.Time
	log      *zap.Logger
	inFlight atomic.Bool
	accepted atomic.Int64
}

func NewSubmitter(opts ...Option) *Submitter {
	s := &Submitter{
		delay: DefaultDelay,
		after: time.After,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates l and, if it is well formed, waits out the simulated
// network delay before acknowledging it. Validation failures return
// immediately without touching the in-flight slot.
func (s *Submitter) Submit(ctx context.Context, l Lead) (Receipt, error) {
	if err := Validate(l); err != nil {
		s.log.Debug("lead rejected", zap.Error(err))
		return Receipt{}, err
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug("duplicate lead submission ignored", zap.String("email", l.Email))
		return Receipt{}, ErrSubmissionPending
	}
	defer s.inFlight.Store(false)

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-s.after(s.delay):
	}

	r := Receipt{ID: uuid.New(), Email: l.Email, At: s.now()}
	s.accepted.Add(1)
	s.log.Info("lead accepted", zap.String("id", r.ID.String()), zap.String("email", r.Email))
	return r, nil
}

func (s *Submitter) Pending() bool { return s.inFlight.Load() }

// Accepted counts acknowledged submissions since the Submitter was created.
func (s *Submitter) Accepted() int64 { return s.accepted.Load() }
