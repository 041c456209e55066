package crm

import (
	"context"
	"errors"
	"math"
	"time"

	"crm-dashboard/internal/infra/logx"
)

// RetryOptions tunes Retrying.
type RetryOptions struct {
	MaxRetries  int
	BackoffBase time.Duration
	BackoffCap  time.Duration
	// JitterFn adds jitter on top of the exponential delay.
	JitterFn func(base time.Duration, attempt int) time.Duration
	Metrics  *Metrics
}

// DefaultRetryOptions retries twice starting at 100ms.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{MaxRetries: 2, BackoffBase: 100 * time.Millisecond, BackoffCap: 2 * time.Second}
}

// Retrying wraps a Store, retrying calls that fail with ErrUnavailable and
// counting every call in Metrics. AssignVendor and SetLeadStatus are
// idempotent, so writes retry like reads.
type Retrying struct {
	next Store
	opts RetryOptions
}

func NewRetrying(next Store, opts RetryOptions) *Retrying {
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	return &Retrying{next: next, opts: opts}
}

// Metrics returns the counters of this store.
func (r *Retrying) Metrics() *Metrics { return r.opts.Metrics }

func (r *Retrying) List(ctx context.Context, kind Kind) ([]Entity, error) {
	return retry(ctx, r, kind, false, func(ctx context.Context) ([]Entity, error) {
		return r.next.List(ctx, kind)
	})
}

func (r *Retrying) Get(ctx context.Context, kind Kind, id string) (Entity, error) {
	return retry(ctx, r, kind, false, func(ctx context.Context) (Entity, error) {
		return r.next.Get(ctx, kind, id)
	})
}

func (r *Retrying) AssignVendor(ctx context.Context, assetID, vendorID string) (Asset, error) {
	return retry(ctx, r, KindAssets, true, func(ctx context.Context) (Asset, error) {
		return r.next.AssignVendor(ctx, assetID, vendorID)
	})
}

func (r *Retrying) SetLeadStatus(ctx context.Context, leadID, status string) (Lead, error) {
	return retry(ctx, r, KindLeads, true, func(ctx context.Context) (Lead, error) {
		return r.next.SetLeadStatus(ctx, leadID, status)
	})
}

func retry[T any](ctx context.Context, r *Retrying, kind Kind, write bool, call func(context.Context) (T, error)) (T, error) {
	r.opts.Metrics.IncCall(kind, write)
	var (
		out T
		err error
	)
	for attempt := 0; ; attempt++ {
		out, err = call(ctx)
		if err == nil || !errors.Is(err, ErrUnavailable) || attempt >= r.opts.MaxRetries {
			break
		}
		r.opts.Metrics.IncRetry()
		logx.Warnf("crm: %s attempt %d failed: %v", kind, attempt+1, err)
		if werr := r.sleepBackoff(ctx, attempt); werr != nil {
			err = werr
			break
		}
	}
	if err != nil {
		r.opts.Metrics.IncFailure()
	}
	return out, err
}

func (r *Retrying) sleepBackoff(ctx context.Context, attempt int) error {
	base := r.opts.BackoffBase
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	limit := r.opts.BackoffCap
	if limit <= 0 {
		limit = 2 * time.Second
	}
	// exponential backoff: base * 2^attempt
	delay := min(time.Duration(float64(base)*math.Pow(2, float64(attempt))), limit)
	if r.opts.JitterFn != nil {
		delay = min(delay+r.opts.JitterFn(delay, attempt), limit)
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	r.opts.Metrics.AddBackoff(delay)
	return nil
}
