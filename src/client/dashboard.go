package client

import (
	"context"
	"sync"
	"time"

	"github.com/aizwal9/Finance-Tracker/src/analytics"
	"github.com/aizwal9/Finance-Tracker/src/models"
	"github.com/aizwal9/Finance-Tracker/src/timerange"
)

// Dashboard mirrors the browser dashboard: it holds the fetched transaction
// list and the selected time range, and derives chart buckets and totals
// from them on demand.
//
// Refresh calls may overlap when the selector changes quickly. Each request
// carries a monotonic sequence number and a response from anything but the
// latest issued request is discarded, so a slow old response can never
// overwrite newer state.
type Dashboard struct {
	client *Client
	now    func() time.Time

	mu           sync.Mutex
	timeRange    timerange.Selector
	transactions []models.Transaction
	seq          uint64
	applied      uint64
}

// NewDashboard starts with the default week window; the selector is not
// persisted anywhere.
func NewDashboard(c *Client) *Dashboard {
	return &Dashboard{
		client:    c,
		now:       time.Now,
		timeRange: timerange.Week,
	}
}

func (d *Dashboard) TimeRange() timerange.Selector {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeRange
}

// SetTimeRange changes the selected window. The caller refreshes afterwards;
// derived views over the old list already use the new window in the
// meantime.
func (d *Dashboard) SetTimeRange(sel timerange.Selector) {
	d.mu.Lock()
	d.timeRange = sel
	d.mu.Unlock()
}

// Refresh re-fetches the transaction list for the current window. Stale
// responses are dropped.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	sel := d.timeRange
	d.mu.Unlock()

	transactions, err := d.client.Transactions(ctx, sel)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq < d.seq || seq <= d.applied {
		// A newer request was issued or already applied while this one was
		// in flight.
		return nil
	}
	d.applied = seq
	d.transactions = transactions
	return nil
}

// Transactions returns a copy of the current list.
func (d *Dashboard) Transactions() []models.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Transaction, len(d.transactions))
	copy(out, d.transactions)
	return out
}

// Buckets filters the held list by the current window and groups it into
// daily buckets for the chart.
func (d *Dashboard) Buckets() []models.DailyBucket {
	txs, sel := d.snapshot()
	return analytics.DailyBuckets(timerange.Filter(d.now(), sel, txs))
}

// Summary computes the headline totals over the same filtered list the
// buckets are built from.
func (d *Dashboard) Summary() models.Summary {
	txs, sel := d.snapshot()
	return analytics.Summarize(timerange.Filter(d.now(), sel, txs))
}

// Submit validates the draft, persists it, and re-fetches the list so every
// derived view recomputes over the authoritative set. The draft is left
// untouched on failure, so the caller can correct and resubmit it.
func (d *Dashboard) Submit(ctx context.Context, draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if _, err := d.client.Submit(ctx, draft); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

func (d *Dashboard) snapshot() ([]models.Transaction, timerange.Selector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transactions, d.timeRange
}
