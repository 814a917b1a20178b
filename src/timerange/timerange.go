// Package timerange implements the relative time windows used to filter
// transactions. The server-side SQL filter and the client-side dashboard
// filter both call Cutoff, so the two cannot drift apart.
package timerange

import (
	"time"

	"github.com/aizwal9/Finance-Tracker/src/models"
)

// Selector names a relative time window ending at "now".
type Selector string

const (
	Week  Selector = "week"
	Month Selector = "month"
	Year  Selector = "year"
	All   Selector = "all"
)

// ParseSelector maps a raw query value to a Selector. Unrecognized values
// fall back to All, which filters nothing.
func ParseSelector(s string) Selector {
	switch Selector(s) {
	case Week, Month, Year:
		return Selector(s)
	default:
		return All
	}
}

// Cutoff returns the earliest instant included in the selector's window.
//
// Month and year windows are calendar-aware, not fixed offsets: AddDate
// normalizes overflow days, so March 31 minus one month lands in early March
// rather than on February 28. All returns the zero time, which sorts before
// any real transaction date.
func Cutoff(now time.Time, sel Selector) time.Time {
	switch sel {
	case Week:
		return now.AddDate(0, 0, -7)
	case Month:
		return now.AddDate(0, -1, 0)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// Filter returns the transactions whose date falls on or after the cutoff
// for the given selector. The boundary is inclusive.
func Filter(now time.Time, sel Selector, txs []models.Transaction) []models.Transaction {
	cutoff := Cutoff(now, sel)
	var filtered []models.Transaction
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
