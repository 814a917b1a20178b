// Package analytics turns a flat transaction list into chart-ready daily
// buckets and headline totals.
//
// Day bucketing uses UTC calendar days throughout: the day key is the
// transaction date converted to UTC and rendered as YYYY-MM-DD, and the same
// key is used for grouping and for ordering. Picking one zone and applying it
// everywhere is what keeps transactions near midnight from splitting or
// merging depending on where they were recorded.
package analytics

import (
	"sort"
	"time"

	"github.com/aizwal9/Finance-Tracker/src/models"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the UTC calendar day a timestamp belongs to.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// DailyBuckets groups transactions into one bucket per distinct UTC calendar
// day, ordered by ascending date. Positive amounts accumulate into Income,
// negative amounts into Expenses as absolute values. A zero amount creates
// the day's bucket but adds to neither field.
func DailyBuckets(txs []models.Transaction) []models.DailyBucket {
	grouped := make(map[string]*models.DailyBucket)
	for _, tx := range txs {
		key := DayKey(tx.Date)
		bucket, ok := grouped[key]
		if !ok {
			bucket = &models.DailyBucket{Date: key}
			grouped[key] = bucket
		}
		switch {
		case tx.Amount > 0:
			bucket.Income += tx.Amount
		case tx.Amount < 0:
			bucket.Expenses += -tx.Amount
		}
	}

	buckets := make([]models.DailyBucket, 0, len(grouped))
	for _, bucket := range grouped {
		buckets = append(buckets, *bucket)
	}
	// YYYY-MM-DD keys sort chronologically as plain strings.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

// Summarize computes the headline totals over the same filtered list the
// buckets are built from. A zero amount contributes to the balance only.
func Summarize(txs []models.Transaction) models.Summary {
	var s models.Summary
	for _, tx := range txs {
		s.TotalBalance += tx.Amount
		switch {
		case tx.Amount > 0:
			s.TotalIncome += tx.Amount
		case tx.Amount < 0:
			s.TotalExpenses += -tx.Amount
		}
	}
	return s
}
