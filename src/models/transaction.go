package models

import "time"

// Transaction is a single financial event. Amount is signed: positive is
// income, negative is an expense.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
