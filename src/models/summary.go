package models

// DailyBucket holds aggregated income and expense totals for one calendar
// day. Date is the UTC day rendered as YYYY-MM-DD. Expenses are stored as
// positive numbers.
type DailyBucket struct {
	Date     string  `json:"date"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Summary holds the three headline totals over a filtered transaction set.
type Summary struct {
	TotalBalance  float64 `json:"total_balance"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}
