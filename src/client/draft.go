package client

import (
	"fmt"
	"strconv"
	"strings"
)

// Draft is a user-entered, not-yet-persisted transaction. Fields hold the
// raw form text; Amount is only parsed during validation.
type Draft struct {
	Date        string
	Description string
	Amount      string
	Category    string
}

// Validate checks that all four fields are present and that the amount is
// numeric. It runs before any network call, so a bad draft never leaves the
// client.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if strings.TrimSpace(d.Amount) == "" {
		return fmt.Errorf("amount is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(d.Amount), 64); err != nil {
		return fmt.Errorf("amount must be a number")
	}
	return nil
}
