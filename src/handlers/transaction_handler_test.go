package handlers

import (
	"encoding/json"
	"testing"
)

func TestTransactionRequestParse(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantAmount float64
	}{
		{"numeric amount", `{"date":"2024-01-02","description":"rent","amount":-950.00,"category":"housing"}`, false, -950},
		{"string amount", `{"date":"2024-01-02","description":"salary","amount":"2500.75","category":"income"}`, false, 2500.75},
		{"rfc3339 date", `{"date":"2024-01-02T15:04:05Z","description":"coffee","amount":"-4.2","category":"food"}`, false, -4.2},
		{"zero amount", `{"date":"2024-01-02","description":"note","amount":0,"category":"misc"}`, false, 0},
		{"string amount with padding", `{"date":"2024-01-02","description":"x","amount":" 12.5 ","category":"misc"}`, false, 12.5},
		{"missing amount", `{"date":"2024-01-02","description":"x","category":"misc"}`, true, 0},
		{"null amount", `{"date":"2024-01-02","description":"x","amount":null,"category":"misc"}`, true, 0},
		{"empty string amount", `{"date":"2024-01-02","description":"x","amount":"","category":"misc"}`, true, 0},
		{"non-numeric amount", `{"date":"2024-01-02","description":"x","amount":"ten","category":"misc"}`, true, 0},
		{"object amount", `{"date":"2024-01-02","description":"x","amount":{"value":1},"category":"misc"}`, true, 0},
		{"bad date", `{"date":"02/01/2024","description":"x","amount":1,"category":"misc"}`, true, 0},
		{"empty description", `{"date":"2024-01-02","description":"  ","amount":1,"category":"misc"}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req transactionRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("failed to decode fixture: %v", err)
			}
			tx, err := req.parse()
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tx.Amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", tx.Amount, tt.wantAmount)
			}
		})
	}
}
