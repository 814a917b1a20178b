package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aizwal9/Finance-Tracker/src/analytics"
	db "github.com/aizwal9/Finance-Tracker/src/db/sql"
	"github.com/aizwal9/Finance-Tracker/src/models"
	"github.com/aizwal9/Finance-Tracker/src/timerange"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// transactionRequest is the submission body. Amount arrives as entered text
// from the form, so it may be a JSON number or a quoted string; either is
// coerced server-side.
type transactionRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
}

func (req *transactionRequest) parse() (*models.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	return &models.Transaction{
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// parseAmount accepts a JSON number or a numeric JSON string; anything else
// (null, objects, non-numeric text) is rejected.
func parseAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("amount is required")
	}

	var amount float64
	if err := json.Unmarshal(raw, &amount); err == nil {
		return amount, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("invalid amount")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

// GetTransactions lists the authenticated user's transactions, newest first,
// filtered by the optional timeRange query parameter. The cutoff comes from
// the same timerange package the client filters with.
func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		sel := timerange.ParseSelector(r.URL.Query().Get("timeRange"))
		cutoff := timerange.Cutoff(time.Now(), sel)

		transactions, err := db.GetTransactionsSince(r.Context(), pool, userID, cutoff, string(sel))
		if err != nil {
			log.Errorf("Failed to get transactions for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch transactions")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, transactions)
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("Failed to decode create transaction request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		tx, err := req.parse()
		if err != nil {
			log.Errorf("Invalid transaction submission from user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		tx.UserID = userID

		created, err := db.CreateTransaction(r.Context(), pool, tx)
		if err != nil {
			log.Errorf("Failed to create transaction for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to add transaction")
			return
		}

		log.Infof("Created transaction %s for user %d", created.ID, userID)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactionID := chi.URLParam(r, "transaction_id")

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("Failed to decode update transaction request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		tx, err := req.parse()
		if err != nil {
			log.Errorf("Invalid transaction update from user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		tx.ID = transactionID

		updated, err := db.UpdateTransaction(r.Context(), pool, userID, tx)
		if err != nil {
			log.Errorf("Failed to update transaction %s for user %d: %v", transactionID, userID, err)
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}

		log.Infof("Updated transaction %s for user %d", updated.ID, userID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactionID := chi.URLParam(r, "transaction_id")

		if err := db.DeleteTransaction(r.Context(), pool, userID, transactionID); err != nil {
			log.Errorf("Failed to delete transaction %s for user %d: %v", transactionID, userID, err)
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}

		log.Infof("Deleted transaction %s for user %d", transactionID, userID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
	}
}

// GetTransactionSummary computes daily buckets and headline totals
// server-side over the same filtered window the list endpoint uses.
func GetTransactionSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		sel := timerange.ParseSelector(r.URL.Query().Get("timeRange"))
		cutoff := timerange.Cutoff(time.Now(), sel)

		transactions, err := db.GetTransactionsSince(r.Context(), pool, userID, cutoff, string(sel))
		if err != nil {
			log.Errorf("Failed to get transactions for summary, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch transactions")
			return
		}

		buckets := analytics.DailyBuckets(transactions)
		if buckets == nil {
			buckets = []models.DailyBucket{}
		}

		writeJSON(w, http.StatusOK, struct {
			models.Summary
			Buckets []models.DailyBucket `json:"buckets"`
		}{
			Summary: analytics.Summarize(transactions),
			Buckets: buckets,
		})
	}
}
