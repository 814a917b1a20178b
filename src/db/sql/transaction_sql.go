package db

import (
	"context"
	"fmt"
	"time"

	cache "github.com/aizwal9/Finance-Tracker/src/db"
	"github.com/aizwal9/Finance-Tracker/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, date, description, amount, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, description, amount, category, created_at
	`

	var created models.Transaction
	err := pool.QueryRow(ctx, query,
		uuid.NewString(),
		tx.UserID,
		tx.Date,
		tx.Description,
		tx.Amount,
		tx.Category,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.Description,
		&created.Amount,
		&created.Category,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	cache.ClearTransactionCaches(tx.UserID)
	return &created, nil
}

// GetTransactionsSince returns one user's transactions dated on or after the
// cutoff, newest first. Results are cached per (user, selector); selector is
// only the cache key, the cutoff does the filtering.
func GetTransactionsSince(ctx context.Context, pool *pgxpool.Pool, userID int64, cutoff time.Time, selector string) ([]models.Transaction, error) {
	cacheKey := cache.TransactionCacheKey(userID, selector)
	if cached, found := cache.GetTransactionCache(cacheKey); found {
		if txs, ok := cached.([]models.Transaction); ok {
			return txs, nil
		}
	}

	query := `
		SELECT id, user_id, date, description, amount, category, created_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.Description, &tx.Amount, &tx.Category, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cache.SetTransactionCache(userID, cacheKey, transactions)
	return transactions, nil
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID int64, tx *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET date = $1, description = $2, amount = $3, category = $4
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, date, description, amount, category, created_at
	`

	var updated models.Transaction
	err := pool.QueryRow(ctx, query,
		tx.Date,
		tx.Description,
		tx.Amount,
		tx.Category,
		tx.ID,
		userID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Date,
		&updated.Description,
		&updated.Amount,
		&updated.Category,
		&updated.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	cache.ClearTransactionCaches(userID)
	return &updated, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID int64, transactionID string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}

	cache.ClearTransactionCaches(userID)
	return nil
}
