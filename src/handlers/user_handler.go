package handlers

import (
	"net/http"

	db "github.com/aizwal9/Finance-Tracker/src/db/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// GetProfile returns the authenticated user. The password hash is excluded
// via the model's json tag.
func GetProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			log.Errorf("Failed to get user %d: %v", userID, err)
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
