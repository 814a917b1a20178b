package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aizwal9/Finance-Tracker/src/config"
	db "github.com/aizwal9/Finance-Tracker/src/db/sql"
	"github.com/aizwal9/Finance-Tracker/src/models"
	"github.com/aizwal9/Finance-Tracker/src/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func Register(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("Failed to decode register request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = util.NormalizeEmail(req.Email)

		if req.Name == "" || req.Password == "" || !util.ValidateEmail(req.Email) {
			log.Errorf("Registration validation failed - email: %s", req.Email)
			writeError(w, http.StatusBadRequest, "name, email and password are required")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Errorf("Failed to hash password for %s: %v", req.Email, err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		user, err := db.CreateUser(r.Context(), pool, req.Name, req.Email, hashedPassword)
		if err != nil {
			// A duplicate email lands here too. It is deliberately not
			// distinguished from other store failures.
			log.Errorf("Failed to create user %s: %v", req.Email, err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		log.Infof("Successful registration - user: %d, email: %s", user.ID, user.Email)
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "User registered successfully",
		})
	}
}

func Login(pool *pgxpool.Pool, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("Failed to decode login request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		// A missing user and a wrong password produce the same response, so
		// the endpoint cannot be used to probe which emails are registered.
		user, err := db.GetUserByEmail(r.Context(), pool, util.NormalizeEmail(req.Email))
		if err != nil {
			log.Errorf("Failed login - email: %s: %v", req.Email, err)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
			log.Errorf("Invalid password attempt for %s from %s", req.Email, r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"exp":     time.Now().Add(cfg.TokenTTL).Unix(),
		})

		tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			log.Errorf("Failed to sign token for user %d: %v", user.ID, err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		log.Infof("Successful login - user: %d", user.ID)
		writeJSON(w, http.StatusOK, map[string]string{
			"token": tokenString,
		})
	}
}
