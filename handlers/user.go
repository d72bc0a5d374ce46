package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/middleware"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/store"
)

// hashPassword generates a bcrypt hash of the plain-text password.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// checkPasswordHash compares a bcrypt password hash with a plain-text password.
func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register handles a new user registration.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("JSON decode error in Register: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := h.Users.CreateUser(req.Username, hashedPassword)
	if errors.Is(err, store.ErrUsernameTaken) {
		http.Error(w, "Username already exists", http.StatusConflict)
		return
	} else if err != nil {
		log.Printf("Store error inserting new user: %v", err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and returns a signed token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("JSON decode error in Login: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Users.UserByUsername(req.Username)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	} else if err != nil {
		log.Printf("Store error retrieving user for login: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	if !checkPasswordHash(req.Password, user.PasswordHash) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := h.Codec.Encode(map[string]any{
		"userId":   user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		log.Printf("Error signing token: %v", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Login successful!", "token": tokenString})
}

// Me echoes the claims the auth middleware decoded from the request token.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.ClaimsKey).(map[string]any)
	if !ok {
		http.Error(w, "Claims not found", http.StatusUnauthorized)
		return
	}

	respondWithJSON(w, http.StatusOK, dataEnvelope{Data: claims})
}
