package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ddate_server/models"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user accounts
type UserProfileController struct {
	Accounts *services.AccountService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(accounts *services.AccountService) *UserProfileController {
	return &UserProfileController{Accounts: accounts}
}

// CreateAccount handles creating a new profile from submitted attributes
func (c *UserProfileController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log.Println("CreateAccount called...")

	var attrs models.ProfileAttributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		log.Printf("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID, err := c.Accounts.CreateAccount(r.Context(), callerIdentity(r), attrs)
	if err != nil {
		log.Printf("Failed to create account: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Account created successfully",
		"userId":  userID,
	})
}

// UpdateAccount handles merging a partial attribute patch into a profile
func (c *UserProfileController) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var patch models.ProfileAttributes
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	updated, err := c.Accounts.UpdateAccount(r.Context(), userID, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Account updated successfully",
		"profile": updated,
	})
}

// GetAccount handles fetching a profile by ID
func (c *UserProfileController) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.Accounts.GetAccount(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, profile)
}

// ListAccounts handles listing active profiles one page at a time
func (c *UserProfileController) ListAccounts(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.Accounts.ListAccounts(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

// DeleteAccount handles removing a profile for good
func (c *UserProfileController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.Accounts.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Account deleted successfully",
	})
}

// DeactivateAccount handles flipping a profile to inactive while keeping
// its key reserved
func (c *UserProfileController) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.Accounts.SetInactive(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Account deactivated successfully",
	})
}
