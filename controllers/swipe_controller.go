package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ddate_server/models"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// SwipeController handles swipe and unmatch requests
type SwipeController struct {
	Swipes *services.SwipeService
}

// NewSwipeController creates a new instance of SwipeController
func NewSwipeController(swipes *services.SwipeService) *SwipeController {
	return &SwipeController{Swipes: swipes}
}

// RecordSwipe handles one left or right swipe between two profiles
func (c *SwipeController) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ActorID   string                `json:"actorId"`
		TargetID  string                `json:"targetId"`
		Direction models.SwipeDirection `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode swipe payload: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.ActorID == "" || payload.TargetID == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if err := c.Swipes.RecordSwipe(r.Context(), payload.ActorID, payload.TargetID, payload.Direction); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Swipe recorded successfully",
	})
}

// RemoveMatches handles tearing down all relationship state for a profile
func (c *SwipeController) RemoveMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.Swipes.RemoveMatches(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Removed all matches for user",
		"userId":  userID,
	})
}
