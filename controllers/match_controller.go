package controllers

import (
	"net/http"

	"ddate_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles match queries
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new instance of MatchController
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// FindMatches handles fetching one page of mutually-right-swiped profiles
func (c *MatchController) FindMatches(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileId"]

	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.Matches.FindMatches(r.Context(), profileID, page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}
