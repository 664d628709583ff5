package routes

import (
	"ddate_server/controllers"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match queries
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/{profileId}", controller.FindMatches).Methods("GET")
}
