package routes

import (
	"ddate_server/controllers"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe and unmatch operations
func RegisterSwipeRoutes(r *mux.Router, swipes *services.SwipeService) {
	controller := controllers.NewSwipeController(swipes)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()

	swipeRouter.HandleFunc("", controller.RecordSwipe).Methods("POST")
	swipeRouter.HandleFunc("/{userId}/matches", controller.RemoveMatches).Methods("DELETE")
}
