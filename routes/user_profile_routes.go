package routes

import (
	"ddate_server/controllers"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for account operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, accounts *services.AccountService) {
	controller := controllers.NewUserProfileController(accounts)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreateAccount).Methods("POST")
	profileRouter.HandleFunc("", controller.ListAccounts).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.GetAccount).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdateAccount).Methods("PATCH")
	profileRouter.HandleFunc("/{userId}", controller.DeleteAccount).Methods("DELETE")
	profileRouter.HandleFunc("/{userId}/deactivate", controller.DeactivateAccount).Methods("POST")
}
