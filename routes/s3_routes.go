package routes

import (
	"ddate_server/controllers"
	"ddate_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for profile image presigning
func RegisterS3Routes(r *mux.Router, s3 *services.S3Service) {
	controller := controllers.NewS3Controller(s3)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/upload-url", controller.GeneratePresignedURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.GetPresignedReadURL).Methods("POST")
}
