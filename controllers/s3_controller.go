package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"ddate_server/services"
)

// S3Controller handles presigned URL requests for profile images
type S3Controller struct {
	S3 *services.S3Service
}

// NewS3Controller creates a new instance of S3Controller
func NewS3Controller(s3 *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3}
}

// GeneratePresignedURL generates a presigned URL for image uploads
func (c *S3Controller) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	url, key, err := c.S3.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		http.Error(w, "Failed to generate pre-signed URL", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"url": url, "fileName": key})
}

// GetPresignedReadURL generates a presigned URL for reading an image
func (c *S3Controller) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, err := c.S3.GenerateReadURL(payload.Key)
	if err != nil {
		log.Printf("Error generating read URL: %v", err)
		http.Error(w, "Failed to generate read URL", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"url": url})
}
