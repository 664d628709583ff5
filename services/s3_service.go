package services

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service hands out presigned URLs so clients upload and read profile
// images directly against the bucket.
type S3Service struct {
	Client *s3.Client
	Bucket string
}

// NewS3Service builds an S3 client for the given region and bucket.
func NewS3Service(region, bucket string) *S3Service {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return &S3Service{Client: s3.NewFromConfig(cfg), Bucket: bucket}
}

// GenerateUploadURL generates a presigned URL for uploading a profile image
func (ss *S3Service) GenerateUploadURL(fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + uuid.NewString() + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ss.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignPutObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a profile image
func (ss *S3Service) GenerateReadURL(key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ss.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignGetObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
