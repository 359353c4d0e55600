package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platewise/backend/config"
)

// presignTTL bounds how long a signed image link stays valid.
const presignTTL = 15 * time.Minute

// ImageService stores recipe photos in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage uploads image data for a recipe and returns the public
// URL. Keys are unique per upload so re-uploads never clobber each other.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, imageData []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	fileName := fmt.Sprintf("recipe-images/%s/%s", recipeID, uuid.New().String())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)

	return publicURL, nil
}

// PresignedImageURL exchanges a stored recipe image URL for a short-lived
// signed link. Fails if the URL does not point into the recipe bucket.
func (s *ImageService) PresignedImageURL(ctx context.Context, imageURL string) (string, error) {
	prefix := fmt.Sprintf("https://%s.s3.amazonaws.com/", s.s3Config.BucketName)
	key, ok := strings.CutPrefix(imageURL, prefix)
	if !ok || key == "" {
		return "", fmt.Errorf("image URL is not in bucket %s", s.s3Config.BucketName)
	}
	return s.s3Config.GeneratePresignedURL(ctx, key, presignTTL)
}
