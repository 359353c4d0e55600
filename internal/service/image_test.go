package service

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/config"
)

// newTestImageService signs against static credentials; presigning needs no
// network so the URLs can be checked offline.
func newTestImageService() *ImageService {
	client := s3.New(s3.Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test-access", "test-secret", ""),
	})
	return NewImageService(&config.S3Config{Client: client, BucketName: "platewise-test-bucket"})
}

func TestPresignedImageURL(t *testing.T) {
	svc := newTestImageService()

	stored := "https://platewise-test-bucket.s3.amazonaws.com/recipe-images/abc/def"
	url, err := svc.PresignedImageURL(context.Background(), stored)
	require.NoError(t, err)
	assert.Contains(t, url, "recipe-images/abc/def")
	assert.Contains(t, url, "X-Amz-Signature")
}

func TestPresignedImageURLOutsideBucket(t *testing.T) {
	svc := newTestImageService()

	_, err := svc.PresignedImageURL(context.Background(), "https://elsewhere.example.com/photo.png")
	assert.Error(t, err)

	_, err = svc.PresignedImageURL(context.Background(), "")
	assert.Error(t, err)
}
