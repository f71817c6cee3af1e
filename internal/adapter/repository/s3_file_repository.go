package repository

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"go.uber.org/zap"
)

type s3FileRepository struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	logger        *zap.Logger
}

// NewS3FileRepository creates an S3-backed attachment store. Objects are
// private; downloads go through presigned URLs only.
func NewS3FileRepository(client *s3.Client, bucketName string, logger *zap.Logger) domainRepo.FileRepository {
	return &s3FileRepository{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucketName:    bucketName,
		logger:        logger,
	}
}

func (r *s3FileRepository) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           s3types.ObjectCannedACLPrivate,
	}

	if _, err := r.client.PutObject(ctx, putInput); err != nil {
		r.logger.Error("failed to upload file to s3",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to upload file to s3: %w", err)
	}
	return nil
}

func (r *s3FileRepository) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	getObjectInput := &s3.GetObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(key),
	}

	presignResult, err := r.presignClient.PresignGetObject(ctx, getObjectInput, s3.WithPresignExpires(expiry))
	if err != nil {
		r.logger.Error("failed to generate presigned url",
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate presigned url: %w", err)
	}
	return presignResult.URL, nil
}

func (r *s3FileRepository) Delete(ctx context.Context, key string) error {
	deleteInput := &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(key),
	}

	if _, err := r.client.DeleteObject(ctx, deleteInput); err != nil {
		r.logger.Error("failed to delete file from s3",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to delete file from s3: %w", err)
	}
	return nil
}
