package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/itsmardochee/Planit-sub003/internal/config"
	"go.uber.org/zap"
)

// NewS3Client builds an S3 client from static credentials. A non-empty
// endpoint overrides the AWS default, which lets the attachment store run
// against S3-compatible services.
func NewS3Client(cfg config.StorageConfig, logger *zap.Logger) (*s3.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("s3 client initialized",
		zap.String("region", cfg.Region),
		zap.String("bucket", cfg.Bucket))

	return client, nil
}
