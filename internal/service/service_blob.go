package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// presignExpiry bounds how long a presigned URL stays usable. Long enough
// for a mobile upload on a slow connection, short enough not to leak.
const presignExpiry = 15 * time.Minute

// blobService implements [BlobService] against an S3-compatible object store
// (MinIO in the docker-compose setup). The server never proxies photo bytes;
// it only signs URLs and lets the client talk to the store directly.
type blobService struct {
	cfg    config.ServerBlobs
	logger *logger.Logger
}

// NewBlobService constructs a [BlobService] from the object-store settings.
func NewBlobService(cfg config.ServerBlobs, logger *logger.Logger) BlobService {
	return &blobService{
		cfg:    cfg,
		logger: logger,
	}
}

// randomStorageKey buckets photo objects by upload date.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *blobService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	if s.cfg.Endpoint == "" || s.cfg.Bucket == "" {
		return nil, ErrBlobStoreNotConfigured
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading object store config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		o.UsePathStyle = true
	})

	return s3.NewPresignClient(client), nil
}

// PresignUpload generates a fresh object key and a presigned PUT URL for it,
// plus the presigned GET URL the client stores on the record after the
// upload succeeds.
func (s *blobService) PresignUpload(ctx context.Context) (models.PresignedUpload, error) {
	log := logger.FromContext(ctx)

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return models.PresignedUpload{}, err
	}

	bucket := s.cfg.Bucket
	key := randomStorageKey()

	putReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Err(err).Str("func", "*blobService.PresignUpload").Msg("error presigning put url")
		return models.PresignedUpload{}, fmt.Errorf("error presigning put url: %w", err)
	}

	getURL, err := s.PresignDownload(ctx, key)
	if err != nil {
		return models.PresignedUpload{}, err
	}

	return models.PresignedUpload{
		Key:    key,
		PutURL: putReq.URL,
		GetURL: getURL,
	}, nil
}

// PresignDownload signs a GET URL for an existing object key.
func (s *blobService) PresignDownload(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return "", ErrInvalidDataProvided
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.cfg.Bucket

	getReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Err(err).Str("func", "*blobService.PresignDownload").Msg("error presigning get url")
		return "", fmt.Errorf("error presigning get url: %w", err)
	}

	return getReq.URL, nil
}
