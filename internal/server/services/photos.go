package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/clothescatalog/internal/server/config"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
	"github.com/google/uuid"
)

const (
	PhotoUploadValidity     = 15 * time.Minute
	DefaultPhotoContentType = "image/jpeg"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// PhotoUpload tells the caller where to PUT the image and which URL to
// store in photo_url afterwards.
type PhotoUpload struct {
	Key       string
	UploadURL string
	PhotoURL  string
	ExpiresAt time.Time
}

type PhotoService struct {
	config *sc.Config
	now    func() time.Time
}

func NewPhotoService(cfg *sc.Config) *PhotoService {
	return &PhotoService{config: cfg, now: time.Now}
}

// PhotoStorageKey builds a date-partitioned object key.
func PhotoStorageKey(d time.Time, ext string) string {
	d = d.UTC()
	return fmt.Sprintf("clothes/%04d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext)
}

func (s *PhotoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload returns a presigned PUT for a new photo of the given content
// type. An empty content type means image/jpeg; unsupported types fail
// validation.
func (s *PhotoService) PresignUpload(ctx context.Context, contentType string) (*PhotoUpload, error) {
	if contentType == "" {
		contentType = DefaultPhotoContentType
	}
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, validation.Errors{{
			Field:  "content_type",
			Reason: "must be one of image/jpeg, image/png, image/webp",
		}}
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	now := s.now()
	bucket := s.config.S3Bucket
	key := PhotoStorageKey(now, ext)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(PhotoUploadValidity))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &PhotoUpload{
		Key:       key,
		UploadURL: req.URL,
		PhotoURL:  strings.TrimRight(s.config.PhotoBaseURL(), "/") + "/" + key,
		ExpiresAt: now.Add(PhotoUploadValidity),
	}, nil
}
