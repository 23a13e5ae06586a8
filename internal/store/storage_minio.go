package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	octetStream = "application/octet-stream"

	bucketAlreadyOwnedByYou = "BucketAlreadyOwnedByYou"
)

// minioFileStorage keeps every file of one location as an object of a
// single bucket.
type minioFileStorage struct {
	client   *minio.Client
	bucket   string
	location models.Location
}

// NewMinioClient builds a MinIO client for an S3-compatible endpoint. It
// does not contact the server.
func NewMinioClient(cfg config.S3) (*minio.Client, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid s3 endpoint: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	return client, nil
}

// NewMinioFileStorage returns a [FileStorage] that stores files of location
// in bucket.
func NewMinioFileStorage(client *minio.Client, bucket string, location models.Location) FileStorage {
	return &minioFileStorage{
		client:   client,
		bucket:   bucket,
		location: location,
	}
}

func (s *minioFileStorage) Prepare(ctx context.Context) error {
	log := logger.FromContext(ctx)

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		log.Err(err).Str("func", "minioFileStorage.Prepare").Str("bucket", s.bucket).Msg("error checking bucket")
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}
	if exists {
		return nil
	}

	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != bucketAlreadyOwnedByYou {
		log.Err(err).Str("func", "minioFileStorage.Prepare").Str("bucket", s.bucket).Msg("error creating bucket")
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	log.Info().Str("bucket", s.bucket).Msg("bucket created")
	return nil
}

func (s *minioFileStorage) Save(ctx context.Context, file models.StoredFile) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		file.Name,
		bytes.NewReader(file.Content),
		int64(file.Size()),
		minio.PutObjectOptions{ContentType: octetStream},
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "minioFileStorage.Save").
			Str("bucket", s.bucket).
			Str("object", file.Name).
			Msg("error putting object")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}

func (s *minioFileStorage) Load(ctx context.Context, name string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		log.Debug().Err(err).Str("func", "minioFileStorage.Load").Str("object", name).Msg("error getting object")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer obj.Close()

	// GetObject is lazy: Stat surfaces a missing object or bad credentials.
	if _, err = obj.Stat(); err != nil {
		log.Debug().Err(err).Str("func", "minioFileStorage.Load").Str("object", name).Msg("error stating object")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	content, err := io.ReadAll(obj)
	if err != nil {
		log.Err(err).Str("func", "minioFileStorage.Load").Str("object", name).Msg("error reading object")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return models.StoredFile{
		Name:     name,
		Content:  content,
		Location: s.location,
	}, nil
}

func (s *minioFileStorage) Location() models.Location {
	return s.location
}

// normaliseEndpoint accepts either "minio:9000" or "http(s)://minio:9000"
// and returns the host:port part plus whether TLS must be used.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}
