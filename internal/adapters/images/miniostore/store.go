package miniostore

import (
	"context"
	"fmt"
	"path"
	"time"

	"pet-adoption/internal/ports/images"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store guarda las imágenes en un bucket MinIO/S3 bajo <resource>/<nombre>.
// La referencia devuelta es solo el nombre, igual que en el store de disco.
type Store struct {
	client *minio.Client
	bucket string
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New conecta con MinIO y crea el bucket si no existe.
func New(ctx context.Context, opts Options) (*Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &Store{client: client, bucket: opts.Bucket}, nil
}

func objectKey(resource images.Resource, name string) string {
	return path.Join(string(resource), name)
}

func (s *Store) Save(ctx context.Context, resource images.Resource, up images.Upload) (string, error) {
	if err := images.ValidateExtension(up.Filename); err != nil {
		return "", err
	}

	size := up.Size
	if size <= 0 {
		size = -1
	}
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	name := images.NewName(up.Filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey(resource, name), up.Body, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return name, nil
}
