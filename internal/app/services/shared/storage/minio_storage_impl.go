package storage

import (
	"context"
	"io"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadObject creates the bucket on first use and stores the object under objectName.
func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	info, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return info.Key, nil
}
