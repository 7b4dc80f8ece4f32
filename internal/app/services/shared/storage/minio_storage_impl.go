package storage

import (
	"context"
	"io"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"mime/multipart"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient        *minio.Client
	BucketName         string
	PresignedURLExpiry time.Duration
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) AssetStorage {
	return &minioStorage{
		MinioClient:        minioClient,
		BucketName:         driverConfig.Minio.BucketName,
		PresignedURLExpiry: time.Duration(internalConfig.App.PresignedURLExpiryInHours) * time.Hour,
	}
}

func (m *minioStorage) Upload(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (*Asset, error) {
	objectName := utils.GenerateObjectName(folder, fileHeader.Filename)
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, m.PresignedURLExpiry, nil)
	if err != nil {
		return nil, exceptions.ErrMinioPresignObject(err, objectName)
	}

	return &Asset{
		URL:        presignedURL.String(),
		ExternalID: objectName,
		Filename:   fileHeader.Filename,
	}, nil
}

func (m *minioStorage) Delete(ctx context.Context, externalID string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, externalID, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, externalID)
	}
	return nil
}
