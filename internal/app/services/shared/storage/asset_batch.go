package storage

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mime/multipart"

	"go.uber.org/zap"
)

// UploadBatch uploads files sequentially into the given folder. If any upload
// fails, every object already uploaded in this batch is deleted before the
// error is returned, so a failed batch leaves no blobs behind. A crash
// between upload and compensation can still orphan a blob; there is no
// transaction with the store.
func UploadBatch(ctx context.Context, log *zap.Logger, store AssetStorage, files []*multipart.FileHeader, folder string) ([]models.ImageAsset, error) {
	assets := make([]models.ImageAsset, 0, len(files))

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			BestEffortDelete(ctx, log, store, assets)
			return nil, err
		}

		uploaded, err := store.Upload(ctx, file, fileHeader, folder)
		file.Close()
		if err != nil {
			BestEffortDelete(ctx, log, store, assets)
			return nil, err
		}

		assets = append(assets, models.ImageAsset{
			URL:        uploaded.URL,
			ExternalID: uploaded.ExternalID,
			Filename:   uploaded.Filename,
		})
	}

	return assets, nil
}

// BestEffortDelete issues one delete call per asset. Failures are logged and
// never propagated; callers proceed regardless.
func BestEffortDelete(ctx context.Context, log *zap.Logger, store AssetStorage, assets []models.ImageAsset) {
	for _, asset := range assets {
		if err := store.Delete(ctx, asset.ExternalID); err != nil {
			log.Error("failed to delete asset from object store",
				zap.String(constvars.LoggingObjectIDKey, asset.ExternalID),
				zap.Error(err),
			)
		}
	}
}
