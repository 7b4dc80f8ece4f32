package xrays

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/app/services/shared/storage"
	"mediflow-service/internal/app/services/shared/syncqueue"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssetStorage struct {
	uploads int
	failAt  int
	deleted []string
}

func (f *fakeAssetStorage) Upload(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (*storage.Asset, error) {
	f.uploads++
	if f.failAt > 0 && f.uploads == f.failAt {
		return nil, errors.New("object store unavailable")
	}
	externalID := fmt.Sprintf("%s/obj-%d", folder, f.uploads)
	return &storage.Asset{
		URL:        "https://store.local/" + externalID,
		ExternalID: externalID,
		Filename:   fileHeader.Filename,
	}, nil
}

func (f *fakeAssetStorage) Delete(ctx context.Context, externalID string) error {
	f.deleted = append(f.deleted, externalID)
	return nil
}

type fakeXrayRepository struct {
	records   map[string]*models.XrayRecord
	insertErr error
	updateErr error
}

func newFakeXrayRepository() *fakeXrayRepository {
	return &fakeXrayRepository{records: make(map[string]*models.XrayRecord)}
}

func (f *fakeXrayRepository) CreateXrayRecord(ctx context.Context, record *models.XrayRecord) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	record.ID = fmt.Sprintf("rec-%d", len(f.records)+1)
	f.records[record.ID] = record
	return record.ID, nil
}

func (f *fakeXrayRepository) FindByID(ctx context.Context, recordID string) (*models.XrayRecord, error) {
	record, ok := f.records[recordID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeXrayRepository) FindAll(ctx context.Context, query *requests.ListRecordsQuery) ([]models.XrayRecord, int, error) {
	out := make([]models.XrayRecord, 0, len(f.records))
	for _, record := range f.records {
		out = append(out, *record)
	}
	return out, len(out), nil
}

func (f *fakeXrayRepository) UpdateXrayRecord(ctx context.Context, record *models.XrayRecord) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.records[record.ID]; !ok {
		return exceptions.ErrRecordNotFound(nil)
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeXrayRepository) DeleteByID(ctx context.Context, recordID string) error {
	if _, ok := f.records[recordID]; !ok {
		return exceptions.ErrRecordNotFound(nil)
	}
	delete(f.records, recordID)
	return nil
}

func (f *fakeXrayRepository) CountAll(ctx context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeXrayRepository) CountCreatedInRange(ctx context.Context, from, to time.Time) (int, error) {
	count := 0
	for _, record := range f.records {
		if !record.CreatedAt.Before(from) && record.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeXrayRepository) CountCreatedSince(ctx context.Context, from time.Time) (int, error) {
	count := 0
	for _, record := range f.records {
		if !record.CreatedAt.Before(from) {
			count++
		}
	}
	return count, nil
}

func (f *fakeXrayRepository) CountGroupedBy(ctx context.Context, field string) (map[string]int, error) {
	grouped := make(map[string]int)
	for _, record := range f.records {
		switch field {
		case "category":
			grouped[record.Category]++
		case "priority":
			grouped[string(record.Priority)]++
		case "performedBy":
			grouped[record.PerformedBy]++
		}
	}
	return grouped, nil
}

type fakeSynchronizer struct {
	labRecords  []*models.LabRecord
	xrayRecords []*models.XrayRecord
}

func (f *fakeSynchronizer) SyncLabRecord(ctx context.Context, record *models.LabRecord) {
	f.labRecords = append(f.labRecords, record)
}

func (f *fakeSynchronizer) SyncXrayRecord(ctx context.Context, record *models.XrayRecord) {
	f.xrayRecords = append(f.xrayRecords, record)
}

func (f *fakeSynchronizer) Apply(ctx context.Context, task *syncqueue.Task) error {
	return nil
}

type fakeCache struct {
	values  map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.values, key)
	return nil
}

// makeFileHeaders builds real multipart file headers so fileHeader.Open
// works inside the upload batch.
func makeFileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile(constvars.MultipartImagesField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[constvars.MultipartImagesField]
}

func newXrayUsecaseFixture() (*fakeXrayRepository, *fakeAssetStorage, *fakeSynchronizer, *fakeCache, XrayUsecase) {
	repo := newFakeXrayRepository()
	store := &fakeAssetStorage{}
	synchronizer := &fakeSynchronizer{}
	cacheRepo := newFakeCache()
	usecase := NewXrayUsecase(zap.NewNop(), repo, store, synchronizer, cacheRepo)
	return repo, store, synchronizer, cacheRepo, usecase
}

func validCreateXrayRequest(files []*multipart.FileHeader) *requests.CreateXrayRecordRequest {
	return &requests.CreateXrayRecordRequest{
		PatientID:   "patient-1",
		PatientName: "Jane Roe",
		TestName:    "Chest X-Ray",
		Category:    "Chest",
		PerformedBy: "Tech Sari",
		Files:       files,
	}
}

func TestCreateXrayRecord(t *testing.T) {
	t.Run("uploads every file and syncs the ledger", func(t *testing.T) {
		repo, store, synchronizer, cacheRepo, usecase := newXrayUsecaseFixture()
		files := makeFileHeaders(t, "front.png", "side.png")

		record, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(files))
		require.NoError(t, err)

		assert.Len(t, record.Records, 2)
		assert.Equal(t, 2, store.uploads)
		assert.Empty(t, store.deleted)
		assert.Equal(t, models.TestStatusCompleted, record.Status)
		assert.Equal(t, models.TestPriorityNormal, record.Priority)
		assert.Len(t, repo.records, 1)
		require.Len(t, synchronizer.xrayRecords, 1)
		assert.Equal(t, record.ID, synchronizer.xrayRecords[0].ID)
		assert.Contains(t, cacheRepo.deleted, constvars.RedisKeyXrayStatistics)
	})

	t.Run("text validation runs before any upload", func(t *testing.T) {
		_, store, _, _, usecase := newXrayUsecaseFixture()
		request := validCreateXrayRequest(makeFileHeaders(t, "front.png"))
		request.PatientID = ""

		_, err := usecase.CreateXrayRecord(context.Background(), request)
		require.Error(t, err)
		assert.Zero(t, store.uploads, "validation failure must not reach the object store")
	})

	t.Run("rejects an empty file set", func(t *testing.T) {
		_, store, _, _, usecase := newXrayUsecaseFixture()

		_, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(nil))
		require.Error(t, err)
		assert.Zero(t, store.uploads)
	})

	t.Run("rejects batches above the file cap", func(t *testing.T) {
		_, store, _, _, usecase := newXrayUsecaseFixture()
		names := make([]string, constvars.MaxUploadFilesPerRequest+1)
		for i := range names {
			names[i] = fmt.Sprintf("img-%d.png", i)
		}

		_, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(makeFileHeaders(t, names...)))
		require.Error(t, err)
		assert.Zero(t, store.uploads)
	})

	t.Run("mid-batch upload failure compensates earlier uploads", func(t *testing.T) {
		repo, store, _, _, usecase := newXrayUsecaseFixture()
		store.failAt = 3

		_, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(makeFileHeaders(t, "a.png", "b.png", "c.png")))
		require.Error(t, err)

		assert.Len(t, store.deleted, 2, "both successful uploads must be deleted")
		assert.Empty(t, repo.records)
	})

	t.Run("insert failure deletes the uploaded batch", func(t *testing.T) {
		repo, store, synchronizer, _, usecase := newXrayUsecaseFixture()
		repo.insertErr = errors.New("mongo down")

		_, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(makeFileHeaders(t, "a.png", "b.png")))
		require.Error(t, err)

		assert.Len(t, store.deleted, 2)
		assert.Empty(t, synchronizer.xrayRecords, "a record that was never stored must not sync")
	})
}

func TestUpdateXrayRecord(t *testing.T) {
	seed := func(t *testing.T, repo *fakeXrayRepository, store *fakeAssetStorage, usecase XrayUsecase) *models.XrayRecord {
		t.Helper()
		record, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(makeFileHeaders(t, "old-1.png", "old-2.png")))
		require.NoError(t, err)
		return record
	}

	t.Run("replacement uploads new files then deletes the old set", func(t *testing.T) {
		repo, store, _, _, usecase := newXrayUsecaseFixture()
		record := seed(t, repo, store, usecase)
		oldIDs := []string{record.Records[0].ExternalID, record.Records[1].ExternalID}

		updated, err := usecase.UpdateXrayRecord(context.Background(), record.ID, &requests.UpdateXrayRecordRequest{
			Files: makeFileHeaders(t, "new-1.png"),
		})
		require.NoError(t, err)

		assert.Len(t, updated.Records, 1)
		assert.Equal(t, "new-1.png", updated.Records[0].Filename)
		assert.ElementsMatch(t, oldIDs, store.deleted, "old assets are deleted only after the record write")
	})

	t.Run("metadata patch keeps external ids", func(t *testing.T) {
		repo, store, _, _, usecase := newXrayUsecaseFixture()
		record := seed(t, repo, store, usecase)

		updated, err := usecase.UpdateXrayRecord(context.Background(), record.ID, &requests.UpdateXrayRecordRequest{
			Records: []requests.ImageAssetPatch{
				{Note: "lateral view", Filename: "renamed.png"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, record.Records[0].ExternalID, updated.Records[0].ExternalID)
		assert.Equal(t, "lateral view", updated.Records[0].Note)
		assert.Equal(t, "renamed.png", updated.Records[0].Filename)
		assert.Equal(t, record.Records[1].Note, updated.Records[1].Note, "unpatched entries stay untouched")
		assert.Empty(t, store.deleted, "a metadata patch must not touch the object store")
	})

	t.Run("unknown record returns not found", func(t *testing.T) {
		_, _, _, _, usecase := newXrayUsecaseFixture()

		_, err := usecase.UpdateXrayRecord(context.Background(), "missing", &requests.UpdateXrayRecordRequest{})
		require.Error(t, err)
	})
}

func TestDeleteXrayRecord(t *testing.T) {
	t.Run("deletes each asset then the record", func(t *testing.T) {
		repo, store, _, cacheRepo, usecase := newXrayUsecaseFixture()
		record, err := usecase.CreateXrayRecord(context.Background(), validCreateXrayRequest(makeFileHeaders(t, "a.png", "b.png", "c.png")))
		require.NoError(t, err)

		err = usecase.DeleteXrayRecord(context.Background(), record.ID)
		require.NoError(t, err)

		assert.Len(t, store.deleted, 3, "one delete call per stored asset")
		assert.Empty(t, repo.records)
		assert.Contains(t, cacheRepo.deleted, constvars.RedisKeyXrayStatistics)
	})

	t.Run("unknown record returns not found", func(t *testing.T) {
		_, store, _, _, usecase := newXrayUsecaseFixture()

		err := usecase.DeleteXrayRecord(context.Background(), "missing")
		require.Error(t, err)
		assert.Empty(t, store.deleted)
	})
}
