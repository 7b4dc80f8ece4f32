package labs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mediflow-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLabTestServer() (*fakeLabRepository, *httptest.Server) {
	repo := newFakeLabRepository()
	usecase := NewLabUsecase(repo, &fakeSynchronizer{})
	controller := NewLabController(zap.NewNop(), usecase)

	router := chi.NewRouter()
	recordPath := fmt.Sprintf("/{%s}", constvars.URLParamLabRecordID)
	router.Post("/", controller.CreateLabRecord)
	router.Get("/", controller.ListLabRecords)
	router.Get(recordPath, controller.GetLabRecordByID)
	router.Put(recordPath, controller.UpdateLabRecord)
	router.Delete(recordPath, controller.DeleteLabRecord)

	return repo, httptest.NewServer(router)
}

func TestLabRecordEndpoints(t *testing.T) {
	repo, server := newLabTestServer()
	defer server.Close()

	t.Run("create returns 201 with the stored record", func(t *testing.T) {
		payload, err := json.Marshal(validCreateLabRequest())
		require.NoError(t, err)

		resp, err := http.Post(server.URL+"/", constvars.MIMEApplicationJSON, bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Len(t, repo.records, 1)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data.ID)
		assert.Equal(t, "Completed", body.Data.Status)
	})

	t.Run("create rejects malformed JSON", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/", constvars.MIMEApplicationJSON, bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get unknown record returns 404", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/missing")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list carries pagination metadata", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/?page=1&page_size=10")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success    bool `json:"success"`
			Pagination struct {
				Total    int `json:"total"`
				Page     int `json:"page"`
				PageSize int `json:"page_size"`
			} `json:"pagination"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, 1, body.Pagination.Total)
		assert.Equal(t, 10, body.Pagination.PageSize)
	})

	t.Run("list rejects a bad page value", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/?page=zero")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
