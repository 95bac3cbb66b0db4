package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/storage/mocks"
	"catalog-sync/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiver_ObjectKey(t *testing.T) {
	ts := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "snapshots/catalog/2024-03-09/1709985600-o40-l20.json",
		NewArchiver(nil, "b", "/snapshots/catalog/").ObjectKey(ts, 20, 40))
	assert.Equal(t, "2024-03-09/1709985600-o0-l1.json",
		NewArchiver(nil, "b", "").ObjectKey(ts, 1, 0))
}

func TestArchiver_Archive(t *testing.T) {
	store := new(mocks.Client)
	archiver := NewArchiver(store, "snapshots", "catalog")
	archiver.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

	var uploaded []byte
	store.On("PutObject", mock.Anything, "snapshots", "catalog/2024-03-09/1709985600-o0-l2.json",
		mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = data
			assert.Equal(t, int64(len(data)), args.Get(4).(int64))
		}).
		Return(minio.UploadInfo{}, nil)

	summary := &reconcile.Summary{
		SavedCount: 1,
		Limit:      2,
		Offset:     0,
		Records:    []reconcile.Record{&models.CatalogRecord{ID: 1, Name: "bulbasaur"}},
	}

	key, err := archiver.Archive(context.Background(), summary)
	require.NoError(t, err)
	assert.Equal(t, "catalog/2024-03-09/1709985600-o0-l2.json", key)

	var snapshot struct {
		SavedCount int    `json:"saved_count"`
		ArchivedAt string `json:"archived_at"`
		Records    []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"records"`
	}
	require.NoError(t, json.NewDecoder(bytes.NewReader(uploaded)).Decode(&snapshot))
	assert.Equal(t, 1, snapshot.SavedCount)
	assert.Equal(t, "2024-03-09T12:00:00Z", snapshot.ArchivedAt)
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, "bulbasaur", snapshot.Records[0].Name)
	store.AssertExpectations(t)
}
