package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Snapshot is the archived content of one successful sync run.
type Snapshot struct {
	SavedCount int                `json:"saved_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	ArchivedAt string             `json:"archived_at"`
	Records    []reconcile.Record `json:"records"`
}

// Archiver writes run snapshots to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewArchiver creates a snapshot archiver.
func NewArchiver(client storage.Client, bucket, prefix string) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

// ObjectKey returns the object key of a snapshot taken at ts.
// Format: {prefix}/{yyyy-mm-dd}/{unix}-o{offset}-l{limit}.json
func (a *Archiver) ObjectKey(ts time.Time, limit, offset int) string {
	name := fmt.Sprintf("%s/%d-o%d-l%d.json", ts.UTC().Format("2006-01-02"), ts.Unix(), offset, limit)
	if a.prefix == "" {
		return name
	}
	return a.prefix + "/" + name
}

// Archive uploads the summary and its committed records and returns the object key.
func (a *Archiver) Archive(ctx context.Context, summary *reconcile.Summary) (string, error) {
	ts := a.now()
	snapshot := Snapshot{
		SavedCount: summary.SavedCount,
		Limit:      summary.Limit,
		Offset:     summary.Offset,
		ArchivedAt: ts.UTC().Format(time.RFC3339),
		Records:    summary.Records,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := a.ObjectKey(ts, summary.Limit, summary.Offset)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	return key, nil
}
