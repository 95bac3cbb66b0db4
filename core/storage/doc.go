// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and is used to archive JSON snapshots of
// successful sync runs. Archiving is optional and disabled by default; the
// relational store remains the system of record.
//
// # Client Interface
//
// The Client interface exposes only the operations the archive needs, making
// it easy to mock (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
