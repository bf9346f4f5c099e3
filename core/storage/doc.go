// Package storage wraps the MinIO Go client behind a small interface.
//
// Only the operations needed to archive guild configurations are exposed:
// bucket checks, uploads, downloads and listing. Both AWS S3 and self-hosted
// MinIO work. The interface exists so feature/archive can be tested with the
// mock in core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
