// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so a curated icon tree can be published to AWS S3 or a
// self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket (see EnsureBucket).
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - RemoveObjects: Deletes stale objects in bulk.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	created, err := storage.EnsureBucket(ctx, client, "icons", "")
package storage
