// Package storage provides read access to games lists kept in object storage.
//
// It wraps the MinIO Go client, so both AWS S3 and self-hosted MinIO work.
// A games file argument of the form s3://<bucket>/<key> is read through this
// package instead of the local filesystem.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - StatObject: Checks that the object exists before reading it.
//   - GetObject: Retrieves content as a stream.
//   - IsNotFound: Classifies NoSuchKey/NoSuchBucket responses.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := client.GetObject(ctx, "lists", "wishlist.txt", minio.GetObjectOptions{})
package storage
