package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore implements ObjectStore using Google Cloud Storage with JSON
// objects, one object per key under a common prefix.
type GCSStore struct {
	client     *storage.Client
	bucketName string
	prefix     string
}

// NewGCSStore creates a new Cloud Storage backed object store.
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &GCSStore{
		client:     client,
		bucketName: bucketName,
		prefix:     "generator/",
	}, nil
}

// Get retrieves an object from Cloud Storage.
func (s *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj := s.client.Bucket(s.bucketName).Object(s.prefix + key)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil, ErrObjectNotExist
		}
		return nil, fmt.Errorf("opening object reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading object data: %w", err)
	}

	return data, nil
}

// Set stores an object in Cloud Storage.
func (s *GCSStore) Set(ctx context.Context, key string, data []byte) error {
	obj := s.client.Bucket(s.bucketName).Object(s.prefix + key)

	writer := obj.NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing object data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing object writer: %w", err)
	}

	return nil
}

// GetStats lists the store's objects and aggregates size and age.
func (s *GCSStore) GetStats(ctx context.Context) (*Stats, error) {
	bucket := s.client.Bucket(s.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: s.prefix})

	stats := &Stats{}
	var totalAge time.Duration
	now := time.Now()

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}

		stats.TotalObjects++
		stats.TotalBytes += attrs.Size

		if stats.OldestObject.IsZero() || attrs.Created.Before(stats.OldestObject) {
			stats.OldestObject = attrs.Created
		}
		totalAge += now.Sub(attrs.Created)
	}

	if stats.TotalObjects > 0 {
		stats.AverageAge = totalAge / time.Duration(stats.TotalObjects)
	}

	return stats, nil
}

// Close closes the Cloud Storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
