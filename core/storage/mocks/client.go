// Package mocks provides a testify mock of storage.Client.
package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client. PutObject reads the body it receives
// and keeps it in Bodies so tests can check what was uploaded.
type Client struct {
	mock.Mock

	mu     sync.Mutex
	Bodies map[string][]byte
}

// Body returns the last body uploaded under key.
func (m *Client) Body(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Bodies[key]
	return b, ok
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	if err := args.Error(1); err != nil {
		return minio.UploadInfo{}, err
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	m.mu.Lock()
	if m.Bodies == nil {
		m.Bodies = make(map[string][]byte)
	}
	m.Bodies[objectName] = body
	m.mu.Unlock()

	if info, ok := args.Get(0).(minio.UploadInfo); ok {
		return info, nil
	}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(body))}, nil
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListObjects accepts a channel, a slice of objects, or a function building the
// channel from the list options as its return value.
func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)
	switch v := args.Get(0).(type) {
	case <-chan minio.ObjectInfo:
		return v
	case func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo:
		return v(ctx, bucketName, opts)
	case []minio.ObjectInfo:
		return objectChannel(v)
	}
	return objectChannel(nil)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

// RemoveObjects drains objectsCh before returning the configured error channel.
func (m *Client) RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError {
	args := m.Called(ctx, bucketName, objectsCh, opts)
	for range objectsCh {
	}
	if ch, ok := args.Get(0).(<-chan minio.RemoveObjectError); ok {
		return ch
	}
	ch := make(chan minio.RemoveObjectError)
	close(ch)
	return ch
}

func objectChannel(objects []minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}
