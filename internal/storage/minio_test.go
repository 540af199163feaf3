package storage

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/config"
)

// newFakeS3Store spins up an in-process S3 server and a MinIO-backed store
// pointed at it. NewMinIO also exercises the bucket-ensure path against the
// fake backend.
func newFakeS3Store(t *testing.T) ObjectStore {
	t.Helper()

	ts := httptest.NewServer(gofakes3.New(s3mem.New()).Server())
	t.Cleanup(ts.Close)

	store, err := NewMinIO(config.MinIOConfig{
		Endpoint:  strings.TrimPrefix(ts.URL, "http://"),
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Bucket:    "documents",
	})
	require.NoError(t, err)
	return store
}

func TestMinIOConfigValidation(t *testing.T) {
	_, err := NewMinIO(config.MinIOConfig{})
	assert.ErrorContains(t, err, "endpoint is required")

	_, err = NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000"})
	assert.ErrorContains(t, err, "credentials are required")

	_, err = NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"})
	assert.ErrorContains(t, err, "bucket is required")
}

func TestMinIOPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeS3Store(t)

	content := "binary\x00payload"
	_, err := store.Put(ctx, "txn-1/doc-a", strings.NewReader(content), PutOptions{
		Size:        int64(len(content)),
		ContentType: "application/octet-stream",
		Metadata: map[string]string{
			"doccatcode": "POA",
			"docname":    "passport.pdf",
		},
	})
	require.NoError(t, err)

	rc, info, err := store.Get(ctx, "txn-1/doc-a")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Equal(t, int64(len(content)), info.Size)
}

func TestMinIOMetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeS3Store(t)

	_, err := store.Put(ctx, "txn-1/doc-a", strings.NewReader("x"), PutOptions{
		Size: 1,
		Metadata: map[string]string{
			"doccatcode": "POA",
			"doctypcode": "RES",
			"langcode":   "eng",
			"docname":    "passport.pdf",
			"docid":      "doc-a",
		},
	})
	require.NoError(t, err)

	meta, err := store.GetMetadata(ctx, "txn-1/doc-a")
	require.NoError(t, err)

	// Backends canonicalize metadata header casing; GetMetadata must hand the
	// schema back with the exact lowercase keys it was written with.
	assert.Equal(t, "POA", meta["doccatcode"])
	assert.Equal(t, "RES", meta["doctypcode"])
	assert.Equal(t, "eng", meta["langcode"])
	assert.Equal(t, "passport.pdf", meta["docname"])
	assert.Equal(t, "doc-a", meta["docid"])
}

func TestMinIOGetNotFound(t *testing.T) {
	store := newFakeS3Store(t)

	_, _, err := store.Get(context.Background(), "txn-1/missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.GetMetadata(context.Background(), "txn-1/missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMinIOListScopedToPrefix(t *testing.T) {
	ctx := context.Background()
	store := newFakeS3Store(t)

	for _, key := range []string{"txn-1/doc-a", "txn-1/doc-b", "txn-2/doc-c"} {
		_, err := store.Put(ctx, key, strings.NewReader("x"), PutOptions{Size: 1})
		require.NoError(t, err)
	}

	names, err := store.List(ctx, "txn-1/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"doc-a", "doc-b"}, names)

	empty, err := store.List(ctx, "txn-9/")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMinIODeleteReportsExistence(t *testing.T) {
	ctx := context.Background()
	store := newFakeS3Store(t)

	_, err := store.Put(ctx, "txn-1/doc-a", strings.NewReader("x"), PutOptions{Size: 1})
	require.NoError(t, err)

	ok, err := store.Delete(ctx, "txn-1/doc-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, "txn-1/doc-a")
	require.NoError(t, err)
	assert.False(t, ok)
}
