package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Put(ctx, "txn-1/doc-a", strings.NewReader("payload"), PutOptions{
		Size:        7,
		ContentType: "application/pdf",
		Metadata:    map[string]string{"Docname": "passport.pdf"},
	})
	require.NoError(t, err)

	rc, info, err := store.Get(ctx, "txn-1/doc-a")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, int64(7), info.Size)
	// Metadata keys are normalized to lowercase on write.
	assert.Equal(t, "passport.pdf", info.Metadata["docname"])
}

func TestMemoryGetMetadataOnly(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Put(ctx, "txn-1/doc-a", strings.NewReader("x"), PutOptions{
		Size:     1,
		Metadata: map[string]string{"docid": "doc-a"},
	})
	require.NoError(t, err)

	meta, err := store.GetMetadata(ctx, "txn-1/doc-a")
	require.NoError(t, err)
	assert.Equal(t, "doc-a", meta["docid"])

	_, err = store.GetMetadata(ctx, "txn-1/missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryGetNotFound(t *testing.T) {
	_, _, err := NewMemory().Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryListScopedToPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, key := range []string{"txn-1/b", "txn-1/a", "txn-2/c"} {
		_, err := store.Put(ctx, key, strings.NewReader("x"), PutOptions{Size: 1})
		require.NoError(t, err)
	}

	names, err := store.List(ctx, "txn-1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	empty, err := store.List(ctx, "txn-3/")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Put(ctx, "txn-1/a", strings.NewReader("x"), PutOptions{Size: 1})
	require.NoError(t, err)

	ok, err := store.Delete(ctx, "txn-1/a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, "txn-1/a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOverwriteSameKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Put(ctx, "txn-1/a", strings.NewReader("first"), PutOptions{Size: 5})
	require.NoError(t, err)
	_, err = store.Put(ctx, "txn-1/a", strings.NewReader("second"), PutOptions{Size: 6})
	require.NoError(t, err)

	rc, _, err := store.Get(ctx, "txn-1/a")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "second", string(data))

	names, err := store.List(ctx, "txn-1/")
	require.NoError(t, err)
	assert.Len(t, names, 1)
}
