package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStorage(t.TempDir(), "/api/uploads/")

	url, err := store.Save(ctx, "images/fashion/a.jpg", strings.NewReader("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/images/fashion/a.jpg", url)
	assert.True(t, store.Exists(ctx, "images/fashion/a.jpg"))

	rc, err := store.Open(ctx, "images/fashion/a.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	require.NoError(t, store.Delete(ctx, "images/fashion/a.jpg"))
	assert.False(t, store.Exists(ctx, "images/fashion/a.jpg"))
	assert.NoError(t, store.Delete(ctx, "images/fashion/a.jpg"))
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "/api/uploads")

	_, err := store.Save(context.Background(), "../outside.txt", strings.NewReader("x"), "")
	assert.Error(t, err)
	assert.False(t, store.Exists(context.Background(), "../outside.txt"))
}
