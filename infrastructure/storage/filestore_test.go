package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreGetSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	fallback := []byte("[]")

	// Chave ausente devolve o fallback
	assert.Equal(t, fallback, store.Get(ctx, KeyCampaigns, fallback))

	value := []byte(`[{"id":"abc123"}]`)
	require.NoError(t, store.Set(ctx, KeyCampaigns, value))

	assert.JSONEq(t, string(value), string(store.Get(ctx, KeyCampaigns, fallback)))

	// Chaves são independentes
	assert.Equal(t, fallback, store.Get(ctx, KeyResponses, fallback))
}

func TestFileStoreCorruptedDocumentFallsBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	require.NoError(t, os.WriteFile(path, []byte("não é json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	// Leitura de documento corrompido devolve fallback em vez de falhar
	fallback := []byte("[]")
	assert.Equal(t, fallback, store.Get(ctx, KeyResponses, fallback))

	// Escrita sobre documento corrompido recria o documento
	require.NoError(t, store.Set(ctx, KeyResponses, []byte(`[{"id":"r1"}]`)))
	assert.JSONEq(t, `[{"id":"r1"}]`, string(store.Get(ctx, KeyResponses, []byte("[]"))))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, KeyCampaigns, []byte(`[{"id":"c1"}]`)))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(second.Get(ctx, KeyCampaigns, []byte("[]"))))
}
