package printer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileSpoolValidation(t *testing.T) {
	_, err := NewFileSpool("", "label")
	assert.Error(t, err)

	_, err = NewFileSpool(t.TempDir(), "")
	assert.Error(t, err)
}

func TestFileSpoolSubmit(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileSpool(dir, "label")
	require.NoError(t, err)

	assert.Equal(t, "label", b.Kind())
	assert.True(t, b.IsAvailable(context.Background()))

	ref, err := b.Submit(context.Background(), "job-123", []byte("SIZE 50.0,40.0\r\nEND\r\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "job-123.tspl"), ref)

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, "SIZE 50.0,40.0\r\nEND\r\n", string(data))

	// No leftover temp files after a successful submit.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileSpoolSubmitEmptyName(t *testing.T) {
	b, err := NewFileSpool(t.TempDir(), "label")
	require.NoError(t, err)

	_, err = b.Submit(context.Background(), "", []byte("x"))
	assert.Error(t, err)
}

func TestFileSpoolUnavailableAfterRemoval(t *testing.T) {
	dir := t.TempDir()
	spool := filepath.Join(dir, "spool")
	b, err := NewFileSpool(spool, "label")
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(spool))
	assert.False(t, b.IsAvailable(context.Background()))
}

func TestFileSpoolCancelledContext(t *testing.T) {
	b, err := NewFileSpool(t.TempDir(), "label")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, b.IsAvailable(ctx))
	_, err = b.Submit(ctx, "job", []byte("x"))
	assert.Error(t, err)
}
