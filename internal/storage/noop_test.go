package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopStoragePut(t *testing.T) {
	s := NewNoop()
	assert.False(t, s.Enabled())

	info, err := s.Put(context.Background(), "jobs/abc.tspl", strings.NewReader("CLS\r\n"), PutObjectOptions{Size: 5})
	require.NoError(t, err)
	assert.Equal(t, "jobs/abc.tspl", info.Key)
	assert.Equal(t, int64(5), info.Size)
}

func TestNoopStorageGetAndPresign(t *testing.T) {
	s := NewNoop()

	_, _, err := s.Get(context.Background(), "jobs/abc.tspl")
	assert.Error(t, err)

	_, err = s.PresignGet(context.Background(), "jobs/abc.tspl", time.Minute)
	assert.Error(t, err)

	assert.NoError(t, s.Delete(context.Background(), "jobs/abc.tspl"))
}
