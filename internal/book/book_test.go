package book_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnope/connect4-engine/internal/book"
	"github.com/adnope/connect4-engine/internal/table"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	src := table.New(127)
	src.PutOpening(12345, 7)
	src.PutOpening(999999, 42)

	path := filepath.Join(t.TempDir(), "test.book")
	n, err := book.Save(path, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := table.New(127)
	loaded, err := book.Load(path, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, uint8(7), dst.Get(12345))
	assert.Equal(t, uint8(42), dst.Get(999999))
}

func TestLoadWarmupPopulatesMemoArrayNotOpeningMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warmup.book")
	require.NoError(t, os.WriteFile(path, []byte("444 2\n4434 -1\n"), 0o644))

	dst := table.New(127)
	n, err := book.LoadWarmup(path, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, dst.Opening(), "warmup entries must not land in the opening map")
}

func TestLoadMissingFileReturnsErrBookUnavailable(t *testing.T) {
	dst := table.New(127)
	_, err := book.Load(filepath.Join(t.TempDir(), "missing.book"), dst)
	require.Error(t, err)
	var unavailable book.ErrBookUnavailable
	assert.ErrorAs(t, err, &unavailable)
}
