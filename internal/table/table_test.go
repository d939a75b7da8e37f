package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adnope/connect4-engine/internal/table"
)

func TestGetMissReturnsZero(t *testing.T) {
	tb := table.New(127)
	assert.Equal(t, uint8(0), tb.Get(42))
}

func TestPutGetRoundTrip(t *testing.T) {
	tb := table.New(127)
	tb.Put(42, 7)
	assert.Equal(t, uint8(7), tb.Get(42))
}

func TestResetClearsMemoButNotOpening(t *testing.T) {
	tb := table.New(127)
	tb.Put(1, 5)
	tb.PutOpening(2, 9)
	tb.Reset()
	assert.Equal(t, uint8(0), tb.Get(1))
	assert.Equal(t, uint8(9), tb.Get(2))
}

func TestOpeningTakesPriorityOverMemo(t *testing.T) {
	tb := table.New(127)
	// Same slot collision is irrelevant: opening lookups never consult the
	// memo array once a key is present there.
	tb.Put(1, 5)
	tb.PutOpening(1, 9)
	assert.Equal(t, uint8(9), tb.Get(1))
}

func TestCollisionOverwritesMemoLossily(t *testing.T) {
	tb := table.New(1)
	tb.Put(1, 5)
	tb.Put(2, 6)
	// Both keys map to the same (only) slot; the later write wins.
	assert.Equal(t, uint8(6), tb.Get(2))
}

func TestNewDefaultProducesUsableTable(t *testing.T) {
	tb := table.NewDefault()
	assert.Greater(t, tb.Len(), 0)
	tb.Put(123, 4)
	assert.Equal(t, uint8(4), tb.Get(123))
}
