package sorter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adnope/connect4-engine/internal/sorter"
)

func TestGetNextBestFirst(t *testing.T) {
	var s sorter.Sorter
	s.Add(1, 3)
	s.Add(2, 9)
	s.Add(3, 1)

	assert.Equal(t, uint64(2), s.GetNext())
	assert.Equal(t, uint64(1), s.GetNext())
	assert.Equal(t, uint64(3), s.GetNext())
	assert.Equal(t, uint64(0), s.GetNext())
}

func TestResetEmptiesBuffer(t *testing.T) {
	var s sorter.Sorter
	s.Add(1, 5)
	s.Reset()
	assert.Equal(t, uint64(0), s.GetNext())
}

func TestTiesFavorMostRecentlyAdded(t *testing.T) {
	var s sorter.Sorter
	s.Add(1, 5)
	s.Add(2, 5)
	// Equal scores do not shift: the most recently added entry sits on top.
	assert.Equal(t, uint64(2), s.GetNext())
	assert.Equal(t, uint64(1), s.GetNext())
}
