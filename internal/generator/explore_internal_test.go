package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreWindowRespectsMinAndMax(t *testing.T) {
	var buf bytes.Buffer
	n, err := exploreWindow(2, 4, &buf)
	require.NoError(t, err)
	assert.Positive(t, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, n)
	for _, line := range lines {
		assert.True(t, len(line) >= 2 && len(line) <= 4)
	}
}

func TestExploreWindowIsDeterministic(t *testing.T) {
	var bufA, bufB bytes.Buffer
	nA, err := exploreWindow(1, 3, &bufA)
	require.NoError(t, err)
	nB, err := exploreWindow(1, 3, &bufB)
	require.NoError(t, err)
	assert.Equal(t, nA, nB)
	assert.Equal(t, bufA.String(), bufB.String())
}

func TestExploreWindowDepthZeroRecordsOnlyEmptyBoard(t *testing.T) {
	// At min=0, max=0 only the empty board itself is recorded.
	var buf bytes.Buffer
	n, err := exploreWindow(0, 0, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "\n", buf.String())
}
