package exclusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagrind/internal/letters"
	"anagrind/internal/services/exclusion"
)

func TestReduce(t *testing.T) {
	pool := letters.FromText("cat")

	got, err := exclusion.New().Reduce(pool, []string{"at"})
	require.NoError(t, err)
	assert.Equal(t, letters.Multiset{'c': 1}, got)
	assert.Equal(t, "c", got.Display())
}

func TestReduceNoExclusions(t *testing.T) {
	pool := letters.FromText("cat")

	got, err := exclusion.New().Reduce(pool, nil)
	require.NoError(t, err)
	assert.Equal(t, pool, got)
}

func TestReduceInsufficient(t *testing.T) {
	pool := letters.FromText("cat")

	got, err := exclusion.New().Reduce(pool, []string{"dog"})

	var insuf *letters.InsufficientError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "dog", insuf.Word)
	// Pool state before the failing word: the original, untouched.
	assert.Equal(t, letters.FromText("cat"), got)
}

func TestReduceStopsAtFirstFailure(t *testing.T) {
	pool := letters.FromText("scatter")

	got, err := exclusion.New().Reduce(pool, []string{"cat", "zzz", "er"})

	var insuf *letters.InsufficientError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "zzz", insuf.Word)
	// "cat" was applied; "er" never was.
	want, _ := pool.Subtract("cat")
	assert.Equal(t, want, got)
}
