package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleterCyclesAndWraps(t *testing.T) {
	c := NewCompleter([]string{"add", "addall", "subtract"})

	first, ok := c.Begin("ad")
	require.True(t, ok)
	assert.Equal(t, "add", first)
	assert.True(t, c.Active())

	assert.Equal(t, "addall", c.Next())
	assert.Equal(t, "add", c.Next())
	assert.Equal(t, "addall", c.Next())
}

func TestCompleterNoMatches(t *testing.T) {
	c := NewCompleter([]string{"add", "subtract"})
	_, ok := c.Begin("x")
	assert.False(t, ok)
	assert.False(t, c.Active())
	assert.Equal(t, "", c.Next())
}

func TestCompleterIsCaseSensitive(t *testing.T) {
	c := NewCompleter([]string{"Add"})
	_, ok := c.Begin("ad")
	assert.False(t, ok)
}

func TestCompleterEmptyPrefixMatchesAll(t *testing.T) {
	c := NewCompleter([]string{"help", "exit"})
	first, ok := c.Begin("")
	require.True(t, ok)
	assert.Equal(t, "help", first)
	assert.Equal(t, "exit", c.Next())
}

func TestCompleterReset(t *testing.T) {
	c := NewCompleter([]string{"add", "addall"})
	_, ok := c.Begin("a")
	require.True(t, ok)
	c.Reset()
	assert.False(t, c.Active())
	assert.Equal(t, "", c.Next())
}
