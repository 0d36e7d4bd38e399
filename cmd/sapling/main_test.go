package main

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys("40, 20 60,,10")
	require.NoError(t, err)
	require.Equal(t, []int{40, 20, 60, 10}, keys)

	keys, err = parseKeys("")
	require.NoError(t, err)
	require.Empty(t, keys)

	_, err = parseKeys("1,two,3")
	require.True(t, errors.Is(err, sapling.ErrInvalidInput))
}

func TestJoinKeysRoundTrip(t *testing.T) {
	s := joinKeys(sapling.DefaultKeys)
	require.Equal(t, "40,20,60,10,30,50", s)
	keys, err := parseKeys(s)
	require.NoError(t, err)
	require.Equal(t, sapling.DefaultKeys, keys)
}

func TestRunRejectsBadKeys(t *testing.T) {
	err := run([]string{"sapling", "--log-level", "error", "--keys", "1,x", "repl", "--no-wait"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--keys")
}
