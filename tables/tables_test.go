package tables_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twophase/cube/tables"
)

func TestLoadBuildsOnce(t *testing.T) {
	a, err := tables.Load()
	require.NoError(t, err)
	require.NotNil(t, a)
	b, err := tables.Load()
	require.NoError(t, err)
	require.Same(t, a, b)
}
