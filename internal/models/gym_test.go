package models

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate_RoundTrip(t *testing.T) {
	n, err := NewCoordinate(-27.209205)
	require.NoError(t, err)
	assert.True(t, n.Valid)

	f, err := CoordinateToFloat(n)
	require.NoError(t, err)
	assert.InDelta(t, -27.209205, f, 1e-9)
}

func TestCoordinateToFloat_Null(t *testing.T) {
	_, err := CoordinateToFloat(pgtype.Numeric{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "null")
}
