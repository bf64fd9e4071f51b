package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Office coordinates used across tests.
const (
	officeLat = 37.9094
	officeLon = 23.8711
)

func TestDistance_Symmetry(t *testing.T) {
	d1, err := Distance(officeLat, officeLon, 38.0, 23.7)
	require.NoError(t, err)

	d2, err := Distance(38.0, 23.7, officeLat, officeLon)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	d, err := Distance(officeLat, officeLon, officeLat, officeLon)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_KnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d, err := Distance(37.0, 23.0, 38.0, 23.0)
	require.NoError(t, err)
	assert.InDelta(t, 111195, d, 100)
}

func TestDistance_NonFiniteInput(t *testing.T) {
	_, err := Distance(math.NaN(), officeLon, officeLat, officeLon)
	assert.Error(t, err)

	_, err = Distance(officeLat, math.Inf(1), officeLat, officeLon)
	assert.Error(t, err)
}

func TestValidator_InsideZone(t *testing.T) {
	v := NewValidator(Coordinate{Latitude: officeLat, Longitude: officeLon}, 500)

	res := v.Check(officeLat, officeLon)
	assert.True(t, res.IsWithin)
	assert.Equal(t, 0.0, res.DistanceMeters)
	assert.False(t, res.Failed())
}

func TestValidator_BoundaryIsInclusive(t *testing.T) {
	office := Coordinate{Latitude: officeLat, Longitude: officeLon}

	// Move due north by exactly the check distance and configure the
	// radius to match it, so distance == radius.
	userLat := officeLat + 0.002
	d, err := Distance(officeLat, officeLon, userLat, officeLon)
	require.NoError(t, err)

	v := NewValidator(office, d)
	res := v.Check(userLat, officeLon)
	assert.True(t, res.IsWithin)
	assert.Equal(t, d, res.DistanceMeters)
}

func TestValidator_OutsideZone(t *testing.T) {
	v := NewValidator(Coordinate{Latitude: officeLat, Longitude: officeLon}, 500)

	// ~0.009 degrees of latitude is about 1000m.
	res := v.Check(officeLat+0.009, officeLon)
	assert.False(t, res.IsWithin)
	assert.False(t, res.Failed())
	assert.InDelta(t, 1000, res.DistanceMeters, 20)
}

func TestValidator_NonFiniteIsFailureNotOutside(t *testing.T) {
	v := NewValidator(Coordinate{Latitude: officeLat, Longitude: officeLon}, 500)

	res := v.Check(math.NaN(), officeLon)
	assert.False(t, res.IsWithin)
	assert.True(t, res.Failed())
	assert.Equal(t, -1.0, res.DistanceMeters)
	assert.Error(t, res.Err)
}
