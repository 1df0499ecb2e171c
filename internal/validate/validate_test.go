package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesBoundaries(t *testing.T) {
	assert.NoError(t, Coordinates(-90, 0))
	assert.NoError(t, Coordinates(90, 0))
	assert.NoError(t, Coordinates(0, -180))
	assert.NoError(t, Coordinates(0, 180))
	assert.NoError(t, Coordinates(40.7128, -74.0060))
}

func TestCoordinatesOutOfRange(t *testing.T) {
	err := Coordinates(-90.0001, 0)
	assert.EqualError(t, err, "Latitude must be between -90 and 90")

	err = Coordinates(90.0001, 0)
	assert.EqualError(t, err, "Latitude must be between -90 and 90")

	err = Coordinates(0, 180.0001)
	assert.EqualError(t, err, "Longitude must be between -180 and 180")

	err = Coordinates(0, -180.0001)
	assert.EqualError(t, err, "Longitude must be between -180 and 180")
}

func TestCoordinatesNaN(t *testing.T) {
	assert.EqualError(t, Coordinates(math.NaN(), 0), "Latitude and longitude must be numbers")
	assert.EqualError(t, Coordinates(0, math.NaN()), "Latitude and longitude must be numbers")
}

func TestMinyanType(t *testing.T) {
	assert.NoError(t, MinyanType("shacharit"))
	assert.NoError(t, MinyanType("mincha"))
	assert.NoError(t, MinyanType("maariv"))
}

func TestMinyanTypeRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"Shacharit", "MAARIV", "musaf", "", "mincha "} {
		err := MinyanType(bad)
		assert.EqualError(t, err, "Minyan type must be one of: shacharit, mincha, maariv")
	}
}
