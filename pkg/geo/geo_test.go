package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_KnownPoints(t *testing.T) {
	// Дворцовая площадь -> Московский вокзал, около 3.4 км
	d := Distance(59.9390, 30.3158, 59.9298, 30.3623)
	assert.InDelta(t, 2800, d, 300)

	// Одна и та же точка
	assert.Equal(t, 0.0, Distance(23.8103, 90.4125, 23.8103, 90.4125))
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(23.8103, 90.4125, 23.7500, 90.3900)
	d2 := Distance(23.7500, 90.3900, 23.8103, 90.4125)
	assert.Equal(t, d1, d2)
}

func TestDistance_RoundedToMeter(t *testing.T) {
	d := Distance(10.0, 20.0, 10.001, 20.001)
	assert.Equal(t, d, float64(int64(d)))
}

func TestValidatePoint(t *testing.T) {
	require.NoError(t, ValidatePoint(0, 0))
	require.NoError(t, ValidatePoint(-90, 180))
	require.NoError(t, ValidatePoint(90, -180))

	assert.Error(t, ValidatePoint(90.1, 0))
	assert.Error(t, ValidatePoint(-90.1, 0))
	assert.Error(t, ValidatePoint(0, 180.1))
	assert.Error(t, ValidatePoint(0, -180.1))
}

func TestValidateRadius(t *testing.T) {
	require.NoError(t, ValidateRadius(1))
	assert.Error(t, ValidateRadius(0))
	assert.Error(t, ValidateRadius(-500))
}
