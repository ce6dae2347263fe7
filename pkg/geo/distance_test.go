package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(50.45, 30.52, 50.45, 30.52))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][4]float64{
		{50.4501, 30.5234, 49.8397, 24.0297}, // Киев - Львов
		{0, 0, 10, 10},
		{-33.8688, 151.2093, 51.5074, -0.1278}, // Сидней - Лондон
	}
	for _, p := range points {
		d1 := DistanceKm(p[0], p[1], p[2], p[3])
		d2 := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, d1, d2, 1e-9)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Киев -> Львов, около 469 км по прямой
	d := DistanceKm(50.4501, 30.5234, 49.8397, 24.0297)
	assert.InDelta(t, 469, d, 5)
}

func TestDistanceKm_SmallOffset(t *testing.T) {
	// Сдвиг на ~0.001 градуса широты - чуть больше 100 метров
	d := DistanceKm(50.45, 30.52, 50.451, 30.52)
	assert.InDelta(t, 0.111, d, 0.01)
}
