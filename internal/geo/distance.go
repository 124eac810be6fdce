// Package geo содержит расчёты расстояний между географическими точками.
package geo

import "math"

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Coordinate - точка в градусах
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceBetweenCoordinates возвращает расстояние по большому кругу между точками в километрах (формула гаверсинусов)
func DistanceBetweenCoordinates(from, to Coordinate) float64 {
	if from == to {
		return 0
	}

	fromLat := toRadians(from.Latitude)
	toLat := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(fromLat)*math.Cos(toLat)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	// Ошибки округления могут вывести a за пределы [0, 1]
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
