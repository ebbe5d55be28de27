package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters - радиус Земли в метрах для формулы гаверсинуса
const EarthRadiusMeters = 6371000.0

// Distance вычисляет расстояние по дуге большого круга между двумя точками
// (формула гаверсинуса). Результат округляется до ближайшего метра.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusMeters * c)
}

// ValidatePoint проверяет, что координаты находятся в допустимых диапазонах
func ValidatePoint(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %f is out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %f is out of range [-180, 180]", lon)
	}
	return nil
}

// ValidateRadius проверяет, что радиус поиска положительный
func ValidateRadius(radiusMeters float64) error {
	if radiusMeters <= 0 {
		return fmt.Errorf("radius %f must be greater than zero", radiusMeters)
	}
	return nil
}
