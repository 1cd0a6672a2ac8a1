package utils

import (
	"math"

	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// Earth's radius in kilometers
const earthRadiusKm = 6371.0

// DefaultGeohashPrecision gives cells of roughly 150m x 150m
const DefaultGeohashPrecision = 7

// Geofence is a circular area around a center point
type Geofence struct {
	Center   models.Coordinate
	RadiusKm float64
}

// DefaultGeofence is the office geofence used for attendance
var DefaultGeofence = Geofence{
	Center:   models.OfficeLocation,
	RadiusKm: models.OfficeRadiusKm,
}

// NewGeofence creates a geofence, falling back to the office defaults for zero values
func NewGeofence(cfg models.OfficeConfig) Geofence {
	g := DefaultGeofence
	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		g.Center = models.Coordinate{Latitude: cfg.Latitude, Longitude: cfg.Longitude}
	}
	if cfg.RadiusKm > 0 {
		g.RadiusKm = cfg.RadiusKm
	}
	return g
}

// Check reports the distance from the center and whether the point is inside the radius
func (g Geofence) Check(lat, lon float64) models.DistanceResult {
	distance := CalculateDistance(g.Center, models.Coordinate{Latitude: lat, Longitude: lon})
	return models.DistanceResult{
		DistanceKm:  distance,
		WithinRange: distance <= g.RadiusKm,
	}
}

// CheckOfficeLocation classifies a point against the fixed office location
func CheckOfficeLocation(lat, lon float64) models.DistanceResult {
	return DefaultGeofence.Check(lat, lon)
}

// DistanceKm calculates the distance between two points in kilometers using the Haversine formula.
// The result is rounded to 2 decimal places.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert latitude and longitude from degrees to radians
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return roundTo(earthRadiusKm*c, 2)
}

// CalculateDistance is DistanceKm for two coordinates
func CalculateDistance(from, to models.Coordinate) float64 {
	return DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string to a coordinate at the cell center
func DecodeGeohash(hash string) models.Coordinate {
	lat, lon := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lon}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
