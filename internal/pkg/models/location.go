package models

// Coordinate is a point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OfficeLocation is the fixed office coordinate used for attendance
var OfficeLocation = Coordinate{
	Latitude:  -7.197357052809274,
	Longitude: 107.89438523413747,
}

// OfficeRadiusKm is the maximum distance from the office that still counts as inside
const OfficeRadiusKm = 0.1

const (
	StatusInsideOffice  = "Di dalam kantor"
	StatusOutsideOffice = "Di luar kantor"
)

// DistanceResult is the outcome of a geofence check
type DistanceResult struct {
	DistanceKm  float64 `json:"distance"`
	WithinRange bool    `json:"within_range"`
}

// Status returns the localized label shown to employees
func (r DistanceResult) Status() string {
	if r.WithinRange {
		return StatusInsideOffice
	}
	return StatusOutsideOffice
}
