package recorder

import (
	"math"
	"strings"

	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/models"
)

// Haversine returns the great-circle distance in meters between two
// coordinate pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	latRad1 := lat1 * math.Pi / 180
	latRad2 := lat2 * math.Pi / 180
	diffLat := (lat2 - lat1) * math.Pi / 180
	diffLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(diffLat/2)*math.Sin(diffLat/2) +
		math.Cos(latRad1)*math.Cos(latRad2)*
			math.Sin(diffLon/2)*math.Sin(diffLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return constants.EarthRadiusMeters * c
}

// NearbyOffices returns every office within the geofence radius of the
// given position, inclusive at the boundary.
func NearbyOffices(lat, lng float64, offices []models.OfficeLocation) []models.OfficeLocation {
	var nearby []models.OfficeLocation
	for _, office := range offices {
		if Haversine(lat, lng, office.Latitude, office.Longitude) <= constants.GeofenceRadiusMeters {
			nearby = append(nearby, office)
		}
	}
	return nearby
}

// LocationLabel joins the matched office names into the location field
// value, or the no-match sentinel.
func LocationLabel(offices []models.OfficeLocation) string {
	if len(offices) == 0 {
		return constants.LocationNoneNearby
	}
	names := make([]string, 0, len(offices))
	for _, office := range offices {
		names = append(names, office.Name)
	}
	return strings.Join(names, ", ")
}
