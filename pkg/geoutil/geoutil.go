package geoutil

import "github.com/rmadrazo97/dreamhome/pkg/coerce"

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// ValidCoordinates reports whether lat and lng are both numeric and inside
// [-90, 90] and [-180, 180]. Bounds are inclusive.
func ValidCoordinates(lat, lng any) bool {
	la, ok := coerce.ParseFloat(lat)
	if !ok {
		return false
	}
	lo, ok := coerce.ParseFloat(lng)
	if !ok {
		return false
	}
	return la >= -maxLatitude && la <= maxLatitude &&
		lo >= -maxLongitude && lo <= maxLongitude
}
