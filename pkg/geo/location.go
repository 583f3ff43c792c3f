package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// ErrInvalidLocation reports a coordinate pair that cannot be placed on a map.
var ErrInvalidLocation = errors.New("geo: invalid location")

// Location is a latitude/longitude pair (Northing, Easting).
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// At is shorthand for Location{Lat: lat, Lng: lng}.
func At(lat, lng float64) Location {
	return Location{Lat: lat, Lng: lng}
}

// FromSlice builds a Location from a [lat, lng] pair.
func FromSlice(pair []float64) (Location, error) {
	if len(pair) != 2 {
		return Location{}, fmt.Errorf("%w: expected [lat, lng], got %d values", ErrInvalidLocation, len(pair))
	}
	loc := Location{Lat: pair[0], Lng: pair[1]}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// FromPoint converts an orb point. orb stores X as longitude and Y as latitude.
func FromPoint(p orb.Point) Location {
	return Location{Lat: p.Lat(), Lng: p.Lon()}
}

// Point returns the location as an orb point.
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Validate rejects non-finite values and coordinates outside the WGS84 range.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || math.IsNaN(l.Lng) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidLocation)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLocation, l.Lng)
	}
	return nil
}

// LatString formats the latitude with the shortest exact representation.
func (l Location) LatString() string {
	return FormatFloat(l.Lat)
}

// LngString formats the longitude with the shortest exact representation.
func (l Location) LngString() string {
	return FormatFloat(l.Lng)
}

// String renders "lat, lng", the form emitted into Leaflet calls.
func (l Location) String() string {
	return l.LatString() + ", " + l.LngString()
}

// FormatFloat renders v without trailing zeros (45.5, -122.3, 0.6).
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
