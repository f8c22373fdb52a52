package entity

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// BoundingBox is a rectangular geographic filter in (south, west, north, east) order.
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// BoundingBoxFromNominatim converts Nominatim's (south, north, west, east) ordering.
func BoundingBoxFromNominatim(south, north, west, east float64) BoundingBox {
	return BoundingBox{South: south, West: west, North: north, East: east}
}

// Bound returns the box as an orb.Bound (Min is south-west, Max is north-east).
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// String renders the box in Overpass order "south,west,north,east".
func (b BoundingBox) String() string {
	parts := []string{
		formatCoordinate(b.South),
		formatCoordinate(b.West),
		formatCoordinate(b.North),
		formatCoordinate(b.East),
	}

	return strings.Join(parts, ",")
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Location is a geocoded place name. It is immutable once produced.
type Location struct {
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	BoundingBox BoundingBox `json:"bounding_box"`
	DisplayName string      `json:"display_name"`
}

// Point returns the location center as an orb.Point.
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Contains reports whether p falls inside the location's bounding box.
func (l Location) Contains(p orb.Point) bool {
	return l.BoundingBox.Bound().Contains(p)
}
