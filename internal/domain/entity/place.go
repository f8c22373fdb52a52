package entity

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ElementType is the OSM object kind.
type ElementType string

const (
	ElementNode     ElementType = "node"
	ElementWay      ElementType = "way"
	ElementRelation ElementType = "relation"
)

// ElementTypes lists every kind queried from the place source, in query order.
var ElementTypes = []ElementType{ElementNode, ElementWay, ElementRelation}

// Coordinate is a bare latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawPlaceElement is an OSM element as returned by the place source.
// Nodes carry Lat/Lon; ways and relations carry Center.
type RawPlaceElement struct {
	Type   ElementType       `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Coordinate       `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// OSMID returns the "type/id" identifier.
func (e RawPlaceElement) OSMID() string {
	return string(e.Type) + "/" + strconv.FormatInt(e.ID, 10)
}

// Tag returns the trimmed value of key, or "".
func (e RawPlaceElement) Tag(key string) string {
	return strings.TrimSpace(e.Tags[key])
}

// FirstTag returns the first non-blank value among keys.
func (e RawPlaceElement) FirstTag(keys ...string) string {
	for _, key := range keys {
		if v := e.Tag(key); v != "" {
			return v
		}
	}

	return ""
}

// Position returns the element's own coordinates, else its center.
func (e RawPlaceElement) Position() (orb.Point, bool) {
	if e.Lat != nil && e.Lon != nil {
		return orb.Point{*e.Lon, *e.Lat}, true
	}
	if e.Center != nil {
		return orb.Point{e.Center.Lon, e.Center.Lat}, true
	}

	return orb.Point{}, false
}

// HasName reports whether the element carries a non-blank name tag.
func (e RawPlaceElement) HasName() bool {
	return e.Tag("name") != ""
}
