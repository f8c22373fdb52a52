package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox_String_UsesOverpassOrder(t *testing.T) {
	// Nominatim returns (south, north, west, east) = (1, 3, 2, 4)
	box := BoundingBoxFromNominatim(1, 3, 2, 4)

	assert.Equal(t, "1,2,3,4", box.String())
}

func TestBoundingBox_Bound(t *testing.T) {
	box := BoundingBox{South: 42.7, West: -73.7, North: 42.8, East: -73.6}
	bound := box.Bound()

	assert.Equal(t, -73.7, bound.Min.Lon())
	assert.Equal(t, 42.7, bound.Min.Lat())
	assert.Equal(t, -73.6, bound.Max.Lon())
	assert.Equal(t, 42.8, bound.Max.Lat())

	loc := Location{Latitude: 42.73, Longitude: -73.69, BoundingBox: box}
	assert.True(t, loc.Contains(loc.Point()))
}

func TestRawPlaceElement_Position(t *testing.T) {
	lat, lon := 42.1, -73.2
	node := RawPlaceElement{Type: ElementNode, ID: 1, Lat: &lat, Lon: &lon}
	way := RawPlaceElement{Type: ElementWay, ID: 2, Center: &Coordinate{Lat: 1.5, Lon: 2.5}}
	bare := RawPlaceElement{Type: ElementRelation, ID: 3}

	p, ok := node.Position()
	assert.True(t, ok)
	assert.Equal(t, lat, p.Lat())
	assert.Equal(t, lon, p.Lon())

	p, ok = way.Position()
	assert.True(t, ok)
	assert.Equal(t, 1.5, p.Lat())
	assert.Equal(t, 2.5, p.Lon())

	_, ok = bare.Position()
	assert.False(t, ok)

	assert.Equal(t, "way/2", way.OSMID())
}

func TestLeadStatus_IsValid(t *testing.T) {
	assert.True(t, LeadStatusFollowedUp.IsValid())
	assert.True(t, LeadStatus("Not Interested").IsValid())
	assert.False(t, LeadStatus("new").IsValid())
	assert.False(t, LeadStatus("").IsValid())
}

func TestSavedLead_ApplyEnrichment(t *testing.T) {
	oldPhone := "+1 518 555 0100"
	newPhone := "+1 518 555 0199"
	rating := 4.5
	lead := &SavedLead{Name: "Old Cafe", Phone: &oldPhone}

	lead.ApplyEnrichment(&EnrichmentRecord{
		PlaceID: "abc",
		Phone:   &newPhone,
		Rating:  &rating,
		Types:   []string{"cafe"},
	})

	assert.Equal(t, "Old Cafe", lead.Name)
	assert.Equal(t, newPhone, *lead.Phone)
	assert.Equal(t, 4.5, *lead.Rating)
	assert.Equal(t, "abc", *lead.GooglePlaceID)
	assert.Equal(t, []string{"cafe"}, lead.Categories)

	newPhone = "changed"
	assert.Equal(t, "+1 518 555 0199", *lead.Phone, "enrichment values are copied")
}

func TestSavedLead_BestLink(t *testing.T) {
	maps := "https://maps.google.com/?cid=1"
	site := "https://cafe.example"
	lat, lon := 42.5, -73.25

	assert.Equal(t, maps, (&SavedLead{MapsURL: &maps, Website: &site}).BestLink())
	assert.Equal(t, site, (&SavedLead{Website: &site}).BestLink())
	assert.Equal(t, "geo:42.5,-73.25", (&SavedLead{Latitude: &lat, Longitude: &lon}).BestLink())
	assert.Equal(t, "Cafe", (&SavedLead{Name: "Cafe"}).BestLink())
}
