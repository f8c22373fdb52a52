package impl

import (
	"strings"

	"leadforge/internal/domain/entity"
)

// osmFields are the values derived from an element's tags.
type osmFields struct {
	name         *string
	address      *string
	phone        *string
	website      *string
	categories   []string
	openingHours []string
	lat          *float64
	lon          *float64
}

var (
	osmAddressKeys  = []string{"addr:housenumber", "addr:street", "addr:city", "addr:state", "addr:postcode"}
	osmCategoryKeys = []string{"amenity", "shop", "leisure", "craft"}
)

func deriveOSMFields(el *entity.RawPlaceElement) osmFields {
	f := osmFields{
		name:    nonBlank(el.Tag("name")),
		phone:   nonBlank(el.FirstTag("phone", "contact:phone")),
		website: nonBlank(el.FirstTag("website", "contact:website")),
	}

	parts := make([]string, 0, len(osmAddressKeys))
	for _, key := range osmAddressKeys {
		if v := el.Tag(key); v != "" {
			parts = append(parts, v)
		}
	}
	f.address = nonBlank(strings.Join(parts, ", "))

	for _, key := range osmCategoryKeys {
		if v := el.Tag(key); v != "" {
			f.categories = append(f.categories, v)
		}
	}

	if hours := el.Tag("opening_hours"); hours != "" {
		f.openingHours = []string{hours}
	}

	if point, ok := el.Position(); ok {
		lat, lon := point.Lat(), point.Lon()
		f.lat, f.lon = &lat, &lon
	}

	return f
}

// fieldRule fills one SearchResult field from the enrichment record (may be nil)
// and the OSM-derived values.
type fieldRule struct {
	field string
	apply func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields)
}

// precedence is the single source of truth for merging the two sources:
// a non-null enrichment value wins, else the OSM value, else null.
var precedence = []fieldRule{
	{"google_place_id", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		if rec != nil {
			dst.GooglePlaceID = nonBlank(rec.PlaceID)
		}
	}},
	{"name", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		name := prefer(enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.Name }), osm.name)
		dst.Name = entity.UnknownVenueName
		if name != nil {
			dst.Name = *name
		}
	}},
	{"address", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		dst.Address = prefer(enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.Address }), osm.address)
	}},
	{"phone_number", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		dst.Phone = prefer(enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.Phone }), osm.phone)
	}},
	{"website", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		dst.Website = prefer(enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.Website }), osm.website)
	}},
	{"types", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		dst.Types = preferSlice(enriched(rec, func(r *entity.EnrichmentRecord) []string { return r.Types }), osm.categories)
	}},
	{"opening_hours", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, osm *osmFields) {
		dst.OpeningHours = preferSlice(enriched(rec, func(r *entity.EnrichmentRecord) []string { return r.OpeningHours }), osm.openingHours)
	}},
	{"photo_url", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.PhotoURL = enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.PhotoURL })
	}},
	{"rating", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.Rating = enriched(rec, func(r *entity.EnrichmentRecord) *float64 { return r.Rating })
	}},
	{"user_ratings_total", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.RatingCount = enriched(rec, func(r *entity.EnrichmentRecord) *int { return r.RatingCount })
	}},
	{"business_status", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.BusinessStatus = enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.BusinessStatus })
	}},
	{"google_maps_url", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.MapsURL = enrichedString(rec, func(r *entity.EnrichmentRecord) *string { return r.MapsURL })
	}},
	{"price_level", func(dst *entity.SearchResult, rec *entity.EnrichmentRecord, _ *osmFields) {
		dst.PriceLevel = enriched(rec, func(r *entity.EnrichmentRecord) *int { return r.PriceLevel })
	}},
	{"latitude", func(dst *entity.SearchResult, _ *entity.EnrichmentRecord, osm *osmFields) {
		dst.Latitude = osm.lat
	}},
	{"longitude", func(dst *entity.SearchResult, _ *entity.EnrichmentRecord, osm *osmFields) {
		dst.Longitude = osm.lon
	}},
}

// NormalizeResult merges an OSM element and an optional enrichment record into
// one search result. The score is left at zero for the ranker.
func NormalizeResult(el *entity.RawPlaceElement, rec *entity.EnrichmentRecord) entity.SearchResult {
	osm := deriveOSMFields(el)
	result := entity.SearchResult{OSMID: el.OSMID()}

	for _, rule := range precedence {
		rule.apply(&result, rec, &osm)
	}

	return result
}

func enriched[T any](rec *entity.EnrichmentRecord, get func(*entity.EnrichmentRecord) T) T {
	var zero T
	if rec == nil {
		return zero
	}

	return get(rec)
}

func enrichedString(rec *entity.EnrichmentRecord, get func(*entity.EnrichmentRecord) *string) *string {
	v := enriched(rec, get)
	if v == nil {
		return nil
	}

	return nonBlank(*v)
}

func prefer[T any](primary, fallback *T) *T {
	if primary != nil {
		return primary
	}

	return fallback
}

func preferSlice(primary, fallback []string) []string {
	if len(primary) > 0 {
		return append([]string(nil), primary...)
	}
	if len(fallback) > 0 {
		return append([]string(nil), fallback...)
	}

	return []string{}
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}
