package impl

import (
	"testing"

	"leadforge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFilterNamed(t *testing.T) {
	elements := []entity.RawPlaceElement{
		{ID: 1, Tags: map[string]string{"name": "Keep"}},
		{ID: 2, Tags: map[string]string{"name": "   "}},
		{ID: 3},
		{ID: 4, Tags: map[string]string{"amenity": "cafe"}},
		{ID: 5, Tags: map[string]string{"name": "Also keep"}},
	}

	named := FilterNamed(elements)

	assert.Len(t, named, 2)
	assert.Equal(t, int64(1), named[0].ID)
	assert.Equal(t, int64(5), named[1].ID)
}

func TestCompletenessScore(t *testing.T) {
	full := entity.SearchResult{
		Name:     "Daily Grind",
		Address:  ptr("1 Main St"),
		Phone:    ptr("+15185550100"),
		Website:  ptr("https://grind.example"),
		PhotoURL: ptr("https://photo.example"),
		Types:    []string{"cafe"},
		Rating:   ptr(4.5),
	}
	assert.Equal(t, 15, CompletenessScore(&full))

	nameOnly := entity.SearchResult{Name: "Daily Grind", Types: []string{}}
	assert.Equal(t, 5, CompletenessScore(&nameOnly))

	placeholder := entity.SearchResult{Name: entity.UnknownVenueName}
	assert.Equal(t, 0, CompletenessScore(&placeholder))
}

func TestRank_StableDescending(t *testing.T) {
	results := []entity.SearchResult{
		{OSMID: "node/1", Name: "A"},
		{OSMID: "node/2", Name: "B", Address: ptr("x")},
		{OSMID: "node/3", Name: "C"},
		{OSMID: "node/4", Name: "D", Address: ptr("y")},
		{OSMID: "node/5", Name: "E"},
	}

	Rank(results)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.OSMID)
	}
	assert.Equal(t, []string{"node/2", "node/4", "node/1", "node/3", "node/5"}, ids)
	assert.Equal(t, 8, results[0].Score)
	assert.Equal(t, 5, results[4].Score)
}
