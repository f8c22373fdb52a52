package impl

import (
	"regexp"
	"slices"
	"strings"

	"leadforge/config"
	"leadforge/internal/domain/constants"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/usecase"
)

// categoryTable maps a case-folded category name to OSM tag filters. Multiple
// conditions are OR'ed by the place source.
var categoryTable = map[string][]entity.TagCondition{
	"bars":         {entity.Equals("amenity", "bar"), entity.Equals("amenity", "pub")},
	"restaurants":  {entity.Equals("amenity", "restaurant")},
	"cafes":        {entity.Equals("amenity", "cafe")},
	"breweries":    {entity.Equals("craft", "brewery")},
	"hotels":       {entity.Equals("tourism", "hotel")},
	"salons":       {entity.Equals("shop", "hairdresser"), entity.Equals("shop", "beauty")},
	"gyms":         {entity.Equals("leisure", "fitness_centre")},
	"supermarkets": {entity.Equals("shop", "supermarket")},

	"bakeries":    {entity.Equals("shop", "bakery")},
	"pharmacies":  {entity.Equals("amenity", "pharmacy"), entity.Equals("healthcare", "pharmacy")},
	"dentists":    {entity.Equals("amenity", "dentist"), entity.Equals("healthcare", "dentist")},
	"florists":    {entity.Equals("shop", "florist")},
	"bookstores":  {entity.Equals("shop", "books")},
	"car repair":  {entity.Equals("shop", "car_repair")},
	"fast food":   {entity.Equals("amenity", "fast_food")},
	"nightclubs":  {entity.Equals("amenity", "nightclub")},
	"veterinary":  {entity.Equals("amenity", "veterinary")},
	"offices":     {entity.Wildcard("office")},
	"crafts":      {entity.Wildcard("craft")},
	"coworking":   {entity.Equals("amenity", "coworking_space"), entity.Equals("office", "coworking")},
	"wineries":    {entity.Equals("craft", "winery"), entity.Equals("shop", "wine")},
	"spas":        {entity.Equals("leisure", "spa"), entity.Equals("shop", "massage")},
	"yoga":        {entity.Pattern("sport", "yoga", true)},
	"tattoo":      {entity.Equals("shop", "tattoo")},
	"pet stores":  {entity.Equals("shop", "pet")},
	"ice cream":   {entity.Equals("amenity", "ice_cream"), entity.Equals("shop", "ice_cream")},
	"barbers":     {entity.Equals("shop", "hairdresser"), entity.Pattern("hairdresser", "barber", true)},
	"clinics":     {entity.Equals("amenity", "clinic"), entity.Equals("amenity", "doctors")},
	"laundromats": {entity.Equals("shop", "laundry"), entity.Equals("shop", "dry_cleaning")},
}

type categoryResolver struct {
	defaultCategory string
	patternNames    bool
	categories      []string
}

// NewCategoryResolver builds the resolver from the search config section.
func NewCategoryResolver(cfg *config.Config) usecase.CategoryResolver {
	res := &categoryResolver{}
	if cfg != nil && cfg.Search != nil {
		res.defaultCategory = normalizeTerm(cfg.Search.DefaultCategory)
		res.patternNames = strings.EqualFold(cfg.Search.NameMatch, constants.NameMatchPattern)
	}

	res.categories = make([]string, 0, len(categoryTable))
	for name := range categoryTable {
		res.categories = append(res.categories, name)
	}
	slices.Sort(res.categories)

	return res
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Resolve maps queryTerm to tag conditions. Unmapped terms become a name match.
func (r *categoryResolver) Resolve(queryTerm string) ([]entity.TagCondition, error) {
	term := strings.TrimSpace(queryTerm)
	key := normalizeTerm(term)

	if key == "" {
		if r.defaultCategory == "" {
			return nil, domainerrors.ErrInvalidQuery.WithDetails(
				"query is required; supported categories: " + strings.Join(r.categories, ", "))
		}
		key = r.defaultCategory
		term = r.defaultCategory
	}

	if conditions, ok := categoryTable[key]; ok {
		return slices.Clone(conditions), nil
	}

	if r.patternNames {
		return []entity.TagCondition{entity.Pattern("name", regexp.QuoteMeta(term), true)}, nil
	}

	return []entity.TagCondition{entity.Equals("name", term)}, nil
}

// Categories lists the supported category names, sorted.
func (r *categoryResolver) Categories() []string {
	return slices.Clone(r.categories)
}
