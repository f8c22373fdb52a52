package impl

import (
	"slices"

	"leadforge/internal/domain/entity"
)

// Completeness score weights.
const (
	scoreName       = 5
	scoreAddress    = 3
	scorePhone      = 2
	scoreWebsite    = 2
	scorePhoto      = 1
	scoreCategories = 1
	scoreRating     = 1
)

// FilterNamed drops elements without a non-blank name tag, keeping order.
func FilterNamed(elements []entity.RawPlaceElement) []entity.RawPlaceElement {
	named := make([]entity.RawPlaceElement, 0, len(elements))
	for _, el := range elements {
		if el.HasName() {
			named = append(named, el)
		}
	}

	return named
}

// CompletenessScore counts how much useful data a result carries.
func CompletenessScore(r *entity.SearchResult) int {
	score := 0
	if r.HasRealName() {
		score += scoreName
	}
	if r.Address != nil {
		score += scoreAddress
	}
	if r.Phone != nil {
		score += scorePhone
	}
	if r.Website != nil {
		score += scoreWebsite
	}
	if r.PhotoURL != nil {
		score += scorePhoto
	}
	if len(r.Types) > 0 {
		score += scoreCategories
	}
	if r.Rating != nil {
		score += scoreRating
	}

	return score
}

// Rank scores every result and sorts them by descending score. Ties keep
// their input order.
func Rank(results []entity.SearchResult) {
	for i := range results {
		results[i].Score = CompletenessScore(&results[i])
	}

	slices.SortStableFunc(results, func(a, b entity.SearchResult) int {
		return b.Score - a.Score
	})
}
