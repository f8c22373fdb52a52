package impl

import (
	"testing"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryResolver_MappedTerm(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{})

	conditions, err := resolver.Resolve("  Cafes ")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Equals("amenity", "cafe")}, conditions)
}

func TestCategoryResolver_MultiConditionAndWildcard(t *testing.T) {
	resolver := NewCategoryResolver(nil)

	bars, err := resolver.Resolve("bars")
	require.NoError(t, err)
	assert.Len(t, bars, 2)

	offices, err := resolver.Resolve("offices")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Wildcard("office")}, offices)
}

func TestCategoryResolver_FallbackToName(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{})

	conditions, err := resolver.Resolve("taco stand")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Equals("name", "taco stand")}, conditions)
}

func TestCategoryResolver_FallbackKeepsCase(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{})

	conditions, err := resolver.Resolve(" Joe's Diner ")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Equals("name", "Joe's Diner")}, conditions)
}

func TestCategoryResolver_PatternNameMatch(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{Search: &config.SearchConfig{NameMatch: "pattern"}})

	conditions, err := resolver.Resolve("a.b cafe")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Pattern("name", `a\.b cafe`, true)}, conditions)
}

func TestCategoryResolver_EmptyTerm(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{})

	_, err := resolver.Resolve("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuery)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "cafes")
}

func TestCategoryResolver_EmptyTermUsesDefault(t *testing.T) {
	resolver := NewCategoryResolver(&config.Config{Search: &config.SearchConfig{DefaultCategory: "Restaurants"}})

	conditions, err := resolver.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCondition{entity.Equals("amenity", "restaurant")}, conditions)
}

func TestCategoryResolver_CategoriesSortedCopy(t *testing.T) {
	resolver := NewCategoryResolver(nil)

	categories := resolver.Categories()
	assert.IsNonDecreasing(t, categories)
	assert.Contains(t, categories, "supermarkets")

	categories[0] = "mutated"
	assert.NotEqual(t, "mutated", resolver.Categories()[0])
}

func TestCategoryResolver_ResolveReturnsCopy(t *testing.T) {
	resolver := NewCategoryResolver(nil)

	first, err := resolver.Resolve("cafes")
	require.NoError(t, err)
	first[0] = entity.Equals("amenity", "mutated")

	second, err := resolver.Resolve("cafes")
	require.NoError(t, err)
	assert.Equal(t, entity.Equals("amenity", "cafe"), second[0])
}
