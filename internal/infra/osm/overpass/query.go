// Package overpass fetches OSM elements from an Overpass API interpreter.
package overpass

import (
	"fmt"
	"strings"
	"time"

	"leadforge/internal/domain/entity"
	"leadforge/internal/errors"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// BuildQuery renders the Overpass QL for conditions inside bbox.
// One clause is emitted per element type and condition, in that order.
func BuildQuery(conditions []entity.TagCondition, bbox entity.BoundingBox, limit int, timeout time.Duration) (string, error) {
	if len(conditions) == 0 {
		return "", errors.New("at least one tag condition is required")
	}

	box := bbox.String()

	var clauses strings.Builder
	for _, elementType := range entity.ElementTypes {
		for _, cond := range conditions {
			filter, err := renderFilter(cond)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&clauses, "%s%s(%s);", elementType, filter, box)
		}
	}

	return fmt.Sprintf("[out:json][timeout:%d];(%s);out center %d;",
		int(timeout.Seconds()), clauses.String(), limit), nil
}

func renderFilter(cond entity.TagCondition) (string, error) {
	if strings.TrimSpace(cond.Key) == "" {
		return "", errors.New("tag condition key is empty")
	}

	key := quote(cond.Key)

	switch cond.Kind {
	case entity.TagMatchEquals:
		return fmt.Sprintf("[%s=%s]", key, quote(cond.Value)), nil
	case entity.TagMatchWildcard:
		return fmt.Sprintf("[%s]", key), nil
	case entity.TagMatchPattern:
		if cond.CaseInsensitive {
			return fmt.Sprintf("[%s~%s,i]", key, quote(cond.Value)), nil
		}

		return fmt.Sprintf("[%s~%s]", key, quote(cond.Value)), nil
	default:
		return "", errors.Errorf("unknown tag match kind %d", cond.Kind)
	}
}

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
