package entity

// TagMatch is the kind of a TagCondition.
type TagMatch int

const (
	// TagMatchEquals matches an exact key=value pair.
	TagMatchEquals TagMatch = iota
	// TagMatchWildcard matches any value for the key.
	TagMatchWildcard
	// TagMatchPattern matches the value against a regular expression.
	TagMatchPattern
)

// TagCondition is one OSM tag filter. Construct it with Equals, Wildcard or Pattern.
type TagCondition struct {
	Kind            TagMatch
	Key             string
	Value           string
	CaseInsensitive bool
}

// Equals matches elements whose key has exactly value.
func Equals(key, value string) TagCondition {
	return TagCondition{Kind: TagMatchEquals, Key: key, Value: value}
}

// Wildcard matches elements carrying key with any value.
func Wildcard(key string) TagCondition {
	return TagCondition{Kind: TagMatchWildcard, Key: key}
}

// Pattern matches elements whose key value matches the regular expression.
func Pattern(key, pattern string, caseInsensitive bool) TagCondition {
	return TagCondition{Kind: TagMatchPattern, Key: key, Value: pattern, CaseInsensitive: caseInsensitive}
}
