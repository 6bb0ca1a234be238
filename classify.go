package main

import "strings"

// SpaceTypeUnknown is returned when no keyword matches.
const SpaceTypeUnknown = ""

// ClassifySpace infers a space type label from the three free-text
// name fields. The normalized fields are joined into one haystack and
// the rule set's types are tried in table order, each keyword in list
// order; the first hit wins. Order is the tie-break: a space matching
// both "bed" and "bath" classifies as whichever type sits earlier in
// the table. Returns SpaceTypeUnknown when nothing matches.
func ClassifySpace(rs RuleSet, name, longName, objectType string) string {
	haystack := strings.Join([]string{
		NormalizeText(name),
		NormalizeText(longName),
		NormalizeText(objectType),
	}, " ")

	for _, st := range rs.Types {
		for _, keyword := range dedupedKeywords(st.Keywords) {
			if strings.Contains(haystack, keyword) {
				return st.Label
			}
		}
	}
	return SpaceTypeUnknown
}
