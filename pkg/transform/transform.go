package transform

import "strings"

// Placeholder is the token replaced by each swap value
const Placeholder = "{SWAP}"

// Set holds the transformation lists applied to every base word.
// A Set is never modified once parsed.
type Set struct {
	Prepend    []string
	Append     []string
	Swap       []string
	Extensions []string
}

// Parse builds a Set from comma-separated lists. An empty list string means
// the transformation is not configured.
func Parse(prepend, app, swap, extensions string) *Set {
	return &Set{
		Prepend:    SplitList(prepend),
		Append:     SplitList(app),
		Swap:       SplitList(swap),
		Extensions: SplitList(extensions),
	}
}

// SplitList splits raw on commas, keeping empty segments
func SplitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

// Estimate returns a rough output size for base input lines.
// Swap values and combined stages are not accounted for.
func (s *Set) Estimate(base int) int {
	return base * (1 + len(s.Prepend) + len(s.Append) + len(s.Extensions))
}
