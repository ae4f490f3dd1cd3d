package selector

import "strings"

// CreateSelector maps a canonical or camelCase selector name to a freshly
// constructed instance. Recognized canonical names are "best_first",
// "depth_first", "best_estimate", and "hybrid"; their camelCase aliases
// ("bestFirst", "depthFirst", "bestEstimate") are also accepted. Any other
// name, including the empty string, falls back to BestFirstSelector —
// this is documented behavior, not an error (per §7 of the spec this
// factory implements).
func CreateSelector(name string) Selector {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "")) {
	case "depthfirst":
		return NewDepthFirstSelector()
	case "bestestimate":
		return NewBestEstimateSelector()
	case "hybrid":
		return NewHybridSelector()
	default:
		return NewBestFirstSelector()
	}
}
