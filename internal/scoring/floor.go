package scoring

const (
	floorMinItems     = 5
	floorScore        = 0.3
	floorMinSurvivors = 3
)

// ApplyFloor drops items scoring at or below 0.3 when at least five items
// are present, unless fewer than three would remain.
func ApplyFloor[T any](items []T, scoreOf func(T) float64) []T {
	if len(items) < floorMinItems {
		return items
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if scoreOf(item) > floorScore {
			kept = append(kept, item)
		}
	}
	if len(kept) < floorMinSurvivors {
		return items
	}
	return kept
}
