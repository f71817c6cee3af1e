package usecase

// Position spacing for newly created and renormalised items. Midpoint
// insertion halves the gap between neighbours on every drop into the same
// slot; when the gap collapses below minPositionGap the whole sequence is
// rewritten on the positionStep grid.
const (
	positionStep   = 1024.0
	minPositionGap = 1e-6
)

// nextPosition returns the position for appending after the current tail
// position. Pass 0 for an empty sequence.
func nextPosition(tail float64) float64 {
	return tail + positionStep
}

// positionForIndex computes the position for dropping an item at index
// within positions (the positions of the other items, ascending, with the
// moved item already excluded). The second result reports that neighbouring
// positions have collapsed and the caller must renormalise first.
func positionForIndex(positions []float64, index int) (float64, bool) {
	if index < 0 {
		index = 0
	}
	if index > len(positions) {
		index = len(positions)
	}

	switch {
	case len(positions) == 0:
		return positionStep, false
	case index == 0:
		head := positions[0]
		if head <= minPositionGap {
			return 0, true
		}
		return head / 2, false
	case index == len(positions):
		return positions[len(positions)-1] + positionStep, false
	default:
		before, after := positions[index-1], positions[index]
		if after-before <= minPositionGap {
			return 0, true
		}
		return before + (after-before)/2, false
	}
}

// renormalisePositions assigns fresh positions on the positionStep grid to
// ids given in their current order.
func renormalisePositions(ids []string) map[string]float64 {
	positions := make(map[string]float64, len(ids))
	for i, id := range ids {
		positions[id] = float64(i+1) * positionStep
	}
	return positions
}
