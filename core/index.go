package core

// UnsetIndex marks "nothing highlighted".
const UnsetIndex = -1

// NextWrappingIndex returns the index reached by moving moveAmount positions from baseIndex
// in a circular list of itemCount items. A baseIndex outside [0, itemCount-1] counts as unset:
// a forward move then lands on the first item and a backward move on the last.
//
// Only a single overshoot is corrected, so a move larger than the list still lands on one of
// the two ends. With no items the result is UnsetIndex.
func NextWrappingIndex(moveAmount, baseIndex, itemCount int) int {
	if itemCount <= 0 {
		return UnsetIndex
	}
	lastIndex := itemCount - 1

	if baseIndex < 0 || baseIndex >= itemCount {
		if moveAmount > 0 {
			baseIndex = -1
		} else {
			baseIndex = lastIndex + 1
		}
	}

	newIndex := baseIndex + moveAmount
	if newIndex < 0 {
		newIndex = lastIndex
	} else if newIndex > lastIndex {
		newIndex = 0
	}
	return newIndex
}
