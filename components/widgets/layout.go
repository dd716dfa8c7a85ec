package widgets

import "sort"

const unorderedRank = int(^uint(0) >> 1)

// sortByOrder sorts widgets by ascending config order hint. Widgets without a
// hint sort last; ties keep store order.
func sortByOrder(widgets []SavedWidget) []SavedWidget {
	out := make([]SavedWidget, len(widgets))
	copy(out, widgets)
	sort.SliceStable(out, func(i, j int) bool {
		return orderRank(out[i]) < orderRank(out[j])
	})
	return out
}

func orderRank(w SavedWidget) int {
	if n, ok := configOrder(w.Config); ok {
		return n
	}
	return unorderedRank
}

// applySelection projects an explicit selection over the available set. The
// selection is exhaustive: available widgets missing from it are excluded,
// and ids with no available match (deleted, or unassigned from the page) are
// silently dropped.
func applySelection(available []SavedWidget, ids []string) []SavedWidget {
	index := make(map[string]SavedWidget, len(available))
	for _, w := range available {
		index[w.ID] = w
	}
	result := make([]SavedWidget, 0, len(ids))
	for _, id := range ids {
		if w, ok := index[id]; ok {
			result = append(result, w)
		}
	}
	return result
}

func widgetIDs(widgets []SavedWidget) []string {
	ids := make([]string, len(widgets))
	for i, w := range widgets {
		ids[i] = w.ID
	}
	return ids
}
