package ownership

import (
	"slices"

	"steam-checker/core/steam"
	"steam-checker/core/utils"
)

// Report is the partition of a requested games list by ownership.
type Report struct {
	// Requested holds every requested title in input order.
	Requested []string
	// Owned holds the requested titles found in the library, sorted.
	Owned []string
	// NotOwned holds the remaining requested titles, sorted.
	NotOwned []string
}

// Compare partitions requested by case-insensitive membership in owned.
// Titles are kept as requested; duplicates are counted each time.
func Compare(owned []steam.OwnedGame, requested []string) *Report {
	library := make(map[string]struct{}, len(owned))
	for _, game := range owned {
		library[utils.FoldCase(game.Name)] = struct{}{}
	}

	report := &Report{
		Requested: requested,
		Owned:     []string{},
		NotOwned:  []string{},
	}
	for _, title := range requested {
		if _, ok := library[utils.FoldCase(title)]; ok {
			report.Owned = append(report.Owned, title)
		} else {
			report.NotOwned = append(report.NotOwned, title)
		}
	}

	slices.Sort(report.Owned)
	slices.Sort(report.NotOwned)

	return report
}

// Total is the number of titles checked.
func (r *Report) Total() int {
	return len(r.Requested)
}
