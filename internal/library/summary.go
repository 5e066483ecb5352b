package library

import (
	"cmp"
	"slices"
)

// LicenseCount is the number of records declaring a license id.
type LicenseCount struct {
	License string
	Count   int
}

// LicenseSummary counts records per license, most used first, ties by id.
// A record listing the same id twice is counted once.
func LicenseSummary(libs Libraries) []LicenseCount {
	counts := make(map[string]int)
	for _, lib := range libs {
		for _, id := range lib.LicenseIDs() {
			counts[id]++
		}
	}

	out := make([]LicenseCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, LicenseCount{License: id, Count: n})
	}
	slices.SortFunc(out, func(a, b LicenseCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.License, b.License)
	})
	return out
}
