package bonus

import "sort"

// Bonus tiers awarded per fixture, in rank order.
var tiers = [3]int{3, 2, 1}

// BPSEntry is one (element, bps score) pair for a single fixture.
type BPSEntry struct {
	Element int
	BPS     int
}

// Provisional computes the live bonus award map for one fixture from its BPS
// rankings. Entries are grouped into ties; every member of a tie group
// receives the same tier and the group consumes one tier slot per member.
// Once three or more slots are consumed no further tier is awarded, so a
// two-way tie for first skips the second tier entirely and a three-way tie
// for first exhausts the podium. Players awarded nothing are absent from the
// returned map, not zero.
func Provisional(entries []BPSEntry) map[int]int {
	awarded := make(map[int]int, len(tiers))
	if len(entries) == 0 {
		return awarded
	}

	ranked := append([]BPSEntry(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BPS > ranked[j].BPS
	})

	tierIndex := 0
	consumed := 0
	for start := 0; start < len(ranked) && consumed < len(tiers); {
		end := start
		for end < len(ranked) && ranked[end].BPS == ranked[start].BPS {
			end++
		}

		for _, member := range ranked[start:end] {
			awarded[member.Element] = tiers[tierIndex]
		}

		consumed += end - start
		tierIndex = consumed
		start = end
	}

	return awarded
}
