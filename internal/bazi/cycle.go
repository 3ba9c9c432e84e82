package bazi

import "github.com/f3rmion/yuanfen/internal/calendar"

const (
	// ReferenceJDN anchors the day cycle: 2000-01-01.
	ReferenceJDN = calendar.J2000
	// ReferenceCycleDay is the cycle position assigned to ReferenceJDN.
	ReferenceCycleDay = 6

	// ReferenceYear is a Jia-Zi year, cycle position 0.
	ReferenceYear = 1984
)

// CycleDay returns the 0-59 sexagenary position of a Julian Day Number.
// Consecutive days advance by exactly one position.
func CycleDay(jdn int) int {
	return calendar.FloorMod(jdn-ReferenceJDN+ReferenceCycleDay, 60)
}

// StemBranch splits a cycle position into its stem and branch.
func StemBranch(cycle int) (Stem, Branch) {
	return Stem(cycle % NumStems), Branch(cycle % NumBranches)
}

// CyclePosition is the inverse of StemBranch. Only stem/branch pairs of
// equal parity exist in the cycle; ok is false otherwise.
func CyclePosition(s Stem, b Branch) (pos int, ok bool) {
	for i := 0; i < 60; i++ {
		if Stem(i%NumStems) == s && Branch(i%NumBranches) == b {
			return i, true
		}
	}
	return 0, false
}
