package logic

import (
	"sort"

	"livelyicons/internal/motion"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByScore SortMode = iota
	SortByName
	SortByCategory
	SortByMotion
)

var sortModeNames = map[SortMode]string{
	SortByScore:    "score",
	SortByName:     "name",
	SortByCategory: "category",
	SortByMotion:   "motion",
}

func (s SortMode) String() string {
	if name, ok := sortModeNames[s]; ok {
		return name
	}
	return "score"
}

// Next cycles through the sort modes
func (s SortMode) Next() SortMode {
	return (s + 1) % SortMode(len(sortModeNames))
}

// ParseSortMode maps a sort name to its mode
func ParseSortMode(name string) (SortMode, bool) {
	for mode, n := range sortModeNames {
		if n == name {
			return mode, true
		}
	}
	return SortByScore, false
}

// SortRows orders rows in place. Score order is the ranking order itself;
// the other modes break ties by score and then by name.
func SortRows(rows []Row, mode SortMode) {
	if mode == SortByScore {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch mode {
		case SortByCategory:
			if a.Icon.Category != b.Icon.Category {
				return a.Icon.Category < b.Icon.Category
			}
		case SortByMotion:
			ai, bi := motionIndex(a.Icon.Motion), motionIndex(b.Icon.Motion)
			if ai != bi {
				return ai < bi
			}
		}
		if mode != SortByName && a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Icon.Name < b.Icon.Name
	})
}

func motionIndex(m motion.MotionType) int {
	for i, known := range motion.MotionTypes {
		if known == m {
			return i
		}
	}
	return len(motion.MotionTypes)
}
