package leaderboard

import "laptimer/internal/core/timing"

// NoLeader is the index reported when no driver has a value.
const NoLeader = -1

// Source exposes the per-driver bests the aggregator compares.
type Source interface {
	BestLap() timing.Span
	BestSplit() timing.Span
}

// Leader is the fastest value across drivers and the index of its owner.
type Leader struct {
	Best  timing.Span
	Index int
}

// Leaders holds the current global best lap and best split.
type Leaders struct {
	Lap   Leader
	Split Leader
}

// Empty returns Leaders with no winner in either category.
func Empty() Leaders {
	return Leaders{
		Lap:   Leader{Index: NoLeader},
		Split: Leader{Index: NoLeader},
	}
}

// BestLap returns the fastest best lap. Ties keep the lowest index.
func BestLap[S Source](sources []S) Leader {
	return best(sources, func(source S) timing.Span { return source.BestLap() })
}

// BestSplit returns the fastest best split. Ties keep the lowest index.
func BestSplit[S Source](sources []S) Leader {
	return best(sources, func(source S) timing.Span { return source.BestSplit() })
}

func best[S Source](sources []S, value func(S) timing.Span) Leader {
	leader := Leader{Index: NoLeader}
	for index, source := range sources {
		candidate := value(source)
		if candidate.Beats(leader.Best) {
			leader = Leader{Best: candidate, Index: index}
		}
	}
	return leader
}

// RecomputeLap replaces the lap leader from sources.
func (leaders *Leaders) RecomputeLap(sources []Source) {
	leaders.Lap = BestLap(sources)
}

// RecomputeSplit replaces the split leader from sources.
func (leaders *Leaders) RecomputeSplit(sources []Source) {
	leaders.Split = BestSplit(sources)
}

// IsLapLeader reports whether index holds the global best lap.
func (leaders Leaders) IsLapLeader(index int) bool {
	return leaders.Lap.Index != NoLeader && leaders.Lap.Index == index
}

// IsSplitLeader reports whether index holds the global best split.
func (leaders Leaders) IsSplitLeader(index int) bool {
	return leaders.Split.Index != NoLeader && leaders.Split.Index == index
}
