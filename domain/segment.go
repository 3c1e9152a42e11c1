package domain

import "strings"

// ProductSegment is the product vertical a dashboard view is filtered on.
type ProductSegment string

const (
	SegmentAll     ProductSegment = "All"
	SegmentCasino  ProductSegment = "Casino"
	SegmentSport   ProductSegment = "Sport"
	SegmentPoker   ProductSegment = "Poker"
	SegmentVirtual ProductSegment = "Virtual"
	SegmentSkill   ProductSegment = "Skill"
	SegmentOthers  ProductSegment = "Others"
)

// ProductSegments returns the named segments in display order, without All.
func ProductSegments() []ProductSegment {
	return []ProductSegment{
		SegmentCasino,
		SegmentSport,
		SegmentPoker,
		SegmentVirtual,
		SegmentSkill,
		SegmentOthers,
	}
}

// ParseProductSegment is case-insensitive. Empty or unknown input becomes All.
func ParseProductSegment(s string) ProductSegment {
	s = strings.TrimSpace(s)
	for _, p := range ProductSegments() {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return SegmentAll
}

// TimeRange selects the aggregation window of a view.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

func TimeRanges() []TimeRange {
	return []TimeRange{RangeDay, RangeWeek, RangeMonth, RangeYear}
}

// ParseTimeRange accepts keys, labels and the dashboard short forms.
// Unknown input becomes RangeDay.
func ParseTimeRange(s string) TimeRange {
	s = strings.TrimSpace(s)
	for _, r := range TimeRanges() {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, r.Label()) {
			return r
		}
	}

	switch strings.ToLower(s) {
	case "last7d", "7d":
		return RangeWeek
	case "last30d", "30d":
		return RangeMonth
	case "1y":
		return RangeYear
	default:
		return RangeDay
	}
}

func (r TimeRange) Label() string {
	switch r {
	case RangeWeek:
		return "Last 7 Days"
	case RangeMonth:
		return "Last 30 Days"
	case RangeYear:
		return "Last Year"
	default:
		return "Yesterday"
	}
}

// WindowMultiplier scales a daily base value into a windowed total.
// Every window longer than a week is scaled by 30.
func (r TimeRange) WindowMultiplier() int64 {
	switch r {
	case RangeDay:
		return 1
	case RangeWeek:
		return 7
	default:
		return 30
	}
}

// TimeFilter is the window selector used by the demographic view.
type TimeFilter string

const (
	FilterYesterday TimeFilter = "yesterday"
	FilterWeek      TimeFilter = "week"
	FilterMonth     TimeFilter = "month"
)

func ParseTimeFilter(s string) TimeFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "last7d", "last 7 days":
		return FilterWeek
	case "month", "last30d", "last 30 days":
		return FilterMonth
	default:
		return FilterYesterday
	}
}
