package dataset

import (
	"math"

	"rgDashboard/domain"
)

// SegmentMultipliers is a per-segment scaling table. A zero entry for a
// named segment means the table has no value for it and Default applies.
type SegmentMultipliers struct {
	All     float64 `koanf:"all"`
	Casino  float64 `koanf:"casino"`
	Sport   float64 `koanf:"sport"`
	Poker   float64 `koanf:"poker"`
	Virtual float64 `koanf:"virtual"`
	Skill   float64 `koanf:"skill"`
	Others  float64 `koanf:"others"`
	Default float64 `koanf:"default"`
}

func (m SegmentMultipliers) For(p domain.ProductSegment) float64 {
	var v float64
	switch p {
	case domain.SegmentAll:
		v = m.All
	case domain.SegmentCasino:
		v = m.Casino
	case domain.SegmentSport:
		v = m.Sport
	case domain.SegmentPoker:
		v = m.Poker
	case domain.SegmentVirtual:
		v = m.Virtual
	case domain.SegmentSkill:
		v = m.Skill
	case domain.SegmentOthers:
		v = m.Others
	default:
		v = m.Default
	}
	if v == 0 {
		return m.Default
	}
	return v
}

func (m SegmentMultipliers) values() []float64 {
	return []float64{m.All, m.Casino, m.Sport, m.Poker, m.Virtual, m.Skill, m.Others, m.Default}
}

// RoundHalfUp rounds .5 towards +Inf, matching the dashboard's chart rounding.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return RoundHalfUp(x*10) / 10
}
