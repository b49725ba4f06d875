package model

// PriorityLevel names a total priority bucket.
type PriorityLevel string

// Priority levels, one per valid total priority value.
const (
	PriorityVeryLow  PriorityLevel = "very_low"
	PriorityLow      PriorityLevel = "low"
	PriorityMedium   PriorityLevel = "medium"
	PriorityHigh     PriorityLevel = "high"
	PriorityVeryHigh PriorityLevel = "very_high"
	PriorityUnknown  PriorityLevel = "unknown"
)

// Total priority bounds.
const (
	MinTotalPriority = 0
	MaxTotalPriority = 4
)

// PriorityLevels returns the five known levels from highest to lowest.
func PriorityLevels() []PriorityLevel {
	return []PriorityLevel{
		PriorityVeryHigh,
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
		PriorityVeryLow,
	}
}

// Valid reports whether p is one of the five known levels.
func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityVeryLow, PriorityLow, PriorityMedium, PriorityHigh, PriorityVeryHigh:
		return true
	default:
		return false
	}
}

// CalculateTotalPriority maps an importance/urgency pair to a total priority
// in 0..4. Valid pairs use the fixed table; anything else falls back to the
// clamped sum.
func CalculateTotalPriority(importance, urgency Level) int {
	switch {
	case importance == LevelLow && urgency == LevelLow:
		return 0
	case importance == LevelLow && urgency == LevelMedium,
		importance == LevelMedium && urgency == LevelLow:
		return 1
	case importance == LevelLow && urgency == LevelHigh,
		importance == LevelHigh && urgency == LevelLow,
		importance == LevelMedium && urgency == LevelMedium:
		return 2
	case importance == LevelHigh && urgency == LevelMedium,
		importance == LevelMedium && urgency == LevelHigh:
		return 3
	case importance == LevelHigh && urgency == LevelHigh:
		return 4
	}

	return clamp(int(importance)+int(urgency), MinTotalPriority, MaxTotalPriority)
}

// PriorityStatus returns the named bucket for a total priority.
func PriorityStatus(totalPriority int) PriorityLevel {
	switch totalPriority {
	case 4:
		return PriorityVeryHigh
	case 3:
		return PriorityHigh
	case 2:
		return PriorityMedium
	case 1:
		return PriorityLow
	case 0:
		return PriorityVeryLow
	default:
		return PriorityUnknown
	}
}

// Priority colors. Every view takes its colors from here.
const (
	ColorPriorityVeryHigh = "#ff4444"
	ColorPriorityHigh     = "#ff8800"
	ColorPriorityMedium   = "#ffcc00"
	ColorPriorityLow      = "#88cc00"
	ColorPriorityVeryLow  = "#44aa44"
	ColorPriorityUnknown  = "#cccccc"
)

// PriorityColor returns the hex color for a total priority. Values outside
// 0..4 are neutral gray.
func PriorityColor(totalPriority int) string {
	return PriorityStatus(totalPriority).Color()
}

// Color returns the hex color of the level.
func (p PriorityLevel) Color() string {
	switch p {
	case PriorityVeryHigh:
		return ColorPriorityVeryHigh
	case PriorityHigh:
		return ColorPriorityHigh
	case PriorityMedium:
		return ColorPriorityMedium
	case PriorityLow:
		return ColorPriorityLow
	case PriorityVeryLow:
		return ColorPriorityVeryLow
	default:
		return ColorPriorityUnknown
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
