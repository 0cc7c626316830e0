package careplan

import (
	"math"
	"strconv"
	"strings"
)

// defaultTaskMinutes is assumed when a task has no duration or the duration
// string has no leading integer.
const defaultTaskMinutes = 30

// weeklyMultipliers maps lowercased frequency labels to visits per week.
// Unrecognized labels count as a single weekly occurrence.
var weeklyMultipliers = map[string]float64{
	"daily":          7,
	"3 times daily":  21,
	"3 times weekly": 3,
	"weekly":         1,
}

// EstimateWeeklyHours sums each task's weekly-hours contribution
// (minutes/60 x frequency multiplier) and rounds the total up to the nearest
// half hour. Ceiling is the authoritative policy: 6.3 -> 6.5, and exact
// multiples stay put (6.5 -> 6.5).
func EstimateWeeklyHours(tasks []TaskSpecification) float64 {
	var total float64
	for _, t := range tasks {
		minutes := parseDurationMinutes(t.Duration)
		mult, ok := weeklyMultipliers[strings.ToLower(strings.TrimSpace(t.Frequency))]
		if !ok {
			mult = 1
		}
		total += float64(minutes) / 60 * mult
	}
	return math.Ceil(total*2) / 2
}

// parseDurationMinutes extracts the leading integer from a duration string
// such as "45 minutes". Absent or unparseable durations default to 30.
func parseDurationMinutes(duration *string) int {
	if duration == nil {
		return defaultTaskMinutes
	}
	s := strings.TrimSpace(*duration)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return defaultTaskMinutes
	}
	minutes, err := strconv.Atoi(s[:end])
	if err != nil {
		return defaultTaskMinutes
	}
	return minutes
}
