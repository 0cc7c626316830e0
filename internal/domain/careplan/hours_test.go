package careplan

import "testing"

func task(frequency string, duration *string) TaskSpecification {
	return TaskSpecification{TaskType: TaskTypePersonalCare, Description: "t", Frequency: frequency, Duration: duration}
}

func TestEstimateWeeklyHours_DailyHalfHour(t *testing.T) {
	got := EstimateWeeklyHours([]TaskSpecification{task("Daily", str("30 minutes"))})
	if got != 3.5 {
		t.Errorf("expected 3.5 weekly hours, got %v", got)
	}
}

func TestEstimateWeeklyHours_RoundsUpToHalfHour(t *testing.T) {
	// 54 minutes daily = 6.3 raw hours; ceiling policy gives 6.5.
	got := EstimateWeeklyHours([]TaskSpecification{task("Daily", str("54 minutes"))})
	if got != 6.5 {
		t.Errorf("expected 6.3 to round up to 6.5, got %v", got)
	}
}

func TestEstimateWeeklyHours_ExactMultipleUnchanged(t *testing.T) {
	// 6.5 raw hours must not be rounded further.
	got := EstimateWeeklyHours([]TaskSpecification{
		task("Daily", str("30 minutes")), // 3.5
		task("3 times weekly", str("60 minutes")), // 3.0
	})
	if got != 6.5 {
		t.Errorf("expected exactly 6.5, got %v", got)
	}
}

func TestEstimateWeeklyHours_FrequencyMultipliers(t *testing.T) {
	cases := []struct {
		frequency string
		want      float64
	}{
		{"Daily", 7},
		{"daily", 7},
		{"3 times daily", 21},
		{"3 Times Weekly", 3},
		{"Weekly", 1},
		{"Each visit", 1},
		{"whenever", 1},
	}
	for _, tc := range cases {
		got := EstimateWeeklyHours([]TaskSpecification{task(tc.frequency, str("60 minutes"))})
		if got != tc.want {
			t.Errorf("%q: expected %v hours, got %v", tc.frequency, tc.want, got)
		}
	}
}

func TestEstimateWeeklyHours_DefaultsDuration(t *testing.T) {
	// nil and unparseable durations both default to 30 minutes.
	for _, d := range []*string{nil, str("a while"), str("")} {
		got := EstimateWeeklyHours([]TaskSpecification{task("Weekly", d)})
		if got != 0.5 {
			t.Errorf("duration %v: expected 0.5, got %v", d, got)
		}
	}
}

func TestEstimateWeeklyHours_Empty(t *testing.T) {
	if got := EstimateWeeklyHours(nil); got != 0 {
		t.Errorf("expected 0 for no tasks, got %v", got)
	}
}

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in   *string
		want int
	}{
		{str("45 minutes"), 45},
		{str("120 minutes"), 120},
		{str("10min"), 10},
		{str(" 15 minutes "), 15},
		{str("minutes 20"), defaultTaskMinutes},
		{nil, defaultTaskMinutes},
	}
	for _, tc := range cases {
		if got := parseDurationMinutes(tc.in); got != tc.want {
			t.Errorf("parseDurationMinutes(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
