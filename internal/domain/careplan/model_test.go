package careplan

import (
	"regexp"
	"testing"
	"time"
)

var planNumberPattern = regexp.MustCompile(`^CP-\d{8}-[A-Z0-9]{5}$`)

func TestNewPlanNumber_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	pn := NewPlanNumber(now)
	if !planNumberPattern.MatchString(pn) {
		t.Errorf("plan number %q does not match CP-YYYYMMDD-XXXXX", pn)
	}
	if pn[:11] != "CP-20260314" {
		t.Errorf("expected date segment 20260314, got %q", pn)
	}
}

func TestNewPlanNumber_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pn := NewPlanNumber(now)
		if seen[pn] {
			t.Fatalf("duplicate plan number generated: %s", pn)
		}
		seen[pn] = true
	}
}
