package models

import (
	"testing"
	"time"
)

func TestLeadTimeSatisfied(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		slot time.Time
		want bool
	}{
		{"one minute short", now.Add(24*time.Hour - time.Minute), false},
		{"exactly 24h", now.Add(24 * time.Hour), false},
		{"one minute past", now.Add(24*time.Hour + time.Minute), true},
		{"next week", now.Add(7 * 24 * time.Hour), true},
		{"in the past", now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeadTimeSatisfied(tt.slot, now); got != tt.want {
				t.Fatalf("LeadTimeSatisfied(%v) = %v, want %v", tt.slot, got, tt.want)
			}
		})
	}
}
