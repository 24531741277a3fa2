package cli

import (
	"testing"
	"time"
)

func TestApplyFlag(t *testing.T) {
	dst := "default"
	applyFlag(&dst, "")
	if dst != "default" {
		t.Errorf("applyFlag with empty value changed dst to %q", dst)
	}
	applyFlag(&dst, "override")
	if dst != "override" {
		t.Errorf("applyFlag = %q, want %q", dst, "override")
	}
}

func TestResolvePasswordPassthrough(t *testing.T) {
	got, err := resolvePassword("", "configured")
	if err != nil {
		t.Fatal(err)
	}
	if got != "configured" {
		t.Errorf("resolvePassword(\"\") = %q, want configured default", got)
	}

	got, err = resolvePassword("explicit", "configured")
	if err != nil {
		t.Fatal(err)
	}
	if got != "explicit" {
		t.Errorf("resolvePassword(explicit) = %q, want flag value", got)
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Now()
	tests := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{1 * time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{1 * time.Hour, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{25 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		if got := formatAge(now.Add(-tt.age)); got != tt.want {
			t.Errorf("formatAge(-%s) = %q, want %q", tt.age, got, tt.want)
		}
	}
}
