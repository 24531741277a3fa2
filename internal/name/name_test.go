package name

import (
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	got := Generate()

	// Should match adjective-animal pattern
	pattern := regexp.MustCompile(`^[a-z]+-[a-z]+$`)
	if !pattern.MatchString(got) {
		t.Errorf("Generate() = %q, want adjective-animal format", got)
	}
}

func TestSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{4}$`)
	for i := 0; i < 10; i++ {
		if s := Suffix(); !pattern.MatchString(s) {
			t.Errorf("Suffix() = %q, want 4 hex chars", s)
		}
	}
}

func TestUniqueNoCollision(t *testing.T) {
	taken := map[string]bool{"brave-otter": true}
	if got := Unique("calm-heron", taken); got != "calm-heron" {
		t.Errorf("Unique() = %q, want name unchanged when not taken", got)
	}
}

func TestUniqueCollision(t *testing.T) {
	taken := map[string]bool{"brave-otter": true}
	got := Unique("brave-otter", taken)
	if taken[got] {
		t.Errorf("Unique() = %q, collides with a taken name", got)
	}
	pattern := regexp.MustCompile(`^brave-otter-[0-9a-f]{4}$`)
	if !pattern.MatchString(got) {
		t.Errorf("Unique() = %q, want original name plus hex suffix", got)
	}
}
