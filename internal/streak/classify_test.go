package streak

import "testing"

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "sprout"},
		{1, "sprout"},
		{6, "sprout"},
		{7, "growth"},
		{29, "growth"},
		{30, "blossom"},
		{89, "blossom"},
		{90, "tree"},
		{179, "tree"},
		{180, "fruit"},
		{364, "fruit"},
		{365, "legend"},
		{1000, "legend"},
	}

	for _, tt := range tests {
		got := Classify(tt.days)
		if got.Name != tt.want {
			t.Errorf("Classify(%d).Name = %q, want %q", tt.days, got.Name, tt.want)
		}
		if got.Icon == "" || got.Message == "" {
			t.Errorf("Classify(%d) returned empty display metadata", tt.days)
		}
	}
}

func TestClassifyNegativeTreatedAsZero(t *testing.T) {
	if got := Classify(-5); got.Name != "sprout" {
		t.Errorf("Classify(-5).Name = %q, want sprout", got.Name)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	rank := map[string]int{
		"sprout": 0, "growth": 1, "blossom": 2, "tree": 3, "fruit": 4, "legend": 5,
	}

	prev := -1
	for days := 0; days <= 400; days++ {
		r, ok := rank[Classify(days).Name]
		if !ok {
			t.Fatalf("Classify(%d) returned unknown stage", days)
		}
		if r < prev {
			t.Fatalf("stage rank decreased at %d days", days)
		}
		prev = r
	}
}

func TestIsMilestone(t *testing.T) {
	for _, days := range []int{7, 30, 90, 180, 365} {
		if !IsMilestone(days) {
			t.Errorf("IsMilestone(%d) = false, want true", days)
		}
	}
	for _, days := range []int{0, 1, 6, 8, 29, 31, 100, 364, 366} {
		if IsMilestone(days) {
			t.Errorf("IsMilestone(%d) = true, want false", days)
		}
	}
}
