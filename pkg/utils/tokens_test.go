package utils

import (
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"single short tag", "cat", 1},
		{"two tags", "cat, dog", 3},                       // cat , dog
		{"long word", "photorealistic", 4},                // 14 runes
		{"multi word tag", "long hair, blue eyes", 5},     // long hair , blue eyes
		{"underscored tag", "looking_at_viewer", 7},       // looking(2) _ at _ viewer(2)
		{"unicode", "猫耳", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.input)
			if got != tt.expected {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEstimateTokensGrowsWithPrompt(t *testing.T) {
	short := EstimateTokens("cat, dog")
	long := EstimateTokens("cat, dog, bird, fish, horse")

	if long <= short {
		t.Errorf("longer prompt should estimate more tokens: %d <= %d", long, short)
	}
}

func TestFormatTokenCount(t *testing.T) {
	tests := []struct {
		tokens   int
		expected string
	}{
		{0, "~0 tokens"},
		{42, "~42 tokens"},
		{1500, "~1.5K tokens"},
		{25000, "~25K tokens"},
	}

	for _, tt := range tests {
		if got := FormatTokenCount(tt.tokens); got != tt.expected {
			t.Errorf("FormatTokenCount(%d) = %q, want %q", tt.tokens, got, tt.expected)
		}
	}
}

func TestGetTokenLimitStatus(t *testing.T) {
	tests := []struct {
		name       string
		tokens     int
		wantPct    int
		wantChunks int
		wantStatus string
	}{
		{"empty", 0, 0, 1, "good"},
		{"small", 30, 40, 1, "good"},
		{"near limit", 70, 93, 1, "warning"},
		{"exactly one chunk", 75, 100, 1, "warning"},
		{"spills into second chunk", 80, 6, 2, "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, chunks, status := GetTokenLimitStatus(tt.tokens)
			if pct != tt.wantPct || chunks != tt.wantChunks || status != tt.wantStatus {
				t.Errorf("GetTokenLimitStatus(%d) = (%d, %d, %q), want (%d, %d, %q)",
					tt.tokens, pct, chunks, status, tt.wantPct, tt.wantChunks, tt.wantStatus)
			}
		})
	}
}
