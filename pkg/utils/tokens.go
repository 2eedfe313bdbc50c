package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PromptChunkTokens is the token window of CLIP-style text encoders that
// tag prompts are usually fed to; longer prompts are split into chunks of this size.
const PromptChunkTokens = 75

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+|[^\s\p{L}\p{N}]`)

// EstimateTokens provides a lightweight estimation of token count for a tag prompt.
// Every word and every punctuation mark (the ", " separators included) counts as
// at least one token; long words are charged roughly one token per four characters.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	estimate := 0
	for _, piece := range wordPattern.FindAllString(text, -1) {
		runes := len([]rune(piece))
		switch {
		case runes <= 4:
			estimate++
		default:
			estimate += (runes + 3) / 4
		}
	}

	return estimate
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	} else if tokens < 10000 {
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	}
	return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
}

// GetTokenLimitStatus reports how full the current prompt chunk is.
// chunks is the number of encoder chunks the prompt needs.
func GetTokenLimitStatus(tokens int) (percentage int, chunks int, status string) {
	if tokens <= 0 {
		return 0, 1, "good"
	}

	chunks = (tokens + PromptChunkTokens - 1) / PromptChunkTokens
	used := tokens - (chunks-1)*PromptChunkTokens
	percentage = (used * 100) / PromptChunkTokens

	switch {
	case chunks > 1:
		status = "danger"
	case percentage < 80:
		status = "good"
	default:
		status = "warning"
	}

	return percentage, chunks, status
}
