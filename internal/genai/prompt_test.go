package genai

import (
	"strings"
	"testing"
)

func TestNewsPromptStockSpecific(t *testing.T) {
	prompt := NewsPrompt("global", "TCS.NS")
	if !strings.Contains(prompt, "TCS.NS") {
		t.Fatal("expected symbol in prompt")
	}
	if !strings.Contains(prompt, "Generate 10") {
		t.Fatal("expected item count in prompt")
	}
	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Fatal("expected JSON-only instruction")
	}
	for _, field := range []string{"title", "publisher", "content"} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("expected field %q enumerated in prompt", field)
		}
	}
}

func TestNewsPromptMarketRegion(t *testing.T) {
	prompt := NewsPrompt("india", "")
	if !strings.Contains(prompt, "Indian stock market") {
		t.Fatal("expected Indian market specifier")
	}
	if !strings.Contains(prompt, "Generate 15") {
		t.Fatal("expected market item count")
	}

	prompt = NewsPrompt("global", "")
	if !strings.Contains(prompt, "global stock markets") {
		t.Fatal("expected global market specifier")
	}
	// unknown regions fall back to global
	if !strings.Contains(NewsPrompt("mars", ""), "global stock markets") {
		t.Fatal("unknown region should read as global")
	}
}

func TestRecommendationsPromptShape(t *testing.T) {
	prompt := RecommendationsPrompt()
	for _, want := range []string{
		"Strong Buy", "Strong Sell",
		"riskLevel", "timeHorizon", "potentialGrowth",
		".NS suffix",
		"ONLY the JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected %q in recommendations prompt", want)
		}
	}
}
