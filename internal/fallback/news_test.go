package fallback

import (
	"strings"
	"testing"
	"time"
)

func TestNewsSetShape(t *testing.T) {
	items := News()
	if len(items) < 5 {
		t.Fatalf("fallback set must have at least 5 items, got %d", len(items))
	}
	now := time.Now().Unix()
	for i, item := range items {
		if err := item.Validate(); err != nil {
			t.Fatalf("fallback item %d invalid: %v", i, err)
		}
		if !item.Synthetic() {
			t.Fatalf("fallback item %d should carry the sentinel link", i)
		}
		if item.ProviderPublishTime > now || item.ProviderPublishTime < now-24*3600 {
			t.Fatalf("fallback item %d timestamp out of the recent window", i)
		}
		if item.Thumbnail == nil || len(item.Thumbnail.Resolutions) != 2 {
			t.Fatalf("fallback item %d missing two-rendition thumbnail", i)
		}
	}
	// Fixed hour increments between consecutive items.
	for i := 1; i < len(items); i++ {
		if items[i-1].ProviderPublishTime-items[i].ProviderPublishTime != 3600 {
			t.Fatalf("items %d/%d not one hour apart", i-1, i)
		}
	}
}

func TestCustomizeForSymbolAppends(t *testing.T) {
	item := News()[0]
	got := CustomizeForSymbol(item, "TCS.NS")
	if !strings.HasSuffix(got.Title, "- Impact on TCS.NS") {
		t.Fatalf("expected impact suffix, got %q", got.Title)
	}
	if !strings.Contains(got.Content, "TCS.NS") {
		t.Fatalf("expected symbol sentence in content, got %q", got.Content)
	}
	if got.UUID != item.UUID+"-TCS.NS" {
		t.Fatalf("expected uuid suffix, got %q", got.UUID)
	}
}

func TestCustomizeForSymbolIdempotent(t *testing.T) {
	item := News()[0]
	once := CustomizeForSymbol(item, "TCS.NS")
	twice := CustomizeForSymbol(once, "TCS.NS")
	if twice.Title != once.Title {
		t.Fatalf("re-customizing changed title: %q vs %q", twice.Title, once.Title)
	}
	if twice.Content != once.Content {
		t.Fatal("re-customizing changed content")
	}
	if twice.UUID != once.UUID {
		t.Fatalf("re-customizing changed uuid: %q vs %q", twice.UUID, once.UUID)
	}
}

func TestCustomizeForSymbolUppercases(t *testing.T) {
	item := News()[0]
	lower := CustomizeForSymbol(item, "tsla")
	if !strings.Contains(lower.Title, "TSLA") {
		t.Fatalf("expected uppercased symbol in title, got %q", lower.Title)
	}
	// idempotent regardless of the caller's casing
	again := CustomizeForSymbol(lower, "TSLA")
	if again.Title != lower.Title {
		t.Fatal("mixed-case re-customization double-appended")
	}
}

func TestNewsForSymbolCustomizesEveryItem(t *testing.T) {
	items := NewsForSymbol("AAPL")
	for i, item := range items {
		if !strings.Contains(item.Title, "AAPL") {
			t.Fatalf("item %d not customized: %q", i, item.Title)
		}
	}
}

func TestRecommendationsFallbackValid(t *testing.T) {
	recs := Recommendations()
	if len(recs) == 0 {
		t.Fatal("expected non-empty recommendations fallback")
	}
	for i, rec := range recs {
		if err := rec.Validate(); err != nil {
			t.Fatalf("fallback recommendation %d invalid: %v", i, err)
		}
	}
}
