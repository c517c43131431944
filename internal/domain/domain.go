package domain

import (
	"fmt"
	"strings"
	"time"
)

// SyntheticLink is the sentinel link value on AI-generated news items.
// The presentation layer uses it to suppress the outbound anchor.
const SyntheticLink = "#"

// NewsTypeStory is the category tag carried by every news item.
const NewsTypeStory = "STORY"

// DefaultWatchSymbols seeds the watchlist when the user has not saved one.
var DefaultWatchSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

type ThumbnailResolution struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tag    string `json:"tag"`
}

type Thumbnail struct {
	Resolutions []ThumbnailResolution `json:"resolutions"`
}

type NewsItem struct {
	UUID                string     `json:"uuid"`
	Title               string     `json:"title"`
	Publisher           string     `json:"publisher"`
	Link                string     `json:"link"`
	ProviderPublishTime int64      `json:"providerPublishTime"`
	Type                string     `json:"type"`
	Content             string     `json:"content,omitempty"`
	Thumbnail           *Thumbnail `json:"thumbnail,omitempty"`
}

// Synthetic reports whether the item was generated rather than sourced
// from a real news provider.
func (n NewsItem) Synthetic() bool {
	return n.Link == SyntheticLink
}

func (n NewsItem) Validate() error {
	if n.UUID == "" {
		return fmt.Errorf("news item missing uuid")
	}
	if n.Title == "" {
		return fmt.Errorf("news item %s missing title", n.UUID)
	}
	if n.Thumbnail != nil && len(n.Thumbnail.Resolutions) == 0 {
		return fmt.Errorf("news item %s has thumbnail with no resolutions", n.UUID)
	}
	return nil
}

// QuoteSnapshot is one observation of a traded symbol. Optional numeric
// fields are pointers so values absent upstream stay absent instead of
// reading as zero.
type QuoteSnapshot struct {
	Symbol                     string    `json:"symbol"`
	ShortName                  string    `json:"shortName"`
	RegularMarketPrice         float64   `json:"regularMarketPrice"`
	RegularMarketChange        float64   `json:"regularMarketChange"`
	RegularMarketChangePercent float64   `json:"regularMarketChangePercent"`
	RegularMarketTime          time.Time `json:"regularMarketTime"`
	RegularMarketDayHigh       *float64  `json:"regularMarketDayHigh,omitempty"`
	RegularMarketDayLow        *float64  `json:"regularMarketDayLow,omitempty"`
	RegularMarketVolume        *int64    `json:"regularMarketVolume,omitempty"`
	MarketCap                  *int64    `json:"marketCap,omitempty"`
	Currency                   string    `json:"currency"`
}

func (q QuoteSnapshot) Validate() error {
	if q.Symbol == "" {
		return fmt.Errorf("quote missing symbol")
	}
	if q.RegularMarketDayLow != nil && q.RegularMarketPrice < *q.RegularMarketDayLow {
		return fmt.Errorf("quote %s: price %.4f below day low %.4f", q.Symbol, q.RegularMarketPrice, *q.RegularMarketDayLow)
	}
	if q.RegularMarketDayHigh != nil && q.RegularMarketPrice > *q.RegularMarketDayHigh {
		return fmt.Errorf("quote %s: price %.4f above day high %.4f", q.Symbol, q.RegularMarketPrice, *q.RegularMarketDayHigh)
	}
	if q.RegularMarketVolume != nil && *q.RegularMarketVolume < 0 {
		return fmt.Errorf("quote %s: negative volume %d", q.Symbol, *q.RegularMarketVolume)
	}
	return nil
}

type Rating string

const (
	RatingStrongSell Rating = "Strong Sell"
	RatingSell       Rating = "Sell"
	RatingHold       Rating = "Hold"
	RatingBuy        Rating = "Buy"
	RatingStrongBuy  Rating = "Strong Buy"
)

func (r Rating) IsValid() bool {
	switch r {
	case RatingStrongSell, RatingSell, RatingHold, RatingBuy, RatingStrongBuy:
		return true
	}
	return false
}

// Rank places the rating on its ordered scale, Strong Sell = 0 through
// Strong Buy = 4.
func (r Rating) Rank() int {
	switch r {
	case RatingStrongSell:
		return 0
	case RatingSell:
		return 1
	case RatingHold:
		return 2
	case RatingBuy:
		return 3
	case RatingStrongBuy:
		return 4
	}
	return -1
}

type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

func (r RiskTier) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

type Recommendation struct {
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	Recommendation  Rating   `json:"recommendation"`
	CurrentPrice    float64  `json:"currentPrice"`
	TargetPrice     float64  `json:"targetPrice"`
	PotentialGrowth float64  `json:"potentialGrowth"`
	Rationale       string   `json:"rationale"`
	RiskLevel       RiskTier `json:"riskLevel"`
	Sector          string   `json:"sector"`
	TimeHorizon     string   `json:"timeHorizon"`
}

func (r Recommendation) Validate() error {
	if r.Symbol == "" {
		return fmt.Errorf("recommendation missing symbol")
	}
	if !r.Recommendation.IsValid() {
		return fmt.Errorf("recommendation %s: unknown rating %q", r.Symbol, r.Recommendation)
	}
	if !r.RiskLevel.IsValid() {
		return fmt.Errorf("recommendation %s: unknown risk level %q", r.Symbol, r.RiskLevel)
	}
	if r.CurrentPrice <= 0 || r.TargetPrice <= 0 {
		return fmt.Errorf("recommendation %s: non-positive price", r.Symbol)
	}
	// Growth sign must agree with the target/current ordering.
	if r.TargetPrice > r.CurrentPrice && r.PotentialGrowth < 0 {
		return fmt.Errorf("recommendation %s: target above current but growth negative", r.Symbol)
	}
	if r.TargetPrice < r.CurrentPrice && r.PotentialGrowth > 0 {
		return fmt.Errorf("recommendation %s: target below current but growth positive", r.Symbol)
	}
	return nil
}

// ImpliedGrowth is the percent growth implied by target vs current price.
func (r Recommendation) ImpliedGrowth() float64 {
	if r.CurrentPrice == 0 {
		return 0
	}
	return (r.TargetPrice/r.CurrentPrice - 1) * 100
}

// IsForeignListing reports whether the symbol carries a recognized
// non-US-exchange suffix (NSE/BSE listings are INR denominated).
func IsForeignListing(symbol string) bool {
	return strings.HasSuffix(symbol, ".NS") || strings.HasSuffix(symbol, ".BO")
}

// CurrencyGlyph returns the display currency symbol for a ticker.
func CurrencyGlyph(symbol string) string {
	if IsForeignListing(symbol) {
		return "₹"
	}
	return "$"
}
