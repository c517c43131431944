// Package fallback holds the hand-authored substitute data served when a
// live external call cannot be completed or validated.
package fallback

import (
	"fmt"
	"strings"
	"time"

	"stockdeck/internal/domain"
)

type seedItem struct {
	uuid      string
	title     string
	publisher string
	content   string
	hoursAgo  int
	imageID   int
}

var newsSeeds = []seedItem{
	{
		uuid:      "fallback-1",
		title:     "Markets showing resilience amid economic uncertainty",
		publisher: "Financial Times",
		content:   "Despite ongoing economic challenges, global markets have demonstrated remarkable resilience. Analysts attribute this to strong corporate earnings and strategic monetary policy adjustments by central banks worldwide.",
		hoursAgo:  1,
		imageID:   10,
	},
	{
		uuid:      "fallback-2",
		title:     "Tech stocks surge as investors eye AI developments",
		publisher: "CNBC",
		content:   "Technology stocks have experienced a significant rally as investor interest in artificial intelligence continues to grow. Companies focusing on AI capabilities are seeing substantial gains in market valuation.",
		hoursAgo:  2,
		imageID:   20,
	},
	{
		uuid:      "fallback-3",
		title:     "Indian markets hit new high as foreign investments flow in",
		publisher: "Economic Times",
		content:   "Indian stock markets reached unprecedented levels today as foreign institutional investors continue to show confidence in the country's economic outlook. Infrastructure and technology sectors led the gains.",
		hoursAgo:  3,
		imageID:   30,
	},
	{
		uuid:      "fallback-4",
		title:     "Oil prices stabilize following production agreement",
		publisher: "Reuters",
		content:   "Global oil prices have stabilized after major oil-producing nations reached an agreement on production limits. The consensus aims to balance market supply and maintain price stability amid fluctuating demand.",
		hoursAgo:  4,
		imageID:   40,
	},
	{
		uuid:      "fallback-5",
		title:     "Central bank maintains interest rates, signals future cuts possible",
		publisher: "Bloomberg",
		content:   "The central bank has decided to maintain current interest rates while hinting at potential cuts in the coming months. This announcement has been positively received by markets, with bonds rallying in response.",
		hoursAgo:  5,
		imageID:   50,
	},
}

// News returns a fresh copy of the fallback set, timestamps offset from
// now by the fixed hour increments.
func News() []domain.NewsItem {
	now := time.Now().Unix()
	items := make([]domain.NewsItem, 0, len(newsSeeds))
	for _, s := range newsSeeds {
		base := fmt.Sprintf("https://picsum.photos/id/%d", s.imageID)
		items = append(items, domain.NewsItem{
			UUID:                s.uuid,
			Title:               s.title,
			Publisher:           s.publisher,
			Link:                domain.SyntheticLink,
			ProviderPublishTime: now - int64(s.hoursAgo)*3600,
			Type:                domain.NewsTypeStory,
			Content:             s.content,
			Thumbnail: &domain.Thumbnail{
				Resolutions: []domain.ThumbnailResolution{
					{URL: base + "/800/400", Width: 800, Height: 400, Tag: "original"},
					{URL: base + "/400/200", Width: 400, Height: 200, Tag: "resized"},
				},
			},
		})
	}
	return items
}

// NewsForSymbol returns the fallback set customized for one symbol.
func NewsForSymbol(symbol string) []domain.NewsItem {
	items := News()
	for i := range items {
		items[i] = CustomizeForSymbol(items[i], symbol)
	}
	return items
}

// CustomizeForSymbol ties a stock-agnostic fallback item to a symbol so
// the response is not obviously generic. Customizing an item that already
// mentions the symbol is a no-op for that field, so re-customization never
// double-appends.
func CustomizeForSymbol(item domain.NewsItem, symbol string) domain.NewsItem {
	sym := strings.ToUpper(symbol)
	if !strings.HasSuffix(item.UUID, "-"+sym) {
		item.UUID = item.UUID + "-" + sym
	}
	if !strings.Contains(item.Title, sym) {
		item.Title = fmt.Sprintf("%s - Impact on %s", item.Title, sym)
	}
	if item.Content != "" && !strings.Contains(item.Content, sym) {
		item.Content = fmt.Sprintf("%s This may have implications for %s stock performance in the coming trading sessions.", item.Content, sym)
	}
	return item
}

// Recommendations is the typed fallback for the recommendations entry
// point; the figures are deliberately conservative and self-consistent so
// they survive validation.
func Recommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Symbol:          "AAPL",
			Name:            "Apple Inc.",
			Recommendation:  domain.RatingBuy,
			CurrentPrice:    170.50,
			TargetPrice:     195.00,
			PotentialGrowth: 14.4,
			Rationale:       "Strong ecosystem and services growth with potential new product categories.",
			RiskLevel:       domain.RiskLow,
			Sector:          "Technology",
			TimeHorizon:     "Long-term",
		},
		{
			Symbol:          "MSFT",
			Name:            "Microsoft Corporation",
			Recommendation:  domain.RatingStrongBuy,
			CurrentPrice:    410.00,
			TargetPrice:     470.00,
			PotentialGrowth: 14.6,
			Rationale:       "Cloud and AI momentum continues to drive revenue across segments.",
			RiskLevel:       domain.RiskLow,
			Sector:          "Technology",
			TimeHorizon:     "Long-term",
		},
		{
			Symbol:          "RELIANCE.NS",
			Name:            "Reliance Industries",
			Recommendation:  domain.RatingHold,
			CurrentPrice:    2900.00,
			TargetPrice:     2950.00,
			PotentialGrowth: 1.7,
			Rationale:       "Diversified conglomerate fairly valued after recent run-up; retail and telecom arms remain growth levers.",
			RiskLevel:       domain.RiskMedium,
			Sector:          "Conglomerate",
			TimeHorizon:     "Medium-term",
		},
	}
}
