package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"stockdeck/internal/domain"

	tele "gopkg.in/telebot.v3"
)

type QuoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool)
}

type NewsSource interface {
	MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool)
	Headlines(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool)
}

type RecommendationSource interface {
	Recommendations(ctx context.Context) ([]domain.Recommendation, bool)
}

// StartTelegramBot wires the bot commands and starts long polling in the
// background. An empty token disables the bot.
func StartTelegramBot(token string, quotes QuoteSource, news NewsSource, recs RecommendationSource) {
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/quote", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /quote AAPL")
		}
		symbol := strings.ToUpper(args[0])
		snapshots, usedFallback := quotes.Quotes(context.Background(), []string{symbol})
		if len(snapshots) == 0 {
			return c.Send(fmt.Sprintf("No quote available for %s right now", symbol))
		}
		snap := snapshots[0]
		msg := fmt.Sprintf(
			"%s (%s)\nPrice: %s%.2f\nChange: %+.2f (%+.2f%%)",
			snap.Symbol, snap.ShortName,
			domain.CurrencyGlyph(snap.Symbol), snap.RegularMarketPrice,
			snap.RegularMarketChange, snap.RegularMarketChangePercent,
		)
		return c.Send(degradedNote(msg, usedFallback))
	})

	b.Handle("/news", func(c tele.Context) error {
		args := c.Args()
		var items []domain.NewsItem
		var usedFallback bool
		if len(args) == 0 {
			items, usedFallback = news.MarketNews(context.Background(), "global", 5)
		} else {
			items, usedFallback = news.Headlines(context.Background(), strings.ToUpper(args[0]), 5)
		}
		if len(items) == 0 {
			return c.Send("No news available right now")
		}
		var sb strings.Builder
		for _, it := range items {
			fmt.Fprintf(&sb, "• %s — %s\n", it.Title, it.Publisher)
		}
		return c.Send(degradedNote(strings.TrimRight(sb.String(), "\n"), usedFallback))
	})

	b.Handle("/recs", func(c tele.Context) error {
		picks, usedFallback := recs.Recommendations(context.Background())
		if len(picks) == 0 {
			return c.Send("No recommendations available right now")
		}
		if len(picks) > 5 {
			picks = picks[:5]
		}
		var sb strings.Builder
		for _, r := range picks {
			fmt.Fprintf(&sb, "%s — %s (target %s%.2f, %+.1f%%)\n",
				r.Symbol, r.Recommendation,
				domain.CurrencyGlyph(r.Symbol), r.TargetPrice, r.PotentialGrowth)
		}
		return c.Send(degradedNote(strings.TrimRight(sb.String(), "\n"), usedFallback))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func degradedNote(msg string, usedFallback bool) string {
	if usedFallback {
		return msg + "\n(sample data — live source unavailable)"
	}
	return msg
}
