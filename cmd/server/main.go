package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockdeck/internal/bot"
	"stockdeck/internal/cache"
	"stockdeck/internal/config"
	"stockdeck/internal/genai"
	"stockdeck/internal/handler"
	"stockdeck/internal/job"
	"stockdeck/internal/provider"
	"stockdeck/internal/service"
	"stockdeck/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "stockdeck/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	initRedisFunc        = cache.InitRedis
	initTracerFunc       = tracing.InitTracer
	newYahooProviderFunc = func(tracer trace.Tracer, baseURL string) *provider.YahooProvider {
		return provider.NewYahooProvider(tracer, baseURL)
	}
	newQuoteServiceFunc    = service.NewQuoteService
	newNewsServiceFunc     = service.NewNewsService
	newRecServiceFunc      = service.NewRecommendationService
	newQuotePollerFunc     = job.NewQuotePoller
	startPollerFunc        = func(p *job.QuotePoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Stockdeck API
// @version         1.0
// @description     Resilient market-data backend: quotes, news, and AI-generated recommendations.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	initialDelay := time.Duration(cfg.FetchInitialDelayMS) * time.Millisecond

	yahoo := newYahooProviderFunc(tracer, cfg.YahooBaseURL)
	quoteService := newQuoteServiceFunc(tracer, yahoo, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)

	// The generator stays nil without a credential; services then serve
	// fallback data without attempting the call.
	var generator *genai.Generator
	var newsGen service.NewsGenerator
	var recGen service.RecommendationGenerator
	if cfg.GeminiAPIKey != "" {
		client := genai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		generator = genai.NewGenerator(tracer, client)
		newsGen = generator
		recGen = generator
	}
	newsService := newNewsServiceFunc(tracer, newsGen, yahoo, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)
	recService := newRecServiceFunc(tracer, recGen, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)

	// Warm the quote cache for the watchlist
	poller := newQuotePollerFunc(tracer, quoteService, cfg.WatchSymbols, cfg.QuotePollSecs)
	startPollerFunc(poller, ctx)

	startTelegramBotFunc(cfg.TelegramBotToken, quoteService, newsService, recService)

	h := newHandlerFunc(tracer, quoteService, newsService, recService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("stockdeck"))
	r.Use(handler.APIKeyAuth(cfg.APIKey))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
