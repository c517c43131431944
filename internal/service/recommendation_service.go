package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"stockdeck/internal/domain"
	"stockdeck/internal/fallback"
	"stockdeck/internal/resilience"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const recsCacheTTL = 15 * time.Minute

const recsCacheKey = "recommendations"

// RecommendationGenerator is the generative model behind recommendations.
// Nil means the credential is absent.
type RecommendationGenerator interface {
	Recommendations(ctx context.Context) ([]domain.Recommendation, error)
}

type RecommendationService struct {
	tracer       trace.Tracer
	generator    RecommendationGenerator
	redis        RedisClient
	retries      int
	initialDelay time.Duration
}

func NewRecommendationService(
	tracer trace.Tracer,
	generator RecommendationGenerator,
	redisClient RedisClient,
	retries int,
	initialDelay time.Duration,
) *RecommendationService {
	return &RecommendationService{
		tracer:       tracer,
		generator:    generator,
		redis:        redisClient,
		retries:      retries,
		initialDelay: initialDelay,
	}
}

// Recommendations returns the current generated picks, or the fixed fallback
// set when the model is unreachable, unconfigured, or emitted an invalid batch.
func (s *RecommendationService) Recommendations(ctx context.Context) ([]domain.Recommendation, bool) {
	ctx, span := s.tracer.Start(ctx, "recommendation-service.recommendations")
	defer span.End()

	if cached := s.getRecsCache(ctx); cached != nil {
		return cached, false
	}

	if s.generator == nil {
		return fallback.Recommendations(), true
	}

	res := resilience.Fetch(ctx,
		func(ctx context.Context) ([]domain.Recommendation, error) {
			return s.generator.Recommendations(ctx)
		},
		fallback.Recommendations,
		resilience.Options[[]domain.Recommendation]{
			Name:         "recommendation-service.fetch",
			Retries:      s.retries,
			InitialDelay: s.initialDelay,
			Validate: func(recs []domain.Recommendation) error {
				if len(recs) == 0 {
					return fmt.Errorf("empty recommendation batch")
				}
				return nil
			},
		},
	)

	if !res.UsedFallback {
		s.setRecsCache(ctx, res.Value)
	}
	return res.Value, res.UsedFallback
}

func (s *RecommendationService) setRecsCache(ctx context.Context, recs []domain.Recommendation) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, recsCacheKey, data, recsCacheTTL).Err(); err != nil {
		log.Printf("redis cache write error for %s: %v", recsCacheKey, err)
	}
}

func (s *RecommendationService) getRecsCache(ctx context.Context) []domain.Recommendation {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, recsCacheKey).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("redis cache read error: %v", err)
		return nil
	}
	var recs []domain.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil
	}
	return recs
}
