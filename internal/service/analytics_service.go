package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/lshigami/studytrack/config"
	"github.com/lshigami/studytrack/internal/cache"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/studyday"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	analyticsCachePrefix = "analytics:"
	// analyticsGenKey holds the cache generation. Every entry key embeds
	// it, so bumping it retires all entries at once.
	analyticsGenKey     = analyticsCachePrefix + "gen"
	subjectStatsKey     = "subjects"
	trendKey            = "trend"
	topicStatsKeyPrefix = "topics:"
)

type AnalyticsService interface {
	GetSubjectStats(ctx context.Context) (dto.SubjectStatsMap, error)
	GetTopicStats(ctx context.Context, subject string) ([]dto.TopicStats, error)
	GetTrend(ctx context.Context) ([]dto.TrendPoint, error)
	// Invalidate drops cached results after attempts change.
	Invalidate(ctx context.Context)
}

type analyticsService struct {
	attemptRepo repository.AttemptRepository
	cache       *cache.Cache
	subjects    []string
	group       singleflight.Group
	// localGen separates in-flight computations started before an
	// Invalidate from those started after it, with or without redis.
	localGen atomic.Int64
}

func NewAnalyticsService(attemptRepo repository.AttemptRepository, c *cache.Cache, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		attemptRepo: attemptRepo,
		cache:       c,
		subjects:    cfg.Study.Subjects,
	}
}

// GetSubjectStats reports every canonical subject, in canonical order,
// including subjects without attempts. Attempts for other subjects are
// ignored.
func (s *analyticsService) GetSubjectStats(ctx context.Context) (dto.SubjectStatsMap, error) {
	key, flight, cacheable := s.keyFor(ctx, subjectStatsKey)
	var cached []dto.SubjectStats
	if cacheable && s.cache.GetJSON(ctx, key, &cached) {
		return dto.SubjectStatsMap(cached), nil
	}

	v, err := s.shared(ctx, flight, func(ctx context.Context) (any, error) {
		totals, err := s.attemptRepo.TotalsBySubject(ctx)
		if err != nil {
			return nil, storeError(err, "subject totals")
		}
		outcomes, err := s.attemptRepo.Outcomes(ctx)
		if err != nil {
			return nil, storeError(err, "attempt outcomes")
		}

		bySubject := make(map[string]repository.AccuracyTotals, len(totals))
		for _, t := range totals {
			bySubject[t.Key] = t
		}
		outcomesBySubject := make(map[string][]repository.Outcome)
		for _, o := range outcomes {
			outcomesBySubject[o.Subject] = append(outcomesBySubject[o.Subject], o)
		}

		stats := make([]dto.SubjectStats, 0, len(s.subjects))
		for _, subject := range s.subjects {
			t := bySubject[subject]
			st := dto.SubjectStats{
				Subject:        subject,
				TotalAttempted: t.Total,
				CorrectCount:   t.Correct,
				WrongCount:     t.Total - t.Correct,
				Status:         StatusNotAvailable,
				Trend:          buildTrend(outcomesBySubject[subject]),
			}
			if t.Total > 0 {
				acc := accuracyPercent(t.Correct, t.Total)
				st.Accuracy = round2(acc)
				st.Status = CalculateStatus(acc)
			}
			stats = append(stats, st)
		}

		if cacheable {
			s.cache.SetJSON(ctx, key, stats)
		}
		return stats, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("AnalyticsService: failed to compute subject stats")
		return nil, err
	}
	return dto.SubjectStatsMap(v.([]dto.SubjectStats)), nil
}

// GetTopicStats groups one subject's attempts by topic. Attempts without
// a topic are reported under "Unknown".
func (s *analyticsService) GetTopicStats(ctx context.Context, subject string) ([]dto.TopicStats, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, invalidInput("subject parameter required")
	}

	key, _, cacheable := s.keyFor(ctx, topicStatsKeyPrefix+subject)
	var cached []dto.TopicStats
	if cacheable && s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	totals, err := s.attemptRepo.TotalsByTopic(ctx, subject)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("AnalyticsService: failed to load topic totals")
		return nil, storeError(err, "topic totals")
	}

	stats := make([]dto.TopicStats, 0, len(totals))
	for _, t := range totals {
		acc := round2(accuracyPercent(t.Correct, t.Total))
		stats = append(stats, dto.TopicStats{
			Topic:          t.Key,
			TotalAttempted: t.Total,
			CorrectCount:   t.Correct,
			WrongCount:     t.Total - t.Correct,
			Accuracy:       acc,
			Status:         CalculateStatus(acc),
		})
	}

	if cacheable {
		s.cache.SetJSON(ctx, key, stats)
	}
	return stats, nil
}

// GetTrend returns one cumulative accuracy point per study day.
func (s *analyticsService) GetTrend(ctx context.Context) ([]dto.TrendPoint, error) {
	key, flight, cacheable := s.keyFor(ctx, trendKey)
	var cached []dto.TrendPoint
	if cacheable && s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	v, err := s.shared(ctx, flight, func(ctx context.Context) (any, error) {
		outcomes, err := s.attemptRepo.Outcomes(ctx)
		if err != nil {
			return nil, storeError(err, "attempt outcomes")
		}
		points := buildTrend(outcomes)
		if cacheable {
			s.cache.SetJSON(ctx, key, points)
		}
		return points, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("AnalyticsService: failed to compute trend")
		return nil, err
	}
	return v.([]dto.TrendPoint), nil
}

// Invalidate moves the cache to a new generation. Results computed
// before the call are stored under the old generation and never read.
func (s *analyticsService) Invalidate(ctx context.Context) {
	s.localGen.Add(1)
	gen, ok := s.cache.Incr(ctx, analyticsGenKey)
	if ok && gen > 0 {
		s.cache.DeletePrefix(ctx, generationPrefix(gen-1))
	}
}

// keyFor scopes name to the current cache generation. flight is the
// singleflight key. cacheable is false when the generation could not be
// read, in which case nothing is cached.
func (s *analyticsService) keyFor(ctx context.Context, name string) (key, flight string, cacheable bool) {
	gen, cacheable := s.cache.Generation(ctx, analyticsGenKey)
	key = generationPrefix(gen) + name
	flight = fmt.Sprintf("%s#%d", key, s.localGen.Load())
	return key, flight, cacheable
}

func generationPrefix(gen int64) string {
	return fmt.Sprintf("%s%d:", analyticsCachePrefix, gen)
}

// shared runs fn once for concurrent callers of the same flight. fn gets a
// context that outlives any single caller. Each caller still returns as
// soon as its own ctx is done.
func (s *analyticsService) shared(ctx context.Context, flight string, fn func(context.Context) (any, error)) (any, error) {
	computeCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(flight, func() (any, error) {
		return fn(computeCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// buildTrend buckets outcomes by study day and accumulates totals across
// days in ascending key order.
func buildTrend(outcomes []repository.Outcome) []dto.TrendPoint {
	type dayTotals struct{ total, correct int }
	byDay := make(map[string]*dayTotals)
	for _, o := range outcomes {
		key := studyday.Key(o.Timestamp)
		d, ok := byDay[key]
		if !ok {
			d = &dayTotals{}
			byDay[key] = d
		}
		d.total++
		if o.IsCorrect {
			d.correct++
		}
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]dto.TrendPoint, 0, len(keys))
	var total, correct int
	for _, k := range keys {
		total += byDay[k].total
		correct += byDay[k].correct
		points = append(points, dto.TrendPoint{
			Date:        k,
			DateDisplay: studyday.Display(k),
			Accuracy:    round2(accuracyPercent(correct, total)),
			Correct:     correct,
			Total:       total,
		})
	}
	return points
}
