package assignment

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// Engine evaluates feature flags and A/B test assignments.
//
// Both operations share one primitive: a 32-bit FNV-1a hash of
// "subjectID-name", reduced modulo 100 for percentage rollouts and modulo 2
// for two-arm tests. The hash is a pure function of its inputs, so the same
// subject gets the same outcome across processes and across time for as
// long as the configuration is unchanged.
//
// Evaluation never returns an error: a store outage or a missing definition
// degrades to baseline behavior (flag disabled, no variant assigned).
type Engine struct {
	flags repository.FlagRepository
	tests repository.TestRepository
	cache *definitionCache
	log   *zap.Logger
}

// NewEngine creates an assignment engine. Definitions are cached for ttl;
// an expired entry triggers a fresh read on the next evaluation.
func NewEngine(flags repository.FlagRepository, tests repository.TestRepository, ttl time.Duration, log *zap.Logger) *Engine {
	return &Engine{
		flags: flags,
		tests: tests,
		cache: newDefinitionCache(ttl),
		log:   log,
	}
}

// bucket hashes a subject against a flag or test name.
func bucket(subjectID, name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(subjectID))
	h.Write([]byte("-"))
	h.Write([]byte(name))
	return h.Sum32()
}

// anonymous reports whether the subject lacks a stable identifier.
func anonymous(subjectID string) bool {
	return subjectID == "" || subjectID == domain.AnonymousSubject
}

// Enabled reports whether the named flag is on for the subject and platform.
//
// A missing flag, a platform outside the flag's set, or a config read
// failure all evaluate to false. Percentage rollouts require a stable
// subject id; anonymous subjects only pass flags that are plainly enabled.
func (e *Engine) Enabled(ctx context.Context, flagName, subjectID, platform string) bool {
	flag := e.flag(ctx, flagName)
	if flag == nil {
		return false
	}

	if !flag.AppliesTo(platform) {
		return false
	}

	switch flag.Status {
	case domain.FlagEnabled:
		return true
	case domain.FlagPercentageRollout:
		if anonymous(subjectID) {
			return false
		}
		return int(bucket(subjectID, flag.Name)%100) < flag.RolloutPercentage
	default:
		return false
	}
}

// Variant returns the subject's arm for the named test. The second return
// is false when no assignment applies: unknown or non-active test,
// anonymous subject, or a config read failure.
func (e *Engine) Variant(ctx context.Context, testName, subjectID string) (domain.Arm, bool) {
	if anonymous(subjectID) {
		return "", false
	}

	test := e.test(ctx, testName)
	if test == nil || test.Status != domain.TestActive {
		return "", false
	}

	if bucket(subjectID, test.Name)%2 == 0 {
		return domain.ArmControl, true
	}
	return domain.ArmVariant, true
}

// InvalidateFlag drops a cached flag definition after a dashboard write.
func (e *Engine) InvalidateFlag(name string) {
	e.cache.invalidate("flag:" + name)
}

// InvalidateTest drops a cached test definition after a dashboard write.
func (e *Engine) InvalidateTest(name string) {
	e.cache.invalidate("test:" + name)
}

// flag resolves a flag definition through the cache. Returns nil when the
// flag does not exist or the store is unavailable.
func (e *Engine) flag(ctx context.Context, name string) *domain.FeatureFlag {
	key := "flag:" + name
	if cached, ok := e.cache.get(key); ok {
		if cached == nil {
			return nil
		}
		return cached.(*domain.FeatureFlag)
	}

	flag, err := e.flags.Get(ctx, name)
	if err != nil {
		var notFound *repository.ErrNotFound
		if errors.As(err, &notFound) {
			e.log.Info("Feature flag not configured, treating as disabled",
				zap.String("flag", name))
			e.cache.set(key, nil)
			return nil
		}
		// Transient store failure: default to disabled, do not cache.
		e.log.Warn("Failed to fetch feature flag, treating as disabled",
			zap.String("flag", name),
			zap.Error(err))
		return nil
	}

	e.cache.set(key, flag)
	return flag
}

// test resolves a test definition through the cache. Returns nil when the
// test does not exist or the store is unavailable.
func (e *Engine) test(ctx context.Context, name string) *domain.ABTest {
	key := "test:" + name
	if cached, ok := e.cache.get(key); ok {
		if cached == nil {
			return nil
		}
		return cached.(*domain.ABTest)
	}

	test, err := e.tests.Get(ctx, name)
	if err != nil {
		var notFound *repository.ErrNotFound
		if errors.As(err, &notFound) {
			e.log.Info("A/B test not configured, no assignment",
				zap.String("test", name))
			e.cache.set(key, nil)
			return nil
		}
		e.log.Warn("Failed to fetch A/B test, no assignment",
			zap.String("test", name),
			zap.Error(err))
		return nil
	}

	e.cache.set(key, test)
	return test
}
